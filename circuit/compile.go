package circuit

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
)

// Declared variable layout of FeedbackCircuit. The compiled system must agree
// with these counts; anything else is a circuit-definition bug.
const (
	// NumPublicInputs: guess ranks, presence bits, correctness bits, plus the
	// word commitment and the transcript domain tag.
	NumPublicInputs = 3*NumPositions + 2

	// NumSecretInputs: two one-hot blocks per position plus the salt.
	NumSecretInputs = 2*NumPositions*AlphabetSize + 1
)

// Shape describes the dimensions of the compiled constraint system. It is a
// pure function of NumPositions and AlphabetSize, independent of any word or
// guess.
type Shape struct {
	Constraints  int
	PublicInputs int // excluding the constant-one wire
	SecretInputs int
	Internal     int
}

// Compile builds the R1CS for the feedback predicate over BN254 and audits
// its shape against the declared layout. The result carries no secret data
// and is meant to be compiled once per process and shared read-only across
// every turn and session.
func Compile() (constraint.ConstraintSystem, Shape, error) {
	var c FeedbackCircuit
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, &c)
	if err != nil {
		return nil, Shape{}, fmt.Errorf("compile feedback circuit: %w", err)
	}

	shape := Shape{
		Constraints:  ccs.GetNbConstraints(),
		PublicInputs: ccs.GetNbPublicVariables() - 1, // gnark counts the constant wire as public
		SecretInputs: ccs.GetNbSecretVariables(),
		Internal:     ccs.GetNbInternalVariables(),
	}
	if shape.PublicInputs != NumPublicInputs {
		return nil, shape, fmt.Errorf("%w: %d public inputs, declared %d",
			ErrShapeMismatch, shape.PublicInputs, NumPublicInputs)
	}
	if shape.SecretInputs != NumSecretInputs {
		return nil, shape, fmt.Errorf("%w: %d secret inputs, declared %d",
			ErrShapeMismatch, shape.SecretInputs, NumSecretInputs)
	}
	if shape.Constraints == 0 {
		return nil, shape, fmt.Errorf("%w: compiled system has no constraints", ErrShapeMismatch)
	}
	return ccs, shape, nil
}
