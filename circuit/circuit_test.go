package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/test"
)

func TestCompileShape(t *testing.T) {
	_, shape, err := Compile()
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if shape.PublicInputs != NumPublicInputs {
		t.Fatalf("public inputs = %d, want %d", shape.PublicInputs, NumPublicInputs)
	}
	if shape.SecretInputs != NumSecretInputs {
		t.Fatalf("secret inputs = %d, want %d", shape.SecretInputs, NumSecretInputs)
	}
	if shape.Constraints == 0 {
		t.Fatal("compiled system has no constraints")
	}
}

func TestCircuitSolvesHonestWitness(t *testing.T) {
	word, salt, commitment := sessionFixture(t, "ranch")
	guess := mustWord(t, "chant")
	assignment, _, err := BuildAssignment(word, guess, salt, commitment, testLabel)
	if err != nil {
		t.Fatal(err)
	}
	if err := test.IsSolved(&FeedbackCircuit{}, assignment, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("honest witness does not satisfy the circuit: %v", err)
	}
}

func TestCircuitRejectsFlippedOutputBit(t *testing.T) {
	word, salt, commitment := sessionFixture(t, "ranch")
	guess := mustWord(t, "chant")
	assignment, fb, err := BuildAssignment(word, guess, salt, commitment, testLabel)
	if err != nil {
		t.Fatal(err)
	}

	// Flip one public presence bit past the local validation and check the
	// constraint system itself rejects it.
	flipped := *assignment
	flipped.Presence[4] = boolBit(!fb.Presence[4])
	if err := test.IsSolved(&FeedbackCircuit{}, &flipped, ecc.BN254.ScalarField()); err == nil {
		t.Fatal("constraint system accepted a flipped presence bit")
	}

	flipped = *assignment
	flipped.Correctness[0] = boolBit(!fb.Correctness[0])
	if err := test.IsSolved(&FeedbackCircuit{}, &flipped, ecc.BN254.ScalarField()); err == nil {
		t.Fatal("constraint system accepted a flipped correctness bit")
	}
}

func TestCircuitRejectsWrongLabel(t *testing.T) {
	word, salt, commitment := sessionFixture(t, "ranch")
	guess := mustWord(t, "chant")
	assignment, _, err := BuildAssignment(word, guess, salt, commitment, testLabel)
	if err != nil {
		t.Fatal(err)
	}

	otherTag, err := LabelTag("another_session")
	if err != nil {
		t.Fatal(err)
	}
	tampered := *assignment
	tampered.DomainTag = otherTag
	if err := test.IsSolved(&FeedbackCircuit{}, &tampered, ecc.BN254.ScalarField()); err == nil {
		t.Fatal("constraint system accepted a mismatched domain tag")
	}
}

func TestCircuitSolvesExactMatch(t *testing.T) {
	word, salt, commitment := sessionFixture(t, "ranch")
	assignment, fb, err := BuildAssignment(word, word, salt, commitment, testLabel)
	if err != nil {
		t.Fatal(err)
	}
	if !fb.AllCorrect() {
		t.Fatal("guess equal to word must be all-correct")
	}
	if err := test.IsSolved(&FeedbackCircuit{}, assignment, ecc.BN254.ScalarField()); err != nil {
		t.Fatalf("exact-match witness does not satisfy the circuit: %v", err)
	}
}
