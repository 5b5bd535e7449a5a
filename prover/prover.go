package prover

import (
	"bytes"
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/frontend"
	"github.com/rs/zerolog/log"

	"github.com/pranavnt/zk-wordle/circuit"
)

// Prove generates a proof for a fully assembled assignment and serializes it
// to bytes for transport. The assignment is expected to have passed the local
// witness validation in the circuit package; failures here (parameter
// mismatch, unsatisfiable witness) are unrecoverable for the round and are
// surfaced to the caller rather than retried.
func (p *Params) Prove(assignment *circuit.FeedbackCircuit) ([]byte, error) {
	restore := quietBackend()
	defer restore()

	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("build backend witness: %w", err)
	}
	start := time.Now()
	proof, err := groth16.Prove(p.ccs, p.pk, w)
	if err != nil {
		return nil, fmt.Errorf("prove: %w", err)
	}
	log.Debug().Dur("took", time.Since(start)).Msg("proof generated")

	var buf bytes.Buffer
	if _, err := proof.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize proof: %w", err)
	}
	return buf.Bytes(), nil
}

// Verify checks serialized proof bytes against a public statement. The boolean
// result is the verification outcome; it is false, with a nil error, for any
// parseable proof that does not validate (a cheating or buggy prover is an
// expected condition, not an internal error). The error is non-nil only when
// the bytes cannot be deserialized into a proof or the statement itself cannot
// be encoded.
func Verify(vk groth16.VerifyingKey, st circuit.Statement, proofBytes []byte) (bool, error) {
	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return false, fmt.Errorf("%w: %v", ErrProofDeserialization, err)
	}

	assignment, err := circuit.PublicAssignment(st)
	if err != nil {
		return false, err
	}
	w, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return false, fmt.Errorf("build public witness: %w", err)
	}

	if err := groth16.Verify(proof, vk, w); err != nil {
		log.Debug().Err(err).Msg("proof rejected")
		return false, nil
	}
	return true, nil
}

// VerifyWith is Verify against session params, for in-process verification
// where prover and verifier share the same Setup output.
func (p *Params) VerifyWith(st circuit.Statement, proofBytes []byte) (bool, error) {
	return Verify(p.vk, st, proofBytes)
}
