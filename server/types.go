// Package server exposes the verifier role over HTTP: anyone holding the
// published statement (verifying key, word commitment, transcript label) can
// submit a guess, the claimed feedback and proof bytes and get a verdict. The
// JSON envelopes below are the only wire format besides the opaque proof
// bytes themselves.
package server

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	fr "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/pranavnt/zk-wordle/circuit"
)

// StatementEnvelope carries everything a remote verifier needs that is fixed
// for a session: the circuit commitment (verifying key), the word commitment
// and the transcript label.
type StatementEnvelope struct {
	VerifyingKey string `json:"verifying_key"` // base64
	Commitment   string `json:"commitment"`    // fixed-width hex
	Label        string `json:"label"`
}

// TurnEnvelope is one turn's proof exchange: the statement reference plus the
// per-turn public inputs and proof bytes. Written by the game (one file per
// turn) and consumed by `zk-wordle verify` and POST /v1/verify.
type TurnEnvelope struct {
	Guess       string `json:"guess"`
	Presence    []bool `json:"presence"`
	Correctness []bool `json:"correctness"`
	Proof       string `json:"proof"` // base64
}

// VerifyResponse reports a verification outcome.
type VerifyResponse struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error,omitempty"`
}

// NewStatementEnvelope packs session statement data for the wire.
func NewStatementEnvelope(vkBytes []byte, commitment fr.Element, label string) StatementEnvelope {
	c := circuit.FixedWidth(commitment)
	return StatementEnvelope{
		VerifyingKey: base64.StdEncoding.EncodeToString(vkBytes),
		Commitment:   hex.EncodeToString(c[:]),
		Label:        label,
	}
}

// UnmarshalStatementEnvelope parses the JSON-encoded statement data.
func UnmarshalStatementEnvelope(data []byte) (*StatementEnvelope, error) {
	var env StatementEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse statement JSON: %v", err)
	}
	return &env, nil
}

// UnmarshalTurnEnvelope parses the JSON-encoded turn data.
func UnmarshalTurnEnvelope(data []byte) (*TurnEnvelope, error) {
	var env TurnEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse turn JSON: %v", err)
	}
	return &env, nil
}

// VerifyingKeyBytes decodes the base64 verifying key.
func (e *StatementEnvelope) VerifyingKeyBytes() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(e.VerifyingKey)
	if err != nil {
		return nil, fmt.Errorf("decode verifying key: %v", err)
	}
	return b, nil
}

// CommitmentElement decodes the fixed-width hex commitment.
func (e *StatementEnvelope) CommitmentElement() (fr.Element, error) {
	b, err := hex.DecodeString(e.Commitment)
	if err != nil {
		return fr.Element{}, fmt.Errorf("decode commitment: %v", err)
	}
	return circuit.DecodeFixedWidth(b)
}

// NewTurnEnvelope packs one turn's public inputs and proof for the wire.
func NewTurnEnvelope(guess circuit.Word, fb circuit.Feedback, proof []byte) TurnEnvelope {
	return TurnEnvelope{
		Guess:       guess.String(),
		Presence:    fb.Presence[:],
		Correctness: fb.Correctness[:],
		Proof:       base64.StdEncoding.EncodeToString(proof),
	}
}

// Statement reconstructs the circuit statement for this turn against a
// session commitment and label.
func (e *TurnEnvelope) Statement(commitment fr.Element, label string) (circuit.Statement, []byte, error) {
	guess, err := circuit.ParseWord(e.Guess)
	if err != nil {
		return circuit.Statement{}, nil, err
	}
	if len(e.Presence) != circuit.NumPositions || len(e.Correctness) != circuit.NumPositions {
		return circuit.Statement{}, nil, fmt.Errorf("feedback vectors must have %d entries", circuit.NumPositions)
	}
	st := circuit.Statement{Guess: guess, Commitment: commitment, Label: label}
	copy(st.Feedback.Presence[:], e.Presence)
	copy(st.Feedback.Correctness[:], e.Correctness)

	proof, err := base64.StdEncoding.DecodeString(e.Proof)
	if err != nil {
		return circuit.Statement{}, nil, fmt.Errorf("decode proof: %v", err)
	}
	return st, proof, nil
}
