// Package prover orchestrates the external proving backend (gnark Groth16
// over BN254) for the wordle feedback circuit: one-time parameter generation
// per circuit shape, per-turn proving, verification, and the byte-level proof
// and key round-trips used to move them between the prover and verifier
// roles.
package prover

import (
	"fmt"
	"io"
	"time"

	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	gnarklogger "github.com/consensys/gnark/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pranavnt/zk-wordle/circuit"
)

// Params holds the session-scoped proving state for the fixed circuit shape:
// the compiled constraint system, the proving key (the prover-only
// decommitment) and the verifying key (the public commitment to the circuit).
// Immutable after Setup; safe to share read-only across concurrent sessions.
type Params struct {
	ccs   constraint.ConstraintSystem
	pk    groth16.ProvingKey
	vk    groth16.VerifyingKey
	shape circuit.Shape
}

// Setup compiles the feedback circuit and runs the backend's parameter
// generation. Pure function of the circuit shape: call once per process and
// reuse for every turn; there is no per-instance data in the result.
func Setup() (*Params, error) {
	restore := quietBackend()
	defer restore()

	start := time.Now()
	ccs, shape, err := circuit.Compile()
	if err != nil {
		return nil, err
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("backend setup: %w", err)
	}
	log.Debug().
		Int("constraints", shape.Constraints).
		Int("public", shape.PublicInputs).
		Int("secret", shape.SecretInputs).
		Dur("took", time.Since(start)).
		Msg("circuit compiled and parameters generated")

	return &Params{ccs: ccs, pk: pk, vk: vk, shape: shape}, nil
}

// Shape reports the dimensions of the compiled constraint system.
func (p *Params) Shape() circuit.Shape { return p.shape }

// VerifyingKey exposes the public circuit commitment for verifier-side use.
func (p *Params) VerifyingKey() groth16.VerifyingKey { return p.vk }

// quietBackend silences gnark's internal logger for the duration of a backend
// call; its compile/prove chatter would otherwise pollute the application log
// stream. The previous logger is restored by the returned func.
func quietBackend() func() {
	old := gnarklogger.Logger()
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gnarklogger.Set(zerolog.New(io.Discard).Level(zerolog.Disabled))
	}
	return func() { gnarklogger.Set(old) }
}
