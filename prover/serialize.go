package prover

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"

	"github.com/pranavnt/zk-wordle/circuit"
)

// MarshalVerifyingKey serializes the public circuit commitment so a verifier
// in another process can check proofs without redoing Setup.
func (p *Params) MarshalVerifyingKey() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.vk.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize verifying key: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalVerifyingKey parses verifying-key bytes produced by
// MarshalVerifyingKey.
func UnmarshalVerifyingKey(data []byte) (groth16.VerifyingKey, error) {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDeserialization, err)
	}
	return vk, nil
}

// MarshalProvingKey serializes the prover-side decommitment, so a long-lived
// prover can cache Setup output across restarts.
func (p *Params) MarshalProvingKey() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.pk.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize proving key: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalProvingKey parses proving-key bytes into params compiled freshly
// for the fixed shape. The constraint system is recompiled (shape-only, no
// trusted data) and paired with the cached keys.
func UnmarshalProvingKey(pkData, vkData []byte) (*Params, error) {
	pk := groth16.NewProvingKey(ecc.BN254)
	if _, err := pk.ReadFrom(bytes.NewReader(pkData)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDeserialization, err)
	}
	vk, err := UnmarshalVerifyingKey(vkData)
	if err != nil {
		return nil, err
	}
	ccs, shape, err := circuit.Compile()
	if err != nil {
		return nil, err
	}
	return &Params{ccs: ccs, pk: pk, vk: vk, shape: shape}, nil
}
