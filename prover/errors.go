package prover

import "errors"

// ErrProofDeserialization reports proof bytes that cannot be parsed into a
// proof at all. Distinct from verification failure, which is a normal boolean
// outcome and never surfaces as an error.
var ErrProofDeserialization = errors.New("proof deserialization failed")

// ErrKeyDeserialization reports verifying-key bytes that cannot be parsed.
var ErrKeyDeserialization = errors.New("verifying key deserialization failed")
