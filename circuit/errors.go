package circuit

import "errors"

var (
	// ErrEncodingOverflow reports a value that does not fit the fixed-width
	// field encoding used by this circuit.
	ErrEncodingOverflow = errors.New("encoding overflow")

	// ErrShapeMismatch reports a compiled constraint system whose dimensions
	// disagree with the declared variable layout. This is a circuit-definition
	// bug, never a runtime condition.
	ErrShapeMismatch = errors.New("constraint system shape mismatch")

	// ErrWitnessConstraintViolation reports a locally-detected inconsistency in
	// an assembled witness. Raised before the witness ever reaches the proving
	// backend, whose own failure modes are far less diagnostic.
	ErrWitnessConstraintViolation = errors.New("witness constraint violation")

	// ErrInvalidWord reports input that is not exactly five letters a-z.
	ErrInvalidWord = errors.New("invalid word")
)
