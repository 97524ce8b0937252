package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateIdentity indicates a row whose title and slug normalize
	// to an empty token. Such a row has no stable identity and cannot be
	// imported; generating a random id instead would break the idempotent
	// upsert contract.
	ErrDegenerateIdentity = errors.New("row has no usable identity")
)
