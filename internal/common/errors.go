package common

import "errors"

var (
	// Credential store outcomes. Each aborts the operation with no state change.
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNoSuchUser     = errors.New("no such user")
	ErrWrongPassword  = errors.New("wrong password")

	// ErrCorruptedData is returned when a stored value cannot be decoded.
	ErrCorruptedData = errors.New("corrupted stored data")

	// ErrUnknownMode is returned when a form action maps to neither login nor register.
	ErrUnknownMode = errors.New("unknown form mode")

	// ErrUnknownBackend is returned for an unsupported storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
