package fsio

// This file is part of the package tests (package fsio) and provides
// helpers that allow tests in the external package to access internal
// package constructs. Helpers are exported so `fsio_test` can call them
// via the module import path.

// NewIOError constructs an io-wrapped error using package-internal constructor.
func NewIOError(msg string, cause error) error {
	return newIOError(msg, cause)
}

// NewLogicalError constructs a logical error using package-internal constructor.
func NewLogicalError(msg string) error {
	return newLogicalError(msg)
}
