package fileops

import "errors"

// Sentinel errors for package fileops.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory, got file")
	ErrRequiresRecursive = errors.New("directory requires the recursive flag")

	// Digest errors
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// Archive errors
	ErrUnsupportedFormat = errors.New("unsupported archive format")
)
