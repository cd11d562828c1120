package errors

import "errors"

// Input errors indicate the caller supplied bad arguments. They are always
// caller-fixable and are reported before any cryptographic work begins.
var (
	// ErrInvalidInput indicates a missing or unreadable input file, or an
	// empty identity token.
	ErrInvalidInput = errors.New("invalid input")
)

// Container errors indicate the file on disk is not a usable container.
var (
	// ErrFormat indicates the file failed structural parsing and is not a
	// krypto container.
	ErrFormat = errors.New("file is not a recognized container")

	// ErrUnsupportedVersion indicates the container parsed structurally but
	// carries a version this build does not implement.
	ErrUnsupportedVersion = errors.New("unsupported container version")
)

// Cryptographic errors indicate failures in the key derivation or AEAD layer.
var (
	// ErrAuthentication indicates AEAD verification failed. It carries no
	// detail about the cause: wrong key, corrupted bytes, and truncated
	// ciphertext must be indistinguishable to the caller.
	ErrAuthentication = errors.New("authentication failed")

	// ErrKeyDerivation indicates the key derivation primitive could not
	// complete, typically due to resource exhaustion.
	ErrKeyDerivation = errors.New("key derivation failed")
)

// Environment errors indicate resource or I/O failures, surfaced verbatim.
var (
	// ErrEncoding indicates the container could not be serialized, e.g. the
	// original file name exceeds the length field's range.
	ErrEncoding = errors.New("container encoding failed")

	// ErrWrite indicates the output file could not be written completely.
	ErrWrite = errors.New("output write failed")
)
