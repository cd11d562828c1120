// Package errors provides typed error values for the krypto application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Input errors: Caller-fixable argument problems (ErrInvalidInput)
//   - Container errors: Structural or version problems (ErrFormat,
//     ErrUnsupportedVersion)
//   - Cryptographic errors: Key derivation and AEAD failures
//     (ErrKeyDerivation, ErrAuthentication)
//   - Environment errors: Serialization and I/O failures (ErrEncoding,
//     ErrWrite)
//
// # Usage
//
// Return errors from internal packages:
//
//	if opts.IdentityToken == "" {
//	    return nil, kerrors.ErrInvalidInput
//	}
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrAuthentication) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("%w: reading %s: %v", kerrors.ErrInvalidInput, path, err)
//
// ErrAuthentication is the one exception to the wrapping rule: internal
// layers return it bare, never annotated with the underlying cause.
// Attaching cause detail to an AEAD failure would reintroduce the side
// channel the single variant exists to close.
package errors
