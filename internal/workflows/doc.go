// Package workflows provides high-level orchestration for krypto commands.
//
// Workflows coordinate the crypt, configs, and utils packages to implement
// complete user-facing operations. Each workflow handles a single command's
// business logic, independent of CLI concerns like flag parsing, spinners,
// and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Validating inputs before any cryptographic work
//   - Driving key derivation, AEAD calls, and the container codec
//   - Writing outputs only after the operation cannot fail partially
//   - Zeroing derived keys on every exit path
//
// # Available Workflows
//
//   - Encrypt: Seals a file into an identity-bound container
//   - Decrypt: Authenticates and restores a container
//   - Analyze: Reports a file's structural state without secrets
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrAuthentication) {
//	    // Show user-friendly message
//	}
//
// No error is retried internally, and no operation leaves partial output:
// either the result path exists in full or nothing was persisted.
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// for consistency across the call surface. Operations run to completion;
// there is no internal cancellation point.
package workflows
