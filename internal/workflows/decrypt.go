package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajmelian/krypto/internal/configs"
	"github.com/ajmelian/krypto/internal/crypt"
	kerrors "github.com/ajmelian/krypto/internal/errors"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// ContainerPath is the encrypted container to restore.
	ContainerPath string

	// SharedSecret is the deployment-wide secret ("pepper").
	SharedSecret []byte

	// IdentityToken is the identity the container was encrypted for.
	// Must be non-empty.
	IdentityToken string
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// OutputPath is the absolute path of the restored plaintext file.
	OutputPath string

	// OriginalName is the file name stored in the container header.
	OriginalName string

	// PlaintextSize is the number of plaintext bytes recovered.
	PlaintextSize int
}

// Decrypt authenticates and restores a container to its original file.
//
// The container is read whole and parsed structurally, the version is
// checked against what this build supports, the key is re-derived with the
// stored salt, and the ciphertext is authenticated and decrypted. Only
// after authentication succeeds is the plaintext written, under the stored
// original name in the container's directory, so a failed decrypt never
// leaves a partial output file.
//
// Returns ErrInvalidInput if the container is unreadable or the token is empty.
// Returns ErrFormat if the file is not structurally a container.
// Returns ErrUnsupportedVersion if the container's version is not implemented.
// Returns ErrAuthentication, with no further detail, on any AEAD failure.
// Returns ErrWrite if the plaintext cannot be written.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if opts.IdentityToken == "" {
		return nil, fmt.Errorf("%w: identity token must not be empty", kerrors.ErrInvalidInput)
	}

	raw, err := os.ReadFile(opts.ContainerPath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrInvalidInput, opts.ContainerPath, err)
	}

	container, ok := crypt.DecodeContainer(raw, true)
	if !ok {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFormat, opts.ContainerPath)
	}

	if container.Version != crypt.ContainerVersion {
		return nil, fmt.Errorf("%w: container is version %d, this build supports version %d",
			kerrors.ErrUnsupportedVersion, container.Version, crypt.ContainerVersion)
	}

	key, err := crypt.DeriveKey(opts.SharedSecret, []byte(opts.IdentityToken), container.Salt, configs.CryptoSettings)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypt.Open(key, container.Nonce, container.Ciphertext())
	crypt.ZeroBytes(key)
	if err != nil {
		// Already the bare authentication sentinel; adding detail here
		// would reopen the cause side channel.
		return nil, err
	}

	// The stored name is reduced to its base so a hostile container cannot
	// steer the output outside the container's directory.
	outputPath := filepath.Join(filepath.Dir(opts.ContainerPath), filepath.Base(container.FileName))
	if err := os.WriteFile(outputPath, plaintext, 0600); err != nil {
		return nil, fmt.Errorf("%w: writing %s: %v", kerrors.ErrWrite, outputPath, err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		absPath = outputPath
	}

	return &DecryptResult{
		OutputPath:    absPath,
		OriginalName:  container.FileName,
		PlaintextSize: len(plaintext),
	}, nil
}
