package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ajmelian/krypto/internal/configs"
	"github.com/ajmelian/krypto/internal/crypt"
	kerrors "github.com/ajmelian/krypto/internal/errors"
	"github.com/ajmelian/krypto/internal/utils"
)

// ContainerSuffix is appended to the digest-derived output file name.
const ContainerSuffix = ".enc"

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// FilePath is the plaintext file to encrypt.
	FilePath string

	// SharedSecret is the deployment-wide secret ("pepper").
	SharedSecret []byte

	// IdentityToken is the opaque, pre-authenticated identity string the
	// container will be bound to. Must be non-empty.
	IdentityToken string
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// OutputPath is the absolute path of the written container.
	OutputPath string

	// SourcePath is the plaintext file that was encrypted.
	SourcePath string

	// PlaintextSize is the number of plaintext bytes encrypted.
	PlaintextSize int
}

// Encrypt encrypts a single file into an identity-bound container.
//
// The whole file is read into memory, a fresh salt and nonce are drawn, the
// AEAD key is derived from the shared secret and identity token, and the
// encoded container is written next to the source under a name derived from
// the SHA-256 digest of the complete container. The digest name reveals
// nothing about the original name, content, or size, and differs on every
// encryption because the salt and nonce differ.
//
// Returns ErrInvalidInput if the file is unreadable or the token is empty.
// Returns ErrKeyDerivation if the derivation primitive cannot complete.
// Returns ErrEncoding if the container cannot be serialized.
// Returns ErrWrite if the container cannot be written exclusively.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if opts.IdentityToken == "" {
		return nil, fmt.Errorf("%w: identity token must not be empty", kerrors.ErrInvalidInput)
	}

	// Fail fast on unreadable input before any cryptographic work.
	plaintext, err := os.ReadFile(opts.FilePath)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrInvalidInput, opts.FilePath, err)
	}

	salt, err := crypt.NewSalt()
	if err != nil {
		return nil, err
	}
	nonce, err := crypt.NewNonce()
	if err != nil {
		return nil, err
	}

	key, err := crypt.DeriveKey(opts.SharedSecret, []byte(opts.IdentityToken), salt, configs.CryptoSettings)
	if err != nil {
		return nil, err
	}

	ciphertext, err := crypt.Seal(key, nonce, plaintext)
	crypt.ZeroBytes(key)
	if err != nil {
		return nil, err
	}

	container, err := crypt.EncodeContainer(crypt.ContainerVersion, filepath.Base(opts.FilePath), salt, nonce, ciphertext)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(container)
	outputPath := filepath.Join(filepath.Dir(opts.FilePath), hex.EncodeToString(digest[:])+ContainerSuffix)

	if err := utils.WriteExclusive(outputPath, container, 0600); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrWrite, err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		absPath = outputPath
	}

	return &EncryptResult{
		OutputPath:    absPath,
		SourcePath:    opts.FilePath,
		PlaintextSize: len(plaintext),
	}, nil
}
