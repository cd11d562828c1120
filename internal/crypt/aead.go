package crypt

import (
	"fmt"

	kerrors "github.com/ajmelian/krypto/internal/errors"

	"golang.org/x/crypto/chacha20poly1305"
)

// Seal encrypts plaintext with XChaCha20-Poly1305 under key and nonce, with
// empty associated data. The output includes the authentication tag.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open authenticates and decrypts ciphertext. Every failure mode — wrong
// key, corrupted bytes, truncated ciphertext — is reported as the same bare
// ErrAuthentication so callers cannot distinguish causes.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, kerrors.ErrAuthentication
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, kerrors.ErrAuthentication
	}

	return plaintext, nil
}
