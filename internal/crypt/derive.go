package crypt

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/ajmelian/krypto/internal/configs"
	kerrors "github.com/ajmelian/krypto/internal/errors"

	"golang.org/x/crypto/argon2"
)

// DeriveKey stretches the shared secret and identity token into a 32-byte
// AEAD key using Argon2id over sharedSecret || "|" || identityToken with
// the given salt and cost profile.
//
// The caller exclusively owns the returned key and must zero it after use,
// on every exit path.
func DeriveKey(sharedSecret, identityToken, salt []byte, profile *configs.CryptoProfile) (key []byte, err error) {
	// argon2 panics when it cannot satisfy the requested parameters, e.g.
	// the working memory cannot be allocated. Surface that as a key
	// derivation failure instead of crashing the process.
	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("%w: %v", kerrors.ErrKeyDerivation, r)
		}
	}()

	password := make([]byte, 0, len(sharedSecret)+1+len(identityToken))
	password = append(password, sharedSecret...)
	password = append(password, '|')
	password = append(password, identityToken...)
	defer ZeroBytes(password)

	key = argon2.IDKey(password, salt, profile.Argon2Time, profile.Argon2Memory, profile.Argon2Threads, KeyLength)
	return key, nil
}

// NewSalt returns a fresh random key-derivation salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	return salt, nil
}

// NewNonce returns a fresh random AEAD nonce. Nonce uniqueness per derived
// key is the load-bearing AEAD invariant: a repeated nonce under the same
// key breaks both confidentiality and integrity. Each encryption draws a
// new nonce independently of the salt.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceLength)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	return nonce, nil
}
