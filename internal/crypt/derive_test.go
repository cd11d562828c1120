package crypt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ajmelian/krypto/internal/configs"
	kerrors "github.com/ajmelian/krypto/internal/errors"
)

// fastProfile keeps derivation cheap in tests. Production cost is a
// deployment choice and irrelevant to correctness here.
func fastProfile() *configs.CryptoProfile {
	return &configs.CryptoProfile{
		Argon2Time:    1,
		Argon2Memory:  64,
		Argon2Threads: 1,
	}
}

func TestDeriveKeyLength(t *testing.T) {
	key, err := DeriveKey([]byte("pepper"), []byte("user-42"), testSalt(), fastProfile())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(key) != KeyLength {
		t.Fatalf("Expected %d-byte key, got: %d", KeyLength, len(key))
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	key1, err := DeriveKey([]byte("pepper"), []byte("user-42"), testSalt(), fastProfile())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	key2, err := DeriveKey([]byte("pepper"), []byte("user-42"), testSalt(), fastProfile())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !bytes.Equal(key1, key2) {
		t.Fatal("Expected identical inputs to derive identical keys")
	}
}

func TestDeriveKeyInputSensitivity(t *testing.T) {
	base, err := DeriveKey([]byte("pepper"), []byte("user-42"), testSalt(), fastProfile())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	otherToken, _ := DeriveKey([]byte("pepper"), []byte("user-43"), testSalt(), fastProfile())
	if bytes.Equal(base, otherToken) {
		t.Error("Expected a different identity token to derive a different key")
	}

	otherSecret, _ := DeriveKey([]byte("salt"), []byte("user-42"), testSalt(), fastProfile())
	if bytes.Equal(base, otherSecret) {
		t.Error("Expected a different shared secret to derive a different key")
	}

	otherSalt, _ := DeriveKey([]byte("pepper"), []byte("user-42"), testNonce()[:SaltLength], fastProfile())
	if bytes.Equal(base, otherSalt) {
		t.Error("Expected a different salt to derive a different key")
	}
}

func TestDeriveKeySeparatorBinding(t *testing.T) {
	// "ab" + "c" and "a" + "bc" must not collapse into the same password.
	key1, err := DeriveKey([]byte("ab"), []byte("c"), testSalt(), fastProfile())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	key2, err := DeriveKey([]byte("a"), []byte("bc"), testSalt(), fastProfile())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if bytes.Equal(key1, key2) {
		t.Fatal("Expected secret/token boundary to affect the derived key")
	}
}

func TestDeriveKeyUnusableProfile(t *testing.T) {
	// argon2 rejects a zero pass count by panicking; DeriveKey must turn
	// that into a key derivation error instead of crashing.
	profile := &configs.CryptoProfile{Argon2Time: 0, Argon2Memory: 64, Argon2Threads: 1}

	key, err := DeriveKey([]byte("pepper"), []byte("user-42"), testSalt(), profile)
	if !errors.Is(err, kerrors.ErrKeyDerivation) {
		t.Fatalf("Expected ErrKeyDerivation, got: %v", err)
	}
	if key != nil {
		t.Error("Expected no key on derivation failure")
	}
}

func TestNewSaltAndNonceAreFresh(t *testing.T) {
	salt1, err := NewSalt()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	salt2, err := NewSalt()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(salt1) != SaltLength {
		t.Errorf("Expected %d-byte salt, got: %d", SaltLength, len(salt1))
	}
	if bytes.Equal(salt1, salt2) {
		t.Error("Expected two salts to differ")
	}

	nonce1, err := NewNonce()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	nonce2, err := NewNonce()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(nonce1) != NonceLength {
		t.Errorf("Expected %d-byte nonce, got: %d", NonceLength, len(nonce1))
	}
	if bytes.Equal(nonce1, nonce2) {
		t.Error("Expected two nonces to differ")
	}
}
