package workflows

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajmelian/krypto/internal/crypt"
	kerrors "github.com/ajmelian/krypto/internal/errors"
)

func TestAnalyzeRandomBytes(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "random.bin")
	writeTestFile(t, path, []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06})

	result, err := Analyze(context.Background(), AnalyzeOptions{Path: path})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Recognized {
		t.Error("Expected random bytes to be unrecognized")
	}
	if result.Decryptable {
		t.Error("Expected unrecognized file to not be decryptable")
	}
	if result.Info != "no signature detected" {
		t.Errorf("Expected \"no signature detected\", got: %q", result.Info)
	}
}

func TestAnalyzeHeaderOnlyContainer(t *testing.T) {
	tmpDir := t.TempDir()

	salt := make([]byte, crypt.SaltLength)
	nonce := make([]byte, crypt.NonceLength)
	raw, err := crypt.EncodeContainer(crypt.ContainerVersion, "a.txt", salt, nonce, nil)
	if err != nil {
		t.Fatalf("Failed to encode header: %v", err)
	}

	path := filepath.Join(tmpDir, "truncated.enc")
	writeTestFile(t, path, raw)

	result, err := Analyze(context.Background(), AnalyzeOptions{Path: path})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !result.Recognized {
		t.Fatal("Expected header-only container to be recognized")
	}
	if result.Decryptable {
		t.Error("Expected zero ciphertext bytes to not be decryptable")
	}
}

func TestAnalyzeFullContainer(t *testing.T) {
	useFastProfile(t)
	tmpDir := t.TempDir()
	containerPath, _ := encryptFixture(t, tmpDir, "a.txt", []byte("data"), "user-42")

	result, err := Analyze(context.Background(), AnalyzeOptions{Path: containerPath})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !result.Recognized {
		t.Fatal("Expected container to be recognized")
	}
	if !result.Decryptable {
		t.Error("Expected container with ciphertext to be decryptable")
	}
	if result.Version != crypt.ContainerVersion {
		t.Errorf("Expected version %d, got: %d", crypt.ContainerVersion, result.Version)
	}
	if result.OriginalName != "a.txt" {
		t.Errorf("Expected original name a.txt, got: %q", result.OriginalName)
	}
	if result.Info == "" {
		t.Error("Expected a non-empty info summary")
	}
}

func TestAnalyzeFutureVersion(t *testing.T) {
	tmpDir := t.TempDir()

	salt := make([]byte, crypt.SaltLength)
	nonce := make([]byte, crypt.NonceLength)
	raw, err := crypt.EncodeContainer(9, "future.bin", salt, nonce, []byte("ciphertext"))
	if err != nil {
		t.Fatalf("Failed to encode container: %v", err)
	}

	path := filepath.Join(tmpDir, "future.enc")
	writeTestFile(t, path, raw)

	result, err := Analyze(context.Background(), AnalyzeOptions{Path: path})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !result.Recognized {
		t.Fatal("Expected future version to remain structurally recognized")
	}
	if result.Version != 9 {
		t.Errorf("Expected version 9, got: %d", result.Version)
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, err := Analyze(context.Background(), AnalyzeOptions{
		Path: filepath.Join(t.TempDir(), "does-not-exist"),
	})
	if !errors.Is(err, kerrors.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got: %v", err)
	}
}

func TestAnalyzeEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "empty")
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatalf("Failed to create empty file: %v", err)
	}

	result, err := Analyze(context.Background(), AnalyzeOptions{Path: path})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Recognized {
		t.Error("Expected empty file to be unrecognized")
	}
}
