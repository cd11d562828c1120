package workflows

import (
	"context"
	"fmt"
	"os"

	"github.com/ajmelian/krypto/internal/crypt"
	kerrors "github.com/ajmelian/krypto/internal/errors"
)

// AnalyzeOptions configures the analyze workflow.
type AnalyzeOptions struct {
	// Path is the file to inspect.
	Path string
}

// AnalyzeResult describes the structural state of a file. It never carries
// cryptographic conclusions: a decryptable container can still fail
// authentication.
type AnalyzeResult struct {
	// Recognized is true when the file parses structurally as a container.
	Recognized bool

	// Decryptable is true when a recognized container has at least one
	// ciphertext byte after the header. Structural heuristic only.
	Decryptable bool

	// Info is a human-readable summary of what was found.
	Info string

	// Version is the container's version byte, valid only when Recognized.
	Version byte

	// OriginalName is the stored file name, valid only when Recognized.
	OriginalName string
}

// Analyze inspects a file's structure without touching any cryptographic
// material. No shared secret or identity token is required, and any version
// byte counts as recognized so future container versions still report
// cleanly here.
//
// An unparseable file is a result (Recognized=false), not an error; only a
// missing or unreadable file returns ErrInvalidInput.
func Analyze(ctx context.Context, opts AnalyzeOptions) (*AnalyzeResult, error) {
	raw, err := os.ReadFile(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", kerrors.ErrInvalidInput, opts.Path, err)
	}

	container, ok := crypt.DecodeContainer(raw, false)
	if !ok {
		return &AnalyzeResult{
			Recognized: false,
			Info:       "no signature detected",
		}, nil
	}

	ciphertextLen := len(raw) - container.HeaderLen()
	return &AnalyzeResult{
		Recognized:   true,
		Decryptable:  ciphertextLen > 0,
		Version:      container.Version,
		OriginalName: container.FileName,
		Info: fmt.Sprintf("version %d, original name %q, %d header bytes, %d ciphertext bytes",
			container.Version, container.FileName, container.HeaderLen(), ciphertextLen),
	}, nil
}
