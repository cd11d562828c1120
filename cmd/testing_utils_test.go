// Testing utilities shared between the cmd integration tests: environment
// setup with a pinned cheap Argon2id profile, and stdout/stderr capture.
package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajmelian/krypto/internal/configs"
)

// setupTestEnvironment points the user config dir at a temp directory and
// pins a cheap Argon2id profile through the real config-file path, so the
// commands under test exercise the TOML override exactly as a deployment
// would. Returns the temp working directory.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	originalUserSettings := configs.UserKryptoSettings
	originalCryptoSettings := configs.CryptoSettings
	t.Cleanup(func() {
		configs.UserKryptoSettings = originalUserSettings
		configs.CryptoSettings = originalCryptoSettings
		ResetGlobalState()
	})

	configs.UserKryptoSettings = &configs.UserSettings{
		UserConfigsPath: filepath.Join(tmpDir, "config", "krypto"),
	}

	file := configs.ConfigFile{
		Argon2: configs.Argon2Config{Time: 1, MemoryKiB: 64, Threads: 1},
	}
	if err := configs.SaveTOML(configs.ConfigFilePath(), file); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	return tmpDir
}

// runCommand executes the root command with the given arguments, capturing
// combined stdout and stderr.
func runCommand(args ...string) (string, error) {
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stdoutReader)
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, stderrReader)
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers and restore
	stdoutWriter.Close()
	stderrWriter.Close()
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output from both streams
	output := <-outputChan
	output += <-outputChan

	return output, err
}

// writeTestFile is a helper to write test files with 0600 permissions.
func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
}
