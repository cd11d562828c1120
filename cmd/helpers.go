package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	kerrors "github.com/ajmelian/krypto/internal/errors"
	"github.com/ajmelian/krypto/internal/ui"
	"github.com/ajmelian/krypto/internal/utils"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
// This ensures consistent output formatting across all commands.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		Logger.Debugf("Starting spinner in non-verbose mode")
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			Logger.Debugf("Restoring log output")
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			Logger.Debugf("Stopping spinner")
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// resolveSharedSecret returns the shared secret from the CLI argument.
// An argument of "-" prompts on the terminal without echoing, so the secret
// stays out of shell history and process listings.
func resolveSharedSecret(arg string) ([]byte, error) {
	if arg != "-" {
		Logger.WarnfAlways("shared secret passed as an argument is visible in the process list; pass - to be prompted instead")
		return []byte(arg), nil
	}

	secret, err := utils.ReadPassphrase("Enter shared secret: ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidInput, err)
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: shared secret must not be empty", kerrors.ErrInvalidInput)
	}

	return secret, nil
}
