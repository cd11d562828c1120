package cmd

import (
	"github.com/ajmelian/krypto/internal/configs"
	logger "github.com/ajmelian/krypto/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "krypto",
		Short: "Krypto - encrypt, decrypt, and inspect identity-bound file containers",
		Long: `Krypto encrypts single files into authenticated containers bound to a
specific identity. A container can only be decrypted with the same shared
secret and the same identity token it was encrypted with.

Usage:
  krypto <command> [flags]

Available Commands:
  encrypt    Encrypt a file into a container
  decrypt    Restore a container to its original file
  analyze    Inspect a file's container structure
  version    Print the krypto version

Run 'krypto help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing krypto with verbose=%t, debug=%t", verbose, debug)

			if err := configs.InitCryptoSettings(); err != nil {
				return err
			}
			Logger.Debugf("Argon2id profile: time=%d, memory=%d KiB, threads=%d",
				configs.CryptoSettings.Argon2Time,
				configs.CryptoSettings.Argon2Memory,
				configs.CryptoSettings.Argon2Threads)
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(analyzeCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// Helper functions for testing

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
