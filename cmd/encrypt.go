package cmd

import (
	"github.com/ajmelian/krypto/internal/crypt"
	"github.com/ajmelian/krypto/internal/ui"
	"github.com/ajmelian/krypto/internal/workflows"

	"github.com/spf13/cobra"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt <filePath> <sharedSecret> <identityToken>",
	Short: "Encrypts a file into an identity-bound container",
	Long: `Encrypts a single file into an authenticated container bound to the given
identity token. The container is written next to the source file under a
digest-derived name that reveals nothing about the original.

Pass "-" as the shared secret to be prompted without echo.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")

		secret, err := resolveSharedSecret(args[1])
		if err != nil {
			return err
		}
		defer crypt.ZeroBytes(secret)

		spinner, cleanup := startSpinner("Deriving key and encrypting...", verbose)
		defer cleanup()

		Logger.Debugf("Encrypting %s", args[0])
		result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
			FilePath:      args[0],
			SharedSecret:  secret,
			IdentityToken: args[2],
		})
		if err != nil {
			return Logger.ErrorfAndReturn("encryption failed: %w", err)
		}
		Logger.Infof("Encrypted %d bytes from %s", result.PlaintextSize, result.SourcePath)

		finalMessage := ui.Success.Sprint("✓") + " File encrypted successfully!\n" +
			ui.Path.Sprint(result.OutputPath)
		spinner.FinalMSG = finalMessage
		return nil
	},
}
