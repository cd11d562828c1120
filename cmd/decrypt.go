package cmd

import (
	"github.com/ajmelian/krypto/internal/crypt"
	"github.com/ajmelian/krypto/internal/ui"
	"github.com/ajmelian/krypto/internal/workflows"

	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt <containerPath> <sharedSecret> <identityToken>",
	Short: "Restores a container to its original file",
	Long: `Authenticates and decrypts a container, restoring the original file under
its stored name in the container's directory. Decryption succeeds only with
the exact shared secret and identity token the container was encrypted with;
every mismatch or corruption is reported as the same authentication failure.

Pass "-" as the shared secret to be prompted without echo.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")

		secret, err := resolveSharedSecret(args[1])
		if err != nil {
			return err
		}
		defer crypt.ZeroBytes(secret)

		spinner, cleanup := startSpinner("Deriving key and decrypting...", verbose)
		defer cleanup()

		Logger.Debugf("Decrypting %s", args[0])
		result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
			ContainerPath: args[0],
			SharedSecret:  secret,
			IdentityToken: args[2],
		})
		if err != nil {
			return Logger.ErrorfAndReturn("decryption failed: %w", err)
		}
		Logger.Infof("Restored %d bytes as %s", result.PlaintextSize, result.OriginalName)

		finalMessage := ui.Success.Sprint("✓") + " File restored successfully!\n" +
			ui.Path.Sprint(result.OutputPath)
		spinner.FinalMSG = finalMessage
		return nil
	},
}
