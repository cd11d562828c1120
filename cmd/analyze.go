package cmd

import (
	"fmt"

	"github.com/ajmelian/krypto/internal/ui"
	"github.com/ajmelian/krypto/internal/workflows"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <containerPath>",
	Short: "Inspects a file's container structure",
	Long: `Reports whether a file is structurally a krypto container, without
requiring the shared secret or identity token and without attempting
decryption. A recognized container with ciphertext present is reported as
decryptable; that is a structural statement only and says nothing about
whether authentication would succeed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting analyze command")

		result, err := workflows.Analyze(cmd.Context(), workflows.AnalyzeOptions{Path: args[0]})
		if err != nil {
			return Logger.ErrorfAndReturn("analysis failed: %w", err)
		}

		if !result.Recognized {
			fmt.Println(ui.Error.Sprint("✗") + " unrecognized: " + result.Info)
			return nil
		}

		marker := ui.Success.Sprint("✓")
		if !result.Decryptable {
			marker = ui.Warning.Sprint("!")
		}
		fmt.Println(marker + " recognized: " + result.Info)
		if result.Decryptable {
			fmt.Println(ui.Info.Sprint("→") + " run " +
				ui.Code.Sprint("krypto decrypt "+args[0]+" <sharedSecret> <identityToken>") +
				" to restore the original file")
		} else {
			fmt.Println(ui.Info.Sprint("→") + " container has no ciphertext and cannot be decrypted")
		}
		return nil
	},
}
