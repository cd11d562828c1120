package cmd

import (
	"fmt"

	"github.com/ajmelian/krypto/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the krypto version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		myFigure := figure.NewColorFigure("Krypto", "alligator2", "green", true)
		myFigure.Print()
		fmt.Println(ui.Muted.Sprint("identity-bound file encryption"))
		fmt.Println()
		fmt.Printf("%s krypto %s\n", ui.Success.Sprint("✓"), ui.Highlight.Sprint(Version))
	},
}
