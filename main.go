package main

import (
	"fmt"
	"os"

	"github.com/ajmelian/krypto/cmd"
	"github.com/ajmelian/krypto/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("✗")+" "+err.Error())
		os.Exit(1)
	}
}
