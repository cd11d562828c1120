// Package ui provides semantic terminal formatting for krypto output.
//
// Formatters pair a color with a plain-text fallback so output stays
// readable when color is unavailable or disabled. The NO_COLOR environment
// variable and fatih/color's terminal detection are both respected.
//
// # Usage
//
//	fmt.Println(ui.Success.Sprint("✓") + " container written")
//	fmt.Println(ui.Path.Sprint(outputPath))
//
// Prefer the semantic names (Success, Error, Path, Highlight) over raw
// colors so meaning survives a palette change.
package ui
