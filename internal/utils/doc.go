// Package utils provides terminal and filesystem helpers for krypto.
//
// Terminal helpers wrap golang.org/x/term for no-echo secret prompts.
// WriteExclusive provides the locked, all-or-nothing file write the
// container output path requires.
package utils
