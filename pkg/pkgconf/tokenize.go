// pkg/pkgconf/tokenize.go
package pkgconf

import (
	"mvdan.cc/sh/v3/shell"
)

// ShellWords splits pkg-config output into words the way a POSIX shell
// would, honoring quotes and backslash escapes. Linker flag lines can carry
// quoted paths with spaces, so this is deliberately stricter than the plain
// whitespace split used for compile flags.
//
// Variable references are resolved through noEnv, so "$HOME/lib" collapses
// to "/lib" rather than staying literal. pkg-config expands its variables
// before printing, so well-formed output never carries any.
func ShellWords(src string) ([]string, error) {
	return shell.Fields(src, noEnv)
}

// noEnv resolves every variable to the empty string. The text being split is
// tool output, not a script, and must not expand host environment variables.
func noEnv(string) string { return "" }
