// internal/cli/cflags.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcwalton/find-folly/pkg/directive"
)

var cflagsCmd = &cobra.Command{
	Use:   "cflags",
	Short: "Print compiler flags for Folly",
	Long: `Locate Folly and print one line of compiler flags: -I for every include
path, followed by the extra flags such as -isysroot rewrites.

Examples:
  findfolly cflags
  cc -c main.c $(findfolly cflags)`,
	Args: cobra.NoArgs,
	RunE: runCflags,
}

func runCflags(cmd *cobra.Command, args []string) error {
	lib, err := newProber(directive.Discard).Probe(context.Background())
	if err != nil {
		return err
	}

	flags := make([]string, 0, len(lib.IncludePaths)+len(lib.OtherCflags))
	for _, dir := range lib.IncludePaths {
		flags = append(flags, "-I"+dir)
	}
	flags = append(flags, lib.OtherCflags...)
	fmt.Println(strings.Join(flags, " "))
	return nil
}
