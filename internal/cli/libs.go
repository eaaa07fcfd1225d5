// internal/cli/libs.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcwalton/find-folly/pkg/directive"
)

var libsCmd = &cobra.Command{
	Use:   "libs",
	Short: "Print linker flags for Folly",
	Long: `Locate Folly and print one line of linker flags, -L for every search
directory and -l for every library, in resolution order.

Examples:
  findfolly libs
  cc main.o $(findfolly libs)`,
	Args: cobra.NoArgs,
	RunE: runLibs,
}

func runLibs(cmd *cobra.Command, args []string) error {
	rec := &directive.Recorder{}
	if _, err := newProber(rec).Probe(context.Background()); err != nil {
		return err
	}
	fmt.Println(strings.Join(rec.LinkerArgs(), " "))
	return nil
}
