// internal/cli/probe.go
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcwalton/find-folly/pkg/directive"
)

var probeJSON bool

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Locate Folly and emit build directives",
	Long: `Locate Folly and its undeclared dependencies.

Build directives (link-search=<dir>, link-lib=<name>) are printed to standard
output in resolution order. The aggregate summary goes to standard error so
the directive stream stays clean for consumption by a build script.

Examples:
  findfolly probe
  findfolly probe --json
  findfolly probe --extra-lib-dir /opt/boost/lib`,
	Args: cobra.NoArgs,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().BoolVar(&probeJSON, "json", false, "print the result as JSON instead of a summary")
}

func runProbe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	lib, err := newProber(directive.NewWriter(os.Stdout)).Probe(ctx)
	if err != nil {
		return err
	}

	if probeJSON {
		data, err := json.MarshalIndent(lib, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(os.Stderr, string(data))
		return nil
	}

	fmt.Fprintf(os.Stderr, "Lib dirs:      %s\n", strings.Join(lib.LibDirs, " "))
	fmt.Fprintf(os.Stderr, "Include paths: %s\n", strings.Join(lib.IncludePaths, " "))
	fmt.Fprintf(os.Stderr, "Other cflags:  %s\n", strings.Join(lib.OtherCflags, " "))
	return nil
}
