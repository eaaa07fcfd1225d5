// internal/cli/doctor.go
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/blakesmith/ar"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pcwalton/find-folly/internal/bundle"
	"github.com/pcwalton/find-folly/pkg/directive"
	"github.com/pcwalton/find-folly/pkg/folly"
)

var doctorBundle string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the Folly discovery environment",
	Long: `Check the environment step by step: the pkg-config binary, the auxiliary
fmt and gflags packages, the raw libfolly queries, the full discovery run
and the boost_context static archive.

Exits non-zero when any check fails. With --bundle, a tar.xz support bundle
holding the raw output of every check is written for bug reports.

Examples:
  findfolly doctor
  findfolly doctor --bundle folly-report.tar.xz`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().StringVar(&doctorBundle, "bundle", "", "write a tar.xz support bundle to this path")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	tool := newTool()

	failed := 0
	var reportLines []string
	var files []bundle.File

	report := func(name string, err error, detail string) {
		switch {
		case err != nil:
			failed++
			fmt.Printf("%s %s: %v\n", color.RedString("✗"), name, err)
			reportLines = append(reportLines, fmt.Sprintf("FAIL %s: %v", name, err))
		case detail != "":
			fmt.Printf("%s %s (%s)\n", color.GreenString("✓"), name, detail)
			reportLines = append(reportLines, fmt.Sprintf("ok   %s (%s)", name, detail))
		default:
			fmt.Printf("%s %s\n", color.GreenString("✓"), name)
			reportLines = append(reportLines, fmt.Sprintf("ok   %s", name))
		}
	}

	// The query tool itself.
	binPath, err := exec.LookPath(cfg.PkgConfig)
	report(fmt.Sprintf("pkg-config binary (%s)", cfg.PkgConfig), err, binPath)

	version, err := tool.Version(ctx)
	report("pkg-config version", err, version)

	// Auxiliary dependencies, resolved the same way the probe does.
	for _, pkg := range []string{"fmt", "gflags"} {
		rec := &directive.Recorder{}
		err := tool.Probe(ctx, pkg, true, rec)
		report(pkg+" package", err, strings.Join(rec.LinkerArgs(), " "))
	}

	// Raw libfolly queries. The probe tolerates a non-zero exit here, but a
	// healthy installation answers with zero, so doctor reports any error.
	libsOut, err := tool.Libs(ctx, "libfolly", true)
	report("libfolly link flags", err, strings.TrimSpace(libsOut))
	files = append(files, bundle.File{Name: "libfolly-libs.txt", Data: []byte(libsOut)})

	cflagsOut, err := tool.Cflags(ctx, "libfolly", true)
	report("libfolly compile flags", err, strings.TrimSpace(cflagsOut))
	files = append(files, bundle.File{Name: "libfolly-cflags.txt", Data: []byte(cflagsOut)})

	// The full discovery sequence, directives captured instead of emitted.
	rec := &directive.Recorder{}
	lib, err := newProber(rec).Probe(ctx)
	report("full discovery", err, fmt.Sprintf("%d directives", len(rec.Directives)))

	var trace strings.Builder
	for _, d := range rec.Directives {
		trace.WriteString(d.String())
		trace.WriteByte('\n')
	}
	files = append(files, bundle.File{Name: "directives.txt", Data: []byte(trace.String())})

	if lib != nil {
		if data, err := json.MarshalIndent(lib, "", "  "); err == nil {
			files = append(files, bundle.File{Name: "result.json", Data: data})
		}

		dirs := make([]string, 0, len(lib.LibDirs)+len(cfg.ExtraLibDirs))
		dirs = append(dirs, lib.LibDirs...)
		dirs = append(dirs, cfg.ExtraLibDirs...)
		if archive, ok := folly.FindBoostContextArchive(afero.NewOsFs(), dirs); ok {
			member, err := archiveFirstMember(archive)
			report(fmt.Sprintf("boost_context archive (%s)", archive), err, "first member "+member)
		} else {
			report("boost_context archive", folly.ErrBoostContextNotFound, "")
		}
	}

	if doctorBundle != "" {
		if data, err := yaml.Marshal(cfg); err == nil {
			files = append(files, bundle.File{Name: "config.yaml", Data: data})
		}
		files = append(files, bundle.File{Name: "doctor.txt", Data: []byte(strings.Join(reportLines, "\n") + "\n")})
		if err := bundle.Create(doctorBundle, files); err != nil {
			return fmt.Errorf("writing support bundle: %w", err)
		}
		fmt.Printf("Support bundle written to %s\n", doctorBundle)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(reportLines))
	}
	return nil
}

// archiveFirstMember opens path as a static library archive and returns the
// name of its first member, verifying the ar magic and header layout.
func archiveFirstMember(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hdr, err := ar.NewReader(f).Next()
	if err != nil {
		return "", fmt.Errorf("reading archive: %w", err)
	}
	return strings.TrimSpace(hdr.Name), nil
}
