// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pcwalton/find-folly/pkg/config"
	"github.com/pcwalton/find-folly/pkg/directive"
	"github.com/pcwalton/find-folly/pkg/folly"
	"github.com/pcwalton/find-folly/pkg/pkgconf"
)

var (
	cfgFile      string
	pkgConfigBin string
	extraLibDirs []string
	debug        bool
	quiet        bool

	cfg    *config.Config
	logger *logrus.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "findfolly",
	Short: "Locate the Folly C++ library",
	Long: `findfolly - Locate the Folly C++ library

Folly's pkg-config description is incomplete: it omits the fmt, gflags and
boost_context dependencies and on some installs names raw library files
instead of -l flags. findfolly knows these idiosyncrasies, works around them
and prints the build directives and compiler flags needed to build against
Folly.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/findfolly/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&pkgConfigBin, "pkg-config", "", "pkg-config binary to invoke")
	rootCmd.PersistentFlags().StringArrayVar(&extraLibDirs, "extra-lib-dir", nil, "additional directory searched for boost_context (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "only log errors")

	// Add commands
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(libsCmd)
	rootCmd.AddCommand(cflagsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Override config with flags
	if pkgConfigBin != "" {
		cfg.PkgConfig = pkgConfigBin
	}
	cfg.ExtraLibDirs = append(cfg.ExtraLibDirs, extraLibDirs...)
	if debug {
		cfg.Debug = true
	}
	if quiet {
		cfg.Quiet = true
	}

	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	switch {
	case cfg.Quiet:
		logger.SetLevel(logrus.ErrorLevel)
	case cfg.Debug:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}

// newTool builds the pkg-config wrapper from the resolved configuration.
func newTool() *pkgconf.Tool {
	return pkgconf.New(&pkgconf.Config{
		Runner: &pkgconf.ExecRunner{Bin: cfg.PkgConfig},
		Logger: logger,
	})
}

// newProber builds a prober emitting directives to sink.
func newProber(sink directive.Sink) *folly.Prober {
	return folly.NewProber(&folly.Config{
		Tool:         newTool(),
		Sink:         sink,
		Logger:       logger,
		ExtraLibDirs: cfg.ExtraLibDirs,
	})
}
