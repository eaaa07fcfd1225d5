// pkg/folly/types.go

// Package folly locates the Folly C++ library and its transitive
// dependencies through pkg-config. Folly's package description is
// incomplete: it omits the fmt, gflags and boost_context dependencies and on
// some installs names raw library files instead of -l flags. The prober
// knows these idiosyncrasies and works around them, emitting build
// directives as it goes and returning the aggregate needed to compile
// against the library.
package folly

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/pcwalton/find-folly/pkg/directive"
	"github.com/pcwalton/find-folly/pkg/pkgconf"
)

// Library describes a located Folly installation. The caller owns the
// returned value; the prober never retains or mutates it.
type Library struct {
	// LibDirs are the -L directories pkg-config reported for libfolly, in
	// report order, duplicates retained.
	LibDirs []string `json:"lib_dirs"`

	// IncludePaths are the -I directories reported for libfolly, except SDK
	// header directories, which are rewritten into OtherCflags.
	IncludePaths []string `json:"include_paths"`

	// OtherCflags are extra compile flags appended as flag/value pairs,
	// currently only -isysroot rewrites.
	OtherCflags []string `json:"other_cflags"`
}

// Config configures a Prober. The zero value works: every field has a
// usable default.
type Config struct {
	// Tool queries pkg-config. Nil means a default tool running the system
	// pkg-config binary.
	Tool *pkgconf.Tool

	// Sink receives build directives as they are discovered. Nil means the
	// line protocol on standard output, the build-coordination channel;
	// pass directive.Discard to suppress emission.
	Sink directive.Sink

	// Fs is the filesystem checked for boost_context variants. Nil means
	// the host filesystem.
	Fs afero.Fs

	// Logger receives debug and warn output. Nil discards it unless Debug
	// is set.
	Logger logrus.FieldLogger

	// ExtraLibDirs are searched for boost_context after the directories
	// pkg-config reports, each also emitting a search directive.
	ExtraLibDirs []string

	// Debug swaps the default discard logger for a stderr logger at debug
	// level. Ignored when Logger is set.
	Debug bool
}

// Prober runs the discovery sequence.
type Prober struct {
	tool         *pkgconf.Tool
	sink         directive.Sink
	fs           afero.Fs
	logger       logrus.FieldLogger
	extraLibDirs []string
}

// NewProber creates a Prober from cfg. A nil cfg yields a Prober with all
// defaults.
func NewProber(cfg *Config) *Prober {
	if cfg == nil {
		cfg = &Config{}
	}

	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		if cfg.Debug {
			l.SetOutput(os.Stderr)
			l.SetLevel(logrus.DebugLevel)
		} else {
			l.SetOutput(io.Discard)
		}
		logger = l
	}

	tool := cfg.Tool
	if tool == nil {
		tool = pkgconf.New(&pkgconf.Config{Logger: logger})
	}

	sink := cfg.Sink
	if sink == nil {
		sink = directive.NewWriter(os.Stdout)
	}

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Prober{
		tool:         tool,
		sink:         sink,
		fs:           fs,
		logger:       logger,
		extraLibDirs: cfg.ExtraLibDirs,
	}
}
