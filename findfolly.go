// findfolly.go

// Package findfolly locates the Folly C++ library and its transitive
// dependencies through pkg-config.
//
// In theory pkg-config alone would suffice, because Folly ships a .pc file.
// In practice that file doesn't fully describe Folly's dependencies and it
// has bugs. This package knows about these idiosyncrasies and provides
// workarounds for them: it resolves the missing fmt and gflags packages,
// parses raw library file references on the link line, locates the
// boost_context archive by hand and rewrites macOS SDK header paths to
// -isysroot form.
//
// The one-call path prints build directives (link-search=<dir>,
// link-lib=<name>) to standard output and returns the aggregate a build
// script compiles with:
//
//	folly, err := findfolly.Probe(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	// compile with folly.IncludePaths and folly.OtherCflags; the linker
//	// directives have already been emitted.
//
// For custom wiring (a different pkg-config binary, captured directives,
// extra search directories) build a Prober through NewProber.
package findfolly

import (
	"context"

	"github.com/pcwalton/find-folly/pkg/folly"
)

// Re-export the discovery types for convenience
type (
	Library         = folly.Library
	Config          = folly.Config
	Prober          = folly.Prober
	DependencyError = folly.DependencyError
	PkgConfigError  = folly.PkgConfigError
	ParseError      = folly.ParseError
)

// ErrBoostContextNotFound is re-exported for errors.Is checks.
var ErrBoostContextNotFound = folly.ErrBoostContextNotFound

// Probe locates Folly with default wiring: the system pkg-config binary,
// build directives printed to standard output, the host filesystem.
func Probe(ctx context.Context) (*Library, error) {
	return folly.NewProber(nil).Probe(ctx)
}

// NewProber creates a prober with custom wiring; see Config for the knobs.
func NewProber(cfg *Config) *Prober {
	return folly.NewProber(cfg)
}
