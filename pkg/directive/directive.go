// pkg/directive/directive.go

// Package directive carries the build directives a probe emits to the build
// orchestrator: add a library search directory, or link a library by name.
// Directives are emitted interleaved with parsing. Ordering matters, since a
// search directory must be emitted before any link directive that is expected
// to resolve from it, and every Sink in this package preserves it.
package directive

import (
	"fmt"
	"io"
)

// Kind identifies one of the two directive kinds understood by the build
// orchestrator.
type Kind string

const (
	// KindLinkSearch adds a library search directory.
	KindLinkSearch Kind = "link-search"
	// KindLinkLib links against a library by name.
	KindLinkLib Kind = "link-lib"
)

// Directive is a single instruction for the build orchestrator.
type Directive struct {
	Kind  Kind
	Value string
}

// String renders the directive in the line protocol form "<kind>=<value>".
func (d Directive) String() string {
	return string(d.Kind) + "=" + d.Value
}

// Sink receives build directives in emission order. Nothing deduplicates:
// emitting the same directory twice produces two directives.
type Sink interface {
	// AddSearchDir emits an "add library search directory" directive.
	AddSearchDir(dir string)

	// AddLib emits a "link against library" directive.
	AddLib(name string)
}

// Writer is a Sink that prints the line protocol, one directive per line.
// Standard output is the conventional build-coordination channel.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Sink writing "<kind>=<value>" lines to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// AddSearchDir writes a link-search line.
func (s *Writer) AddSearchDir(dir string) {
	fmt.Fprintln(s.w, Directive{Kind: KindLinkSearch, Value: dir})
}

// AddLib writes a link-lib line.
func (s *Writer) AddLib(name string) {
	fmt.Fprintln(s.w, Directive{Kind: KindLinkLib, Value: name})
}

// Recorder is a Sink that captures directives in emission order, for tests
// and for rendering linker arguments after a probe.
type Recorder struct {
	Directives []Directive
}

// AddSearchDir records a link-search directive.
func (r *Recorder) AddSearchDir(dir string) {
	r.Directives = append(r.Directives, Directive{Kind: KindLinkSearch, Value: dir})
}

// AddLib records a link-lib directive.
func (r *Recorder) AddLib(name string) {
	r.Directives = append(r.Directives, Directive{Kind: KindLinkLib, Value: name})
}

// LinkerArgs renders the recorded directives as linker arguments, -L<dir>
// for search directories and -l<name> for libraries, in emission order.
func (r *Recorder) LinkerArgs() []string {
	args := make([]string, 0, len(r.Directives))
	for _, d := range r.Directives {
		switch d.Kind {
		case KindLinkSearch:
			args = append(args, "-L"+d.Value)
		case KindLinkLib:
			args = append(args, "-l"+d.Value)
		}
	}
	return args
}

// Discard is a Sink that drops every directive.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) AddSearchDir(string) {}
func (discardSink) AddLib(string)       {}

// Multi returns a Sink that fans every directive out to each sink in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) AddSearchDir(dir string) {
	for _, s := range m {
		s.AddSearchDir(dir)
	}
}

func (m multiSink) AddLib(name string) {
	for _, s := range m {
		s.AddLib(name)
	}
}
