// pkg/folly/errors.go
package folly

import (
	"errors"
	"fmt"
)

// ErrBoostContextNotFound indicates no boost_context static library variant
// exists in any searched directory.
var ErrBoostContextNotFound = errors.New(
	"could not find `boost_context`; make sure either `libboost_context.a` or " +
		"`libboost_context-mt.a` is located in the same directory as Folly")

// DependencyError reports that one of the auxiliary dependencies missing
// from Folly's package description could not be resolved.
type DependencyError struct {
	Name string // pkg-config package that failed, "fmt" or "gflags"
	Err  error  // underlying resolution error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("`%s` dependency couldn't be located: %v", e.Name, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// PkgConfigError reports that pkg-config could not be launched for the main
// libfolly package.
type PkgConfigError struct {
	Err error
}

func (e *PkgConfigError) Error() string {
	return fmt.Sprintf("main `folly` package couldn't be located: %v", e.Err)
}

func (e *PkgConfigError) Unwrap() error {
	return e.Err
}

// ParseError reports pkg-config output that could not be split into shell
// words. Mismatched quoting usually means a damaged .pc file.
type ParseError struct {
	Output string // the raw output that failed to tokenize
	Err    error  // underlying tokenizer error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing pkg-config output %q: %v", e.Output, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
