// pkg/pkgconf/pkgconf.go

// Package pkgconf wraps the pkg-config command line tool. It issues the
// --libs and --cflags queries the discovery steps are built on and offers a
// standard resolution path that turns a package's linker flags straight into
// build directives.
package pkgconf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/pcwalton/find-folly/pkg/directive"
)

// Tool queries compile and link flags for installed libraries by invoking
// the external pkg-config command.
type Tool struct {
	runner Runner
	logger logrus.FieldLogger
}

// Config configures a Tool.
type Config struct {
	// Runner launches the external command. Nil means an ExecRunner that
	// honors $PKG_CONFIG.
	Runner Runner

	// Logger receives debug output. Nil discards it.
	Logger logrus.FieldLogger
}

// New creates a Tool from cfg. A nil cfg yields a Tool with all defaults.
func New(cfg *Config) *Tool {
	if cfg == nil {
		cfg = &Config{}
	}
	runner := cfg.Runner
	if runner == nil {
		runner = &ExecRunner{}
	}
	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Tool{runner: runner, logger: logger}
}

// Libs returns the raw linker flags for pkg. Static mode passes --static so
// that private, statically linked dependencies are listed too. When the tool
// runs but exits non-zero the captured output is still returned alongside
// the *exec.ExitError, callers decide how tolerant to be.
func (t *Tool) Libs(ctx context.Context, pkg string, static bool) (string, error) {
	return t.query(ctx, "--libs", pkg, static)
}

// Cflags returns the raw compile flags for pkg, with the same static-mode
// and error semantics as Libs.
func (t *Tool) Cflags(ctx context.Context, pkg string, static bool) (string, error) {
	return t.query(ctx, "--cflags", pkg, static)
}

func (t *Tool) query(ctx context.Context, mode, pkg string, static bool) (string, error) {
	args := make([]string, 0, 3)
	if static {
		args = append(args, "--static")
	}
	args = append(args, mode, pkg)

	t.logger.WithField("args", args).Debug("invoking pkg-config")
	out, err := t.runner.Output(ctx, args...)
	if !utf8.Valid(out) {
		panic(fmt.Sprintf("pkgconf: pkg-config %s output for %q is not valid UTF-8", mode, pkg))
	}
	return string(out), err
}

// Probe resolves pkg's linker flags and forwards them to sink: every -L
// flag becomes a search directory and every -l flag a library. This is the
// standard resolution path used for packages that carry complete pkg-config
// metadata. Unlike the raw queries it treats every failure as fatal,
// including a non-zero exit, which is how pkg-config reports an unknown
// package.
func (t *Tool) Probe(ctx context.Context, pkg string, static bool, sink directive.Sink) error {
	out, err := t.Libs(ctx, pkg, static)
	if err != nil {
		if msg := exitStderr(err); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}

	words, err := ShellWords(out)
	if err != nil {
		return fmt.Errorf("tokenizing %s linker flags: %w", pkg, err)
	}
	for _, word := range words {
		switch {
		case strings.HasPrefix(word, "-L"):
			sink.AddSearchDir(strings.TrimPrefix(word, "-L"))
		case strings.HasPrefix(word, "-l"):
			sink.AddLib(strings.TrimPrefix(word, "-l"))
		}
	}
	return nil
}

// Version reports the pkg-config tool's own version, for diagnostics.
func (t *Tool) Version(ctx context.Context) (string, error) {
	out, err := t.runner.Output(ctx, "--version")
	if err != nil {
		return "", fmt.Errorf("querying pkg-config version: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// IsExitError reports whether err came from a process that launched and ran
// but exited non-zero, as opposed to one that could not be started at all.
func IsExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// exitStderr extracts the captured standard error text from an exit error,
// or returns "" when there is none.
func exitStderr(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return ""
}
