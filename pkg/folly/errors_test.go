// pkg/folly/errors_test.go
package folly

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencyError(t *testing.T) {
	t.Parallel()

	inner := errors.New("exit status 1")
	err := &DependencyError{Name: "fmt", Err: inner}

	assert.Equal(t, "`fmt` dependency couldn't be located: exit status 1", err.Error())
	require.ErrorIs(t, err, inner)
}

func TestPkgConfigError(t *testing.T) {
	t.Parallel()

	inner := errors.New("executable file not found in $PATH")
	err := &PkgConfigError{Err: inner}

	assert.Equal(t, "main `folly` package couldn't be located: executable file not found in $PATH", err.Error())
	require.ErrorIs(t, err, inner)
}

func TestParseError(t *testing.T) {
	t.Parallel()

	inner := errors.New("unterminated quote")
	err := &ParseError{Output: "-L'/opt", Err: inner}

	assert.Contains(t, err.Error(), `"-L'/opt"`)
	require.ErrorIs(t, err, inner)
}

func TestBoostContextSentinel(t *testing.T) {
	t.Parallel()

	assert.Contains(t, ErrBoostContextNotFound.Error(), "libboost_context.a")
	assert.Contains(t, ErrBoostContextNotFound.Error(), "libboost_context-mt.a")
	assert.Contains(t, ErrBoostContextNotFound.Error(), "same directory as Folly")
}
