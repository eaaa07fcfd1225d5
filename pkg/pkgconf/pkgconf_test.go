// pkg/pkgconf/pkgconf_test.go
package pkgconf

import (
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcwalton/find-folly/pkg/directive"
)

// fakeRunner returns canned output and records every argument list it saw.
type fakeRunner struct {
	out  []byte
	err  error
	args [][]string
}

func (r *fakeRunner) Output(_ context.Context, args ...string) ([]byte, error) {
	r.args = append(r.args, args)
	return r.out, r.err
}

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

// exitError produces a genuine *exec.ExitError with stderr attached, the
// same shape ExecRunner returns for a failed query.
func exitError(t *testing.T) *exec.ExitError {
	t.Helper()
	skipWithoutShell(t)

	err := exec.Command("sh", "-c", "exit 7").Run()
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	exitErr.Stderr = []byte("Package fmt was not found in the pkg-config search path.\n")
	return exitErr
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	tool := New(nil)
	require.NotNil(t, tool)
	assert.IsType(t, &ExecRunner{}, tool.runner)
	assert.NotNil(t, tool.logger)
}

func TestQueryArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call func(*Tool) (string, error)
		want []string
	}{
		{
			name: "static libs",
			call: func(tool *Tool) (string, error) {
				return tool.Libs(context.Background(), "libfolly", true)
			},
			want: []string{"--static", "--libs", "libfolly"},
		},
		{
			name: "dynamic libs",
			call: func(tool *Tool) (string, error) {
				return tool.Libs(context.Background(), "libfolly", false)
			},
			want: []string{"--libs", "libfolly"},
		},
		{
			name: "static cflags",
			call: func(tool *Tool) (string, error) {
				return tool.Cflags(context.Background(), "libfolly", true)
			},
			want: []string{"--static", "--cflags", "libfolly"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			runner := &fakeRunner{out: []byte("-lfolly\n")}
			out, err := tc.call(New(&Config{Runner: runner}))
			require.NoError(t, err)
			assert.Equal(t, "-lfolly\n", out)
			require.Len(t, runner.args, 1)
			assert.Equal(t, tc.want, runner.args[0])
		})
	}
}

func TestLibsKeepsOutputOnExitError(t *testing.T) {
	runner := &fakeRunner{out: []byte("-lfolly\n"), err: exitError(t)}

	out, err := New(&Config{Runner: runner}).Libs(context.Background(), "libfolly", true)
	require.Error(t, err)
	assert.True(t, IsExitError(err))
	assert.Equal(t, "-lfolly\n", out)
}

func TestQueryPanicsOnInvalidUTF8(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{out: []byte{0xff, 0xfe, 0xfd}}
	tool := New(&Config{Runner: runner})

	require.Panics(t, func() {
		_, _ = tool.Libs(context.Background(), "libfolly", true)
	})
}

func TestProbeEmitsDirectives(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{out: []byte("-L/usr/local/lib -L'/opt/fmt libs' -lfmt -pthread\n")}
	tool := New(&Config{Runner: runner})

	var rec directive.Recorder
	require.NoError(t, tool.Probe(context.Background(), "fmt", true, &rec))

	assert.Equal(t, []directive.Directive{
		{Kind: directive.KindLinkSearch, Value: "/usr/local/lib"},
		{Kind: directive.KindLinkSearch, Value: "/opt/fmt libs"},
		{Kind: directive.KindLinkLib, Value: "fmt"},
	}, rec.Directives)
	assert.Equal(t, [][]string{{"--static", "--libs", "fmt"}}, runner.args)
}

func TestProbeFailsOnExitError(t *testing.T) {
	runner := &fakeRunner{err: exitError(t)}
	tool := New(&Config{Runner: runner})

	err := tool.Probe(context.Background(), "fmt", true, &directive.Recorder{})
	require.Error(t, err)
	assert.True(t, IsExitError(err))
	assert.Contains(t, err.Error(), "was not found")
}

func TestProbeFailsOnLaunchError(t *testing.T) {
	t.Parallel()

	launchErr := errors.New("fork/exec pkg-config: no such file or directory")
	runner := &fakeRunner{err: launchErr}
	tool := New(&Config{Runner: runner})

	err := tool.Probe(context.Background(), "gflags", true, &directive.Recorder{})
	require.ErrorIs(t, err, launchErr)
	assert.False(t, IsExitError(err))
}

func TestProbeFailsOnMalformedOutput(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{out: []byte("-L'/unterminated")}
	tool := New(&Config{Runner: runner})

	err := tool.Probe(context.Background(), "fmt", true, &directive.Recorder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tokenizing")
}

func TestShellWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "plain flags",
			in:   "-L/usr/lib -lfolly\n",
			want: []string{"-L/usr/lib", "-lfolly"},
		},
		{
			name: "single quoted path with spaces",
			in:   "-L'/opt/my libs' -lfolly",
			want: []string{"-L/opt/my libs", "-lfolly"},
		},
		{
			name: "double quoted path with spaces",
			in:   `-L"/opt/my libs"`,
			want: []string{"-L/opt/my libs"},
		},
		{
			name: "backslash escaped space",
			in:   `-L/opt/my\ libs`,
			want: []string{"-L/opt/my libs"},
		},
		{
			name: "variables do not expand from the host",
			in:   "-L$HOME/lib",
			want: []string{"-L/lib"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ShellWords(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShellWordsRejectsUnterminatedQuote(t *testing.T) {
	t.Parallel()

	_, err := ShellWords(`-L"/unterminated`)
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{out: []byte("1.9.5\n")}
	tool := New(&Config{Runner: runner})

	version, err := tool.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.9.5", version)
	assert.Equal(t, [][]string{{"--version"}}, runner.args)
}

func TestExecRunnerCapturesStdout(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	runner := &ExecRunner{Bin: "sh"}
	out, err := runner.Output(context.Background(), "-c", "printf 'hello world'")
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(out))
}

func TestExecRunnerKeepsStdoutOnExitError(t *testing.T) {
	t.Parallel()
	skipWithoutShell(t)

	runner := &ExecRunner{Bin: "sh"}
	out, err := runner.Output(context.Background(), "-c", "printf partial; echo oops >&2; exit 3")
	require.Error(t, err)
	assert.True(t, IsExitError(err))
	assert.Equal(t, "partial", string(out))

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, string(exitErr.Stderr), "oops")
}

func TestExecRunnerLaunchFailure(t *testing.T) {
	t.Parallel()

	runner := &ExecRunner{Bin: filepath.Join(t.TempDir(), "missing-pkg-config")}
	_, err := runner.Output(context.Background(), "--libs", "libfolly")
	require.Error(t, err)
	assert.False(t, IsExitError(err))
}
