// pkg/pkgconf/runner.go
package pkgconf

import (
	"context"
	"os/exec"

	"github.com/pcwalton/find-folly/pkg/platform"
)

// Runner launches the external pkg-config command and captures its standard
// output. When the process runs but exits non-zero, implementations return
// the captured output together with the *exec.ExitError; a launch failure
// (command missing, not executable) returns no output. Tests substitute a
// Runner with canned outputs so no real tool is needed.
type Runner interface {
	Output(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner invokes a real pkg-config binary as a blocking subprocess.
type ExecRunner struct {
	// Bin is the command to run. Empty means $PKG_CONFIG, falling back to
	// "pkg-config".
	Bin string
}

// Output runs the command with args and returns its standard output. For a
// non-zero exit the captured stderr is attached to the returned
// *exec.ExitError; pkg-config reports "package not found" there.
func (r *ExecRunner) Output(ctx context.Context, args ...string) ([]byte, error) {
	bin := r.Bin
	if bin == "" {
		bin = platform.DefaultPkgConfig()
	}
	return exec.CommandContext(ctx, bin, args...).Output()
}
