// pkg/platform/detect.go
package platform

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Platform represents the detected host environment
type Platform struct {
	OS        string // linux, darwin, windows
	Arch      string // amd64, arm64, 386, arm
	PkgConfig string // pkg-config command, resolved to a path when found
	Found     bool   // whether the command resolves on PATH
}

// Detect detects the current platform and the pkg-config tool. The command
// name is taken from $PKG_CONFIG when set, the usual build-tool convention.
func Detect() *Platform {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		PkgConfig: DefaultPkgConfig(),
	}

	if path, err := exec.LookPath(p.PkgConfig); err == nil {
		p.PkgConfig = path
		p.Found = true
	}

	return p
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	tool := "not found"
	if p.Found {
		tool = p.PkgConfig
	}
	return fmt.Sprintf("%s/%s (pkg-config: %s)", p.OS, p.Arch, tool)
}

// DefaultPkgConfig returns the pkg-config command to invoke, honoring the
// $PKG_CONFIG override.
func DefaultPkgConfig() string {
	if cmd := os.Getenv("PKG_CONFIG"); cmd != "" {
		return cmd
	}
	return "pkg-config"
}