// pkg/platform/platform_test.go
package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLibFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "libboost_context.a", StaticLibFileName("boost_context"))
	assert.Equal(t, "libboost_context-mt.a", StaticLibFileName("boost_context-mt"))
	assert.Equal(t, "libfolly.a", StaticLibFileName("folly"))
}

func TestDefaultPkgConfigHonorsEnv(t *testing.T) {
	t.Setenv("PKG_CONFIG", "/opt/tools/bin/pkgconf")
	assert.Equal(t, "/opt/tools/bin/pkgconf", DefaultPkgConfig())

	t.Setenv("PKG_CONFIG", "")
	assert.Equal(t, "pkg-config", DefaultPkgConfig())
}

func TestDetectReportsHost(t *testing.T) {
	t.Setenv("PKG_CONFIG", "definitely-not-a-real-tool-name")

	p := Detect()
	require.NotNil(t, p)
	assert.Equal(t, runtime.GOOS, p.OS)
	assert.Equal(t, runtime.GOARCH, p.Arch)
	assert.False(t, p.Found)
	assert.Contains(t, p.String(), "not found")
}
