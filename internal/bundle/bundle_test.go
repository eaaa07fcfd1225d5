// internal/bundle/bundle_test.go
package bundle

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func readBack(t *testing.T, r io.Reader) map[string]string {
	t.Helper()

	xzr, err := xz.NewReader(r)
	require.NoError(t, err)

	got := map[string]string{}
	tr := tar.NewReader(xzr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Equal(t, byte(tar.TypeReg), hdr.Typeflag)

		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		got[hdr.Name] = string(data)
	}
	return got
}

func TestWriteRoundTrip(t *testing.T) {
	t.Parallel()

	files := []File{
		{Name: "config.yaml", Data: []byte("pkg_config: pkg-config\n")},
		{Name: "libfolly-libs.txt", Data: []byte("-L/opt/folly/lib -lfolly\n")},
		{Name: "directives.txt", Data: []byte("link-search=/opt/folly/lib\nlink-lib=folly\n")},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, files))

	got := readBack(t, &buf)
	require.Len(t, got, len(files))
	for _, f := range files {
		assert.Equal(t, string(f.Data), got[f.Name])
	}
}

func TestWriteEmptyBundle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Empty(t, readBack(t, &buf))
}

func TestCreate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "support.tar.xz")
	require.NoError(t, Create(path, []File{{Name: "result.json", Data: []byte("{}")}}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got := readBack(t, f)
	assert.Equal(t, map[string]string{"result.json": "{}"}, got)
}
