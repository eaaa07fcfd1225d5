// internal/cli/doctor_test.go
package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blakesmith/ar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T, path, member string, body []byte) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := ar.NewWriter(f)
	require.NoError(t, w.WriteGlobalHeader())
	require.NoError(t, w.WriteHeader(&ar.Header{
		Name:    member,
		ModTime: time.Now(),
		Mode:    0o644,
		Size:    int64(len(body)),
	}))
	_, err = w.Write(body)
	require.NoError(t, err)
}

func TestArchiveFirstMember(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "libboost_context.a")
	writeArchive(t, path, "context.o", []byte("fake object code"))

	member, err := archiveFirstMember(path)
	require.NoError(t, err)
	assert.Equal(t, "context.o", member)
}

func TestArchiveFirstMemberRejectsNonArchive(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "libboost_context.a")
	require.NoError(t, os.WriteFile(path, []byte("this is not an ar archive"), 0o644))

	_, err := archiveFirstMember(path)
	require.Error(t, err)
}

func TestArchiveFirstMemberMissingFile(t *testing.T) {
	t.Parallel()

	_, err := archiveFirstMember(filepath.Join(t.TempDir(), "absent.a"))
	require.Error(t, err)
}
