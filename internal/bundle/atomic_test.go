package bundle

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic_Replaces(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "out/synth-faceplate.zip", []byte("old archive"), 0o644))

	require.NoError(t, WriteAtomic(fs, "out/synth-faceplate.zip", []byte("new")))

	got, err := util.ReadFile(fs, "out/synth-faceplate.zip")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := fs.ReadDir("out")
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}

func TestWriteAtomic_CreatesDirectories(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, WriteAtomic(fs, "a/b/c.svg", []byte("<svg/>")))
	got, err := util.ReadFile(fs, "a/b/c.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(got))
}

func TestWriteAtomic_KeepsPermissions(t *testing.T) {
	fs := osfs.New(t.TempDir())
	require.NoError(t, util.WriteFile(fs, "knob.svg", []byte("x"), 0o600))

	require.NoError(t, WriteAtomic(fs, "knob.svg", []byte("yy")))

	info, err := fs.Stat("knob.svg")
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.Size())
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestFSArchiveSink_WritesAtomically(t *testing.T) {
	fs := memfs.New()
	sink := &FSArchiveSink{FS: fs}
	loc, err := sink.WriteArchive(t.Context(), "synth-faceplate.zip", []byte("zip"))
	require.NoError(t, err)
	assert.Contains(t, loc, "synth-faceplate.zip")

	entries, err := fs.ReadDir(".")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "synth-faceplate.zip", entries[0].Name())
}
