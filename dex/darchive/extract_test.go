package darchive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"dex-chunker/dex/derror"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T, entries map[string][]byte, order []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.apk")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for _, name := range order {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(entries[name])
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtract(t *testing.T) {
	entries := map[string][]byte{
		"AndroidManifest.xml": []byte("<manifest/>"),
		"classes.dex":         []byte("dex\n035\x00"),
		"res/raw/a.bin":       {1, 2, 3},
	}
	archivePath := writeArchive(t, entries, []string{"AndroidManifest.xml", "classes.dex", "res/raw/a.bin"})
	outputDir := filepath.Join(t.TempDir(), "out")

	paths, err := Extract(archivePath, outputDir, nil)
	require.NoError(t, err)

	assert.Equal(
		t,
		[]string{
			filepath.Join(outputDir, "AndroidManifest.xml"),
			filepath.Join(outputDir, "classes.dex"),
			filepath.Join(outputDir, "res", "raw", "a.bin"),
		},
		paths,
	)
	for name, content := range entries {
		bs, err := os.ReadFile(filepath.Join(outputDir, filepath.FromSlash(name)))
		require.NoError(t, err)
		assert.Equal(t, content, bs)
	}
}

func TestExtract_UnsafePath(t *testing.T) {
	archivePath := writeArchive(t, map[string][]byte{"../evil.dex": {1}}, []string{"../evil.dex"})
	outputDir := filepath.Join(t.TempDir(), "out")

	_, err := Extract(archivePath, outputDir, nil)
	assert.True(t, errors.Is(err, ErrUnsafePath))
	_, statErr := os.Stat(filepath.Join(filepath.Dir(outputDir), "evil.dex"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtract_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.apk")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0644))

	_, err := Extract(path, t.TempDir(), nil)
	assert.True(t, derror.IsIOError(err))
}
