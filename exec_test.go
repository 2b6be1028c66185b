package placer

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_IsValidExtension(t *testing.T) {
	valid := []string{".jpg", ".png", ".jpeg", ".bmp", ".gif"}

	assert.True(t, isValidExtension(".png", valid))
	assert.True(t, isValidExtension(".jpg", valid))
	assert.False(t, isValidExtension(".tiff", valid))
	assert.False(t, isValidExtension("", valid))
}

func TestExec_WalkDirFiltersSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.jpg", "c.txt", "d.gif"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "e.bmp"), []byte("x"), 0644))

	done := make(chan interface{})
	defer close(done)

	paths, errc := walkDir(done, dir, []string{".jpg", ".png", ".bmp", ".gif"})

	var got []string
	for path := range paths {
		got = append(got, filepath.Base(path))
	}
	require.NoError(t, <-errc)

	sort.Strings(got)
	assert.Equal(t, []string{"a.png", "b.jpg", "d.gif", "e.bmp"}, got)
}

func TestExec_PathToFileRejectsMissingSource(t *testing.T) {
	op := &Ops{PipeName: "-"}

	_, _, err := op.pathToFile(filepath.Join(t.TempDir(), "missing.png"), filepath.Join(t.TempDir(), "out.png"))
	assert.Error(t, err)
}
