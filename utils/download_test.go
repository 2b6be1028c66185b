package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSampleImage encodes a small PNG into the given path.
func writeSampleImage(t *testing.T, path string) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0xff})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	return buf.Bytes()
}

func TestUtils_ShouldDownloadImage(t *testing.T) {
	data := writeSampleImage(t, filepath.Join(t.TempDir(), "sample.png"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	f, err := DownloadImage(srv.URL + "/sample.png")
	require.NoError(t, err)
	defer os.Remove(f.Name())

	assert.True(t, strings.HasPrefix(filepath.Base(f.Name()), "image"),
		"the downloaded image should have been saved as a temporary file")
}

func TestUtils_ShouldRejectNonImageDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	_, err := DownloadImage(srv.URL + "/index.html")
	assert.Error(t, err)
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://github.com/esimov/placer/"))
	assert.False(t, IsValidUrl("not-an-url"))
	assert.False(t, IsValidUrl("/local/path/image.png"))
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	writeSampleImage(t, path)

	ftype, err := DetectContentType(path)
	require.NoError(t, err)

	assert.True(t, strings.Contains(ftype, "image"),
		"content type expected to be of type image, got: %v", ftype)
}
