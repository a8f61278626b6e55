package validate

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writePNG writes a blank PNG of the given size
func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, width, height))))
}

// writeTGA writes an uncompressed 24-bit true-color TGA of the given size
func writeTGA(t *testing.T, path string, width, height int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	header := []byte{
		0,    // id length
		0,    // color map type
		2,    // uncompressed true-color
		0, 0, // color map first entry
		0, 0, // color map length
		0,    // color map entry size
		0, 0, // x origin
		0, 0, // y origin
		byte(width), byte(width >> 8),
		byte(height), byte(height >> 8),
		24, // bits per pixel
		0,  // descriptor
	}
	data := append(header, make([]byte, width*height*3)...)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

// writeCorrupt writes bytes that no image decoder accepts
func writeCorrupt(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("corrupt"), 0644))
}
