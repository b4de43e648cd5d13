package imageloader

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func gradientImage(width int, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func writeTestImage(t *testing.T, dir string, name string, width int, height int) string {
	img := gradientImage(width, height)
	buffer := &bytes.Buffer{}

	var err error
	switch filepath.Ext(name) {
	case ".png":
		err = png.Encode(buffer, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(buffer, img, &jpeg.Options{Quality: 90})
	case ".gif":
		err = gif.Encode(buffer, img, nil)
	case ".bmp":
		err = bmp.Encode(buffer, img)
	case ".tiff":
		err = tiff.Encode(buffer, img, nil)
	default:
		t.Fatalf("unknown test image type %s", name)
	}
	require.Nil(t, err)

	path := filepath.Join(dir, name)
	require.Nil(t, os.WriteFile(path, buffer.Bytes(), 0644))
	return path
}

// writeTruncatedImage writes the first half of a valid PNG.
func writeTruncatedImage(t *testing.T, dir string, name string) string {
	buffer := &bytes.Buffer{}
	require.Nil(t, png.Encode(buffer, gradientImage(64, 64)))

	path := filepath.Join(dir, name)
	require.Nil(t, os.WriteFile(path, buffer.Bytes()[:buffer.Len()/2], 0644))
	return path
}
