//go:build !linux

package imageloader

import (
	"image"
	"image/jpeg"
	"io"
)

// libjpeg is only linked on Linux. Elsewhere JPEGs are decoded at full
// size and scaled afterwards.
func decodeJpeg(reader io.Reader, _ *scaleHint) (image.Image, error) {
	return jpeg.Decode(reader)
}
