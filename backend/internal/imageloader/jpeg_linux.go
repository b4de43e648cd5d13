package imageloader

import (
	"github.com/pixiv/go-libjpeg/jpeg"
	"image"
	"io"
)

var fullOptions = &jpeg.DecoderOptions{}

func decodeJpeg(reader io.Reader, hint *scaleHint) (image.Image, error) {
	if hint == nil {
		return jpeg.Decode(reader, fullOptions)
	}
	return jpeg.Decode(reader, &jpeg.DecoderOptions{ScaleTarget: hint.target()})
}
