package imageloader

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/nfnt/resize"
	"image"
	_ "image/gif"
	_ "image/png"
	"os"
	"time"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/api/apitype"
	"vincit.fi/image-browser/common/logger"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

var jpegMagic = []byte{0xFF, 0xD8}

type ImageLoader struct {
	api.ImageLoader
}

func NewImageLoader() *ImageLoader {
	logger.Debug.Printf("Initializing image loader...")
	return &ImageLoader{}
}

func (s *ImageLoader) LoadThumbnail(path string, width int) (*image.RGBA, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid thumbnail width %d", width)
	}
	startTime := time.Now()

	orientation := LoadExifOrientation(path)
	decoded, err := decodeFile(path, &scaleHint{width: width, swapAxes: orientation.SwapsAxes()})
	if err != nil {
		return nil, err
	}
	rotated := orientation.Apply(decoded)

	size := apitype.SizeOfRectangle(rotated.Bounds()).ScaleToWidth(width)
	if !size.IsValid() {
		return nil, fmt.Errorf("'%s': empty image", path)
	}
	thumbnail := resize.Resize(uint(size.Width()), uint(size.Height()), rotated, resize.Lanczos3)

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': Thumbnail loaded in %s", path, time.Since(startTime))
	}
	return ConvertToRgba(thumbnail), nil
}

func (s *ImageLoader) LoadFull(path string) (*apitype.FullImage, error) {
	startTime := time.Now()

	orientation := LoadExifOrientation(path)
	decoded, err := decodeFile(path, nil)
	if err != nil {
		return nil, err
	}
	full := ConvertToRgba(orientation.Apply(decoded))

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("'%s': Full loaded in %s", path, time.Since(startTime))
	}
	return apitype.NewFullImage(path, full), nil
}

// scaleHint lets the JPEG decoder skip work by decoding directly
// at a reduced size that is still at least the requested width.
type scaleHint struct {
	width    int
	swapAxes bool
}

func (s *scaleHint) target() image.Rectangle {
	if s.swapAxes {
		return image.Rect(0, 0, 1, s.width)
	}
	return image.Rect(0, 0, s.width, 1)
}

func decodeFile(path string, hint *scaleHint) (decoded image.Image, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Some decoders panic on malformed input
	defer func() {
		if r := recover(); r != nil {
			decoded = nil
			err = fmt.Errorf("'%s': decoder failed: %v", path, r)
		}
	}()

	reader := bufio.NewReader(file)
	if magic, peekErr := reader.Peek(len(jpegMagic)); peekErr == nil && magic[0] == jpegMagic[0] && magic[1] == jpegMagic[1] {
		decoded, err = decodeJpeg(reader, hint)
	} else {
		var format string
		decoded, format, err = image.Decode(reader)
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("'%s': %w", path, ErrUnsupportedFormat)
		}
		logger.Trace.Printf("'%s': decoded as %s", path, format)
	}
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", path, err)
	}
	return decoded, nil
}
