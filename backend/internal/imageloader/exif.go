package imageloader

import (
	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
	"image"
	"os"
	"vincit.fi/image-browser/common/logger"
)

// Orientation is the EXIF orientation tag value (1-8).
type Orientation int

const NoOrientation = Orientation(1)

// LoadExifOrientation returns NoOrientation when the file has no
// usable EXIF data, which is the case for everything but JPEG and TIFF.
func LoadExifOrientation(path string) (orientation Orientation) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug.Printf("'%s': could not parse EXIF data: %v", path, r)
			orientation = NoOrientation
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		return NoOrientation
	}
	defer file.Close()

	decodedExif, err := exif.Decode(file)
	if err != nil {
		return NoOrientation
	}
	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return NoOrientation
	}
	value, err := tag.Int(0)
	if err != nil || value < 1 || value > 8 {
		logger.Debug.Printf("'%s': invalid orientation", path)
		return NoOrientation
	}
	return Orientation(value)
}

// SwapsAxes is true when the image is turned by 90 or 270 degrees.
func (s Orientation) SwapsAxes() bool {
	return s >= 5 && s <= 8
}

func (s Orientation) Apply(img image.Image) image.Image {
	switch s {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
