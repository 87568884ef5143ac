package storage

import (
	"bytes"
	"image"

	// register decoders for the formats participants upload
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// placeholderImage is the 1x1 stand-in returned when a source image is
// missing or unreadable, so a page render never fails on a bad photo.
func placeholderImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, 1, 1))
}

// decodeImage decodes raw bytes and normalizes orientation from the
// embedded EXIF metadata. Returns nil when the bytes are not a
// decodable image.
func decodeImage(data []byte) image.Image {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return normalizeOrientation(img, data)
}

func normalizeOrientation(img image.Image, data []byte) image.Image {
	meta, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return img
	}
	tag, err := meta.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return img
	}

	switch orientation {
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
