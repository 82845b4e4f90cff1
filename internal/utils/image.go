package utils

import (
	"bytes"
	"errors"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

func IsAllowedImageType(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	for _, allowed := range AllowedImageTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}

// MakeThumbnail decodes a car photo and scales it down to maxWidth pixels,
// preserving aspect ratio. Images narrower than maxWidth pass through
// unscaled. The result is always JPEG.
func MakeThumbnail(r io.Reader, filename string, maxWidth uint) ([]byte, error) {
	img, err := decodeImage(r, filename)
	if err != nil {
		return nil, err
	}

	if uint(img.Bounds().Dx()) > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func decodeImage(r io.Reader, filename string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".png":
		return png.Decode(r)
	case ".gif":
		return gif.Decode(r)
	default:
		img, _, err := image.Decode(r)
		if err != nil {
			return nil, errors.New("unsupported image format: " + ext)
		}
		return img, nil
	}
}
