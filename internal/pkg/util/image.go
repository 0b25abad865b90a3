package util

import (
	"bytes"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
)

// MaxImageDimension caps the longest side of uploaded images.
const MaxImageDimension = 800

// GetSafeContentType sniffs the content type from the first 512 bytes
// and rewinds the reader.
func GetSafeContentType(reader io.ReadSeeker) (string, error) {
	head := make([]byte, 512)
	n, err := reader.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err = reader.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// NormalizeImage decodes an uploaded image, downscales it so its longest
// side does not exceed MaxImageDimension, and re-encodes it as JPEG.
func NormalizeImage(reader io.Reader) (*bytes.Buffer, error) {
	img, err := imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > MaxImageDimension || bounds.Dy() > MaxImageDimension {
		if bounds.Dx() >= bounds.Dy() {
			img = imaging.Resize(img, MaxImageDimension, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, MaxImageDimension, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}
	return &buf, nil
}
