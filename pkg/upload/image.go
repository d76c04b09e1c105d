package upload

import (
	"bytes"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"go-jobboard-backend/pkg/apperror"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// maxLogoEdge bounds the longer edge of a stored logo.
const maxLogoEdge = 512

// NormalizeLogo decodes an uploaded logo, scales it down to a bounded
// thumbnail when oversized, and re-encodes it as PNG.
func NormalizeLogo(content []byte) ([]byte, *apperror.AppError) {
	src, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, apperror.BadRequest("File is not a decodable image")
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > maxLogoEdge || height > maxLogoEdge {
		scale := float64(maxLogoEdge) / float64(width)
		if height > width {
			scale = float64(maxLogoEdge) / float64(height)
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		return nil, apperror.BadRequest("Could not re-encode image")
	}
	return buf.Bytes(), nil
}
