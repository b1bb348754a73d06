// Package imaging normalizes cover art before it is cached.
package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

const jpegQuality = 90

// Normalize decodes an image, scales it down to fit within maxEdge on
// its longest side, and re-encodes it as JPEG.
//
// The aspect ratio is preserved. Images already smaller than maxEdge
// are re-encoded without scaling. maxEdge <= 0 disables scaling.
//
// The Catmull-Rom algorithm is used for high-quality resizing.
func Normalize(data []byte, maxEdge int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxEdge > 0 && (width > maxEdge || height > maxEdge) {
		// Scale so the longest edge becomes maxEdge
		if width > height {
			height = height * maxEdge / width
			width = maxEdge
		} else {
			width = width * maxEdge / height
			height = maxEdge
		}
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
