package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"
)

// ErrImageDecode is returned when the uploaded bytes are not a decodable raster image.
var ErrImageDecode = errors.New("cannot decode image")

// Options controls the per-pixel normalization pass applied before OCR.
// A zero value for a field means "no adjustment for that dimension".
type Options struct {
	Contrast   int  // contrast scaling around the 128 midpoint
	Brightness int  // offset added to each channel
	Threshold  int  // 1..255 luminance cutoff for binarization
	Deskew     bool // reserved; no geometric correction is applied
}

// jpegQuality is the fixed quality factor of the normalized output image.
const jpegQuality = 95

// Preprocess decodes an answer-sheet photo, applies the configured
// adjustments and re-encodes the result as JPEG. The input slice is never
// modified. The steps run per pixel in a fixed order: contrast, brightness,
// threshold; thresholding replaces the pixel with pure black or white based
// on the already-adjusted channel average.
func Preprocess(data []byte, opts Options) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	dst := Adjust(src, opts)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode normalized image: %w", err)
	}
	return buf.Bytes(), nil
}

// Adjust applies the configured adjustments to a decoded image and returns a
// new RGBA image. With zero Options the output pixels equal the input pixels.
func Adjust(src image.Image, opts Options) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)

	var factor float64
	if opts.Contrast != 0 {
		c := float64(opts.Contrast)
		factor = (259 * (c + 255)) / (255 * (259 - c))
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			ch := [3]float64{float64(px.R), float64(px.G), float64(px.B)}

			if opts.Contrast != 0 {
				for i := range ch {
					ch[i] = clamp8(factor*(ch[i]-128) + 128)
				}
			}
			if opts.Brightness != 0 {
				for i := range ch {
					ch[i] = clamp8(ch[i] + float64(opts.Brightness))
				}
			}
			if opts.Threshold != 0 {
				avg := (ch[0] + ch[1] + ch[2]) / 3
				v := 0.0
				if avg > float64(opts.Threshold) {
					v = 255
				}
				ch[0], ch[1], ch[2] = v, v, v
			}

			dst.SetRGBA(x, y, color.RGBA{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2]), A: px.A})
		}
	}
	return dst
}

// clamp8 saturates a channel value at the 0..255 storage range.
func clamp8(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
