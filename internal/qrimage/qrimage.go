// Package qrimage rasterizes Pay by Square codes as QR symbols and
// composites them onto decorative frames.
package qrimage

import (
	"bytes"
	"image"
	"image/png"

	"github.com/skip2/go-qrcode"
	xdraw "golang.org/x/image/draw"
)

// Kind classifies image-stage failures. They are all server-side faults.
type Kind int

const (
	KindGenerationFailed Kind = iota
	KindSourceDecodingFailed
	KindFrameDecodingFailed
	KindEncodingFailed
)

// Error is a typed image-stage failure wrapping the codec cause.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindGenerationFailed:
		return "QR generation failed: " + e.cause.Error()
	case KindSourceDecodingFailed:
		return "Failed to load QR image: " + e.cause.Error()
	case KindFrameDecodingFailed:
		return "Failed to load frame image: " + e.cause.Error()
	case KindEncodingFailed:
		return "Image processing failed: " + e.cause.Error()
	}
	return "Image processing failed"
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Render builds a QR symbol for the code and returns it as an RGBA PNG of
// size x size pixels. Error-correction level is Medium, the usual choice
// for printed payment codes.
func Render(code string, size int) ([]byte, error) {
	q, err := qrcode.New(code, qrcode.Medium)
	if err != nil {
		return nil, &Error{Kind: KindGenerationFailed, cause: err}
	}

	symbol := q.Image(size)

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(rgba, rgba.Bounds(), symbol, symbol.Bounds(), xdraw.Src, nil)

	return encodePNG(rgba)
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, &Error{Kind: KindEncodingFailed, cause: err}
	}
	return buf.Bytes(), nil
}
