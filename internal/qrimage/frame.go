package qrimage

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// The QR symbol occupies 85% of the frame's shorter edge, centered.
const frameFillPercent = 85

// Compose overlays the QR PNG onto the frame PNG. A nil frame passes the
// QR image through unchanged.
func Compose(qrPNG []byte, framePNG []byte) ([]byte, error) {
	if framePNG == nil {
		return qrPNG, nil
	}

	qrImg, err := png.Decode(bytes.NewReader(qrPNG))
	if err != nil {
		return nil, &Error{Kind: KindSourceDecodingFailed, cause: err}
	}
	frameImg, err := png.Decode(bytes.NewReader(framePNG))
	if err != nil {
		return nil, &Error{Kind: KindFrameDecodingFailed, cause: err}
	}

	frameWidth := frameImg.Bounds().Dx()
	frameHeight := frameImg.Bounds().Dy()

	inner := min(frameWidth, frameHeight) * frameFillPercent / 100

	scaled := image.NewRGBA(image.Rect(0, 0, inner, inner))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), qrImg, qrImg.Bounds(), xdraw.Src, nil)

	out := image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight))
	draw.Draw(out, out.Bounds(), frameImg, frameImg.Bounds().Min, draw.Src)

	x := (frameWidth - inner) / 2
	y := (frameHeight - inner) / 2
	draw.Draw(out, image.Rect(x, y, x+inner, y+inner), scaled, image.Point{}, draw.Over)

	return encodePNG(out)
}

// DefaultFrame builds the fallback decorative frame: a white square with a
// 10-pixel blue border.
func DefaultFrame(size int) ([]byte, error) {
	const borderThickness = 10
	borderColor := color.RGBA{R: 0, G: 102, B: 204, A: 255}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if x < borderThickness || x >= size-borderThickness ||
				y < borderThickness || y >= size-borderThickness {
				img.SetRGBA(x, y, borderColor)
			}
		}
	}

	return encodePNG(img)
}
