package qrimage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"testing"
)

const testCode = "0004A00090IFU27IV0J6HGGLB3DRMV4TJB23EJ8F3EM9VVBG"

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid PNG: %v", err)
	}
	return img
}

func TestRenderSize(t *testing.T) {
	data, err := Render(testCode, 300)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PNG")
	}

	img := decodePNG(t, data)
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 300 {
		t.Errorf("expected 300x300, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestRenderTooMuchData(t *testing.T) {
	_, err := Render(strings.Repeat("A", 8000), 300)
	var ierr *Error
	if !errors.As(err, &ierr) || ierr.Kind != KindGenerationFailed {
		t.Fatalf("expected generation failure, got %v", err)
	}
}

func TestComposeWithoutFrame(t *testing.T) {
	qr, err := Render(testCode, 300)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out, err := Compose(qr, nil)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if !bytes.Equal(out, qr) {
		t.Error("nil frame should pass the QR image through unchanged")
	}
}

// The QR is resized to 85% of the frame's shorter edge and centered: on a
// 500x500 frame the symbol spans 425px starting at offset (37,37).
func TestComposeCentering(t *testing.T) {
	qr, err := Render(testCode, 300)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	frame := solidPNG(t, 500, 500, color.RGBA{R: 255, A: 255})

	out, err := Compose(qr, frame)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	img := decodePNG(t, out)
	if img.Bounds().Dx() != 500 || img.Bounds().Dy() != 500 {
		t.Fatalf("expected frame dimensions 500x500, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	red := color.RGBA{R: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// Just outside the QR region the frame shows through; just inside, the
	// QR quiet zone is white.
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{36, 250, red},
		{37, 250, white},
		{461, 250, white},
		{462, 250, red},
		{250, 36, red},
		{250, 37, white},
		{250, 461, white},
		{250, 462, red},
	}
	for _, tt := range tests {
		if !sameColor(img.At(tt.x, tt.y), tt.want) {
			t.Errorf("pixel (%d,%d): expected %v, got %v", tt.x, tt.y, tt.want, img.At(tt.x, tt.y))
		}
	}
}

func TestComposeNonSquareFrame(t *testing.T) {
	qr, err := Render(testCode, 300)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	// inner = floor(400*0.85) = 340, x offset = (600-340)/2 = 130
	frame := solidPNG(t, 600, 400, color.RGBA{B: 255, A: 255})

	out, err := Compose(qr, frame)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	img := decodePNG(t, out)
	if img.Bounds().Dx() != 600 || img.Bounds().Dy() != 400 {
		t.Fatalf("expected 600x400, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	blue := color.RGBA{B: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if !sameColor(img.At(129, 200), blue) {
		t.Errorf("pixel left of the QR region should be frame-colored")
	}
	if !sameColor(img.At(130, 200), white) {
		t.Errorf("pixel at the QR region edge should be quiet-zone white")
	}
}

func TestComposeDecodeFailures(t *testing.T) {
	qr, err := Render(testCode, 300)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	var ierr *Error

	_, err = Compose([]byte("not a png"), qr)
	if !errors.As(err, &ierr) || ierr.Kind != KindSourceDecodingFailed {
		t.Errorf("expected source decoding failure, got %v", err)
	}

	_, err = Compose(qr, []byte("not a png"))
	if !errors.As(err, &ierr) || ierr.Kind != KindFrameDecodingFailed {
		t.Errorf("expected frame decoding failure, got %v", err)
	}
}

func TestDefaultFrame(t *testing.T) {
	data, err := DefaultFrame(500)
	if err != nil {
		t.Fatalf("default frame failed: %v", err)
	}

	img := decodePNG(t, data)
	if img.Bounds().Dx() != 500 || img.Bounds().Dy() != 500 {
		t.Fatalf("expected 500x500, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	border := color.RGBA{G: 102, B: 204, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if !sameColor(img.At(5, 5), border) {
		t.Errorf("border pixel: expected %v, got %v", border, img.At(5, 5))
	}
	if !sameColor(img.At(250, 250), white) {
		t.Errorf("center pixel: expected white, got %v", img.At(250, 250))
	}
}

func solidPNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test frame: %v", err)
	}
	return buf.Bytes()
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
