package epass

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	LogoFile = "logo.png"
	MapFile  = "map.png"

	// embedded images keep at most this many pixels per point of display size
	pixelsPerPoint = 2
	qrPixels       = 256
)

// pdfImage is a PNG ready to embed, with its display size in points.
type pdfImage struct {
	name string
	png  []byte
	w, h float64
}

// loadFitted decodes the image at path and scales it to fit inside boxW x boxH points,
// keeping the aspect ratio. A missing file returns (nil, nil).
func loadFitted(name, path string, boxW, boxH float64) (*pdfImage, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	// down-sample only; small images are left as they are
	img := imaging.Fit(src, int(boxW*pixelsPerPoint), int(boxH*pixelsPerPoint), imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	b := img.Bounds()
	w, h := fitBox(float64(b.Dx()), float64(b.Dy()), boxW, boxH)
	return &pdfImage{name: name, png: buf.Bytes(), w: w, h: h}, nil
}

// qrImage renders content as a square QR code of side points.
func qrImage(name, content string, side float64) (*pdfImage, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return &pdfImage{name: name, png: png, w: side, h: side}, nil
}

// fitBox scales (w, h) up or down so it fits inside (boxW, boxH).
func fitBox(w, h, boxW, boxH float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	scale := boxW / w
	if s := boxH / h; s < scale {
		scale = s
	}
	return w * scale, h * scale
}
