package art

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed ferris.svg
var ferrisSVG []byte

// Rasterize decodes the embedded vector mascot and renders it into a
// pixel buffer widthPx pixels wide, preserving the source aspect ratio.
//
// Parameters:
//   - widthPx: target width in pixels, must be at least 1
//
// Returns:
//   - The rasterized mascot as an RGBA image
//   - An error if the payload cannot be decoded or has a degenerate
//     view box
func Rasterize(widthPx int) (image.Image, error) {
	if widthPx < 1 {
		return nil, fmt.Errorf("mascot raster width %d is not positive", widthPx)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(ferrisSVG))
	if err != nil {
		return nil, fmt.Errorf("decode mascot vector: %w", err)
	}
	vb := icon.ViewBox
	if vb.W <= 0 || vb.H <= 0 {
		return nil, errors.New("mascot vector has a degenerate view box")
	}
	heightPx := int(float64(widthPx)*vb.H/vb.W + 0.5)
	if heightPx < 1 {
		heightPx = 1
	}
	icon.SetTarget(0, 0, float64(widthPx), float64(heightPx))
	img := image.NewRGBA(image.Rect(0, 0, widthPx, heightPx))
	scanner := rasterx.NewScannerGV(widthPx, heightPx, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(widthPx, heightPx, scanner), 1)
	return img, nil
}
