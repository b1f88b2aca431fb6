package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"

	"github.com/BourgeoisBear/rasterm"
)

// ErrNoInlineImage reports that the terminal advertises none of the
// supported inline-image protocols.
var ErrNoInlineImage = errors.New("terminal advertises no inline-image protocol")

// encodeInlineImage serializes img for whichever inline-image protocol
// the terminal advertises, trying kitty, then iTerm2, then sixel.
// Encoding happens entirely in memory, so a failure writes nothing to
// the terminal.
func encodeInlineImage(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	switch {
	case rasterm.IsKittyCapable():
		if err := rasterm.KittyWriteImage(&buf, img, rasterm.KittyImgOpts{}); err != nil {
			return nil, fmt.Errorf("kitty encode: %w", err)
		}
	case rasterm.IsItermCapable():
		if err := rasterm.ItermWriteImage(&buf, img); err != nil {
			return nil, fmt.Errorf("iterm2 encode: %w", err)
		}
	default:
		ok, err := rasterm.IsSixelCapable()
		if err != nil || !ok {
			return nil, ErrNoInlineImage
		}
		if err := rasterm.SixelWriteImage(&buf, palettize(img)); err != nil {
			return nil, fmt.Errorf("sixel encode: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// palettize quantizes img for the sixel encoder, which only accepts
// paletted images.
func palettize(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	out := image.NewPaletted(bounds, palette.Plan9)
	draw.FloydSteinberg.Draw(out, bounds, img, bounds.Min)
	return out
}
