package render

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// Default geometry when the terminal size cannot be determined.
const (
	defaultColumns = 80
	defaultRows    = 24
)

// Assumed glyph cell size in pixels, used to translate raster images
// into terminal cells. 8x16 matches the common monospace 1:2 aspect.
const (
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

// Terminal is the capability surface the engine renders through.
// Cursor motion, text, and image emission are explicit commands applied
// by a single writer in order, which keeps the layout algorithm
// testable against a recording fake.
type Terminal interface {
	// Size returns the current column and row capacity, defaulting to
	// 80x24 when the underlying device cannot be queried.
	Size() (cols, rows int)

	// WriteImage attempts to queue img as an inline image, returning
	// its printed width and height in terminal cells. When no
	// inline-image protocol is available it fails cleanly without
	// queueing anything.
	WriteImage(img image.Image) (cols, rows int, err error)

	// CursorUp, CursorDown, and CursorColumn queue cursor motion.
	// Columns are 1-based.
	CursorUp(n int)
	CursorDown(n int)
	CursorColumn(col int)

	// WriteString queues literal text.
	WriteString(s string)

	// Flush writes everything queued so far to the underlying device.
	Flush() error
}

// ansiTerminal is the production Terminal. Commands accumulate in one
// buffer and reach the device in a single write, so a partially failed
// raster attempt never leaves stray bytes on screen.
type ansiTerminal struct {
	out io.Writer
	buf bytes.Buffer
}

// NewTerminal wraps w in the ANSI Terminal implementation.
func NewTerminal(w io.Writer) Terminal {
	return &ansiTerminal{out: w}
}

// Size queries the device, then the COLUMNS/LINES environment, then
// settles on 80x24.
func (t *ansiTerminal) Size() (int, int) {
	if f, ok := t.out.(*os.File); ok {
		if cols, rows, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 && rows > 0 {
			return cols, rows
		}
	}
	return envDimension("COLUMNS", defaultColumns), envDimension("LINES", defaultRows)
}

func envDimension(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func (t *ansiTerminal) WriteImage(img image.Image) (int, int, error) {
	data, err := encodeInlineImage(img)
	if err != nil {
		return 0, 0, err
	}
	t.buf.Write(data)
	t.buf.WriteByte('\n')

	bounds := img.Bounds()
	cols := (bounds.Dx() + cellPixelWidth - 1) / cellPixelWidth
	rows := (bounds.Dy() + cellPixelHeight - 1) / cellPixelHeight
	return cols, rows, nil
}

func (t *ansiTerminal) CursorUp(n int) {
	if n > 0 {
		fmt.Fprintf(&t.buf, "\x1b[%dA", n)
	}
}

func (t *ansiTerminal) CursorDown(n int) {
	if n > 0 {
		fmt.Fprintf(&t.buf, "\x1b[%dB", n)
	}
}

func (t *ansiTerminal) CursorColumn(col int) {
	if col < 1 {
		col = 1
	}
	fmt.Fprintf(&t.buf, "\x1b[%dG", col)
}

func (t *ansiTerminal) WriteString(s string) {
	t.buf.WriteString(s)
}

func (t *ansiTerminal) Flush() error {
	_, err := t.buf.WriteTo(t.out)
	return err
}
