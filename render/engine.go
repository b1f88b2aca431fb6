package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/MCSeekeri/ferris-fetch/art"
	"github.com/MCSeekeri/ferris-fetch/logging"
	"github.com/MCSeekeri/ferris-fetch/sysinfo"
	"github.com/MCSeekeri/ferris-fetch/theme"
)

// Options are the render toggles. Color on/off is not here: it rides
// the Theme's color profile, so every formatting call sees it.
type Options struct {
	// Minimal selects the compact mascot and drops the CPU, Memory,
	// Disk, and palette rows.
	Minimal bool

	// NoArt suppresses the mascot entirely.
	NoArt bool
}

// Path identifies which rendering strategy produced the output.
type Path uint8

const (
	// PathFallback is the guaranteed monospace ASCII rendering.
	PathFallback Path = iota

	// PathRaster is the inline-image rendering.
	PathRaster
)

func (p Path) String() string {
	if p == PathRaster {
		return "raster"
	}
	return "fallback"
}

// Result reports how a render went: which path ran, how many rows the
// output spans, and, when the raster path was attempted and lost, why
// the fallback took over.
type Result struct {
	Path           Path
	Rows           int
	FallbackReason string
}

// Raster sizing limits, in terminal columns.
const (
	minImageColumns = 10
	maxImageColumns = 40
)

// gapColumns separates the mascot block from the info block.
const gapColumns = 2

// errTooNarrow reports that the terminal cannot fit an inline image
// beside the info block.
var errTooNarrow = errors.New("terminal too narrow for an inline image")

// Engine lays out and emits one fetch display.
type Engine struct {
	term Terminal
	log  zerolog.Logger
}

// New builds an Engine rendering through term.
func New(term Terminal) *Engine {
	return &Engine{term: term, log: logging.GetLogger("render")}
}

// Render draws facts through the configured terminal and reports which
// path produced the output. The raster path is attempted only in full
// mode with art enabled; any failure inside it degrades silently to the
// ASCII fallback, which cannot fail.
func (e *Engine) Render(facts *sysinfo.SystemFacts, th theme.Theme, opts Options) Result {
	cols, _ := e.term.Size()

	block := art.Block(opts.Minimal)
	artWidth := 0
	if !opts.NoArt {
		artWidth = art.Width(block)
	}

	infoCols := cols
	if !opts.NoArt {
		infoCols = cols - artWidth - gapColumns
		if infoCols < 0 {
			infoCols = 0
		}
	}

	lines := BuildLines(facts, th, opts, infoCols)

	reason := ""
	if !opts.NoArt && !opts.Minimal {
		res, err := e.renderRaster(lines, cols)
		if err == nil {
			return res
		}
		reason = err.Error()
		e.log.Debug().Err(err).Msg("inline image unavailable, using ASCII art")
	}

	rows := e.renderFallback(block, lines, artWidth, th, opts)
	return Result{Path: PathFallback, Rows: rows, FallbackReason: reason}
}

// renderRaster prints the mascot as an inline image and overlays the
// info lines beside it with cursor positioning. Every failure return
// happens before any output is queued for this path.
func (e *Engine) renderRaster(lines []Line, termCols int) (Result, error) {
	maxInfo := maxLineWidth(lines)
	available := termCols - (maxInfo + gapColumns)
	if available < minImageColumns {
		return Result{}, fmt.Errorf("%w: %d columns free beside the info block, need %d",
			errTooNarrow, available, minImageColumns)
	}
	imageCols := available
	if imageCols > maxImageColumns {
		imageCols = maxImageColumns
	}

	img, err := art.Rasterize(imageCols * cellPixelWidth)
	if err != nil {
		return Result{}, err
	}

	cellW, cellH, err := e.term.WriteImage(img)
	if err != nil {
		return Result{}, err
	}

	// The image emission leaves the cursor below its last row; climb
	// back to the anchor row shared with the text block.
	e.term.CursorUp(cellH)

	offset := cellW + gapColumns
	if offset > termCols {
		offset = termCols
	}
	for i, line := range lines {
		e.term.CursorColumn(offset)
		e.term.WriteString(line.Compose())
		if i < len(lines)-1 {
			e.term.CursorDown(1)
		}
	}

	rows := cellH
	if len(lines) > rows {
		rows = len(lines)
	}
	e.term.CursorDown(rows - (len(lines) - 1))
	e.term.WriteString("\n")

	return Result{Path: PathRaster, Rows: rows}, nil
}

// renderFallback prints the ASCII mascot and the info lines as plain
// side-by-side rows. Rows past the shorter block get a blank
// counterpart so the columns stay aligned.
func (e *Engine) renderFallback(block []string, lines []Line, artWidth int, th theme.Theme, opts Options) int {
	rows := len(lines)
	if !opts.NoArt && len(block) > rows {
		rows = len(block)
	}

	for i := 0; i < rows; i++ {
		if !opts.NoArt {
			artLine := ""
			if i < len(block) {
				artLine = block[i]
			}
			e.term.WriteString(th.Art.Render(padToWidth(artLine, artWidth)))
			e.term.WriteString(strings.Repeat(" ", gapColumns))
		}
		if i < len(lines) {
			e.term.WriteString(lines[i].Compose())
		}
		e.term.WriteString("\n")
	}
	return rows
}
