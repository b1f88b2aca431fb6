// Package theme maps theme names to their 4-slot color palettes and
// realizes them as lipgloss styles bound to an explicit color profile.
// Threading the profile through the Theme keeps color on/off a plain
// value rather than process-global state.
package theme

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// palette is the raw color table for one theme.
type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	accent    lipgloss.Color
	info      lipgloss.Color
}

// palettes enumerates the named themes. Lookup is case-insensitive;
// any other name resolves to defaultPalette.
var palettes = map[string]palette{
	"ocean":  {primary: "6", secondary: "4", accent: "14", info: "7"},
	"forest": {primary: "2", secondary: "10", accent: "3", info: "7"},
	"sunset": {primary: "1", secondary: "3", accent: "5", info: "7"},
	"mono":   {primary: "7", secondary: "7", accent: "7", info: "7"},
}

// defaultPalette is the Rust-orange look, used for "rust" and for any
// unrecognized name.
var defaultPalette = palette{
	primary:   "#FF8000",
	secondary: "#B7410E",
	accent:    "#FFC864",
	info:      "7",
}

// Theme carries the pre-built styles for one run.
type Theme struct {
	// Name is the canonical resolved theme name.
	Name string

	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Sep     lipgloss.Style
	Art     lipgloss.Style
	Accent  lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	profile  termenv.Profile
	renderer *lipgloss.Renderer
}

// Names lists the selectable theme names, canonical default first.
func Names() []string {
	return []string{"rust", "ocean", "forest", "sunset", "mono"}
}

// Resolve maps a theme name to its Theme, case-insensitively. Unknown
// names, including the canonical "rust", yield the default palette;
// resolution never fails, it only ever falls back.
func Resolve(name string, r *lipgloss.Renderer) Theme {
	key := strings.ToLower(name)
	p, ok := palettes[key]
	if !ok {
		key = "rust"
		p = defaultPalette
	}

	return Theme{
		Name:     key,
		Title:    r.NewStyle().Foreground(p.primary).Bold(true),
		Label:    r.NewStyle().Foreground(p.primary).Bold(true),
		Value:    r.NewStyle().Foreground(p.info),
		Sep:      r.NewStyle().Foreground(p.secondary),
		Art:      r.NewStyle().Foreground(p.primary),
		Accent:   r.NewStyle().Foreground(p.accent),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("3")),
		Danger:   r.NewStyle().Foreground(lipgloss.Color("1")),
		profile:  r.ColorProfile(),
		renderer: r,
	}
}

// Colored reports whether this theme actually emits color.
func (t Theme) Colored() bool {
	return t.profile != termenv.Ascii
}

// ColorBars returns the two palette swatch rows shown under the info
// block in full mode: the eight normal ANSI colors, then the eight
// bright ones.
func (t Theme) ColorBars() (normal, bright string) {
	var lo, hi strings.Builder
	for i := 0; i < 8; i++ {
		lo.WriteString(t.swatch(i))
		hi.WriteString(t.swatch(i + 8))
	}
	return lo.String(), hi.String()
}

func (t Theme) swatch(color int) string {
	return t.renderer.NewStyle().
		Foreground(lipgloss.Color(strconv.Itoa(color))).
		Render("███")
}

// NewRenderer builds a lipgloss renderer for w locked to the detected
// color profile.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(DetectProfile(w, noColor))
	return r
}

// DetectProfile decides the color profile for w. Ascii (no styling at
// all) is returned when color is explicitly suppressed, NO_COLOR is
// present in the environment, or w is not an interactive terminal;
// otherwise the terminal's advertised profile wins.
func DetectProfile(w io.Writer, noColor bool) termenv.Profile {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(*os.File)
	if !ok {
		return termenv.Ascii
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
