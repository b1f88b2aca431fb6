package render

import (
	"strconv"
	"strings"

	"github.com/MCSeekeri/ferris-fetch/theme"
)

const (
	barFilledGlyph = "█"
	barEmptyGlyph  = "░"
)

// Bar renders a fixed-width usage gauge such as "[████░░░░░░] 42%".
// The percentage is an integer clamped to [0,100]; a zero total means
// 0%, never a division error. The fill color escalates from the theme
// accent to amber above 60% and red above 80%; with colors disabled the
// gauge comes back as plain text.
func Bar(used, total uint64, width int, th theme.Theme) string {
	pct := 0
	if total > 0 {
		pct = int(float64(used) / float64(total) * 100)
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100

	var b strings.Builder
	b.WriteString("[")
	b.WriteString(strings.Repeat(barFilledGlyph, filled))
	b.WriteString(strings.Repeat(barEmptyGlyph, width-filled))
	b.WriteString("] ")
	b.WriteString(strconv.Itoa(pct))
	b.WriteString("%")

	style := th.Accent
	switch {
	case pct > 80:
		style = th.Danger
	case pct > 60:
		style = th.Warning
	}
	return style.Render(b.String())
}
