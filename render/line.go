// Package render lays out the fetch display: it assembles the themed
// info lines and emits them beside the mascot, either as an inline
// raster image with cursor-positioned text or as plain side-by-side
// monospace rows.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/MCSeekeri/ferris-fetch/sysinfo"
	"github.com/MCSeekeri/ferris-fetch/theme"
)

// Line is one display row: a label/value pair of pre-styled strings.
// An empty label means the value prints alone, without a "label: "
// prefix.
type Line struct {
	Label string
	Value string
}

// Compose flattens a Line into the string actually printed.
func (l Line) Compose() string {
	if l.Label == "" {
		return l.Value
	}
	return l.Label + ": " + l.Value
}

// memBarWidth is the gauge width used for the Memory and Disk rows.
const memBarWidth = 10

// BuildLines assembles the ordered display lines for one run: title,
// separator, the fact rows, and in full mode the CPU, Memory, and Disk
// rows plus the palette swatches. infoCols is the column budget for the
// info block and drives CPU model truncation.
//
// The returned sequence is built once and consumed exactly once by the
// render step.
func BuildLines(facts *sysinfo.SystemFacts, th theme.Theme, opts Options, infoCols int) []Line {
	title := facts.Username + "@" + facts.Hostname

	lines := []Line{
		{Value: th.Title.Render(title)},
		{Value: th.Sep.Render(strings.Repeat("─", runewidth.StringWidth(title)))},
		{Label: th.Label.Render("OS"), Value: th.Value.Render(facts.OS)},
		{Label: th.Label.Render("Kernel"), Value: th.Value.Render(facts.Kernel)},
		{Label: th.Label.Render("Uptime"), Value: th.Value.Render(sysinfo.FormatUptime(facts.UptimeSeconds))},
		{Label: th.Label.Render("Shell"), Value: th.Value.Render(facts.Shell)},
	}

	if !opts.Minimal {
		lines = append(lines, Line{
			Label: th.Label.Render("CPU"),
			Value: th.Value.Render(cpuValue(facts, infoCols)),
		})
		lines = append(lines, Line{
			Label: th.Label.Render("Memory"),
			Value: usageValue(facts.MemoryUsed, facts.MemoryTotal, th),
		})
		if facts.DiskTotal > 0 {
			lines = append(lines, Line{
				Label: th.Label.Render("Disk"),
				Value: usageValue(facts.DiskUsed, facts.DiskTotal, th),
			})
		}
	}

	lines = append(lines, Line{})

	if !opts.Minimal && th.Colored() {
		normal, bright := th.ColorBars()
		lines = append(lines, Line{Value: normal}, Line{Value: bright})
	}

	return lines
}

// cpuValue renders "model (N cores)", truncating the model so the whole
// row fits the info-block budget. The available width floors at 4, so
// extremely narrow terminals still get a token of the model name.
func cpuValue(facts *sysinfo.SystemFacts, infoCols int) string {
	suffix := fmt.Sprintf(" (%d cores)", facts.CPUCores)
	available := infoCols - len("CPU: ") - len(suffix)
	if available < 4 {
		available = 4
	}
	return sysinfo.TruncateString(facts.CPUModel, available) + suffix
}

// usageValue renders "used / total gauge" for a byte-count pair.
func usageValue(used, total uint64, th theme.Theme) string {
	text := sysinfo.FormatBytes(used) + " / " + sysinfo.FormatBytes(total)
	return th.Value.Render(text) + " " + Bar(used, total, memBarWidth, th)
}

// ansiPattern matches SGR sequences so styled strings can be measured
// by their visible glyphs alone.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// visibleWidth measures the display-column width of s, ignoring ANSI
// styling and counting wide glyphs at their true cell width.
func visibleWidth(s string) int {
	return runewidth.StringWidth(ansiPattern.ReplaceAllString(s, ""))
}

// maxLineWidth is the widest composed line in display columns.
func maxLineWidth(lines []Line) int {
	max := 0
	for _, line := range lines {
		if w := visibleWidth(line.Compose()); w > max {
			max = w
		}
	}
	return max
}

// padToWidth right-pads s with spaces to the requested display width.
func padToWidth(s string, width int) string {
	gap := width - visibleWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
