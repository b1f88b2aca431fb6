package render

import (
	"strings"
	"testing"
)

func composed(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Compose()
	}
	return out
}

func TestBuildLinesMinimal(t *testing.T) {
	lines := BuildLines(testFacts(), plainTheme(), Options{Minimal: true}, 80)
	want := []string{
		"bob@box",
		"───────",
		"OS: Linux 6.1",
		"Kernel: 6.1.0",
		"Uptime: 1h 2m",
		"Shell: bash",
		"",
	}
	got := composed(lines)
	if len(got) != len(want) {
		t.Fatalf("minimal lines = %d; want %d\n%q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestBuildLinesFull(t *testing.T) {
	lines := BuildLines(testFacts(), plainTheme(), Options{}, 80)
	got := composed(lines)

	if len(got) != 10 {
		t.Fatalf("full lines = %d; want 10\n%q", len(got), got)
	}
	if got[6] != "CPU: Example CPU (8 cores)" {
		t.Fatalf("CPU line = %q", got[6])
	}
	if want := "Memory: 4.0 GB / 16.0 GB [██░░░░░░░░] 25%"; got[7] != want {
		t.Fatalf("Memory line = %q; want %q", got[7], want)
	}
	if want := "Disk: 100.0 GB / 500.0 GB [██░░░░░░░░] 20%"; got[8] != want {
		t.Fatalf("Disk line = %q; want %q", got[8], want)
	}
	if got[9] != "" {
		t.Fatalf("trailing spacer = %q; want empty", got[9])
	}
}

func TestBuildLinesPaletteRowsWhenColored(t *testing.T) {
	lines := BuildLines(testFacts(), coloredTheme(), Options{}, 80)
	if len(lines) != 12 {
		t.Fatalf("colored full lines = %d; want 12 including the palette rows", len(lines))
	}
	for _, row := range lines[10:] {
		if !strings.Contains(row.Value, "█") {
			t.Fatalf("palette row %q has no swatches", row.Value)
		}
		if !strings.Contains(row.Value, "\x1b[") {
			t.Fatalf("palette row %q is unstyled", row.Value)
		}
	}
}

func TestBuildLinesSkipsDiskWhenUnavailable(t *testing.T) {
	facts := testFacts()
	facts.DiskUsed, facts.DiskTotal = 0, 0
	lines := BuildLines(facts, plainTheme(), Options{}, 80)
	if len(lines) != 9 {
		t.Fatalf("lines without disk = %d; want 9", len(lines))
	}
	for _, l := range lines {
		if strings.HasPrefix(l.Compose(), "Disk:") {
			t.Fatalf("disk row %q present despite a failed disk query", l.Compose())
		}
	}
}

func TestSeparatorMatchesTitleWidth(t *testing.T) {
	lines := BuildLines(testFacts(), coloredTheme(), Options{Minimal: true}, 80)
	title := visibleWidth(lines[0].Compose())
	sep := visibleWidth(lines[1].Compose())
	if title != sep {
		t.Fatalf("separator width %d does not match title width %d", sep, title)
	}
}

func TestCPUTruncation(t *testing.T) {
	facts := testFacts()
	facts.CPUModel = strings.Repeat("x", 40)
	th := plainTheme()
	suffix := " (8 cores)"

	cpuLine := func(infoCols int) string {
		lines := BuildLines(facts, th, Options{}, infoCols)
		return lines[6].Value
	}

	t.Run("wide budget leaves the model alone", func(t *testing.T) {
		if got := cpuLine(80); got != facts.CPUModel+suffix {
			t.Fatalf("CPU value = %q; want the untouched model", got)
		}
	})

	t.Run("at the limit stays untouched", func(t *testing.T) {
		// available = 55 - len("CPU: ") - len(suffix) = 40, the model
		// length exactly.
		if got := cpuLine(55); got != facts.CPUModel+suffix {
			t.Fatalf("CPU value = %q; want the untouched model", got)
		}
	})

	t.Run("tight budget truncates with ellipsis", func(t *testing.T) {
		// available = 30 - 5 - 10 = 15, so 12 characters survive.
		want := strings.Repeat("x", 12) + "..." + suffix
		if got := cpuLine(30); got != want {
			t.Fatalf("CPU value = %q; want %q", got, want)
		}
	})

	t.Run("floor at width four", func(t *testing.T) {
		// Any budget under the floor clamps to 4: one character plus
		// the ellipsis.
		want := "x..." + suffix
		if got := cpuLine(0); got != want {
			t.Fatalf("CPU value = %q; want %q", got, want)
		}
	})
}

func TestVisibleWidthIgnoresStyling(t *testing.T) {
	styled := coloredTheme().Title.Render("bob@box")
	if got := visibleWidth(styled); got != 7 {
		t.Fatalf("visibleWidth(styled title) = %d; want 7", got)
	}
	if got := visibleWidth("─────"); got != 5 {
		t.Fatalf("visibleWidth of box-drawing glyphs = %d; want 5", got)
	}
}

func TestPadToWidth(t *testing.T) {
	if got := padToWidth("ab", 5); got != "ab   " {
		t.Fatalf("padToWidth short = %q", got)
	}
	if got := padToWidth("abcdef", 5); got != "abcdef" {
		t.Fatalf("padToWidth long = %q; want the input unchanged", got)
	}
}
