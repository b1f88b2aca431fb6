// Package art provides the Ferris the crab mascot artwork in its two
// forms: fixed ASCII blocks for the text fallback and an embedded vector
// payload rasterized on demand for terminals with inline-image support.
package art

import (
	"github.com/mattn/go-runewidth"
)

// ferrisFull is the 8-line crab used in full mode.
var ferrisFull = []string{
	`        _~^~^~_        `,
	`    \) /  o o  \ (/    `,
	`      '_   -   _'      `,
	`      / '-----' \      `,
	`     /           \     `,
	`    /  /       \  \    `,
	`   (  |         |  )   `,
	`    \_|         |_/    `,
}

// ferrisSmall is the 3-line crab used in minimal mode.
var ferrisSmall = []string{
	`   _~^~_   `,
	` \)/o o\(/ `,
	`  '- ^ -'  `,
}

// Block returns the ASCII mascot block for the requested mode.
//
// Parameters:
//   - minimal: true selects the compact 3-line crab, false the full
//     8-line one
//
// Returns:
//   - A slice of strings, one per art line, uncolored. Callers apply
//     theme styling at render time.
//
// The returned slice is shared; callers must not modify it.
func Block(minimal bool) []string {
	if minimal {
		return ferrisSmall
	}
	return ferrisFull
}

// Width returns the widest line of an art block in display columns.
func Width(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}
