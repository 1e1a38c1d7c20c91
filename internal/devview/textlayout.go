// textlayout.go lays the debug HUD line out into an exact terminal cell
// width: wide/combining runes (CJK, emoji, accents) mean "one rune" and
// "one cell" are not the same thing, so a naive len()/range loop either
// overruns the row or splits a cluster mid-character. This is the one
// place in the module doing real text-shaping work, so it is also the
// one place pulling go-runewidth/uniseg/uax29 out of tcell's transitive
// closure and into a direct import.
package devview

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ellipsis is itself a single terminal cell wide.
const ellipsis = "…"

// FitToWidth lays s out into exactly maxCells terminal cells: space-padded
// if narrower, truncated if wider. Truncation prefers the last whole word
// boundary uax29's word segmenter finds that still leaves room for the
// ellipsis, falling back to a hard (but still grapheme-safe, via
// go-runewidth) cut when even the first word alone overflows maxCells.
func FitToWidth(s string, maxCells int) string {
	if maxCells <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxCells {
		return s + strings.Repeat(" ", maxCells-uniseg.StringWidth(s))
	}

	budget := maxCells - runewidth.StringWidth(ellipsis)
	fitted := lastWordBoundaryWithin(s, budget)
	if fitted == "" {
		fitted = runewidth.Truncate(s, budget, "")
	}
	out := fitted + ellipsis
	if w := uniseg.StringWidth(out); w < maxCells {
		out += strings.Repeat(" ", maxCells-w)
	}
	return out
}

// runeCellWidth is how many terminal columns r occupies, floored at 1 so
// a combining mark never collapses drawText's column counter.
func runeCellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// lastWordBoundaryWithin returns the longest prefix of s, cut only at a
// word boundary, whose rendered width is <= budget cells. Returns "" if
// not even the first word fits.
func lastWordBoundaryWithin(s string, budget int) string {
	if budget <= 0 {
		return ""
	}
	var best strings.Builder
	seg := words.NewSegmenter([]byte(s))
	for seg.Next() {
		candidate := best.String() + string(seg.Bytes())
		if runewidth.StringWidth(candidate) > budget {
			break
		}
		best.WriteString(string(seg.Bytes()))
	}
	return strings.TrimRight(best.String(), " ")
}
