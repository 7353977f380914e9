package render

import (
	"strings"

	"github.com/katalvlaran/labyrinth/core"
)

// ASCII renders g as text. Every cell is three characters wide with
// mark(v) in the middle; a nil mark leaves cells blank. Open passages are
// drawn as gaps in the walls.
//
//	+---+---+
//	| s     |
//	+---+   +
//	| e     |
//	+---+---+
func ASCII(g core.Grid2D, mark func(v int) rune) string {
	w, h := g.Width(), g.Height()
	var sb strings.Builder
	sb.Grow((4*w + 2) * (2*h + 1))

	sb.WriteByte('+')
	for c := 0; c < w; c++ {
		sb.WriteString("---+")
	}
	sb.WriteByte('\n')

	for r := 0; r < h; r++ {
		sb.WriteByte('|')
		for c := 0; c < w; c++ {
			v := r*w + c
			glyph := ' '
			if mark != nil {
				glyph = mark(v)
			}
			sb.WriteByte(' ')
			sb.WriteRune(glyph)
			sb.WriteByte(' ')
			if c < w-1 && open(g, v, v+1) {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')

		sb.WriteByte('+')
		for c := 0; c < w; c++ {
			v := r*w + c
			if r < h-1 && open(g, v, v+w) {
				sb.WriteString("   +")
			} else {
				sb.WriteString("---+")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// PathMarks returns a mark function for ASCII that draws source as 's',
// destination as 'e', other path vertices as '.', and leaves the rest blank.
func PathMarks(path []int, source, destination int) func(v int) rune {
	on := make(map[int]struct{}, len(path))
	for _, v := range path {
		on[v] = struct{}{}
	}

	return func(v int) rune {
		switch v {
		case source:
			return 's'
		case destination:
			return 'e'
		}
		if _, ok := on[v]; ok {
			return '.'
		}
		return ' '
	}
}

func open(g core.Grid2D, u, v int) bool {
	ok, err := g.AreAdjacent(u, v)
	return err == nil && ok
}
