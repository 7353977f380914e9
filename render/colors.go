package render

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/maze"
)

// CellColorFunc picks the fill color of vertex v.
type CellColorFunc func(v int) color.Color

// Palette used by the default policies.
var (
	WallColor       color.Color = colornames.Black
	ProcessedColor  color.Color = colornames.White
	PendingColor    color.Color = colornames.Black
	ProcessingColor color.Color = colornames.Red
	PathColor       color.Color = colornames.Lightseagreen
	TreatedColor    color.Color = colornames.Lightblue
	SourceColor     color.Color = colornames.Green
	TargetColor     color.Color = colornames.Blue
)

// WallThickness returns the half-wall thickness for a cell side: 1/20 of
// the cell, at least one pixel.
func WallThickness(cellSide int) int {
	return max(cellSide/20, 1)
}

// GeneratorColor colors cells by generation progress: processed cells are
// white, pending ones black, cells being processed red.
func GeneratorColor(progressions core.VertexLabelling[maze.Progression]) CellColorFunc {
	return func(v int) color.Color {
		p, err := progressions.Label(v)
		if err != nil {
			return WallColor
		}
		switch p {
		case maze.Processed:
			return ProcessedColor
		case maze.Processing:
			return ProcessingColor
		default:
			return PendingColor
		}
	}
}

// SolverCellColor colors cells by solver treatment: cells on the final
// path (maze.PathLabel) are sea green, untreated cells keep their
// generator color, every other treated cell is light blue.
func SolverCellColor(progressions core.VertexLabelling[maze.Progression], treatments core.VertexLabelling[int]) CellColorFunc {
	base := GeneratorColor(progressions)

	return func(v int) color.Color {
		t, err := treatments.Label(v)
		if err != nil {
			return WallColor
		}
		switch t {
		case maze.PathLabel:
			return PathColor
		case 0:
			return base(v)
		default:
			return TreatedColor
		}
	}
}
