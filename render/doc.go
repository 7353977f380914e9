// Package render draws grid mazes without a GUI.
//
//   - ASCII(g, mark) renders a core.Grid2D as "+---+" wall art, one text
//     cell per vertex; mark decides the glyph inside each cell.
//   - Painter rasterises a maze into an *image.RGBA with the cell and wall
//     geometry of a classic canvas maze view. It is a core.GraphObserver:
//     subscribed to a maze.ObservableMaze (usually behind a maze.Animation)
//     it repaints exactly the cells and walls that change.
//   - GeneratorColor and SolverCellColor are the cell color policies for the
//     two phases; SetCellColor switches between them.
//   - Decorate adds start and destination arrows; EncodePNG writes the result.
//
// Geometry (cell side c, half-wall thickness t):
//
//	cellOffset(i) = 2t + i*(c + 2t)
//	image size    = cellOffset(width) × cellOffset(height)
//
// The wall between two neighbors is 2t thick: the half facing each cell is
// painted in that cell's color when the passage is open, in the wall color
// otherwise.
package render
