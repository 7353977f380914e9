package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/gridgraph"
)

// Sentinel errors for painting.
var (
	// ErrGridNil is returned when a painter is built without a maze.
	ErrGridNil = errors.New("render: grid is nil")

	// ErrInvalidCellSide is returned for a cell side below one pixel.
	ErrInvalidCellSide = errors.New("render: cell side must be positive")
)

// PainterOption configures a Painter.
type PainterOption func(*PainterOptions)

// PainterOptions holds the painter geometry and colors.
type PainterOptions struct {
	// CellSide is the side of a cell in pixels.
	CellSide int

	// WallThickness is the half-wall thickness; 0 derives it from CellSide.
	WallThickness int

	// WallColor fills closed walls and the background.
	WallColor color.Color

	// CellColor picks each cell's color. Defaults to all white.
	CellColor CellColorFunc
}

// DefaultPainterOptions returns 20px cells, a derived wall thickness,
// black walls and white cells.
func DefaultPainterOptions() PainterOptions {
	return PainterOptions{
		CellSide:  20,
		WallColor: WallColor,
		CellColor: func(int) color.Color { return ProcessedColor },
	}
}

// WithCellSide sets the cell side in pixels.
func WithCellSide(side int) PainterOption {
	return func(o *PainterOptions) { o.CellSide = side }
}

// WithWallThickness overrides the derived half-wall thickness.
func WithWallThickness(t int) PainterOption {
	return func(o *PainterOptions) {
		if t > 0 {
			o.WallThickness = t
		}
	}
}

// WithWallColor sets the wall color.
func WithWallColor(c color.Color) PainterOption {
	return func(o *PainterOptions) {
		if c != nil {
			o.WallColor = c
		}
	}
}

// WithCellColor sets the cell color policy.
func WithCellColor(fn CellColorFunc) PainterOption {
	return func(o *PainterOptions) {
		if fn != nil {
			o.CellColor = fn
		}
	}
}

// Painter rasterises a maze. Calls are serialised by an internal mutex so
// Image may be read from another goroutine while observer events arrive.
type Painter struct {
	maze core.Grid2D
	opts PainterOptions

	mu  sync.Mutex
	img *image.RGBA
}

var _ core.GraphObserver = (*Painter)(nil)

// NewPainter allocates the image for g and paints it once.
func NewPainter(g core.Grid2D, opts ...PainterOption) (*Painter, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultPainterOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.CellSide < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCellSide, o.CellSide)
	}
	if o.WallThickness == 0 {
		o.WallThickness = WallThickness(o.CellSide)
	}

	p := &Painter{maze: g, opts: o}
	p.img = image.NewRGBA(image.Rect(0, 0, p.CellOffset(g.Width()), p.CellOffset(g.Height())))
	p.Repaint()

	return p, nil
}

// CellSide returns the cell side in pixels.
func (p *Painter) CellSide() int { return p.opts.CellSide }

// WallThickness returns the half-wall thickness in pixels.
func (p *Painter) WallThickness() int { return p.opts.WallThickness }

// CellOffset returns the pixel offset of the cell at row or column pos.
func (p *Painter) CellOffset(pos int) int {
	return 2*p.opts.WallThickness + pos*(p.opts.CellSide+2*p.opts.WallThickness)
}

// CellBounds returns the pixel rectangle of cell v.
func (p *Painter) CellBounds(v int) image.Rectangle {
	w := p.maze.Width()
	x, y := p.CellOffset(v%w), p.CellOffset(v/w)

	return image.Rect(x, y, x+p.opts.CellSide, y+p.opts.CellSide)
}

// SetCellColor replaces the cell color policy. The image is not repainted.
func (p *Painter) SetCellColor(fn CellColorFunc) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.opts.CellColor = fn
	p.mu.Unlock()
}

// Image returns a copy of the current raster.
func (p *Painter) Image() *image.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := image.NewRGBA(p.img.Bounds())
	copy(out.Pix, p.img.Pix)

	return out
}

// Repaint redraws the whole maze: wall-colored background, then every
// cell with its open passages.
func (p *Painter) Repaint() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.fill(p.img.Bounds(), p.opts.WallColor)
	for v := 0; v < p.maze.NbVertices(); v++ {
		// every vertex is in range and neighbors are maze-adjacent
		_ = p.drawCell(v)
	}
}

// DrawCell paints cell v and the walls towards its open neighbors.
func (p *Painter) DrawCell(v int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.drawCell(v)
}

// DrawWall paints the wall between grid neighbors u and v: cell colors if
// the passage is open, the wall color otherwise.
func (p *Painter) DrawWall(u, v int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.drawWall(u, v)
}

// OnEdgeAdded repaints the opened wall.
func (p *Painter) OnEdgeAdded(u, v int) error { return p.DrawWall(u, v) }

// OnEdgeRemoved repaints the closed wall.
func (p *Painter) OnEdgeRemoved(u, v int) error { return p.DrawWall(u, v) }

// OnVertexChanged repaints the relabelled cell.
func (p *Painter) OnVertexChanged(v int) error { return p.DrawCell(v) }

func (p *Painter) drawCell(v int) error {
	if !p.maze.VertexExists(v) {
		return core.OutOfRange(v, p.maze.NbVertices())
	}
	p.fill(p.CellBounds(v), p.opts.CellColor(v))

	nbs, err := p.maze.Neighbors(v)
	if err != nil {
		return fmt.Errorf("render: neighbors of %d: %w", v, err)
	}
	for _, u := range nbs {
		if err = p.drawWall(u, v); err != nil {
			return err
		}
	}

	return nil
}

func (p *Painter) drawWall(u, v int) error {
	opened, err := p.maze.AreAdjacent(u, v)
	if err != nil {
		return fmt.Errorf("render: wall %d-%d: %w", u, v, err)
	}
	w := p.maze.Width()
	if !gridgraph.AdjacentInGrid(w, u, v) {
		return fmt.Errorf("render: wall %d-%d: %w", u, v, gridgraph.ErrNotGridAdjacent)
	}
	// paint top-to-bottom / left-to-right
	if u > v {
		u, v = v, u
	}

	uColor, vColor := p.opts.WallColor, p.opts.WallColor
	if opened {
		uColor, vColor = p.opts.CellColor(u), p.opts.CellColor(v)
	}

	c, t := p.opts.CellSide, p.opts.WallThickness
	x, y := p.CellOffset(u%w), p.CellOffset(u/w)
	if u%w == v%w {
		// horizontal wall below u
		p.fill(image.Rect(x, y+c, x+c, y+c+t), uColor)
		p.fill(image.Rect(x, y+c+t, x+c, y+c+2*t), vColor)
	} else {
		// vertical wall right of u
		p.fill(image.Rect(x+c, y, x+c+t, y+c), uColor)
		p.fill(image.Rect(x+c+t, y, x+c+2*t, y+c), vColor)
	}

	return nil
}

func (p *Painter) fill(r image.Rectangle, c color.Color) {
	draw.Draw(p.img, r, image.NewUniform(c), image.Point{}, draw.Src)
}
