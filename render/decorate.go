package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/labyrinth/core"
)

// minArrowSide is the smallest cell side that still fits an outlined arrow.
const minArrowSide = 4

// outlinedArrow returns a side×side right-pointing arrow in c with a white
// core, or a plain arrow when side is too small for the outline.
func outlinedArrow(side int, c color.Color) (image.Image, error) {
	outer := image_utils.ResizeImage(image_utils.RightArrow(c), side, side)
	if side < minArrowSide {
		return outer, nil
	}
	inner := image_utils.ResizeImage(image_utils.RightArrow(color.White), side/2, side/2)

	arrow := image_utils.NewCompositeImage()
	if err := arrow.AddImage(outer, image.Pt(0, 0)); err != nil {
		return nil, err
	}
	if err := arrow.AddImage(inner, image.Pt(side/4, side/4)); err != nil {
		return nil, err
	}

	return image_utils.ToRGBA(arrow), nil
}

// Decorate rasterises the painter's current image with an arrow on the
// source cell (SourceColor) and on the destination cell (TargetColor).
func Decorate(p *Painter, source, destination int) (*image.RGBA, error) {
	n := p.maze.NbVertices()
	for _, v := range [...]int{source, destination} {
		if !p.maze.VertexExists(v) {
			return nil, fmt.Errorf("render: decorate: %w", core.OutOfRange(v, n))
		}
	}

	decorated := image_utils.NewCompositeImage()
	if err := decorated.AddImage(p.Image(), image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render: base maze image: %w", err)
	}

	marks := []struct {
		v     int
		color color.Color
		name  string
	}{
		{source, SourceColor, "start"},
		{destination, TargetColor, "end"},
	}
	for _, m := range marks {
		arrow, err := outlinedArrow(p.CellSide(), m.color)
		if err != nil {
			return nil, fmt.Errorf("render: %s arrow: %w", m.name, err)
		}
		if err = decorated.AddImage(arrow, p.CellBounds(m.v).Min); err != nil {
			return nil, fmt.Errorf("render: adding %s arrow: %w", m.name, err)
		}
	}

	return image_utils.ToRGBA(decorated), nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
