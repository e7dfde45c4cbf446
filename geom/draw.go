package geom

import (
	"math"

	"github.com/fogleman/gg"
)

const drawPadding = 20

// DrawQuery renders the polygon, the target point, and the closest
// boundary point to a PNG at path. The context is flipped so the
// origin sits at the bottom left, matching graph-paper coordinates
// rather than image coordinates.
func (poly Polygon) DrawQuery(target Point, scale float64, path string) error {
	closest := poly.ClosestPointTo(target)

	min, max := poly.Bounds()
	min.X = math.Min(min.X, target.X)
	min.Y = math.Min(min.Y, target.Y)
	max.X = math.Max(max.X, target.X)
	max.Y = math.Max(max.Y, target.Y)

	// Set up the context
	width := int(scale*(max.X-min.X)) + drawPadding*2
	height := int(scale*(max.Y-min.Y)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-min.X, -min.Y)

	c.SetLineWidth(2)
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// Connect the target to its closest boundary point, then mark both
	c.SetRGB(1, 1, 0)
	c.DrawLine(target.X, target.Y, closest.X, closest.Y)
	c.Stroke()
	c.DrawCircle(closest.X, closest.Y, 4/scale)
	c.Fill()
	c.SetRGB(1, 0, 0)
	c.DrawCircle(target.X, target.Y, 4/scale)
	c.Fill()

	return c.SavePNG(path)
}
