// Package glass generates deterministic Voronoi tessellations of a rectangle:
// irregular convex cells anchored at pseudo-randomly placed sites, suitable
// for stained-glass style overlays.

package glass

import (
	"math"

	"github.com/golang/geo/r2"
)

// Cell is one tile of a Tessellation. ID is the index of its site among the
// generated sites, Seed is the site itself, and Vertices is the cell's
// polygon clipped to the tessellation rectangle, in traversal order around
// the site.
type Cell struct {
	ID       int
	Seed     r2.Point
	Vertices []r2.Point
}

// Area returns the area of the cell's polygon.
func (c Cell) Area() float64 {
	var sum float64
	n := len(c.Vertices)
	for i, p := range c.Vertices {
		q := c.Vertices[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(sum) / 2
}

// Centroid returns the centroid of the cell's polygon. Cells with near-zero
// area fall back to the seed point.
func (c Cell) Centroid() r2.Point {
	var area, cx, cy float64
	n := len(c.Vertices)
	for i, p := range c.Vertices {
		q := c.Vertices[(i+1)%n]
		w := p.X*q.Y - q.X*p.Y
		area += w
		cx += (p.X + q.X) * w
		cy += (p.Y + q.Y) * w
	}
	if math.Abs(area) < 1e-12 {
		return c.Seed
	}
	return r2.Point{X: cx / (3 * area), Y: cy / (3 * area)}
}
