// Copyright (c) 2026 kavnwang
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package glass

import (
	"github.com/golang/geo/r2"
)

// clipRect clips a polygon to the rectangle [0, width] x [0, height] with
// Sutherland-Hodgman: one sequential pass per bounding half-plane. An
// empty intermediate result short-circuits.
func clipRect(poly []r2.Point, width, height float64) []r2.Point {
	planes := [...]struct {
		inside func(r2.Point) bool
		cross  func(a, b r2.Point) r2.Point
	}{
		{
			func(p r2.Point) bool { return p.X >= 0 },
			func(a, b r2.Point) r2.Point { return crossX(a, b, 0) },
		},
		{
			func(p r2.Point) bool { return p.X <= width },
			func(a, b r2.Point) r2.Point { return crossX(a, b, width) },
		},
		{
			func(p r2.Point) bool { return p.Y >= 0 },
			func(a, b r2.Point) r2.Point { return crossY(a, b, 0) },
		},
		{
			func(p r2.Point) bool { return p.Y <= height },
			func(a, b r2.Point) r2.Point { return crossY(a, b, height) },
		},
	}

	for _, plane := range planes {
		if len(poly) == 0 {
			return nil
		}
		poly = clipPlane(poly, plane.inside, plane.cross)
	}
	return poly
}

// clipPlane walks the polygon's edges cyclically (last vertex wraps to
// first), keeping vertices inside the half-plane and inserting boundary
// crossings on entering or exiting edges.
func clipPlane(in []r2.Point, inside func(r2.Point) bool, cross func(a, b r2.Point) r2.Point) []r2.Point {
	out := make([]r2.Point, 0, len(in)+2)
	prev := in[len(in)-1]
	prevIn := inside(prev)
	for _, cur := range in {
		curIn := inside(cur)
		switch {
		case prevIn && curIn:
			out = append(out, cur)
		case !prevIn && curIn:
			out = append(out, cross(prev, cur), cur)
		case prevIn && !curIn:
			out = append(out, cross(prev, cur))
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// crossX interpolates the edge a-b to the vertical line x = bound.
func crossX(a, b r2.Point, bound float64) r2.Point {
	t := (bound - a.X) / (b.X - a.X)
	return r2.Point{X: bound, Y: a.Y + t*(b.Y-a.Y)}
}

// crossY interpolates the edge a-b to the horizontal line y = bound.
func crossY(a, b r2.Point, bound float64) r2.Point {
	t := (bound - a.Y) / (b.Y - a.Y)
	return r2.Point{X: a.X + t*(b.X-a.X), Y: bound}
}
