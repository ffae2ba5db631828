// Copyright (c) 2026 kavnwang
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay defines the triangulation contract consumed by the
// tessellation core and a default implementation built on a lifted convex
// hull.

package delaunay

import (
	"fmt"

	"github.com/golang/geo/r2"
)

// None marks a half-edge with no opposite: a boundary edge of the
// triangulation.
const None = -1

// Triangulation is a triangle list with half-edge adjacency. Triangles
// holds point indices as flattened triples; triangle t owns the directed
// edges 3t, 3t+1, 3t+2, where edge e runs from Triangles[e] to
// Triangles[NextHalfedge(e)]. Halfedges maps each directed edge to its
// opposite in the neighboring triangle, or None on the boundary.
type Triangulation struct {
	Points    []r2.Point
	Triangles []int
	Halfedges []int
}

func (t *Triangulation) NumTriangles() int {
	return len(t.Triangles) / 3
}

// Validate checks that the half-edge table is a valid involution. It is a
// debugging aid, not part of the construction path.
func (t *Triangulation) Validate() error {
	if len(t.Halfedges) != len(t.Triangles) {
		return fmt.Errorf("delaunay: %d halfedges for %d triangle indices",
			len(t.Halfedges), len(t.Triangles))
	}
	for e, o := range t.Halfedges {
		if o == None {
			continue
		}
		if o < 0 || o >= len(t.Halfedges) || t.Halfedges[o] != e {
			return fmt.Errorf("delaunay: invalid halfedge connection %d <-> %d", e, o)
		}
	}
	return nil
}

// NextHalfedge returns the next directed edge within the same triangle.
func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// PrevHalfedge returns the previous directed edge within the same triangle.
func PrevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

// Triangulator converts a point set into a Triangulation. Implementations
// must satisfy the half-edge conventions above; the tessellation core is
// agnostic to the algorithm behind them.
type Triangulator interface {
	Triangulate(points []r2.Point) (*Triangulation, error)
}

// orient2d returns twice the signed area of the triangle a-b-c: positive
// when the vertices wind counter-clockwise.
func orient2d(a, b, c r2.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
