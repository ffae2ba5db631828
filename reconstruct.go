// Copyright (c) 2026 kavnwang
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package glass

import (
	"math"

	"github.com/golang/geo/r2"

	"github.com/kavnwang/stained-glass-gallery/delaunay"
)

// maxWalkSteps bounds the ring walk, guarding against a malformed
// adjacency table. Correct input terminates long before this.
const maxWalkSteps = 200

// circumcenters computes one Voronoi vertex per triangle.
func circumcenters(points []r2.Point, t *delaunay.Triangulation, eps float64) []r2.Point {
	centers := make([]r2.Point, len(t.Triangles)/3)
	for i := range centers {
		a := points[t.Triangles[3*i]]
		b := points[t.Triangles[3*i+1]]
		c := points[t.Triangles[3*i+2]]
		centers[i] = circumcenter(a, b, c, eps)
	}
	return centers
}

// circumcenter returns the point equidistant from the triangle's vertices,
// solved from the perpendicular-bisector system. Triangles whose doubled
// signed area falls below eps are nearly collinear and have no finite
// circumcenter; those get the centroid instead so the vertex table stays
// total.
func circumcenter(a, b, c r2.Point, eps float64) r2.Point {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < eps {
		return r2.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return r2.Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
}

// incidentEdges records one representative outgoing half-edge per vertex,
// preferring an edge with no neighbor so that walks at hull vertices start
// on the boundary and cover the full fan.
func incidentEdges(numPoints int, t *delaunay.Triangulation) []int {
	inc := make([]int, numPoints)
	for i := range inc {
		inc[i] = delaunay.None
	}
	for e, v := range t.Triangles {
		if inc[v] == delaunay.None || t.Halfedges[e] == delaunay.None {
			inc[v] = e
		}
	}
	return inc
}

// cellRing walks the triangles around a site and collects their
// circumcenters: the vertices of the site's unclipped Voronoi cell in
// traversal order. The walk stops when it closes the ring or falls off a
// boundary edge. A nil or short result means the site cannot form a
// polygon and the caller drops it.
func cellRing(site int, t *delaunay.Triangulation, centers []r2.Point, inc []int) []r2.Point {
	e0 := inc[site]
	if e0 == delaunay.None {
		return nil
	}
	ring := make([]r2.Point, 0, 8)
	e := e0
	for range maxWalkSteps {
		ring = append(ring, centers[e/3])
		e = t.Halfedges[delaunay.PrevHalfedge(e)]
		if e == delaunay.None || e == e0 {
			break
		}
	}
	return ring
}
