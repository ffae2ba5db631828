// Copyright (c) 2026 kavnwang
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"errors"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
)

const defaultEps = 1e-12

type LiftHullOptions struct {
	Eps float64
}

type LiftHullOption func(*LiftHullOptions) error

// WithEps overrides the epsilon passed to the convex hull computation.
func WithEps(eps float64) LiftHullOption {
	return func(o *LiftHullOptions) error {
		if eps <= 0 {
			return errors.New("delaunay: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// LiftHull computes Delaunay triangulations by lifting planar points onto
// the paraboloid z = x^2 + y^2 and taking the lower convex hull: the
// downward-facing hull faces project exactly onto the Delaunay triangles
// of the original points.
type LiftHull struct {
	eps float64
}

func NewLiftHull(setters ...LiftHullOption) (*LiftHull, error) {
	opts := LiftHullOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}
	return &LiftHull{eps: opts.Eps}, nil
}

func (lh *LiftHull) Triangulate(points []r2.Point) (*Triangulation, error) {
	numPoints := len(points)
	if numPoints < 3 {
		return nil,
			errors.New("delaunay: insufficient points for triangulation (minimum 3 required)")
	}

	lifted := make([]r3.Vector, numPoints)
	for i, p := range points {
		lifted[i] = r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
	}

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, lh.eps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, errors.New("delaunay: inconsistent number of indices returned from QuickHull")
	}

	// Keep only the downward-facing faces, orienting each face normal away
	// from the hull interior so the test does not depend on the winding
	// convention of the hull faces. Kept triangles are normalized to
	// counter-clockwise in the plane.
	var interior r3.Vector
	for _, v := range lifted {
		interior = interior.Add(v)
	}
	interior = interior.Mul(1 / float64(numPoints))

	triangles := make([]int, 0, len(ch.Indices))
	for i := 0; i < len(ch.Indices); i += 3 {
		a, b, c := ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]
		norm := lifted[b].Sub(lifted[a]).Cross(lifted[c].Sub(lifted[a]))
		center := lifted[a].Add(lifted[b]).Add(lifted[c]).Mul(1.0 / 3)
		if norm.Dot(center.Sub(interior)) < 0 {
			norm = norm.Mul(-1)
		}
		if norm.Z >= 0 {
			continue
		}
		if orient2d(points[a], points[b], points[c]) < 0 {
			b, c = c, b
		}
		triangles = append(triangles, a, b, c)
	}
	if len(triangles) == 0 {
		return nil, errors.New("delaunay: degenerate input, no lower hull faces")
	}

	halfedges, err := linkHalfedges(triangles)
	if err != nil {
		return nil, err
	}

	return &Triangulation{
		Points:    points,
		Triangles: triangles,
		Halfedges: halfedges,
	}, nil
}

// linkHalfedges pairs each directed edge a->b with its opposite b->a in the
// neighboring triangle. Edges without an opposite stay None.
func linkHalfedges(triangles []int) ([]int, error) {
	halfedges := make([]int, len(triangles))
	for i := range halfedges {
		halfedges[i] = None
	}

	seen := make(map[[2]int]int, len(triangles))
	for e := range triangles {
		a := triangles[e]
		b := triangles[NextHalfedge(e)]
		if _, dup := seen[[2]int{a, b}]; dup {
			return nil, errors.New("delaunay: directed edge appears in more than one triangle")
		}
		seen[[2]int{a, b}] = e

		if o, ok := seen[[2]int{b, a}]; ok {
			halfedges[e] = o
			halfedges[o] = e
		}
	}
	return halfedges, nil
}
