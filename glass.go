// Copyright (c) 2026 kavnwang
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package glass

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/kavnwang/stained-glass-gallery/delaunay"
)

const (
	// defaultEps is the degeneracy threshold for circumcenter computation.
	defaultEps = 1e-10

	// paddingScale sets how far outside the rectangle the anchor points sit,
	// as a multiple of the larger dimension.
	paddingScale = 3

	numPadding = 8
)

type Options struct {
	Seed   string
	Seeded bool

	Eps          float64
	Triangulator delaunay.Triangulator
	Logger       *zap.Logger
}

type Option func(*Options) error

// WithSeed makes generation deterministic: the same seed always produces
// the same tessellation.
func WithSeed(seed string) Option {
	return func(o *Options) error {
		o.Seed = seed
		o.Seeded = true
		return nil
	}
}

// WithEps overrides the degeneracy threshold used when computing triangle
// circumcenters.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return errors.New("glass: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// WithTriangulator substitutes the triangulation backend. Any implementation
// satisfying the delaunay.Triangulator contract works.
func WithTriangulator(tr delaunay.Triangulator) Option {
	return func(o *Options) error {
		if tr == nil {
			return errors.New("glass: triangulator must not be nil")
		}
		o.Triangulator = tr
		return nil
	}
}

// WithLogger attaches a logger for debug-level stage summaries. Without it
// the generator is silent.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) error {
		if logger == nil {
			return errors.New("glass: logger must not be nil")
		}
		o.Logger = logger
		return nil
	}
}

// Tessellation is a partition of the (Width x Height) rectangle into
// Voronoi cells. Sites holds all generated sites in id order; Cells holds
// the surviving cells in ascending id order and may be shorter than Sites.
type Tessellation struct {
	Width  float64
	Height float64

	Sites []r2.Point
	Cells []Cell

	opts Options
}

func (ts *Tessellation) NumCells() int {
	return len(ts.Cells)
}

// New generates a tessellation of the (width x height) rectangle with up to
// numCells cells. Sites that cannot form a valid polygon are dropped rather
// than failing the whole generation, so the result may hold fewer cells
// than requested.
func New(width, height float64, numCells int, setters ...Option) (*Tessellation, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("glass: dimensions must be positive, got %gx%g", width, height)
	}
	if numCells < 1 {
		return nil, fmt.Errorf("glass: numCells must be at least 1, got %d", numCells)
	}

	lh, err := delaunay.NewLiftHull()
	if err != nil {
		return nil, err
	}
	opts := Options{
		Eps:          defaultEps,
		Triangulator: lh,
		Logger:       zap.NewNop(),
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	var r *rng
	if opts.Seeded {
		r = newRNG(opts.Seed)
	} else {
		r = newRandomRNG()
	}

	sites := sampleSites(width, height, numCells, r)
	opts.Logger.Debug("sites sampled", zap.Int("count", len(sites)))

	cells, err := buildCells(sites, width, height, &opts)
	if err != nil {
		return nil, err
	}

	return &Tessellation{
		Width:  width,
		Height: height,
		Sites:  sites,
		Cells:  cells,
		opts:   opts,
	}, nil
}

// Relax applies Lloyd relaxation: each surviving cell's site moves to the
// centroid of its clipped polygon and the tessellation is rebuilt. Repeated
// steps even out cell sizes. Sites whose cell was dropped keep their
// previous position, so ids stay stable across steps.
func (ts *Tessellation) Relax(steps int) error {
	if steps < 0 {
		return fmt.Errorf("glass: steps must be non-negative, got %d", steps)
	}
	for range steps {
		sites := make([]r2.Point, len(ts.Sites))
		copy(sites, ts.Sites)
		for _, c := range ts.Cells {
			ctr := c.Centroid()
			sites[c.ID] = r2.Point{
				X: clamp(ctr.X, 1, ts.Width-1),
				Y: clamp(ctr.Y, 1, ts.Height-1),
			}
		}

		cells, err := buildCells(sites, ts.Width, ts.Height, &ts.opts)
		if err != nil {
			return err
		}
		ts.Sites = sites
		ts.Cells = cells
	}
	return nil
}

// buildCells runs the pipeline for a fixed site layout: pad, triangulate,
// compute circumcenters, walk each site's ring, clip to the rectangle.
// Per-site failures drop that site only.
func buildCells(sites []r2.Point, width, height float64, opts *Options) ([]Cell, error) {
	points := make([]r2.Point, 0, len(sites)+numPadding)
	points = append(points, sites...)
	points = append(points, paddingPoints(width, height)...)

	t, err := opts.Triangulator.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("glass: triangulate: %w", err)
	}
	opts.Logger.Debug("triangulation complete", zap.Int("triangles", len(t.Triangles)/3))

	centers := circumcenters(points, t, opts.Eps)
	inc := incidentEdges(len(points), t)

	cells := make([]Cell, 0, len(sites))
	for i, site := range sites {
		ring := cellRing(i, t, centers, inc)
		if len(ring) < 3 {
			opts.Logger.Debug("site dropped: incomplete ring", zap.Int("site", i))
			continue
		}
		poly := clipRect(ring, width, height)
		if len(poly) < 3 {
			opts.Logger.Debug("site dropped: clipped away", zap.Int("site", i))
			continue
		}
		cells = append(cells, Cell{ID: i, Seed: site, Vertices: poly})
	}
	return cells, nil
}

// paddingPoints returns 8 anchors far outside the rectangle (corners and
// edge midpoints of the padded square). They put every real site strictly
// inside the convex hull of the point set, so each site's Voronoi region
// is a finite polygon before clipping. Padding points never become cells.
func paddingPoints(width, height float64) []r2.Point {
	m := paddingScale * math.Max(width, height)
	return []r2.Point{
		{X: -m, Y: -m},
		{X: width + m, Y: -m},
		{X: width + m, Y: height + m},
		{X: -m, Y: height + m},
		{X: width / 2, Y: -m},
		{X: width + m, Y: height / 2},
		{X: width / 2, Y: height + m},
		{X: -m, Y: height / 2},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
