// Copyright (c) 2026 kavnwang
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package glass

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"

	"github.com/kavnwang/stained-glass-gallery/delaunay"
)

func TestNew_InvalidInputs(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		numCells      int
	}{
		{"zero width", 0, 300, 10},
		{"negative width", -400, 300, 10},
		{"zero height", 400, 0, 10},
		{"negative height", 400, -300, 10},
		{"zero cells", 400, 300, 0},
		{"negative cells", 400, 300, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.width, tt.height, tt.numCells); err == nil {
				t.Errorf("New(%v, %v, %v) error = nil, want non-nil",
					tt.width, tt.height, tt.numCells)
			}
		})
	}
}

func TestNew_OptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero eps", WithEps(0)},
		{"negative eps", WithEps(-1)},
		{"nil triangulator", WithTriangulator(nil)},
		{"nil logger", WithLogger(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(400, 300, 10, tt.opt); err == nil {
				t.Errorf("New(400, 300, 10, %s) error = nil, want non-nil", tt.name)
			}
		})
	}
}

func TestNew_Determinism(t *testing.T) {
	a := mustNew(t, 400, 300, 50, WithSeed("seed-A"))
	b := mustNew(t, 400, 300, 50, WithSeed("seed-A"))

	if diff := cmp.Diff(a.Sites, b.Sites); diff != "" {
		t.Errorf("repeated generation sites mismatch (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(a.Cells, b.Cells); diff != "" {
		t.Errorf("repeated generation cells mismatch (-first +second):\n%s", diff)
	}
}

func TestNew_SeedSensitivity(t *testing.T) {
	a := mustNew(t, 400, 300, 50, WithSeed("seed-A"))
	b := mustNew(t, 400, 300, 50, WithSeed("seed-B"))

	if cmp.Equal(a.Sites, b.Sites) {
		t.Errorf("site layouts for different seeds are identical")
	}
}

func TestNew_Unseeded(t *testing.T) {
	a, err := New(400, 300, 30)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	b, err := New(400, 300, 30)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	if cmp.Equal(a.Sites, b.Sites) {
		t.Errorf("unseeded generations produced identical layouts")
	}
}

func TestNew_Containment(t *testing.T) {
	ts := mustNew(t, 400, 300, 50, WithSeed("containment"))
	assertInvariants(t, ts, 50)
}

func TestNew_IDsAscendingUnique(t *testing.T) {
	ts := mustNew(t, 400, 300, 50, WithSeed("ids"))

	prev := -1
	for _, c := range ts.Cells {
		if c.ID <= prev {
			t.Errorf("cell ids not strictly ascending: %d after %d", c.ID, prev)
		}
		if c.ID < 0 || c.ID >= 50 {
			t.Errorf("cell id = %d, want in [0, 50)", c.ID)
		}
		if got, want := c.Seed, ts.Sites[c.ID]; got != want {
			t.Errorf("cell %d seed = %v, want %v", c.ID, got, want)
		}
		prev = c.ID
	}
}

func TestNew_SingleCellCoversRect(t *testing.T) {
	ts := mustNew(t, 400, 300, 1, WithSeed("a"))

	if got := ts.NumCells(); got != 1 {
		t.Fatalf("ts.NumCells() = %v, want 1", got)
	}
	got := ts.Cells[0].Area()
	want := 400.0 * 300.0
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("single cell area = %v, want ~%v", got, want)
	}
}

func TestNew_CustomTriangulator(t *testing.T) {
	wantErr := errors.New("triangulator unavailable")
	_, err := New(400, 300, 10, WithSeed("custom"), WithTriangulator(failingTriangulator{err: wantErr}))
	if !errors.Is(err, wantErr) {
		t.Errorf("New(...) error = %v, want wrapped %v", err, wantErr)
	}
}

func TestTessellation_Relax(t *testing.T) {
	ts := mustNew(t, 400, 300, 50, WithSeed("relax"))

	if err := ts.Relax(-1); err == nil {
		t.Errorf("ts.Relax(-1) error = nil, want non-nil")
	}
	if err := ts.Relax(2); err != nil {
		t.Fatalf("ts.Relax(2) error = %v, want nil", err)
	}
	assertInvariants(t, ts, 50)
}

func TestTessellation_RelaxDeterminism(t *testing.T) {
	a := mustNew(t, 400, 300, 50, WithSeed("relax-det"))
	b := mustNew(t, 400, 300, 50, WithSeed("relax-det"))
	if err := a.Relax(3); err != nil {
		t.Fatalf("a.Relax(3) error = %v, want nil", err)
	}
	if err := b.Relax(3); err != nil {
		t.Fatalf("b.Relax(3) error = %v, want nil", err)
	}
	if diff := cmp.Diff(a.Cells, b.Cells); diff != "" {
		t.Errorf("relaxed cells mismatch (-first +second):\n%s", diff)
	}
}

// Benchmarks

func BenchmarkNew(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("N%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := New(1920, 1080, n, WithSeed("bench")); err != nil {
					b.Fatalf("New(...) error = %v, want nil", err)
				}
			}
		})
	}
}

// Helpers

func mustNew(t *testing.T, width, height float64, numCells int, setters ...Option) *Tessellation {
	t.Helper()
	ts, err := New(width, height, numCells, setters...)
	if err != nil {
		t.Fatalf("New(...) error = %v, want nil", err)
	}
	return ts
}

// assertInvariants checks the output contract: at most numCells cells,
// every polygon within bounds with at least 3 vertices, unique in-range ids.
func assertInvariants(t *testing.T, ts *Tessellation, numCells int) {
	t.Helper()

	// Crossing points interpolate one coordinate, which can land a rounding
	// error outside the rectangle.
	const tol = 1e-9

	if got := ts.NumCells(); got > numCells {
		t.Errorf("ts.NumCells() = %v, want <= %v", got, numCells)
	}
	seen := make(map[int]bool, len(ts.Cells))
	for _, c := range ts.Cells {
		if c.ID < 0 || c.ID >= numCells {
			t.Errorf("cell id = %d, want in [0, %d)", c.ID, numCells)
		}
		if seen[c.ID] {
			t.Errorf("duplicate cell id %d", c.ID)
		}
		seen[c.ID] = true

		if len(c.Vertices) < 3 {
			t.Errorf("cell %d has %d vertices, want >= 3", c.ID, len(c.Vertices))
		}
		for i, v := range c.Vertices {
			if v.X < -tol || v.X > ts.Width+tol || v.Y < -tol || v.Y > ts.Height+tol {
				t.Errorf("cell %d vertex %d = %v, want within [0, %v]x[0, %v]",
					c.ID, i, v, ts.Width, ts.Height)
			}
		}
	}
}

type failingTriangulator struct {
	err error
}

func (f failingTriangulator) Triangulate(points []r2.Point) (*delaunay.Triangulation, error) {
	return nil, f.err
}
