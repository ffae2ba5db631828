// Copyright (c) 2026 kavnwang
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package glass

import (
	"math"

	"github.com/golang/geo/r2"
)

// jitterFrac bounds the random offset from each grid cell's center.
const jitterFrac = 0.35

// sampleSites places exactly n sites inside the (width x height) rectangle
// on a jittered grid: one site per grid cell, offset by up to ±35% of the
// cell size in each axis. This keeps density near uniform without the
// clumping of pure uniform sampling. Sites are clamped to
// [1, width-1] x [1, height-1] so they stay strictly interior. Generation
// order defines site identity: the i-th returned site is cell id i.
func sampleSites(width, height float64, n int, r *rng) []r2.Point {
	aspect := width / height
	cols := int(math.Round(math.Sqrt(float64(n) * aspect)))
	if cols < 1 {
		cols = 1
	}
	rows := int(math.Round(float64(n) / float64(cols)))
	if rows < 1 {
		rows = 1
	}

	cellW := width / float64(cols)
	cellH := height / float64(rows)

	sites := make([]r2.Point, 0, n)
	for row := 0; row < rows && len(sites) < n; row++ {
		for col := 0; col < cols && len(sites) < n; col++ {
			x := (float64(col)+0.5)*cellW + (r.next()*2-1)*jitterFrac*cellW
			y := (float64(row)+0.5)*cellH + (r.next()*2-1)*jitterFrac*cellH
			sites = append(sites, r2.Point{
				X: clamp(x, 1, width-1),
				Y: clamp(y, 1, height-1),
			})
		}
	}

	// Grid rounding can leave a shortfall; fill with uniform points.
	for len(sites) < n {
		sites = append(sites, r2.Point{
			X: 1 + r.next()*(width-2),
			Y: 1 + r.next()*(height-2),
		})
	}
	return sites
}
