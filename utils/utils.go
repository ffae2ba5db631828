// Copyright (c) 2026 kavnwang
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides helpers for generating scattered planar points for
// tessellation tests and examples.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// RandomSites generates cnt uniformly random points inside the
// (width x height) rectangle. The seed parameter ensures reproducibility.
func RandomSites(cnt int, width, height float64, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	sites := make([]r2.Point, cnt)

	for i := range cnt {
		sites[i] = r2.Point{
			X: random.Float64() * width,
			Y: random.Float64() * height,
		}
	}

	return sites
}
