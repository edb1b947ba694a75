package geom

import (
	"sort"

	"github.com/paulmach/orb"
)

// ClosestPoint returns the reference point with the smallest planar
// distance to pt. Ties keep the earlier reference point.
func ClosestPoint(pt orb.Point, refs []orb.Point) (orb.Point, error) {
	if len(refs) == 0 {
		return orb.Point{}, ErrNoReferencePoints
	}
	best := refs[0]
	bestDist := HypotDistance(pt, best)
	for _, ref := range refs[1:] {
		if d := HypotDistance(pt, ref); d < bestDist {
			best, bestDist = ref, d
		}
	}
	return best, nil
}

// ClosestPoints returns, for every query point, its k nearest
// reference points ordered from nearest to farthest. The result has
// one row per query point.
//
// The lookup is a sort-based scan, O(len(pts)·len(refs)·log len(refs));
// adequate for the reference-set sizes this helper is meant for.
func ClosestPoints(pts, refs []orb.Point, k int) ([][]orb.Point, error) {
	if len(refs) == 0 {
		return nil, ErrNoReferencePoints
	}
	if k < 1 || k > len(refs) {
		return nil, ErrBadK
	}

	out := make([][]orb.Point, len(pts))
	order := make([]int, len(refs))
	for i, pt := range pts {
		for j := range order {
			order[j] = j
		}
		dists := make([]float64, len(refs))
		for j, ref := range refs {
			dists[j] = HypotDistance(pt, ref)
		}
		sort.SliceStable(order, func(a, b int) bool {
			return dists[order[a]] < dists[order[b]]
		})

		row := make([]orb.Point, k)
		for j := 0; j < k; j++ {
			row[j] = refs[order[j]]
		}
		out[i] = row
	}
	return out, nil
}
