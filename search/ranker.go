package search

import (
	"sort"

	"shopwidget.GO/model"
)

// Rank orders candidates nearest-first. Candidates with an unknown distance
// sort after every candidate with a known one; relative input order is
// preserved among equal distances and among unknowns.
func Rank(hits []model.Candidate) []model.Candidate {
	out := make([]model.Candidate, len(hits))
	copy(out, hits)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DistanceMeters, out[j].DistanceMeters
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})
	return out
}
