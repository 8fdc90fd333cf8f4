package search

import (
	"testing"

	"shopwidget.GO/model"
)

func withDistance(id string, meters float64) model.Candidate {
	d := meters
	return model.Candidate{ID: id, DistanceMeters: &d}
}

func noDistance(id string) model.Candidate {
	return model.Candidate{ID: id}
}

func ids(hits []model.Candidate) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.ID
	}
	return out
}

func TestRank_Empty(t *testing.T) {
	out := Rank(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("Rank(nil) = %v, want empty slice", out)
	}
}

func TestRank_UnknownDistanceSortsLast(t *testing.T) {
	in := []model.Candidate{
		noDistance("far-unknown"),
		withDistance("near", 500),
		withDistance("mid", 1200),
		noDistance("also-unknown"),
		withDistance("nearest", 100),
	}
	got := ids(Rank(in))
	want := []string{"nearest", "near", "mid", "far-unknown", "also-unknown"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestRank_StableAmongTiesAndUnknowns(t *testing.T) {
	in := []model.Candidate{
		noDistance("u1"),
		withDistance("a", 300),
		noDistance("u2"),
		withDistance("b", 300),
		noDistance("u3"),
	}
	got := ids(Rank(in))
	want := []string{"a", "b", "u1", "u2", "u3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []model.Candidate{
		noDistance("u"),
		withDistance("k", 10),
	}
	Rank(in)
	if in[0].ID != "u" || in[1].ID != "k" {
		t.Errorf("input mutated: %v", ids(in))
	}
}

func TestCandidate_DistanceMiles(t *testing.T) {
	c := withDistance("x", 1609.344)
	if got := c.DistanceMiles(); got != "1.0" {
		t.Errorf("DistanceMiles = %q, want 1.0", got)
	}
	n := noDistance("y")
	if got := n.DistanceMiles(); got != "" {
		t.Errorf("DistanceMiles unknown = %q, want empty", got)
	}
}
