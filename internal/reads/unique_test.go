package reads_test

import (
	"testing"

	"qimu/internal/reads"
)

func TestResolveUniqueIDsFirstUniqueToken(t *testing.T) {
	// Uniqueness is judged against every name, not only the colliding
	// ones: "1" appears at position 1 in both A_1_x and B_1_y, so A_1_x
	// has no unique token anywhere ("x" recurs in A_2_x) and falls back
	// to its full name.
	got := reads.ResolveUniqueIDs([]string{"A_1_x", "A_2_x", "B_1_y"}, "_")

	want := map[string]string{
		"A_1_x": "A_1_x",
		"A_2_x": "2",
		"B_1_y": "B",
	}
	for name, id := range want {
		if got[name] != id {
			t.Fatalf("resolved %q to %q, want %q", name, got[name], id)
		}
	}
}

func TestResolveUniqueIDsFallsBackToFullName(t *testing.T) {
	// Every token of "A_1" collides positionally with "A_1_b".
	got := reads.ResolveUniqueIDs([]string{"A_1", "A_1_b"}, "_")

	if got["A_1"] != "A_1" {
		t.Fatalf("expected full-name fallback for A_1, got %q", got["A_1"])
	}
	if got["A_1_b"] != "b" {
		t.Fatalf("expected b for A_1_b, got %q", got["A_1_b"])
	}
}

func TestResolveUniqueIDsSingleName(t *testing.T) {
	got := reads.ResolveUniqueIDs([]string{"Sample_1"}, "_")
	if got["Sample_1"] != "Sample" {
		t.Fatalf("expected first token for lone name, got %q", got["Sample_1"])
	}
}

func TestResolveUniqueIDsEmptyInput(t *testing.T) {
	if got := reads.ResolveUniqueIDs(nil, "_"); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
