package reads_test

import (
	"testing"

	"qimu/internal/reads"
)

func TestPairReadsMatchesForwardAndReverse(t *testing.T) {
	files := map[string]string{
		"A_R1_x.fastq": "/data/A_R1_x.fastq",
		"A_R2_x.fastq": "/data/A_R2_x.fastq",
	}

	pairing := reads.PairReads(files, []string{"_R1_"}, []string{"_R2_"}, false)

	if len(pairing.Paired) != 1 {
		t.Fatalf("expected 1 paired entry, got %d", len(pairing.Paired))
	}
	if len(pairing.Unpaired) != 0 {
		t.Fatalf("expected no unpaired files, got %v", pairing.Unpaired)
	}
	for _, pair := range pairing.Paired {
		if pair.Forward != "/data/A_R1_x.fastq" {
			t.Fatalf("unexpected forward path: %q", pair.Forward)
		}
		if pair.Reverse != "/data/A_R2_x.fastq" {
			t.Fatalf("unexpected reverse path: %q", pair.Reverse)
		}
	}
}

func TestPairReadsTagsAtDifferentOffsets(t *testing.T) {
	// The tag-normalized base keys match even though the tags start at
	// different byte offsets.
	files := map[string]string{
		"A_R1_long.fastq": "/data/A_R1_long.fastq",
		"A_R2_long.fastq": "/data/A_R2_long.fastq",
	}

	pairing := reads.PairReads(files, []string{"_R1_"}, []string{"_R2_"}, false)
	for _, pair := range pairing.Paired {
		if pair.Reverse == "" {
			t.Fatal("expected reverse counterpart to be found")
		}
	}
}

func TestPairReadsOrphanReverseIsUnpaired(t *testing.T) {
	files := map[string]string{
		"B_R2_x.fastq": "/data/B_R2_x.fastq",
	}

	pairing := reads.PairReads(files, []string{"_R1_"}, []string{"_R2_"}, false)

	if len(pairing.Paired) != 0 {
		t.Fatalf("expected no paired entries, got %v", pairing.Paired)
	}
	if len(pairing.Unpaired) != 1 || pairing.Unpaired[0] != "B_R2_x.fastq" {
		t.Fatalf("expected orphan reverse in unpaired list, got %v", pairing.Unpaired)
	}
}

func TestPairReadsForwardWithoutReverse(t *testing.T) {
	files := map[string]string{
		"C_R1_x.fastq": "/data/C_R1_x.fastq",
	}

	pairing := reads.PairReads(files, []string{"_R1_"}, []string{"_R2_"}, false)

	if len(pairing.Paired) != 1 {
		t.Fatalf("expected 1 paired entry, got %d", len(pairing.Paired))
	}
	for _, pair := range pairing.Paired {
		if pair.Reverse != "" {
			t.Fatalf("expected empty reverse, got %q", pair.Reverse)
		}
	}
}

func TestPairReadsNoTagsAreUnpaired(t *testing.T) {
	files := map[string]string{
		"plain.fastq": "/data/plain.fastq",
	}

	pairing := reads.PairReads(files, []string{"_R1_"}, []string{"_R2_"}, false)
	if len(pairing.Unpaired) != 1 || pairing.Unpaired[0] != "plain.fastq" {
		t.Fatalf("expected untagged file in unpaired list, got %v", pairing.Unpaired)
	}
}

func TestPairReadsForceSingleEnd(t *testing.T) {
	files := map[string]string{
		"A_R1_x.fastq": "/data/A_R1_x.fastq",
		"A_R2_x.fastq": "/data/A_R2_x.fastq",
	}

	pairing := reads.PairReads(files, []string{"_R1_"}, []string{"_R2_"}, true)

	if len(pairing.Paired) != 0 {
		t.Fatalf("expected no paired entries under force-single-end, got %v", pairing.Paired)
	}
	if len(pairing.Unpaired) != 2 {
		t.Fatalf("expected both files unpaired, got %v", pairing.Unpaired)
	}
}

func TestPairReadsTagSubstringSharpEdge(t *testing.T) {
	// Known sharp edge: tags match by bare substring containment, so a
	// tag occurring twice is substituted twice on both sides and the pair
	// still matches. No anchoring is performed.
	files := map[string]string{
		"A_1.B_1.fastq": "/data/A_1.B_1.fastq",
		"A_2.B_2.fastq": "/data/A_2.B_2.fastq",
	}

	pairing := reads.PairReads(files, []string{"_1."}, []string{"_2."}, false)

	if len(pairing.Paired) != 1 {
		t.Fatalf("expected 1 paired entry, got %d", len(pairing.Paired))
	}
	for _, pair := range pairing.Paired {
		if pair.Reverse != "/data/A_2.B_2.fastq" {
			t.Fatalf("expected double substitution to still pair, got %q", pair.Reverse)
		}
	}
}
