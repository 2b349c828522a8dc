package primer

import "testing"

// Snapshot: RevComp over the full ambiguity alphabet + ACGT.
// We assert the exact bytes produced by the current complement table.
func TestComplementTable_Snapshot(t *testing.T) {
	in := "RYSWKMBDHVNACGT"
	want := "ACGTNBDHVKMWSRY"

	if got := RevComp(in); got != want {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
}
