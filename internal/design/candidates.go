package design

import "prdesign/internal/primer"

// Candidates enumerates every substring of seq that starts in the first
// min(window, len(seq)) bases and has a length in [minLen+1, maxLen].
// Substrings that would run past the end of seq are not emitted.
//
// Output order is (offset, length) ascending. Identical substrings found at
// different offsets are all kept.
func Candidates(seq string, strand primer.Strand, window, minLen, maxLen int) ([]primer.Primer, error) {
	starts := window
	if starts > len(seq) {
		starts = len(seq)
	}
	shortest := minLen + 1
	if shortest < 1 {
		shortest = 1
	}

	out := make([]primer.Primer, 0, CountCandidates(len(seq), window, minLen, maxLen))
	for i := 0; i < starts; i++ {
		for n := shortest; n <= maxLen && i+n <= len(seq); n++ {
			p, err := primer.New(seq[i:i+n], strand, i)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}
	return out, nil
}

// CountCandidates returns len(Candidates(...)) without building them.
func CountCandidates(seqLen, window, minLen, maxLen int) int {
	starts := window
	if starts > seqLen {
		starts = seqLen
	}
	shortest := minLen + 1
	if shortest < 1 {
		shortest = 1
	}
	total := 0
	for i := 0; i < starts; i++ {
		hi := maxLen
		if room := seqLen - i; room < hi {
			hi = room
		}
		if hi >= shortest {
			total += hi - shortest + 1
		}
	}
	return total
}
