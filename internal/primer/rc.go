// internal/primer/rc.go
package primer

var complement [256]byte

func init() {
	pairs := []string{"AT", "CG", "RY", "KM", "BV", "DH", "SS", "WW", "NN"}
	for _, p := range pairs {
		complement[p[0]] = p[1]
		complement[p[1]] = p[0]
	}
}

// RevComp returns the reverse complement of seq.
// IUPAC codes map through the ambiguity table; any other byte is passed
// through unchanged, so RevComp(RevComp(s)) == s for every input.
func RevComp(seq string) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			c = b
		}
		out[i] = c
	}
	return string(out)
}
