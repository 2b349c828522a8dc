// internal/primer/iupac.go
package primer

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) { iupacMask[c] = bits }
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// IsIUPAC reports whether b is an uppercase IUPAC DNA code.
func IsIUPAC(b byte) bool { return iupacMask[b] != 0 }

// IsACGT reports whether b is one of the four unambiguous bases.
func IsACGT(b byte) bool {
	m := iupacMask[b]
	return m != 0 && m&(m-1) == 0
}

// FirstInvalid returns the index of the first non-IUPAC byte in seq, or -1.
func FirstInvalid(seq string) int {
	for i := 0; i < len(seq); i++ {
		if !IsIUPAC(seq[i]) {
			return i
		}
	}
	return -1
}
