// Basic GC-content Tm approximation for short oligos.
//
//	GC%  = 100 · (G + C) / N
//	Tm   = 81.5 + 0.41 · GC% − 675 / N      (°C)
//
// Accuracy is reasonable for ~18–30 nt primers. Outside that range the
// estimate drifts, which is why primer length bounds are configurable
// rather than fixed.
//
// This package has no app/output deps; design can import it cleanly.

package thermo

import "errors"

const (
	tmBase    = 81.5
	tmGCSlope = 0.41
	tmLenTerm = 675.0
)

// ErrDegenerateInput is returned for sequences the formulas are undefined on.
var ErrDegenerateInput = errors.New("degenerate input: empty sequence")

// GCPercent returns the share of G/C bases in seq as a percentage (0–100).
// Case-insensitive; ambiguity codes count as non-GC.
func GCPercent(seq string) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrDegenerateInput
	}
	return 100 * float64(gcCount(seq)) / float64(len(seq)), nil
}

// MeltingTemp returns the basic Tm estimate in °C.
func MeltingTemp(seq string) (float64, error) {
	_, tm, err := Score(seq)
	return tm, err
}

// Score returns GC% and Tm together. MeltingTemp goes through here too, so
// both always agree bit for bit.
func Score(seq string) (gc, tm float64, err error) {
	gc, err = GCPercent(seq)
	if err != nil {
		return 0, 0, err
	}
	return gc, tmFromGC(gc, len(seq)), nil
}

func tmFromGC(gc float64, n int) float64 {
	return tmBase + tmGCSlope*gc - tmLenTerm/float64(n)
}

func gcCount(seq string) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'g', 'C', 'c':
			n++
		}
	}
	return n
}
