package primer

import (
	"fmt"

	"prdesign/internal/thermo"
)

// Strand tells which strand a primer was read from.
type Strand string

const (
	Forward Strand = "forward" // read from the target as given
	Reverse Strand = "reverse" // read from the reverse complement
)

// Primer is an immutable candidate oligo. GC% and Tm are computed once by
// New and never recomputed; there is no way to change Seq afterwards.
type Primer struct {
	seq    string
	strand Strand
	offset int
	gc     float64
	tm     float64
}

// New scores seq and returns the primer. offset is the 0-based start on the
// strand the primer was read from.
func New(seq string, strand Strand, offset int) (Primer, error) {
	gc, tm, err := thermo.Score(seq)
	if err != nil {
		return Primer{}, fmt.Errorf("primer at %s:%d: %w", strand, offset, err)
	}
	return Primer{seq: seq, strand: strand, offset: offset, gc: gc, tm: tm}, nil
}

func (p Primer) Seq() string { return p.seq }
func (p Primer) Len() int { return len(p.seq) }
func (p Primer) Strand() Strand { return p.strand }
func (p Primer) Offset() int { return p.offset }
func (p Primer) GCPercent() float64 { return p.gc }
func (p Primer) Tm() float64 { return p.tm }

// Span returns the half-open site [start, end) of the primer on the top
// strand of a target of length n.
func (p Primer) Span(n int) (start, end int) {
	if p.strand == Reverse {
		return n - p.offset - len(p.seq), n - p.offset
	}
	return p.offset, p.offset + len(p.seq)
}

func (p Primer) String() string {
	return fmt.Sprintf("%s(%s@%d gc=%.1f tm=%.2f)", p.seq, p.strand, p.offset, p.gc, p.tm)
}
