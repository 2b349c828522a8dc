package design

// Params are the design knobs. The caller owns validation (see config).
type Params struct {
	Window int // bases scanned near each end (start offsets only)
	MinLen int // primers are strictly longer than this
	MaxLen int

	MinTm, MaxTm float64
	MinGC, MaxGC float64

	TmTolerance float64 // max |Tm_f − Tm_r|, inclusive
	Count       int     // pairs to return

	Threads int // >1 prepares both strands concurrently
}

// Bounds is the GC/Tm acceptance box used by Filter.
type Bounds struct {
	MinGC, MaxGC float64
	MinTm, MaxTm float64
}

func (p Params) Bounds() Bounds {
	return Bounds{MinGC: p.MinGC, MaxGC: p.MaxGC, MinTm: p.MinTm, MaxTm: p.MaxTm}
}
