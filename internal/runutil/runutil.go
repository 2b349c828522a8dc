// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"prdesign/internal/design"
)

// Length range over which the basic Tm approximation is reasonable.
const (
	TmValidMinLen = 18
	TmValidMaxLen = 30
)

// EffectiveThreads resolves --threads: 0 means all CPUs.
func EffectiveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// ParamWarnings returns run-wide warnings for settings that are legal but
// probably not what the user wants.
func ParamWarnings(p design.Params) []string {
	var warns []string
	if p.MinLen+1 < TmValidMinLen || p.MaxLen > TmValidMaxLen {
		warns = append(warns, fmt.Sprintf(
			"primer lengths %d–%d fall outside %d–%d nt; the Tm approximation is less accurate there",
			p.MinLen+1, p.MaxLen, TmValidMinLen, TmValidMaxLen))
	}
	if p.MaxTm-p.MinTm < p.TmTolerance {
		warns = append(warns, fmt.Sprintf(
			"Tm window %g–%g is narrower than --tmdiff %g; the tolerance never rejects a pair",
			p.MinTm, p.MaxTm, p.TmTolerance))
	}
	return warns
}

// TargetWarnings returns warnings for one target given the run settings.
func TargetWarnings(t design.Target, p design.Params) []string {
	var warns []string
	n := len(t.Seq)
	switch {
	case n == 0:
		warns = append(warns, fmt.Sprintf("target %q is empty; no candidates", t.Name))
	case n < p.MinLen+1:
		warns = append(warns, fmt.Sprintf(
			"target %q (%d bp) is shorter than the shortest primer (%d nt); no candidates",
			t.Name, n, p.MinLen+1))
	case 2*p.Window > n:
		warns = append(warns, fmt.Sprintf(
			"target %q (%d bp): forward and reverse search windows (%d bp each) overlap",
			t.Name, n, p.Window))
	}
	return warns
}
