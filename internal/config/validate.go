package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrInvalid matches every *Error via errors.Is.
var ErrInvalid = errors.New("invalid configuration")

// Error is a rejected setting. It is raised before any design work starts.
type Error struct {
	Key    string
	Reason string
}

func (e *Error) Error() string { return fmt.Sprintf("--%s: %s", e.Key, e.Reason) }

func (e *Error) Is(target error) bool { return target == ErrInvalid }

func invalid(key, format string, a ...any) error {
	return &Error{Key: key, Reason: fmt.Sprintf(format, a...)}
}

// Validate applies the setting invariants. The first violation is returned.
func (c Config) Validate() error {
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"mintemp", c.MinTemp}, {"maxtemp", c.MaxTemp},
		{"mingc", c.MinGC}, {"maxgc", c.MaxGC},
		{"tmdiff", c.TmDiff},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalid(f.key, "must be a finite number (got %g)", f.v)
		}
	}

	switch {
	case c.Extension < 1:
		return invalid("extension", "must be ≥ 1 (got %d)", c.Extension)
	case c.Short < 1:
		return invalid("short", "must be ≥ 1 (got %d)", c.Short)
	case c.Short >= c.Long:
		return invalid("short", "must be smaller than --long (%d ≥ %d)", c.Short, c.Long)
	case c.MinTemp > c.MaxTemp:
		return invalid("mintemp", "exceeds --maxtemp (%g > %g)", c.MinTemp, c.MaxTemp)
	case c.MinGC < 0 || c.MinGC > 100:
		return invalid("mingc", "must be within 0–100 (got %g)", c.MinGC)
	case c.MaxGC < 0 || c.MaxGC > 100:
		return invalid("maxgc", "must be within 0–100 (got %g)", c.MaxGC)
	case c.MinGC > c.MaxGC:
		return invalid("mingc", "exceeds --maxgc (%g > %g)", c.MinGC, c.MaxGC)
	case c.TmDiff < 0:
		return invalid("tmdiff", "must be ≥ 0 (got %g)", c.TmDiff)
	case c.Number < 1:
		return invalid("number", "must be ≥ 1 (got %d)", c.Number)
	case c.Threads < 0:
		return invalid("threads", "must be ≥ 0 (got %d)", c.Threads)
	case !slices.Contains(Formats, c.Format):
		return invalid("format", "unknown format %q (want one of %v)", c.Format, Formats)
	case c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255:
		return invalid("no-match-exit-code", "must be between 0 and 255")
	case c.Verbose && c.Quiet:
		return invalid("quiet", "conflicts with --verbose")
	}
	return nil
}
