package design

import (
	"context"

	"golang.org/x/sync/errgroup"

	"prdesign/internal/primer"
)

// StrandStats counts candidates on one strand before and after Filter.
type StrandStats struct {
	Generated int
	Kept      int
}

// Result is the in-memory design record for one target.
type Result struct {
	Target   Target
	Forward  StrandStats
	Reverse  StrandStats
	Accepted int          // pairs within tolerance, before top-N
	Pairs    []PrimerPair // top-N in LessPair order
}

// Run designs primer pairs for t. The target is normalized first, so a
// Target built without NewTarget behaves the same. A target too short for any
// candidate is not an error; the result is simply empty.
func Run(ctx context.Context, t Target, p Params) (Result, error) {
	t = NewTarget(t.Name, t.Seq)
	res := Result{Target: t}
	rc := primer.RevComp(t.Seq)

	var fwd, rev []primer.Primer
	prepare := func(ctx context.Context, seq string, strand primer.Strand, kept *[]primer.Primer, st *StrandStats) func() error {
		return func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cands, err := Candidates(seq, strand, p.Window, p.MinLen, p.MaxLen)
			if err != nil {
				return err
			}
			*kept = Filter(cands, p.Bounds())
			st.Generated, st.Kept = len(cands), len(*kept)
			return nil
		}
	}

	if p.Threads > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(prepare(gctx, t.Seq, primer.Forward, &fwd, &res.Forward))
		g.Go(prepare(gctx, rc, primer.Reverse, &rev, &res.Reverse))
		if err := g.Wait(); err != nil {
			return Result{}, err
		}
	} else {
		if err := prepare(ctx, t.Seq, primer.Forward, &fwd, &res.Forward)(); err != nil {
			return Result{}, err
		}
		if err := prepare(ctx, rc, primer.Reverse, &rev, &res.Reverse)(); err != nil {
			return Result{}, err
		}
	}

	pairs := Pair(fwd, rev, p.TmTolerance)
	res.Accepted = len(pairs)
	res.Pairs = Select(pairs, p.Count)
	return res, nil
}
