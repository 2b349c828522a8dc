package output

import (
	"time"

	"prdesign/internal/design"
	"prdesign/internal/primer"
	"prdesign/pkg/api"
)

// Meta is the per-run information stamped on every report.
type Meta struct {
	RunID       string
	Tool        string
	Version     string
	GeneratedAt time.Time
	SourceFile  string
}

// ToAPIReport converts a design result to the stable wire schema (v1).
func ToAPIReport(res design.Result, m Meta) api.ReportV1 {
	n := len(res.Target.Seq)
	r := api.ReportV1{
		RunID:         m.RunID,
		Tool:          m.Tool,
		Version:       m.Version,
		GeneratedAt:   m.GeneratedAt,
		SourceFile:    m.SourceFile,
		Target:        res.Target.Name,
		Sequence:      res.Target.Seq,
		Length:        n,
		Forward:       api.StrandStatsV1(res.Forward),
		Reverse:       api.StrandStatsV1(res.Reverse),
		AcceptedPairs: res.Accepted,
		Pairs:         make([]api.PairV1, 0, len(res.Pairs)),
	}
	for i, pp := range res.Pairs {
		start, end, ok := pp.Product(n)
		r.Pairs = append(r.Pairs, api.PairV1{
			Rank:          i + 1,
			Forward:       toAPIPrimer(pp.Forward, n),
			Reverse:       toAPIPrimer(pp.Reverse, n),
			TmDelta:       pp.TmDelta(),
			ProductStart:  start,
			ProductEnd:    end,
			ProductLength: end - start,
			NoProduct:     !ok,
		})
	}
	return r
}

func toAPIPrimer(p primer.Primer, n int) api.PrimerV1 {
	start, end := p.Span(n)
	return api.PrimerV1{
		Seq:       p.Seq(),
		Length:    p.Len(),
		Offset:    p.Offset(),
		Start:     start,
		End:       end,
		GCPercent: p.GCPercent(),
		Tm:        p.Tm(),
	}
}
