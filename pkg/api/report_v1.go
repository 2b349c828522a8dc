// pkg/api/report_v1.go
package api

import "time"

// ReportV1 is the stable JSON/JSONL schema for one designed target.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ReportV1 struct {
	RunID       string    `json:"run_id"`
	Tool        string    `json:"tool"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
	SourceFile  string    `json:"source_file,omitempty"`

	Target   string `json:"target"`
	Sequence string `json:"sequence"`
	Length   int    `json:"length"`

	Forward StrandStatsV1 `json:"forward_candidates"`
	Reverse StrandStatsV1 `json:"reverse_candidates"`

	AcceptedPairs int      `json:"accepted_pairs"` // within Tm tolerance, before top-N
	Pairs         []PairV1 `json:"pairs"`
}

// StrandStatsV1 counts candidates on one strand.
type StrandStatsV1 struct {
	Generated int `json:"generated"`
	Kept      int `json:"kept"`
}

// PairV1 is one ranked primer pair.
type PairV1 struct {
	Rank          int      `json:"rank"` // 1-based
	Forward       PrimerV1 `json:"forward"`
	Reverse       PrimerV1 `json:"reverse"`
	TmDelta       float64  `json:"tm_delta"`
	ProductStart  int      `json:"product_start"` // 0-based, top strand
	ProductEnd    int      `json:"product_end"`   // exclusive
	ProductLength int      `json:"product_length"`
	// NoProduct marks pairs whose sites do not face each other on the
	// target (forward site downstream of the reverse site). The product
	// fields are zero then.
	NoProduct     bool     `json:"no_product,omitempty"`
}

// PrimerV1 is a primer written 5'→3'. Start/End are the site on the top
// strand of the target (0-based, half-open); Offset is the start on the
// strand the primer was read from.
type PrimerV1 struct {
	Seq       string  `json:"seq"`
	Length    int     `json:"length"`
	Offset    int     `json:"offset"`
	Start     int     `json:"start"`
	End       int     `json:"end"`
	GCPercent float64 `json:"gc_percent"`
	Tm        float64 `json:"tm"`
}
