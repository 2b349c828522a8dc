package output

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"prdesign/pkg/api"
)

// WriteText renders r as a human-readable report block with a pair table.
func WriteText(w io.Writer, r api.ReportV1) error {
	if _, err := fmt.Fprintf(w,
		"Target gene: %s\nGenetic sequence (%d bp):\n%s\n\n",
		r.Target, r.Length, r.Sequence,
	); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"Candidates: forward %d kept of %d, reverse %d kept of %d\nAccepted pairs: %d (showing %d)\n\n",
		r.Forward.Kept, r.Forward.Generated, r.Reverse.Kept, r.Reverse.Generated,
		r.AcceptedPairs, len(r.Pairs),
	); err != nil {
		return err
	}

	if len(r.Pairs) == 0 {
		if _, err := fmt.Fprintln(w, "No primer pairs within the configured bounds."); err != nil {
			return err
		}
	} else if err := writePairTable(w, r.Pairs); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nGenerated with %s %s at %s (run %s)\n",
		r.Tool, r.Version, r.GeneratedAt.Format(time.RFC3339), r.RunID)
	return err
}

func writePairTable(w io.Writer, pairs []api.PairV1) error {
	table := tablewriter.NewWriter(w)
	table.Header("#", "Forward (5'→3')", "GC%", "Tm", "Reverse (5'→3')", "GC%", "Tm", "ΔTm", "Product")
	for _, p := range pairs {
		row := []string{
			strconv.Itoa(p.Rank),
			p.Forward.Seq, fmt.Sprintf(gcFmt, p.Forward.GCPercent), fmt.Sprintf(tmFmt, p.Forward.Tm),
			p.Reverse.Seq, fmt.Sprintf(gcFmt, p.Reverse.GCPercent), fmt.Sprintf(tmFmt, p.Reverse.Tm),
			fmt.Sprintf(tmFmt, p.TmDelta),
			productText(p),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func productText(p api.PairV1) string {
	if p.NoProduct {
		return "none"
	}
	return fmt.Sprintf("%d-%d (%d bp)", p.ProductStart+1, p.ProductEnd, p.ProductLength)
}
