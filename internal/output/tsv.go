package output

import (
	"fmt"
	"io"

	"prdesign/pkg/api"
)

// WriteTSV writes one row per pair of r (no header). Pairs without a
// product carry "-" in the three product columns.
func WriteTSV(w io.Writer, r api.ReportV1) error {
	for _, p := range r.Pairs {
		_, err := fmt.Fprintf(w,
			"%s\t%d\t%s\t%d\t"+gcFmt+"\t"+tmFmt+"\t%s\t%d\t"+gcFmt+"\t"+tmFmt+"\t"+tmFmt+"\t%s\n",
			r.Target, p.Rank,
			p.Forward.Seq, p.Forward.Start, p.Forward.GCPercent, p.Forward.Tm,
			p.Reverse.Seq, p.Reverse.Start, p.Reverse.GCPercent, p.Reverse.Tm,
			p.TmDelta, productTSV(p),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func productTSV(p api.PairV1) string {
	if p.NoProduct {
		return "-\t-\t-"
	}
	return fmt.Sprintf("%d\t%d\t%d", p.ProductStart, p.ProductEnd, p.ProductLength)
}
