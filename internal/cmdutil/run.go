package cmdutil

import (
	"context"

	"github.com/sirupsen/logrus"

	"prdesign/internal/design"
	"prdesign/internal/fasta"
	"prdesign/internal/runutil"
)

// RunStream designs every record of every file in order, converts each result
// with visit and hands it to send. It returns the number of pairs selected
// across all targets and the first error encountered.
func RunStream[T any](
	ctx context.Context,
	log logrus.FieldLogger,
	files []string,
	p design.Params,
	visit func(src string, res design.Result) (T, error),
	send func(T) error,
) (int, error) {
	total := 0
	for _, path := range files {
		err := fasta.ReadPathCtx(ctx, path, func(rec fasta.Record) error {
			t := design.NewTarget(rec.ID, rec.Seq)
			tlog := log.WithField("target", t.Name)
			for _, w := range runutil.TargetWarnings(t, p) {
				tlog.Warn(w)
			}

			res, err := design.Run(ctx, t, p)
			if err != nil {
				return err
			}
			traceResult(tlog, p, res)

			out, err := visit(path, res)
			if err != nil {
				return err
			}
			if err := send(out); err != nil {
				return err
			}
			total += len(res.Pairs)
			return nil
		})
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func traceResult(log logrus.FieldLogger, p design.Params, res design.Result) {
	log.WithFields(logrus.Fields{"length": len(res.Target.Seq)}).Debug("target loaded")
	log.WithFields(logrus.Fields{
		"generated": res.Forward.Generated, "kept": res.Forward.Kept,
	}).Debugf("forward candidates (GC %g–%g%%, Tm %g–%g)", p.MinGC, p.MaxGC, p.MinTm, p.MaxTm)
	log.WithFields(logrus.Fields{
		"generated": res.Reverse.Generated, "kept": res.Reverse.Kept,
	}).Debug("reverse candidates")
	log.WithFields(logrus.Fields{
		"tmdiff":   p.TmTolerance,
		"accepted": res.Accepted,
		"selected": len(res.Pairs),
	}).Debugf("pairs of %d possible", res.Forward.Kept*res.Reverse.Kept)
}
