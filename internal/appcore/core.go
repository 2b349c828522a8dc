// Package appcore runs one configured design job: inputs in, reports out.
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"prdesign/internal/cmdutil"
	"prdesign/internal/config"
	"prdesign/internal/design"
	"prdesign/internal/output"
	"prdesign/internal/runutil"
	"prdesign/internal/version"
	"prdesign/internal/writers"
	"prdesign/pkg/api"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

// Run designs primers for every record of cfg.Input and writes the reports in
// cfg.Format. It returns the process exit code.
func Run(parent context.Context, stdout, stderr io.Writer, cfg config.Config) int {
	log := cmdutil.NewLogger(stderr, cfg.Verbose, cfg.Quiet)

	p := cfg.Params()
	for _, w := range runutil.ParamWarnings(p) {
		log.Warn(w)
	}
	p.Threads = runutil.EffectiveThreads(cfg.Threads)

	dst, closeDst, err := openOutput(cfg.Output, stdout)
	if err != nil {
		log.Error(err)
		return ExitIO
	}
	outw := bufio.NewWriter(dst)

	inCh, writeErr, err := writers.Start(cfg.Format, outw, writers.Options{
		Header:  !cfg.NoHeader,
		BufSize: p.Threads * 4,
	})
	if err != nil {
		_ = closeDst()
		log.Error(err)
		return ExitUsage
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	meta := output.Meta{
		RunID:       uuid.NewString(),
		Tool:        version.Tool,
		Version:     version.Version,
		GeneratedAt: time.Now().UTC(),
	}
	log.WithFields(logrus.Fields{"run": meta.RunID, "threads": p.Threads}).Debug("run started")

	total, perr := cmdutil.RunStream[api.ReportV1](
		ctx,
		log,
		cfg.Input,
		p,
		func(src string, res design.Result) (api.ReportV1, error) {
			m := meta
			m.SourceFile = src
			return output.ToAPIReport(res, m), nil
		},
		func(r api.ReportV1) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	werr := <-writeErr
	if werr == nil {
		werr = outw.Flush()
	}
	if cerr := closeDst(); werr == nil {
		werr = cerr
	}
	if writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		log.Error(werr)
		return ExitIO
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCancelled
		}
		log.Error(perr)
		return ExitIO
	}
	if total == 0 {
		log.Debug("no primer pairs found")
		return cfg.NoMatchExitCode
	}
	return ExitOK
}

// openOutput resolves --output: "-" or "" is stdout, anything else a file.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return f, f.Close, nil
}
