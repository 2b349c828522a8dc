package writers

import (
	"fmt"
	"io"
	"sort"

	"prdesign/pkg/api"
)

// Options tune a writer.
type Options struct {
	Header  bool // TSV header line
	BufSize int  // report channel capacity
}

// StartFunc spins up a writer goroutine. Reports sent on the returned channel
// are written in order; the error channel yields exactly one value after the
// input channel is closed.
type StartFunc func(out io.Writer, opt Options) (chan<- api.ReportV1, <-chan error)

// Writer registry (format → starter). Formats register in init() blocks.
var reportWriters = map[string]StartFunc{}

// Register adds a format (idempotent last-wins).
func Register(format string, fn StartFunc) { reportWriters[format] = fn }

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(reportWriters))
	for k := range reportWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Start dispatches to the writer registered for format.
func Start(format string, out io.Writer, opt Options) (chan<- api.ReportV1, <-chan error, error) {
	fn, ok := reportWriters[format]
	if !ok {
		return nil, nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	in, errCh := fn(out, opt)
	return in, errCh, nil
}

// stream runs each(r) per report and then end(); shared by all formats.
// After the first error, remaining reports are drained and dropped.
func stream(opt Options, each func(api.ReportV1) error, end func() error) (chan<- api.ReportV1, <-chan error) {
	bufSize := opt.BufSize
	if bufSize <= 0 {
		bufSize = 16
	}
	in := make(chan api.ReportV1, bufSize)
	done := make(chan error, 1)

	go func() {
		var err error
		for r := range in {
			if err == nil {
				err = each(r)
			}
		}
		if err == nil && end != nil {
			err = end()
		}
		done <- err
	}()
	return in, done
}
