package writers

import (
	"fmt"
	"io"

	"prdesign/internal/jsonlutil"
	"prdesign/internal/output"
	"prdesign/pkg/api"
)

func init() {
	Register(output.FormatText, startText)
	Register(output.FormatTSV, startTSV)
	Register(output.FormatJSON, startJSON)
	Register(output.FormatJSONL, startJSONL)
}

// startText streams one report block per target, separated by a blank line.
func startText(out io.Writer, opt Options) (chan<- api.ReportV1, <-chan error) {
	n := 0
	return stream(opt, func(r api.ReportV1) error {
		if n > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		n++
		return output.WriteText(out, r)
	}, nil)
}

func startTSV(out io.Writer, opt Options) (chan<- api.ReportV1, <-chan error) {
	wroteHeader := !opt.Header
	writeHeader := func() error {
		if wroteHeader {
			return nil
		}
		wroteHeader = true
		_, err := fmt.Fprintln(out, output.TSVHeader)
		return err
	}
	return stream(opt, func(r api.ReportV1) error {
		if err := writeHeader(); err != nil {
			return err
		}
		return output.WriteTSV(out, r)
	}, writeHeader)
}

// startJSON buffers every report and writes one JSON array at the end.
func startJSON(out io.Writer, opt Options) (chan<- api.ReportV1, <-chan error) {
	var buf []api.ReportV1
	return stream(opt, func(r api.ReportV1) error {
		buf = append(buf, r)
		return nil
	}, func() error {
		return output.WriteJSON(out, buf)
	})
}

// startJSONL streams each report as one JSON line (v1).
func startJSONL(out io.Writer, opt Options) (chan<- api.ReportV1, <-chan error) {
	return jsonlutil.Start[api.ReportV1](out, opt.BufSize, IsBrokenPipe)
}
