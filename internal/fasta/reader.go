// Package fasta reads target sequences for primer design.
//
// Two layouts are accepted:
//   - regular FASTA: ">" header lines, the record ID is the first word of
//     the header, sequence lines follow;
//   - headerless: the first whitespace-delimited token of the file is the
//     name and every remaining token is concatenated into the sequence.
//
// Sequences are uppercased and must use the IUPAC DNA alphabet.
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"prdesign/internal/primer"
)

var (
	// ErrMissingInput is returned when the source cannot be opened or holds
	// no sequence at all.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidBase is returned for characters outside the IUPAC alphabet.
	ErrInvalidBase = errors.New("invalid base")
)

// Record is one parsed sequence.
type Record struct {
	ID  string
	Seq string
}

// ReadPathCtx opens path ("-" for stdin, gzip allowed) and calls emit for
// each record in file order. Cancellation via ctx is checked between lines.
// Return a non-nil error from emit to stop early.
func ReadPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	n := 0
	err = Scan(ctx, rc, func(r Record) error {
		n++
		return emit(r)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w: no sequence found", path, ErrMissingInput)
	}
	return nil
}

// ReadAll collects every record of path.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := ReadPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Scan parses r and calls emit per record.
func Scan(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id       string
		seq      []byte
		started  bool // a record is open
		headless bool
		lineNo   int
	)

	flush := func() error {
		if !started {
			return nil
		}
		started = false
		return emit(Record{ID: id, Seq: string(seq)})
	}

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' && !headless {
			if err := flush(); err != nil {
				return err
			}
			id = parseHeaderID(line[1:])
			seq = seq[:0]
			started = true
			continue
		}
		fields := bytes.Fields(line)
		if !started {
			// Headerless layout: first token names the sequence.
			headless = true
			started = true
			id = string(fields[0])
			seq = seq[:0]
			fields = fields[1:]
		}
		for _, f := range fields {
			f = bytes.ToUpper(f)
			if i := primer.FirstInvalid(string(f)); i >= 0 {
				return fmt.Errorf("line %d: %w %q in record %q", lineNo, ErrInvalidBase, f[i], id)
			}
			seq = append(seq, f...)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

func parseHeaderID(h []byte) string {
	f := bytes.Fields(h)
	if len(f) == 0 {
		return ""
	}
	return string(f[0])
}
