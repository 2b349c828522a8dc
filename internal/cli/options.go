// Package cli wires the command line (cobra) onto the layered config (viper).
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"prdesign/internal/cliutil"
	"prdesign/internal/config"
	"prdesign/internal/version"
)

// UsageError marks bad invocations (exit code 2).
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ErrNoInput is returned when neither -i nor a positional FASTA path is given.
var ErrNoInput = errors.New("provide a FASTA file with -i/--input or as an argument ('-' for stdin)")

// RunFunc receives the validated configuration.
type RunFunc func(cmd *cobra.Command, cfg config.Config) error

// RegisterFlags wires every setting onto fs. Flag names double as config keys.
func RegisterFlags(fs *pflag.FlagSet) {
	d := config.Default()

	// Input / output
	fs.StringSliceP("input", "i", nil, "FASTA file(s); gzip ok, '-' for stdin (repeatable)")
	fs.StringP("output", "o", d.Output, "output file ('-' for stdout)")
	fs.StringP("format", "f", d.Format, "output format: text | tsv | json | jsonl")
	fs.Bool("no-header", false, "suppress the TSV header line")
	fs.String("config", "", "YAML config file (flags and PRDESIGN_* env override it)")

	// Candidate search
	fs.IntP("extension", "e", d.Extension, "bases from each end of the target to start primers in")
	fs.IntP("short", "s", d.Short, "primers are longer than this: lengths run from short+1 to long")
	fs.IntP("long", "l", d.Long, "longest acceptable primer")

	// Acceptance bounds
	fs.Float64P("mintemp", "m", d.MinTemp, "min Tm in °C")
	fs.Float64P("maxtemp", "x", d.MaxTemp, "max Tm in °C")
	fs.Float64P("mingc", "M", d.MinGC, "min GC percentage")
	fs.Float64P("maxgc", "X", d.MaxGC, "max GC percentage")

	// Pairing / selection
	fs.Float64P("tmdiff", "D", d.TmDiff, "max Tm difference within a primer pair")
	fs.IntP("number", "n", d.Number, "number of primer pairs to report per target")

	// Misc
	fs.IntP("threads", "t", d.Threads, "worker threads (0 = all CPUs)")
	fs.Int("no-match-exit-code", d.NoMatchExitCode, "exit code when no primer pair is found")
	fs.BoolP("verbose", "v", false, "trace every design step on stderr")
	fs.BoolP("quiet", "q", false, "suppress warnings")
}

// LoadConfig layers defaults, --config file, environment and flags, appends
// positional FASTA paths (globs expanded) and validates the result.
func LoadConfig(cmd *cobra.Command, args []string, requireInput bool) (config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	v, err := config.NewViper(file)
	if err != nil {
		return config.Config{}, &UsageError{Err: err}
	}
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return cfg, &UsageError{Err: err}
	}
	if len(args) > 0 {
		exp, err := cliutil.ExpandPositionals(args)
		if err != nil {
			return cfg, &UsageError{Err: err}
		}
		cfg.Input = append(cfg.Input, exp...)
	}
	if requireInput && len(cfg.Input) == 0 {
		return cfg, &UsageError{Err: ErrNoInput}
	}
	return cfg, nil
}

// NewRootCommand builds the prdesign command tree around run.
func NewRootCommand(run RunFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   version.Tool + " [flags] [FASTA...]",
		Short: "Design PCR primer pairs flanking a target sequence",
		Long: fmt.Sprintf(`%s %s: PCR primer pair design

Forward primers are searched near the start of each target, reverse primers
near its end (on the reverse complement). Candidates are kept when GC%% and
Tm fall inside the configured bounds, paired when their Tm values differ by
at most --tmdiff, and ranked by Tm difference.`, version.Tool, version.Version),
		Example: `  prdesign -i target.fa
  prdesign -e 150 -m 50 -x 65 -M 35 -X 65 -n 10 target.fa
  zcat genes.fa.gz | prdesign -f jsonl -`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd, args, true)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	RegisterFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	root.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cmd, args, false)
			if err != nil {
				return err
			}
			return cfg.WriteYAML(cmd.OutOrStdout())
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	})
	return root
}

func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "%s version %s\n", version.Tool, version.Version)
}
