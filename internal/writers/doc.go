// Package writers turns design reports into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text report, TSV, JSON/JSONL).
//   - The design core stays domain-only; the app only feeds reports in.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
//   - Each format registers a Start function; the app picks one by name.
package writers
