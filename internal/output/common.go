package output

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "target\trank\tfwd_seq\tfwd_start\tfwd_gc\tfwd_tm\trev_seq\trev_start\trev_gc\trev_tm\ttm_delta\tproduct_start\tproduct_end\tproduct_length"

// float formats used by text and TSV output
const (
	gcFmt = "%.1f"
	tmFmt = "%.2f"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)
