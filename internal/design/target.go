package design

import (
	"strings"
	"unicode"
)

// Target is a named template sequence, uppercase, with whitespace removed.
type Target struct {
	Name string
	Seq  string
}

// NewTarget normalizes seq at the ingestion boundary.
func NewTarget(name, seq string) Target {
	return Target{Name: name, Seq: normalize(seq)}
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}
