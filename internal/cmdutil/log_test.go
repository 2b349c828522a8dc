package cmdutil

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Levels(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	l := NewLogger(&buf, false, false)
	l.Debug("hidden")
	l.WithField("target", "geneX").Warn("short target")
	assert.Equal(t, "WARN: short target target=geneX\n", buf.String())

	buf.Reset()
	l = NewLogger(&buf, true, false)
	l.WithFields(map[string]any{"kept": 3, "generated": 10}).Debug("forward candidates")
	assert.Equal(t, "DEBUG: forward candidates generated=10 kept=3\n", buf.String())

	buf.Reset()
	l = NewLogger(&buf, false, true)
	l.Warn("dropped")
	l.Error("kept")
	assert.Equal(t, "ERROR: kept\n", buf.String())
}
