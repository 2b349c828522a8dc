package cmdutil

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var (
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed, color.Bold)
	debugColor = color.New(color.FgCyan)
)

// NewLogger returns the run logger writing to dst (normally stderr).
// verbose traces every design step; quiet keeps errors only.
func NewLogger(dst io.Writer, verbose, quiet bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(dst)
	l.SetFormatter(lineFormatter{})
	switch {
	case quiet:
		l.SetLevel(logrus.ErrorLevel)
	case verbose:
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}

// lineFormatter prints "WARN: message key=value ..." lines.
type lineFormatter struct{}

func (lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(levelPrefix(e.Level))
	b.WriteString(e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, e.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelPrefix(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return warnColor.Sprint("WARN: ")
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return errColor.Sprint("ERROR: ")
	case logrus.DebugLevel, logrus.TraceLevel:
		return debugColor.Sprint("DEBUG: ")
	}
	return ""
}
