// Package version carries the build version, set with
// -ldflags "-X prdesign/internal/version.Version=v1.2.3".
package version

var Version = "dev"

// Tool is the command name used in help and reports.
const Tool = "prdesign"
