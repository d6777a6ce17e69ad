// SPDX-License-Identifier: MPL-2.0

package locator

const (
	// SeverityWarning indicates a recoverable resolution warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal resolution error diagnostic.
	SeverityError Severity = "error"
)

type (
	// Severity represents resolution diagnostic severity.
	Severity string

	// Position is a 1-based source location inside a parsed marker file.
	// It is carried for diagnostics only and never drives resolution.
	Position struct {
		// File is the path of the file the token came from.
		File string
		// Line is the 1-based line of the token.
		Line int
		// Column is the 1-based column of the token.
		Column int
	}

	// Diagnostic represents a structured resolution diagnostic that is
	// handed to the configured Reporter (rather than written to stderr)
	// for consistent rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "runtime_not_found").
		Code string
		// Message is the human-readable description.
		Message string
		// Position is the source position of the config entry that caused
		// the diagnostic (optional; nil when the version did not come from
		// a marker file).
		Position *Position
	}

	// Reporter receives diagnostics produced during resolution. The CLI
	// installs a rendering reporter; tests install a capturing one.
	Reporter interface {
		Report(d Diagnostic)
	}

	// ReporterFunc adapts a plain function to the Reporter interface.
	ReporterFunc func(d Diagnostic)

	// NopReporter discards all diagnostics. It is the default sink so the
	// locator can be constructed without any wiring.
	NopReporter struct{}
)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) { f(d) }

// Report discards the diagnostic.
func (NopReporter) Report(Diagnostic) {}
