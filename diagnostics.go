// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package mgdex

import (
	"fmt"
	"io"
	"log/slog"
)

// DiagnosticKind classifies a diagnostic.
type DiagnosticKind string

const (
	// MissingMapping is a species/form pair that the identity map does not know.
	// The affected record is dropped.
	MissingMapping DiagnosticKind = "missing-mapping"
	// Structural is a broken extractor invariant (out-of-order directive,
	// unterminated block). The extractor recovers at the next valid marker.
	Structural DiagnosticKind = "structural"
	// MissingData is an absent stat, moveset or encounter for a valid species.
	// It is rendered as a placeholder.
	MissingData DiagnosticKind = "missing-data"
)

// Diagnostic is a non-fatal notice raised while extracting or joining data.
type Diagnostic struct {
	Severity slog.Level     // Error, Warning, Info
	Kind     DiagnosticKind // missing-mapping, structural, missing-data
	Source   string         // name of the input, e.g. "trainers.s"
	Line     int            // 1-based, 0 when the notice is not tied to a line
	Message  string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s: %s", d.Source, d.Line, d.Severity.String(), d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s: %s", d.Source, d.Severity.String(), d.Kind, d.Message)
}

// Diagnostics collects notices for a single input source.
// The zero value is not usable; use NewDiagnostics.
type Diagnostics struct {
	source string
	list   []Diagnostic
}

func NewDiagnostics(source string) *Diagnostics {
	return &Diagnostics{source: source}
}

// Errorf records a notice with error severity.
func (d *Diagnostics) Errorf(kind DiagnosticKind, line int, format string, args ...any) {
	d.add(slog.LevelError, kind, line, format, args...)
}

// Warnf records a notice with warning severity.
func (d *Diagnostics) Warnf(kind DiagnosticKind, line int, format string, args ...any) {
	d.add(slog.LevelWarn, kind, line, format, args...)
}

// Infof records a notice with info severity.
func (d *Diagnostics) Infof(kind DiagnosticKind, line int, format string, args ...any) {
	d.add(slog.LevelInfo, kind, line, format, args...)
}

func (d *Diagnostics) add(level slog.Level, kind DiagnosticKind, line int, format string, args ...any) {
	d.list = append(d.list, Diagnostic{
		Severity: level,
		Kind:     kind,
		Source:   d.source,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	})
}

// List returns the recorded notices in the order they were raised.
func (d *Diagnostics) List() []Diagnostic {
	if d == nil {
		return nil
	}
	return append([]Diagnostic(nil), d.list...)
}

// Len is the number of recorded notices.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.list)
}

// Count returns the number of notices of the given kind.
func Count(list []Diagnostic, kind DiagnosticKind) (n int) {
	for _, d := range list {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// PrintDiagnostics writes one line per notice. Notices below minLevel are skipped.
func PrintDiagnostics(w io.Writer, list []Diagnostic, minLevel slog.Level) {
	for _, d := range list {
		if d.Severity < minLevel {
			continue
		}
		_, _ = fmt.Fprintln(w, d.String())
	}
}
