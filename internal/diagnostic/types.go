package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"enumconv/internal/common"
)

// Position is a location in a descriptor file or Go source file.
// Line and Column are 1-based; a zero Line means the position is unknown.
type Position struct {
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
	Line   int    `yaml:"line,omitempty" json:"line,omitempty"`
	Column int    `yaml:"column,omitempty" json:"column,omitempty"`
}

// IsValid reports whether the position carries a line.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String returns "file:line:col", omitting unknown parts.
func (p Position) String() string {
	s := p.File
	if p.IsValid() {
		if s != "" {
			s += ":"
		}

		s += fmt.Sprintf("%d", p.Line)
		if p.Column > 0 {
			s += fmt.Sprintf(":%d", p.Column)
		}
	}

	if s == "" {
		s = "-"
	}

	return s
}

// Diagnostics holds all diagnostic information for one or more enums.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Kind classifies mapping rule violations; Structural otherwise.
	Kind Kind
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Enum names the enclosing enum type (if any).
	Enum string
	// Member names the enum member (if any).
	Member string
	// Pos is where the problem was declared.
	Pos Position
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Report adds an error for one of the mapping rule kinds.
func (d *Diagnostics) Report(kind Kind, pos Position, enum, member string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Kind:     kind,
		Code:     kind.Code(),
		Message:  kind.Title(),
		Enum:     enum,
		Member:   member,
		Pos:      pos,
	})
}

// AddError adds a structural error diagnostic.
func (d *Diagnostics) AddError(code, message string, pos Position, enum, member string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Enum:     enum,
		Member:   member,
		Pos:      pos,
	})
}

// AddErrorWithSuggestions adds a structural error diagnostic with fix suggestions.
func (d *Diagnostics) AddErrorWithSuggestions(code, message string, pos Position, enum, member string, suggestions []string) {
	d.AddError(code, message, pos, enum, member)
	d.Errors[len(d.Errors)-1].Suggestions = suggestions
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message string, pos Position, enum, member string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Enum:     enum,
		Member:   member,
		Pos:      pos,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, pos Position, enum, member string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Enum:     enum,
		Member:   member,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasStructuralErrors reports whether any error is structural, i.e. the
// enum cannot be generated at all.
func (d *Diagnostics) HasStructuralErrors() bool {
	for _, e := range d.Errors {
		if e.Kind == Structural {
			return true
		}
	}

	return false
}

// Count returns the number of errors of the given kind.
func (d *Diagnostics) Count(kind Kind) int {
	n := 0

	for _, e := range d.Errors {
		if e.Kind == kind {
			n++
		}
	}

	return n
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Enum != "" {
		prefix = append(prefix, "["+d.Enum+"]")
	}

	if d.Member != "" {
		prefix = append(prefix, d.Member)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		msg = strings.Join(prefix, " ") + ": " + msg
	}

	if d.Pos.IsValid() {
		msg = d.Pos.String() + ": " + msg
	}

	return msg
}
