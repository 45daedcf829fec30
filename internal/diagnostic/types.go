package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Category classifies which part of the contract a diagnostic violates.
type Category int

const (
	// CategoryConfiguration covers unknown, duplicate, or ill-formed
	// attributes.
	CategoryConfiguration Category = iota
	// CategoryKeyResolution covers missing, conflicting, or unusable key
	// mechanisms.
	CategoryKeyResolution
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryConfiguration:
		return "configuration"
	case CategoryKeyResolution:
		return "key resolution"
	default:
		return "unknown"
	}
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single finding against one schema construct.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Category is the error-taxonomy bucket the finding belongs to.
	Category Category
	// Code is a stable identifier for this kind of finding.
	Code string
	// Construct names the offending construct, e.g. "store.User" or
	// "store.User.Sessions".
	Construct string
	// Message describes the rule that was violated.
	Message string
	// Remedy is a human-actionable suggestion for fixing the finding.
	Remedy string
}

// String returns a formatted diagnostic line.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Construct != "" {
		msg = d.Construct + ": " + msg
	}

	if d.Remedy != "" {
		msg += " (" + d.Remedy + ")"
	}

	return msg
}

// Diagnostics accumulates findings across all checks for one generator run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(cat Category, code, construct, message, remedy string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  SeverityError,
		Category:  cat,
		Code:      code,
		Construct: construct,
		Message:   message,
		Remedy:    remedy,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(cat Category, code, construct, message, remedy string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  SeverityWarning,
		Category:  cat,
		Code:      code,
		Construct: construct,
		Message:   message,
		Remedy:    remedy,
	})
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// ErrorsFor returns the error diagnostics recorded against a construct or any
// of its fields.
func (d *Diagnostics) ErrorsFor(construct string) []Diagnostic {
	var out []Diagnostic

	for _, e := range d.Errors {
		if e.Construct == construct || strings.HasPrefix(e.Construct, construct+".") {
			out = append(out, e)
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
