// Package diagnostic collects the findings of the static property audit:
// per-property warnings and errors keyed by owner type and property name.
package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"accessor-engine/internal/common"
)

// Diagnostics holds all findings from one audit run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single finding.
type Diagnostic struct {
	// Severity of the finding.
	Severity Severity
	// Code is a stable identifier for this kind of finding, e.g. "lost-write".
	Code string
	// Message is the human-readable description.
	Message string
	// Owner identifies the declaring type this relates to (if any).
	Owner string
	// Property identifies the property this relates to (if any).
	Property string
}

// Severity represents the severity level of a finding.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error finding.
func (d *Diagnostics) AddError(code, message, owner, property string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: Error,
		Code:     code,
		Message:  message,
		Owner:    owner,
		Property: property,
	})
}

// AddWarning adds a warning finding.
func (d *Diagnostics) AddWarning(code, message, owner, property string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: Warning,
		Code:     code,
		Message:  message,
		Owner:    owner,
		Property: property,
	})
}

// AddInfo adds an informational finding.
func (d *Diagnostics) AddInfo(code, message, owner, property string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: Info,
		Code:     code,
		Message:  message,
		Owner:    owner,
		Property: property,
	})
}

// HasErrors returns true if there are any error findings.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error findings, or nil if none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted finding string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Owner != "" {
		prefix = append(prefix, "["+d.Owner+"]")
	}

	if d.Property != "" {
		prefix = append(prefix, d.Property)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
