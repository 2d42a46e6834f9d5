package diag

import "fmt"

// Severity classifies a diagnostic. Only errors affect validity;
// warnings are advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one reported problem. The message carries all context
// (section, index, id); there are no structured fields beyond it.
type Diagnostic struct {
	Severity Severity
	Message  string
}

// List accumulates diagnostics in report order for a single validation
// run. A List is owned by one run and must not be shared across runs.
type List struct {
	items []Diagnostic
}

// NewList creates an empty diagnostic list.
func NewList() *List {
	return &List{}
}

// Errorf records an error-severity diagnostic.
func (l *List) Errorf(format string, args ...interface{}) {
	l.items = append(l.items, Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning-severity diagnostic.
func (l *List) Warnf(format string, args ...interface{}) {
	l.items = append(l.items, Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}

// Extend appends all diagnostics from other, preserving order.
func (l *List) Extend(other *List) {
	if other == nil {
		return
	}
	l.items = append(l.items, other.items...)
}

// All returns the diagnostics in the order they were recorded.
func (l *List) All() []Diagnostic {
	return l.items
}

// Errors returns the messages of all error-severity diagnostics.
func (l *List) Errors() []string {
	return l.messages(SeverityError)
}

// Warnings returns the messages of all warning-severity diagnostics.
func (l *List) Warnings() []string {
	return l.messages(SeverityWarning)
}

func (l *List) messages(sev Severity) []string {
	out := make([]string, 0)
	for _, d := range l.items {
		if d.Severity == sev {
			out = append(out, d.Message)
		}
	}
	return out
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (l *List) HasErrors() bool {
	for _, d := range l.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Valid reports whether the run passed: no error-severity diagnostics.
// Warnings never affect validity.
func (l *List) Valid() bool {
	return !l.HasErrors()
}

// Len returns the total number of diagnostics.
func (l *List) Len() int {
	return len(l.items)
}
