package zon

import "errors"

// ============================================================
// Document Checking & Validator Interface
// ============================================================

// Issue is the error shape handed to external consumers: a fixed code
// plus best-effort location and context.
type Issue struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Line    int       `json:"line,omitempty"`
	Column  int       `json:"column,omitempty"`
	Context string    `json:"context,omitempty"`
}

// CheckResult reports the outcome of a document check.
type CheckResult struct {
	Valid  bool
	Errors []Issue
}

// SchemaResult is the contract an external schema validator returns
// after consuming a decoded tree. The core does not implement schema
// validation; it only supplies the decoded value and Issue objects.
type SchemaResult struct {
	Success bool
	Data    *Value
	Issues  []Issue
}

// CheckDocument decodes text and reports validation state instead of a
// value. The decoder aborts on the first violation, so at most one
// issue is returned.
func CheckDocument(text string, opts DecodeOptions) *CheckResult {
	if _, err := DecodeWithOptions(text, opts); err != nil {
		return &CheckResult{Valid: false, Errors: []Issue{IssueOf(err)}}
	}
	return &CheckResult{Valid: true}
}

// Valid reports whether text decodes cleanly in strict mode.
func Valid(text string) bool {
	return CheckDocument(text, DefaultDecodeOptions()).Valid
}

// IssueOf converts a codec error into the external Issue shape.
func IssueOf(err error) Issue {
	var e *Error
	if errors.As(err, &e) {
		return Issue{
			Code:    e.Code,
			Message: e.Message,
			Line:    e.Line,
			Column:  e.Column,
			Context: e.Context,
		}
	}
	return Issue{Message: err.Error()}
}
