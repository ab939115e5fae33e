package validate

import (
	"fmt"
	"strings"
)

// Severity ranks a finding. Warnings do not block rendering unless strict
// mode promoted them.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code identifies the rule a finding came from.
type Code string

const (
	CodeTooManyBlocks    Code = "too_many_blocks"
	CodeTypeNotAllowed   Code = "type_not_allowed"
	CodeTooFewOfType     Code = "too_few_of_type"
	CodeTooManyOfType    Code = "too_many_of_type"
	CodeMissingMandatory Code = "missing_mandatory"
	CodeMissingID        Code = "missing_id"
	CodeDuplicateID      Code = "duplicate_id"
	CodeEmptyContent     Code = "empty_content"
	CodeInvalidColor     Code = "invalid_color"
	CodeInvalidURL       Code = "invalid_url"
)

// Error is a single validation finding. BlockID is empty for document-level
// findings.
type Error struct {
	Code     Code
	Message  string
	Severity Severity
	BlockID  string
}

// Errors collects findings; it implements error so callers can return it
// directly.
type Errors []Error

func (es Errors) Error() string {
	if len(es) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// HasBlocking reports whether any finding carries error severity.
func (es Errors) HasBlocking() bool {
	for _, e := range es {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ForBlock returns the findings attached to the given block ID.
func (es Errors) ForBlock(id string) Errors {
	var out Errors
	for _, e := range es {
		if e.BlockID == id {
			out = append(out, e)
		}
	}
	return out
}

// Has reports whether any finding carries the given code.
func (es Errors) Has(code Code) bool {
	for _, e := range es {
		if e.Code == code {
			return true
		}
	}
	return false
}
