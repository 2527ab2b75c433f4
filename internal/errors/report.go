package errors

import (
	"encoding/json"
	"errors"

	"github.com/polylambda/bidipoly/internal/ast"
)

// Report is the structured diagnostic type the CLI and REPL show:
// internal/driver converts parser syntax errors and internal/types judgment
// failures into it. Adapted from ailang/internal/errors/report.go's Report/
// ReportError pair, trimmed of the module/loader/elaboration phases this
// calculus has no use for.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"` // "parser" or "typecheck"
	Message string         `json:"message"`
	Pos     *ast.Pos       `json:"pos,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// ReportError wraps a Report as an error so it survives errors.As
// unwrapping through ordinary Go error-handling paths.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts a *Report from an error chain, if one is present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as an error.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON renders the report as JSON, indented unless compact is set.
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewParseError builds a Report for a syntax error at pos.
func NewParseError(msg string, pos ast.Pos) *Report {
	return &Report{
		Schema:  "bidipoly.error/v1",
		Code:    PAR001,
		Phase:   "parser",
		Message: msg,
		Pos:     &pos,
	}
}

// NewTypeError builds a Report for a failed judgment, keyed by code (one of
// the TC* constants, matching types.ErrorKind's string form, or
// internal/driver's "ResidualExistential" for a result left with an unsolved
// existential).
func NewTypeError(code, msg string) *Report {
	return &Report{
		Schema:  "bidipoly.error/v1",
		Code:    code,
		Phase:   "typecheck",
		Message: msg,
	}
}
