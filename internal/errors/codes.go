// Package errors provides the structured, JSON-encodable diagnostic type the
// CLI and REPL report to users, trimmed from AILANG's PAR/TC code taxonomy
// (internal/errors/codes.go, internal/errors/json_encoder.go) down to the
// seven failure kinds spec.md §7 names, plus one parser code for syntax
// errors raised before type checking ever runs.
package errors

// Code identifies the kind of diagnostic, mirroring types.ErrorKind for
// failures raised by the checker and adding PAR001 for parse failures.
const (
	PAR001 = "PAR001" // unexpected token

	TCUnboundVar             = "UnboundVar"
	TCIllFormedAnnotation    = "IllFormedAnnotation"
	TCNotAFunction           = "NotAFunction"
	TCNotPolymorphic         = "NotPolymorphic"
	TCSubtypeFail            = "SubtypeFail"
	TCOccursCheck            = "OccursCheck"
	TCExistentialOutOfScope  = "ExistentialOutOfScope"
)
