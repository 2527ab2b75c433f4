package types

import "fmt"

// ErrorKind enumerates the seven ways a judgment can fail (spec.md §7),
// trimmed down from the teacher's PAR/TC code-taxonomy idiom
// (ailang/internal/types/errors.go) to exactly the kinds this calculus needs.
type ErrorKind string

const (
	// UnboundVar: Var{Index} has no matching TermVar entry in Γ.
	UnboundVar ErrorKind = "UnboundVar"
	// IllFormedAnnotation: an Ann or TypeApp type argument is not wellFormed
	// in the current Γ.
	IllFormedAnnotation ErrorKind = "IllFormedAnnotation"
	// NotAFunction: App's function operand did not infer to a TArrow (after
	// instantiation).
	NotAFunction ErrorKind = "NotAFunction"
	// NotPolymorphic: TypeApp's callee did not infer to a TForall.
	NotPolymorphic ErrorKind = "NotPolymorphic"
	// SubtypeFail: subtype found no applicable rule for the given pair.
	SubtypeFail ErrorKind = "SubtypeFail"
	// OccursCheck: instantiating α to τ would make τ contain α.
	OccursCheck ErrorKind = "OccursCheck"
	// ExistentialOutOfScope: an EVar solution mentions an EVar not in scope
	// at the solving site (violates the ordering invariant).
	ExistentialOutOfScope ErrorKind = "ExistentialOutOfScope"
)

// CheckError is the single error type every operation in this package
// returns; Kind drives CLI diagnostics, Detail carries a human-readable
// rendering of the offending term/type(s).
type CheckError struct {
	Kind   ErrorKind
	Detail string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func newErr(kind ErrorKind, format string, args ...any) *CheckError {
	return &CheckError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func errUnboundVar(idx int) error {
	return newErr(UnboundVar, "no term variable at index %d", idx)
}

func errIllFormedAnnotation(ty fmt.Stringer) error {
	return newErr(IllFormedAnnotation, "%s is not well-formed in the current context", ty)
}

func errNotAFunction(ty fmt.Stringer) error {
	return newErr(NotAFunction, "%s is not a function type", ty)
}

func errNotPolymorphic(ty fmt.Stringer) error {
	return newErr(NotPolymorphic, "%s is not universally quantified", ty)
}

func errSubtypeFail(a, b fmt.Stringer) error {
	return newErr(SubtypeFail, "%s is not a subtype of %s", a, b)
}

func errOccursCheck(alpha int, ty fmt.Stringer) error {
	return newErr(OccursCheck, "?%d occurs in %s", alpha, ty)
}

func errExistentialOutOfScope(alpha int) error {
	return newErr(ExistentialOutOfScope, "?%d is not in scope at the solving site", alpha)
}
