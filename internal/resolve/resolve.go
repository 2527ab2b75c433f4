// Package resolve converts the named surface syntax of internal/ast into the
// closed, De Bruijn-indexed internal/core representation internal/types
// operates on. It is a direct port of the Rust reference's
// Term::into_core/Ty::into_core (original_source/src/ast/parse.rs), which
// thread a name stack instead of doing real scope analysis — a free name
// simply fails to resolve, and a repeated name refers to its nearest binder.
package resolve

import (
	"fmt"

	"github.com/polylambda/bidipoly/internal/ast"
	"github.com/polylambda/bidipoly/internal/core"
)

// Error reports a name that could not be found in the enclosing binders.
type Error struct {
	Name string
	Pos  ast.Pos
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%s: unbound name %q", e.Pos, "resolve", e.Name)
}

// Term resolves a closed surface term to its core representation. Every
// Var must be bound by an enclosing Lambda; there is no top-level
// environment.
func Term(t ast.Term) (core.Term, error) {
	return resolveTerm(t, nil)
}

// Type resolves a closed surface type. Every TyVar must be bound by an
// enclosing TyForall within the same type.
func Type(t ast.Ty) (core.Ty, error) {
	return resolveTy(t, nil)
}

func resolveTerm(t ast.Term, names []string) (core.Term, error) {
	switch e := t.(type) {
	case ast.Unit:
		return core.Unit{}, nil
	case ast.Bool:
		return core.Bool{Value: e.Value}, nil
	case ast.Var:
		idx := indexOf(names, e.Name)
		if idx < 0 {
			return nil, &Error{Name: e.Name, Pos: e.Pos}
		}
		return core.Var{Index: idx}, nil
	case ast.Lambda:
		body, err := resolveTerm(e.Body, append([]string{e.Param}, names...))
		if err != nil {
			return nil, err
		}
		return core.Lambda{Body: body}, nil
	case ast.App:
		fn, err := resolveTerm(e.Func, names)
		if err != nil {
			return nil, err
		}
		arg, err := resolveTerm(e.Arg, names)
		if err != nil {
			return nil, err
		}
		return core.App{Func: fn, Arg: arg}, nil
	case ast.Ann:
		term, err := resolveTerm(e.Term, names)
		if err != nil {
			return nil, err
		}
		ty, err := resolveTy(e.Type, nil)
		if err != nil {
			return nil, err
		}
		return core.Ann{Term: term, Type: ty}, nil
	case ast.TypeApp:
		term, err := resolveTerm(e.Term, names)
		if err != nil {
			return nil, err
		}
		ty, err := resolveTy(e.Type, nil)
		if err != nil {
			return nil, err
		}
		return core.TypeApp{Term: term, Type: ty}, nil
	default:
		return nil, fmt.Errorf("resolve: unrecognized term node %T", t)
	}
}

func resolveTy(t ast.Ty, names []string) (core.Ty, error) {
	switch e := t.(type) {
	case ast.TyUnit:
		return core.TUnit{}, nil
	case ast.TyBool:
		return core.TBool{}, nil
	case ast.TyVar:
		idx := indexOf(names, e.Name)
		if idx < 0 {
			return nil, &Error{Name: "'" + e.Name, Pos: e.Pos}
		}
		return core.TUVar{Index: idx}, nil
	case ast.TyArrow:
		from, err := resolveTy(e.From, names)
		if err != nil {
			return nil, err
		}
		to, err := resolveTy(e.To, names)
		if err != nil {
			return nil, err
		}
		return core.TArrow{From: from, To: to}, nil
	case ast.TyForall:
		body, err := resolveTy(e.Body, append([]string{e.Name}, names...))
		if err != nil {
			return nil, err
		}
		return core.TForall{Body: body}, nil
	default:
		return nil, fmt.Errorf("resolve: unrecognized type node %T", t)
	}
}

// indexOf returns the De Bruijn index of name in names (0 = most recently
// bound, i.e. names[0]), or -1 if absent.
func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
