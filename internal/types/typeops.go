package types

import "github.com/polylambda/bidipoly/internal/core"

// IsMonotype reports whether ty contains no Forall (spec.md §4.1).
func IsMonotype(ty core.Ty) bool {
	switch t := ty.(type) {
	case core.TUnit, core.TBool, core.TUVar, core.TEVar:
		return true
	case core.TArrow:
		return IsMonotype(t.From) && IsMonotype(t.To)
	case core.TForall:
		return false
	default:
		return true
	}
}

// ContainsEVar is the structural occurs check: does ty mention the
// existential identity alpha anywhere?
func ContainsEVar(ty core.Ty, alpha int) bool {
	switch t := ty.(type) {
	case core.TUnit, core.TBool, core.TUVar:
		return false
	case core.TEVar:
		return t.Id == alpha
	case core.TArrow:
		return ContainsEVar(t.From, alpha) || ContainsEVar(t.To, alpha)
	case core.TForall:
		return ContainsEVar(t.Body, alpha)
	default:
		return false
	}
}

// HasAnyEVar reports whether ty mentions an existential variable anywhere.
// Called on a type after SubstContext, a surviving TEVar is by construction
// unsolved — this is how the driver enforces spec.md §8's acceptance policy
// of rejecting top-level results with residual existentials.
func HasAnyEVar(ty core.Ty) bool {
	switch t := ty.(type) {
	case core.TUnit, core.TBool, core.TUVar:
		return false
	case core.TEVar:
		return true
	case core.TArrow:
		return HasAnyEVar(t.From) || HasAnyEVar(t.To)
	case core.TForall:
		return HasAnyEVar(t.Body)
	default:
		return false
	}
}

// containsAnyEVar reports whether ty mentions any existential identity that
// is a key of solved (used to drive substContext to a fixed point).
func containsAnyEVar(ty core.Ty, solved map[int]core.Ty) bool {
	switch t := ty.(type) {
	case core.TUnit, core.TBool, core.TUVar:
		return false
	case core.TEVar:
		_, ok := solved[t.Id]
		return ok
	case core.TArrow:
		return containsAnyEVar(t.From, solved) || containsAnyEVar(t.To, solved)
	case core.TForall:
		return containsAnyEVar(t.Body, solved)
	default:
		return false
	}
}

// SubstContext replaces every EVar in ty for which Γ holds a Solved entry by
// the recorded monotype, transitively, until a fixed point — solutions may
// themselves mention existentials solved later in Γ (spec.md §4.1).
func SubstContext(ty core.Ty, ctx *Ctx) core.Ty {
	solved := ctx.GetSolved()
	cur := ty
	for containsAnyEVar(cur, solved) {
		cur = substContextOnce(cur, solved)
	}
	return cur
}

func substContextOnce(ty core.Ty, solved map[int]core.Ty) core.Ty {
	switch t := ty.(type) {
	case core.TUnit, core.TBool, core.TUVar:
		return ty
	case core.TEVar:
		if s, ok := solved[t.Id]; ok {
			return s
		}
		return ty
	case core.TArrow:
		return core.TArrow{
			From: substContextOnce(t.From, solved),
			To:   substContextOnce(t.To, solved),
		}
	case core.TForall:
		return core.TForall{Body: substContextOnce(t.Body, solved)}
	default:
		return ty
	}
}

// SubstOuterUVar takes the body of an outer Forall and replaces its De
// Bruijn UVar{0} with with, descending under inner Foralls (incrementing the
// target depth so an inner UVar{0} is not captured) and re-wrapping them
// unchanged otherwise (spec.md §4.1).
func SubstOuterUVar(body core.Ty, with core.Ty) core.Ty {
	return substOuterUVarAt(body, with, 0)
}

func substOuterUVarAt(ty core.Ty, with core.Ty, depth int) core.Ty {
	switch t := ty.(type) {
	case core.TUnit, core.TBool, core.TEVar:
		return ty
	case core.TUVar:
		if t.Index == depth {
			return with
		}
		return ty
	case core.TArrow:
		return core.TArrow{
			From: substOuterUVarAt(t.From, with, depth),
			To:   substOuterUVarAt(t.To, with, depth),
		}
	case core.TForall:
		return core.TForall{Body: substOuterUVarAt(t.Body, with, depth+1)}
	default:
		return ty
	}
}

// WellFormedMono reports whether ty is a monotype well-formed in the given
// prefix: every EVar occurs in the prefix and every UVar refers to a UVar
// entry in the prefix. Forall is never well-formed as a monotype.
func WellFormedMono(ty core.Ty, prefix PrefixView) bool {
	switch t := ty.(type) {
	case core.TUnit, core.TBool:
		return true
	case core.TUVar:
		return prefix.ContainsUVar(t.Index)
	case core.TForall:
		return false
	case core.TEVar:
		return prefix.ContainsEVar(t.Id)
	case core.TArrow:
		return WellFormedMono(t.From, prefix) && WellFormedMono(t.To, prefix)
	default:
		return false
	}
}

// WellFormed is like WellFormedMono but permits Foralls, counting them
// toward the UVar depth as it descends.
func WellFormed(ty core.Ty, ctx *Ctx) bool {
	return wellFormedAt(ty, ctx, 0)
}

func wellFormedAt(ty core.Ty, ctx *Ctx, depth int) bool {
	switch t := ty.(type) {
	case core.TUnit, core.TBool:
		return true
	case core.TUVar:
		return t.Index < depth || ctx.ContainsUVar(t.Index-depth)
	case core.TForall:
		return wellFormedAt(t.Body, ctx, depth+1)
	case core.TEVar:
		return ctx.ContainsEVar(t.Id)
	case core.TArrow:
		return wellFormedAt(t.From, ctx, depth) && wellFormedAt(t.To, ctx, depth)
	default:
		return false
	}
}
