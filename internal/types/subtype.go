package types

import "github.com/polylambda/bidipoly/internal/core"

// Subtype implements the algorithmic subtyping judgment Γ ⊢ A <: B, mutating
// ctx in place (spec.md §4.4). It is a direct port of the Rust reference's
// subtype (typeck/subtyping.rs), case for case and in the same order.
func Subtype(ctx *Ctx, a, b core.Ty) error {
	ctx.trace("subtype/enter", a.String()+" <: "+b.String())

	switch at := a.(type) {
	case core.TUVar:
		if bt, ok := b.(core.TUVar); ok && at.Index == bt.Index && ctx.ContainsUVar(at.Index) {
			return nil
		}
	case core.TUnit:
		if _, ok := b.(core.TUnit); ok {
			return nil
		}
	case core.TBool:
		if _, ok := b.(core.TBool); ok {
			return nil
		}
	case core.TEVar:
		if bt, ok := b.(core.TEVar); ok && at.Id == bt.Id && ctx.ContainsEVar(at.Id) {
			return nil
		}
	}

	switch at := a.(type) {
	case core.TArrow:
		bt, ok := b.(core.TArrow)
		if ok {
			if err := Subtype(ctx, bt.From, at.From); err != nil {
				return err
			}
			a2 := SubstContext(at.To, ctx)
			b2 := SubstContext(bt.To, ctx)
			return Subtype(ctx, a2, b2)
		}
	case core.TForall:
		// <:∀L
		evar := ctx.FreshEVar()
		ctx.AddMarker(evar)
		ctx.AddUnsolved(evar)
		body := SubstOuterUVar(at.Body, core.TEVar{Id: evar})
		if err := Subtype(ctx, body, b); err != nil {
			return err
		}
		if !ctx.DropAfterMarker(evar) {
			return errExistentialOutOfScope(evar)
		}
		return nil
	}

	if bf, ok := b.(core.TForall); ok {
		// <:∀R
		ctx.AddUVar()
		if err := Subtype(ctx, a, bf.Body); err != nil {
			return err
		}
		ctx.DropAfterUVar(0)
		return nil
	}

	if av, ok := a.(core.TEVar); ok {
		if _, isForall := b.(core.TForall); !isForall {
			if ContainsEVar(b, av.Id) {
				return errOccursCheck(av.Id, b)
			}
			return InstantiateLeft(ctx, av.Id, b)
		}
	}

	if bv, ok := b.(core.TEVar); ok {
		if _, isForall := a.(core.TForall); !isForall {
			if ContainsEVar(a, bv.Id) {
				return errOccursCheck(bv.Id, a)
			}
			return InstantiateRight(ctx, a, bv.Id)
		}
	}

	return errSubtypeFail(a, b)
}

// InstantiateLeft implements Γ ⊢ α̂ :<= A (spec.md §4.5), solving or refining
// α̂ so that it becomes a subtype of A.
func InstantiateLeft(ctx *Ctx, alpha int, ty core.Ty) error {
	ctx.trace("inst_left/enter", ty.String())
	if !ctx.ContainsEVar(alpha) {
		return errExistentialOutOfScope(alpha)
	}

	if prefix, ok := ctx.PrefixBefore(alpha); ok && WellFormedMono(ty, prefix) {
		ctx.Solve(alpha, ty)
		return nil
	}

	switch t := ty.(type) {
	case core.TEVar:
		if !ctx.ContainsEVar(t.Id) {
			return errExistentialOutOfScope(t.Id)
		}
		ctx.Solve(t.Id, core.TEVar{Id: alpha})
		return nil
	case core.TArrow:
		alpha2 := ctx.FreshEVar()
		alpha1 := ctx.FreshEVar()
		if !ctx.InsertBeforeEVar(alpha, alpha2) {
			return errExistentialOutOfScope(alpha)
		}
		if !ctx.InsertBeforeEVar(alpha, alpha1) {
			return errExistentialOutOfScope(alpha)
		}
		ctx.Solve(alpha, core.TArrow{From: core.TEVar{Id: alpha1}, To: core.TEVar{Id: alpha2}})
		if err := InstantiateRight(ctx, t.From, alpha1); err != nil {
			return err
		}
		to := SubstContext(t.To, ctx)
		return InstantiateLeft(ctx, alpha2, to)
	case core.TForall:
		ctx.AddUVar()
		if err := InstantiateLeft(ctx, alpha, t.Body); err != nil {
			return err
		}
		ctx.DropAfterUVar(0)
		return nil
	default:
		return errSubtypeFail(core.TEVar{Id: alpha}, ty)
	}
}

// InstantiateRight implements Γ ⊢ A =<: α̂ (spec.md §4.5), solving or
// refining α̂ so that A becomes a subtype of it.
func InstantiateRight(ctx *Ctx, ty core.Ty, alpha int) error {
	ctx.trace("inst_right/enter", ty.String())
	if !ctx.ContainsEVar(alpha) {
		return errExistentialOutOfScope(alpha)
	}

	if prefix, ok := ctx.PrefixBefore(alpha); ok && WellFormedMono(ty, prefix) {
		ctx.Solve(alpha, ty)
		return nil
	}

	switch t := ty.(type) {
	case core.TEVar:
		if !ctx.ContainsEVar(t.Id) {
			return errExistentialOutOfScope(t.Id)
		}
		ctx.Solve(t.Id, core.TEVar{Id: alpha})
		return nil
	case core.TArrow:
		alpha2 := ctx.FreshEVar()
		alpha1 := ctx.FreshEVar()
		if !ctx.InsertBeforeEVar(alpha, alpha2) {
			return errExistentialOutOfScope(alpha)
		}
		if !ctx.InsertBeforeEVar(alpha, alpha1) {
			return errExistentialOutOfScope(alpha)
		}
		ctx.Solve(alpha, core.TArrow{From: core.TEVar{Id: alpha1}, To: core.TEVar{Id: alpha2}})
		if err := InstantiateLeft(ctx, alpha1, t.From); err != nil {
			return err
		}
		to := SubstContext(t.To, ctx)
		return InstantiateRight(ctx, to, alpha2)
	case core.TForall:
		beta := ctx.FreshEVar()
		ctx.AddMarker(beta)
		ctx.AddUnsolved(beta)
		body := SubstOuterUVar(t.Body, core.TEVar{Id: beta})
		if err := InstantiateRight(ctx, body, alpha); err != nil {
			return err
		}
		if !ctx.DropAfterMarker(beta) {
			return errExistentialOutOfScope(beta)
		}
		return nil
	default:
		return errSubtypeFail(ty, core.TEVar{Id: alpha})
	}
}
