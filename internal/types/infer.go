package types

import "github.com/polylambda/bidipoly/internal/core"

// Infer implements Γ ⊢ e ⇒ T ⊣ Γ' (spec.md §4.3), one rule per term shape.
// On success the returned type is valid in the mutated ctx; callers that need
// a final, closed answer still owe it a SubstContext pass.
func Infer(ctx *Ctx, term core.Term) (core.Ty, error) {
	ctx.trace("infer/enter", term.String())

	switch e := term.(type) {
	case core.Unit:
		return core.TUnit{}, nil

	case core.Bool:
		return core.TBool{}, nil

	case core.Var:
		ty, ok := ctx.GetTermVar(e.Index)
		if !ok {
			return nil, errUnboundVar(e.Index)
		}
		return ty, nil

	case core.Ann:
		if !WellFormed(e.Type, ctx) {
			return nil, errIllFormedAnnotation(e.Type)
		}
		if err := Check(ctx, e.Term, e.Type); err != nil {
			return nil, err
		}
		return e.Type, nil

	case core.Lambda:
		alpha := ctx.FreshEVar()
		beta := ctx.FreshEVar()
		ctx.AddUnsolved(alpha)
		ctx.AddUnsolved(beta)
		ctx.AddTermVar(core.TEVar{Id: alpha})
		if err := Check(ctx, e.Body, core.TEVar{Id: beta}); err != nil {
			return nil, err
		}
		ctx.DropAfterTermVar(0)
		return core.TArrow{From: core.TEVar{Id: alpha}, To: core.TEVar{Id: beta}}, nil

	case core.App:
		fTy, err := Infer(ctx, e.Func)
		if err != nil {
			return nil, err
		}
		fTy = SubstContext(fTy, ctx)
		return InferApplication(ctx, fTy, e.Arg)

	case core.TypeApp:
		fTy, err := Infer(ctx, e.Term)
		if err != nil {
			return nil, err
		}
		if !IsMonotype(e.Type) {
			return nil, errIllFormedAnnotation(e.Type)
		}
		if !WellFormedMono(e.Type, ctx.Full()) {
			return nil, errIllFormedAnnotation(e.Type)
		}
		forall, ok := fTy.(core.TForall)
		if !ok {
			return nil, errNotPolymorphic(fTy)
		}
		return SubstOuterUVar(forall.Body, e.Type), nil

	default:
		return nil, newErr(UnboundVar, "unrecognized term node %T", term)
	}
}

// Check implements Γ ⊢ e ⇐ T ⊣ Γ' (spec.md §4.3), tried in order of
// specificity before falling back to infer-then-subtype.
func Check(ctx *Ctx, term core.Term, ty core.Ty) error {
	ctx.trace("check/enter", term.String()+" <= "+ty.String())

	switch t := ty.(type) {
	case core.TForall:
		ctx.AddUVar()
		if err := Check(ctx, term, t.Body); err != nil {
			return err
		}
		ctx.DropAfterUVar(0)
		return nil
	}

	if lam, isLambda := term.(core.Lambda); isLambda {
		if arrow, isArrow := ty.(core.TArrow); isArrow {
			ctx.AddTermVar(arrow.From)
			if err := Check(ctx, lam.Body, arrow.To); err != nil {
				return err
			}
			ctx.DropAfterTermVar(0)
			return nil
		}
	}

	a, err := Infer(ctx, term)
	if err != nil {
		return err
	}
	a = SubstContext(a, ctx)
	b := SubstContext(ty, ctx)
	return Subtype(ctx, a, b)
}

// InferApplication implements Γ ⊢ F • x ⇒⇒ T ⊣ Γ' (spec.md §4.3): F is a
// function type already substituted under the current context.
func InferApplication(ctx *Ctx, f core.Ty, arg core.Term) (core.Ty, error) {
	ctx.trace("infer_application/enter", f.String())

	switch ft := f.(type) {
	case core.TForall:
		alpha := ctx.FreshEVar()
		ctx.AddUnsolved(alpha)
		body := SubstOuterUVar(ft.Body, core.TEVar{Id: alpha})
		return InferApplication(ctx, body, arg)

	case core.TEVar:
		if !ctx.ContainsEVar(ft.Id) {
			return nil, errExistentialOutOfScope(ft.Id)
		}
		alpha1 := ctx.FreshEVar()
		alpha2 := ctx.FreshEVar()
		if !ctx.InsertBeforeEVar(ft.Id, alpha2) {
			return nil, errExistentialOutOfScope(ft.Id)
		}
		if !ctx.InsertBeforeEVar(ft.Id, alpha1) {
			return nil, errExistentialOutOfScope(ft.Id)
		}
		ctx.Solve(ft.Id, core.TArrow{From: core.TEVar{Id: alpha1}, To: core.TEVar{Id: alpha2}})
		if err := Check(ctx, arg, core.TEVar{Id: alpha1}); err != nil {
			return nil, err
		}
		return core.TEVar{Id: alpha2}, nil

	case core.TArrow:
		if err := Check(ctx, arg, ft.From); err != nil {
			return nil, err
		}
		return ft.To, nil

	default:
		return nil, errNotAFunction(f)
	}
}
