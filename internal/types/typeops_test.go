package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/polylambda/bidipoly/internal/core"
)

func TestIsMonotype(t *testing.T) {
	assert.True(t, IsMonotype(core.TArrow{From: core.TBool{}, To: core.TUnit{}}))
	assert.False(t, IsMonotype(core.TForall{Body: core.TUVar{Index: 0}}))
	assert.False(t, IsMonotype(core.TArrow{From: core.TForall{Body: core.TBool{}}, To: core.TUnit{}}))
}

func TestHasAnyEVar(t *testing.T) {
	assert.False(t, HasAnyEVar(core.TArrow{From: core.TBool{}, To: core.TUnit{}}))
	assert.True(t, HasAnyEVar(core.TEVar{Id: 0}))
	assert.True(t, HasAnyEVar(core.TArrow{From: core.TEVar{Id: 1}, To: core.TBool{}}))
	assert.True(t, HasAnyEVar(core.TForall{Body: core.TEVar{Id: 2}}))
}

func TestSubstContextFixedPoint(t *testing.T) {
	ctx := NewCtx()
	a := ctx.FreshEVar()
	ctx.AddUnsolved(a)
	b := ctx.FreshEVar()
	ctx.AddUnsolved(b)

	// a solves to b, b solves to Bool; substContext must chase the chain.
	ctx.Solve(a, core.TEVar{Id: b})
	ctx.Solve(b, core.TBool{})

	got := SubstContext(core.TEVar{Id: a}, ctx)
	assert.Equal(t, core.TBool{}, got)
}

func TestSubstOuterUVarDoesNotCaptureInnerForall(t *testing.T) {
	// forall. (0 -> forall. 0)  with outer UVar{0} replaced by Bool
	body := core.TArrow{
		From: core.TUVar{Index: 0},
		To:   core.TForall{Body: core.TUVar{Index: 0}},
	}
	got := SubstOuterUVar(body, core.TBool{})
	want := core.TArrow{
		From: core.TBool{},
		To:   core.TForall{Body: core.TUVar{Index: 0}},
	}
	assert.True(t, got.Equals(want), "got %s, want %s", got, want)
}

func TestWellFormedMono(t *testing.T) {
	ctx := NewCtx()
	a := ctx.FreshEVar()
	ctx.AddUnsolved(a)

	assert.True(t, WellFormedMono(core.TEVar{Id: a}, ctx.Full()))
	assert.False(t, WellFormedMono(core.TEVar{Id: a + 1}, ctx.Full()))
	assert.False(t, WellFormedMono(core.TForall{Body: core.TBool{}}, ctx.Full()))
}

func TestWellFormedPermitsForall(t *testing.T) {
	ctx := NewCtx()
	assert.True(t, WellFormed(core.TForall{Body: core.TUVar{Index: 0}}, ctx))
	assert.False(t, WellFormed(core.TUVar{Index: 0}, ctx))
}

func TestSubstContextStructuralDiffOnArrowOfExistentials(t *testing.T) {
	ctx := NewCtx()
	a := ctx.FreshEVar()
	ctx.AddUnsolved(a)
	b := ctx.FreshEVar()
	ctx.AddUnsolved(b)
	ctx.Solve(a, core.TBool{})
	ctx.Solve(b, core.TUnit{})

	got := SubstContext(core.TArrow{From: core.TEVar{Id: a}, To: core.TEVar{Id: b}}, ctx)
	want := core.TArrow{From: core.TBool{}, To: core.TUnit{}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected substituted type (-want +got):\n%s", diff)
	}
}
