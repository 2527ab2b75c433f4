package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polylambda/bidipoly/internal/core"
)

func TestCtxUVarScoping(t *testing.T) {
	ctx := NewCtx()
	ctx.AddUVar()
	ctx.AddUVar()

	assert.True(t, ctx.ContainsUVar(0))
	assert.True(t, ctx.ContainsUVar(1))
	assert.False(t, ctx.ContainsUVar(2))

	require.True(t, ctx.DropAfterUVar(0))
	assert.True(t, ctx.ContainsUVar(0))
	assert.False(t, ctx.ContainsUVar(1))
}

func TestCtxSolveAndGetSolved(t *testing.T) {
	ctx := NewCtx()
	alpha := ctx.FreshEVar()
	ctx.AddUnsolved(alpha)

	require.True(t, ctx.Solve(alpha, core.TBool{}))
	solved := ctx.GetSolved()
	require.Contains(t, solved, alpha)
	assert.Equal(t, core.TBool{}, solved[alpha])
}

func TestCtxSolveMissingEVarFails(t *testing.T) {
	ctx := NewCtx()
	assert.False(t, ctx.Solve(42, core.TUnit{}))
}

func TestCtxInsertBeforeEVarPreservesOrder(t *testing.T) {
	ctx := NewCtx()
	a1 := ctx.FreshEVar()
	ctx.AddUnsolved(a1)

	a2 := ctx.FreshEVar()
	require.True(t, ctx.InsertBeforeEVar(a1, a2))

	prefix, ok := ctx.PrefixBefore(a1)
	require.True(t, ok)
	assert.True(t, prefix.ContainsEVar(a2))
}

func TestCtxDropAfterMarker(t *testing.T) {
	ctx := NewCtx()
	marker := ctx.FreshEVar()
	ctx.AddMarker(marker)
	inner := ctx.FreshEVar()
	ctx.AddUnsolved(inner)

	require.True(t, ctx.ContainsEVar(inner))
	require.True(t, ctx.DropAfterMarker(marker))
	assert.False(t, ctx.ContainsEVar(marker))
	assert.False(t, ctx.ContainsEVar(inner))
}

func TestCtxDropAfterTermVar(t *testing.T) {
	ctx := NewCtx()
	ctx.AddTermVar(core.TBool{})
	ctx.AddTermVar(core.TUnit{})

	ty, ok := ctx.GetTermVar(0)
	require.True(t, ok)
	assert.Equal(t, core.TUnit{}, ty)

	require.True(t, ctx.DropAfterTermVar(1))
	_, ok = ctx.GetTermVar(0)
	assert.False(t, ok)
}

func TestCtxSnapshotRestore(t *testing.T) {
	ctx := NewCtx()
	ctx.AddUVar()
	snap := ctx.Snapshot()

	ctx.AddUVar()
	assert.Equal(t, 2, ctx.Len())

	ctx.Restore(snap)
	assert.Equal(t, 1, ctx.Len())
}

func TestCtxClearResetsCounterAndEntries(t *testing.T) {
	ctx := NewCtx()
	ctx.AddUVar()
	first := ctx.FreshEVar()

	ctx.Clear()
	assert.Equal(t, 0, ctx.Len())
	assert.Equal(t, first, ctx.FreshEVar())
}
