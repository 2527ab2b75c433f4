package types

import (
	"fmt"

	"github.com/polylambda/bidipoly/internal/core"
)

// EntryKind distinguishes the five kinds of ordered context entries
// (spec.md §3.3).
type EntryKind int

const (
	// EntryUVar is a fresh universal variable brought into scope.
	EntryUVar EntryKind = iota
	// EntryUnsolved is a metavariable awaiting a solution.
	EntryUnsolved
	// EntryMarker is a scope marker tied to an existential identity.
	EntryMarker
	// EntrySolved is a metavariable solved to a monotype.
	EntrySolved
	// EntryTermVar is a term variable typing.
	EntryTermVar
)

// Entry is one element of the ordered algorithmic context. Only the fields
// relevant to its Kind are meaningful.
type Entry struct {
	Kind  EntryKind
	EVar  int     // EntryUnsolved, EntryMarker, EntrySolved
	Solved core.Ty // EntrySolved
	Term   core.Ty // EntryTermVar
}

func (e Entry) String() string {
	switch e.Kind {
	case EntryUVar:
		return "uvar"
	case EntryUnsolved:
		return fmt.Sprintf("?%d", e.EVar)
	case EntryMarker:
		return fmt.Sprintf(">?%d", e.EVar)
	case EntrySolved:
		return fmt.Sprintf("?%d = %s", e.EVar, e.Solved)
	case EntryTermVar:
		return fmt.Sprintf("x : %s", e.Term)
	default:
		return "?"
	}
}

// Ctx is the ordered algorithmic context Γ (spec.md §3.3), represented as a
// mutable slice of entries plus a monotonically increasing existential
// counter, matching the Rust reference's TyCtxt (ctx.rs).
//
// Entries to the right may depend on entries to the left; truncation
// ("dropAfter*") discards a suffix and restores an earlier typing state.
type Ctx struct {
	entries   []Entry
	freshEVar int
	tracer    Tracer
}

// NewCtx returns an empty context with a silent tracer.
func NewCtx() *Ctx {
	return &Ctx{tracer: noopTracer{}}
}

// SetTracer installs a Tracer; pass nil to silence tracing again.
func (c *Ctx) SetTracer(t Tracer) {
	if t == nil {
		t = noopTracer{}
	}
	c.tracer = t
}

func (c *Ctx) trace(op, detail string) {
	c.tracer.Trace(op, detail)
}

// Clear empties the context and resets the existential counter, as the
// reference driver does between top-level judgments (spec.md §5).
func (c *Ctx) Clear() {
	c.trace("ctx/clear", "")
	c.entries = nil
	c.freshEVar = 0
}

// FreshEVar returns and increments the internal counter.
func (c *Ctx) FreshEVar() int {
	id := c.freshEVar
	c.freshEVar++
	c.trace("ctx/fresh_evar", fmt.Sprintf("%d", id))
	return id
}

// AddUVar appends a UVar entry.
func (c *Ctx) AddUVar() {
	c.trace("ctx/add_uvar", "")
	c.entries = append(c.entries, Entry{Kind: EntryUVar})
}

// AddUnsolved appends an unsolved EVar α entry.
func (c *Ctx) AddUnsolved(alpha int) {
	c.trace("ctx/add_unsolved", fmt.Sprintf("%d", alpha))
	c.entries = append(c.entries, Entry{Kind: EntryUnsolved, EVar: alpha})
}

// AddMarker appends a Marker α entry.
func (c *Ctx) AddMarker(alpha int) {
	c.trace("ctx/add_marker", fmt.Sprintf("%d", alpha))
	c.entries = append(c.entries, Entry{Kind: EntryMarker, EVar: alpha})
}

// AddSolved appends a Solved α ↦ τ entry.
func (c *Ctx) AddSolved(alpha int, ty core.Ty) {
	c.trace("ctx/add_solved", fmt.Sprintf("%d = %s", alpha, ty))
	c.entries = append(c.entries, Entry{Kind: EntrySolved, EVar: alpha, Solved: ty})
}

// AddTermVar appends a TermVar T entry.
func (c *Ctx) AddTermVar(ty core.Ty) {
	c.trace("ctx/add_term_var", ty.String())
	c.entries = append(c.entries, Entry{Kind: EntryTermVar, Term: ty})
}

// GetUVar returns the De Bruijn depth-th-from-the-right UVar entry's index
// into entries, counting matching entries from the right (0 = most recently
// added), or ok=false if idx is out of range.
func (c *Ctx) GetUVar(idx int) (pos int, ok bool) {
	seen := 0
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Kind == EntryUVar {
			if seen == idx {
				return i, true
			}
			seen++
		}
	}
	return 0, false
}

// GetTermVar returns the type recorded for the idx-th-from-the-right
// TermVar, or ok=false if out of range.
func (c *Ctx) GetTermVar(idx int) (ty core.Ty, ok bool) {
	seen := 0
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Kind == EntryTermVar {
			if seen == idx {
				return c.entries[i].Term, true
			}
			seen++
		}
	}
	return nil, false
}

// getTermVarPos mirrors GetTermVar but returns the entries index, used by
// DropAfterTermVar.
func (c *Ctx) getTermVarPos(idx int) (pos int, ok bool) {
	seen := 0
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Kind == EntryTermVar {
			if seen == idx {
				return i, true
			}
			seen++
		}
	}
	return 0, false
}

// ContainsUVar reports whether a UVar at De Bruijn index idx exists.
func (c *Ctx) ContainsUVar(idx int) bool {
	_, ok := c.GetUVar(idx)
	return ok
}

// ContainsEVar reports whether existential identity alpha appears as an
// unsolved, marked, or solved entry.
func (c *Ctx) ContainsEVar(alpha int) bool {
	for _, e := range c.entries {
		switch e.Kind {
		case EntryUnsolved, EntryMarker, EntrySolved:
			if e.EVar == alpha {
				return true
			}
		}
	}
	return false
}

// getUnsolvedPos finds the entries index of the unsolved EVar α entry.
func (c *Ctx) getUnsolvedPos(alpha int) (int, bool) {
	for i, e := range c.entries {
		if e.Kind == EntryUnsolved && e.EVar == alpha {
			return i, true
		}
	}
	return 0, false
}

// Solve replaces the existing unsolved EVar α entry in place with
// Solved α ↦ ty. Returns false if α is not present unsolved.
func (c *Ctx) Solve(alpha int, ty core.Ty) bool {
	pos, ok := c.getUnsolvedPos(alpha)
	if !ok {
		c.trace("ctx/solve", fmt.Sprintf("%d: missing", alpha))
		return false
	}
	c.entries[pos] = Entry{Kind: EntrySolved, EVar: alpha, Solved: ty}
	c.trace("ctx/solve", fmt.Sprintf("%d = %s", alpha, ty))
	return true
}

// InsertBeforeEVar inserts an unsolved EVar β immediately left of the
// unsolved EVar α entry. Returns false if α is absent.
func (c *Ctx) InsertBeforeEVar(alpha, beta int) bool {
	pos, ok := c.getUnsolvedPos(alpha)
	if !ok {
		c.trace("ctx/insert_before_evar", fmt.Sprintf("%d: missing", alpha))
		return false
	}
	c.entries = append(c.entries, Entry{})
	copy(c.entries[pos+1:], c.entries[pos:])
	c.entries[pos] = Entry{Kind: EntryUnsolved, EVar: beta}
	c.trace("ctx/insert_before_evar", fmt.Sprintf("%d before %d", beta, alpha))
	return true
}

// DropAfterMarker truncates the context so that Marker α is the last entry
// removed (the marker itself is dropped). Returns false if the marker is
// absent.
func (c *Ctx) DropAfterMarker(alpha int) bool {
	for i, e := range c.entries {
		if e.Kind == EntryMarker && e.EVar == alpha {
			c.entries = c.entries[:i]
			c.trace("ctx/drop_after_marker", fmt.Sprintf("%d", alpha))
			return true
		}
	}
	c.trace("ctx/drop_after_marker", fmt.Sprintf("%d: missing", alpha))
	return false
}

// DropAfterUVar truncates so that the idx-th most recent UVar and everything
// after it is removed.
func (c *Ctx) DropAfterUVar(idx int) bool {
	pos, ok := c.GetUVar(idx)
	if !ok {
		c.trace("ctx/drop_after_uvar", fmt.Sprintf("%d: missing", idx))
		return false
	}
	c.entries = c.entries[:pos]
	c.trace("ctx/drop_after_uvar", fmt.Sprintf("%d", idx))
	return true
}

// DropAfterTermVar truncates so that the idx-th most recent TermVar and
// everything after it is removed.
func (c *Ctx) DropAfterTermVar(idx int) bool {
	pos, ok := c.getTermVarPos(idx)
	if !ok {
		c.trace("ctx/drop_after_term_var", fmt.Sprintf("%d: missing", idx))
		return false
	}
	c.entries = c.entries[:pos]
	c.trace("ctx/drop_after_term_var", fmt.Sprintf("%d", idx))
	return true
}

// GetSolved returns a snapshot mapping existential identity to solution.
func (c *Ctx) GetSolved() map[int]core.Ty {
	out := make(map[int]core.Ty)
	for _, e := range c.entries {
		if e.Kind == EntrySolved {
			out[e.EVar] = e.Solved
		}
	}
	return out
}

// PrefixView is a read-only view of a prefix of the context, used for scoped
// well-formedness checks (spec.md §4.2's prefixBefore).
type PrefixView struct {
	entries []Entry
}

// ContainsEVar reports whether alpha is unsolved, marked, or solved within
// the view.
func (v PrefixView) ContainsEVar(alpha int) bool {
	for _, e := range v.entries {
		switch e.Kind {
		case EntryUnsolved, EntryMarker, EntrySolved:
			if e.EVar == alpha {
				return true
			}
		}
	}
	return false
}

// ContainsUVar reports whether a UVar at De Bruijn index idx exists within
// the view.
func (v PrefixView) ContainsUVar(idx int) bool {
	seen := 0
	for i := len(v.entries) - 1; i >= 0; i-- {
		if v.entries[i].Kind == EntryUVar {
			if seen == idx {
				return true
			}
			seen++
		}
	}
	return false
}

// PrefixBefore returns the prefix of the context strictly left of the entry
// for existential identity alpha (unsolved, marker, or solved), or ok=false
// if alpha does not appear.
func (c *Ctx) PrefixBefore(alpha int) (PrefixView, bool) {
	for i, e := range c.entries {
		switch e.Kind {
		case EntryUnsolved, EntryMarker, EntrySolved:
			if e.EVar == alpha {
				return PrefixView{entries: c.entries[:i]}, true
			}
		}
	}
	return PrefixView{}, false
}

// Full returns a PrefixView over the entire live context, for callers (like
// Infer's Ann rule) that need well-formedness against all of Γ.
func (c *Ctx) Full() PrefixView {
	return PrefixView{entries: c.entries}
}

// Len reports the number of live entries, for tests asserting context shape.
func (c *Ctx) Len() int {
	return len(c.entries)
}

// Snapshot deep-copies the context so a caller can attempt a fallible
// operation and restore on failure (spec.md §5).
func (c *Ctx) Snapshot() *Ctx {
	cp := make([]Entry, len(c.entries))
	copy(cp, c.entries)
	return &Ctx{entries: cp, freshEVar: c.freshEVar, tracer: c.tracer}
}

// Restore replaces this context's state with that of a prior Snapshot.
func (c *Ctx) Restore(snap *Ctx) {
	c.entries = snap.entries
	c.freshEVar = snap.freshEVar
}
