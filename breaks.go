package textcluster

import (
	"github.com/clipperhouse/textcluster/category"
	"github.com/clipperhouse/textcluster/state"
)

// Breaks is a forward boundary cursor over a code-unit slice. Repeated
// calls to NextBreak yield strictly increasing boundary indices in
// [cursor, end], then -1 forever after.
type Breaks struct {
	units  []uint16
	cursor int
	end    int
	state  state.State
	done   bool
}

// NewBreaks starts a forward cursor at cursor, scanning to end, with the
// given initial state (state.SoT for a true start of text, state.SoTNoBreak
// to resume without reporting a boundary at cursor).
func NewBreaks(units []uint16, cursor, end int, initial state.State) *Breaks {
	return &Breaks{units: units, cursor: cursor, end: end, state: initial}
}

// Copy returns an independent cursor with identical state.
func (b *Breaks) Copy() *Breaks {
	cp := *b
	return &cp
}

// Cursor reports the current code-unit position.
func (b *Breaks) Cursor() int { return b.cursor }

// State reports the current automaton state.
func (b *Breaks) State() state.State { return b.state }

// NextBreak advances the cursor to the next boundary, or returns -1 once
// every boundary through end has been reported.
func (b *Breaks) NextBreak() int {
	if b.done {
		return -1
	}
	for {
		if b.cursor >= b.end {
			final := state.Forward(b.state, category.EoT)
			b.state = final
			b.done = true
			if !final.HasNoBreak() {
				return b.cursor
			}
			return -1
		}

		breakAt := b.cursor
		c, n := decodeForward(b.units, b.cursor, b.end)
		b.cursor += n
		b.state = state.Forward(b.state, c)
		if !b.state.HasNoBreak() {
			return breakAt
		}
	}
}

// BackBreaks is a backward boundary cursor over a code-unit slice.
// Repeated calls to NextBreak yield strictly decreasing boundary indices in
// [start, cursor], then -1 forever after.
type BackBreaks struct {
	units  []uint16
	cursor int
	start  int
	state  state.State
	done   bool
}

// NewBackBreaks starts a backward cursor at cursor, scanning down to
// start, with the given initial state (state.SoT for a true end of text,
// state.SoTNoBreak to resume without reporting a boundary at cursor).
func NewBackBreaks(units []uint16, cursor, start int, initial state.State) *BackBreaks {
	return &BackBreaks{units: units, cursor: cursor, start: start, state: initial}
}

// Copy returns an independent cursor with identical state.
func (b *BackBreaks) Copy() *BackBreaks {
	cp := *b
	return &cp
}

// Cursor reports the current code-unit position.
func (b *BackBreaks) Cursor() int { return b.cursor }

// State reports the current automaton state.
func (b *BackBreaks) State() state.State { return b.state }

// NextBreak retreats the cursor to the previous boundary, or returns -1
// once every boundary down to start has been reported.
func (b *BackBreaks) NextBreak() int {
	if b.done {
		return -1
	}
	for {
		if b.cursor <= b.start {
			final := state.Backward(b.state, category.EoT)
			b.state = final
			b.done = true
			if !final.HasNoBreak() {
				return b.cursor
			}
			return -1
		}

		breakAt := b.cursor
		c, n := decodeBackward(b.units, b.cursor, b.start)
		newCursor := b.cursor - n
		newState := state.Backward(b.state, c)
		if newState.NeedsLookahead() {
			newState = resolveLookahead(b.units, b.start, newCursor, newState)
		}
		b.cursor = newCursor
		b.state = newState
		if !newState.HasNoBreak() {
			return breakAt
		}
	}
}
