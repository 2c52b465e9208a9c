package textcluster

import (
	"github.com/clipperhouse/textcluster/category"
	"github.com/clipperhouse/textcluster/state"
)

// resolveLookahead turns a lookahead sentinel returned by state.Backward
// into a concrete state, by scanning further left from cursor. cursor is
// the position left of the code point that produced the sentinel.
func resolveLookahead(units []uint16, start, cursor int, s state.State) state.State {
	switch s {
	case state.RegionalLookahead:
		return lookaheadRegional(units, start, cursor)
	case state.ZWJPictographicLookahead:
		return lookaheadZWJPictographic(units, start, cursor)
	default:
		return s
	}
}

// lookaheadRegional resolves GB12/GB13: the backward automaton has just
// consumed a pair of RegionalIndicators, and cursor indexes the start of
// the earlier (leftward) one. The parity of the run of RegionalIndicators
// further to the left determines whether this pair forms a flag.
func lookaheadRegional(units []uint16, start, cursor int) state.State {
	count := 0
	i := cursor
	for i > start {
		c, n := decodeBackward(units, i, start)
		if c != category.RegionalIndicator {
			break
		}
		count++
		i -= n
	}
	if count%2 == 0 {
		return state.RegionalEvenState | state.NoBreak
	}
	return state.RegionalOddState
}

// lookaheadZWJPictographic resolves GB11: the backward automaton has just
// consumed a ZWJ immediately followed (to its right) by a Pictographic or
// an already-resolved ZWJPictographic sequence, and cursor indexes the
// start of that ZWJ. Skip back over any run of Extend to find whether a
// Pictographic introduced the sequence.
func lookaheadZWJPictographic(units []uint16, start, cursor int) state.State {
	i := cursor
	for i > start {
		c, n := decodeBackward(units, i, start)
		switch c {
		case category.Pictographic:
			return state.ZWJPictographicState | state.NoBreak
		case category.Extend:
			i -= n
			continue
		default:
			return state.ExtendState
		}
	}
	return state.ExtendState
}

// IsBoundary reports whether index is a grapheme cluster boundary in
// text[start:end]. Precondition: start <= index <= end, where end <=
// len(text) (units are reused by the caller; this package only ever sees
// the full code-unit slice of the owning Clusters).
func IsBoundary(units []uint16, start, end, index int) (bool, error) {
	if start < 0 || end > len(units) || start > end {
		return false, rangeErrorf("IsBoundary: invalid range [%d, %d) over %d units", start, end, len(units))
	}
	if index < start || index > end {
		return false, rangeErrorf("IsBoundary: index %d outside [%d, %d]", index, start, end)
	}
	if start == end {
		return false, nil
	}
	if index == start || index == end {
		return true, nil
	}
	if category.IsTail(units[index]) && category.IsLead(units[index-1]) {
		return false, nil // inside a surrogate pair
	}

	right, _ := decodeForward(units, index, end)
	s := state.Backward(state.EoTNoBreak, right)
	if s.NeedsLookahead() {
		s = resolveLookahead(units, start, index, s)
	}

	left, n := decodeBackward(units, index, start)
	s = state.Backward(s, left)
	if s.NeedsLookahead() {
		s = resolveLookahead(units, start, index-n, s)
	}

	return !s.HasNoBreak(), nil
}

// NextBreak returns the first boundary index >= from within text[start:end].
// Unlike the Breaks cursor it builds internally, it always establishes
// correct left context by scanning from start, so it gives a right answer
// even when from lands in the middle of a cluster; callers iterating
// incrementally should use Breaks/BackBreaks directly instead, seeded with
// the state they already have.
func NextBreak(units []uint16, start, end, from int) int {
	b := NewBreaks(units, start, end, state.SoT)
	for {
		n := b.NextBreak()
		if n < 0 {
			return -1
		}
		if n >= from {
			return n
		}
	}
}

// PreviousBreak returns the last boundary index <= from within
// text[start:end], established by scanning from end for the same reason
// NextBreak scans from start.
func PreviousBreak(units []uint16, start, end, from int) int {
	b := NewBackBreaks(units, end, start, state.SoT)
	for {
		n := b.NextBreak()
		if n < 0 {
			return -1
		}
		if n <= from {
			return n
		}
	}
}
