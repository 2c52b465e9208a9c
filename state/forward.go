package state

import "github.com/clipperhouse/textcluster/category"

// Forward computes the next automaton state given the current state and the
// category of the code point just consumed, scanning left to right. The
// returned state's NoBreak bit answers whether a boundary exists between
// the previously consumed code point and this one.
//
// Forward transitions never require lookahead: every UAX #29 rule that
// needs more than the immediately preceding category (GB11's "Extended_
// Pictographic Extend* ZWJ" context) is resolvable by carrying state
// forward, since forward scanning naturally accumulates left context as it
// goes.
func Forward(s State, c category.Category) State {
	prev := s.Logical()

	switch {
	case prev == SoT:
		// GB1: the first boundary is always at the start of a non-empty
		// string, with no exceptions for what follows. A caller that starts
		// here with NoBreak already set (SoTNoBreak) is resuming from a
		// position it already knows is a boundary (e.g. the cluster iterator
		// reversing direction) and doesn't want that boundary reported
		// again; treat prev as neutral context instead of invoking GB1.
		if c == category.EoT {
			return Break
		}
		if s.HasNoBreak() {
			return freshForward(c) | NoBreak
		}
		return freshForward(c)

	case c == category.EoT:
		// GB2: always break at end of text.
		return Break

	case prev == CRState:
		if c == category.LF {
			return Break | NoBreak // GB3
		}
		return freshForward(c) // GB4: break after CR when not followed by LF

	case prev == Break:
		return freshForward(c) // GB4: break after Control or LF, unconditionally

	case c == category.CR || c == category.LF || c == category.Control:
		return freshForward(c) // GB5: break before Control, CR, LF

	case c == category.Extend:
		// GB9: never break before Extend. Pictographic state survives an
		// Extend run so a later ZWJ can still close a GB11 sequence;
		// every other kind of left context is reset, matching the fact
		// that an intervening Extend breaks Hangul (GB6-8) and Prepend
		// (GB9b) chaining.
		if prev == PictographicState {
			return PictographicState | NoBreak
		}
		return OtherState | NoBreak

	case c == category.ZWJ:
		// GB9 (ZWJ behaves like Extend for breaking purposes) plus the
		// GB11 state transition when a Pictographic precedes.
		if prev == PictographicState {
			return PictographicZWJState | NoBreak
		}
		return OtherState | NoBreak

	case c == category.SpacingMark:
		return OtherState | NoBreak // GB9a

	case prev == PrependState:
		return freshForward(c) | NoBreak // GB9b

	case prev == LState && (c == category.L || c == category.V || c == category.LV || c == category.LVT):
		return freshForward(c) | NoBreak // GB6

	case prev == LVState && (c == category.V || c == category.T):
		return freshForward(c) | NoBreak // GB7

	case prev == LVTState && c == category.T:
		return freshForward(c) | NoBreak // GB8

	case prev == PictographicZWJState && c == category.Pictographic:
		return PictographicState | NoBreak // GB11

	case c == category.RegionalIndicator:
		if prev == RegionalSingleState {
			return OtherState | NoBreak // GB12/GB13: second of the pair
		}
		return RegionalSingleState // first of a (possible) pair; GB999 break before it

	default:
		return freshForward(c) // GB999
	}
}

// freshForward classifies c with no left context, for use whenever a prior
// rule has already decided the break (or reset context, e.g. after a
// forced break).
func freshForward(c category.Category) State {
	switch c {
	case category.CR:
		return CRState
	case category.LF, category.Control:
		return Break
	case category.Prepend:
		return PrependState
	case category.L:
		return LState
	case category.V, category.LV:
		return LVState
	case category.T, category.LVT:
		return LVTState
	case category.Pictographic:
		return PictographicState
	case category.RegionalIndicator:
		return RegionalSingleState
	default:
		// Other, SpacingMark, Extend, ZWJ with no pictographic left
		// context.
		return OtherState
	}
}
