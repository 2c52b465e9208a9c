package state

import "github.com/clipperhouse/textcluster/category"

// Backward computes the next automaton state scanning right to left: s is
// the state carried from the code point already consumed (to the right of
// the one being consumed now), and c is the category of the code point
// being consumed now (to its left). The returned state's NoBreak bit
// answers whether a boundary exists between this code point and the one
// previously consumed.
//
// Unlike Forward, Backward may return a lookahead sentinel
// (RegionalLookahead or ZWJPictographicLookahead) when resolving the break
// requires scanning an unbounded run further to the left: GB11 needs to
// find a Pictographic beyond a run of Extends, and GB12/GB13 need the
// parity of the full run of preceding Regional Indicators. The caller must
// detect State.NeedsLookahead() and resolve it (see the lookahead
// functions in the parent package) before trusting NoBreak.
//
// Most rules (GB3 through GB9b) are pure functions of the two adjacent
// categories and don't need unbounded context; for those, Backward mirrors
// Forward's rule with the roles of "left" and "right" swapped. The Hangul
// states group differently in the two directions: in Forward the state
// represents the left operand, so V and LV share LVState and T and LVT
// share LVTState; here the state represents the right operand, so L, LV
// and LVT share LState (only GB6's L continues before any of them), V
// alone maps to LVState and T alone to LVTState. See DESIGN.md.
func Backward(s State, c category.Category) State {
	right := s.Logical()

	switch {
	case right == SoT:
		// A fresh backward cursor (the "end of text" position, from this
		// direction's point of view) reports a break, unless NoBreak is
		// already set (SoTNoBreak): that variant means the caller is
		// resuming from a position it already knows is a boundary and
		// doesn't want it reported again.
		if c == category.EoT {
			return Break
		}
		if s.HasNoBreak() {
			return freshBackward(c) | NoBreak
		}
		return freshBackward(c)

	case c == category.EoT:
		// Walked past the start of text. GB1: always a break.
		return Break

	case c == category.CR && right == LFState:
		return Break | NoBreak // GB3

	case right == CRState || right == Break || right == LFState:
		return freshBackward(c) // GB4: break after CR/Control/LF

	case c == category.Control || c == category.CR || c == category.LF:
		return freshBackward(c) // GB5: break before Control/CR/LF

	case right == ExtendState:
		// GB9/GB9a: the thing immediately to the right was Extend, ZWJ,
		// or SpacingMark, so there's never a break here.
		return freshBackward(c) | NoBreak

	case right == ZWJPictographicState:
		// GB9/GB11: the code point to the right is a ZWJ that lookahead
		// has resolved as part of a "Pictographic Extend* ZWJ" run, and
		// there is never a break before a ZWJ. An Extend here becomes
		// ExtendState, so the right == ExtendState case above absorbs the
		// rest of the run, including the leading Pictographic itself.
		return freshBackward(c) | NoBreak

	case c == category.Prepend:
		return freshBackward(c) | NoBreak // GB9b

	case c == category.L && (right == LState || right == LVState):
		return freshBackward(c) | NoBreak // GB6

	case (c == category.LV || c == category.V) && (right == LVState || right == LVTState):
		return freshBackward(c) | NoBreak // GB7

	case (c == category.LVT || c == category.T) && right == LVTState:
		return freshBackward(c) | NoBreak // GB8

	case c == category.ZWJ && (right == PictographicState || right == ZWJPictographicState):
		return ZWJPictographicLookahead

	case c == category.RegionalIndicator && (right == RegionalSingleState || right == RegionalEvenState || right == RegionalOddState):
		return RegionalLookahead

	default:
		return freshBackward(c) // GB999
	}
}

// freshBackward classifies c with no right context, for use once a prior
// rule has already decided the break.
func freshBackward(c category.Category) State {
	switch c {
	case category.CR:
		return CRState
	case category.LF:
		return LFState
	case category.Control:
		return Break
	case category.Prepend:
		return PrependState
	case category.L, category.LV, category.LVT:
		return LState
	case category.V:
		return LVState
	case category.T:
		return LVTState
	case category.Pictographic:
		return PictographicState
	case category.Extend, category.ZWJ, category.SpacingMark:
		return ExtendState
	case category.RegionalIndicator:
		return RegionalSingleState
	default:
		return OtherState
	}
}
