// Package state implements the forward and backward automata that locate
// grapheme cluster boundaries, per UAX #29.
//
// A State is a small integer encoding the automaton's logical position plus
// a NoBreak flag recording whether the transition that produced it
// introduced a boundary. The backward automaton additionally uses a
// reserved band of "lookahead required" sentinel states: resolving GB11
// (ZWJ + Extended_Pictographic) and GB12/GB13 (paired Regional Indicators)
// needs unbounded left context that the backward table alone cannot
// supply, so the caller must run a bounded scan (see the lookahead
// functions in the parent package) before continuing.
package state

// State packs the automaton's logical state and a NoBreak flag: bit 0x01
// is NoBreak, and the logical state occupies the rest of the value in
// multiples of 0x10, matching the wire constants of the shared
// forward/backward states. Backward needs a few more logical states than
// fit in one nibble (notably, distinguishing a preceding LF from a
// preceding generic Control for GB3), so State is wider than a byte; the
// values below LookaheadMin that fit in 0x00-0xE0 are compatible with a
// one-byte wire encoding if a caller only ever uses the forward automaton.
type State uint16

// NoBreak is set on a State iff the transition that produced it forbids a
// boundary between the previously consumed code point and the one just
// consumed.
const NoBreak State = 0x0001

// Logical automaton states shared between the forward and backward tables.
// Sharing the encoding is what lets a bidirectional iterator resume
// cleanly after a direction change.
const (
	SoT                  State = 0x0000 // start of text (not itself a category)
	Break                State = 0x0010
	CRState              State = 0x0020
	OtherState           State = 0x0030
	PrependState         State = 0x0040
	LState               State = 0x0050
	LVState              State = 0x0060
	LVTState             State = 0x0070
	PictographicState    State = 0x0080
	PictographicZWJState State = 0x0090
	RegionalSingleState  State = 0x00A0

	// Backward-only states: the reverse direction needs to remember
	// categories the forward direction resolves immediately, or that a
	// lookahead call has already resolved.
	ExtendState          State = 0x00B0
	ZWJPictographicState State = 0x00C0
	RegionalEvenState    State = 0x00D0
	RegionalOddState     State = 0x00E0
)

// LookaheadMin and LookaheadMax bound the sentinel band: a State in
// [LookaheadMin, LookaheadMax) is not a concrete state at all, but a
// signal that the caller must invoke a lookahead routine to resolve it.
const (
	LookaheadMin State = 0x00F0
	LookaheadMax State = 0x0100
)

const (
	RegionalLookahead        State = 0x00F0
	ZWJPictographicLookahead State = 0x00F1
)

// LFState is a backward-only state distinguishing "the code point
// immediately to the right was exactly LF" from the generic Break state
// (which also covers a preceding Control or a preceding CR-without-LF).
// GB3 needs this distinction when scanning backward; forward doesn't, since
// it discovers CR before LF in their natural order and never needs to look
// back through one to classify the other.
const LFState State = 0x0100

// SoTNoBreak is the initial state used when resuming iteration mid-string,
// or when a caller does not want a reported boundary at the very first
// position.
const SoTNoBreak = SoT | NoBreak

// EoTNoBreak is the starting state for the boundary predicate's backward
// transition: conceptually, "as if we'd just consumed end-of-text, with no
// break recorded yet."
const EoTNoBreak = Break | NoBreak

// Logical extracts the logical state, discarding NoBreak.
func (s State) Logical() State {
	return s &^ NoBreak
}

// HasNoBreak reports whether the NoBreak flag is set.
func (s State) HasNoBreak() bool {
	return s&NoBreak != 0
}

// NeedsLookahead reports whether s is a sentinel requiring resolution via a
// lookahead call before its NoBreak bit can be trusted.
func (s State) NeedsLookahead() bool {
	return s >= LookaheadMin && s < LookaheadMax
}
