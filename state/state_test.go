package state_test

import (
	"testing"

	"github.com/clipperhouse/textcluster/category"
	"github.com/clipperhouse/textcluster/state"
	"github.com/stretchr/testify/assert"
)

func forwardBreaks(cats []category.Category) []bool {
	s := state.State(state.SoT)
	out := make([]bool, 0, len(cats)+1)
	for _, c := range cats {
		s = state.Forward(s, c)
		out = append(out, !s.HasNoBreak())
	}
	s = state.Forward(s, category.EoT)
	out = append(out, !s.HasNoBreak())
	return out
}

func TestForwardCRLF(t *testing.T) {
	// CR LF A: break before CR, no break between CR and LF, break before A.
	breaks := forwardBreaks([]category.Category{category.CR, category.LF, category.Other})
	assert.Equal(t, []bool{true, false, true, true}, breaks)
}

func TestForwardExtend(t *testing.T) {
	// A, combining diaeresis, B: no break before Extend, break before B.
	breaks := forwardBreaks([]category.Category{category.Other, category.Extend, category.Other})
	assert.Equal(t, []bool{true, false, true, true}, breaks)
}

func TestForwardRegionalIndicatorPairs(t *testing.T) {
	// Two flags in a row: RI RI RI RI -> breaks before 1st, 3rd, and after 4th.
	breaks := forwardBreaks([]category.Category{
		category.RegionalIndicator, category.RegionalIndicator,
		category.RegionalIndicator, category.RegionalIndicator,
	})
	assert.Equal(t, []bool{true, false, true, false, true}, breaks)
}

func TestForwardZWJPictographicSequence(t *testing.T) {
	// Pictographic ZWJ Pictographic: one cluster.
	breaks := forwardBreaks([]category.Category{
		category.Pictographic, category.ZWJ, category.Pictographic,
	})
	assert.Equal(t, []bool{true, false, false, true}, breaks)
}

func TestForwardHangul(t *testing.T) {
	// L V T: no breaks within, GB6-GB8.
	breaks := forwardBreaks([]category.Category{category.L, category.V, category.T})
	assert.Equal(t, []bool{true, false, false, true}, breaks)
}

func TestForwardPrepend(t *testing.T) {
	breaks := forwardBreaks([]category.Category{category.Prepend, category.Other})
	assert.Equal(t, []bool{true, false, true}, breaks)
}

func backwardBreaks(cats []category.Category) []bool {
	s := state.State(state.SoT)
	out := make([]bool, len(cats)+1)
	for i := len(cats) - 1; i >= 0; i-- {
		s = state.Backward(s, cats[i])
		requireNoLookahead(s)
		out[i+1] = !s.HasNoBreak()
	}
	s = state.Backward(s, category.EoT)
	out[0] = !s.HasNoBreak()
	return out
}

func requireNoLookahead(s state.State) {
	if s.NeedsLookahead() {
		panic("unresolved lookahead in test helper; this test case needs the lookahead routines in package textcluster")
	}
}

func TestBackwardCRLF(t *testing.T) {
	breaks := backwardBreaks([]category.Category{category.CR, category.LF, category.Other})
	assert.Equal(t, []bool{true, false, true, true}, breaks)
}

func TestBackwardExtend(t *testing.T) {
	breaks := backwardBreaks([]category.Category{category.Other, category.Extend, category.Other})
	assert.Equal(t, []bool{true, false, true, true}, breaks)
}

func TestBackwardHangul(t *testing.T) {
	breaks := backwardBreaks([]category.Category{category.L, category.V, category.T})
	assert.Equal(t, []bool{true, false, false, true}, breaks)
}

func TestStateLogicalAndNoBreak(t *testing.T) {
	s := state.LState | state.NoBreak
	assert.True(t, s.HasNoBreak())
	assert.Equal(t, state.LState, s.Logical())
}

func TestNeedsLookahead(t *testing.T) {
	assert.True(t, state.RegionalLookahead.NeedsLookahead())
	assert.True(t, state.ZWJPictographicLookahead.NeedsLookahead())
	assert.False(t, state.LFState.NeedsLookahead())
	assert.False(t, state.Break.NeedsLookahead())
	assert.False(t, state.SoT.NeedsLookahead())
}

func TestLFStateDistinctFromBreak(t *testing.T) {
	// GB3: CR × LF is a non-break; CR × Control is a break. Backward needs
	// to tell these apart via the distinct LFState constant.
	afterLF := state.Backward(state.SoT, category.LF)
	assert.Equal(t, state.LFState, afterLF.Logical())

	noBreak := state.Backward(afterLF, category.CR)
	assert.True(t, noBreak.HasNoBreak())

	afterControl := state.Backward(state.SoT, category.Control)
	assert.Equal(t, state.Break, afterControl.Logical())

	mustBreak := state.Backward(afterControl, category.CR)
	assert.False(t, mustBreak.HasNoBreak())
}
