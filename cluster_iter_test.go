package textcluster_test

import (
	"testing"

	"github.com/clipperhouse/textcluster"
	"github.com/stretchr/testify/assert"
)

func collectForward(s string) []string {
	it := textcluster.New(s).Iterator()
	var out []string
	for it.MoveNext() {
		out = append(out, it.String())
	}
	return out
}

func collectBackward(s string) []string {
	it := textcluster.New(s).Iterator()
	it.ResetEnd()
	var out []string
	for it.MovePrevious() {
		out = append(out, it.String())
	}
	return out
}

func reversed(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[len(ss)-1-i] = s
	}
	return out
}

func TestMoveNextBasic(t *testing.T) {
	it := textcluster.New("abc").Iterator()

	assert.True(t, it.MoveNext())
	assert.Equal(t, 0, it.Start())
	assert.Equal(t, 1, it.End())
	assert.Equal(t, "a", it.String())

	assert.True(t, it.MoveNext())
	assert.Equal(t, "b", it.String())

	assert.True(t, it.MoveNext())
	assert.Equal(t, "c", it.String())

	assert.False(t, it.MoveNext())
	assert.False(t, it.MoveNext())
}

func TestMovePreviousBasic(t *testing.T) {
	it := textcluster.New("abc").Iterator()
	it.ResetEnd()

	assert.True(t, it.MovePrevious())
	assert.Equal(t, "c", it.String())

	assert.True(t, it.MovePrevious())
	assert.Equal(t, "b", it.String())

	assert.True(t, it.MovePrevious())
	assert.Equal(t, "a", it.String())

	assert.False(t, it.MovePrevious())
	assert.False(t, it.MovePrevious())
}

func TestEmptyStringIterator(t *testing.T) {
	it := textcluster.NewCluster("")
	assert.False(t, it.MoveNext())
	it.ResetEnd()
	assert.False(t, it.MovePrevious())
}

func TestBidirectionalEquivalence(t *testing.T) {
	cases := []string{
		"hello",
		"äb",                                  // combining diaeresis
		"\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7", // two regional indicator flags
		"\U0001F469‍\U0001F3FD",                // ZWJ emoji sequence
	}
	for _, s := range cases {
		fwd := collectForward(s)
		back := collectBackward(s)
		assert.Equalf(t, fwd, reversed(back), "mismatch for %q", s)
	}
}

func TestResumability(t *testing.T) {
	it := textcluster.New("hello").Iterator()

	assert.True(t, it.MoveNext()) // h
	assert.True(t, it.MoveNext()) // e
	assert.True(t, it.MoveNext()) // l, index 2

	wantStart, wantEnd := it.Start(), it.End()

	assert.True(t, it.MoveNext()) // l, index 3
	assert.True(t, it.MovePrevious())

	assert.Equal(t, wantStart, it.Start())
	assert.Equal(t, wantEnd, it.End())
	assert.Equal(t, "l", it.String())
}

func TestResetStartResetEnd(t *testing.T) {
	it := textcluster.New("abc").Iterator()
	it.MoveNext()
	it.MoveNext()

	it.ResetStart()
	assert.True(t, it.MoveNext())
	assert.Equal(t, "a", it.String())

	it.ResetEnd()
	assert.True(t, it.MovePrevious())
	assert.Equal(t, "c", it.String())
}

func TestCopyIsIndependent(t *testing.T) {
	it := textcluster.New("abcd").Iterator()
	it.MoveNext() // a
	it.MoveNext() // b

	cp := it.Copy()

	assert.True(t, it.MoveNext()) // c
	assert.Equal(t, "c", it.String())

	assert.Equal(t, "b", cp.String())
	assert.True(t, cp.MoveNext())
	assert.Equal(t, "c", cp.String())
}

func TestRunesAndCodeUnits(t *testing.T) {
	it := textcluster.New("äb").Iterator()
	assert.True(t, it.MoveNext())
	assert.Equal(t, []rune{'a', '̈'}, it.Runes())
	assert.Equal(t, 2, len(it.CodeUnits()))
}
