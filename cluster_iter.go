package textcluster

import (
	"unicode/utf16"

	"github.com/clipperhouse/textcluster/state"
)

type direction uint8

const (
	dirForward direction = iota
	dirBackward
)

// Cluster is a bidirectional, resumable cursor over the grapheme clusters
// of a string. A zero-value Cluster is not usable; construct one with
// NewCluster or (*Clusters).Iterator.
//
// Cluster is a mutable single-owner cursor: concurrent calls from multiple
// goroutines are not supported. Use Copy to run two traversals in
// parallel.
type Cluster struct {
	text  string
	units []uint16

	start, end int
	state      state.State
	delta      int
	dir        direction

	cached *string
}

// NewCluster returns a bidirectional cluster iterator positioned before the
// first cluster of s.
func NewCluster(s string) *Cluster {
	return &Cluster{
		text:  s,
		units: utf16.Encode([]rune(s)),
		state: state.SoTNoBreak,
		dir:   dirForward,
	}
}

func newClusterFrom(text string, units []uint16) *Cluster {
	return &Cluster{
		text:  text,
		units: units,
		state: state.SoTNoBreak,
		dir:   dirForward,
	}
}

// MoveNext advances to the next cluster, returning false once the end of
// the string has been passed.
func (c *Cluster) MoveNext() bool {
	if c.end >= len(c.units) {
		return false
	}

	cursor := c.end
	st := c.state
	if c.dir != dirForward {
		st = state.SoTNoBreak
	} else {
		cursor = c.end + c.delta
	}

	b := NewBreaks(c.units, cursor, len(c.units), st)
	next := b.NextBreak()
	if next < 0 {
		return false
	}

	c.start = c.end
	c.end = next
	c.delta = b.Cursor() - next
	c.state = b.State()
	c.dir = dirForward
	c.cached = nil
	return true
}

// MovePrevious retreats to the previous cluster, returning false once the
// start of the string has been passed.
func (c *Cluster) MovePrevious() bool {
	if c.start <= 0 {
		return false
	}

	cursor := c.start
	st := c.state
	if c.dir != dirBackward {
		st = state.SoTNoBreak
	} else {
		cursor = c.start - c.delta
	}

	b := NewBackBreaks(c.units, cursor, 0, st)
	prev := b.NextBreak()
	if prev < 0 {
		return false
	}

	c.end = c.start
	c.start = prev
	c.delta = prev - b.Cursor()
	c.state = b.State()
	c.dir = dirBackward
	c.cached = nil
	return true
}

// Reset collapses the iterator to an empty range at code-unit index i,
// positioned to move forward.
func (c *Cluster) Reset(i int) {
	c.start = i
	c.end = i
	c.state = state.SoTNoBreak
	c.delta = 0
	c.dir = dirForward
	c.cached = nil
}

// ResetStart collapses the iterator to the very start of the string.
func (c *Cluster) ResetStart() {
	c.Reset(0)
}

// ResetEnd collapses the iterator to the very end of the string,
// positioned to move backward.
func (c *Cluster) ResetEnd() {
	n := len(c.units)
	c.start = n
	c.end = n
	c.state = state.SoTNoBreak
	c.delta = 0
	c.dir = dirBackward
	c.cached = nil
}

// Copy returns an independent iterator with identical position and state.
func (c *Cluster) Copy() *Cluster {
	cp := *c
	cp.cached = nil
	if c.cached != nil {
		cached := *c.cached
		cp.cached = &cached
	}
	return &cp
}

// Start and End report the current cluster's code-unit range.
func (c *Cluster) Start() int { return c.start }
func (c *Cluster) End() int   { return c.end }

// CodeUnits returns the current cluster's UTF-16 code units.
func (c *Cluster) CodeUnits() []uint16 {
	return c.units[c.start:c.end]
}

// Runes returns the current cluster's code points.
func (c *Cluster) Runes() []rune {
	return utf16.Decode(c.CodeUnits())
}

// String returns the current cluster as a Go string.
func (c *Cluster) String() string {
	if c.cached != nil {
		return *c.cached
	}
	s := string(c.Runes())
	c.cached = &s
	return s
}
