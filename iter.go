//go:build go1.23

package textcluster

import (
	"iter"

	"github.com/clipperhouse/textcluster/state"
)

// All is an iterator over s's grapheme clusters, for use with range.
func All(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		it := New(s).Iterator()
		for it.MoveNext() {
			if !yield(it.String()) {
				return
			}
		}
	}
}

// All is an iterator over the clusters of v, for use with range.
func (v *Clusters) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		it := v.Iterator()
		for it.MoveNext() {
			if !yield(it.String()) {
				return
			}
		}
	}
}

// Boundaries is an iterator over the grapheme cluster boundary indices of
// v's string, for use with range. It yields every boundary in increasing
// order, including 0 and Len() for a non-empty view.
func (v *Clusters) Boundaries() iter.Seq[int] {
	return func(yield func(int) bool) {
		if len(v.units) == 0 {
			return
		}
		b := NewBreaks(v.units, 0, len(v.units), state.SoT)
		for {
			n := b.NextBreak()
			if n < 0 {
				return
			}
			if !yield(n) {
				return
			}
		}
	}
}
