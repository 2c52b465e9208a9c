// Package textcluster partitions a string into extended grapheme
// clusters — user-perceived characters — per Unicode Text Segmentation
// (UAX #29), including the Emoji_ZWJ_Sequence rule GB11 and the
// Regional_Indicator rule GB12/GB13.
//
// The engine operates on the UTF-16 encoding of the input string: a
// string's code-unit indices, not its byte offsets, are the index space
// of every operation in this package. This keeps the forward/backward
// automata and the cursor-delta packing of Cluster faithful to the
// algorithm's native form; a Go string is encoded to []uint16 once, at
// construction of a Clusters.
package textcluster

import (
	"hash/fnv"
	"strings"
	"unicode/utf16"

	"github.com/clipperhouse/textcluster/state"
)

// Clusters is an immutable view of a string as a sequence of grapheme
// clusters. Operations that appear to modify a Clusters return a new
// value over a new string; the original is never mutated. A Clusters is
// safe for concurrent use by multiple goroutines, since every operation
// is a pure function of its fields.
type Clusters struct {
	text  string
	units []uint16
}

var empty = &Clusters{}

// Empty returns the singleton empty view.
func Empty() *Clusters { return empty }

// New returns a view of s as a sequence of grapheme clusters.
func New(s string) *Clusters {
	if s == "" {
		return empty
	}
	return &Clusters{text: s, units: utf16.Encode([]rune(s))}
}

func newFromUnits(text string, units []uint16) *Clusters {
	if len(units) == 0 {
		return empty
	}
	return &Clusters{text: text, units: units}
}

// String returns the underlying string.
func (v *Clusters) String() string { return v.text }

// Len returns the code-unit length of the underlying string.
func (v *Clusters) Len() int { return len(v.units) }

// Count returns the number of grapheme clusters.
func (v *Clusters) Count() int {
	if len(v.units) == 0 {
		return 0
	}
	b := NewBreaks(v.units, 0, len(v.units), state.SoT)
	n := -1
	for b.NextBreak() >= 0 {
		n++
	}
	return n
}

// Iterator returns a bidirectional cursor over v's clusters, positioned
// before the first one.
func (v *Clusters) Iterator() *Cluster {
	return newClusterFrom(v.text, v.units)
}

// Equal reports whether v and other have the same underlying string.
func (v *Clusters) Equal(other *Clusters) bool {
	if other == nil {
		return false
	}
	return v.text == other.text
}

// Hash returns a hash of the underlying string, consistent with Equal.
func (v *Clusters) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(v.text))
	return h.Sum64()
}

func (v *Clusters) boundaries() []int {
	if len(v.units) == 0 {
		return nil
	}
	b := NewBreaks(v.units, 0, len(v.units), state.SoT)
	var out []int
	for {
		n := b.NextBreak()
		if n < 0 {
			break
		}
		out = append(out, n)
	}
	return out
}

func decodeRange(units []uint16, a, b int) string {
	return string(utf16.Decode(units[a:b]))
}

// slice returns a view of units[a:b], trusting the caller that a and b
// are in range and don't fall inside a surrogate pair.
func (v *Clusters) slice(a, b int) *Clusters {
	if a >= b {
		return empty
	}
	units := append([]uint16(nil), v.units[a:b]...)
	return newFromUnits(decodeRange(v.units, a, b), units)
}

// First returns the first cluster, or an error if v is empty.
func (v *Clusters) First() (string, error) {
	it := v.Iterator()
	if !it.MoveNext() {
		return "", noElementErrorf("First: no elements")
	}
	return it.String(), nil
}

// Last returns the last cluster, or an error if v is empty.
func (v *Clusters) Last() (string, error) {
	it := v.Iterator()
	it.ResetEnd()
	if !it.MovePrevious() {
		return "", noElementErrorf("Last: no elements")
	}
	return it.String(), nil
}

// Single returns the sole cluster of v, or an error if v is empty or has
// more than one cluster.
func (v *Clusters) Single() (string, error) {
	it := v.Iterator()
	if !it.MoveNext() {
		return "", noElementErrorf("Single: no elements")
	}
	s := it.String()
	if it.MoveNext() {
		return "", noElementErrorf("Single: too many elements")
	}
	return s, nil
}

// Contains reports whether s is itself a single grapheme cluster that
// occurs somewhere in v at an aligned boundary.
func (v *Clusters) Contains(s string) bool {
	other := New(s)
	if other.Count() != 1 {
		return false
	}
	return v.IndexOf(other) >= 0
}

// ContainsAll reports whether other's string occurs in v at aligned
// boundaries.
func (v *Clusters) ContainsAll(other *Clusters) bool {
	return v.IndexOf(other) >= 0
}

// StartsWith reports whether v starts with other at an aligned boundary.
func (v *Clusters) StartsWith(other *Clusters) bool {
	return v.StartsWithAt(other, 0)
}

// StartsWithAt reports whether other's string occurs at startIndex, with
// startIndex+len(other) landing on a cluster boundary.
func (v *Clusters) StartsWithAt(other *Clusters, startIndex int) bool {
	n := len(other.units)
	if startIndex < 0 || startIndex+n > len(v.units) {
		return false
	}
	end := startIndex + n
	if !unitsEqual(v.units[startIndex:end], other.units) {
		return false
	}
	ok, _ := IsBoundary(v.units, 0, len(v.units), end)
	return ok
}

// EndsWith reports whether v ends with other at an aligned boundary.
func (v *Clusters) EndsWith(other *Clusters) bool {
	return v.EndsWithAt(other, len(v.units))
}

// EndsWithAt reports whether other's string occurs ending at endIndex,
// with endIndex-len(other) landing on a cluster boundary.
func (v *Clusters) EndsWithAt(other *Clusters, endIndex int) bool {
	n := len(other.units)
	start := endIndex - n
	if start < 0 || endIndex > len(v.units) {
		return false
	}
	if !unitsEqual(v.units[start:endIndex], other.units) {
		return false
	}
	ok, _ := IsBoundary(v.units, 0, len(v.units), start)
	return ok
}

// IndexOf returns the first code-unit index, at or after 0, where other
// occurs at aligned boundaries, or -1 if there is none.
func (v *Clusters) IndexOf(other *Clusters) int {
	return v.IndexOfAt(other, 0)
}

// IndexOfAt is IndexOf starting the search at startIndex.
func (v *Clusters) IndexOfAt(other *Clusters, startIndex int) int {
	from := startIndex
	for {
		m := unitsIndexOf(v.units, other.units, from)
		if m < 0 {
			return -1
		}
		if v.boundaryPairAligned(m, m+len(other.units)) {
			return m
		}
		from = m + 1
	}
}

// LastIndexOf returns the last code-unit index, at or before the end of
// v, where other occurs at aligned boundaries, or -1 if there is none.
func (v *Clusters) LastIndexOf(other *Clusters) int {
	return v.LastIndexOfAt(other, len(v.units))
}

// LastIndexOfAt is LastIndexOf starting the backward search at startIndex.
func (v *Clusters) LastIndexOfAt(other *Clusters, startIndex int) int {
	from := startIndex
	for {
		m := unitsLastIndexOf(v.units, other.units, from)
		if m < 0 {
			return -1
		}
		if v.boundaryPairAligned(m, m+len(other.units)) {
			return m
		}
		from = m - 1
	}
}

// IndexAfter is IndexOf, but returns the index just past the match.
func (v *Clusters) IndexAfter(other *Clusters) int {
	return v.IndexAfterAt(other, 0)
}

// IndexAfterAt is IndexOfAt, but returns the index just past the match.
func (v *Clusters) IndexAfterAt(other *Clusters, startIndex int) int {
	m := v.IndexOfAt(other, startIndex)
	if m < 0 {
		return -1
	}
	return m + len(other.units)
}

// LastIndexAfter is LastIndexOf, but returns the index just past the
// match.
func (v *Clusters) LastIndexAfter(other *Clusters) int {
	return v.LastIndexAfterAt(other, len(v.units))
}

// LastIndexAfterAt is LastIndexOfAt, but returns the index just past the
// match.
func (v *Clusters) LastIndexAfterAt(other *Clusters, startIndex int) int {
	m := v.LastIndexOfAt(other, startIndex)
	if m < 0 {
		return -1
	}
	return m + len(other.units)
}

func (v *Clusters) boundaryPairAligned(start, end int) bool {
	if end > len(v.units) {
		return false
	}
	startOK, _ := IsBoundary(v.units, 0, len(v.units), start)
	endOK, _ := IsBoundary(v.units, 0, len(v.units), end)
	return startOK && endOK
}

func (v *Clusters) boundaryAfterN(n int) int {
	if n <= 0 {
		return 0
	}
	it := v.Iterator()
	for i := 0; i < n; i++ {
		if !it.MoveNext() {
			return len(v.units)
		}
	}
	return it.End()
}

func (v *Clusters) boundaryBeforeN(n int) int {
	if n <= 0 {
		return len(v.units)
	}
	it := v.Iterator()
	it.ResetEnd()
	for i := 0; i < n; i++ {
		if !it.MovePrevious() {
			return 0
		}
	}
	return it.Start()
}

// Skip returns the clusters after the first n.
func (v *Clusters) Skip(n int) (*Clusters, error) {
	if n < 0 {
		return nil, rangeErrorf("Skip: negative count %d", n)
	}
	return v.slice(v.boundaryAfterN(n), len(v.units)), nil
}

// Take returns the first n clusters.
func (v *Clusters) Take(n int) (*Clusters, error) {
	if n < 0 {
		return nil, rangeErrorf("Take: negative count %d", n)
	}
	return v.slice(0, v.boundaryAfterN(n)), nil
}

// GetRange returns clusters [a, b).
func (v *Clusters) GetRange(a, b int) (*Clusters, error) {
	if a < 0 || b < 0 {
		return nil, rangeErrorf("GetRange: negative bound [%d, %d)", a, b)
	}
	if b < a {
		return nil, rangeErrorf("GetRange: invalid range [%d, %d)", a, b)
	}
	return v.slice(v.boundaryAfterN(a), v.boundaryAfterN(b)), nil
}

// SkipLast returns the clusters before the last n.
func (v *Clusters) SkipLast(n int) (*Clusters, error) {
	if n < 0 {
		return nil, rangeErrorf("SkipLast: negative count %d", n)
	}
	return v.slice(0, v.boundaryBeforeN(n)), nil
}

// TakeLast returns the last n clusters.
func (v *Clusters) TakeLast(n int) (*Clusters, error) {
	if n < 0 {
		return nil, rangeErrorf("TakeLast: negative count %d", n)
	}
	return v.slice(v.boundaryBeforeN(n), len(v.units)), nil
}

// SkipWhile returns the clusters from the first one for which pred
// returns false, to the end.
func (v *Clusters) SkipWhile(pred func(string) bool) *Clusters {
	it := v.Iterator()
	for it.MoveNext() {
		if !pred(it.String()) {
			return v.slice(it.Start(), len(v.units))
		}
	}
	return empty
}

// TakeWhile returns the clusters from the start up to (but not including)
// the first one for which pred returns false.
func (v *Clusters) TakeWhile(pred func(string) bool) *Clusters {
	it := v.Iterator()
	end := 0
	for it.MoveNext() {
		if !pred(it.String()) {
			break
		}
		end = it.End()
	}
	return v.slice(0, end)
}

// SkipLastWhile returns the clusters from the start up to (but not
// including) the last run for which pred returns true.
func (v *Clusters) SkipLastWhile(pred func(string) bool) *Clusters {
	it := v.Iterator()
	it.ResetEnd()
	start := len(v.units)
	for it.MovePrevious() {
		if !pred(it.String()) {
			break
		}
		start = it.Start()
	}
	return v.slice(0, start)
}

// TakeLastWhile returns the trailing run of clusters for which pred
// returns true.
func (v *Clusters) TakeLastWhile(pred func(string) bool) *Clusters {
	it := v.Iterator()
	it.ResetEnd()
	start := len(v.units)
	for it.MovePrevious() {
		if !pred(it.String()) {
			break
		}
		start = it.Start()
	}
	return v.slice(start, len(v.units))
}

// Where eagerly filters clusters, returning a view over the concatenation
// of the retained cluster strings.
func (v *Clusters) Where(pred func(string) bool) *Clusters {
	it := v.Iterator()
	var sb strings.Builder
	for it.MoveNext() {
		if pred(it.String()) {
			sb.WriteString(it.String())
		}
	}
	return New(sb.String())
}

// Concat returns a view over v's string followed by other's.
func (v *Clusters) Concat(other *Clusters) *Clusters {
	return New(v.text + other.text)
}

// InsertAt returns a view with other's string spliced in at the
// code-unit index.
func (v *Clusters) InsertAt(index int, other *Clusters) (*Clusters, error) {
	if index < 0 || index > len(v.units) {
		return nil, rangeErrorf("InsertAt: index %d out of range [0, %d]", index, len(v.units))
	}
	before := decodeRange(v.units, 0, index)
	after := decodeRange(v.units, index, len(v.units))
	return New(before + other.text + after), nil
}

// ReplaceSubstring replaces units[a:b] with other's string, without
// validating that a or b land on cluster boundaries.
func (v *Clusters) ReplaceSubstring(a, b int, other *Clusters) (*Clusters, error) {
	if a < 0 || b > len(v.units) || a > b {
		return nil, rangeErrorf("ReplaceSubstring: invalid range [%d, %d) over %d units", a, b, len(v.units))
	}
	before := decodeRange(v.units, 0, a)
	after := decodeRange(v.units, b, len(v.units))
	return New(before + other.text + after), nil
}

// Substring returns a view of units[a:b].
func (v *Clusters) Substring(a, b int) (*Clusters, error) {
	if a < 0 || b > len(v.units) || a > b {
		return nil, rangeErrorf("Substring: invalid range [%d, %d) over %d units", a, b, len(v.units))
	}
	return v.slice(a, b), nil
}

// ReplaceAll replaces every non-overlapping boundary-aligned occurrence
// of src with repl, starting the search at startIndex. If src is empty,
// repl is inserted at every cluster boundary at or after startIndex,
// including the string's own start and end ("explode" semantics,
// preserved from the source this design is based on).
func (v *Clusters) ReplaceAll(src, repl *Clusters, startIndex int) *Clusters {
	if len(src.units) == 0 {
		return v.explodeReplace(repl, startIndex, false)
	}
	var sb strings.Builder
	sb.WriteString(decodeRange(v.units, 0, startIndex))
	pos := startIndex
	for {
		m := v.IndexOfAt(src, pos)
		if m < 0 {
			break
		}
		sb.WriteString(decodeRange(v.units, pos, m))
		sb.WriteString(repl.text)
		pos = m + len(src.units)
	}
	sb.WriteString(decodeRange(v.units, pos, len(v.units)))
	return New(sb.String())
}

// ReplaceFirst replaces the first boundary-aligned occurrence of src with
// repl at or after startIndex. See ReplaceAll for the empty-src case.
func (v *Clusters) ReplaceFirst(src, repl *Clusters, startIndex int) *Clusters {
	if len(src.units) == 0 {
		return v.explodeReplace(repl, startIndex, true)
	}
	m := v.IndexOfAt(src, startIndex)
	if m < 0 {
		return v
	}
	before := decodeRange(v.units, 0, m)
	after := decodeRange(v.units, m+len(src.units), len(v.units))
	return New(before + repl.text + after)
}

func (v *Clusters) explodeReplace(repl *Clusters, startIndex int, firstOnly bool) *Clusters {
	boundaries := v.boundaries()
	var sb strings.Builder
	last := 0
	for _, bd := range boundaries {
		sb.WriteString(decodeRange(v.units, last, bd))
		last = bd
		if bd < startIndex {
			continue
		}
		sb.WriteString(repl.text)
		if firstOnly {
			sb.WriteString(decodeRange(v.units, bd, len(v.units)))
			return New(sb.String())
		}
	}
	return New(sb.String())
}

// ToLowerCase returns a view over strings.ToLower of v's string.
func (v *Clusters) ToLowerCase() *Clusters {
	return New(strings.ToLower(v.text))
}

// ToUpperCase returns a view over strings.ToUpper of v's string.
func (v *Clusters) ToUpperCase() *Clusters {
	return New(strings.ToUpper(v.text))
}

func unitsEqual(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func unitsIndexOf(units, pattern []uint16, from int) int {
	if from < 0 {
		from = 0
	}
	if len(pattern) == 0 {
		if from > len(units) {
			return -1
		}
		return from
	}
	limit := len(units) - len(pattern)
	for i := from; i <= limit; i++ {
		if unitsEqual(units[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

func unitsLastIndexOf(units, pattern []uint16, from int) int {
	if len(pattern) == 0 {
		if from < 0 {
			return -1
		}
		if from > len(units) {
			from = len(units)
		}
		return from
	}
	start := from
	if start > len(units)-len(pattern) {
		start = len(units) - len(pattern)
	}
	for i := start; i >= 0; i-- {
		if unitsEqual(units[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}
