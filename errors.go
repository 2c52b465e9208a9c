package textcluster

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an Error, per the three failure kinds this package can
// produce: bad index/count arguments, an accessor call with no (or too
// many) elements, and an internal invariant violation in the automaton
// tables.
type Kind int

const (
	// KindRange marks an index, range, or count outside the bounds the
	// operation requires.
	KindRange Kind = iota
	// KindNoElement marks a scalar accessor (First, Last, Single) with
	// no match, or Single with more than one.
	KindNoElement
	// KindInvariant marks a state the tables should never produce. It
	// indicates a bug in this package, not in caller input.
	KindInvariant
)

func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindNoElement:
		return "no element"
	case KindInvariant:
		return "invariant violation"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every operation in this package
// that fails. Use errors.As to recover the Kind.
type Error struct {
	Kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func rangeErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: KindRange, msg: fmt.Sprintf(format, args...)})
}

func noElementErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: KindNoElement, msg: fmt.Sprintf(format, args...)})
}

func invariantErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&Error{Kind: KindInvariant, msg: fmt.Sprintf(format, args...)})
}
