package textcluster

import "github.com/clipperhouse/textcluster/category"

// decodeForward reads the code point starting at units[i], joining a lead
// surrogate with a following tail surrogate. It returns the category and
// the number of code units consumed (0 at end, 1 for a BMP or unpaired
// surrogate, 2 for a pair). i must be in [0, end]; end must be <= len(units).
func decodeForward(units []uint16, i, end int) (category.Category, int) {
	if i >= end {
		return category.EoT, 0
	}
	u := units[i]
	if category.IsLead(u) && i+1 < end && category.IsTail(units[i+1]) {
		return category.Supplementary(u, units[i+1]), 2
	}
	return category.BMP(u), 1
}

// decodeBackward reads the code point ending just before units[i], joining
// a tail surrogate with a preceding lead surrogate. i must be in [start,
// len(units)]; it reports the category and the number of units consumed,
// counting backward from i.
func decodeBackward(units []uint16, i, start int) (category.Category, int) {
	if i <= start {
		return category.EoT, 0
	}
	u := units[i-1]
	if category.IsTail(u) && i-2 >= start && category.IsLead(units[i-2]) {
		return category.Supplementary(units[i-2], u), 2
	}
	return category.BMP(u), 1
}
