package category

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Hangul syllable constants, from the Unicode Hangul Syllable algorithm
// (UAX #29 references these for the L/V/T/LV/LVT categories).
const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

func isHangulL(r rune) bool {
	return r >= hangulLBase && r < hangulLBase+hangulLCount
}

func isHangulV(r rune) bool {
	return r >= hangulVBase && r < hangulVBase+hangulVCount
}

func isHangulT(r rune) bool {
	// hangulTBase itself (0x11A7) is not a valid jamo; T runs from
	// hangulTBase+1.
	return r > hangulTBase && r < hangulTBase+hangulTCount
}

func isHangulSyllable(r rune) bool {
	return r >= hangulSBase && r < hangulSBase+hangulSCount
}

func isHangulLV(r rune) bool {
	if !isHangulSyllable(r) {
		return false
	}
	index := r - hangulSBase
	return index%hangulNCount == 0
}

func isHangulLVT(r rune) bool {
	if !isHangulSyllable(r) {
		return false
	}
	index := r - hangulSBase
	return index%hangulNCount != 0
}

// regionalIndicatorTable covers the Regional Indicator Symbol block,
// U+1F1E6 to U+1F1FF, used in pairs to form flag sequences (GB12/GB13).
var regionalIndicatorTable = rangetable.New(
	runeRange(0x1F1E6, 0x1F1FF)...,
)

func isRegionalIndicator(r rune) bool {
	return unicode.Is(regionalIndicatorTable, r)
}

func runeRange(lo, hi rune) []rune {
	out := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

// prependTable lists the (small, stable) set of code points with the
// grapheme break property Prepend. These precede a base character and
// never receive a break before the base (GB9b).
var prependTable = rangetable.New(
	0x0600, 0x0601, 0x0602, 0x0603, 0x0604, 0x0605,
	0x06DD,
	0x070F,
	0x0890, 0x0891,
	0x08E2,
	0x0D4E,
	0x110BD,
	0x110CD,
	0x111C2, 0x111C3,
	0x1193F,
	0x11941,
	0x11A3A,
	0x11A84, 0x11A85, 0x11A86, 0x11A87, 0x11A88, 0x11A89,
	0x11D46,
	0x11F02,
	0x13430, 0x13431, 0x13432, 0x13433,
)

func isPrepend(r rune) bool {
	return unicode.Is(prependTable, r)
}

// extendedPictographicTable approximates the Extended_Pictographic
// property: the major emoji blocks of the Unicode Standard, used for GB11
// (ZWJ-joined pictographic sequences). It is not a byte-for-byte copy of
// the generated emoji-data.txt ranges, but covers the blocks that matter
// for everyday emoji and emoji-modifier sequences.
var extendedPictographicTable = rangetable.Merge(
	rangetable.New(runeRange(0x00A9, 0x00A9)...),  // copyright sign
	rangetable.New(runeRange(0x00AE, 0x00AE)...),  // registered sign
	rangetable.New(runeRange(0x203C, 0x2049)...),  // double/interrobang marks
	rangetable.New(runeRange(0x2122, 0x2139)...),  // trademark..information
	rangetable.New(runeRange(0x2194, 0x21AA)...),  // arrows
	rangetable.New(runeRange(0x231A, 0x231B)...),  // watch, hourglass
	rangetable.New(runeRange(0x2328, 0x2328)...),  // keyboard
	rangetable.New(runeRange(0x23E9, 0x23FA)...),  // playback controls
	rangetable.New(runeRange(0x24C2, 0x24C2)...),  // circled M
	rangetable.New(runeRange(0x25AA, 0x25FE)...),  // geometric shapes
	rangetable.New(runeRange(0x2600, 0x27BF)...),  // misc symbols & dingbats
	rangetable.New(runeRange(0x2934, 0x2935)...),  // curved arrows
	rangetable.New(runeRange(0x2B05, 0x2BFF)...),  // arrows, stars
	rangetable.New(runeRange(0x3030, 0x3030)...),  // wavy dash
	rangetable.New(runeRange(0x303D, 0x303D)...),  // part alternation mark
	rangetable.New(runeRange(0x3297, 0x3299)...),  // circled ideographs
	rangetable.New(runeRange(0x1F000, 0x1FFFF)...), // supplementary symbols & pictographs planes
)

// isEmojiModifier reports the emoji skin tone modifiers U+1F3FB..U+1F3FF.
// They lie inside the supplementary range of extendedPictographicTable but
// have the grapheme break property Extend, not Extended_Pictographic.
func isEmojiModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

func isExtendedPictographic(r rune) bool {
	if isEmojiModifier(r) {
		return false
	}
	return unicode.Is(extendedPictographicTable, r)
}

// extendBase is the general-category basis of the grapheme Extend
// property: Mn, Me and Cf. isExtend adds the emoji modifiers and the
// spacingMarkExceptions code points to it, and excludes ZWJ and the
// Prepend code points, which are categorized separately.
var extendBase = rangetable.Merge(unicode.Mn, unicode.Me, unicode.Cf)

func isExtend(r rune) bool {
	if r == zwj {
		return false
	}
	if isPrepend(r) {
		return false
	}
	if isEmojiModifier(r) || unicode.Is(spacingMarkExceptions, r) {
		return true
	}
	return unicode.Is(extendBase, r)
}

// spacingMarkExceptions lists the code points that isSpacingMark leaves
// out of its approximation of the grapheme Spacing_Mark property (the
// Unicode Mc, Spacing Combining Mark, general category); isExtend
// categorizes them as Extend instead.
var spacingMarkExceptions = rangetable.New(
	0x0E33, 0x0EB3, // Thai/Lao vowel signs treated as Extend
)

func isSpacingMark(r rune) bool {
	if unicode.Is(spacingMarkExceptions, r) {
		return false
	}
	return unicode.Is(unicode.Mc, r)
}

// isControl reports the grapheme break Control property: line/paragraph
// separators, and the Cc/Cf control and format characters, except for
// those reclassified above (CR, LF, ZWJ, Prepend, Extend's Cf members).
func isControl(r rune) bool {
	switch {
	case r == '\r' || r == '\n':
		return false
	case r == zwj:
		return false
	case isPrepend(r):
		return false
	case unicode.Is(unicode.Cf, r):
		// Cf is folded into Extend by GB9, except the few Cf code
		// points that are actually line/paragraph separators or have
		// no combining behavior; treat all Cf as Extend per GB9,
		// matching the common grapheme break data.
		return false
	case unicode.Is(unicode.Zl, r), unicode.Is(unicode.Zp, r):
		return true
	case unicode.Is(unicode.Cc, r):
		return true
	default:
		return false
	}
}
