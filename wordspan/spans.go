package wordspan

import (
	"bufio"
	"bytes"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"

	cords "github.com/dillo-gui/dwcore"
)

// Kind discriminates a Span's role in the alternating word/space sequence.
type Kind uint8

const (
	// Word is a maximal run of non-space, non-newline runes.
	Word Kind = iota
	// Space is a maximal run of ordinary (breaking) space runes.
	Space
	// NonBreakingSpace is a maximal run of U+00A0/U+202F-class runes: a
	// space that must never itself become a break point.
	NonBreakingSpace
	// Newline is a single '\n', which forces a mandatory line break
	// (spec.md's BreakRun).
	Newline
)

// Span is a byte range into a shared text cord, tagged with its role.
type Span struct {
	Pos  uint64
	Len  uint64
	Kind Kind
}

const nbsp = ' '
const narrowNbsp = ' '

func runeKind(r rune) Kind {
	switch {
	case r == '\n':
		return Newline
	case r == nbsp || r == narrowNbsp:
		return NonBreakingSpace
	case unicode.IsSpace(r):
		return Space
	default:
		return Word
	}
}

func isSpaceLike(k Kind) bool {
	return k == Space || k == NonBreakingSpace
}

// Split scans cord[i:j) and returns the maximal alternating sequence of
// Word/Space/NonBreakingSpace/Newline spans, grounded on
// metrics.findWordSpans's single left-to-right scan but tracking the
// separator runs too (the line breaker needs both: a word's trailing
// space carries its own stretch/shrink).
func Split(text cords.Cord, i, j uint64) ([]Span, error) {
	if j <= i {
		return nil, nil
	}
	content, err := text.Report(i, j-i)
	if err != nil {
		return nil, err
	}
	b := []byte(content)
	spans := make([]Span, 0, 16)
	pos := 0
	for pos < len(b) {
		r, width := utf8.DecodeRune(b[pos:])
		if r == utf8.RuneError && width <= 1 {
			width = 1
		}
		kind := runeKind(r)
		start := pos
		pos += width
		if kind == Newline {
			spans = append(spans, Span{Pos: i + uint64(start), Len: uint64(pos - start), Kind: Newline})
			continue
		}
		for pos < len(b) {
			r2, w2 := utf8.DecodeRune(b[pos:])
			if r2 == utf8.RuneError && w2 <= 1 {
				w2 = 1
			}
			k2 := runeKind(r2)
			if k2 != kind || k2 == Newline {
				break
			}
			pos += w2
		}
		spans = append(spans, Span{Pos: i + uint64(start), Len: uint64(pos - start), Kind: kind})
	}
	return splitWordsAtUAX14Breaks(b, i, mergeAdjacentWords(spans)), nil
}

// mergeAdjacentWords folds consecutive Word spans into one; Split never
// actually produces adjacent Word spans (every non-space rune keeps
// extending the current word run), but merging defensively keeps the
// invariant explicit rather than assumed.
func mergeAdjacentWords(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}
	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if last.Kind == Word && s.Kind == Word {
			last.Len += s.Len
			continue
		}
		out = append(out, s)
	}
	return out
}

// splitWordsAtUAX14Breaks further divides each Word span at the legal
// line-break opportunities UAX#14 (github.com/npillmayer/uax/uax14) finds
// inside it, grounded on styled/formatter/firstfit.go's
// segment.NewSegmenter(uax14.NewLineWrap()) loop. Space-delimited scripts
// never produce more than one segment per Word span (there is no legal
// break between adjacent Latin letters), so this is a no-op for them;
// scripts without inter-word spacing, chiefly CJK ideographs, get one Word
// span per breakable cluster instead of one unbreakable blob spanning an
// entire sentence, matching spec.md section 4.1's requirement that the
// line breaker search every candidate break between firstWord and the
// current word.
func splitWordsAtUAX14Breaks(src []byte, base uint64, spans []Span) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Word || s.Len <= 1 {
			out = append(out, s)
			continue
		}
		lo := s.Pos - base
		word := src[lo : lo+s.Len]
		if isASCIIWord(word) {
			// Plain ASCII text has no legal UAX#14 break between two
			// letters of the same word; skip the segmenter call for the
			// overwhelmingly common case instead of paying for it.
			out = append(out, s)
			continue
		}
		offsets := uax14SegmentOffsets(word)
		if len(offsets) <= 1 {
			out = append(out, s)
			continue
		}
		prev := uint64(0)
		for _, off := range offsets {
			n := uint64(off)
			if n <= prev {
				continue
			}
			out = append(out, Span{Pos: s.Pos + prev, Len: n - prev, Kind: Word})
			prev = n
		}
		if prev < s.Len {
			out = append(out, Span{Pos: s.Pos + prev, Len: s.Len - prev, Kind: Word})
		}
	}
	return out
}

func isASCIIWord(word []byte) bool {
	for _, c := range word {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// uax14SegmentOffsets returns the cumulative byte length of each UAX#14
// line-break segment found inside word, in order. A word entirely free of
// legal internal breaks (ordinary Latin text) yields a single offset equal
// to len(word).
func uax14SegmentOffsets(word []byte) []int {
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(bytes.NewReader(word)))
	offsets := make([]int, 0, 4)
	pos := 0
	for segmenter.Next() {
		pos += len(segmenter.Bytes())
		offsets = append(offsets, pos)
	}
	return offsets
}
