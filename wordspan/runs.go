package wordspan

import (
	cords "github.com/dillo-gui/dwcore"
	"github.com/dillo-gui/dwcore/linebreak"
	"github.com/dillo-gui/dwcore/runmodel"
)

// spaceStretchPercent and spaceShrinkPercent mirror Dillo's default
// inter-word elasticity for proportional-width text: a space can grow by
// up to half its own width and shrink by a third.
const (
	spaceStretchPercent = 50
	spaceShrinkPercent  = 33
)

// FromText measures every span in spans against platform/style and
// returns the corresponding Run stream: Word spans become TextRuns (with
// CanBeHyphenated set when the word is long enough per the hyphen
// package's own candidate rule, mirrored locally to avoid a dependency on
// it), Newline spans become BreakRuns, and both kinds of Space become the
// OrigSpace trailing the most recently emitted TextRun (a leading space at
// the very start of the paragraph becomes a zero-width TextRun solely to
// carry it, since Run's OrigSpace always trails a concrete run).
func FromText(zone *cords.Cord, spans []Span, platform linebreak.Platform, style runmodel.StyleRef) ([]runmodel.Run, error) {
	runs := make([]runmodel.Run, 0, len(spans))

	attachSpace := func(sp runmodel.Space) {
		if len(runs) == 0 {
			runs = append(runs, runmodel.NewTextRun(zone, 0, 0, style, 0, 0, 0))
		}
		if tr, ok := runs[len(runs)-1].(*runmodel.TextRun); ok {
			tr.OrigSpace = sp
		}
	}

	for _, s := range spans {
		switch s.Kind {
		case Word:
			text, err := zone.Report(s.Pos, s.Len)
			if err != nil {
				return nil, err
			}
			width := platform.TextWidth(style, []byte(text))
			tr := runmodel.NewTextRun(zone, s.Pos, s.Len, style, width, 0, 0)
			tr.Flags |= runmodel.WordStart | runmodel.WordEnd
			if isHyphenationCandidateLen(s.Len) {
				tr.Flags |= runmodel.CanBeHyphenated
			}
			runs = append(runs, tr)
		case Space:
			text, err := zone.Report(s.Pos, s.Len)
			if err != nil {
				return nil, err
			}
			width := platform.TextWidth(style, []byte(text))
			sp := runmodel.Space{
				Width:      width,
				Stretch:    width * spaceStretchPercent / 100,
				Shrink:     width * spaceShrinkPercent / 100,
				Style:      style,
				IsBreaking: true,
			}
			attachSpace(sp)
		case NonBreakingSpace:
			text, err := zone.Report(s.Pos, s.Len)
			if err != nil {
				return nil, err
			}
			width := platform.TextWidth(style, []byte(text))
			attachSpace(runmodel.Space{Width: width, Style: style, IsBreaking: false})
		case Newline:
			runs = append(runs, &runmodel.BreakRun{})
		}
	}
	return runs, nil
}

// isHyphenationCandidateLen mirrors hyphen.isHyphenationCandidate's length
// floor for word spans whose byte content we haven't loaded yet (the
// digit/internal-hyphen checks still run again, cheaply, once the
// hyphenator actually receives the word's bytes).
func isHyphenationCandidateLen(byteLen uint64) bool {
	return byteLen >= 6
}
