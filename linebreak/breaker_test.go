package linebreak

import (
	"testing"

	"github.com/dillo-gui/dwcore/runmodel"
)

type fakeStyle struct {
	justify bool
	align   runmodel.Alignment
	lang    string
}

func (s fakeStyle) Justify() bool                 { return s.justify }
func (s fakeStyle) Alignment() runmodel.Alignment { return s.align }
func (s fakeStyle) Language() string              { return s.lang }

// fakePlatform reports a huge viewport so that NoFloats' own width is always
// the binding constraint in these tests.
type fakePlatform struct{}

func (fakePlatform) TextWidth(font interface{}, text []byte) int { return len(text) }
func (fakePlatform) GetWidthViewport() int                       { return 1 << 20 }
func (fakePlatform) GetUsesViewport() bool                       { return false }

// word builds a fixed-width TextRun of width px, followed by a breaking
// space of the given width (0 for the last word of a line, which carries no
// trailing space).
func word(px, spaceWidth int, style runmodel.StyleRef) *runmodel.TextRun {
	r := runmodel.NewTextRun(nil, 0, 0, style, px, 10, 2)
	r.Flags = runmodel.WordStart | runmodel.WordEnd
	if spaceWidth > 0 {
		r.OrigSpace = runmodel.Space{Width: spaceWidth, IsBreaking: true}
	}
	return r
}

func TestWordWrapBreaksAtOverflow(t *testing.T) {
	style := fakeStyle{align: runmodel.Left}
	lb := NewLineBreaker(fakePlatform{}, NoFloats(100), nil, "en")
	// Five 30px words separated by 10px spaces: a 100px line fits exactly
	// two words (30+10+30=70) before a third would overflow (70+10+30=110).
	for i := 0; i < 5; i++ {
		spaceWidth := 10
		if i == 4 {
			spaceWidth = 0
		}
		lb.AddRun(word(30, spaceWidth, style))
	}
	lb.ShowMissingLines()

	lines := lb.Lines()
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %+v", len(lines), lines)
	}
	wantLast := []int{1, 3, 4}
	for i, want := range wantLast {
		if lines[i].LastWord != want {
			t.Errorf("line %d LastWord = %d, want %d", i, lines[i].LastWord, want)
		}
	}
	// Invariant 1 (spec.md section 8): lines partition [0, lastRunIndex]
	// with no gaps or overlaps.
	if lines[0].FirstWord != 0 {
		t.Errorf("first line FirstWord = %d, want 0", lines[0].FirstWord)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i].FirstWord != lines[i-1].LastWord+1 {
			t.Errorf("line %d FirstWord = %d, want %d", i, lines[i].FirstWord, lines[i-1].LastWord+1)
		}
	}
}

func TestLineTopIsNonDecreasing(t *testing.T) {
	style := fakeStyle{align: runmodel.Left}
	lb := NewLineBreaker(fakePlatform{}, NoFloats(50), nil, "en")
	for i := 0; i < 6; i++ {
		spaceWidth := 5
		if i == 5 {
			spaceWidth = 0
		}
		lb.AddRun(word(20, spaceWidth, style))
	}
	lb.ShowMissingLines()
	top := -1
	for _, ln := range lb.Lines() {
		if ln.Top < top {
			t.Fatalf("line top decreased: %d after %d", ln.Top, top)
		}
		top = ln.Top
	}
}

func TestBreakRunForcesMandatoryBreak(t *testing.T) {
	style := fakeStyle{align: runmodel.Left}
	lb := NewLineBreaker(fakePlatform{}, NoFloats(1000), nil, "en")
	lb.AddRun(word(30, 0, style))
	lb.AddRun(&runmodel.BreakRun{BreakSpace: 4})
	lb.AddRun(word(30, 0, style))
	lb.ShowMissingLines()

	lines := lb.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (forced by the break run): %+v", len(lines), lines)
	}
	if lines[0].LastWord != 1 {
		t.Fatalf("expected the break run itself to end the first line, got LastWord=%d", lines[0].LastWord)
	}
}

func TestJustifyStretchesNonFinalLineToIdealWidth(t *testing.T) {
	style := fakeStyle{align: runmodel.Left, justify: true}
	lb := NewLineBreaker(fakePlatform{}, NoFloats(100), nil, "en")
	r1 := word(30, 0, style)
	r1.OrigSpace = runmodel.Space{Width: 10, Stretch: 20, Shrink: 5, IsBreaking: true, Style: style}
	lb.AddRun(r1)
	r2 := word(30, 0, style)
	r2.OrigSpace = runmodel.Space{Width: 10, Stretch: 20, Shrink: 5, IsBreaking: true, Style: style}
	lb.AddRun(r2)
	lb.AddRun(word(30, 0, style))
	lb.ShowMissingLines()

	lines := lb.Lines()
	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	// The first (non-final) line should have been stretched toward the
	// 100px ideal width by justification; an unjustified line of two 30px
	// words plus one 10px space is only 70px wide.
	if lines[0].MaxLineWidth <= 70 {
		t.Errorf("expected justification to stretch the first line past 70px, got %d", lines[0].MaxLineWidth)
	}
}

func TestGetExtremesTracksMinAndMaxWidth(t *testing.T) {
	style := fakeStyle{align: runmodel.Left}
	lb := NewLineBreaker(fakePlatform{}, NoFloats(1000), nil, "en")
	lb.AddRun(word(30, 10, style))
	lb.AddRun(word(40, 0, style))

	ext := lb.GetExtremes()
	if ext.MaxWidth != 30+10+40 {
		t.Errorf("MaxWidth = %d, want %d", ext.MaxWidth, 80)
	}
	if ext.MinWidth > ext.MaxWidth {
		t.Errorf("MinWidth (%d) > MaxWidth (%d)", ext.MinWidth, ext.MaxWidth)
	}
}

func TestRewrapRebuildsFromFloor(t *testing.T) {
	style := fakeStyle{align: runmodel.Left}
	lb := NewLineBreaker(fakePlatform{}, NoFloats(100), nil, "en")
	for i := 0; i < 4; i++ {
		spaceWidth := 10
		if i == 3 {
			spaceWidth = 0
		}
		lb.AddRun(word(30, spaceWidth, style))
	}
	lb.ShowMissingLines()
	before := len(lb.Lines())

	lb.SetRewrapFloor(0)
	lb.Rewrap()
	lb.ShowMissingLines()

	if len(lb.Lines()) != before {
		t.Fatalf("rewrap with an unchanged run vector and width changed line count: %d vs %d", len(lb.Lines()), before)
	}
}
