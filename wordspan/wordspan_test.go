package wordspan

import (
	"testing"

	cords "github.com/dillo-gui/dwcore"
	"github.com/dillo-gui/dwcore/runmodel"
)

type fakeStyle struct{}

func (fakeStyle) Justify() bool             { return false }
func (fakeStyle) Alignment() runmodel.Alignment { return runmodel.Left }
func (fakeStyle) Language() string          { return "" }

type fakePlatform struct{}

func (fakePlatform) TextWidth(font interface{}, text []byte) int { return len(text) * 8 }
func (fakePlatform) GetWidthViewport() int                       { return 400 }
func (fakePlatform) GetUsesViewport() bool                       { return false }

func TestSplitAlternatesWordsAndSpaces(t *testing.T) {
	text := cords.FromString("hello world\nagain")
	spans, err := Split(text, 0, text.Len())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	wantKinds := []Kind{Word, Space, Word, Newline, Word}
	if len(spans) != len(wantKinds) {
		t.Fatalf("got %d spans, want %d: %+v", len(spans), len(wantKinds), spans)
	}
	for i, k := range wantKinds {
		if spans[i].Kind != k {
			t.Errorf("span %d kind = %v, want %v", i, spans[i].Kind, k)
		}
	}
}

func TestSplitReportsNonBreakingSpace(t *testing.T) {
	text := cords.FromString("a b")
	spans, err := Split(text, 0, text.Len())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(spans) != 3 || spans[1].Kind != NonBreakingSpace {
		t.Fatalf("expected [Word, NonBreakingSpace, Word], got %+v", spans)
	}
}

func TestFromTextProducesBreakRunForNewline(t *testing.T) {
	text := cords.FromString("one\ntwo")
	spans, err := Split(text, 0, text.Len())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	runs, err := FromText(&text, spans, fakePlatform{}, fakeStyle{})
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	var sawBreak bool
	for _, r := range runs {
		if _, ok := r.(*runmodel.BreakRun); ok {
			sawBreak = true
		}
	}
	if !sawBreak {
		t.Fatalf("expected a BreakRun in %+v", runs)
	}
}

func TestSplitSubdividesUnspacedCJKRun(t *testing.T) {
	text := cords.FromString("你好世界")
	spans, err := Split(text, 0, text.Len())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(spans) < 2 {
		t.Fatalf("expected more than one Word span for an unspaced CJK run, got %+v", spans)
	}
	for _, s := range spans {
		if s.Kind != Word {
			t.Fatalf("expected every span to be Word, got %+v", spans)
		}
	}
}

func TestFromTextAttachesSpaceToPrecedingWord(t *testing.T) {
	text := cords.FromString("hi there")
	spans, err := Split(text, 0, text.Len())
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	runs, err := FromText(&text, spans, fakePlatform{}, fakeStyle{})
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	first, ok := runs[0].(*runmodel.TextRun)
	if !ok {
		t.Fatalf("expected first run to be a TextRun, got %T", runs[0])
	}
	if first.OrigSpace.Width == 0 || !first.OrigSpace.IsBreaking {
		t.Fatalf("expected the space after %q to be attached and breaking, got %+v", "hi", first.OrigSpace)
	}
}
