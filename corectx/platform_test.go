package corectx

import "testing"

func TestTextPlatformWidensCJKClusters(t *testing.T) {
	p := NewTextPlatform(800)
	latin := p.TextWidth(nil, []byte("ab"))
	cjk := p.TextWidth(nil, []byte("中文")) // two wide Han characters
	if cjk <= latin {
		t.Fatalf("expected CJK width %d to exceed two narrow Latin glyphs %d", cjk, latin)
	}
}

func TestTextPlatformViewportAccessors(t *testing.T) {
	p := NewTextPlatform(640)
	if p.GetWidthViewport() != 640 {
		t.Fatalf("expected viewport 640, got %d", p.GetWidthViewport())
	}
	if !p.GetUsesViewport() {
		t.Fatal("expected UsesViewport true by default")
	}
}

func TestTextPlatformDefaultsContextWhenNil(t *testing.T) {
	p := &TextPlatform{}
	if p.effectiveContext() == nil {
		t.Fatal("expected LatinContext fallback, got nil")
	}
	if p.columnWidth() != 8 {
		t.Fatalf("expected default column width 8, got %d", p.columnWidth())
	}
}
