package corectx

import (
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// TextPlatform is a reference Platform implementation that measures text
// width with UAX#11 East-Asian-width-aware grapheme clusters instead of a
// real font backend. spec.md section 6 places the real Platform (glyph
// metrics from an actual font) out of scope as a UI-layer collaborator;
// this one exists so the core is runnable and testable end to end without
// one, grounded on styled/formatter/format.go's own fallback
// (uax11.LatinContext when no Context is configured, uax11.
// ContextFromEnvironment() when the caller wants locale-derived widths).
type TextPlatform struct {
	// Context carries the East-Asian-width disambiguation rules
	// (uax11.Context); nil means LatinContext.
	Context *uax11.Context
	// ColumnWidth is the pixel width of a single fixed-width column; a
	// narrow glyph is 1 column, a wide one 2, per UAX#11.
	ColumnWidth int
	// Viewport is the width reported by GetWidthViewport.
	Viewport int
	// UsesViewport is returned by GetUsesViewport.
	UsesViewport bool
}

// NewTextPlatform returns a TextPlatform using uax11.LatinContext and an
// 8px column, the narrowest sane default for a monospace-ish stand-in.
func NewTextPlatform(viewport int) *TextPlatform {
	return &TextPlatform{Context: uax11.LatinContext, ColumnWidth: 8, Viewport: viewport, UsesViewport: true}
}

// NewTextPlatformFromEnvironment derives the East-Asian-width Context from
// LC_CTYPE/LANG the way format.go's Config.Context defaulting does, for a
// Platform whose wide-glyph detection matches the user's own locale.
func NewTextPlatformFromEnvironment(viewport int) *TextPlatform {
	tp := NewTextPlatform(viewport)
	if ctx := uax11.ContextFromEnvironment(); ctx != nil {
		tp.Context = ctx
	}
	return tp
}

// TextWidth implements Platform by clustering text into extended grapheme
// clusters (uax/grapheme) and summing each cluster's UAX#11 East-Asian
// width category, so CJK and other wide scripts occupy two columns per
// cluster instead of silently being measured as narrow Latin glyphs.
func (p *TextPlatform) TextWidth(font interface{}, text []byte) int {
	gstr := grapheme.StringFromString(string(text))
	cols := uax11.StringWidth(gstr, p.effectiveContext())
	return cols * p.columnWidth()
}

// GetWidthViewport implements Platform.
func (p *TextPlatform) GetWidthViewport() int { return p.Viewport }

// GetUsesViewport implements Platform.
func (p *TextPlatform) GetUsesViewport() bool { return p.UsesViewport }

func (p *TextPlatform) effectiveContext() *uax11.Context {
	if p.Context != nil {
		return p.Context
	}
	return uax11.LatinContext
}

func (p *TextPlatform) columnWidth() int {
	if p.ColumnWidth > 0 {
		return p.ColumnWidth
	}
	return 8
}
