package corectx

import (
	"testing"

	"github.com/dillo-gui/dwcore/hyphen"
)

func TestHyphenRouterUnknownLanguage(t *testing.T) {
	r := NewHyphenRouter()
	if breaks := r.Hyphenate([]byte("hyphenation"), "zz-nonexistent"); breaks != nil {
		t.Fatalf("expected nil breaks for an unregistered language, got %v", breaks)
	}
}

func TestHyphenRouterDispatchesByLanguage(t *testing.T) {
	builder := hyphen.NewTrieBuilder(4)
	trie := builder.CreateTrie()
	h := hyphen.New("xx-test", trie, map[string][]int{"hyphenation": {2, 5}})
	hyphen.Register(h)

	r := NewHyphenRouter()
	breaks := r.Hyphenate([]byte("hyphenation"), "xx-test")
	if len(breaks) != 2 || breaks[0] != 2 || breaks[1] != 5 {
		t.Fatalf("expected exception-list breaks [2 5], got %v", breaks)
	}
}

func TestNewAggregatesDicacheAndHyphenRouter(t *testing.T) {
	ctx := New()
	if ctx.Dicache == nil {
		t.Fatal("expected a non-nil Dicache")
	}
	if ctx.Hyphen == nil {
		t.Fatal("expected a non-nil HyphenRouter")
	}
}
