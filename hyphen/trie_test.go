package hyphen

import (
	"bytes"
	"testing"
)

func TestTrieBuilderRoundTripsSimpleKeys(t *testing.T) {
	b := NewTrieBuilder(32)
	b.Insert("cat", "3")
	b.Insert("car", "1")
	b.Insert("dog", "2")
	trie := b.CreateTrie()

	if got := trie.Lookup("cat"); got != "3" {
		t.Fatalf("Lookup(cat) = %q, want 3", got)
	}
	if got := trie.Lookup("car"); got != "1" {
		t.Fatalf("Lookup(car) = %q, want 1", got)
	}
	if got := trie.Lookup("dog"); got != "2" {
		t.Fatalf("Lookup(dog) = %q, want 2", got)
	}
	if got := trie.Lookup("cow"); got != "" {
		t.Fatalf("Lookup(cow) = %q, want empty (no such path)", got)
	}
}

func TestTrieBuilderSharesPrefixes(t *testing.T) {
	b := NewTrieBuilder(32)
	b.Insert("a", "1")
	b.Insert("ab", "2")
	b.Insert("abc", "3")
	trie := b.CreateTrie()

	state := Root
	var seen []string
	for i := 0; i < len("abc"); i++ {
		if d := trie.Step("abc"[i], &state); d != "" {
			seen = append(seen, d)
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected a Data hit at each prefix of abc, got %v", seen)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	b := NewTrieBuilder(32)
	b.Insert("ab", "12")
	b.Insert("ac", "21")
	original := b.CreateTrie()

	var buf bytes.Buffer
	if err := Save(&buf, original); err != nil {
		t.Fatalf("Save: %v", err)
	}
	reloaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Size() != original.Size() {
		t.Fatalf("Size mismatch: got %d, want %d", reloaded.Size(), original.Size())
	}
	if got := reloaded.Lookup("ab"); got != "12" {
		t.Fatalf("Lookup(ab) after reload = %q, want 12", got)
	}
	if got := reloaded.Lookup("ac"); got != "21" {
		t.Fatalf("Lookup(ac) after reload = %q, want 21", got)
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	if _, err := Load(bytes.NewReader([]byte("not a trie file at all"))); err == nil {
		t.Fatalf("expected an error for a file missing the magic header")
	}
}

func TestParsePatternExtractsKeyAndGapWeights(t *testing.T) {
	key, weights := parsePattern(".sup4er")
	if key != ".super" {
		t.Fatalf("key = %q, want .super", key)
	}
	if len(weights) != len(key)+1 {
		t.Fatalf("len(weights) = %d, want %d", len(weights), len(key)+1)
	}
	if weights[4] != 4 {
		t.Fatalf("weights[4] = %d, want 4 (the gap after 'sup')", weights[4])
	}
}
