package hyphen

import (
	"bufio"
	"strings"
	"sync"

	cords "github.com/dillo-gui/dwcore"
	"github.com/dillo-gui/dwcore/textfile"
	"golang.org/x/text/unicode/norm"
)

// Hyphenator hyphenates words in one language using a compiled pattern
// trie plus an exception list of fully spelled-out overrides, and caches
// every word it has already decided on (dw::Hyphenator's own per-instance
// behavior, since pattern matching dominates its cost).
type Hyphenator struct {
	lang       string
	trie       *Trie
	exceptions map[string][]int // lower-cased exception word -> 0-indexed break positions
	mu         sync.Mutex
	cache      map[string][]int
}

// registry is the process-wide set of loaded Hyphenators, keyed by
// language tag, mirroring dw::Hyphenator::getHyphenator's static table.
var (
	registryMu sync.Mutex
	registry   = map[string]*Hyphenator{}
)

// New builds a Hyphenator directly from an already-compiled trie and
// exception map; used by LoadHyphenator and by tests that want to skip
// file I/O.
func New(lang string, trie *Trie, exceptions map[string][]int) *Hyphenator {
	return &Hyphenator{lang: lang, trie: trie, exceptions: exceptions, cache: make(map[string][]int)}
}

// Register installs h as the Hyphenator returned for h's language by
// Get, matching dw::Hyphenator::getHyphenator's lazily-populated table
// except that loading itself is the caller's job (Register just publishes
// an already-built instance).
func Register(h *Hyphenator) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[h.lang] = h
}

// Get returns the registered Hyphenator for lang, or nil if none was
// registered (callers should treat nil as "hyphenation unavailable").
func Get(lang string) *Hyphenator {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registry[lang]
}

// LoadHyphenator reads a pattern file and an optional exception file
// (paths resolved through textfile.Load, so both may be local paths or
// anything else that package's prefetching loader accepts), compiles the
// patterns into a packed trie with the given pack factor, and returns the
// resulting Hyphenator without registering it.
func LoadHyphenator(lang, patternPath, exceptionPath string, pack int) (*Hyphenator, error) {
	patCord, err := textfile.Load(patternPath, 0, 0, nil)
	if err != nil {
		return nil, err
	}
	builder := NewTrieBuilder(pack)
	if err := loadPatterns(patCord, builder); err != nil {
		return nil, err
	}

	exceptions := map[string][]int{}
	if exceptionPath != "" {
		excCord, err := textfile.Load(exceptionPath, 0, 0, nil)
		if err != nil {
			return nil, err
		}
		if err := loadExceptions(excCord, exceptions); err != nil {
			return nil, err
		}
	}
	return New(lang, builder.CreateTrie(), exceptions), nil
}

func loadPatterns(cord cords.Cord, builder *TrieBuilder) error {
	sc := bufio.NewScanner(cord.Reader())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			key, weights := parsePattern(tok)
			if key == "" {
				continue
			}
			builder.Insert(key, encodeWeights(weights))
		}
	}
	return sc.Err()
}

// loadExceptions parses a Liang exception list: one hyphenated word per
// line/field, e.g. "as-so-ciate", whose explicit hyphens become the break
// positions recorded for the un-hyphenated word (dw::Hyphenator's
// exception table overrides pattern matching entirely for that word).
func loadExceptions(cord cords.Cord, out map[string][]int) error {
	sc := bufio.NewScanner(cord.Reader())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			plain := strings.ReplaceAll(tok, "-", "")
			var breaks []int
			pos := 0
			for i := 0; i < len(tok); i++ {
				if tok[i] == '-' {
					breaks = append(breaks, pos)
				} else {
					pos++
				}
			}
			out[strings.ToLower(plain)] = breaks
		}
	}
	return sc.Err()
}

// Hyphenate returns the 0-indexed byte positions within word at which a
// hyphenation break may be inserted. It ignores lang (the Hyphenator is
// already bound to one language); the parameter exists to satisfy
// linebreak.Hyphenator, which is handed words in a run stream that may mix
// languages and lets the caller route to the right instance via Get.
func (h *Hyphenator) Hyphenate(word []byte, lang string) []int {
	if h == nil || !isHyphenationCandidate(word) {
		return nil
	}
	// Normalize to NFC before folding case: pattern files are authored
	// against precomposed letters (e.g. "ü", not "u" + combining
	// diaeresis), and a decomposed input word would silently miss every
	// trie edge keyed on the precomposed byte.
	key := strings.ToLower(norm.NFC.String(string(word)))

	h.mu.Lock()
	if cached, ok := h.cache[key]; ok {
		h.mu.Unlock()
		return cached
	}
	h.mu.Unlock()

	var breaks []int
	if ex, ok := h.exceptions[key]; ok {
		breaks = ex
	} else {
		padded := "." + key + "."
		weights := applyPatterns(h.trie, padded)
		breaks = breaksFromWeights(weights, len(key))
	}

	h.mu.Lock()
	h.cache[key] = breaks
	h.mu.Unlock()
	return breaks
}
