package hyphen

// TrieNode is one edge slot of the packed trie: it holds the byte that
// labels the edge leading here, the offset at which this state's own
// children are packed (0 if this state has none), and the weight-pattern
// payload attached when this state terminates a pattern.
type TrieNode struct {
	C    byte
	Next uint16
	Data string
}

// Root is the state every walk begins from.
const Root = 0

// Trie is a packed (double-array-style) trie: a state is an integer offset
// into array, and the edge labeled c from that state lives at array[state+c].
// This keeps lookups to one bounds check and one array read per character,
// at the cost of the packing work TrieBuilder performs up front.
type Trie struct {
	array []TrieNode
}

// NewTrie wraps an already-packed node array (produced by TrieBuilder or by
// Load) as a Trie.
func NewTrie(array []TrieNode) *Trie {
	return &Trie{array: array}
}

func (t *Trie) validState(state int) bool {
	return state >= 0 && state < len(t.array)
}

// Step walks one edge labeled c from *state, returning the payload attached
// to the resulting state (empty if none) and mutating *state to the new
// state, or -1 if there is no such edge (the walk is dead from here on).
func (t *Trie) Step(c byte, state *int) string {
	if !t.validState(*state) {
		*state = -1
		return ""
	}
	idx := *state + int(c)
	if idx < 0 || idx >= len(t.array) {
		*state = -1
		return ""
	}
	tn := t.array[idx]
	if tn.C != c {
		*state = -1
		return ""
	}
	if tn.Next > 0 {
		*state = int(tn.Next)
	} else {
		*state = -1
	}
	return tn.Data
}

// Lookup walks the full key from Root and returns the payload at the
// terminal state, or "" if key is not a path in the trie (a prefix miss
// short-circuits immediately).
func (t *Trie) Lookup(key string) string {
	state := Root
	var data string
	for i := 0; i < len(key); i++ {
		data = t.Step(key[i], &state)
		if state < 0 && i < len(key)-1 {
			return ""
		}
	}
	return data
}

// Size reports the number of packed node slots (including unused ones).
func (t *Trie) Size() int { return len(t.array) }
