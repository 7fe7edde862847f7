package hyphen

import "sort"

// buildNode is the ordinary (unpacked) trie used while accumulating
// patterns, before TrieBuilder.Build flattens it into a packed array.
type buildNode struct {
	data     string
	children map[byte]*buildNode
}

func newBuildNode() *buildNode {
	return &buildNode{children: make(map[byte]*buildNode)}
}

// TrieBuilder accumulates patterns and packs them into a Trie. pack bounds
// how far before the current array end the packer starts its search for a
// collision-free offset; offsets at or past the end always fit, so at most
// about pack offsets are probed before fresh slots are appended. A larger
// pack trades build time for a denser array.
type TrieBuilder struct {
	pack int
	root *buildNode
	zone *ZoneAllocator
}

// NewTrieBuilder creates an empty builder. pack should be a small multiple
// of 256 (Dillo's own default is 256); values near the trie's character set
// size are enough to almost always find a free slot on the first probe.
func NewTrieBuilder(pack int) *TrieBuilder {
	if pack <= 0 {
		pack = 256
	}
	return &TrieBuilder{pack: pack, root: newBuildNode(), zone: NewZoneAllocator(4096)}
}

// Insert adds key -> value. A later Insert of the same key overwrites the
// earlier value.
func (b *TrieBuilder) Insert(key, value string) {
	n := b.root
	for i := 0; i < len(key); i++ {
		c := key[i]
		child, ok := n.children[c]
		if !ok {
			child = newBuildNode()
			n.children[c] = child
		}
		n = child
	}
	n.data = b.zone.Intern(value)
}

// packState holds the in-progress flat array and its occupancy bitmap
// during CreateTrie.
type packState struct {
	nodes    []TrieNode
	occupied []bool
}

func (s *packState) ensureLen(n int) {
	for len(s.nodes) < n {
		s.nodes = append(s.nodes, TrieNode{})
		s.occupied = append(s.occupied, false)
	}
}

// findOffset returns the first offset, searching from pack slots before the
// current array end, at which the state's own base slot (offset+0) and
// every byte in keys land on unoccupied slots. Reserving the base slot
// keeps every state's offset unique and keeps child states off offset 0,
// which Root owns and which TrieNode.Next uses to mean "no children".
func (s *packState) findOffset(keys []byte, pack int) int {
	start := len(s.occupied) - pack
	if start < 0 {
		start = 0
	}
	for offset := start; ; offset++ {
		ok := offset >= len(s.occupied) || !s.occupied[offset]
		for _, c := range keys {
			idx := offset + int(c)
			if ok && idx < len(s.occupied) && s.occupied[idx] {
				ok = false
				break
			}
		}
		if ok {
			return offset
		}
	}
}

func (s *packState) place(offset int, n *buildNode, pack int) uint16 {
	keys := make([]byte, 0, len(n.children))
	for c := range n.children {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	s.ensureLen(offset + 1)
	s.occupied[offset] = true
	for _, c := range keys {
		idx := offset + int(c)
		s.ensureLen(idx + 1)
		s.occupied[idx] = true
	}
	for _, c := range keys {
		idx := offset + int(c)
		child := n.children[c]
		tn := TrieNode{C: c, Data: child.data}
		if len(child.children) > 0 {
			childOffset := s.findOffset(childKeys(child), pack)
			tn.Next = s.place(childOffset, child, pack)
		}
		s.nodes[idx] = tn
	}
	return uint16(offset)
}

func childKeys(n *buildNode) []byte {
	keys := make([]byte, 0, len(n.children))
	for c := range n.children {
		keys = append(keys, c)
	}
	return keys
}

// CreateTrie packs the accumulated patterns into a flat Trie. Root's
// children are always packed at offset 0, matching Trie.Root's fixed
// value; everything below that is placed by first-fit search.
func (b *TrieBuilder) CreateTrie() *Trie {
	s := &packState{}
	s.place(0, b.root, b.pack)
	return NewTrie(s.nodes)
}
