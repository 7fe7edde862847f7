package hyphen

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// magic is written as the first bytes of a saved trie file; Load refuses
// anything that doesn't start with it.
const magic = "Dw-Hyphenator\n"

// Save writes t in the on-disk format: magic, a little-endian u32 node
// count, then that many {u8 c, u16_le next, u16_le data_len, data bytes}
// records, in array order.
func Save(w io.Writer, t *Trie) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(magic); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(t.array))); err != nil {
		return err
	}
	for _, n := range t.array {
		if err := bw.WriteByte(n.C); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, n.Next); err != nil {
			return err
		}
		if len(n.Data) > 0xFFFF {
			return fmt.Errorf("hyphen: node data too long to serialize (%d bytes)", len(n.Data))
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(n.Data))); err != nil {
			return err
		}
		if _, err := bw.WriteString(n.Data); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads a trie file written by Save.
func Load(r io.Reader) (*Trie, error) {
	br := bufio.NewReader(r)
	buf := make([]byte, len(magic))
	if _, err := io.ReadFull(br, buf); err != nil {
		return nil, fmt.Errorf("hyphen: reading magic: %w", err)
	}
	if string(buf) != magic {
		return nil, fmt.Errorf("hyphen: not a hyphenation trie file")
	}
	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("hyphen: reading node count: %w", err)
	}
	zone := NewZoneAllocator(int(count) * 4)
	nodes := make([]TrieNode, count)
	for i := range nodes {
		c, err := br.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("hyphen: reading node %d: %w", i, err)
		}
		var next uint16
		if err := binary.Read(br, binary.LittleEndian, &next); err != nil {
			return nil, fmt.Errorf("hyphen: reading node %d: %w", i, err)
		}
		var dataLen uint16
		if err := binary.Read(br, binary.LittleEndian, &dataLen); err != nil {
			return nil, fmt.Errorf("hyphen: reading node %d: %w", i, err)
		}
		var data string
		if dataLen > 0 {
			raw := make([]byte, dataLen)
			if _, err := io.ReadFull(br, raw); err != nil {
				return nil, fmt.Errorf("hyphen: reading node %d data: %w", i, err)
			}
			data = zone.Intern(string(raw))
		}
		nodes[i] = TrieNode{C: c, Next: next, Data: data}
	}
	return NewTrie(nodes), nil
}
