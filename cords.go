package cords

import (
	"errors"
	"io"
	"strings"
)

// ErrIndexOutOfBounds signals an out-of-range (pos, length) pair passed to
// Report or a similar positional accessor.
var ErrIndexOutOfBounds = errors.New("cords: index out of bounds")

// Cord is an immutable, zero-copy view over a byte range of a shared
// backing array. The zero value is the empty cord.
type Cord struct {
	buf []byte
}

// FromString returns a Cord holding a private copy of s's bytes.
func FromString(s string) Cord {
	if s == "" {
		return Cord{}
	}
	buf := make([]byte, len(s))
	copy(buf, s)
	return Cord{buf: buf}
}

// Len reports the cord's length in bytes.
func (c Cord) Len() uint64 { return uint64(len(c.buf)) }

// IsVoid reports whether c holds no text.
func (c Cord) IsVoid() bool { return len(c.buf) == 0 }

// String returns the cord's full content.
func (c Cord) String() string {
	if c.buf == nil {
		return ""
	}
	return string(c.buf)
}

// Report returns the length bytes of text starting at byte offset pos.
func (c Cord) Report(pos, length uint64) (string, error) {
	if pos > uint64(len(c.buf)) || length > uint64(len(c.buf))-pos {
		return "", ErrIndexOutOfBounds
	}
	return string(c.buf[pos : pos+length]), nil
}

// Reader returns an io.Reader over the cord's full content, for callers
// (hyphen's pattern/exception-file loaders) that want to stream it through
// bufio.Scanner rather than materialize and re-slice a Go string.
func (c Cord) Reader() io.Reader {
	return strings.NewReader(c.String())
}

// Builder accumulates bytes into a single growing backing array and
// produces Cords that share it read-only: the append-only arena spec.md
// section 3 asks a ZoneAllocator for ("owns the concatenated data strings
// so that trie nodes hold stable pointers"), applied here to paragraph
// text instead of trie pattern data. A Builder is not safe for concurrent
// use; each caller (textfile's prefetching loader) owns one at a time.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AppendBytes appends p to the builder's backing array. It never fails in
// this minimal arena (there is no chunk capacity to exceed); the error
// return exists so callers that stream input incrementally (textfile.Load)
// have a uniform place to propagate a future validation failure.
func (b *Builder) AppendBytes(p []byte) error {
	b.buf = append(b.buf, p...)
	return nil
}

// Cord returns a Cord over everything appended so far. The returned Cord
// shares the builder's backing array; further appends to b do not affect
// a Cord already produced, since append either grows in place beyond the
// Cord's reported length (invisible to Report, which is bounds-checked
// against the length captured here) or reallocates.
func (b *Builder) Cord() Cord {
	if len(b.buf) == 0 {
		return Cord{}
	}
	return Cord{buf: b.buf[:len(b.buf):len(b.buf)]}
}
