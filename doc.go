/*
Package cords provides the shared text zone spec.md section 3 describes:
an immutable, append-only byte arena that Run byte-ranges index into
instead of holding raw pointers ("Run: byte range into a shared text
zone"). A Builder accumulates bytes into a single growing backing array;
Cord is a read-only, zero-copy view over a byte range of whatever array a
Builder last produced. Two Cords taken from Builder snapshots of the same
growing array share the underlying bytes; a Cord taken directly from a
string (FromString) owns a private copy.

All positional APIs in this package operate on byte offsets, not rune
indexes. Callers that need rune-level navigation convert explicitly at
their own boundary (wordspan does this when splitting UTF-8 text into
word/space spans).

Typical usage:

	b := cords.NewBuilder()
	_ = b.AppendBytes([]byte("Hello, "))
	_ = b.AppendBytes([]byte("World"))
	c := b.Cord()
	s, _ := c.Report(0, c.Len())
*/
package cords
