package imgbuf

import (
	"fmt"
	"sync/atomic"
)

// SourceType is the pixel encoding a codec hands to CopyRow, mirroring
// Dillo's DilloImgType.
type SourceType uint8

const (
	// Indexed rows are one palette index byte per pixel; Cmap must be set.
	Indexed SourceType = iota
	// Gray rows are one luminance byte per pixel.
	Gray
	// CMYKInverted rows are four bytes per pixel, inverted CMYK (Adobe's
	// de facto convention), handled via the "RGBW" quirk below.
	CMYKInverted
	// RGB rows are already three bytes per pixel and need no conversion.
	RGB
)

// ImgBuf is a reference-counted, row-addressed RGB pixel buffer. One
// ImgBuf backs every viewer of a given decode, so a single decode pass
// services any number of subscribers (spec.md section 5's Dicache
// fan-out).
type ImgBuf struct {
	Width, Height int

	rows   []byte // Height rows of Width*3 bytes each, RGB
	rowset int     // number of rows written so far in the current scan

	refs int32

	loggedCMYKQuirk bool
}

// New allocates an ImgBuf of the given pixel dimensions, all rows zeroed.
func New(width, height int) *ImgBuf {
	return &ImgBuf{Width: width, Height: height, rows: make([]byte, width*height*3), refs: 1}
}

// Ref increments the reference count.
func (b *ImgBuf) Ref() { atomic.AddInt32(&b.refs, 1) }

// Unref decrements the reference count. Callers must not touch b after a
// call that brings the count to zero.
func (b *ImgBuf) Unref() {
	if b == nil {
		return
	}
	atomic.AddInt32(&b.refs, -1)
}

// LastReference reports whether this call holds the only remaining
// reference (dw::Imgbuf::lastReference, used by a cache to decide whether
// it may reuse/repaint a buffer in place instead of allocating a new one).
func (b *ImgBuf) LastReference() bool {
	return atomic.LoadInt32(&b.refs) == 1
}

// NewScan resets the row cursor for a fresh pass over a multiple-scan
// image (progressive JPEG, interlaced PNG/GIF): later CopyRow calls
// overwrite rows from the top again.
func (b *ImgBuf) NewScan() {
	b.rowset = 0
}

// Row returns the RGB bytes of scanline y (read-only view; callers must
// copy before mutating).
func (b *ImgBuf) Row(y int) []byte {
	if y < 0 || y >= b.Height {
		return nil
	}
	start := y * b.Width * 3
	return b.rows[start : start+b.Width*3]
}

// CopyRow decodes one source scanline into RGB and writes it into row y,
// per a_Imgbuf_update/Imgbuf_rgb_line. cmap is only consulted for Indexed
// rows; it must hold 3 bytes per palette entry.
func (b *ImgBuf) CopyRow(y int, src []byte, srcType SourceType, cmap []byte) error {
	if y < 0 || y >= b.Height {
		return fmt.Errorf("imgbuf: row %d out of bounds (height %d)", y, b.Height)
	}
	dst := b.rows[y*b.Width*3 : (y+1)*b.Width*3]
	switch srcType {
	case Indexed:
		if cmap == nil {
			return fmt.Errorf("imgbuf: indexed row %d has no color map", y)
		}
		for x := 0; x < b.Width; x++ {
			idx := int(src[x]) * 3
			if idx+3 > len(cmap) {
				return fmt.Errorf("imgbuf: palette index %d out of range", src[x])
			}
			copy(dst[x*3:x*3+3], cmap[idx:idx+3])
		}
	case Gray:
		for x := 0; x < b.Width; x++ {
			v := src[x]
			dst[x*3], dst[x*3+1], dst[x*3+2] = v, v, v
		}
	case CMYKInverted:
		// Treated as "RGBW": everyone confused by Adobe's inverted CMYK
		// JPEGs gets the right picture out of this multiply.
		for x := 0; x < b.Width; x++ {
			white := uint32(src[x*4+3])
			dst[x*3] = byte(uint32(src[x*4]) * white / 0x100)
			dst[x*3+1] = byte(uint32(src[x*4+1]) * white / 0x100)
			dst[x*3+2] = byte(uint32(src[x*4+2]) * white / 0x100)
		}
		if !b.loggedCMYKQuirk {
			T().Errorf("imgbuf: decoding as CMYK treated as RGBW (Adobe-inverted JPEG quirk)")
			b.loggedCMYKQuirk = true
		}
	case RGB:
		copy(dst, src[:b.Width*3])
	default:
		return fmt.Errorf("imgbuf: unknown source type %d", srcType)
	}
	if y+1 > b.rowset {
		b.rowset = y + 1
	}
	return nil
}

// RowsReady reports how many rows (from the top) have been written since
// the last NewScan.
func (b *ImgBuf) RowsReady() int { return b.rowset }
