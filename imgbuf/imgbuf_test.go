package imgbuf

import "testing"

func TestCopyRowGray(t *testing.T) {
	b := New(2, 1)
	if err := b.CopyRow(0, []byte{10, 200}, Gray, nil); err != nil {
		t.Fatalf("CopyRow: %v", err)
	}
	want := []byte{10, 10, 10, 200, 200, 200}
	got := b.Row(0)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Row(0) = %v, want %v", got, want)
		}
	}
}

func TestCopyRowIndexed(t *testing.T) {
	b := New(2, 1)
	cmap := []byte{0, 0, 0, 255, 128, 0}
	if err := b.CopyRow(0, []byte{1, 0}, Indexed, cmap); err != nil {
		t.Fatalf("CopyRow: %v", err)
	}
	got := b.Row(0)
	want := []byte{255, 128, 0, 0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Row(0) = %v, want %v", got, want)
		}
	}
}

func TestCopyRowIndexedRequiresColorMap(t *testing.T) {
	b := New(1, 1)
	if err := b.CopyRow(0, []byte{0}, Indexed, nil); err == nil {
		t.Fatalf("expected an error for an indexed row with no color map")
	}
}

func TestCopyRowCMYKInvertedAppliesRGBWQuirk(t *testing.T) {
	b := New(1, 1)
	// white=0x80 halves every channel: 0x100 -> 0x80.
	if err := b.CopyRow(0, []byte{0x80, 0x80, 0x80, 0x80}, CMYKInverted, nil); err != nil {
		t.Fatalf("CopyRow: %v", err)
	}
	got := b.Row(0)
	for _, v := range got {
		if v != 0x40 {
			t.Fatalf("Row(0) = %v, want all 0x40", got)
		}
	}
}

func TestLastReferenceTracksRefCount(t *testing.T) {
	b := New(1, 1)
	if !b.LastReference() {
		t.Fatalf("a freshly created ImgBuf should be its own last reference")
	}
	b.Ref()
	if b.LastReference() {
		t.Fatalf("after Ref(), LastReference() should be false")
	}
	b.Unref()
	if !b.LastReference() {
		t.Fatalf("after matching Unref(), LastReference() should be true again")
	}
}

func TestNewScanResetsRowsReady(t *testing.T) {
	b := New(1, 2)
	_ = b.CopyRow(0, []byte{1, 1, 1}, RGB, nil)
	_ = b.CopyRow(1, []byte{2, 2, 2}, RGB, nil)
	if b.RowsReady() != 2 {
		t.Fatalf("RowsReady() = %d, want 2", b.RowsReady())
	}
	b.NewScan()
	if b.RowsReady() != 0 {
		t.Fatalf("RowsReady() after NewScan() = %d, want 0", b.RowsReady())
	}
}
