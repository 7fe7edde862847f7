package cords

import (
	"errors"
	"io"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewStringCord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	c := FromString("Hello World")
	t.Logf("c = '%s'", c)
	if c.String() != "Hello World" {
		t.Error("Expected cords.String() to be 'Hello World', is not")
	}
	if c.Len() != 11 {
		t.Errorf("Expected cord len to be 11, is %d", c.Len())
	}
}

func TestEmptyCordIsVoid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	var c Cord
	if !c.IsVoid() {
		t.Error("zero value Cord should be void")
	}
	if FromString("").IsVoid() == false {
		t.Error("FromString(\"\") should be void")
	}
}

func TestCordReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	c := FromString("Hello, World")
	s, err := c.Report(7, 5)
	if err != nil {
		t.Fatal(err.Error())
	}
	if s != "World" {
		t.Fatalf("expected 'World', got %q", s)
	}
}

func TestCordReportOutOfBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	c := FromString("Hello")
	if _, err := c.Report(3, 10); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := c.Report(6, 0); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestCordReader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	c := FromString("line one\nline two\n")
	buf, err := io.ReadAll(c.Reader())
	if err != nil {
		t.Fatal(err.Error())
	}
	if string(buf) != c.String() {
		t.Fatalf("reader content mismatch: got=%q want=%q", string(buf), c.String())
	}
}

func TestBuilderAppendAndCord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	b := NewBuilder()
	if err := b.AppendBytes([]byte("Hello, ")); err != nil {
		t.Fatal(err.Error())
	}
	if err := b.AppendBytes([]byte("World")); err != nil {
		t.Fatal(err.Error())
	}
	c := b.Cord()
	if c.String() != "Hello, World" {
		t.Fatalf("unexpected builder result: %q", c.String())
	}
}

func TestBuilderCordStableAfterFurtherAppend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	b := NewBuilder()
	_ = b.AppendBytes([]byte("abc"))
	c1 := b.Cord()
	_ = b.AppendBytes([]byte("def"))
	c2 := b.Cord()

	if c1.String() != "abc" {
		t.Fatalf("c1 changed after later append: got %q", c1.String())
	}
	if c2.String() != "abcdef" {
		t.Fatalf("unexpected c2: got %q", c2.String())
	}
}

func TestEmptyBuilderProducesVoidCord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cords")
	defer teardown()
	//
	b := NewBuilder()
	c := b.Cord()
	if !c.IsVoid() {
		t.Error("empty builder should produce a void cord")
	}
}
