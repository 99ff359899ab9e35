package source_test

import (
	"testing"

	"github.com/BonnyAD9/place-macro/internal/source"
)

func TestAddVirtualAndResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("expr", []byte("abc\ndef\nghi"))

	f := fs.Get(id)
	if f.Flags&source.FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag, got %v", f.Flags)
	}

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{6, 2, 3},
		{8, 3, 1},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(source.Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("offset %d: got %d:%d, want %d:%d",
				tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("expr", []byte("first\nsecond\nthird"))

	if got := fs.Line(id, 1); got != "first" {
		t.Errorf("line 1 = %q, want %q", got, "first")
	}
	if got := fs.Line(id, 2); got != "second" {
		t.Errorf("line 2 = %q, want %q", got, "second")
	}
	if got := fs.Line(id, 3); got != "third" {
		t.Errorf("line 3 = %q, want %q", got, "third")
	}
	if got := fs.Line(id, 4); got != "" {
		t.Errorf("line 4 = %q, want empty", got)
	}
}

func TestSpanCover(t *testing.T) {
	a := source.Span{File: 0, Start: 4, End: 8}
	b := source.Span{File: 0, Start: 2, End: 6}
	c := a.Cover(b)
	if c.Start != 2 || c.End != 8 {
		t.Errorf("cover = %v, want 0:2-8", c)
	}

	other := source.Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("cover across files = %v, want %v", got, a)
	}
}
