package grid

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
)

func TestParse(t *testing.T) {
	g := NewWithT(t)

	grid, err := ParseString("@.@\n.@.\r\n@@@\n\n", ParseOptions{})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(grid.Width()).To(Equal(3))
	g.Expect(grid.Height()).To(Equal(3))
	g.Expect(grid.Count(KindActive)).To(Equal(6))
	g.Expect(grid.Count(KindEmpty)).To(Equal(3))
	g.Expect(grid.String()).To(Equal("@.@\n.@.\n@@@\n"))
}

func TestParseLenientMapsUnknownToEmpty(t *testing.T) {
	grid, err := ParseString("@x\n#@\n", ParseOptions{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !grid.At(0, 1).IsEmpty() || !grid.At(1, 0).IsEmpty() {
		t.Errorf("unknown symbols should read as empty:\n%s", grid)
	}
}

func TestParseStrictRejectsUnknownSymbol(t *testing.T) {
	_, err := ParseString("@.\n.x\n", ParseOptions{Strict: true})
	if !errors.Is(err, ErrMalformedGrid) {
		t.Fatalf("expected ErrMalformedGrid, got %v", err)
	}
	var mge *MalformedGridError
	if !errors.As(err, &mge) {
		t.Fatalf("expected *MalformedGridError, got %T", err)
	}
	if mge.Row != 1 || mge.Col != 1 {
		t.Errorf("expected position (1,1), got (%d,%d)", mge.Row, mge.Col)
	}
}

func TestParseCountsSymbolsNotBytes(t *testing.T) {
	g, err := ParseString("é@\n@@\n", ParseOptions{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if g.Width() != 2 || g.Height() != 2 {
		t.Fatalf("expected 2x2, got %dx%d", g.Width(), g.Height())
	}
	if !g.At(0, 0).IsEmpty() || g.Count(KindActive) != 3 {
		t.Errorf("unexpected grid:\n%s", g)
	}

	_, err = ParseString("@é\n@@\n", ParseOptions{Strict: true})
	var mge *MalformedGridError
	if !errors.As(err, &mge) || mge.Col != 1 {
		t.Errorf("expected error at column 1, got %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"blank lines only", "\n\n"},
		{"ragged rows", "@@@\n@@\n@@@\n"},
		{"empty interior row", "@@\n\n@@\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input, ParseOptions{})
			if !errors.Is(err, ErrMalformedGrid) {
				t.Errorf("expected ErrMalformedGrid, got %v", err)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("@@\n@.\n"), 0644); err != nil {
		t.Fatal(err)
	}
	grid, err := ParseFile(path, ParseOptions{})
	if err != nil {
		t.Fatalf("parse file failed: %v", err)
	}
	if grid.Count(KindActive) != 3 {
		t.Errorf("expected 3 active cells, got %d", grid.Count(KindActive))
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing"), ParseOptions{}); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFromRowsRejectsDecayingCells(t *testing.T) {
	_, err := FromRows([][]Cell{{Active, Decaying(3)}})
	var mge *MalformedGridError
	if !errors.As(err, &mge) {
		t.Fatalf("expected *MalformedGridError, got %v", err)
	}
	if !strings.Contains(mge.Error(), "row 0 col 1") {
		t.Errorf("unexpected message: %s", mge.Error())
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := New(2, 2)
	g.Set(0, 0, Active)
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-1, -1}, {5, 5}} {
		if c := g.At(pos[0], pos[1]); !c.IsEmpty() {
			t.Errorf("At(%d,%d) expected empty, got %v", pos[0], pos[1], c)
		}
	}
	g.Set(9, 9, Active)
	if g.Count(KindActive) != 1 {
		t.Errorf("out-of-range Set should be ignored")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewWithT(t)

	orig := New(2, 1)
	orig.Set(0, 0, Active)
	cp := orig.Clone()
	g.Expect(cp.Equal(orig)).To(BeTrue())

	cp.Set(0, 1, Decaying(2))
	g.Expect(orig.At(0, 1)).To(Equal(Empty))
	g.Expect(cp.Equal(orig)).To(BeFalse())
}
