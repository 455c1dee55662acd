package core

import (
	"strings"
	"testing"
)

func TestScreenNewAndClear(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 || s.Height() != 5 {
		t.Fatalf("Screen size = (%d, %d), expected (10, 5)", s.Width(), s.Height())
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen cell (%d, %d) = %q, expected space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	s.SetColored(4, 2, '@', ColorRed)
	cell := s.GetCell(4, 2)
	if cell.Rune != '@' || cell.Color != ColorRed {
		t.Errorf("GetCell(4, 2) = %+v, expected red '@'", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes are silently ignored
	s.Set(-1, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, 5, 'X')

	// Reads return the default cell
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("Out-of-bounds Get() should return space")
	}
	cell := s.GetCell(100, 100)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Out-of-bounds GetCell() = %+v, expected default cell", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if !strings.Contains(s.Row(1), "hello") {
		t.Errorf("Row(1) = %q, expected to contain 'hello'", s.Row(1))
	}

	// Text past the right edge is clipped, not wrapped
	s.DrawText(7, 0, "long text")
	if s.Row(0) != "       lon" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawTextColored(0, 0, "ab", ColorYellow)
	if s.GetCell(0, 0).Color != ColorYellow || s.GetCell(1, 0).Color != ColorYellow {
		t.Error("DrawTextColored() did not apply the color")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "abc")
	if s.Get(4, 1) != 'a' || s.Get(5, 1) != 'b' || s.Get(6, 1) != 'c' {
		t.Errorf("Centered text misplaced: row = %q", s.Row(1))
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawHLine(2, 1, 5, '-')
	if s.Row(1) != "  -----   " {
		t.Errorf("Row(1) = %q after DrawHLine", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)

	s.DrawBox(1, 1, 4, 3)
	if s.Get(1, 1) != '┌' || s.Get(4, 1) != '┐' || s.Get(1, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Error("Box corners wrong")
	}
	if s.Get(2, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges wrong")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'X')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Fatalf("Size after grow = (%d, %d), expected (20, 10)", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Content lost when growing")
	}
	if s.Get(15, 8) != ' ' {
		t.Error("New area not cleared")
	}

	s.Resize(3, 3)
	if s.Get(2, 2) != 'X' {
		t.Error("Content lost when shrinking within kept area")
	}
	if s.Get(2, 0) != ' ' {
		t.Error("Kept area corrupted by shrink")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if s.String() != want {
		t.Errorf("String() = %q, expected %q", s.String(), want)
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	if s.Row(-1) != "    " || s.Row(2) != "    " {
		t.Error("Out-of-bounds Row() should return a blank row")
	}
}
