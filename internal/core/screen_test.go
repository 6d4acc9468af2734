package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '●', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != '●' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red '●'", cell)
	}

	s.Set(2, 2, 'X')
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Errorf("Set should store the default color, got %v", s.GetCell(2, 2).Color)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorBlue)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(1, 0, "●∙●", ColorGreen)

	expected := []rune{'●', '∙', '●'}
	for i, r := range expected {
		cell := s.GetCell(1+i, 0)
		if cell.Rune != r || cell.Color != ColorGreen {
			t.Errorf("DrawTextColored: expected green %q at (%d, 0), got %+v", r, 1+i, cell)
		}
	}
	if s.Get(4, 0) != ' ' {
		t.Errorf("DrawTextColored should use one column per rune, got %q at (4, 0)", s.Get(4, 0))
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := []struct {
		x, y int
		r    rune
	}{
		{1, 1, '┌'},
		{5, 1, '┐'},
		{1, 4, '└'},
		{5, 4, '┘'},
	}
	for _, c := range corners {
		cell := s.GetCell(c.x, c.y)
		if cell.Rune != c.r || cell.Color != ColorGray {
			t.Errorf("corner at (%d, %d) = %+v, expected gray %q", c.x, c.y, cell, c.r)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawTextColored(0, 1, "BBBBB", ColorRed)
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len([]rune(row)) != 10 {
		t.Errorf("Row length should be 10, got %d", len([]rune(row)))
	}

	if s.Row(-1) != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

func TestScreenBlit(t *testing.T) {
	dst := NewScreen(6, 3)
	src := NewScreen(3, 2)
	src.DrawTextColored(0, 0, "abc", ColorYellow)
	src.DrawText(0, 1, "def")

	dst.Blit(src, 4, 1)

	if got := dst.Row(1); got != "    ab" {
		t.Errorf("Row(1) = %q, expected %q", got, "    ab")
	}
	if got := dst.Row(2); got != "    de" {
		t.Errorf("Row(2) = %q, expected %q", got, "    de")
	}
	if dst.GetCell(4, 1).Color != ColorYellow {
		t.Errorf("Blit should keep colors, got %v", dst.GetCell(4, 1).Color)
	}
	if strings.TrimSpace(dst.Row(0)) != "" {
		t.Errorf("Row(0) should stay blank, got %q", dst.Row(0))
	}

	// Negative offsets clip on the top-left side.
	dst.Clear()
	dst.Blit(src, -1, -1)
	if got := dst.Row(0); got != "ef    " {
		t.Errorf("Row(0) = %q, expected %q", got, "ef    ")
	}
}
