package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", s.Width())
	}
	if s.Height() != 12 {
		t.Errorf("Height() = %d, expected 12", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 4, '7', ColorRed)
	c := s.GetCell(3, 4)
	if c.Rune != '7' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 4) = %+v, expected '7' in red", c)
	}

	// Plain Set resets the color
	s.Set(3, 4, 'x')
	if c := s.GetCell(3, 4); c.Color != ColorDefault {
		t.Errorf("Set should use default color, got %v", c.Color)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(5, 5)

	s.Set(-1, 0, 'A')
	s.Set(5, 0, 'A')
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 5, 'A', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("out of bounds Get should return space")
	}
	if strings.ContainsRune(s.String(), 'A') {
		t.Error("out of bounds writes leaked into the buffer")
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColor(5, 1, "Score", ColorYellow)

	if got := s.Row(1); got != "     Sco" {
		t.Errorf("Row(1) = %q, expected clipped text", got)
	}
	if s.GetCell(6, 1).Color != ColorYellow {
		t.Error("DrawTextColor should color every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "TEN!")

	x := (20 - 4) / 2
	if s.Get(x, 1) != 'T' || s.Get(x+3, 1) != '!' {
		t.Errorf("DrawTextCentered placed text incorrectly: %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	expected := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(1, 1, '9', ColorMagenta)

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize dimensions = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != '9' || c.Color != ColorMagenta {
		t.Errorf("content lost on grow: %+v", c)
	}

	s.Resize(1, 1)
	if s.String() != " " {
		t.Errorf("String() after shrink = %q", s.String())
	}
}

func TestScreenClearAndFill(t *testing.T) {
	s := NewScreen(3, 3)
	s.FillRect(NewRect(0, 0, 3, 3), '#')
	if s.String() != "###\n###\n###" {
		t.Errorf("FillRect result = %q", s.String())
	}

	s.Clear()
	if strings.TrimSpace(strings.ReplaceAll(s.String(), "\n", "")) != "" {
		t.Error("Clear should leave only spaces")
	}
}
