package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	s.Set(5, 5, 'Y')
	if c := s.GetCell(5, 5); c.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", c.Color)
	}

	// Out of bounds is silent
	s.SetColored(-1, 0, 'A', ColorBlue)
	s.SetColored(0, 100, 'A', ColorBlue)
	if s.Get(-1, 0) != ' ' || s.GetCell(100, 0) != blankCell {
		t.Error("out of bounds Get should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.DrawRect(s.Bounds(), '#', ColorGreen)
	s.Clear()

	if got := s.String(); got != "    \n    \n    \n    " {
		t.Errorf("after Clear got %q", got)
	}
	if s.GetCell(2, 2).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Héllo", ColorCyan)

	if got := s.Row(1)[2:]; !strings.HasPrefix(got, "Héllo") {
		t.Errorf("row 1 = %q", s.Row(1))
	}
	// Multi-byte runes take one cell each.
	if s.Get(6, 1) != 'o' {
		t.Errorf("expected 'o' at (6, 1), got %q", s.Get(6, 1))
	}
	if s.GetCell(3, 1).Color != ColorCyan {
		t.Error("text should carry its color")
	}

	// Clipped at the right boundary
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered: row = %q", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorYellow)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorYellow {
				t.Errorf("DrawRect: got %+v at (%d, %d)", c, x, y)
			}
		}
	}
	if s.Get(1, 1) != ' ' || s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	want := strings.Join([]string{
		"       ",
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("DrawBox:\n%s\nexpected\n%s", got, want)
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("box should carry its color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorRed)

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Hello") {
		t.Errorf("content should be preserved, row 0 = %q", s.Row(0))
	}

	s.Resize(15, 8)
	if !strings.HasPrefix(s.Row(0), "Hello") || s.GetCell(0, 0).Color != ColorRed {
		t.Errorf("content should be preserved after enlarging, row 0 = %q", s.Row(0))
	}
	if s.Row(-1) != strings.Repeat(" ", 15) {
		t.Error("out of bounds row should be spaces")
	}
}

func TestColorByName(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"red", ColorRed, true},
		{" Bright_Blue ", ColorBrightBlue, true},
		{"grey", ColorGray, true},
		{"wall", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ColorByName(tc.name)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ColorByName(%q) = %v, %v; expected %v, %v", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestInputFramePointerOrder(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(PointerPress, 1, 1)
	f.AddPointer(PointerMotion, 2, 1)
	f.AddPointer(PointerRelease, 3, 1)
	f.Set(ActionRestart)

	clone := f.Clone()
	f.Clear()

	if len(f.Pointer) != 0 || f.Has(ActionRestart) {
		t.Error("Clear should drop pointer samples and actions")
	}
	if len(clone.Pointer) != 3 || !clone.Has(ActionRestart) {
		t.Fatalf("clone should keep its samples, got %+v", clone)
	}
	kinds := []PointerKind{PointerPress, PointerMotion, PointerRelease}
	for i, k := range kinds {
		if clone.Pointer[i].Kind != k || clone.Pointer[i].X != i+1 {
			t.Errorf("sample %d = %+v, expected %v at x=%d", i, clone.Pointer[i], k, i+1)
		}
	}
}
