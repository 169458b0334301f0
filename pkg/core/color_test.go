package core

import "testing"

func TestColor_Arithmetic(t *testing.T) {
	a := NewColor(0.2, 0.4, 0.6, 1)
	b := NewColor(0.5, 0.5, 2, 0.5)

	if got := a.Add(b); !got.ApproxEqual(NewColor(0.7, 0.9, 2.6, 1.5)) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Mul(b); !got.ApproxEqual(NewColor(0.1, 0.2, 1.2, 0.5)) {
		t.Errorf("Mul: got %v", got)
	}
	if got := a.Scale(0.5); !got.ApproxEqual(NewColor(0.1, 0.2, 0.3, 0.5)) {
		t.Errorf("Scale: got %v", got)
	}
}

func TestColor_Clamp(t *testing.T) {
	c := NewColor(-0.5, 0.5, 1.5, 1).Clamp(0, 1)
	expected := NewColor(0, 0.5, 1, 1)
	if c != expected {
		t.Errorf("Expected %v, got %v", expected, c)
	}
}

func TestColor_Accessors(t *testing.T) {
	c := NewColor(0.1, 0.2, 0.3, 0.4)
	if c.R() != 0.1 || c.G() != 0.2 || c.B() != 0.3 || c.A() != 0.4 {
		t.Errorf("Unexpected channels %v", c)
	}
	if Gray(0.7) != NewColor(0.7, 0.7, 0.7, 0.7) {
		t.Errorf("Gray mismatch: %v", Gray(0.7))
	}
	if Black != (Color{}) {
		t.Errorf("Black should be the zero color")
	}
}
