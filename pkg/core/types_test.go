package core

import "testing"

func TestParseBounds(t *testing.T) {
	tests := []struct {
		input    string
		expected Bounds
	}{
		{"[0,0][100,200]", Bounds{X: 0, Y: 0, Width: 100, Height: 200}},
		{"[50,100][150,300]", Bounds{X: 50, Y: 100, Width: 100, Height: 200}},
		{"invalid", Bounds{}},
		{"[0,0]", Bounds{}},
		{"", Bounds{}},
	}

	for _, tt := range tests {
		got := ParseBounds(tt.input)
		if got != tt.expected {
			t.Errorf("ParseBounds(%q) = %+v, want %+v", tt.input, got, tt.expected)
		}
	}
}

func TestBoundsCenter(t *testing.T) {
	b := Bounds{X: 100, Y: 200, Width: 200, Height: 80}
	x, y := b.Center()
	if x != 200 || y != 240 {
		t.Errorf("Center() = (%d, %d), want (200, 240)", x, y)
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 10, Y: 10, Width: 20, Height: 20}

	if !b.Contains(10, 10) {
		t.Error("expected top-left corner to be contained")
	}
	if b.Contains(30, 30) {
		t.Error("expected bottom-right edge to be exclusive")
	}
	if b.Contains(5, 15) {
		t.Error("expected point left of bounds to be outside")
	}
}
