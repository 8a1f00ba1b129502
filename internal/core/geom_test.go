package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestSpanStrictlyInside(t *testing.T) {
	outer := Span{Lo: 100, Hi: 180}

	tests := []struct {
		name     string
		inner    Span
		expected bool
	}{
		{"well inside", Span{110, 130}, true},
		{"touching left edge", Span{100, 120}, false},
		{"touching right edge", Span{160, 180}, false},
		{"straddling left edge", Span{90, 110}, false},
		{"straddling right edge", Span{170, 190}, false},
		{"outside", Span{200, 220}, false},
		{"wider than outer", Span{90, 190}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.inner.StrictlyInside(outer); got != tc.expected {
				t.Errorf("StrictlyInside() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected bool
	}{
		{"overlapping", Span{0, 10}, Span{5, 15}, true},
		{"contained", Span{0, 20}, Span{5, 10}, true},
		{"adjacent (no overlap)", Span{0, 10}, Span{10, 20}, false},
		{"disjoint", Span{0, 10}, Span{15, 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxExtents(t *testing.T) {
	b := Box{X: 45, Y: 60, W: 70, H: 20}

	if h := b.Horizontal(); h.Lo != 45 || h.Hi != 115 {
		t.Errorf("Horizontal() = %+v, expected {45 115}", h)
	}
	if v := b.Vertical(); v.Lo != 60 || v.Hi != 80 {
		t.Errorf("Vertical() = %+v, expected {60 80}", v)
	}
}

func TestRound(t *testing.T) {
	if Round(2.4) != 2 || Round(2.5) != 3 || Round(-0.6) != -1 {
		t.Error("Round should round half away from zero")
	}
}
