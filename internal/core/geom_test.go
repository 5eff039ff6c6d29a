package core

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	p := V(10, 20)
	v := V(200, -200)

	got := p.Add(v.Scale(0.5))
	if got != V(110, -80) {
		t.Errorf("p + v*0.5 = %v, expected (110, -80)", got)
	}
}

func TestRectFCorners(t *testing.T) {
	r := CenteredRect(V(15, 300), 30, 150)

	if r.Min() != V(0, 225) {
		t.Errorf("Min() = %v, expected (0, 225)", r.Min())
	}
	if r.Max() != V(30, 375) {
		t.Errorf("Max() = %v, expected (30, 375)", r.Max())
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"inside", NewRect(2, 2, 3, 3), NewRect(2, 2, 3, 3)},
		{"overlaps left", NewRect(-2, 1, 5, 2), NewRect(0, 1, 3, 2)},
		{"overlaps bottom right", NewRect(8, 8, 5, 5), NewRect(8, 8, 2, 2)},
		{"fully outside", NewRect(20, 20, 5, 5), NewRect(10, 10, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.r.Clip(10, 10)
			if result != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", result, tc.expected)
			}
		})
	}

	if !NewRect(20, 20, 5, 5).Clip(10, 10).Empty() {
		t.Error("rect outside the box should clip to empty")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)
	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{75, 75, 525, 75},
		{525, 75, 525, 525},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRound(t *testing.T) {
	if Round(2.5) != 3 {
		t.Errorf("Round(2.5) = %d, expected 3", Round(2.5))
	}
	if Round(-0.4) != 0 {
		t.Errorf("Round(-0.4) = %d, expected 0", Round(-0.4))
	}
}

func TestMax(t *testing.T) {
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
