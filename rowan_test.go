package rowan

import "testing"

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"left edge", 10, 40, true},
		{"outside left", 9, 40, false},
		{"outside below", 50, 71, false},
		{"far outside", 999, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Contains(tt.x, tt.y)
			if got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

// --- Rect.Intersect ---

func TestRectIntersectOverlapping(t *testing.T) {
	a := Rect{0, 0, 100, 100}
	b := Rect{50, 60, 100, 100}
	got := a.Intersect(b)
	want := Rect{50, 60, 50, 40}
	if got != want {
		t.Errorf("Intersect = %v, want %v", got, want)
	}
}

func TestRectIntersectContained(t *testing.T) {
	a := Rect{0, 0, 100, 100}
	b := Rect{20, 30, 10, 10}
	got := a.Intersect(b)
	if got != b {
		t.Errorf("Intersect = %v, want %v", got, b)
	}
}

func TestRectIntersectDisjointPinsToBoundary(t *testing.T) {
	clip := Rect{100, 100, 50, 50}
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"left of clip", Rect{0, 110, 10, 10}, Rect{100, 110, 0, 10}},
		{"right of clip", Rect{300, 110, 10, 10}, Rect{150, 110, 0, 10}},
		{"above clip", Rect{110, 0, 10, 10}, Rect{110, 100, 10, 0}},
		{"fully disjoint both axes", Rect{0, 0, 10, 10}, Rect{100, 100, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Intersect(clip)
			if got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
			if got.Width < 0 || got.Height < 0 {
				t.Errorf("Intersect produced negative size: %v", got)
			}
		})
	}
}

// --- Rect.Translate / Encapsulate ---

func TestRectTranslate(t *testing.T) {
	r := Rect{10, 20, 30, 40}
	got := r.Translate(Vec2{5, -5})
	want := Rect{15, 15, 30, 40}
	if got != want {
		t.Errorf("Translate = %v, want %v", got, want)
	}
}

func TestRectEncapsulate(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{20, 30, 5, 5}
	got := a.Encapsulate(b)
	want := Rect{0, 0, 25, 35}
	if got != want {
		t.Errorf("Encapsulate = %v, want %v", got, want)
	}
}

// --- AnchorOffset ---

func TestAnchorOffset(t *testing.T) {
	const w, h = 100, 50
	tests := []struct {
		name   string
		anchor Anchor
		want   Vec2
	}{
		{"top-left", AnchorTopLeft, Vec2{0, 0}},
		{"top-center", AnchorTopCenter, Vec2{-50, 0}},
		{"top-right", AnchorTopRight, Vec2{-100, 0}},
		{"middle-left", AnchorMiddleLeft, Vec2{0, -25}},
		{"middle-center", AnchorMiddleCenter, Vec2{-50, -25}},
		{"middle-right", AnchorMiddleRight, Vec2{-100, -25}},
		{"bottom-left", AnchorBottomLeft, Vec2{0, -50}},
		{"bottom-center", AnchorBottomCenter, Vec2{-50, -50}},
		{"bottom-right", AnchorBottomRight, Vec2{-100, -50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnchorOffset(tt.anchor, w, h)
			if got != tt.want {
				t.Errorf("AnchorOffset(%v) = %v, want %v", tt.anchor, got, tt.want)
			}
		})
	}
}

func TestAnchorOffsetDeterministic(t *testing.T) {
	a := AnchorOffset(AnchorMiddleCenter, 33, 77)
	b := AnchorOffset(AnchorMiddleCenter, 33, 77)
	if a != b {
		t.Errorf("AnchorOffset not deterministic: %v vs %v", a, b)
	}
}
