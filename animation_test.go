package rowan

import (
	"testing"

	"github.com/tanema/gween/ease"
)

// --- TweenOffset ---

func TestTweenOffsetLinear(t *testing.T) {
	item := Item{Offset: Vec2{0, 0}}
	g := TweenOffset(&item, 10, 20, 1.0, ease.Linear)

	g.Update(0.5)
	if !approxEqual(item.Offset.X, 5, 0.001) || !approxEqual(item.Offset.Y, 10, 0.001) {
		t.Errorf("midpoint offset = %v, want (5,10)", item.Offset)
	}
	if g.Done {
		t.Error("tween should not be done at midpoint")
	}

	g.Update(0.6)
	if !g.Done {
		t.Error("tween should be done past the duration")
	}
	if item.Offset.X != 10 || item.Offset.Y != 20 {
		t.Errorf("final offset = %v, want (10,20)", item.Offset)
	}
}

func TestTweenUpdateAfterDoneIsNoop(t *testing.T) {
	item := Item{}
	g := TweenOffset(&item, 10, 10, 0.5, ease.Linear)
	g.Update(1)
	x := item.Offset.X
	g.Update(1)
	if item.Offset.X != x {
		t.Error("Update after Done modified the target")
	}
}

// --- TweenAlpha ---

func TestTweenAlpha(t *testing.T) {
	item := Item{Alpha: 1}
	g := TweenAlpha(&item, 0.25, 1.0, ease.Linear)
	g.Update(1.0)
	if !g.Done {
		t.Fatal("tween should be done")
	}
	if !approxEqual(item.Alpha, 0.25, 0.001) {
		t.Errorf("alpha = %v, want 0.25", item.Alpha)
	}
}

// --- TweenTint ---

func TestTweenTintUpdatesMaterial(t *testing.T) {
	s := singleQuadSprite(Rect{0, 0, 10, 10}, Rect{0, 0, 1, 1})
	g := TweenTint(s, 0, Color{0, 0.5, 1, 0.5}, 1.0, ease.Linear)
	g.Update(1.0)

	tint := s.Material(0).Tint
	if !approxEqual(tint.G, 0.5, 0.001) || !approxEqual(tint.B, 1, 0.001) {
		t.Errorf("tint = %v, want (0,0.5,1,0.5)", tint)
	}
}

func TestTweenTintChangesBatchKey(t *testing.T) {
	tex := NewTexture(nil)
	s1 := NewSprite()
	s1.Rebuild(ImageContent{Texture: tex, Width: 10, Height: 10})
	s2 := NewSprite()
	s2.Rebuild(ImageContent{Texture: tex, Width: 10, Height: 10})

	items := []Item{{Sprite: s1}, {Sprite: s2}}
	if got := len(BuildBatches(items)); got != 1 {
		t.Fatalf("pre-tween batches = %d, want 1", got)
	}

	g := TweenTint(s1, 0, Color{1, 0, 0, 1}, 1.0, ease.Linear)
	g.Update(0.5)
	if got := len(BuildBatches(items)); got != 2 {
		t.Errorf("mid-tween batches = %d, want 2 (tint diverged)", got)
	}
}

func TestTweenTintOutOfRangePanics(t *testing.T) {
	s := NewSprite()
	defer func() {
		if recover() == nil {
			t.Error("TweenTint on empty sprite should panic")
		}
	}()
	TweenTint(s, 0, ColorWhite, 1, ease.Linear)
}
