package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenOffset, TweenAlpha, TweenTint) and call
// Update(dt) each frame.
//
// There is no global animation manager; users call Update themselves.
// A tween holds raw field pointers: rebuilding a sprite while a TweenTint on
// it is live orphans the tween, so finish or drop tweens before Rebuild.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenOffset creates a TweenGroup that animates item.Offset to the given
// target over the specified duration using the easing function.
func TweenOffset(item *Item, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(item.Offset.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(item.Offset.Y), float32(toY), duration, fn)
	g.fields[0] = &item.Offset.X
	g.fields[1] = &item.Offset.Y
	return g
}

// TweenAlpha creates a TweenGroup that animates item.Alpha to the target
// value over the specified duration using the easing function. A zero Alpha
// renders opaque, so start fades from an explicit value (e.g. 1).
func TweenAlpha(item *Item, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(item.Alpha), float32(to), duration, fn)
	g.fields[0] = &item.Alpha
	return g
}

// TweenTint creates a TweenGroup that animates all four components of the
// given render element's material tint to the target color. Changing the tint
// changes the element's batching key, so a mid-tween element batches
// separately from elements still carrying the original tint.
func TweenTint(s *Sprite, elementIdx int, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	s.checkElementIdx(elementIdx)
	tint := &s.elements[elementIdx].mat.Tint

	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(tint.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(tint.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(tint.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(tint.A), float32(to.A), duration, fn)
	g.fields[0] = &tint.R
	g.fields[1] = &tint.G
	g.fields[2] = &tint.B
	g.fields[3] = &tint.A
	return g
}
