package rowan

import "fmt"

// RenderElement is one material-homogeneous quad batch within a Sprite. It is
// a view into the sprite's geometry arena: an offset plus a quad count. Views
// are invalidated by the next Rebuild; callers must not hold a RenderElement
// across rebuilds.
type RenderElement struct {
	mat       MaterialInfo
	firstQuad int // offset into the sprite's arena, in quads
	numQuads  int
}

// Sprite owns an ordered sequence of render elements and the geometry arena
// they view. Element order is meaningful only in that it defines stable
// indices for Material, NumQuads, and FillBuffer.
//
// Geometry is produced by Rebuild and read by everything else. Rowan is
// single-threaded: concurrent reads of a sprite are safe only once Bounds has
// been called at least once after the last Rebuild, and no Rebuild is running.
type Sprite struct {
	// arena: 4 vertices per quad (x,y pairs), 6 indices per quad with values
	// local to the owning element's quad range
	positions []float32
	uvs       []float32
	indices   []uint32

	elements []RenderElement

	bounds      Rect
	boundsDirty bool
}

// NewSprite returns an empty sprite. Populate it with Rebuild.
func NewSprite() *Sprite {
	return &Sprite{boundsDirty: true}
}

// NumRenderElements returns the number of render elements in the sprite.
// Normally this is 1, but content spanning multiple materials produces one
// element per material, each requiring its own mesh.
func (s *Sprite) NumRenderElements() int {
	return len(s.elements)
}

// Material returns the material of the render element at the given index.
func (s *Sprite) Material(elementIdx int) MaterialInfo {
	s.checkElementIdx(elementIdx)
	return s.elements[elementIdx].mat
}

// NumQuads returns the quad count of the render element at the given index.
// Size destination buffers as 4 vertices and 6 indices per quad before
// calling FillBuffer.
func (s *Sprite) NumQuads(elementIdx int) int {
	s.checkElementIdx(elementIdx)
	return s.elements[elementIdx].numQuads
}

// checkElementIdx panics on an out-of-range element index. An invalid index
// is a programming error, not a runtime condition.
func (s *Sprite) checkElementIdx(elementIdx int) {
	if elementIdx < 0 || elementIdx >= len(s.elements) {
		panic(fmt.Sprintf("rowan: render element index %d out of range [0,%d)",
			elementIdx, len(s.elements)))
	}
}

// InvalidateBounds marks the cached bounds as needing recomputation.
// Rebuild calls this automatically; call it yourself only if you mutate
// geometry through element views.
func (s *Sprite) InvalidateBounds() {
	s.boundsDirty = true
}

// recomputeBounds recomputes the cached local-space bounds if dirty.
func (s *Sprite) recomputeBounds() {
	if !s.boundsDirty {
		return
	}
	s.bounds = computeBounds(s.positions)
	s.boundsDirty = false
}

// computeBounds scans x,y pairs and returns the axis-aligned bounding box.
func computeBounds(positions []float32) Rect {
	if len(positions) < 2 {
		return Rect{}
	}
	minX := float64(positions[0])
	minY := float64(positions[1])
	maxX := minX
	maxY := minY
	for i := 2; i+1 < len(positions); i += 2 {
		x := float64(positions[i])
		y := float64(positions[i+1])
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Bounds returns the sprite's bounds clipped to clipRect and translated by
// offset. Clipping happens in local space, before the offset is applied. A
// clipRect with zero width or height means no clipping. When the bounds and
// clipRect are disjoint the result is a zero-area rectangle on the clip
// boundary, never an unbounded or negative rectangle.
func (s *Sprite) Bounds(offset Vec2, clipRect Rect) Rect {
	s.recomputeBounds()
	b := s.bounds
	if !clipRect.Empty() {
		b = b.Intersect(clipRect)
	}
	return b.Translate(offset)
}

// --- Content + Builder (geometry generation) ---

// Content produces quad geometry for a sprite. Implementations append one or
// more material-homogeneous elements through the builder. The set of content
// kinds is closed; all of them share the sprite engine's clipping and
// buffer-fill machinery.
type Content interface {
	AppendGeometry(b *Builder)
}

// ContentFunc adapts a function to the Content interface.
type ContentFunc func(b *Builder)

// AppendGeometry calls f(b).
func (f ContentFunc) AppendGeometry(b *Builder) { f(b) }

// Builder appends quads into a sprite's geometry arena during Rebuild.
type Builder struct {
	sprite    *Sprite
	elemQuads int // quads appended to the current element so far
	open      bool
}

// Element finishes the current render element (if any) and starts a new one
// with the given material. Quads appended afterwards belong to it.
func (b *Builder) Element(mat MaterialInfo) {
	b.close()
	b.sprite.elements = append(b.sprite.elements, RenderElement{
		mat:       mat,
		firstQuad: len(b.sprite.indices) / 6,
	})
	b.elemQuads = 0
	b.open = true
}

// close finalizes the current element's quad count.
func (b *Builder) close() {
	if !b.open {
		return
	}
	last := &b.sprite.elements[len(b.sprite.elements)-1]
	last.numQuads = b.elemQuads
	b.open = false
}

// Quad appends one axis-aligned quad covering pos, textured with the
// normalized UV sub-rectangle uv. Vertex order is TL, TR, BL, BR with two
// triangles TL-TR-BL and TR-BR-BL. Index values are local to the element's
// quad range.
func (b *Builder) Quad(pos, uv Rect) {
	if !b.open {
		panic("rowan: Builder.Quad called before Element")
	}
	s := b.sprite

	x0 := float32(pos.X)
	y0 := float32(pos.Y)
	x1 := float32(pos.X + pos.Width)
	y1 := float32(pos.Y + pos.Height)
	s.positions = append(s.positions,
		x0, y0, x1, y0, x0, y1, x1, y1)

	u0 := float32(uv.X)
	v0 := float32(uv.Y)
	u1 := float32(uv.X + uv.Width)
	v1 := float32(uv.Y + uv.Height)
	s.uvs = append(s.uvs,
		u0, v0, u1, v0, u0, v1, u1, v1)

	base := uint32(b.elemQuads * 4)
	s.indices = append(s.indices,
		base+0, base+1, base+2,
		base+1, base+3, base+2)

	b.elemQuads++
}

// Rebuild regenerates the sprite's geometry from the given contents,
// replacing all previous elements. The arena is reused (high-water mark, never
// shrinks) and bounds are invalidated. Existing element views become invalid.
//
// Rebuild is the explicit regeneration step: the sprite itself never decides
// when content is stale.
func (s *Sprite) Rebuild(contents ...Content) {
	s.positions = s.positions[:0]
	s.uvs = s.uvs[:0]
	s.indices = s.indices[:0]
	s.elements = s.elements[:0]

	b := Builder{sprite: s}
	for _, c := range contents {
		c.AppendGeometry(&b)
	}
	b.close()

	s.InvalidateBounds()
}
