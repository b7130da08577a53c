package rowan

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Item is one drawable placement of a sprite: the sprite plus the offset,
// clip rectangle, and alpha it should be rendered with this frame.
//
// A zero Alpha is treated as fully opaque so that zero-value items render;
// use a small positive value to draw nearly transparent.
type Item struct {
	Sprite   *Sprite
	Offset   Vec2
	ClipRect Rect
	Clip     bool
	Alpha    float64
}

// elementRef addresses one render element of one item.
type elementRef struct {
	item    int
	element int
}

// Batch is a group of render elements sharing an equal material. Each batch
// becomes a single draw call.
type Batch struct {
	Material MaterialInfo
	NumQuads int
	refs     []elementRef
}

// BuildBatches groups the items' render elements by material, preserving
// first-seen order. The material hash is a pre-filter only; elements merge
// into a batch solely when their materials compare equal, so hash collisions
// never conflate distinct materials. Elements with zero quads are skipped.
func BuildBatches(items []Item) []Batch {
	var batches []Batch
	byHash := make(map[uint64][]int)

	for ii := range items {
		sp := items[ii].Sprite
		if sp == nil {
			continue
		}
		for e := 0; e < sp.NumRenderElements(); e++ {
			if sp.NumQuads(e) == 0 {
				continue
			}
			mat := sp.Material(e)
			h := mat.Hash()

			target := -1
			for _, bi := range byHash[h] {
				if batches[bi].Material == mat {
					target = bi
					break
				}
			}
			if target < 0 {
				batches = append(batches, Batch{Material: mat})
				target = len(batches) - 1
				byHash[h] = append(byHash[h], target)
			}

			b := &batches[target]
			b.refs = append(b.refs, elementRef{item: ii, element: e})
			b.NumQuads += sp.NumQuads(e)
		}
	}
	return batches
}

// Renderer fills per-batch geometry buffers and submits them as triangles.
// Scratch buffers persist across frames (high-water mark, never shrink).
type Renderer struct {
	vbytes []byte
	ibytes []byte
	verts  []ebiten.Vertex
	inds   []uint32
}

// NewRenderer returns a renderer with empty scratch buffers.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// ensureBuffer grows the scratch fill buffers to hold quads quads in the
// interleaved layout and returns them as a VertexBuffer.
func (r *Renderer) ensureBuffer(quads int) VertexBuffer {
	vneed := quads * 4 * interleavedStride
	if cap(r.vbytes) < vneed {
		r.vbytes = make([]byte, vneed)
	}
	r.vbytes = r.vbytes[:vneed]

	ineed := quads * 6 * indexSize
	if cap(r.ibytes) < ineed {
		r.ibytes = make([]byte, ineed)
	}
	r.ibytes = r.ibytes[:ineed]

	return VertexBuffer{
		Vertices:     r.vbytes,
		UVs:          r.vbytes[interleavedUVOffset:],
		Indices:      r.ibytes,
		VertexStride: interleavedStride,
		IndexStride:  indexSize,
	}
}

// Draw batches the items by material and submits one DrawTriangles32 call per
// batch. Per batch it sizes one destination buffer, funnels every
// contributing element through FillBuffer with an advancing starting quad,
// then decodes the packed geometry into ebiten vertices with the material
// tint and item alpha premultiplied.
func (r *Renderer) Draw(target *ebiten.Image, items ...Item) {
	batches := BuildBatches(items)

	var stats frameStats
	stats.batchCount = len(batches)

	for bi := range batches {
		b := &batches[bi]
		img := b.Material.Texture.Image()
		if img == nil {
			continue
		}

		fillStart := time.Now()
		dst := r.ensureBuffer(b.NumQuads)

		r.verts = r.verts[:0]
		r.inds = r.inds[:0]
		written := 0
		for _, ref := range b.refs {
			it := &items[ref.item]
			wrote := it.Sprite.FillBuffer(dst, written, b.NumQuads, ref.element,
				uint32(written*4), it.Offset, it.ClipRect, it.Clip)
			r.decodeQuads(dst, written, wrote, img, b.Material.Tint, it.Alpha)
			written += wrote
		}
		stats.fillTime += time.Since(fillStart)

		if written == 0 {
			continue
		}
		stats.quadCount += written

		submitStart := time.Now()
		var triOp ebiten.DrawTrianglesOptions
		triOp.Blend = materialBlend(b.Material.Kind)
		triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		target.DrawTriangles32(r.verts, r.inds, img, &triOp)
		stats.submitTime += time.Since(submitStart)
		stats.drawCallCount++
	}

	logFrameStats(stats)
}

// decodeQuads converts the quad range [startQuad, startQuad+quads) of the
// interleaved fill buffer into ebiten vertices and indices, scaling the
// normalized UVs to source pixel coordinates.
func (r *Renderer) decodeQuads(src VertexBuffer, startQuad, quads int,
	img *ebiten.Image, tint Color, alpha float64) {

	if quads == 0 {
		return
	}

	// Zero alpha is the opaque sentinel (matches the zero-value Item).
	if alpha == 0 {
		alpha = 1
	}
	ca := float32(tint.A * alpha)
	cr := float32(tint.R) * ca
	cg := float32(tint.G) * ca
	cb := float32(tint.B) * ca

	bounds := img.Bounds()
	sx0 := float32(bounds.Min.X)
	sy0 := float32(bounds.Min.Y)
	sw := float32(bounds.Dx())
	sh := float32(bounds.Dy())

	for i := startQuad * 4; i < (startQuad+quads)*4; i++ {
		o := i * src.VertexStride
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   getF32(src.Vertices[o:]),
			DstY:   getF32(src.Vertices[o+4:]),
			SrcX:   sx0 + getF32(src.UVs[o:])*sw,
			SrcY:   sy0 + getF32(src.UVs[o+4:])*sh,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	for i := startQuad * 6; i < (startQuad+quads)*6; i++ {
		r.inds = append(r.inds, getU32(src.Indices[i*src.IndexStride:]))
	}
}

// materialBlend maps a material kind to its compositing mode.
func materialBlend(kind MaterialKind) ebiten.Blend {
	switch kind {
	case MaterialImage:
		return ebiten.BlendCopy
	default: // MaterialText, MaterialImageAlpha
		return ebiten.BlendSourceOver
	}
}
