// Package rowan converts abstract 2D visual content into renderable quad
// geometry, clips it against rectangular viewports, and groups it into
// minimal per-material draw batches for [Ebitengine].
//
// # Sprites and content
//
// A [Sprite] owns a geometry arena and an ordered list of render elements,
// one per material. Geometry is produced by [Sprite.Rebuild] from [Content]
// implementations such as [ImageContent]:
//
//	tex := rowan.NewTexture(img)
//	sprite := rowan.NewSprite()
//	sprite.Rebuild(rowan.ImageContent{
//		Texture: tex,
//		Width:   120, Height: 80,
//		Anchor:  rowan.AnchorMiddleCenter,
//	})
//
// Rebuild is explicit: the sprite never decides on its own that content is
// stale. Bounds are memoized behind a dirty flag and recomputed on demand.
//
// # Filling buffers
//
// [Sprite.FillBuffer] packs a render element's clipped, offset quads into
// caller-owned byte buffers at caller-chosen strides, so any vertex layout
// (interleaved or structure-of-arrays) can be targeted directly. The clip
// step trims quads to a rectangle and corrects UVs for the visible fraction;
// quads entirely outside collapse to zero area but keep their buffer slot.
//
// # Batching and drawing
//
// [BuildBatches] groups render elements whose [MaterialInfo] values compare
// equal (material hash as a fast pre-filter) and [Renderer.Draw] submits one
// DrawTriangles call per batch:
//
//	renderer := rowan.NewRenderer()
//	renderer.Draw(screen, rowan.Item{Sprite: sprite, Offset: rowan.Vec2{X: 40}})
//
// Tween helpers (via [gween]) animate item offsets, alpha, and material
// tints; see [TweenOffset], [TweenAlpha], and [TweenTint].
//
// Rowan is single-threaded by design. Concurrent reads of one sprite are
// safe only after its bounds have been computed and while no Rebuild runs;
// concurrent FillBuffer calls for different elements into disjoint buffers
// are safe on a stable sprite.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package rowan
