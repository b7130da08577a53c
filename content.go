package rowan

// ImageContent generates quad geometry for a textured image. It produces one
// render element. The zero value produces nothing; at minimum set Texture or
// an explicit size.
type ImageContent struct {
	Texture *Texture

	// Width and Height give the target size in local units. When both are
	// zero the texture's pixel size is used.
	Width, Height float64

	// UV is the normalized sub-rectangle of the texture to sample.
	// The zero value means the full texture.
	UV Rect

	// Tint multiplies the sampled color. The zero value means white.
	Tint Color

	// Opaque selects MaterialImage (no blending) instead of the default
	// MaterialImageAlpha.
	Opaque bool

	// GroupID is the opaque batching discriminator copied into the element's
	// material. Elements with different group ids never batch together.
	GroupID uint64

	// TileX and TileY repeat the image as a grid of quads, each sampling the
	// full UV rect. Zero means 1.
	TileX, TileY int

	// Anchor positions the geometry relative to the sprite origin.
	Anchor Anchor
}

// AppendGeometry implements Content.
func (c ImageContent) AppendGeometry(b *Builder) {
	w, h := c.Width, c.Height
	if w == 0 && h == 0 {
		if img := c.Texture.Image(); img != nil {
			bounds := img.Bounds()
			w = float64(bounds.Dx())
			h = float64(bounds.Dy())
		}
	}
	if w <= 0 || h <= 0 {
		return
	}

	uv := c.UV
	if uv.Empty() {
		uv = Rect{0, 0, 1, 1}
	}
	tint := c.Tint
	if tint == (Color{}) {
		tint = ColorWhite
	}
	kind := MaterialImageAlpha
	if c.Opaque {
		kind = MaterialImage
	}

	b.Element(MaterialInfo{
		Kind:    kind,
		GroupID: c.GroupID,
		Texture: c.Texture,
		Tint:    tint,
	})

	tilesX := c.TileX
	if tilesX < 1 {
		tilesX = 1
	}
	tilesY := c.TileY
	if tilesY < 1 {
		tilesY = 1
	}

	off := AnchorOffset(c.Anchor, w, h)
	tileW := w / float64(tilesX)
	tileH := h / float64(tilesY)

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			b.Quad(Rect{
				X:      off.X + float64(tx)*tileW,
				Y:      off.Y + float64(ty)*tileH,
				Width:  tileW,
				Height: tileH,
			}, uv)
		}
	}
}
