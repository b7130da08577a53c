package rowan

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Texture is a shared handle to a source image. Two handles are the same
// texture only if they are the same handle; pixel content is never compared.
// Each handle carries a process-stable identity used by material equality
// and hashing.
type Texture struct {
	img *ebiten.Image
	id  uint64
}

// texture id 0 is reserved for the nil handle
var nextTextureID uint64

// NewTexture wraps an image in a texture handle with a fresh identity.
// The handle references the image; it does not own or copy it. img may be
// nil for placeholder materials that are never submitted.
func NewTexture(img *ebiten.Image) *Texture {
	nextTextureID++
	return &Texture{img: img, id: nextTextureID}
}

// Image returns the underlying image, or nil for a nil handle.
func (t *Texture) Image() *ebiten.Image {
	if t == nil {
		return nil
	}
	return t.img
}

// ID returns the handle's identity. The nil handle has identity 0.
func (t *Texture) ID() uint64 {
	if t == nil {
		return 0
	}
	return t.id
}

// --- White pixel singleton (no sync.Once, rowan is single-threaded) ---

var whitePixelTexture *Texture

// WhitePixel returns a lazily-initialized texture handle over a 1x1 white
// image. Used for untextured solid-color quads.
func WhitePixel() *Texture {
	if whitePixelTexture == nil {
		img := ebiten.NewImage(1, 1)
		img.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
		whitePixelTexture = NewTexture(img)
	}
	return whitePixelTexture
}
