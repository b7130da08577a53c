package rowan

import "math"

// MaterialKind selects the rendering technique for a render element.
type MaterialKind uint8

const (
	MaterialText       MaterialKind = iota // alpha-blended text glyphs
	MaterialImage                          // opaque image (no blending)
	MaterialImageAlpha                     // alpha-blended image
)

// MaterialInfo identifies the material of a render element and acts as the
// batching key: elements whose MaterialInfo values are equal may be merged
// into a single draw call.
//
// MaterialInfo is a comparable value type. Equality is field-wise, with the
// texture compared by handle identity rather than pixel content.
type MaterialInfo struct {
	Kind    MaterialKind
	GroupID uint64 // opaque batching discriminator chosen by the caller
	Texture *Texture
	Tint    Color
}

// fnv-1a 64-bit parameters
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Hash returns a 64-bit value describing the material's contents. Equal
// materials always hash equal. Collisions are possible; batching code must
// confirm with == before merging.
func (m MaterialInfo) Hash() uint64 {
	h := uint64(fnvOffset64)
	h = hashMix(h, uint64(m.Kind))
	h = hashMix(h, m.GroupID)
	h = hashMix(h, m.Texture.ID())
	h = hashMix(h, math.Float64bits(m.Tint.R))
	h = hashMix(h, math.Float64bits(m.Tint.G))
	h = hashMix(h, math.Float64bits(m.Tint.B))
	h = hashMix(h, math.Float64bits(m.Tint.A))
	return h
}

func hashMix(h, v uint64) uint64 {
	h ^= v
	h *= fnvPrime64
	return h
}
