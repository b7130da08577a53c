package rowan

import (
	"encoding/binary"
	"math"
)

// VertexBuffer describes a caller-owned destination for FillBuffer. Vertices
// and UVs hold two little-endian float32 components per entry; Indices holds
// one little-endian uint32 per entry. The strides are byte distances between
// consecutive entries, so interleaved formats are supported by pointing
// Vertices and UVs into the same backing array at different offsets.
//
// Vertices and UVs must share VertexStride (they normally view the same
// interleaved buffer).
type VertexBuffer struct {
	Vertices []byte
	UVs      []byte
	Indices  []byte

	VertexStride int
	IndexStride  int
}

// Interleaved layout used by NewInterleavedBuffer: x, y, u, v per vertex.
const (
	interleavedStride   = 16 // 4 float32s
	interleavedUVOffset = 8
	indexSize           = 4
)

// NewInterleavedBuffer allocates a destination buffer for maxNumQuads quads in
// the [x y u v] interleaved layout, with a separate tightly-packed index
// buffer. Vertices and UVs view the same allocation at offsets 0 and 8.
func NewInterleavedBuffer(maxNumQuads int) VertexBuffer {
	verts := make([]byte, maxNumQuads*4*interleavedStride)
	inds := make([]byte, maxNumQuads*6*indexSize)
	b := VertexBuffer{
		Vertices:     verts,
		Indices:      inds,
		VertexStride: interleavedStride,
		IndexStride:  indexSize,
	}
	if maxNumQuads > 0 {
		b.UVs = verts[interleavedUVOffset:]
	}
	return b
}

// FillBuffer copies the selected render element's quads into dst, starting at
// destination quad startingQuad. It never writes past maxNumQuads quads: when
// the element holds more quads than fit, the extras are silently dropped and
// the smaller count is returned. Truncation is a fail-safe, not an error.
//
// When clip is true and clipRect is non-degenerate, the written vertex range
// is clipped in place against clipRect in local space; offset is applied
// afterwards, so clipping is unaffected by it.
//
// Index values are local to this call's quad range (vertex 0 is the first
// written vertex) plus indexBase. When funneling several elements into one
// shared buffer, pass the running vertex count as indexBase.
//
// Returns the number of quads written.
func (s *Sprite) FillBuffer(dst VertexBuffer, startingQuad, maxNumQuads int,
	elementIdx int, indexBase uint32, offset Vec2, clipRect Rect, clip bool) int {

	s.checkElementIdx(elementIdx)
	e := &s.elements[elementIdx]

	if startingQuad >= maxNumQuads {
		return 0
	}
	quads := e.numQuads
	if room := maxNumQuads - startingQuad; quads > room {
		quads = room
	}
	if quads <= 0 {
		return 0
	}

	pos := s.positions[e.firstQuad*8:]
	uvs := s.uvs[e.firstQuad*8:]
	inds := s.indices[e.firstQuad*6:]

	for i := 0; i < quads*4; i++ {
		vo := (startingQuad*4 + i) * dst.VertexStride
		putF32(dst.Vertices[vo:], pos[i*2])
		putF32(dst.Vertices[vo+4:], pos[i*2+1])
		putF32(dst.UVs[vo:], uvs[i*2])
		putF32(dst.UVs[vo+4:], uvs[i*2+1])
	}
	for i := 0; i < quads*6; i++ {
		io := (startingQuad*6 + i) * dst.IndexStride
		putU32(dst.Indices[io:], inds[i]+indexBase)
	}

	vertStart := startingQuad * 4 * dst.VertexStride
	if clip && !clipRect.Empty() {
		clipQuadsToRect(dst.Vertices[vertStart:], dst.UVs[vertStart:],
			quads, dst.VertexStride, clipRect)
	}

	ox := float32(offset.X)
	oy := float32(offset.Y)
	if ox != 0 || oy != 0 {
		for i := 0; i < quads*4; i++ {
			vo := vertStart + i*dst.VertexStride
			putF32(dst.Vertices[vo:], getF32(dst.Vertices[vo:])+ox)
			putF32(dst.Vertices[vo+4:], getF32(dst.Vertices[vo+4:])+oy)
		}
	}

	return quads
}

// --- little-endian buffer access ---

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putU32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

func getU32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}
