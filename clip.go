package rowan

// clipQuadsToRect trims numQuads quads in the given vertex buffer to clipRect,
// correcting UVs so texture sampling stays proportional to the visible
// fraction. Operates in place, honoring vertexStride when advancing between
// entries. vertices and uvs must share the stride (they normally view the
// same interleaved buffer at different offsets).
//
// A quad whose extent lies fully outside clipRect on either axis collapses to
// a single point on the clip boundary. It keeps its slot: quad count and
// index topology never change, the quad simply contributes no area.
//
// Clipping an already-clipped quad against the same rectangle is a no-op.
func clipQuadsToRect(vertices, uvs []byte, numQuads, vertexStride int, clipRect Rect) {
	left := float32(clipRect.X)
	right := float32(clipRect.X + clipRect.Width)
	top := float32(clipRect.Y)
	bottom := float32(clipRect.Y + clipRect.Height)

	var px, py, pu, pv [4]float32

	for q := 0; q < numQuads; q++ {
		base := q * 4 * vertexStride
		for i := 0; i < 4; i++ {
			o := base + i*vertexStride
			px[i] = getF32(vertices[o:])
			py[i] = getF32(vertices[o+4:])
			pu[i] = getF32(uvs[o:])
			pv[i] = getF32(uvs[o+4:])
		}

		minX, maxX := extent4(px)
		minY, maxY := extent4(py)

		// Fully outside on either axis: collapse to a zero-area point on the
		// clip boundary. UVs are irrelevant for a degenerate quad.
		if maxX < left || minX > right || maxY < top || minY > bottom {
			cx := clamp32(minX, left, right)
			cy := clamp32(minY, top, bottom)
			for i := 0; i < 4; i++ {
				o := base + i*vertexStride
				putF32(vertices[o:], cx)
				putF32(vertices[o+4:], cy)
			}
			continue
		}

		// Clamp violating vertices to the clip boundary and shift their UVs
		// by the clipped fraction of the quad's extent along that axis.
		if w := maxX - minX; w > 0 {
			uMin, uMax := uvAtExtent(px, pu, minX, maxX)
			dudx := (uMax - uMin) / w
			for i := 0; i < 4; i++ {
				nx := clamp32(px[i], left, right)
				if nx != px[i] {
					pu[i] += (nx - px[i]) * dudx
					px[i] = nx
				}
			}
		}
		if h := maxY - minY; h > 0 {
			vMin, vMax := uvAtExtent(py, pv, minY, maxY)
			dvdy := (vMax - vMin) / h
			for i := 0; i < 4; i++ {
				ny := clamp32(py[i], top, bottom)
				if ny != py[i] {
					pv[i] += (ny - py[i]) * dvdy
					py[i] = ny
				}
			}
		}

		for i := 0; i < 4; i++ {
			o := base + i*vertexStride
			putF32(vertices[o:], px[i])
			putF32(vertices[o+4:], py[i])
			putF32(uvs[o:], pu[i])
			putF32(uvs[o+4:], pv[i])
		}
	}
}

// extent4 returns the min and max of four values.
func extent4(v [4]float32) (min, max float32) {
	min, max = v[0], v[0]
	for i := 1; i < 4; i++ {
		if v[i] < min {
			min = v[i]
		}
		if v[i] > max {
			max = v[i]
		}
	}
	return min, max
}

// uvAtExtent returns the UV component carried by a vertex at the min and max
// coordinate extents. For an axis-aligned quad this pairs each side of the
// quad with its texture coordinate.
func uvAtExtent(coords, uv [4]float32, min, max float32) (atMin, atMax float32) {
	atMin, atMax = uv[0], uv[0]
	for i := 0; i < 4; i++ {
		if coords[i] == min {
			atMin = uv[i]
		}
		if coords[i] == max {
			atMax = uv[i]
		}
	}
	return atMin, atMax
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
