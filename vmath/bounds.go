package vmath

// AABB is an axis-aligned bounding box expressed as center + half-extents
// Half components are always >= 0
type AABB struct {
	Center Vec3
	Half   Vec3
}

// Min returns the lower corner
func (b AABB) Min() Vec3 {
	return V3Sub(b.Center, b.Half)
}

// Max returns the upper corner
func (b AABB) Max() Vec3 {
	return V3Add(b.Center, b.Half)
}

// Expanded returns a copy grown by margin on every axis
// A negative margin shrinks but never inverts the box
func (b AABB) Expanded(margin float64) AABB {
	h := Vec3{
		X: max(b.Half.X+margin, 0),
		Y: max(b.Half.Y+margin, 0),
		Z: max(b.Half.Z+margin, 0),
	}
	return AABB{Center: b.Center, Half: h}
}

// SwapXZ exchanges the X and Z half-extents
// Used for 90/270 degree footprint rotation about the vertical axis
func (b AABB) SwapXZ() AABB {
	return AABB{
		Center: b.Center,
		Half:   Vec3{X: b.Half.Z, Y: b.Half.Y, Z: b.Half.X},
	}
}

// IntersectsXZ reports horizontal footprint overlap between two boxes
// Touching edges do not count as overlap
func (b AABB) IntersectsXZ(o AABB) bool {
	if b.Center.X-b.Half.X >= o.Center.X+o.Half.X {
		return false
	}
	if b.Center.X+b.Half.X <= o.Center.X-o.Half.X {
		return false
	}
	if b.Center.Z-b.Half.Z >= o.Center.Z+o.Half.Z {
		return false
	}
	if b.Center.Z+b.Half.Z <= o.Center.Z-o.Half.Z {
		return false
	}
	return true
}

// ContainsXZ reports whether point p's horizontal projection lies inside the box
// Boundary points count as contained
func (b AABB) ContainsXZ(p Vec3) bool {
	return p.X >= b.Center.X-b.Half.X && p.X <= b.Center.X+b.Half.X &&
		p.Z >= b.Center.Z-b.Half.Z && p.Z <= b.Center.Z+b.Half.Z
}
