package core

import (
	"github.com/lixenwraith/floorplan/vmath"
)

// Floor is the rectangular placement surface, immutable per session
// Creating a new floor replaces the old one and invalidates grid and
// placement state owned by callers
type Floor struct {
	Center vmath.Vec3
	Width  float64 // X extent
	Length float64 // Z extent
	Min    vmath.Vec3
	Max    vmath.Vec3
}

// NewFloor derives the axis-aligned corners from center and extents
func NewFloor(center vmath.Vec3, width, length float64) Floor {
	half := vmath.Vec3{X: width / 2, Z: length / 2}
	return Floor{
		Center: center,
		Width:  width,
		Length: length,
		Min:    vmath.V3Sub(center, half),
		Max:    vmath.V3Add(center, half),
	}
}

// Valid reports whether the floor has a usable extent
func (f Floor) Valid() bool {
	return f.Width > 0 && f.Length > 0
}

// ClampXZ forces p's horizontal components into the floor extent
// The vertical component passes through unchanged
func (f Floor) ClampXZ(p vmath.Vec3) vmath.Vec3 {
	return vmath.Vec3{
		X: vmath.Clamp(p.X, f.Min.X, f.Max.X),
		Y: p.Y,
		Z: vmath.Clamp(p.Z, f.Min.Z, f.Max.Z),
	}
}

// ContainsXZ reports whether p's horizontal projection lies on the floor
// Points exactly on the boundary count as contained
func (f Floor) ContainsXZ(p vmath.Vec3) bool {
	return p.X >= f.Min.X && p.X <= f.Max.X &&
		p.Z >= f.Min.Z && p.Z <= f.Max.Z
}
