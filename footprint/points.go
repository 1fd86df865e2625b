package footprint

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/vmath"
)

// PointCount is the size of the boundary sample set
// Corners alone miss long thin objects overhanging only at an edge
// midpoint; adding edge midpoints catches axis-aligned rectangular
// overhang without a full-volume containment test
const PointCount = 17

// Points is the fixed boundary sample set of a bounding box:
// the center, the 8 corners, 4 axis-edge midpoints, and 4 bottom-edge
// midpoints. A zero-extent box yields 17 coincident points, which the
// containment test handles as a single point
type Points [PointCount]vmath.Vec3

// Sample derives the boundary point set from box
// Callers expand the box by the placement margin before sampling
func Sample(box vmath.AABB) Points {
	c := box.Center
	e := box.Half

	var p Points
	p[0] = c

	// 8 corners, all sign combinations
	i := 1
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				p[i] = vmath.Vec3{X: c.X + sx*e.X, Y: c.Y + sy*e.Y, Z: c.Z + sz*e.Z}
				i++
			}
		}
	}

	// 4 axis-edge midpoints
	p[9] = vmath.Vec3{X: c.X + e.X, Y: c.Y, Z: c.Z}
	p[10] = vmath.Vec3{X: c.X - e.X, Y: c.Y, Z: c.Z}
	p[11] = vmath.Vec3{X: c.X, Y: c.Y, Z: c.Z + e.Z}
	p[12] = vmath.Vec3{X: c.X, Y: c.Y, Z: c.Z - e.Z}

	// 4 bottom-edge midpoints
	p[13] = vmath.Vec3{X: c.X + e.X, Y: c.Y - e.Y, Z: c.Z}
	p[14] = vmath.Vec3{X: c.X - e.X, Y: c.Y - e.Y, Z: c.Z}
	p[15] = vmath.Vec3{X: c.X, Y: c.Y - e.Y, Z: c.Z + e.Z}
	p[16] = vmath.Vec3{X: c.X, Y: c.Y - e.Y, Z: c.Z - e.Z}

	return p
}

// AllWithinFloor reports whether every sample point's horizontal
// projection lies on the floor. Containment is a 2D footprint test; the
// vertical component is ignored
func AllWithinFloor(points Points, floor core.Floor) bool {
	for _, p := range points {
		if !floor.ContainsXZ(p) {
			return false
		}
	}
	return true
}
