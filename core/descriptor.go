package core

import (
	"github.com/lixenwraith/floorplan/vmath"
)

// Descriptor describes a catalog component: identity plus the footprint
// geometry the placement core needs. Visual detail beyond the glyph is
// owned by the host
type Descriptor struct {
	ID       string
	Name     string
	Category string
	// Half is the footprint's half-extents at 0 degrees rotation
	// A zero-extent footprint is legal and degenerates to a point
	Half vmath.Vec3
	// Passable components never block other placements
	Passable bool
	// Glyph is the top-down display rune used by the terminal host
	Glyph rune
}

// HasFootprint reports whether the descriptor carries usable geometry
// Negative extents mean the catalog entry is broken
func (d *Descriptor) HasFootprint() bool {
	if d == nil {
		return false
	}
	return d.Half.X >= 0 && d.Half.Y >= 0 && d.Half.Z >= 0
}

// Layer returns the collision layer placed instances of d belong to
func (d *Descriptor) Layer() LayerMask {
	if d.Passable {
		return LayerPassable
	}
	return LayerObject
}
