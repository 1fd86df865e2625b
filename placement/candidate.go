package placement

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/footprint"
	"github.com/lixenwraith/floorplan/vmath"
)

// Candidate is an in-progress, unconfirmed placement
// Exactly one exists while the state machine is Previewing
// Bounds and boundary points are recomputed on every pose change
type Candidate struct {
	desc   *core.Descriptor
	pos    vmath.Vec3 // base point on the floor plane
	rot    int        // degrees about the vertical axis, in {0,90,180,270}
	margin float64    // bounds expansion, biases toward rejecting near-boundary poses

	bounds vmath.AABB
	points footprint.Points
}

// NewCandidate creates a candidate for desc with the given bounds margin
// Pose starts at the origin; callers seed it before first use
func NewCandidate(desc *core.Descriptor, margin float64) *Candidate {
	c := &Candidate{desc: desc, margin: margin}
	c.recompute()
	return c
}

// Descriptor returns the component being placed
func (c *Candidate) Descriptor() *core.Descriptor {
	return c.desc
}

// Position returns the current base point
func (c *Candidate) Position() vmath.Vec3 {
	return c.pos
}

// Rotation returns the current rotation in degrees, normalized to [0,360)
func (c *Candidate) Rotation() int {
	return c.rot
}

// Bounds returns the margin-expanded, rotation-resolved bounding box
func (c *Candidate) Bounds() vmath.AABB {
	return c.bounds
}

// BoundaryPoints returns the 17-point containment sample set
func (c *Candidate) BoundaryPoints() footprint.Points {
	return c.points
}

// SetPosition moves the candidate and recomputes derived geometry
func (c *Candidate) SetPosition(p vmath.Vec3) {
	c.pos = p
	c.recompute()
}

// SetPose sets position and rotation together (edit re-entry seeding)
// Rotation is normalized to the nearest 90-degree step in [0,360)
func (c *Candidate) SetPose(p vmath.Vec3, rotation int) {
	c.pos = p
	c.rot = normalizeRotation(rotation)
	c.recompute()
}

// Rotate turns the candidate +90 degrees and recomputes geometry
// Four rotations return the footprint to its original orientation
func (c *Candidate) Rotate() {
	c.rot = normalizeRotation(c.rot + 90)
	c.recompute()
}

// recompute derives bounds and boundary points from the current pose
// The object rests on the floor: the box center sits half the height
// above the base point. 90/270 rotation swaps the X/Z half-extents
func (c *Candidate) recompute() {
	half := c.desc.Half
	box := vmath.AABB{
		Center: vmath.Vec3{X: c.pos.X, Y: c.pos.Y + half.Y, Z: c.pos.Z},
		Half:   half,
	}
	if c.rot == 90 || c.rot == 270 {
		box = box.SwapXZ()
	}

	c.bounds = box.Expanded(c.margin)
	c.points = footprint.Sample(c.bounds)
}

// normalizeRotation folds degrees into {0,90,180,270}
func normalizeRotation(deg int) int {
	step := deg / 90
	step = ((step % 4) + 4) % 4
	return step * 90
}
