package placement

import (
	"errors"
	"testing"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/vmath"
)

// stubCollision is a scripted CollisionQuery recording its calls
type stubCollision struct {
	hits  []core.Handle
	err   error
	calls int
}

func (s *stubCollision) Overlap(box vmath.AABB, rotation int, exclude core.LayerMask) ([]core.Handle, error) {
	s.calls++
	return s.hits, s.err
}

func testFloor() core.Floor {
	return core.NewFloor(vmath.Vec3{}, 10, 10)
}

func testDescriptor() *core.Descriptor {
	return &core.Descriptor{
		ID:   "crate",
		Name: "Crate",
		Half: vmath.Vec3{X: 0.5, Y: 1, Z: 0.5},
	}
}

func TestCanPlaceValid(t *testing.T) {
	collider := &stubCollision{}
	v := NewValidator(collider, core.DefaultExclusion)

	c := NewCandidate(testDescriptor(), 0)
	c.SetPosition(vmath.Vec3{})

	res := v.CanPlace(c, testFloor())
	if !res.Valid {
		t.Errorf("Expected valid placement, got reason %s", res.Reason)
	}
	if collider.calls != 1 {
		t.Errorf("Expected one collision query, got %d", collider.calls)
	}
}

// Containment failure must short-circuit: no collision query is issued
// and the verdict is out-of-bounds regardless of what the collider
// would have said
func TestCanPlaceOutOfBoundsWinsOverCollision(t *testing.T) {
	collider := &stubCollision{hits: []core.Handle{core.NewHandle()}}
	v := NewValidator(collider, core.DefaultExclusion)

	// Half-extents (0.5,1,0.5) at (4.7,0,4.7) on a 10x10 floor: the
	// +x,+z corner samples at (5.2,_,5.2), past the floor edge
	c := NewCandidate(testDescriptor(), 0)
	c.SetPosition(vmath.Vec3{X: 4.7, Z: 4.7})

	res := v.CanPlace(c, testFloor())
	if res.Valid {
		t.Errorf("Expected invalid placement")
	}
	if res.Reason != ReasonOutOfBounds {
		t.Errorf("Expected reason out of bounds, got %s", res.Reason)
	}
	if collider.calls != 0 {
		t.Errorf("Expected collision query to be skipped, got %d calls", collider.calls)
	}
}

func TestCanPlaceCollisionFails(t *testing.T) {
	collider := &stubCollision{hits: []core.Handle{core.NewHandle()}}
	v := NewValidator(collider, core.DefaultExclusion)

	c := NewCandidate(testDescriptor(), 0)
	c.SetPosition(vmath.Vec3{})

	res := v.CanPlace(c, testFloor())
	if res.Valid || res.Reason != ReasonColliding {
		t.Errorf("Expected colliding verdict, got %+v", res)
	}
}

// An unavailable collision backend cannot confirm the placement is
// safe, so it reads as invalid instead of crashing the loop
func TestCanPlaceCollisionErrorMeansInvalid(t *testing.T) {
	collider := &stubCollision{err: errors.New("backend down")}
	v := NewValidator(collider, core.DefaultExclusion)

	c := NewCandidate(testDescriptor(), 0)
	c.SetPosition(vmath.Vec3{})

	res := v.CanPlace(c, testFloor())
	if res.Valid || res.Reason != ReasonColliding {
		t.Errorf("Expected colliding verdict on backend error, got %+v", res)
	}
}

func TestCanPlaceDegenerateFootprint(t *testing.T) {
	collider := &stubCollision{}
	v := NewValidator(collider, core.DefaultExclusion)

	point := &core.Descriptor{ID: "marker"}
	c := NewCandidate(point, 0)
	c.SetPosition(vmath.Vec3{X: 5, Z: 5}) // exactly on the corner

	res := v.CanPlace(c, testFloor())
	if !res.Valid {
		t.Errorf("Expected zero-extent candidate on the boundary to be valid, got %s", res.Reason)
	}
}
