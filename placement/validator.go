package placement

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/footprint"
)

// Reason says which check failed when a placement is invalid
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonOutOfBounds
	ReasonColliding
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonColliding:
		return "colliding"
	default:
		return "none"
	}
}

// Result is a placement verdict. Not persisted; consumed the same frame
type Result struct {
	Valid  bool
	Reason Reason
}

// Validator decides whether a candidate may be committed
// It is the logical AND of floor containment and collision freedom
// CanPlace is side-effect free and safe to call every frame
type Validator struct {
	collision CollisionQuery
	exclude   core.LayerMask
}

// NewValidator creates a validator over the given collision backend
// exclude names the layers ignored during overlap tests, typically the
// floor itself and anything marked passable
func NewValidator(q CollisionQuery, exclude core.LayerMask) *Validator {
	return &Validator{collision: q, exclude: exclude}
}

// CanPlace validates c against floor containment, then collision
// A failing or unavailable collision backend means the placement cannot
// be confirmed safe, so it reads as colliding rather than crashing the
// interaction loop
func (v *Validator) CanPlace(c *Candidate, floor core.Floor) Result {
	if !footprint.AllWithinFloor(c.BoundaryPoints(), floor) {
		return Result{Valid: false, Reason: ReasonOutOfBounds}
	}

	hits, err := v.collision.Overlap(c.Bounds(), c.Rotation(), v.exclude)
	if err != nil {
		return Result{Valid: false, Reason: ReasonColliding}
	}
	if len(hits) > 0 {
		return Result{Valid: false, Reason: ReasonColliding}
	}

	return Result{Valid: true}
}
