package event

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/vmath"
)

// FloorCreatedPayload carries the replacement floor
type FloorCreatedPayload struct {
	Floor core.Floor
}

// GridResizedPayload carries the stored (clamped) cell size
type GridResizedPayload struct {
	CellSize float64
}

// SnapToggledPayload carries the new snap state
type SnapToggledPayload struct {
	Enabled bool
}

// PlacementStartedPayload identifies the previewed component
type PlacementStartedPayload struct {
	ComponentID string
}

// PlacementConfirmedPayload carries the committed placement
type PlacementConfirmedPayload struct {
	ComponentID string
	Handle      core.Handle
	Position    vmath.Vec3
	Rotation    int
}

// PlacementCancelledPayload identifies the discarded component
type PlacementCancelledPayload struct {
	ComponentID string
}

// ObjectRemovedPayload identifies the removed instance
type ObjectRemovedPayload struct {
	Handle core.Handle
}
