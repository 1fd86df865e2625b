package event

// Type discriminates placement events
type Type int

const (
	// TypeNone is the zero value, never emitted
	TypeNone Type = iota

	// === Session Events ===

	// TypeFloorCreated signals a new floor replaced the old one
	// Trigger: Controller.CreateOrResizeGrid with a new floor
	// Consumer: host view | Payload: *FloorCreatedPayload
	TypeFloorCreated

	// TypeGridResized signals a grid cell-size change
	// Trigger: Controller.SetGridCellSize / CreateOrResizeGrid
	// Consumer: host view (regenerates gridlines) | Payload: *GridResizedPayload
	TypeGridResized

	// TypeSnapToggled signals snap enable/disable
	// Trigger: Controller.SetSnapEnabled
	// Consumer: host status line | Payload: *SnapToggledPayload
	TypeSnapToggled

	// === Placement Events ===

	// TypePlacementStarted signals a preview session began
	// Trigger: Machine.StartPlacement
	// Consumer: host view | Payload: *PlacementStartedPayload
	TypePlacementStarted

	// TypePlacementConfirmed signals a candidate was committed
	// Trigger: Machine.Confirm while valid
	// Consumer: host view, audio feedback | Payload: *PlacementConfirmedPayload
	TypePlacementConfirmed

	// TypePlacementCancelled signals a preview session was discarded
	// Trigger: Machine.Cancel
	// Consumer: host view | Payload: *PlacementCancelledPayload
	TypePlacementCancelled

	// TypeObjectRemoved signals a placed object was removed
	// Trigger: Machine.BeginEdit (remove-then-restart) or host removal
	// Consumer: host view | Payload: *ObjectRemovedPayload
	TypeObjectRemoved
)
