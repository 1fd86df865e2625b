package placement

import (
	"fmt"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/grid"
	"github.com/lixenwraith/floorplan/vmath"
)

// Controller is the surface exposed to host glue (UI, scripting)
// It owns the grid model, the aligner and the state machine, and keeps
// the invariant that any grid or floor reconfiguration resets in-flight
// alignment state
type Controller struct {
	grid    *grid.Model
	aligner *grid.Aligner
	machine *Machine
	catalog CatalogProvider
	events  *event.Queue
}

// ControllerConfig carries construction parameters
type ControllerConfig struct {
	// CellSizeMin, CellSizeMax bound SetGridCellSize requests
	CellSizeMin float64
	CellSizeMax float64
	// MajorEvery marks every Nth gridline as major (display only)
	MajorEvery int
	// Debounce is the hysteresis threshold in seconds
	Debounce float64
	// Margin expands candidate bounds before containment/collision tests
	Margin float64
	// ExcludeLayers are ignored by collision validation
	ExcludeLayers core.LayerMask
}

// NewController wires the placement core
// All collaborators are injected; nothing is resolved globally
func NewController(
	cfg ControllerConfig,
	catalog CatalogProvider,
	collision CollisionQuery,
	projector PointerProjector,
	feedback FeedbackSink,
	committer CommitService,
	events *event.Queue,
) *Controller {
	model := grid.NewModel(cfg.CellSizeMin, cfg.CellSizeMax, cfg.MajorEvery)
	aligner := grid.NewAligner(model, cfg.Debounce)
	validator := NewValidator(collision, cfg.ExcludeLayers)

	machine := NewMachine(Deps{
		Grid:      model,
		Aligner:   aligner,
		Validator: validator,
		Projector: projector,
		Feedback:  feedback,
		Committer: committer,
		Events:    events,
	}, cfg.Margin)

	return &Controller{
		grid:    model,
		aligner: aligner,
		machine: machine,
		catalog: catalog,
		events:  events,
	}
}

// Grid exposes the grid model for host rendering (cell size, origin,
// major interval). Hosts must not mutate it directly
func (c *Controller) Grid() *grid.Model {
	return c.grid
}

// Machine exposes session state for host rendering
func (c *Controller) Machine() *Machine {
	return c.machine
}

// CreateOrResizeGrid replaces the floor and regenerates the grid
// Any active preview is cancelled: the old floor's placement state is
// meaningless on the new floor
func (c *Controller) CreateOrResizeGrid(floor core.Floor, cellSize float64) error {
	if !floor.Valid() {
		return fmt.Errorf("create grid: degenerate floor %gx%g", floor.Width, floor.Length)
	}

	c.machine.Cancel()
	c.grid.Resize(floor, cellSize)
	c.aligner.Reset()

	c.emit(event.TypeFloorCreated, &event.FloorCreatedPayload{Floor: floor})
	c.emit(event.TypeGridResized, &event.GridResizedPayload{CellSize: c.grid.CellSize()})
	return nil
}

// SetGridCellSize clamps and applies a new cell size, returning the
// stored value. In-flight alignment state is invalidated
func (c *Controller) SetGridCellSize(size float64) float64 {
	stored := c.grid.SetCellSize(size)
	c.aligner.Reset()
	c.emit(event.TypeGridResized, &event.GridResizedPayload{CellSize: stored})
	return stored
}

// SetGridVisible toggles gridline display
func (c *Controller) SetGridVisible(on bool) {
	c.grid.SetVisible(on)
}

// SetSnapEnabled toggles grid alignment
func (c *Controller) SetSnapEnabled(on bool) {
	c.aligner.SetEnabled(on)
	c.emit(event.TypeSnapToggled, &event.SnapToggledPayload{Enabled: on})
}

// SnapEnabled reports whether alignment is active
func (c *Controller) SnapEnabled() bool {
	return c.aligner.Enabled()
}

// StartPlacement resolves id through the catalog and begins previewing
func (c *Controller) StartPlacement(id string) error {
	desc, err := c.catalog.Resolve(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, id)
	}
	return c.machine.StartPlacement(desc)
}

// RotatePreview turns the active preview +90 degrees
func (c *Controller) RotatePreview() {
	c.machine.Rotate()
}

// ConfirmPlacement commits the preview if the last validation passed
func (c *Controller) ConfirmPlacement(continuous bool) (core.Handle, error) {
	return c.machine.Confirm(continuous)
}

// CancelPlacement discards the preview
func (c *Controller) CancelPlacement() {
	c.machine.Cancel()
}

// EditPlacement removes a placed object and restarts placement seeded
// from its transform
func (c *Controller) EditPlacement(h core.Handle) error {
	return c.machine.BeginEdit(h)
}

// AlignToGrid exposes raw snap behavior for callers moving objects
// outside a preview session. No hysteresis is applied
func (c *Controller) AlignToGrid(p vmath.Vec3) vmath.Vec3 {
	return c.grid.SnapToGrid(p)
}

// Tick advances the interactive session by one frame
func (c *Controller) Tick(dt float64, in InputSnapshot) {
	c.machine.Tick(dt, in)
}

func (c *Controller) emit(t event.Type, payload any) {
	if c.events == nil {
		return
	}
	c.events.Push(event.Event{Type: t, Payload: payload})
}
