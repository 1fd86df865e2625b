package grid

import (
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/vmath"
)

// Model owns grid geometry relative to a floor's axis-aligned extent
// The grid origin is pinned to the floor's lower corner so lattice
// points always coincide with the floor boundary
type Model struct {
	floor    core.Floor
	hasFloor bool

	cellSize float64
	minCell  float64
	maxCell  float64

	// majorEvery marks every Nth line as a major gridline, display only
	majorEvery int
	visible    bool
}

// NewModel creates a grid model with the configured cell-size bounds
// No floor is attached yet; SnapToGrid is a passthrough until Resize
func NewModel(minCell, maxCell float64, majorEvery int) *Model {
	if majorEvery < 1 {
		majorEvery = 1
	}
	return &Model{
		cellSize:   minCell,
		minCell:    minCell,
		maxCell:    maxCell,
		majorEvery: majorEvery,
		visible:    true,
	}
}

// Resize attaches the grid to a (new) floor and applies cellSize
// Any previous floor association is discarded
func (m *Model) Resize(floor core.Floor, cellSize float64) {
	m.floor = floor
	m.hasFloor = floor.Valid()
	m.SetCellSize(cellSize)
}

// SetCellSize stores size clamped to the configured bounds and returns
// the stored value. Out-of-range requests are not an error
func (m *Model) SetCellSize(size float64) float64 {
	m.cellSize = vmath.Clamp(size, m.minCell, m.maxCell)
	return m.cellSize
}

// CellSize returns the current (clamped) cell size
func (m *Model) CellSize() float64 {
	return m.cellSize
}

// Origin returns the grid origin (the floor's lower corner)
func (m *Model) Origin() vmath.Vec3 {
	return m.floor.Min
}

// HasFloor reports whether a floor is attached
func (m *Model) HasFloor() bool {
	return m.hasFloor
}

// Floor returns the attached floor. Only meaningful when HasFloor is true
func (m *Model) Floor() core.Floor {
	return m.floor
}

// MajorEvery returns the major gridline interval
func (m *Model) MajorEvery() int {
	return m.majorEvery
}

// SetVisible toggles gridline display. Display only; snapping is
// unaffected by visibility
func (m *Model) SetVisible(on bool) {
	m.visible = on
}

// Visible reports gridline display state
func (m *Model) Visible() bool {
	return m.visible
}

// SnapToGrid maps p to the nearest grid intersection, clamped into the
// floor extent. The vertical component passes through unchanged
// Passthrough when no floor is attached
func (m *Model) SnapToGrid(p vmath.Vec3) vmath.Vec3 {
	if !m.hasFloor {
		return p
	}

	origin := m.floor.Min
	snapped := vmath.Vec3{
		X: origin.X + vmath.RoundToStep(p.X-origin.X, m.cellSize),
		Y: p.Y,
		Z: origin.Z + vmath.RoundToStep(p.Z-origin.Z, m.cellSize),
	}

	return m.floor.ClampXZ(snapped)
}
