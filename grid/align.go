package grid

import (
	"github.com/lixenwraith/floorplan/vmath"
)

// Aligner debounces grid cell selection near cell boundaries
// Naive per-frame snapping flickers when the raw cursor sits on a cell
// boundary: the snapped result alternates between the two neighboring
// lattice points every frame. The aligner holds the last committed cell
// and re-commits only when the move is unambiguous (a raw jump of at
// least one cell, or a snapped change of more than one cell) or the
// cursor has lingered near the new cell past the debounce threshold
type Aligner struct {
	model   *Model
	enabled bool

	// Alignment state, reset on session start and reconfiguration
	hasLast     bool
	lastRaw     vmath.Vec3
	lastSnapped vmath.Vec3
	switchTimer float64 // seconds since last commit
	debounce    float64 // seconds a new cell must persist before commit
}

// NewAligner creates an enabled aligner over model
func NewAligner(model *Model, debounce float64) *Aligner {
	return &Aligner{
		model:    model,
		enabled:  true,
		debounce: debounce,
	}
}

// SetEnabled toggles snapping. Re-enabling clears alignment state so the
// next Align call commits fresh
func (a *Aligner) SetEnabled(on bool) {
	if on && !a.enabled {
		a.Reset()
	}
	a.enabled = on
}

// Enabled reports whether snapping is active
func (a *Aligner) Enabled() bool {
	return a.enabled
}

// Reset clears the committed cell and the switch timer
// Called on session start, grid resize, and floor replacement
func (a *Aligner) Reset() {
	a.hasLast = false
	a.lastRaw = vmath.Vec3{}
	a.lastSnapped = vmath.Vec3{}
	a.switchTimer = 0
}

// Align filters raw through the grid with hysteresis
// dt is the elapsed frame time in seconds; the switch timer accumulates
// every call and resets only when a new cell is committed
// Passthrough when disabled or no floor is attached
func (a *Aligner) Align(raw vmath.Vec3, dt float64) vmath.Vec3 {
	if !a.enabled || a.model == nil || !a.model.HasFloor() {
		return raw
	}

	candidate := a.model.SnapToGrid(raw)

	if !a.hasLast {
		a.lastRaw = raw
		return a.commit(candidate)
	}

	a.switchTimer += dt

	rawJump := vmath.V3DistXZ(raw, a.lastRaw)
	a.lastRaw = raw

	cell := a.model.CellSize()
	dist := vmath.V3DistXZ(candidate, a.lastSnapped)

	switch {
	case dist == 0:
		// Same cell; nothing to decide
		return a.lastSnapped
	case rawJump >= cell:
		// Intentional jump: the raw cursor moved a full cell in one frame
		// Boundary jitter never does this
		return a.commit(candidate)
	case dist > cell:
		// Snapped result moved more than one lattice step (diagonal or
		// multi-cell), cannot be boundary oscillation
		return a.commit(candidate)
	case a.switchTimer > a.debounce:
		// Cursor lingered near a neighboring cell long enough
		return a.commit(candidate)
	default:
		return a.lastSnapped
	}
}

func (a *Aligner) commit(p vmath.Vec3) vmath.Vec3 {
	a.lastSnapped = p
	a.hasLast = true
	a.switchTimer = 0
	return p
}
