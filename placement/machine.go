package placement

import (
	"fmt"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/grid"
	"github.com/lixenwraith/floorplan/vmath"
)

// State is the interaction session state
type State uint8

const (
	// StateIdle has no candidate
	StateIdle State = iota
	// StatePreviewing has exactly one candidate, continuously validated
	StatePreviewing
)

func (s State) String() string {
	switch s {
	case StatePreviewing:
		return "previewing"
	default:
		return "idle"
	}
}

// Deps are the collaborators the machine is constructed with
// Everything is injected; the machine resolves nothing globally
type Deps struct {
	Grid      *grid.Model
	Aligner   *grid.Aligner
	Validator *Validator
	Projector PointerProjector
	Feedback  FeedbackSink
	Committer CommitService
	Events    *event.Queue
}

// Machine orchestrates the interactive placement session
// Single-threaded: every operation completes synchronously within one
// tick. Within a tick the order is fixed: align, validate, feedback
type Machine struct {
	deps   Deps
	margin float64 // candidate bounds expansion

	state     State
	candidate *Candidate
	lastValid bool
	lastWhy   Reason
	frame     int64
}

// NewMachine creates an idle machine
// margin is the bounding-box expansion applied to every candidate
func NewMachine(deps Deps, margin float64) *Machine {
	return &Machine{deps: deps, margin: margin}
}

// State returns the current session state
func (m *Machine) State() State {
	return m.state
}

// Candidate returns the active candidate, nil unless Previewing
func (m *Machine) Candidate() *Candidate {
	return m.candidate
}

// LastResult returns the verdict of the most recent validation
func (m *Machine) LastResult() Result {
	return Result{Valid: m.lastValid, Reason: m.lastWhy}
}

// StartPlacement begins previewing desc, seeded at the floor center
// An active preview is cancelled first. Refused without a floor or when
// the descriptor carries no usable footprint; state stays Idle (or the
// old preview stays torn down) and the error says why
func (m *Machine) StartPlacement(desc *core.Descriptor) error {
	if !m.deps.Grid.HasFloor() {
		return ErrNoFloor
	}
	return m.startAt(desc, m.deps.Grid.Floor().Center, 0)
}

// StartPlacementAt begins previewing desc at an explicit pose
// Used by edit re-entry to seed the removed object's transform
func (m *Machine) StartPlacementAt(desc *core.Descriptor, pos vmath.Vec3, rotation int) error {
	if !m.deps.Grid.HasFloor() {
		return ErrNoFloor
	}
	return m.startAt(desc, pos, rotation)
}

func (m *Machine) startAt(desc *core.Descriptor, pos vmath.Vec3, rotation int) error {
	if !desc.HasFootprint() {
		return ErrNilFootprint
	}

	if m.state == StatePreviewing {
		m.Cancel()
	}

	// Fresh session: alignment state must not leak across sessions
	m.deps.Aligner.Reset()

	m.candidate = NewCandidate(desc, m.margin)
	m.candidate.SetPose(pos, rotation)
	m.state = StatePreviewing
	m.lastValid = false
	m.lastWhy = ReasonNone

	m.emit(event.TypePlacementStarted, &event.PlacementStartedPayload{ComponentID: desc.ID})
	return nil
}

// Tick advances the session by one frame
// Pointer projection feeds the aligner, the aligned point moves the
// candidate, then validation runs and feedback is pushed, strictly in
// that order. Validating a stale pose would be a correctness bug
func (m *Machine) Tick(dt float64, in InputSnapshot) {
	m.frame++

	if m.state != StatePreviewing {
		return
	}

	if in.HasPointer {
		if world, ok := m.deps.Projector.ProjectPointer(in.PointerX, in.PointerY); ok {
			aligned := m.deps.Aligner.Align(world, dt)
			m.candidate.SetPosition(aligned)
		}
	}

	m.validate()
}

// Rotate turns the preview +90 degrees
// Geometry is recomputed and re-validated immediately: rotation changes
// the footprint, so the stale verdict must not survive the call
func (m *Machine) Rotate() {
	if m.state != StatePreviewing {
		return
	}
	m.candidate.Rotate()
	m.validate()
}

// Confirm commits the candidate when the last validation passed
// No-op while invalid or idle. With continuous set, the session
// immediately re-enters Previewing with a fresh candidate of the same
// component; otherwise the machine returns to Idle
// A commit-service failure leaves the preview intact and is returned
func (m *Machine) Confirm(continuous bool) (core.Handle, error) {
	if m.state != StatePreviewing || !m.lastValid {
		return core.NilHandle, nil
	}

	desc := m.candidate.Descriptor()
	pos := m.candidate.Position()
	rot := m.candidate.Rotation()

	h, err := m.deps.Committer.Place(desc, pos, rot)
	if err != nil {
		return core.NilHandle, fmt.Errorf("commit placement: %w", err)
	}

	m.emit(event.TypePlacementConfirmed, &event.PlacementConfirmedPayload{
		ComponentID: desc.ID,
		Handle:      h,
		Position:    pos,
		Rotation:    rot,
	})

	if continuous {
		// Same component, fresh candidate seeded at the committed pose
		// The new candidate overlaps the object just placed, so it reads
		// invalid until the pointer moves it
		m.deps.Aligner.Reset()
		m.candidate = NewCandidate(desc, m.margin)
		m.candidate.SetPose(pos, rot)
		m.lastValid = false
		m.lastWhy = ReasonNone
		m.validate()
		return h, nil
	}

	m.candidate = nil
	m.state = StateIdle
	m.lastValid = false
	m.lastWhy = ReasonNone
	return h, nil
}

// Cancel discards the candidate and returns to Idle
// Synchronous: by return, the candidate is gone and no partial teardown
// is observable
func (m *Machine) Cancel() {
	if m.state != StatePreviewing {
		return
	}

	id := m.candidate.Descriptor().ID
	m.candidate = nil
	m.state = StateIdle
	m.lastValid = false
	m.lastWhy = ReasonNone
	m.deps.Aligner.Reset()

	m.emit(event.TypePlacementCancelled, &event.PlacementCancelledPayload{ComponentID: id})
}

// BeginEdit picks up an already-placed object: remove, then restart
// placement seeded from the removed object's transform. There is no
// separate editing state
func (m *Machine) BeginEdit(h core.Handle) error {
	desc, pos, rot, ok := m.deps.Committer.Lookup(h)
	if !ok {
		return ErrUnknownObject
	}

	if err := m.deps.Committer.Remove(h); err != nil {
		return fmt.Errorf("remove for edit: %w", err)
	}
	m.emit(event.TypeObjectRemoved, &event.ObjectRemovedPayload{Handle: h})

	return m.StartPlacementAt(desc, pos, rot)
}

// validate runs the verdict for the current pose and pushes feedback
func (m *Machine) validate() {
	res := m.deps.Validator.CanPlace(m.candidate, m.deps.Grid.Floor())
	m.lastValid = res.Valid
	m.lastWhy = res.Reason

	if m.deps.Feedback != nil {
		m.deps.Feedback.SetPreviewTransform(m.candidate.Position(), m.candidate.Rotation())
		m.deps.Feedback.SetPreviewColor(res.Valid)
	}
}

func (m *Machine) emit(t event.Type, payload any) {
	if m.deps.Events == nil {
		return
	}
	m.deps.Events.Push(event.Event{Type: t, Payload: payload, Frame: m.frame})
}
