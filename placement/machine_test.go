package placement

import (
	"errors"
	"testing"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/grid"
	"github.com/lixenwraith/floorplan/vmath"
)

// stubProjector returns a scripted world point
type stubProjector struct {
	world vmath.Vec3
	ok    bool
}

func (s *stubProjector) ProjectPointer(x, y int) (vmath.Vec3, bool) {
	return s.world, s.ok
}

// stubFeedback records the most recent preview push
type stubFeedback struct {
	lastValid  bool
	lastPos    vmath.Vec3
	lastRot    int
	colorCalls int
}

func (s *stubFeedback) SetPreviewColor(valid bool) {
	s.lastValid = valid
	s.colorCalls++
}

func (s *stubFeedback) SetPreviewTransform(pos vmath.Vec3, rot int) {
	s.lastPos = pos
	s.lastRot = rot
}

// stubCommitter stores placements in memory
type stubCommitter struct {
	placed    map[core.Handle]placedObj
	failPlace error
}

type placedObj struct {
	desc *core.Descriptor
	pos  vmath.Vec3
	rot  int
}

func newStubCommitter() *stubCommitter {
	return &stubCommitter{placed: make(map[core.Handle]placedObj)}
}

func (s *stubCommitter) Place(desc *core.Descriptor, pos vmath.Vec3, rot int) (core.Handle, error) {
	if s.failPlace != nil {
		return core.NilHandle, s.failPlace
	}
	h := core.NewHandle()
	s.placed[h] = placedObj{desc: desc, pos: pos, rot: rot}
	return h, nil
}

func (s *stubCommitter) Remove(h core.Handle) error {
	if _, ok := s.placed[h]; !ok {
		return errors.New("unknown handle")
	}
	delete(s.placed, h)
	return nil
}

func (s *stubCommitter) Lookup(h core.Handle) (*core.Descriptor, vmath.Vec3, int, bool) {
	obj, ok := s.placed[h]
	if !ok {
		return nil, vmath.Vec3{}, 0, false
	}
	return obj.desc, obj.pos, obj.rot, true
}

type harness struct {
	machine   *Machine
	model     *grid.Model
	collider  *stubCollision
	committer *stubCommitter
	feedback  *stubFeedback
	projector *stubProjector
	events    *event.Queue
}

func newHarness(withFloor bool) *harness {
	model := grid.NewModel(0.1, 10, 5)
	if withFloor {
		model.Resize(testFloor(), 1.0)
	}

	h := &harness{
		model:     model,
		collider:  &stubCollision{},
		committer: newStubCommitter(),
		feedback:  &stubFeedback{},
		projector: &stubProjector{ok: true},
		events:    event.NewQueue(),
	}

	h.machine = NewMachine(Deps{
		Grid:      model,
		Aligner:   grid.NewAligner(model, 0.3),
		Validator: NewValidator(h.collider, core.DefaultExclusion),
		Projector: h.projector,
		Feedback:  h.feedback,
		Committer: h.committer,
		Events:    h.events,
	}, 0)

	return h
}

func (h *harness) eventTypes() []event.Type {
	var types []event.Type
	for _, ev := range h.events.Consume() {
		types = append(types, ev.Type)
	}
	return types
}

func TestStartPlacementNoFloor(t *testing.T) {
	h := newHarness(false)

	if err := h.machine.StartPlacement(testDescriptor()); !errors.Is(err, ErrNoFloor) {
		t.Errorf("Expected ErrNoFloor, got %v", err)
	}
	if h.machine.State() != StateIdle {
		t.Errorf("Expected state to stay idle")
	}
}

func TestStartPlacementMissingFootprint(t *testing.T) {
	h := newHarness(true)

	if err := h.machine.StartPlacement(nil); !errors.Is(err, ErrNilFootprint) {
		t.Errorf("Expected ErrNilFootprint for nil descriptor, got %v", err)
	}

	broken := &core.Descriptor{ID: "broken", Half: vmath.Vec3{X: -1}}
	if err := h.machine.StartPlacement(broken); !errors.Is(err, ErrNilFootprint) {
		t.Errorf("Expected ErrNilFootprint for negative extent, got %v", err)
	}
	if h.machine.Candidate() != nil {
		t.Errorf("Expected no candidate after refused start")
	}
}

func TestStartPlacementEntersPreview(t *testing.T) {
	h := newHarness(true)

	if err := h.machine.StartPlacement(testDescriptor()); err != nil {
		t.Fatalf("StartPlacement failed: %v", err)
	}
	if h.machine.State() != StatePreviewing {
		t.Errorf("Expected previewing state")
	}
	if h.machine.Candidate() == nil {
		t.Fatalf("Expected a candidate while previewing")
	}
	// Seeded at the floor center
	if h.machine.Candidate().Position() != testFloor().Center {
		t.Errorf("Expected candidate seeded at floor center, got %v",
			h.machine.Candidate().Position())
	}

	types := h.eventTypes()
	if len(types) != 1 || types[0] != event.TypePlacementStarted {
		t.Errorf("Expected a single started event, got %v", types)
	}
}

func TestStartPlacementCancelsExistingPreview(t *testing.T) {
	h := newHarness(true)

	first := testDescriptor()
	second := &core.Descriptor{ID: "lamp", Half: vmath.Vec3{X: 0.2, Y: 0.8, Z: 0.2}}

	h.machine.StartPlacement(first)
	h.machine.StartPlacement(second)

	if h.machine.State() != StatePreviewing {
		t.Errorf("Expected previewing state")
	}
	if got := h.machine.Candidate().Descriptor().ID; got != "lamp" {
		t.Errorf("Expected candidate for second component, got %q", got)
	}

	types := h.eventTypes()
	want := []event.Type{
		event.TypePlacementStarted,
		event.TypePlacementCancelled,
		event.TypePlacementStarted,
	}
	if len(types) != len(want) {
		t.Fatalf("Expected %d events, got %v", len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("Event %d: expected %v, got %v", i, want[i], types[i])
		}
	}
}

// Within one tick the order is align, validate, feedback: the verdict
// and the feedback transform must refer to the snapped position
func TestTickAlignsBeforeValidation(t *testing.T) {
	h := newHarness(true)
	h.machine.StartPlacement(testDescriptor())

	h.projector.world = vmath.Vec3{X: 4.6, Z: -3.2}
	h.machine.Tick(0.016, InputSnapshot{PointerX: 1, PointerY: 1, HasPointer: true})

	want := vmath.Vec3{X: 5, Z: -3}
	if got := h.machine.Candidate().Position(); got != want {
		t.Errorf("Expected snapped position %v, got %v", want, got)
	}
	if h.feedback.lastPos != want {
		t.Errorf("Expected feedback transform %v, got %v", want, h.feedback.lastPos)
	}
	// (5,-3) with a 0.5 half-extent overhangs floorMax.x
	if h.feedback.lastValid {
		t.Errorf("Expected invalid verdict at the floor edge")
	}
	if got := h.machine.LastResult().Reason; got != ReasonOutOfBounds {
		t.Errorf("Expected out of bounds, got %s", got)
	}
}

func TestTickWithoutPointerStillValidates(t *testing.T) {
	h := newHarness(true)
	h.machine.StartPlacement(testDescriptor())

	before := h.feedback.colorCalls
	h.machine.Tick(0.016, InputSnapshot{})
	if h.feedback.colorCalls != before+1 {
		t.Errorf("Expected validation feedback without a pointer sample")
	}
}

func TestRotateRevalidatesImmediately(t *testing.T) {
	h := newHarness(true)
	h.machine.StartPlacement(&core.Descriptor{ID: "bed", Half: vmath.Vec3{X: 0.8, Y: 0.3, Z: 2.0}})

	// Move near the +z edge where the long axis overhangs
	h.projector.world = vmath.Vec3{X: 0, Z: 3.9}
	h.machine.Tick(0.016, InputSnapshot{HasPointer: true})
	if h.machine.LastResult().Valid {
		t.Fatalf("Expected overhang before rotation")
	}

	// After rotation the long axis lies along x and the pose fits
	h.machine.Rotate()
	if !h.machine.LastResult().Valid {
		t.Errorf("Expected valid verdict immediately after rotation, got %s",
			h.machine.LastResult().Reason)
	}
}

func TestConfirmWhileInvalidIsNoop(t *testing.T) {
	h := newHarness(true)
	h.machine.StartPlacement(testDescriptor())

	h.projector.world = vmath.Vec3{X: 4.7, Z: 4.7}
	h.machine.Tick(0.016, InputSnapshot{HasPointer: true})

	handle, err := h.machine.Confirm(false)
	if err != nil {
		t.Errorf("Expected silent no-op, got error %v", err)
	}
	if !handle.IsNil() {
		t.Errorf("Expected nil handle")
	}
	if h.machine.State() != StatePreviewing {
		t.Errorf("Expected to stay previewing")
	}
	if len(h.committer.placed) != 0 {
		t.Errorf("Expected nothing placed")
	}
}

func TestConfirmPlacesAndReturnsToIdle(t *testing.T) {
	h := newHarness(true)
	h.machine.StartPlacement(testDescriptor())

	h.projector.world = vmath.Vec3{X: 2, Z: 2}
	h.machine.Tick(0.016, InputSnapshot{HasPointer: true})

	handle, err := h.machine.Confirm(false)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if handle.IsNil() {
		t.Fatalf("Expected a placement handle")
	}
	if h.machine.State() != StateIdle || h.machine.Candidate() != nil {
		t.Errorf("Expected idle state with no candidate")
	}

	obj, ok := h.committer.placed[handle]
	if !ok {
		t.Fatalf("Expected committed object")
	}
	if obj.pos != (vmath.Vec3{X: 2, Z: 2}) {
		t.Errorf("Expected committed position (2,_,2), got %v", obj.pos)
	}
}

func TestConfirmContinuousStaysPreviewing(t *testing.T) {
	h := newHarness(true)
	h.machine.StartPlacement(testDescriptor())

	h.projector.world = vmath.Vec3{X: 2, Z: 2}
	h.machine.Tick(0.016, InputSnapshot{HasPointer: true})

	handle, err := h.machine.Confirm(true)
	if err != nil || handle.IsNil() {
		t.Fatalf("Confirm failed: %v", err)
	}
	if h.machine.State() != StatePreviewing {
		t.Errorf("Expected to remain previewing in continuous mode")
	}
	if h.machine.Candidate() == nil {
		t.Fatalf("Expected a fresh candidate")
	}
	if got := h.machine.Candidate().Descriptor().ID; got != "crate" {
		t.Errorf("Expected same component, got %q", got)
	}
}

func TestConfirmCommitFailureKeepsPreview(t *testing.T) {
	h := newHarness(true)
	h.machine.StartPlacement(testDescriptor())

	h.projector.world = vmath.Vec3{X: 2, Z: 2}
	h.machine.Tick(0.016, InputSnapshot{HasPointer: true})

	h.committer.failPlace = errors.New("scene full")
	handle, err := h.machine.Confirm(false)
	if err == nil {
		t.Errorf("Expected commit error to propagate")
	}
	if !handle.IsNil() {
		t.Errorf("Expected nil handle on failure")
	}
	if h.machine.State() != StatePreviewing {
		t.Errorf("Expected preview to survive a commit failure")
	}
}

func TestCancelIsSynchronous(t *testing.T) {
	h := newHarness(true)
	h.machine.StartPlacement(testDescriptor())

	h.machine.Cancel()
	if h.machine.State() != StateIdle {
		t.Errorf("Expected idle state immediately after cancel")
	}
	if h.machine.Candidate() != nil {
		t.Errorf("Expected candidate destroyed before Cancel returns")
	}

	// Cancel from idle is a no-op
	h.machine.Cancel()
	if h.machine.State() != StateIdle {
		t.Errorf("Expected idle state")
	}
}

func TestBeginEditRemovesAndRestarts(t *testing.T) {
	h := newHarness(true)

	desc := testDescriptor()
	handle, _ := h.committer.Place(desc, vmath.Vec3{X: 1, Z: -2}, 90)

	if err := h.machine.BeginEdit(handle); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}

	if _, still := h.committer.placed[handle]; still {
		t.Errorf("Expected object removed from the scene")
	}
	if h.machine.State() != StatePreviewing {
		t.Fatalf("Expected previewing state")
	}

	c := h.machine.Candidate()
	if c.Descriptor().ID != desc.ID {
		t.Errorf("Expected original descriptor, got %q", c.Descriptor().ID)
	}
	if c.Position() != (vmath.Vec3{X: 1, Z: -2}) || c.Rotation() != 90 {
		t.Errorf("Expected pose seeded from removed object, got %v rot %d",
			c.Position(), c.Rotation())
	}
}

func TestBeginEditUnknownHandle(t *testing.T) {
	h := newHarness(true)

	if err := h.machine.BeginEdit(core.NewHandle()); !errors.Is(err, ErrUnknownObject) {
		t.Errorf("Expected ErrUnknownObject, got %v", err)
	}
	if h.machine.State() != StateIdle {
		t.Errorf("Expected state to stay idle")
	}
}
