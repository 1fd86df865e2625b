package placement

// InputSnapshot is the per-tick input sample consumed by Machine.Tick
// The host fills it from whatever input device it polls; the core never
// touches input devices directly
type InputSnapshot struct {
	// PointerX, PointerY are screen coordinates of the pointer
	PointerX, PointerY int
	// HasPointer is false when no pointer sample exists this tick
	// (the candidate keeps its last pose and is still re-validated)
	HasPointer bool
}
