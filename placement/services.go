package placement

import (
	"errors"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/vmath"
)

// Refusal errors for placement start. The state machine stays Idle when
// these are returned; nothing mid-session ever raises them
var (
	ErrNoFloor          = errors.New("placement: no floor created")
	ErrUnknownComponent = errors.New("placement: unknown component id")
	ErrNilFootprint     = errors.New("placement: component has no footprint")
	ErrUnknownObject    = errors.New("placement: unknown object handle")
)

// CollisionQuery is the external overlap test used for emptiness checks
// The box is already world-aligned for 90-degree rotations; rotation is
// passed through for backends that support true oriented boxes
// Implementations must be read-only: CanPlace runs every frame
type CollisionQuery interface {
	Overlap(box vmath.AABB, rotation int, exclude core.LayerMask) ([]core.Handle, error)
}

// PointerProjector maps a 2D screen point to a world point on the floor
// plane. ok is false when the pointer misses the floor
type PointerProjector interface {
	ProjectPointer(screenX, screenY int) (world vmath.Vec3, ok bool)
}

// FeedbackSink receives per-frame preview state for display
type FeedbackSink interface {
	SetPreviewColor(valid bool)
	SetPreviewTransform(pos vmath.Vec3, rotation int)
}

// CommitService owns placed object instances
type CommitService interface {
	// Place instantiates a component and returns its handle
	Place(desc *core.Descriptor, pos vmath.Vec3, rotation int) (core.Handle, error)
	// Remove destroys a placed instance
	Remove(h core.Handle) error
	// Lookup returns the descriptor and pose of a placed instance
	Lookup(h core.Handle) (desc *core.Descriptor, pos vmath.Vec3, rotation int, ok bool)
}

// CatalogProvider resolves a component id to its descriptor
type CatalogProvider interface {
	Resolve(id string) (*core.Descriptor, error)
}
