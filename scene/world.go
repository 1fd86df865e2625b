package scene

import (
	"fmt"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/vmath"
)

// Object is one placed component instance
type Object struct {
	Handle   core.Handle
	Desc     *core.Descriptor
	Pos      vmath.Vec3
	Rotation int
	Layer    core.LayerMask
	Bounds   vmath.AABB // rotation-resolved, unexpanded
}

// World is the reference placed-object store
// It implements both placement.CommitService and placement.CollisionQuery
// so the core can be driven without a physics engine. Single-threaded
// like everything else in the tick loop
type World struct {
	floor   core.Floor
	objects map[core.Handle]*Object
	index   *bucketGrid
}

// NewWorld creates an empty scene over floor
// bucket is the spatial index granularity; a few object widths is fine
func NewWorld(floor core.Floor, bucket float64) *World {
	return &World{
		floor:   floor,
		objects: make(map[core.Handle]*Object),
		index:   newBucketGrid(floor, bucket),
	}
}

// Reset replaces the floor and clears all placed objects
// Floor replacement invalidates the layout; object lifecycles beyond
// this session belong to the excluded asset layer
func (w *World) Reset(floor core.Floor, bucket float64) {
	w.floor = floor
	w.objects = make(map[core.Handle]*Object)
	w.index = newBucketGrid(floor, bucket)
}

// Place instantiates desc at pos/rotation and returns a fresh handle
func (w *World) Place(desc *core.Descriptor, pos vmath.Vec3, rotation int) (core.Handle, error) {
	if !desc.HasFootprint() {
		return core.NilHandle, fmt.Errorf("place: descriptor %q has no footprint", descID(desc))
	}

	obj := &Object{
		Handle:   core.NewHandle(),
		Desc:     desc,
		Pos:      pos,
		Rotation: rotation,
		Layer:    desc.Layer(),
		Bounds:   ObjectBounds(desc, pos, rotation),
	}

	w.objects[obj.Handle] = obj
	w.index.insert(obj.Handle, obj.Bounds)
	return obj.Handle, nil
}

// Remove destroys a placed instance
func (w *World) Remove(h core.Handle) error {
	obj, ok := w.objects[h]
	if !ok {
		return fmt.Errorf("remove: unknown handle %s", h)
	}
	w.index.remove(h, obj.Bounds)
	delete(w.objects, h)
	return nil
}

// Lookup returns the descriptor and pose of a placed instance
func (w *World) Lookup(h core.Handle) (*core.Descriptor, vmath.Vec3, int, bool) {
	obj, ok := w.objects[h]
	if !ok {
		return nil, vmath.Vec3{}, 0, false
	}
	return obj.Desc, obj.Pos, obj.Rotation, true
}

// Overlap returns handles of objects whose footprint overlaps box,
// skipping objects on excluded layers. rotation is accepted for
// interface fidelity; the box is already world-aligned for the
// 90-degree rotations this tool produces
func (w *World) Overlap(box vmath.AABB, rotation int, exclude core.LayerMask) ([]core.Handle, error) {
	var hits []core.Handle
	w.index.visit(box, func(h core.Handle) {
		obj := w.objects[h]
		if obj == nil {
			return
		}
		if exclude.Has(obj.Layer) {
			return
		}
		if box.IntersectsXZ(obj.Bounds) {
			hits = append(hits, h)
		}
	})
	return hits, nil
}

// At returns the handle of an object whose footprint contains p, or the
// nil handle. Used by hosts for pick-to-edit
func (w *World) At(p vmath.Vec3) core.Handle {
	probe := vmath.AABB{Center: p}
	var found core.Handle
	w.index.visit(probe, func(h core.Handle) {
		if !found.IsNil() {
			return
		}
		if obj := w.objects[h]; obj != nil && obj.Bounds.ContainsXZ(p) {
			found = h
		}
	})
	return found
}

// Len returns the number of placed objects
func (w *World) Len() int {
	return len(w.objects)
}

// ForEach visits every placed object in unspecified order
func (w *World) ForEach(fn func(*Object)) {
	for _, obj := range w.objects {
		fn(obj)
	}
}

// ObjectBounds derives a placed object's bounding box the same way the
// placement candidate does: resting on the floor plane, X/Z half-extents
// swapped at 90/270 degrees, no margin expansion
func ObjectBounds(desc *core.Descriptor, pos vmath.Vec3, rotation int) vmath.AABB {
	box := vmath.AABB{
		Center: vmath.Vec3{X: pos.X, Y: pos.Y + desc.Half.Y, Z: pos.Z},
		Half:   desc.Half,
	}
	rotation = ((rotation % 360) + 360) % 360
	if rotation == 90 || rotation == 270 {
		box = box.SwapXZ()
	}
	return box
}

func descID(d *core.Descriptor) string {
	if d == nil {
		return ""
	}
	return d.ID
}
