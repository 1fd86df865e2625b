package core

// LayerMask is a bit set of collision layers
// Overlap queries exclude layers present in the mask
type LayerMask uint32

const (
	// LayerFloor is the placement surface itself, always passable
	LayerFloor LayerMask = 1 << iota
	// LayerObject is the default layer for placed components
	LayerObject
	// LayerPassable marks components that never block placement (rugs, decals)
	LayerPassable
)

// DefaultExclusion is the layer set ignored during placement validation
const DefaultExclusion = LayerFloor | LayerPassable

// Has reports whether all bits of l are set in m
func (m LayerMask) Has(l LayerMask) bool {
	return m&l == l
}

// With returns m with the bits of l added
func (m LayerMask) With(l LayerMask) LayerMask {
	return m | l
}

// Without returns m with the bits of l removed
func (m LayerMask) Without(l LayerMask) LayerMask {
	return m &^ l
}
