package scene

import (
	"github.com/lixenwraith/floorplan/core"
)

// Node is an abstract visual scene node with children
// Hosts adapt their scene-graph type to this interface; the core never
// depends on a concrete graph
type Node interface {
	Children() []Node
}

// LayerSetter is implemented by nodes whose collision layer can change
type LayerSetter interface {
	SetLayer(core.LayerMask)
}

// Walk visits n and its descendants preorder
// Returning false from fn prunes that subtree
func Walk(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children() {
		Walk(child, fn)
	}
}

// SetLayerRecursive assigns layer to every node in the subtree that
// supports it. Used when toggling a subtree passable (preview ghosting)
func SetLayerRecursive(n Node, layer core.LayerMask) {
	Walk(n, func(node Node) bool {
		if ls, ok := node.(LayerSetter); ok {
			ls.SetLayer(layer)
		}
		return true
	})
}
