package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/placement"
	"github.com/lixenwraith/floorplan/vmath"
)

// entry is the on-disk form of one catalog component
// Extents are full sizes in world units; the descriptor stores halves
type entry struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Category string  `yaml:"category"`
	Width    float64 `yaml:"width"`  // X
	Height   float64 `yaml:"height"` // Y
	Depth    float64 `yaml:"depth"`  // Z
	Passable bool    `yaml:"passable"`
	Glyph    string  `yaml:"glyph"`
}

type catalogFile struct {
	Components []entry `yaml:"components"`
}

// Catalog resolves component ids to descriptors
// Implements placement.CatalogProvider
type Catalog struct {
	byID  map[string]*core.Descriptor
	order []string
}

var _ placement.CatalogProvider = (*Catalog)(nil)

// Load reads a YAML component catalog from path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog from YAML bytes
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(file.Components) == 0 {
		return nil, fmt.Errorf("catalog has no components")
	}

	c := &Catalog{byID: make(map[string]*core.Descriptor, len(file.Components))}
	for _, e := range file.Components {
		if e.ID == "" {
			return nil, fmt.Errorf("catalog entry %q missing id", e.Name)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog id %q", e.ID)
		}
		if e.Width < 0 || e.Height < 0 || e.Depth < 0 {
			return nil, fmt.Errorf("catalog entry %q has negative extent", e.ID)
		}

		glyph := '?'
		for _, r := range e.Glyph {
			glyph = r
			break
		}

		c.byID[e.ID] = &core.Descriptor{
			ID:       e.ID,
			Name:     e.Name,
			Category: e.Category,
			Half:     vmath.Vec3{X: e.Width / 2, Y: e.Height / 2, Z: e.Depth / 2},
			Passable: e.Passable,
			Glyph:    glyph,
		}
		c.order = append(c.order, e.ID)
	}
	return c, nil
}

// Builtin returns the default furniture set used when no catalog file
// is configured
func Builtin() *Catalog {
	c, err := Parse([]byte(builtinYAML))
	if err != nil {
		// The built-in catalog is compiled in; failing to parse it is a
		// programming error, not a runtime condition
		panic(fmt.Sprintf("builtin catalog: %v", err))
	}
	return c
}

// Resolve returns the descriptor for id
func (c *Catalog) Resolve(id string) (*core.Descriptor, error) {
	desc, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("no catalog entry %q", id)
	}
	return desc, nil
}

// IDs returns component ids in catalog order
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of components
func (c *Catalog) Len() int {
	return len(c.order)
}

const builtinYAML = `
components:
  - {id: table,  name: Table,      category: furniture, width: 2.0, height: 0.8, depth: 1.0, glyph: T}
  - {id: chair,  name: Chair,      category: furniture, width: 0.6, height: 1.0, depth: 0.6, glyph: c}
  - {id: sofa,   name: Sofa,       category: furniture, width: 2.2, height: 0.9, depth: 1.0, glyph: S}
  - {id: shelf,  name: Bookshelf,  category: storage,   width: 1.2, height: 2.0, depth: 0.4, glyph: B}
  - {id: bed,    name: Bed,        category: furniture, width: 1.6, height: 0.6, depth: 2.1, glyph: b}
  - {id: lamp,   name: Floor Lamp, category: lighting,  width: 0.4, height: 1.7, depth: 0.4, glyph: i}
  - {id: rug,    name: Rug,        category: decor,     width: 3.0, height: 0.02, depth: 2.0, glyph: r, passable: true}
  - {id: plant,  name: Plant Pot,  category: decor,     width: 0.5, height: 1.2, depth: 0.5, glyph: p}
  - {id: marker, name: Point Marker, category: debug,   width: 0.0, height: 0.0, depth: 0.0, glyph: x}
`
