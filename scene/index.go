package scene

import (
	"math"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/vmath"
)

// bucketGrid is a dense 2D spatial index over the floor extent
// Objects are inserted into every bucket their footprint covers, so an
// overlap query only touches the buckets under the query box instead of
// scanning the whole scene
type bucketGrid struct {
	origin vmath.Vec3
	bucket float64
	cols   int
	rows   int
	cells  [][]core.Handle // 1D: index = row*cols + col
}

func newBucketGrid(floor core.Floor, bucket float64) *bucketGrid {
	if bucket <= 0 {
		bucket = 1
	}
	cols := int(math.Ceil(floor.Width/bucket)) + 1
	rows := int(math.Ceil(floor.Length/bucket)) + 1
	return &bucketGrid{
		origin: floor.Min,
		bucket: bucket,
		cols:   cols,
		rows:   rows,
		cells:  make([][]core.Handle, cols*rows),
	}
}

// bucketRange returns the clamped bucket span covered by box
// Boxes partially or fully off the floor clamp to the border buckets so
// nothing is ever lost from the index
func (g *bucketGrid) bucketRange(box vmath.AABB) (c0, r0, c1, r1 int) {
	lo := box.Min()
	hi := box.Max()

	c0 = clampIdx(int(math.Floor((lo.X-g.origin.X)/g.bucket)), g.cols)
	c1 = clampIdx(int(math.Floor((hi.X-g.origin.X)/g.bucket)), g.cols)
	r0 = clampIdx(int(math.Floor((lo.Z-g.origin.Z)/g.bucket)), g.rows)
	r1 = clampIdx(int(math.Floor((hi.Z-g.origin.Z)/g.bucket)), g.rows)
	return
}

func clampIdx(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// insert adds h to every bucket covered by box
func (g *bucketGrid) insert(h core.Handle, box vmath.AABB) {
	c0, r0, c1, r1 := g.bucketRange(box)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			idx := r*g.cols + c
			g.cells[idx] = append(g.cells[idx], h)
		}
	}
}

// remove deletes h from every bucket covered by box. Swap-remove keeps
// buckets densely packed
func (g *bucketGrid) remove(h core.Handle, box vmath.AABB) {
	c0, r0, c1, r1 := g.bucketRange(box)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			idx := r*g.cols + c
			cell := g.cells[idx]
			for i, have := range cell {
				if have == h {
					last := len(cell) - 1
					cell[i] = cell[last]
					g.cells[idx] = cell[:last]
					break
				}
			}
		}
	}
}

// visit calls fn once per distinct handle whose bucket span intersects
// box. Callers still need a precise bounds test; buckets are coarse
func (g *bucketGrid) visit(box vmath.AABB, fn func(core.Handle)) {
	c0, r0, c1, r1 := g.bucketRange(box)

	var seen map[core.Handle]struct{}
	multi := (c1 > c0) || (r1 > r0)
	if multi {
		seen = make(map[core.Handle]struct{})
	}

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			for _, h := range g.cells[r*g.cols+c] {
				if multi {
					if _, dup := seen[h]; dup {
						continue
					}
					seen[h] = struct{}{}
				}
				fn(h)
			}
		}
	}
}
