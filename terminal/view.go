package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/grid"
	"github.com/lixenwraith/floorplan/placement"
	"github.com/lixenwraith/floorplan/scene"
	"github.com/lixenwraith/floorplan/vmath"
)

// Terminal cells are roughly twice as tall as wide; two columns per
// world unit keeps the floor visually square
const (
	colsPerUnit = 2.0
	rowsPerUnit = 1.0
)

// View draws the top-down floor and adapts between screen and world
// coordinates. Implements placement.PointerProjector and
// placement.FeedbackSink
type View struct {
	screen tcell.Screen
	model  *grid.Model
	world  *scene.World

	// Screen position of the floor's Min corner
	offX, offY int

	previewPos   vmath.Vec3
	previewRot   int
	previewValid bool
	hasPreview   bool

	status string
}

var (
	_ placement.PointerProjector = (*View)(nil)
	_ placement.FeedbackSink     = (*View)(nil)
)

// NewView creates a view over screen
func NewView(screen tcell.Screen, model *grid.Model, world *scene.World) *View {
	v := &View{screen: screen, model: model, world: world}
	v.Layout()
	return v
}

// Layout recenters the floor viewport after a resize or floor change
func (v *View) Layout() {
	if !v.model.HasFloor() {
		return
	}
	f := v.model.Floor()
	sw, sh := v.screen.Size()
	fw := int(math.Round(f.Width * colsPerUnit))
	fh := int(math.Round(f.Length * rowsPerUnit))
	v.offX = (sw - fw) / 2
	v.offY = (sh - fh) / 2
	if v.offY < 2 {
		v.offY = 2 // keep the status line clear
	}
}

// worldToScreen maps a world point to terminal coordinates
func (v *View) worldToScreen(p vmath.Vec3) (int, int) {
	f := v.model.Floor()
	x := v.offX + int(math.Round((p.X-f.Min.X)*colsPerUnit))
	y := v.offY + int(math.Round((p.Z-f.Min.Z)*rowsPerUnit))
	return x, y
}

// ProjectPointer maps a screen point onto the floor plane
// Points beyond one cell outside the floor count as "no hit"
func (v *View) ProjectPointer(screenX, screenY int) (vmath.Vec3, bool) {
	if !v.model.HasFloor() {
		return vmath.Vec3{}, false
	}
	f := v.model.Floor()
	p := vmath.Vec3{
		X: f.Min.X + float64(screenX-v.offX)/colsPerUnit,
		Z: f.Min.Z + float64(screenY-v.offY)/rowsPerUnit,
	}

	slack := v.model.CellSize()
	if p.X < f.Min.X-slack || p.X > f.Max.X+slack ||
		p.Z < f.Min.Z-slack || p.Z > f.Max.Z+slack {
		return vmath.Vec3{}, false
	}
	return p, true
}

// SetPreviewColor receives the per-frame validity verdict
func (v *View) SetPreviewColor(valid bool) {
	v.previewValid = valid
	v.hasPreview = true
}

// SetPreviewTransform receives the per-frame preview pose
func (v *View) SetPreviewTransform(pos vmath.Vec3, rotation int) {
	v.previewPos = pos
	v.previewRot = rotation
	v.hasPreview = true
}

// ClearPreview hides the preview after confirm/cancel
func (v *View) ClearPreview() {
	v.hasPreview = false
}

// SetStatus replaces the status line text
func (v *View) SetStatus(s string) {
	v.status = s
}

// Draw renders one frame: floor, gridlines, placed objects, preview,
// and the status/help lines
func (v *View) Draw(machine *placement.Machine, snapOn bool, selectedName string) {
	v.screen.Clear()

	if v.model.HasFloor() {
		v.drawFloor()
		if v.model.Visible() {
			v.drawGrid()
		}
		v.drawObjects()
		if v.hasPreview && machine.State() == placement.StatePreviewing {
			v.drawPreview(machine.Candidate())
		}
	}

	v.drawChrome(machine, snapOn, selectedName)
	v.screen.Show()
}

func (v *View) drawFloor() {
	f := v.model.Floor()
	x0, y0 := v.worldToScreen(f.Min)
	x1, y1 := v.worldToScreen(f.Max)

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v.screen.SetContent(x, y, '·', nil, style)
		}
	}
}

func (v *View) drawGrid() {
	f := v.model.Floor()
	cell := v.model.CellSize()
	major := v.model.MajorEvery()

	minorStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	majorStyle := tcell.StyleDefault.Foreground(tcell.ColorTeal)

	x0, y0 := v.worldToScreen(f.Min)
	x1, y1 := v.worldToScreen(f.Max)

	// Vertical lines
	for k := 0; ; k++ {
		wx := f.Min.X + float64(k)*cell
		if wx > f.Max.X+1e-9 {
			break
		}
		sx, _ := v.worldToScreen(vmath.Vec3{X: wx, Z: f.Min.Z})
		style := minorStyle
		if k%major == 0 {
			style = majorStyle
		}
		for y := y0; y <= y1; y++ {
			v.screen.SetContent(sx, y, '|', nil, style)
		}
	}

	// Horizontal lines
	for k := 0; ; k++ {
		wz := f.Min.Z + float64(k)*cell
		if wz > f.Max.Z+1e-9 {
			break
		}
		_, sy := v.worldToScreen(vmath.Vec3{X: f.Min.X, Z: wz})
		style := minorStyle
		if k%major == 0 {
			style = majorStyle
		}
		for x := x0; x <= x1; x++ {
			ch, _, _, _ := v.screen.GetContent(x, sy)
			if ch == '|' {
				v.screen.SetContent(x, sy, '+', nil, style)
			} else {
				v.screen.SetContent(x, sy, '-', nil, style)
			}
		}
	}
}

func (v *View) drawObjects() {
	v.world.ForEach(func(obj *scene.Object) {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		if obj.Layer.Has(core.LayerPassable) {
			style = tcell.StyleDefault.Foreground(tcell.ColorOlive)
		}
		v.fillBox(obj.Bounds, obj.Desc.Glyph, style)
	})
}

func (v *View) drawPreview(c *placement.Candidate) {
	if c == nil {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Reverse(true)
	if !v.previewValid {
		style = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	}
	v.fillBox(c.Bounds(), c.Descriptor().Glyph, style)
}

// fillBox paints a footprint rectangle. Zero-extent boxes still paint
// their single cell
func (v *View) fillBox(box vmath.AABB, glyph rune, style tcell.Style) {
	x0, y0 := v.worldToScreen(box.Min())
	x1, y1 := v.worldToScreen(box.Max())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (v *View) drawChrome(machine *placement.Machine, snapOn bool, selectedName string) {
	sw, sh := v.screen.Size()

	state := machine.State().String()
	verdict := ""
	if machine.State() == placement.StatePreviewing {
		res := machine.LastResult()
		if res.Valid {
			verdict = " [ok]"
		} else {
			verdict = fmt.Sprintf(" [%s]", res.Reason)
		}
	}

	snap := "snap:on"
	if !snapOn {
		snap = "snap:off"
	}

	name := ""
	if selectedName != "" {
		name = "  " + selectedName
	}
	top := fmt.Sprintf(" %s%s%s  %s  cell:%.1f  objects:%d  %s",
		state, verdict, name, snap, v.model.CellSize(), v.world.Len(), v.status)
	v.putLine(0, top, tcell.StyleDefault.Reverse(true), sw)

	help := " 1-9:component  r:rotate  click/enter:place  c:continuous  e:edit  esc:cancel  +/-:cell  g:grid  s:snap  q:quit"
	v.putLine(sh-1, help, tcell.StyleDefault.Foreground(tcell.ColorGray), sw)
}

func (v *View) putLine(y int, text string, style tcell.Style, width int) {
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, style)
	}
}
