package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/floorplan/audio"
	"github.com/lixenwraith/floorplan/catalog"
	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/core"
	"github.com/lixenwraith/floorplan/event"
	"github.com/lixenwraith/floorplan/placement"
	"github.com/lixenwraith/floorplan/scene"
	"github.com/lixenwraith/floorplan/terminal"
	"github.com/lixenwraith/floorplan/vmath"
)

// App owns the interactive session: screen, placement core, scene and
// frontend glue
type App struct {
	screen tcell.Screen
	cfg    *config.Config

	world  *scene.World
	ctrl   *placement.Controller
	events *event.Queue
	view   *terminal.View
	sound  *audio.Feedback

	cat *catalog.Catalog
	ids []string

	// Pointer state, fed into the per-tick input snapshot
	pointerX, pointerY int
	hasPointer         bool

	// Continuous placement modifier
	continuous bool
}

func NewApp(cfg *config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	cat := catalog.Builtin()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			screen.Fini()
			return nil, err
		}
	}

	floor := core.NewFloor(vmath.Vec3{}, cfg.Host.FloorWidth, cfg.Host.FloorLength)
	world := scene.NewWorld(floor, 4*cfg.Grid.CellSizeMax)
	events := event.NewQueue()

	a := &App{
		screen: screen,
		cfg:    cfg,
		world:  world,
		events: events,
		cat:    cat,
		ids:    cat.IDs(),
	}

	ctrlCfg := placement.ControllerConfig{
		CellSizeMin:   cfg.Grid.CellSizeMin,
		CellSizeMax:   cfg.Grid.CellSizeMax,
		MajorEvery:    cfg.Grid.MajorEvery,
		Debounce:      cfg.Placement.DebounceSeconds,
		Margin:        cfg.Placement.Margin,
		ExcludeLayers: core.DefaultExclusion,
	}

	// The view serves as both pointer projector and feedback sink, but
	// needs the grid model the controller creates; the indirection
	// breaks the construction cycle
	var view *terminal.View
	projector := projectorFunc(func(x, y int) (vmath.Vec3, bool) {
		return view.ProjectPointer(x, y)
	})
	feedback := feedbackFunc{
		color:     func(valid bool) { view.SetPreviewColor(valid) },
		transform: func(p vmath.Vec3, r int) { view.SetPreviewTransform(p, r) },
	}

	a.ctrl = placement.NewController(ctrlCfg, cat, world, projector, feedback, world, events)

	view = terminal.NewView(screen, a.ctrl.Grid(), world)
	a.view = view

	if err := a.ctrl.CreateOrResizeGrid(floor, cfg.Grid.CellSize); err != nil {
		screen.Fini()
		return nil, err
	}
	view.Layout()

	if cfg.Host.Audio {
		sound, err := audio.NewFeedback()
		if err != nil {
			// Non-fatal, the tool runs without sound
			log.Printf("audio init failed: %v", err)
		}
		a.sound = sound
	} else {
		a.sound = audio.Disabled()
	}

	return a, nil
}

// projectorFunc adapts a closure to placement.PointerProjector
type projectorFunc func(x, y int) (vmath.Vec3, bool)

func (f projectorFunc) ProjectPointer(x, y int) (vmath.Vec3, bool) { return f(x, y) }

// feedbackFunc adapts closures to placement.FeedbackSink
type feedbackFunc struct {
	color     func(bool)
	transform func(vmath.Vec3, int)
}

func (f feedbackFunc) SetPreviewColor(valid bool)                { f.color(valid) }
func (f feedbackFunc) SetPreviewTransform(p vmath.Vec3, rot int) { f.transform(p, rot) }

// handleInput processes one tcell event. Returns false to quit
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		a.pointerX, a.pointerY = ev.Position()
		a.hasPointer = true
		if ev.Buttons()&tcell.Button1 != 0 {
			a.confirm()
		}
		if ev.Buttons()&tcell.Button2 != 0 {
			a.ctrl.CancelPlacement()
			a.view.ClearPreview()
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			a.ctrl.CancelPlacement()
			a.view.ClearPreview()
		case tcell.KeyEnter:
			a.confirm()
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return a.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		a.view.Layout()
	}

	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'r':
		a.ctrl.RotatePreview()
	case 'c':
		a.continuous = !a.continuous
		if a.continuous {
			a.view.SetStatus("continuous placement on")
		} else {
			a.view.SetStatus("continuous placement off")
		}
	case 'g':
		a.ctrl.SetGridVisible(!a.ctrl.Grid().Visible())
	case 's':
		a.ctrl.SetSnapEnabled(!a.ctrl.SnapEnabled())
	case '+', '=':
		a.ctrl.SetGridCellSize(a.ctrl.Grid().CellSize() + 0.1)
	case '-':
		a.ctrl.SetGridCellSize(a.ctrl.Grid().CellSize() - 0.1)
	case 'e':
		a.editUnderPointer()
	default:
		if r >= '1' && r <= '9' {
			a.selectComponent(int(r - '1'))
		}
	}
	return true
}

func (a *App) selectComponent(idx int) {
	if idx >= len(a.ids) {
		return
	}
	if err := a.ctrl.StartPlacement(a.ids[idx]); err != nil {
		a.view.SetStatus(err.Error())
		a.sound.Reject()
		return
	}
	desc, _ := a.cat.Resolve(a.ids[idx])
	a.view.SetStatus("placing " + desc.Name)
}

func (a *App) confirm() {
	if a.ctrl.Machine().State() != placement.StatePreviewing {
		return
	}
	if !a.ctrl.Machine().LastResult().Valid {
		a.sound.Reject()
		return
	}
	if _, err := a.ctrl.ConfirmPlacement(a.continuous); err != nil {
		a.view.SetStatus(err.Error())
		a.sound.Reject()
		return
	}
	if !a.continuous {
		a.view.ClearPreview()
	}
}

func (a *App) editUnderPointer() {
	world, ok := a.view.ProjectPointer(a.pointerX, a.pointerY)
	if !ok {
		return
	}
	h := a.world.At(world)
	if h.IsNil() {
		a.view.SetStatus("nothing to edit here")
		return
	}
	if err := a.ctrl.EditPlacement(h); err != nil {
		a.view.SetStatus(err.Error())
	}
}

// drainEvents consumes placement events once per frame
func (a *App) drainEvents() {
	for _, ev := range a.events.Consume() {
		switch ev.Type {
		case event.TypePlacementConfirmed:
			p := ev.Payload.(*event.PlacementConfirmedPayload)
			log.Printf("placed %s at (%.2f, %.2f) rot %d",
				p.ComponentID, p.Position.X, p.Position.Z, p.Rotation)
			a.sound.Confirm()
		case event.TypeObjectRemoved:
			a.sound.Remove()
		case event.TypeGridResized:
			p := ev.Payload.(*event.GridResizedPayload)
			log.Printf("grid cell size %.2f", p.CellSize)
		}
	}
}

func (a *App) run() {
	tick := time.Second / time.Duration(a.cfg.Host.TickRate)
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	last := time.Now()
	selectedName := ""

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			a.ctrl.Tick(dt, placement.InputSnapshot{
				PointerX:   a.pointerX,
				PointerY:   a.pointerY,
				HasPointer: a.hasPointer,
			})
			a.drainEvents()

			if c := a.ctrl.Machine().Candidate(); c != nil {
				selectedName = c.Descriptor().Name
			}
			a.view.Draw(a.ctrl.Machine(), a.ctrl.SnapEnabled(), selectedName)
		}
	}
}

func (a *App) cleanup() {
	a.sound.Close()
	a.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// The terminal owns stdout; logs go to a file
	if cfg.Host.LogFile != "" {
		f, err := os.OpenFile(cfg.Host.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	app, err := NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer app.cleanup()

	app.run()
}
