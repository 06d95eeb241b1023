package viz

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridpath/audio"
	"github.com/lixenwraith/gridpath/maze"
	"github.com/lixenwraith/gridpath/parameter"
)

// resizeStep is the grid size change per key press
const resizeStep = 5

// App runs the visualizer event loop
type App struct {
	screen tcell.Screen
	model  *Model
	player audio.Player
	layout Layout

	mouseDown bool
}

// NewApp binds a model to an initialized screen
func NewApp(screen tcell.Screen, model *Model, player audio.Player) *App {
	if player == nil {
		player = audio.Nop{}
	}
	return &App{
		screen: screen,
		model:  model,
		player: player,
	}
}

// Model returns the app's grid model
func (a *App) Model() *Model {
	return a.model
}

// Run draws and processes events until the user quits
func (a *App) Run() error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	delay := tickInterval(a.model.Delay)
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		Draw(a.screen, a.model, a.layout)

		select {
		case ev := <-eventChan:
			if a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if a.model.Animating() {
				a.model.Tick()
			}
		}

		a.flushCues()

		if d := tickInterval(a.model.Delay); d != delay {
			delay = d
			ticker.Reset(delay)
		}
	}
}

// HandleEvent applies one terminal event, returning true when the app should exit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.HandleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

// HandleKey applies a key press, returning true on quit
func (a *App) HandleKey(key tcell.Key, r rune) bool {
	m := a.model

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		m.MoveCursor(-1, 0)
	case tcell.KeyDown:
		m.MoveCursor(1, 0)
	case tcell.KeyLeft:
		m.MoveCursor(0, -1)
	case tcell.KeyRight:
		m.MoveCursor(0, 1)
	case tcell.KeyEnter:
		a.activate()
	case tcell.KeyRune:
		return a.handleRune(r)
	}
	return false
}

func (a *App) handleRune(r rune) bool {
	m := a.model

	switch r {
	case 'q':
		return true
	case 'k':
		m.MoveCursor(-1, 0)
	case 'j':
		m.MoveCursor(1, 0)
	case 'h':
		m.MoveCursor(0, -1)
	case 'l':
		m.MoveCursor(0, 1)
	case ' ':
		a.activate()
	case '1':
		m.SetMode(ModePlaceStart)
	case '2':
		m.SetMode(ModePlaceEnd)
	case '3':
		m.SetMode(ModeAddBarriers)
	case '4':
		m.SetMode(ModeRemoveBarriers)
	case '5':
		m.SetMode(ModeMove)
	case 'f', 's':
		m.Run()
	case 'x':
		m.StopAnimation()
	case 'c':
		m.ClearPath()
	case 'R':
		m.Reset()
	case 'p', 'g':
		a.generate(maze.KindPrims)
	case 'r':
		a.generate(maze.KindRandom)
	case '[':
		m.AdjustDensity(-parameter.MazeDensityStep)
	case ']':
		m.AdjustDensity(parameter.MazeDensityStep)
	case '-':
		m.AdjustDelay(-parameter.AnimationDelayStep)
	case '+', '=':
		m.AdjustDelay(parameter.AnimationDelayStep)
	case 'a':
		m.ToggleAnimate()
	case '<':
		a.resize(m.Size() - resizeStep)
	case '>':
		a.resize(m.Size() + resizeStep)
	case 't':
		m.ShowStatus = !m.ShowStatus
	case 'L':
		m.ShowLegend = !m.ShowLegend
	}
	return false
}

// activate applies the current mode at the cursor. In Move mode the first press picks an
// endpoint up and the second drops it.
func (a *App) activate() {
	m := a.model
	if m.Mode() == ModeMove {
		if m.Dragging() {
			m.Release()
		} else {
			m.Press(m.Cursor)
		}
		return
	}
	m.Press(m.Cursor)
	m.Release()
}

// HandleMouse maps button state changes onto press, drag and release
func (a *App) HandleMouse(x, y int, buttons tcell.ButtonMask) {
	m := a.model
	p := a.layout.CellAt(x, y)
	down := buttons&tcell.Button1 != 0

	switch {
	case down && !a.mouseDown:
		a.mouseDown = true
		if p.InBounds(m.Size()) {
			m.Cursor = p
		}
		m.Press(p)
	case down && a.mouseDown:
		if p.InBounds(m.Size()) {
			m.Cursor = p
		}
		m.Drag(p)
	case !down && a.mouseDown:
		a.mouseDown = false
		m.Release()
	}
}

func (a *App) generate(kind maze.Kind) {
	if err := a.model.GenerateMaze(kind); err != nil {
		log.Printf("maze generation failed: %v", err)
	}
}

func (a *App) resize(size int) {
	if err := a.model.Resize(size); err != nil {
		log.Printf("resize rejected: %v", err)
		return
	}
	log.Printf("grid resized to %dx%d", size, size)
}

// flushCues forwards model cues to the audio player
func (a *App) flushCues() {
	for _, cue := range a.model.TakeCues() {
		switch cue {
		case CueFound:
			a.player.PlayFound()
		case CueNoPath:
			a.player.PlayNoPath()
		case CueMaze:
			a.player.PlayMaze()
		}
	}
}

func tickInterval(d time.Duration) time.Duration {
	if d < parameter.MinAnimationTick {
		return parameter.MinAnimationTick
	}
	return d
}
