// Package app drives the frame loop: input events, scheduled systems,
// the layout pass and the renderer, against one shared Frame.
package app

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"weft/config"
	"weft/core"
	"weft/layout"
	"weft/render"
	"weft/scene"
	"weft/vmath"
)

// App owns the screen, the frame and the loop that ties them together.
type App struct {
	cfg       config.Config
	screen    tcell.Screen
	frame     *Frame
	scheduler *Scheduler
	renderer  *render.Renderer
	root      core.Entity
	logClose  func()

	themeOverride *render.Theme
	logOverride   *zap.Logger
	keyHandler    func(ev *tcell.EventKey) bool
}

// Option configures an App before New builds its frame.
type Option func(*App)

// WithConfig supplies a loaded configuration.
func WithConfig(cfg config.Config) Option {
	return func(a *App) { a.cfg = cfg }
}

// WithScreen injects a screen instead of allocating a terminal one.
// Run still calls Init and Fini on it.
func WithScreen(screen tcell.Screen) Option {
	return func(a *App) { a.screen = screen }
}

// WithTheme overrides the configured theme.
func WithTheme(theme render.Theme) Option {
	return func(a *App) { a.themeOverride = &theme }
}

// WithLogger overrides the configured logger. The caller keeps
// ownership of its sync and close.
func WithLogger(log *zap.Logger) Option {
	return func(a *App) { a.logOverride = log }
}

// WithKeyHandler installs a hook for key events. The hook runs before
// the default quit bindings; returning true marks the key consumed so
// the defaults are skipped.
func WithKeyHandler(fn func(ev *tcell.EventKey) bool) Option {
	return func(a *App) { a.keyHandler = fn }
}

// New builds an app from options. The frame is usable immediately, so
// systems and deferred tasks can be registered before Run.
func New(opts ...Option) (*App, error) {
	a := &App{
		cfg:       config.Default(),
		scheduler: NewScheduler(),
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	log := a.logOverride
	logClose := func() {}
	if log == nil {
		var err error
		log, logClose, err = a.cfg.Log.NewLogger()
		if err != nil {
			return nil, fmt.Errorf("app: %w", err)
		}
	}

	theme := render.DefaultTheme()
	if a.cfg.Render.Theme == "light" {
		theme = render.LightTheme()
	}
	if a.themeOverride != nil {
		theme = *a.themeOverride
	}

	a.frame = NewFrame(theme, log)
	a.logClose = logClose
	return a, nil
}

// Frame returns the app's frame.
func (a *App) Frame() *Frame {
	return a.frame
}

// Scheduler returns the app's scheduler for system registration.
func (a *App) Scheduler() *Scheduler {
	return a.scheduler
}

// Run mounts root and blocks in the frame loop until the user quits
// with Escape, Ctrl-C or q.
func (a *App) Run(root Widget) error {
	defer a.logClose()

	screen := a.screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("app: create screen: %w", err)
		}
		a.screen = screen
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("app: init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before the stack trace prints, or it lands
	// on the alternate screen and vanishes.
	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\nweft crashed: %v\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	core.SetCrashHandler(crash)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	a.mount(root)
	a.resize(screen.Size())
	a.frame.Log.Info("frame loop started",
		zap.Int("rate", a.cfg.Frame.Rate),
		zap.Float64("width", a.frame.Size.X),
		zap.Float64("height", a.frame.Size.Y))

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	interval := time.Second / time.Duration(a.cfg.Frame.Rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				a.frame.Log.Info("quit requested")
				return nil
			}

		case <-ticker.C:
			a.step(interval)
		}
	}
}

// mount installs the root widget into the frame.
func (a *App) mount(root Widget) {
	a.root = root.Mount(a.frame)
	a.renderer = render.NewRenderer(0, 0)
}

// handleEvent reacts to one input event. A false return exits the loop.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize(ev.Size())
		a.screen.Sync()
		a.step(0)

	case *tcell.EventKey:
		if a.keyHandler != nil && a.keyHandler(ev) {
			return true
		}
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		}
	}
	return true
}

// resize updates the frame size and render surface.
func (a *App) resize(width, height int) {
	a.frame.Size = vmath.Vec2{X: float64(width), Y: float64(height)}
	if a.renderer != nil {
		a.renderer.Resize(width, height)
	}
	a.frame.Log.Debug("resize", zap.Int("width", width), zap.Int("height", height))
}

// step advances one tick: systems, then layout, then a frame draw.
func (a *App) step(dt time.Duration) {
	a.scheduler.Tick(a.frame, dt)

	g := a.frame.Graph
	size := a.frame.Size
	block := layout.UpdateSubtree(g, a.root, vmath.Rect{Max: size}, layout.Limits{Max: size})
	scene.SetIfChanged(g.Rects, a.root, block.Rect)
	scene.SetIfChanged(g.Positions, a.root, vmath.Vec2{})

	theme := a.frame.Theme.Value()
	if a.renderer.Frame(g, a.root, theme.Style(), a.screen) {
		a.screen.Show()
	}
}
