package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/backdrop/config"
	"github.com/lixenwraith/backdrop/core"
	"github.com/lixenwraith/backdrop/effect"
	"github.com/lixenwraith/backdrop/engine"
	"github.com/lixenwraith/backdrop/event"
	"github.com/lixenwraith/backdrop/render"
	"github.com/lixenwraith/backdrop/scene"
	"github.com/lixenwraith/backdrop/status"
	"github.com/lixenwraith/backdrop/theme"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to TOML config")
	effectFlag = flag.String("effect", "", "Effect name, overrides config")
	tierFlag   = flag.String("tier", "", "Quality tier: low, medium, high, ultra")
	themeFlag  = flag.String("theme", "", "Starting palette name")
	seedFlag   = flag.Uint64("seed", 0, "Scene seed, 0 keeps the configured seed")
	fpsFlag    = flag.Int("fps", 0, "Frame rate, 0 keeps the configured rate")
	listFlag   = flag.Bool("list", false, "List effects and palettes, then exit")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
)

// metricTheme holds the active palette name for the HUD
const metricTheme = "theme.name"

// hudKeys is the HUD field order
var hudKeys = []string{
	engine.MetricEffect,
	engine.MetricTier,
	metricTheme,
	engine.MetricEntities,
	engine.MetricRecycled,
	engine.MetricFrames,
	engine.MetricFrameMs,
	engine.MetricFailures,
	engine.MetricPaused,
}

func main() {
	// Panic Recovery: the reset hook restores the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if *listFlag {
		fmt.Println("effects: ", strings.Join(effect.Names(), " "))
		fmt.Println("palettes:", strings.Join(theme.BuiltinNames(), " "))
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "backdrop: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, logFile, err := setupLogging(cfg.Logging, *debugFlag)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()
	if logFile != nil {
		defer logFile.Close()
	}

	themes, err := loadThemes(cfg.Scene)
	if err != nil {
		return err
	}
	bp, err := effect.Get(cfg.Scene.Effect)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	fini := sync.OnceFunc(screen.Fini)
	core.SetResetHook(fini)
	defer core.SetResetHook(nil)
	defer fini()
	screen.HideCursor()
	screen.EnableMouse(tcell.MouseMotionEvents)

	width, height := screen.Size()
	bus := event.NewBus()
	sc := scene.New(bp, themes, cfg.SceneTier(),
		scene.WithSeed(cfg.Scene.Seed),
		scene.WithViewport(width, height),
		scene.WithCellAspect(cfg.Render.CellAspect),
		scene.WithPhysics(cfg.ScenePhysics()),
		scene.WithBus(bus),
		scene.WithLogger(log),
	)

	reg := status.NewRegistry()
	reg.Strings.Get(metricTheme).Store(themes.Palette().Name)

	opts := []render.TerminalOption{render.WithRamp(render.Ramp(cfg.Render.Ramp))}
	if cfg.Render.HUD {
		opts = append(opts, render.WithHUD(func() string { return reg.Line(hudKeys...) }))
	}
	backend := render.NewTerminalBackend(screen, opts...)

	loop := engine.NewLoop(sc, backend, engine.NewPausableClock(),
		engine.WithFPS(cfg.Loop.FPS),
		engine.WithRegistry(reg),
		engine.WithLogger(log),
		engine.WithBus(bus),
	)

	log.Info("backdrop starting",
		zap.String("scene", sc.ID),
		zap.String("effect", sc.Blueprint),
		zap.String("tier", sc.Tier.String()),
		zap.String("theme", themes.Palette().Name),
		zap.Int("entities", sc.Count()),
		zap.Duration("interval", loop.Interval()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ctrl := &controller{loop: loop, bus: bus, themes: themes, reg: reg, log: log, width: width, height: height}
	handle := loop.Start(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer recoverCrash()
		// PollEvent returns nil once the screen is finalised
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			if !ctrl.handle(ev) {
				cancel()
				return nil
			}
		}
	})
	g.Go(func() error {
		defer recoverCrash()
		<-gctx.Done()
		handle.Teardown()
		fini()
		return nil
	})

	err = g.Wait()
	log.Info("backdrop stopped",
		zap.Uint64("frames", loop.Frames()),
		zap.Int64("failures", reg.Ints.Get(engine.MetricFailures).Load()),
	)
	return err
}

func recoverCrash() {
	if r := recover(); r != nil {
		core.HandleCrash(r)
	}
}

// loadConfig reads the config file and applies command-line overrides
func loadConfig() (*config.Config, error) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg, err := config.LoadOrDefault(*configFlag, !set["config"])
	if err != nil {
		return nil, err
	}
	if set["effect"] {
		cfg.Scene.Effect = *effectFlag
	}
	if set["tier"] {
		cfg.Scene.Tier = *tierFlag
	}
	if set["theme"] {
		cfg.Scene.Theme = *themeFlag
	}
	if *seedFlag != 0 {
		cfg.Scene.Seed = *seedFlag
	}
	if *fpsFlag != 0 {
		cfg.Loop.FPS = *fpsFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadThemes builds the palette cycle: built-ins first, then any palettes from the theme file
func loadThemes(cfg config.SceneConfig) (*theme.Cycle, error) {
	names := theme.BuiltinNames()
	palettes := make([]theme.Palette, 0, len(names))
	for _, name := range names {
		p, err := theme.Builtin(name)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, p)
	}
	if cfg.ThemeFile != "" {
		extra, err := theme.Load(cfg.ThemeFile)
		if err != nil {
			return nil, err
		}
		palettes = append(palettes, extra...)
	}

	cycle, err := theme.NewCycle(palettes...)
	if err != nil {
		return nil, err
	}
	start := cfg.Theme
	if start == "" {
		start = theme.DefaultName
	}
	if err := cycle.Select(start); err != nil {
		return nil, err
	}
	return cycle, nil
}

// controller maps terminal input onto the running loop
// Anything touching the scene or the clock is posted so it runs on the loop goroutine
type controller struct {
	loop   *engine.Loop
	bus    *event.Bus
	themes *theme.Cycle
	reg    *status.Registry
	log    *zap.Logger

	// Last known screen size in cells, for pointer normalization
	width  int
	height int
}

// handle returns false when the event asks to quit
func (c *controller) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		c.width, c.height = w, h
		c.loop.Post(func() { c.bus.PublishResize(w, h) })

	case *tcell.EventMouse:
		if c.width <= 0 || c.height <= 0 {
			return true
		}
		cx, cy := ev.Position()
		x := (float64(cx)+0.5)/float64(c.width)*2 - 1
		y := 1 - (float64(cy)+0.5)/float64(c.height)*2
		c.loop.Post(func() { c.bus.PublishPointer(x, y) })

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 't':
				c.loop.Post(c.nextTheme)
			case 'p', ' ':
				c.loop.Post(c.togglePause)
			}
		}
	}
	return true
}

// togglePause publishes the inverse of the current clock state; the loop's subscription applies it
func (c *controller) togglePause() {
	paused := !c.loop.Clock().IsPaused()
	c.bus.Publish(event.Event{Type: event.EventPause, Paused: paused})
	c.log.Debug("pause toggled", zap.Bool("paused", paused))
}

func (c *controller) nextTheme() {
	p := c.themes.Next()
	c.bus.PublishTheme()
	c.reg.Strings.Get(metricTheme).Store(p.Name)
	c.log.Debug("theme changed", zap.String("theme", p.Name))
}
