package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridpath/audio"
	"github.com/lixenwraith/gridpath/config"
	"github.com/lixenwraith/gridpath/maze"
	"github.com/lixenwraith/gridpath/viz"
)

const (
	logDir      = "logs"
	logFileName = "gridpath.log"
	maxLogSize  = 10 * 1024 * 1024 // Rotate beyond 10MB
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.GridSize, "size", cfg.GridSize, "Grid size (cells per side)")
	flag.IntVar(&cfg.Density, "density", cfg.Density, "Random maze density")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Maze seed (0 = time-based)")
	flag.BoolVar(&cfg.Animate, "animate", cfg.Animate, "Replay searches cell by cell")
	flag.DurationVar(&cfg.AnimationDelay, "delay", cfg.AnimationDelay, "Delay between replayed cells")
	flag.BoolVar(&cfg.Sound, "sound", cfg.Sound, "Play audio cues")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Write logs to "+filepath.Join(logDir, logFileName))
	flag.StringVar(&cfg.Maze, "maze", cfg.Maze, "Maze kind for -generate: prims or random")
	generate := flag.Bool("generate", false, "Start with a generated maze")
	flag.Parse()

	if _, fromEnv := os.LookupEnv(config.EnvDensity); !fromEnv && !flagSet("density") {
		cfg.FitDensity()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("starting: size=%d density=%d animate=%t delay=%v sound=%t seed=%d",
		cfg.GridSize, cfg.Density, cfg.Animate, cfg.AnimationDelay, cfg.Sound, cfg.Seed)

	model, err := viz.NewModel(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create grid: %v\n", err)
		os.Exit(1)
	}
	if *generate {
		kind, _ := maze.ParseKind(cfg.Maze)
		if err := model.GenerateMaze(kind); err != nil {
			fmt.Fprintf(os.Stderr, "Maze generation failed: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRIDPATH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var player audio.Player = audio.Nop{}
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the visualizer runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			player = sm
		}
	}
	defer player.Close()

	app := viz.NewApp(screen, model, player)
	runErr := app.Run()
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// flagSet reports whether name was given on the command line
func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// setupLogging routes the standard logger to a file under logDir when debug is set and
// discards it otherwise; the terminal UI owns stdout and stderr. An oversized log is rotated
// to a timestamped name first. The returned file is nil when logging is off or failed.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("gridpath_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			log.SetOutput(io.Discard)
			return nil
		}
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile
}
