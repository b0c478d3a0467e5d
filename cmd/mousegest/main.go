// Package main is the entry point for the mousegest daemon.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hidwork/mousegest/internal/config"
	"github.com/hidwork/mousegest/internal/config/watcher"
	"github.com/hidwork/mousegest/internal/diag"
	"github.com/hidwork/mousegest/internal/engine"
	"github.com/hidwork/mousegest/internal/gesture"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	ConfigPath string
	RulesPath  string
	LogLevel   string
	ReplayPath string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	settings, err := config.LoadSettings(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.RulesPath != "" {
		settings.RulesPath = opts.RulesPath
	}
	if opts.LogLevel != "" {
		settings.LogLevel = opts.LogLevel
	}

	sink := diag.NewLogSink(nil)
	gestures, err := config.LoadRules(settings.RulesPath, gesture.WithSink(sink))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	log.Printf("loaded %d gesture(s) from %s", len(gestures), settings.RulesPath)

	d := newDaemon(gestures, settings.LogLevel == "debug")

	if opts.ReplayPath != "" {
		if err := d.replay(opts.ReplayPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	// Watch mode: keep the normalized rules current until interrupted.
	if settings.Watch {
		debounce := time.Duration(settings.DebounceMS) * time.Millisecond
		w, err := watcher.New(settings.RulesPath, debounce, func() {
			reloaded, err := config.LoadRules(settings.RulesPath, gesture.WithSink(sink))
			if err != nil {
				log.Printf("rules reload failed: %v", err)
				return
			}
			d.setGestures(reloaded)
			log.Printf("rules reloaded: %d gesture(s)", len(reloaded))
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to watch rules file: %v\n", err)
			return 1
		}
		defer w.Close()
		log.Printf("watching %s for changes", w.Path())
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "settings.toml", "Path to settings file")
	flag.StringVar(&opts.ConfigPath, "c", "settings.toml", "Path to settings file (shorthand)")
	flag.StringVar(&opts.RulesPath, "rules", "", "Path to gesture rules file (overrides settings)")
	flag.StringVar(&opts.RulesPath, "r", "", "Path to gesture rules file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.ReplayPath, "replay", "", "Replay notification records from a file (\"-\" for stdin)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "mousegest - staggering mouse gesture recognizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: mousegest [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nReplay record format, one per line:\n")
		fmt.Fprintf(os.Stderr, "  <device> <hex-payload>     evaluate one raw notification\n")
		fmt.Fprintf(os.Stderr, "  <device> release           observe the device's gesture release\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("mousegest %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if opts.LogLevel != "" {
		switch opts.LogLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
			os.Exit(1)
		}
	}

	return opts
}

// daemon owns the evaluator and the per-device sessions.
type daemon struct {
	eval     *engine.Evaluator
	gestures []*gesture.MouseGesture
	sessions map[string]*engine.Session
	debug    bool
}

func newDaemon(gestures []*gesture.MouseGesture, debug bool) *daemon {
	return &daemon{
		eval:     engine.NewEvaluator(),
		gestures: gestures,
		sessions: make(map[string]*engine.Session),
		debug:    debug,
	}
}

func (d *daemon) setGestures(gestures []*gesture.MouseGesture) {
	d.gestures = gestures
	for _, s := range d.sessions {
		s.SetGestures(gestures)
	}
}

func (d *daemon) session(device string) *engine.Session {
	s, ok := d.sessions[device]
	if !ok {
		s = engine.NewSession(device, d.eval, func(device string, g *gesture.MouseGesture) {
			log.Printf("trigger: device=%s gesture=%q", device, g)
		})
		s.SetGestures(d.gestures)
		d.sessions[device] = s
	}
	return s
}
