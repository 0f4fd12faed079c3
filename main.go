package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-keymacro/config"
	"go-keymacro/debug"
	"go-keymacro/keymap"
	"go-keymacro/macro"
	"go-keymacro/midi"
	"go-keymacro/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	// Flag defaults come from the config file, so unset flags keep the
	// saved values; explicitly set flags win over everything.
	var (
		profile   = flag.String("profile", cfg.GameProfile, "game key layout (wwm or genshin)")
		tempo     = flag.Float64("tempo", cfg.TempoMultiplier, "speed multiplier applied to all timings")
		minDur    = flag.Float64("min-duration", cfg.MinNoteDurationSec, "minimum key press duration in seconds")
		transpose = flag.Int("transpose", cfg.TransposeSemitones, "shift all notes up or down in semitones")
		minDelay  = flag.Int64("min-delay", cfg.MinDelayThresholdMs, "gaps at or under this many ms emit no delay")
		keyGap    = flag.Int64("key-gap", cfg.KeyPressGapMs, "ms between key down and key up in the script")
		outPath   = flag.String("o", "", "output path (default: input name with .txt extension)")
		toStdout  = flag.Bool("stdout", false, "print the script instead of writing a file")
		preview   = flag.Bool("preview", false, "play the notes on a MIDI output instead of writing a script")
		port      = flag.String("port", cfg.PreviewPort, "MIDI output port for -preview (default: first available)")
		debugLog  = flag.Bool("debug", false, "write a trace log to ~/.config/go-keymacro/debug.log")
		saveCfg   = flag.Bool("save-config", false, "persist the effective settings to the config file")
	)
	flag.Parse()

	log := initLogger(*debugLog)
	if *debugLog {
		if err := debug.Enable(); err != nil {
			log.Warn("trace logging unavailable", "err", err)
		}
		defer debug.Disable()
	}

	cfg.ApplyEnv(log)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "profile":
			cfg.GameProfile = *profile
		case "tempo":
			cfg.TempoMultiplier = *tempo
		case "min-duration":
			cfg.MinNoteDurationSec = *minDur
		case "transpose":
			cfg.TransposeSemitones = *transpose
		case "min-delay":
			cfg.MinDelayThresholdMs = *minDelay
		case "key-gap":
			cfg.KeyPressGapMs = *keyGap
		case "port":
			cfg.PreviewPort = *port
		}
	})

	if *saveCfg {
		if err := cfg.Save(); err != nil {
			fatal(err)
		}
	}

	path := flag.Arg(0)
	if path == "" {
		path, err = tui.PickFile(".")
		if err != nil {
			fatal(err)
		}
	}

	data, ppq, err := midi.Load(path)
	if err != nil {
		fatal(err)
	}

	tempoMap := midi.BuildTempoMap(data.Tracks)
	events := midi.Extract(data.Tracks, ppq, tempoMap, cfg.TransposeSemitones, cfg.TempoMultiplier)
	debug.Log("extract", "%s: %d tracks, ppq=%d, %d tempo entries, %d note events",
		filepath.Base(path), len(data.Tracks), ppq, tempoMap.Len(), len(events))

	if *preview {
		defer gomidi.CloseDriver()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := midi.Preview(ctx, events, cfg.PreviewPort); err != nil {
			fatal(err)
		}
		return
	}

	prof := keymap.ProfileByName(cfg.GameProfile, log)
	commands := macro.Synthesize(events, prof, macro.Options{
		MinNoteDurationMs:   cfg.MinNoteDurationMs(),
		MinDelayThresholdMs: cfg.MinDelayThresholdMs,
	}, log)
	lines := macro.Serialize(commands, cfg.KeyPressGapMs)
	debug.Log("macro", "%d commands, %d script lines", len(commands), len(lines))

	if *toStdout {
		for _, line := range lines {
			fmt.Println(line)
		}
		return
	}

	out := *outPath
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
	}
	if err := macro.WriteScript(out, lines); err != nil {
		fatal(err)
	}
	fmt.Printf("%s: %d commands, %d lines -> %s\n", filepath.Base(path), len(commands), len(lines), out)
}

// initLogger configures the shared slog logger and makes the stdlib log
// package route through the same handler.
func initLogger(debugMode bool) *slog.Logger {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	return log
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
