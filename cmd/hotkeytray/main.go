package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"github.com/petems/winhotkeys"
	"github.com/petems/winhotkeys/internal/config"
	"github.com/petems/winhotkeys/internal/logging"
	"github.com/petems/winhotkeys/internal/tray"
)

var (
	// Version is set via ldflags at build time
	Version = "dev"
	// Commit is set via ldflags at build time
	Commit = "unknown"
)

func main() {
	// Load config from AppData/XDG
	cfg, err := config.Load()
	if err != nil {
		// Use default logger if config fails to load
		log := logging.New()
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logging.NewWithLevel(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid config")
	}

	// Hotkey registration and the blocking message wait are thread-affine,
	// so both happen on one locked goroutine.
	go runHotkeys(cfg, log)

	trayUI := tray.New(cfg, log, Version, Commit)
	trayUI.OnQuit(func() {
		log.Info().Msg("Quit from tray menu")
		os.Exit(0)
	})

	// Setup shutdown signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		// Windows releases the process's hotkey bindings at exit
		log.Info().Msg("Shutting down...")
		os.Exit(0)
	}()

	log.Info().Msg("hotkeytray starting...")

	// Start tray UI - MUST run on main thread
	if err := trayUI.Run(); err != nil {
		log.Fatal().Err(err).Msg("Tray error")
	}
}

func runHotkeys(cfg *config.Config, log zerolog.Logger) {
	runtime.LockOSThread()

	mgr := winhotkeys.New[string](winhotkeys.WithLogger(log))

	for _, b := range cfg.Bindings {
		mods, key, err := winhotkeys.ParseCombo(b.Combo)
		if err != nil {
			log.Fatal().Err(err).Str("combo", b.Combo).Msg("Bad key combination")
		}

		extras := make([]winhotkeys.VKey, 0, len(b.ExtraKeys))
		for _, name := range b.ExtraKeys {
			vk, err := winhotkeys.VKeyFromString(name)
			if err != nil {
				log.Fatal().Err(err).Str("key", name).Msg("Bad extra key")
			}
			extras = append(extras, vk)
		}

		id, err := mgr.RegisterExtraKeys(key, mods, extras, makeAction(b, log))
		if err != nil {
			log.Error().Err(err).Str("combo", b.Combo).Msg("Failed to register hotkey")
			continue
		}
		log.Info().Int32("id", int32(id)).Str("combo", b.Combo).Str("action", b.Action).Msg("Registered hotkey")
	}

	mgr.EventLoop()
}

// makeAction builds the callback for one binding.
func makeAction(b config.Binding, log zerolog.Logger) func() string {
	switch b.Action {
	case config.ActionClipboard:
		return func() string {
			line := fmt.Sprintf("%s %s", time.Now().Format(time.RFC3339), b.Message)
			if err := clipboard.WriteAll(line); err != nil {
				log.Error().Err(err).Msg("Clipboard write failed")
				return ""
			}
			log.Info().Str("combo", b.Combo).Msg("Copied to clipboard")
			return line
		}
	default: // config.ActionNotify
		return func() string {
			if err := beeep.Notify("hotkeytray", b.Message, ""); err != nil {
				log.Error().Err(err).Msg("Notification failed")
				return ""
			}
			log.Info().Str("combo", b.Combo).Msg("Sent notification")
			return b.Message
		}
	}
}
