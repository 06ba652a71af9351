package tray

import (
	"fmt"

	"github.com/getlantern/systray"
	"github.com/rs/zerolog"

	"github.com/petems/winhotkeys/internal/config"
)

type UI struct {
	cfg     *config.Config
	version string
	commit  string
	log     zerolog.Logger
	onQuit  func()
}

func New(cfg *config.Config, log zerolog.Logger, version, commit string) *UI {
	return &UI{
		cfg:     cfg,
		version: version,
		commit:  commit,
		log:     log,
	}
}

// OnQuit sets the callback invoked when the user picks Quit from the menu.
func (u *UI) OnQuit(fn func()) {
	u.onQuit = fn
}

// Run blocks on the systray loop. MUST run on the main thread.
func (u *UI) Run() error {
	systray.Run(u.onReady, u.onExit)
	return nil
}

func (u *UI) onReady() {
	// Emoji instead of an icon asset
	systray.SetTitle("⌨️")
	systray.SetTooltip("Global hotkeys")

	// One display-only entry per configured binding
	for _, b := range u.cfg.Bindings {
		label := fmt.Sprintf("%s → %s", b.Combo, b.Action)
		item := systray.AddMenuItem(label, "Registered hotkey")
		item.Disable()
	}
	systray.AddSeparator()

	mLogs := systray.AddMenuItem("Open Logs", "View application logs")
	mAbout := systray.AddMenuItem("About", "About hotkeytray")
	mQuit := systray.AddMenuItem("Quit", "Exit application")

	go u.handleEvents(mLogs, mAbout, mQuit)
}

func (u *UI) handleEvents(mLogs, mAbout, mQuit *systray.MenuItem) {
	for {
		select {
		case <-mLogs.ClickedCh:
			u.openLogs()
		case <-mAbout.ClickedCh:
			u.showAbout()
		case <-mQuit.ClickedCh:
			systray.Quit()
			return
		}
	}
}

func (u *UI) openLogs() {
	// TODO: Open log file with default app
	fmt.Println("Open logs...")
}

func (u *UI) showAbout() {
	fmt.Printf("hotkeytray %s (%s)\nGlobal hotkey daemon\n", u.version, u.commit)
}

func (u *UI) onExit() {
	if u.onQuit != nil {
		u.onQuit()
	}
}
