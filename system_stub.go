//go:build !windows

package winhotkeys

// Global hotkeys are a Windows facility. On other platforms every
// registration fails, the message queue reports immediate shutdown and all
// keys read as released, so code using the package still compiles and tests
// against the fake system still run.
type stubSystem struct{}

func newSystem() system { return stubSystem{} }

func (stubSystem) registerHotkey(id int32, modifiers, vk uint32) bool { return false }

func (stubSystem) unregisterHotkey(id int32) bool { return false }

func (stubSystem) nextMessage() (message, bool) { return message{}, false }

func (stubSystem) keyState(vk uint32) bool { return false }
