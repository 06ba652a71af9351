package winhotkeys

// wmHotkey is the message class Windows posts when a registered hotkey fires.
const wmHotkey = 0x0312

// message is the slice of a queued window message the manager cares about:
// the message class and the hotkey identifier carried in wParam.
type message struct {
	class uint32
	id    int32
}

// system is the boundary to the OS hotkey facilities. The manager only ever
// touches the OS through these four calls, so tests can substitute a fake
// that simulates the global registration namespace deterministically.
type system interface {
	// registerHotkey binds id to the combination. The modifier mask is
	// passed through as-is, including ModNoRepeat.
	registerHotkey(id int32, modifiers, vk uint32) bool

	// unregisterHotkey releases the binding for id.
	unregisterHotkey(id int32) bool

	// nextMessage blocks until a hotkey-class message arrives. ok is false
	// when the underlying queue shut down and no message is available.
	nextMessage() (msg message, ok bool)

	// keyState reports whether the key is down at the instant of the call.
	keyState(vk uint32) bool
}

// GetGlobalKeyState reports whether key is currently held down, regardless
// of window focus. Usable on its own, without a Manager.
func GetGlobalKeyState(key VKey) bool {
	return newSystem().keyState(uint32(key))
}
