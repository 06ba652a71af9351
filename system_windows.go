//go:build windows

package winhotkeys

import "github.com/petems/winhotkeys/internal/win32"

type winSystem struct{}

func newSystem() system { return winSystem{} }

func (winSystem) registerHotkey(id int32, modifiers, vk uint32) bool {
	return win32.RegisterHotKey(id, modifiers, vk)
}

func (winSystem) unregisterHotkey(id int32) bool {
	return win32.UnregisterHotKey(id)
}

func (winSystem) nextMessage() (message, bool) {
	msg, ok := win32.GetHotkeyMessage()
	if !ok {
		return message{}, false
	}
	return message{class: msg.Message, id: int32(msg.WParam)}, true
}

func (winSystem) keyState(vk uint32) bool {
	return win32.KeyDown(vk)
}
