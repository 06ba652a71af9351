//go:build windows

// Package win32 wraps the four user32 calls the hotkey manager needs.
package win32

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// WMHotkey is the window message class posted for registered hotkeys.
const WMHotkey = 0x0312

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
	procGetMessageW      = user32.NewProc("GetMessageW")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// MSG mirrors the Win32 MSG struct layout.
type MSG struct {
	HWnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      struct{ X, Y int32 }
}

// RegisterHotKey binds a thread-global hotkey. A NULL window handle posts
// the WM_HOTKEY messages to the calling thread's queue.
func RegisterHotKey(id int32, modifiers, vk uint32) bool {
	ret, _, _ := procRegisterHotKey.Call(0, uintptr(id), uintptr(modifiers), uintptr(vk))
	return ret != 0
}

// UnregisterHotKey releases a binding made by RegisterHotKey.
func UnregisterHotKey(id int32) bool {
	ret, _, _ := procUnregisterHotKey.Call(0, uintptr(id))
	return ret != 0
}

// GetHotkeyMessage blocks on the calling thread's message queue, filtered
// to WM_HOTKEY only. ok is false on WM_QUIT or a GetMessage error.
func GetHotkeyMessage() (msg MSG, ok bool) {
	ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&msg)), 0, WMHotkey, WMHotkey)
	if ret == 0 || ret == ^uintptr(0) {
		return MSG{}, false
	}
	return msg, true
}

// KeyDown reports the instantaneous state of a virtual key. The high bit of
// the SHORT returned by GetAsyncKeyState is set while the key is down.
func KeyDown(vk uint32) bool {
	ret, _, _ := procGetAsyncKeyState.Call(uintptr(vk))
	return int16(ret) < 0
}
