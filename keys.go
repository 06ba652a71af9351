package winhotkeys

import (
	"fmt"
	"strconv"
	"strings"
)

// VKey is a Windows virtual-key code.
//
// The constants below cover the keys that are meaningful as hotkeys or
// extra keys. Any other code can be produced with VKeyFromString("0x..").
type VKey uint32

const (
	VKBack       VKey = 0x08
	VKTab        VKey = 0x09
	VKClear      VKey = 0x0C
	VKReturn     VKey = 0x0D
	VKPause      VKey = 0x13
	VKCapital    VKey = 0x14
	VKEscape     VKey = 0x1B
	VKSpace      VKey = 0x20
	VKPrior      VKey = 0x21
	VKNext       VKey = 0x22
	VKEnd        VKey = 0x23
	VKHome       VKey = 0x24
	VKLeft       VKey = 0x25
	VKUp         VKey = 0x26
	VKRight      VKey = 0x27
	VKDown       VKey = 0x28
	VKSelect     VKey = 0x29
	VKPrint      VKey = 0x2A
	VKSnapshot   VKey = 0x2C
	VKInsert     VKey = 0x2D
	VKDelete     VKey = 0x2E
	VKHelp       VKey = 0x2F
	VK0          VKey = 0x30
	VK1          VKey = 0x31
	VK2          VKey = 0x32
	VK3          VKey = 0x33
	VK4          VKey = 0x34
	VK5          VKey = 0x35
	VK6          VKey = 0x36
	VK7          VKey = 0x37
	VK8          VKey = 0x38
	VK9          VKey = 0x39
	VKA          VKey = 0x41
	VKB          VKey = 0x42
	VKC          VKey = 0x43
	VKD          VKey = 0x44
	VKE          VKey = 0x45
	VKF          VKey = 0x46
	VKG          VKey = 0x47
	VKH          VKey = 0x48
	VKI          VKey = 0x49
	VKJ          VKey = 0x4A
	VKK          VKey = 0x4B
	VKL          VKey = 0x4C
	VKM          VKey = 0x4D
	VKN          VKey = 0x4E
	VKO          VKey = 0x4F
	VKP          VKey = 0x50
	VKQ          VKey = 0x51
	VKR          VKey = 0x52
	VKS          VKey = 0x53
	VKT          VKey = 0x54
	VKU          VKey = 0x55
	VKV          VKey = 0x56
	VKW          VKey = 0x57
	VKX          VKey = 0x58
	VKY          VKey = 0x59
	VKZ          VKey = 0x5A
	VKLWin       VKey = 0x5B
	VKRWin       VKey = 0x5C
	VKApps       VKey = 0x5D
	VKSleep      VKey = 0x5F
	VKNumpad0    VKey = 0x60
	VKNumpad1    VKey = 0x61
	VKNumpad2    VKey = 0x62
	VKNumpad3    VKey = 0x63
	VKNumpad4    VKey = 0x64
	VKNumpad5    VKey = 0x65
	VKNumpad6    VKey = 0x66
	VKNumpad7    VKey = 0x67
	VKNumpad8    VKey = 0x68
	VKNumpad9    VKey = 0x69
	VKMultiply   VKey = 0x6A
	VKAdd        VKey = 0x6B
	VKSeparator  VKey = 0x6C
	VKSubtract   VKey = 0x6D
	VKDecimal    VKey = 0x6E
	VKDivide     VKey = 0x6F
	VKF1         VKey = 0x70
	VKF2         VKey = 0x71
	VKF3         VKey = 0x72
	VKF4         VKey = 0x73
	VKF5         VKey = 0x74
	VKF6         VKey = 0x75
	VKF7         VKey = 0x76
	VKF8         VKey = 0x77
	VKF9         VKey = 0x78
	VKF10        VKey = 0x79
	VKF11        VKey = 0x7A
	VKF12        VKey = 0x7B
	VKF13        VKey = 0x7C
	VKF14        VKey = 0x7D
	VKF15        VKey = 0x7E
	VKF16        VKey = 0x7F
	VKF17        VKey = 0x80
	VKF18        VKey = 0x81
	VKF19        VKey = 0x82
	VKF20        VKey = 0x83
	VKF21        VKey = 0x84
	VKF22        VKey = 0x85
	VKF23        VKey = 0x86
	VKF24        VKey = 0x87
	VKNumlock    VKey = 0x90
	VKScroll     VKey = 0x91
	VKLShift     VKey = 0xA0
	VKRShift     VKey = 0xA1
	VKLControl   VKey = 0xA2
	VKRControl   VKey = 0xA3
	VKLMenu      VKey = 0xA4
	VKRMenu      VKey = 0xA5
	VKVolumeMute VKey = 0xAD
	VKVolumeDown VKey = 0xAE
	VKVolumeUp   VKey = 0xAF
	VKMediaNext  VKey = 0xB0
	VKMediaPrev  VKey = 0xB1
	VKMediaStop  VKey = 0xB2
	VKMediaPlay  VKey = 0xB3
	VKOem1       VKey = 0xBA
	VKOemPlus    VKey = 0xBB
	VKOemComma   VKey = 0xBC
	VKOemMinus   VKey = 0xBD
	VKOemPeriod  VKey = 0xBE
	VKOem2       VKey = 0xBF
	VKOem3       VKey = 0xC0
	VKOem4       VKey = 0xDB
	VKOem5       VKey = 0xDC
	VKOem6       VKey = 0xDD
	VKOem7       VKey = 0xDE
)

// vkName holds the canonical display name for each known virtual key.
var vkName = map[VKey]string{
	VKBack: "Backspace", VKTab: "Tab", VKClear: "Clear", VKReturn: "Enter",
	VKPause: "Pause", VKCapital: "CapsLock", VKEscape: "Escape", VKSpace: "Space",
	VKPrior: "PageUp", VKNext: "PageDown", VKEnd: "End", VKHome: "Home",
	VKLeft: "Left", VKUp: "Up", VKRight: "Right", VKDown: "Down",
	VKSelect: "Select", VKPrint: "Print", VKSnapshot: "PrintScreen",
	VKInsert: "Insert", VKDelete: "Delete", VKHelp: "Help",
	VK0: "0", VK1: "1", VK2: "2", VK3: "3", VK4: "4",
	VK5: "5", VK6: "6", VK7: "7", VK8: "8", VK9: "9",
	VKA: "A", VKB: "B", VKC: "C", VKD: "D", VKE: "E", VKF: "F", VKG: "G",
	VKH: "H", VKI: "I", VKJ: "J", VKK: "K", VKL: "L", VKM: "M", VKN: "N",
	VKO: "O", VKP: "P", VKQ: "Q", VKR: "R", VKS: "S", VKT: "T", VKU: "U",
	VKV: "V", VKW: "W", VKX: "X", VKY: "Y", VKZ: "Z",
	VKLWin: "LWin", VKRWin: "RWin", VKApps: "Apps", VKSleep: "Sleep",
	VKNumpad0: "Numpad0", VKNumpad1: "Numpad1", VKNumpad2: "Numpad2",
	VKNumpad3: "Numpad3", VKNumpad4: "Numpad4", VKNumpad5: "Numpad5",
	VKNumpad6: "Numpad6", VKNumpad7: "Numpad7", VKNumpad8: "Numpad8",
	VKNumpad9: "Numpad9",
	VKMultiply: "Multiply", VKAdd: "Add", VKSeparator: "Separator",
	VKSubtract: "Subtract", VKDecimal: "Decimal", VKDivide: "Divide",
	VKF1: "F1", VKF2: "F2", VKF3: "F3", VKF4: "F4", VKF5: "F5", VKF6: "F6",
	VKF7: "F7", VKF8: "F8", VKF9: "F9", VKF10: "F10", VKF11: "F11", VKF12: "F12",
	VKF13: "F13", VKF14: "F14", VKF15: "F15", VKF16: "F16", VKF17: "F17",
	VKF18: "F18", VKF19: "F19", VKF20: "F20", VKF21: "F21", VKF22: "F22",
	VKF23: "F23", VKF24: "F24",
	VKNumlock: "NumLock", VKScroll: "ScrollLock",
	VKLShift: "LShift", VKRShift: "RShift",
	VKLControl: "LCtrl", VKRControl: "RCtrl",
	VKLMenu: "LAlt", VKRMenu: "RAlt",
	VKVolumeMute: "VolumeMute", VKVolumeDown: "VolumeDown", VKVolumeUp: "VolumeUp",
	VKMediaNext: "MediaNext", VKMediaPrev: "MediaPrev", VKMediaStop: "MediaStop",
	VKMediaPlay: "MediaPlayPause",
	VKOem1: "Semicolon", VKOemPlus: "Plus", VKOemComma: "Comma",
	VKOemMinus: "Minus", VKOemPeriod: "Period", VKOem2: "Slash",
	VKOem3: "Backquote", VKOem4: "LBracket", VKOem5: "Backslash",
	VKOem6: "RBracket", VKOem7: "Quote",
}

var vkByName = map[string]VKey{}

func init() {
	for vk, name := range vkName {
		vkByName[strings.ToLower(name)] = vk
	}
	// Common synonyms.
	vkByName["return"] = VKReturn
	vkByName["esc"] = VKEscape
	vkByName["pgup"] = VKPrior
	vkByName["pgdn"] = VKNext
	vkByName["del"] = VKDelete
	vkByName["ins"] = VKInsert
	vkByName["win"] = VKLWin
	vkByName["prtsc"] = VKSnapshot
}

// VKeyFromString resolves a key name to its virtual-key code. Names are
// case-insensitive ("enter", "F5", "a"). A "0x" prefixed hex literal is
// accepted for codes that have no named constant.
func VKeyFromString(s string) (VKey, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "0x") {
		code, err := strconv.ParseUint(name[2:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid key code %q: %w", s, err)
		}
		return VKey(code), nil
	}
	if vk, ok := vkByName[name]; ok {
		return vk, nil
	}
	return 0, fmt.Errorf("unknown key name %q", s)
}

func (k VKey) String() string {
	if name, ok := vkName[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint32(k))
}

// ModKey is a hotkey modifier flag. Values match the fsModifiers flags
// accepted by RegisterHotKey.
type ModKey uint32

const (
	ModAlt     ModKey = 0x0001
	ModControl ModKey = 0x0002
	ModShift   ModKey = 0x0004
	ModWin     ModKey = 0x0008

	// ModNoRepeat keeps a held-down combination from firing again on every
	// keyboard repeat tick. Register always sets it.
	ModNoRepeat ModKey = 0x4000
)

// CombineMods folds a set of modifiers into the bitmask RegisterHotKey expects.
func CombineMods(mods []ModKey) uint32 {
	var mask uint32
	for _, m := range mods {
		mask |= uint32(m)
	}
	return mask
}

// ModKeyFromString resolves a modifier name, case-insensitively.
func ModKeyFromString(s string) (ModKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alt":
		return ModAlt, nil
	case "ctrl", "control":
		return ModControl, nil
	case "shift":
		return ModShift, nil
	case "win", "super", "meta":
		return ModWin, nil
	}
	return 0, fmt.Errorf("unknown modifier name %q", s)
}

func (m ModKey) String() string {
	switch m {
	case ModAlt:
		return "Alt"
	case ModControl:
		return "Ctrl"
	case ModShift:
		return "Shift"
	case ModWin:
		return "Win"
	case ModNoRepeat:
		return "NoRepeat"
	}
	return fmt.Sprintf("0x%04X", uint32(m))
}

// ParseCombo splits an accelerator string like "Ctrl+Alt+Enter" into its
// modifiers and key. The last '+' separated token is the key, everything
// before it must be a modifier name.
func ParseCombo(combo string) ([]ModKey, VKey, error) {
	parts := strings.Split(combo, "+")
	if len(parts) == 0 || strings.TrimSpace(parts[len(parts)-1]) == "" {
		return nil, 0, fmt.Errorf("empty key combination %q", combo)
	}

	key, err := VKeyFromString(parts[len(parts)-1])
	if err != nil {
		return nil, 0, fmt.Errorf("parse combo %q: %w", combo, err)
	}

	var mods []ModKey
	for _, part := range parts[:len(parts)-1] {
		mod, err := ModKeyFromString(part)
		if err != nil {
			return nil, 0, fmt.Errorf("parse combo %q: %w", combo, err)
		}
		mods = append(mods, mod)
	}
	return mods, key, nil
}

func comboString(mods []ModKey, key VKey) string {
	var b strings.Builder
	for _, m := range mods {
		b.WriteString(m.String())
		b.WriteByte('+')
	}
	b.WriteString(key.String())
	return b.String()
}
