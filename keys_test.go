package winhotkeys

import "testing"

func TestVKeyFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    VKey
		wantErr bool
	}{
		{name: "letter lowercase", input: "a", want: VKA},
		{name: "letter uppercase", input: "Z", want: VKZ},
		{name: "digit", input: "7", want: VK7},
		{name: "named key", input: "enter", want: VKReturn},
		{name: "synonym", input: "return", want: VKReturn},
		{name: "escape short form", input: "esc", want: VKEscape},
		{name: "function key", input: "F12", want: VKF12},
		{name: "surrounding whitespace", input: " space ", want: VKSpace},
		{name: "hex literal", input: "0x41", want: VKA},
		{name: "unknown name", input: "hyperkey", wantErr: true},
		{name: "bad hex", input: "0xZZ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VKeyFromString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("VKeyFromString(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("VKeyFromString(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("VKeyFromString(%q) = 0x%02X, want 0x%02X", tt.input, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestModKeyFromString(t *testing.T) {
	tests := []struct {
		input   string
		want    ModKey
		wantErr bool
	}{
		{input: "ctrl", want: ModControl},
		{input: "Control", want: ModControl},
		{input: "ALT", want: ModAlt},
		{input: "shift", want: ModShift},
		{input: "win", want: ModWin},
		{input: "super", want: ModWin},
		{input: "meta", want: ModWin},
		{input: "hyper", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ModKeyFromString(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ModKeyFromString(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ModKeyFromString(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ModKeyFromString(%q) = 0x%04X, want 0x%04X", tt.input, uint32(got), uint32(tt.want))
		}
	}
}

func TestCombineMods(t *testing.T) {
	mask := CombineMods([]ModKey{ModControl, ModAlt, ModShift})
	if mask != 0x0007 {
		t.Errorf("CombineMods = 0x%04X, want 0x0007", mask)
	}
	if CombineMods(nil) != 0 {
		t.Errorf("CombineMods(nil) = 0x%04X, want 0", CombineMods(nil))
	}
}

func TestParseCombo(t *testing.T) {
	tests := []struct {
		combo    string
		wantMods []ModKey
		wantKey  VKey
		wantErr  bool
	}{
		{combo: "Ctrl+Alt+Enter", wantMods: []ModKey{ModControl, ModAlt}, wantKey: VKReturn},
		{combo: "ctrl+shift+f5", wantMods: []ModKey{ModControl, ModShift}, wantKey: VKF5},
		{combo: "win+space", wantMods: []ModKey{ModWin}, wantKey: VKSpace},
		{combo: "a", wantMods: nil, wantKey: VKA},
		{combo: "Ctrl+", wantErr: true},
		{combo: "", wantErr: true},
		{combo: "Ctrl+Alt", wantErr: true},   // "alt" is not a key
		{combo: "Enter+Ctrl", wantErr: true}, // "ctrl" is not a key, "enter" not a modifier
	}

	for _, tt := range tests {
		t.Run(tt.combo, func(t *testing.T) {
			mods, key, err := ParseCombo(tt.combo)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCombo(%q) should fail", tt.combo)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCombo(%q) failed: %v", tt.combo, err)
			}
			if key != tt.wantKey {
				t.Errorf("key = %s, want %s", key, tt.wantKey)
			}
			if len(mods) != len(tt.wantMods) {
				t.Fatalf("got %d modifiers, want %d", len(mods), len(tt.wantMods))
			}
			for i := range mods {
				if mods[i] != tt.wantMods[i] {
					t.Errorf("modifier %d = %s, want %s", i, mods[i], tt.wantMods[i])
				}
			}
		})
	}
}

func TestComboString(t *testing.T) {
	s := comboString([]ModKey{ModControl, ModAlt}, VKReturn)
	if s != "Ctrl+Alt+Enter" {
		t.Errorf("comboString = %q, want %q", s, "Ctrl+Alt+Enter")
	}
}

func TestVKeyString(t *testing.T) {
	if VKReturn.String() != "Enter" {
		t.Errorf("VKReturn.String() = %q, want %q", VKReturn.String(), "Enter")
	}
	if VKey(0xE9).String() != "0xE9" {
		t.Errorf("unnamed key String() = %q, want %q", VKey(0xE9).String(), "0xE9")
	}
}
