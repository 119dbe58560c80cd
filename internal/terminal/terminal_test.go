package terminal

import "testing"

func TestParseKeyRune(t *testing.T) {
	k := parseKey([]byte{'a'})
	if k.Type != KeyRune || k.Rune != 'a' || k.Mod != 0 {
		t.Errorf("expected rune 'a', got type=%d rune=%c mod=%d", k.Type, k.Rune, k.Mod)
	}
}

func TestParseKeyEscape(t *testing.T) {
	k := parseKey([]byte{27})
	if k.Type != KeyEscape {
		t.Errorf("expected escape, got type=%d", k.Type)
	}
}

func TestParseKeyEnter(t *testing.T) {
	k := parseKey([]byte{13})
	if k.Type != KeyEnter {
		t.Errorf("expected enter, got type=%d", k.Type)
	}
}

func TestParseKeyTab(t *testing.T) {
	k := parseKey([]byte{9})
	if k.Type != KeyTab {
		t.Errorf("expected tab, got type=%d", k.Type)
	}
}

func TestParseKeyBackspace(t *testing.T) {
	k := parseKey([]byte{127})
	if k.Type != KeyBackspace {
		t.Errorf("expected backspace (127), got type=%d", k.Type)
	}
	k = parseKey([]byte{8})
	if k.Type != KeyBackspace {
		t.Errorf("expected backspace (8), got type=%d", k.Type)
	}
}

func TestParseKeyCtrlLetters(t *testing.T) {
	tests := []struct {
		b    byte
		want rune
	}{
		{1, 'a'},
		{3, 'c'},
		{6, 'f'},
		{17, 'q'},
		{19, 's'},
		{22, 'v'},
		{24, 'x'},
		{26, 'z'},
	}
	for _, tc := range tests {
		k := parseKey([]byte{tc.b})
		if k != Ctrl(tc.want) {
			t.Errorf("byte %d: got %+v, want ctrl-%c", tc.b, k, tc.want)
		}
	}
}

func TestParseKeyArrows(t *testing.T) {
	tests := []struct {
		seq      []byte
		expected int
	}{
		{[]byte{27, '[', 'A'}, KeyUp},
		{[]byte{27, '[', 'B'}, KeyDown},
		{[]byte{27, '[', 'C'}, KeyRight},
		{[]byte{27, '[', 'D'}, KeyLeft},
		{[]byte{27, 'O', 'A'}, KeyUp},
		{[]byte{27, 'O', 'H'}, KeyHome},
	}
	for _, tc := range tests {
		k := parseKey(tc.seq)
		if k.Type != tc.expected || k.Mod != 0 {
			t.Errorf("seq %v: expected type %d, got %d (mod %d)", tc.seq, tc.expected, k.Type, k.Mod)
		}
	}
}

func TestParseKeyModifiedArrows(t *testing.T) {
	tests := []struct {
		seq  string
		typ  int
		mod  int
		name string
	}{
		{"\x1b[1;2A", KeyUp, ModShift, "shift-up"},
		{"\x1b[1;2D", KeyLeft, ModShift, "shift-left"},
		{"\x1b[1;2H", KeyHome, ModShift, "shift-home"},
		{"\x1b[1;2F", KeyEnd, ModShift, "shift-end"},
		{"\x1b[1;5C", KeyRight, ModCtrl, "ctrl-right"},
		{"\x1b[1;6B", KeyDown, ModCtrl | ModShift, "ctrl-shift-down"},
		{"\x1b[5;2~", KeyPgUp, ModShift, "shift-pgup"},
	}
	for _, tc := range tests {
		k := parseKey([]byte(tc.seq))
		if k.Type != tc.typ || k.Mod != tc.mod {
			t.Errorf("%s: got type=%d mod=%d, want type=%d mod=%d", tc.name, k.Type, k.Mod, tc.typ, tc.mod)
		}
	}
}

func TestParseKeyAlt(t *testing.T) {
	k := parseKey([]byte{27, 'x'})
	if k.Type != KeyRune || k.Rune != 'x' || k.Mod != ModAlt {
		t.Errorf("expected alt-x, got %+v", k)
	}
}

func TestParseKeyEmpty(t *testing.T) {
	k := parseKey([]byte{})
	if k.Type != KeyUnknown {
		t.Errorf("expected unknown for empty input, got type=%d", k.Type)
	}
}

func TestParseKeyUnknownCSI(t *testing.T) {
	for _, seq := range []string{"\x1b[9~", "\x1b[Z", "\x1b[1;2"} {
		if k := parseKey([]byte(seq)); k.Type != KeyUnknown {
			t.Errorf("%q: expected unknown, got type=%d", seq, k.Type)
		}
	}
}

func TestDecodeUTF8(t *testing.T) {
	// ASCII
	if r := decodeUTF8([]byte{'A'}); r != 'A' {
		t.Errorf("ASCII: got %c", r)
	}
	// 2-byte: é (U+00E9) = 0xC3 0xA9
	if r := decodeUTF8([]byte{0xC3, 0xA9}); r != 'é' {
		t.Errorf("2-byte: got %c (%x)", r, r)
	}
	// 3-byte: 日 (U+65E5) = 0xE6 0x97 0xA5
	if r := decodeUTF8([]byte{0xE6, 0x97, 0xA5}); r != '日' {
		t.Errorf("3-byte: got %c (%x)", r, r)
	}
	// Empty
	if r := decodeUTF8([]byte{}); r != 0 {
		t.Errorf("empty: got %x", r)
	}
	// Invalid continuation byte
	if r := decodeUTF8([]byte{0x80}); r != 0xFFFD {
		t.Errorf("invalid: got %x", r)
	}
}

func TestParseKeyMultibyteUTF8(t *testing.T) {
	k := parseKey([]byte{0xE4, 0xB8, 0xAD})
	if k.Type != KeyRune || k.Rune != '中' {
		t.Errorf("expected rune 中, got type=%d rune=%c", k.Type, k.Rune)
	}
}

func TestParseKeyHomeEnd3Byte(t *testing.T) {
	k := parseKey([]byte{27, '[', 'H'})
	if k.Type != KeyHome {
		t.Errorf("expected home (3-byte), got type=%d", k.Type)
	}
	k = parseKey([]byte{27, '[', 'F'})
	if k.Type != KeyEnd {
		t.Errorf("expected end (3-byte), got type=%d", k.Type)
	}
}

func TestParseKeyCSI4Byte(t *testing.T) {
	tests := []struct {
		seq      []byte
		expected int
		name     string
	}{
		{[]byte{27, '[', '1', '~'}, KeyHome, "home"},
		{[]byte{27, '[', '3', '~'}, KeyDelete, "delete"},
		{[]byte{27, '[', '4', '~'}, KeyEnd, "end"},
		{[]byte{27, '[', '5', '~'}, KeyPgUp, "pgup"},
		{[]byte{27, '[', '6', '~'}, KeyPgDn, "pgdn"},
	}
	for _, tc := range tests {
		k := parseKey(tc.seq)
		if k.Type != tc.expected {
			t.Errorf("%s: expected type %d, got %d", tc.name, tc.expected, k.Type)
		}
	}
}
