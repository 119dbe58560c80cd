// Package keybind resolves keys to editor command names.
package keybind

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/JackWReid/ninja/internal/terminal"
	"github.com/sajari/fuzzy"
)

// Context selects which binding table a key is resolved against.
type Context int

const (
	Global Context = iota
	Editor
)

func (c Context) String() string {
	if c == Global {
		return "global"
	}
	return "editor"
}

// Command names.
type Command string

const (
	Quit           Command = "quit"
	Save           Command = "save"
	Find           Command = "find"
	Copy           Command = "copy"
	Cut            Command = "cut"
	Paste          Command = "paste"
	Undo           Command = "undo"
	MoveUp         Command = "move_up"
	MoveDown       Command = "move_down"
	MoveLeft       Command = "move_left"
	MoveRight      Command = "move_right"
	MoveHome       Command = "move_home"
	MoveEnd        Command = "move_end"
	MoveWordLeft   Command = "move_word_left"
	MoveWordRight  Command = "move_word_right"
	PageUp         Command = "page_up"
	PageDown       Command = "page_down"
	InsertNewline  Command = "insert_newline"
	DeleteChar     Command = "delete_char"
	InsertChar     Command = "insert_char"
	StartSelection Command = "start_selection"
	ClearSelection Command = "clear_selection"
)

// Commands lists every command name a binding may refer to.
var Commands = []Command{
	Quit, Save, Find, Copy, Cut, Paste, Undo,
	MoveUp, MoveDown, MoveLeft, MoveRight, MoveHome, MoveEnd,
	MoveWordLeft, MoveWordRight,
	PageUp, PageDown, InsertNewline, DeleteChar, InsertChar,
	StartSelection, ClearSelection,
}

// Map holds one binding table per context.
type Map struct {
	tables map[Context]map[terminal.Key]Command
}

func New() *Map {
	return &Map{tables: map[Context]map[terminal.Key]Command{
		Global: {},
		Editor: {},
	}}
}

// Default returns the stock bindings.
func Default() *Map {
	m := New()
	m.Bind(Global, terminal.Ctrl('q'), Quit)
	m.Bind(Global, terminal.Ctrl('s'), Save)
	m.Bind(Global, terminal.Ctrl('f'), Find)

	m.Bind(Editor, terminal.Ctrl('c'), Copy)
	m.Bind(Editor, terminal.Ctrl('x'), Cut)
	m.Bind(Editor, terminal.Ctrl('v'), Paste)
	m.Bind(Editor, terminal.Ctrl('z'), Undo)

	moves := []struct {
		typ int
		cmd Command
	}{
		{terminal.KeyUp, MoveUp},
		{terminal.KeyDown, MoveDown},
		{terminal.KeyLeft, MoveLeft},
		{terminal.KeyRight, MoveRight},
		{terminal.KeyHome, MoveHome},
		{terminal.KeyEnd, MoveEnd},
		{terminal.KeyPgUp, PageUp},
		{terminal.KeyPgDn, PageDown},
	}
	for _, mv := range moves {
		m.Bind(Editor, terminal.Key{Type: mv.typ}, mv.cmd)
		m.Bind(Editor, terminal.Key{Type: mv.typ, Mod: terminal.ModShift}, mv.cmd)
	}
	for _, mod := range []int{terminal.ModCtrl, terminal.ModCtrl | terminal.ModShift} {
		m.Bind(Editor, terminal.Key{Type: terminal.KeyLeft, Mod: mod}, MoveWordLeft)
		m.Bind(Editor, terminal.Key{Type: terminal.KeyRight, Mod: mod}, MoveWordRight)
	}

	m.Bind(Editor, terminal.Key{Type: terminal.KeyEnter}, InsertNewline)
	m.Bind(Editor, terminal.Key{Type: terminal.KeyBackspace}, DeleteChar)
	m.Bind(Editor, terminal.Key{Type: terminal.KeyDelete}, DeleteChar)
	m.Bind(Editor, terminal.Key{Type: terminal.KeyTab}, InsertChar)
	m.Bind(Editor, terminal.Key{Type: terminal.KeyEscape}, ClearSelection)
	return m
}

// Bind maps k to cmd in ctx, replacing any previous binding.
func (m *Map) Bind(ctx Context, k terminal.Key, cmd Command) {
	m.tables[ctx][normalize(k)] = cmd
}

// Lookup resolves k against each context in turn.
func (m *Map) Lookup(k terminal.Key, contexts ...Context) (Command, bool) {
	k = normalize(k)
	for _, ctx := range contexts {
		if cmd, ok := m.tables[ctx][k]; ok {
			return cmd, true
		}
	}
	return "", false
}

// normalize folds Ctrl/Alt letters to lowercase so "ctrl+S" and "ctrl+s"
// agree with what the terminal reports.
func normalize(k terminal.Key) terminal.Key {
	if k.Type == terminal.KeyRune && k.Mod&(terminal.ModCtrl|terminal.ModAlt) != 0 {
		k.Rune = unicode.ToLower(k.Rune)
	}
	if k.Type != terminal.KeyRune {
		k.Rune = 0
	}
	return k
}

var keyNames = map[string]int{
	"up":        terminal.KeyUp,
	"down":      terminal.KeyDown,
	"left":      terminal.KeyLeft,
	"right":     terminal.KeyRight,
	"home":      terminal.KeyHome,
	"end":       terminal.KeyEnd,
	"pageup":    terminal.KeyPgUp,
	"pgup":      terminal.KeyPgUp,
	"pagedown":  terminal.KeyPgDn,
	"pgdn":      terminal.KeyPgDn,
	"delete":    terminal.KeyDelete,
	"del":       terminal.KeyDelete,
	"backspace": terminal.KeyBackspace,
	"enter":     terminal.KeyEnter,
	"return":    terminal.KeyEnter,
	"tab":       terminal.KeyTab,
	"esc":       terminal.KeyEscape,
	"escape":    terminal.KeyEscape,
}

// ParseKey parses a spec such as "ctrl+s", "shift+up" or "pageup".
func ParseKey(spec string) (terminal.Key, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")
	var k terminal.Key
	for _, mod := range parts[:len(parts)-1] {
		switch mod {
		case "ctrl":
			k.Mod |= terminal.ModCtrl
		case "shift":
			k.Mod |= terminal.ModShift
		case "alt":
			k.Mod |= terminal.ModAlt
		default:
			return terminal.Key{}, fmt.Errorf("key %q: unknown modifier %q", spec, mod)
		}
	}

	name := parts[len(parts)-1]
	if typ, ok := keyNames[name]; ok {
		k.Type = typ
		return k, nil
	}
	if name == "space" {
		name = " "
	}
	if utf8.RuneCountInString(name) != 1 {
		return terminal.Key{}, fmt.Errorf("key %q: unknown key %q", spec, name)
	}
	k.Type = terminal.KeyRune
	k.Rune, _ = utf8.DecodeRuneInString(name)
	return k, nil
}

var suggester = func() *fuzzy.Model {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	for _, c := range Commands {
		model.TrainWord(string(c))
	}
	return model
}()

// Suggest returns the known command closest to name, or "".
func Suggest(name string) string {
	return suggester.SpellCheck(strings.ToLower(name))
}

func isCommand(name string) bool {
	for _, c := range Commands {
		if string(c) == name {
			return true
		}
	}
	return false
}

// Apply installs overrides of the form key spec -> command name into ctx.
// Every bad entry is reported; the good ones are still applied.
func (m *Map) Apply(ctx Context, overrides map[string]string) []error {
	specs := make([]string, 0, len(overrides))
	for spec := range overrides {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	var errs []error
	for _, spec := range specs {
		name := overrides[spec]
		k, err := ParseKey(spec)
		if err != nil {
			errs = append(errs, fmt.Errorf("keybindings.%s: %w", ctx, err))
			continue
		}
		if !isCommand(name) {
			if s := Suggest(name); s != "" {
				errs = append(errs, fmt.Errorf("keybindings.%s: unknown command %q for %q (did you mean %q?)", ctx, name, spec, s))
			} else {
				errs = append(errs, fmt.Errorf("keybindings.%s: unknown command %q for %q", ctx, name, spec))
			}
			continue
		}
		m.Bind(ctx, k, Command(name))
	}
	return errs
}
