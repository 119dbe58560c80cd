package editor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"
	"unicode/utf8"

	"github.com/JackWReid/ninja/internal/config"
	"github.com/JackWReid/ninja/internal/keybind"
	"github.com/JackWReid/ninja/internal/syntax"
	"github.com/JackWReid/ninja/internal/terminal"
)

// KeyReader yields decoded keystrokes. A KeyNone key means nothing arrived
// before the poll timeout.
type KeyReader interface {
	ReadKey() (terminal.Key, error)
}

// Screen reports terminal size changes.
type Screen interface {
	SigwinchChan() <-chan os.Signal
	Resize() bool
	Width() int
	Height() int
}

// Clipboard is the copy history shared with the system clipboard.
type Clipboard interface {
	Top() (string, bool)
	Add(text string)
	IsEmpty() bool
}

// App is the top-level editor state.
type App struct {
	buf       *EditorBuffer
	renderer  *Renderer
	statusBar *StatusBar
	keys      *keybind.Map
	cfg       config.Config
	clip      Clipboard

	screen Screen
	input  KeyReader
	out    io.Writer

	quitCount int
	quit      bool

	Version string
}

// NewApp creates the editor for filename ("" for an unnamed buffer). The
// file is read immediately; problems are reported in the message bar.
func NewApp(filename string, cfg config.Config, keys *keybind.Map, clip Clipboard, now func() time.Time) *App {
	if keys == nil {
		keys = keybind.Default()
	}
	a := &App{
		buf:       NewEditorBuffer(filename, 80, 24),
		renderer:  NewRenderer(),
		statusBar: NewStatusBar(now),
		keys:      keys,
		cfg:       cfg,
		clip:      clip,
	}
	a.statusBar.ShowFileInfo = cfg.Display.ShowFileInfo
	a.statusBar.ShowSyntaxInfo = cfg.Display.ShowSyntaxInfo
	a.buf.search.CaseSensitive = cfg.Behavior.SearchCaseSensitive
	a.buf.search.WrapAround = cfg.Behavior.SearchWrapAround

	a.statusBar.SetMessage("%s", HelpMessage)
	a.open(filename)
	return a
}

func (a *App) open(filename string) {
	if filename != "" {
		err := a.buf.rows.Load(filename)
		switch {
		case errors.Is(err, ErrInvalidUTF8):
			log.Printf("open %s: %v", filename, err)
			a.statusBar.SetMessage("Invalid UTF-8 replaced with U+FFFD")
		case err != nil:
			log.Printf("open %s: %v", filename, err)
			a.statusBar.SetMessage("Can't open file: %v", err)
		}
	}
	a.detectFileType()
}

// detectFileType picks the language from the file name and its leading
// content. Highlighting can be switched off entirely in the config.
func (a *App) detectFileType() {
	s := a.cfg.Syntax
	var head []byte
	for i := 0; i < a.buf.rows.Len() && len(head) < 8<<10; i++ {
		head = append(head, a.buf.rows.Row(i).Content...)
		head = append(head, '\n')
	}
	lang, fileType := syntax.Detect(a.buf.Filename(), head, s.AutoDetectFileType, s.DefaultFileType)
	if !s.EnableSyntaxHighlighting {
		lang = nil
	}
	a.buf.rows.SetLanguage(lang, fileType)
}

// Run takes over the terminal and processes keys until the user quits.
func (a *App) Run() error {
	t, err := terminal.NewTerminal()
	if err != nil {
		return err
	}
	defer t.Restore()

	a.screen = t
	a.input = t
	a.out = t
	a.buf.vp.Resize(t.Width(), t.Height())

	for !a.quit {
		a.checkResize()
		if err := a.refreshScreen(); err != nil {
			return err
		}
		if err := a.processKeypress(); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) processKeypress() error {
	k, err := a.input.ReadKey()
	if err != nil {
		return err
	}
	if k.Type == terminal.KeyNone {
		return nil
	}
	return a.handleKey(k)
}

func (a *App) handleKey(k terminal.Key) error {
	cmd, ok := a.keys.Lookup(k, keybind.Global, keybind.Editor)
	if cmd != keybind.Quit {
		a.quitCount = 0
	}
	if !ok {
		// Unbound printable keys type themselves.
		if k.Type == terminal.KeyRune && k.Mod&^terminal.ModShift == 0 {
			a.insertChar(k.Rune)
		}
		return nil
	}
	return a.execute(cmd, k)
}

func (a *App) execute(cmd keybind.Command, k terminal.Key) error {
	eb := a.buf
	switch cmd {
	case keybind.Quit:
		a.quitCommand()
	case keybind.Save:
		return a.save()
	case keybind.Find:
		return a.find()
	case keybind.Copy:
		a.copySelection()
	case keybind.Cut:
		a.cutSelection()
	case keybind.Paste:
		a.paste()
	case keybind.Undo:
		if !eb.Undo() {
			a.statusBar.SetMessage("Nothing to undo")
		}
	case keybind.MoveUp, keybind.MoveDown, keybind.MoveLeft, keybind.MoveRight,
		keybind.MoveHome, keybind.MoveEnd, keybind.MoveWordLeft, keybind.MoveWordRight,
		keybind.PageUp, keybind.PageDown:
		a.move(cmd, k.Mod&terminal.ModShift != 0)
	case keybind.InsertNewline:
		eb.sel.Clear()
		eb.InsertNewline(a.cfg.Editor.AutoIndent)
	case keybind.DeleteChar:
		eb.sel.Clear()
		if k.Type == terminal.KeyDelete {
			eb.DeleteForward()
		} else {
			eb.DeleteChar()
		}
	case keybind.InsertChar:
		switch {
		case k.Type == terminal.KeyTab:
			a.insertTab()
		case k.Type == terminal.KeyRune:
			a.insertChar(k.Rune)
		}
	case keybind.StartSelection:
		eb.sel.Start(eb.Cursor())
	case keybind.ClearSelection:
		eb.sel.Clear()
	}
	return nil
}

func (a *App) insertChar(ch rune) {
	a.buf.sel.Clear()
	a.buf.InsertChar(ch)
}

func (a *App) insertTab() {
	if !a.cfg.Editor.SoftTabs {
		a.insertChar('\t')
		return
	}
	for i := 0; i < a.cfg.Editor.TabSize; i++ {
		a.insertChar(' ')
	}
}

var moveDirs = map[keybind.Command]Direction{
	keybind.MoveUp:    DirUp,
	keybind.MoveDown:  DirDown,
	keybind.MoveLeft:  DirLeft,
	keybind.MoveRight: DirRight,
	keybind.MoveHome:  DirHome,
	keybind.MoveEnd:   DirEnd,
}

// move moves the cursor. With extend the selection follows the cursor,
// starting from where it was; without it any selection is dropped.
func (a *App) move(cmd keybind.Command, extend bool) {
	eb := a.buf
	if extend {
		if !eb.sel.Active() {
			eb.sel.Start(eb.Cursor())
		}
	} else {
		eb.sel.Clear()
	}

	switch cmd {
	case keybind.PageUp:
		eb.undo.flushCoalesce()
		eb.vp.PageUp(eb.rows)
	case keybind.PageDown:
		eb.undo.flushCoalesce()
		eb.vp.PageDown(eb.rows)
	case keybind.MoveWordLeft:
		eb.MoveWord(false)
	case keybind.MoveWordRight:
		eb.MoveWord(true)
	default:
		eb.Move(moveDirs[cmd])
	}

	if extend {
		eb.sel.Extend(eb.Cursor())
	}
}

func (a *App) quitCommand() {
	times := a.cfg.Behavior.QuitTimes
	if a.buf.IsDirty() && a.quitCount+1 < times {
		a.quitCount++
		a.statusBar.SetMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", times-a.quitCount)
		return
	}
	a.quit = true
}

func (a *App) save() error {
	eb := a.buf
	if eb.Filename() == "" {
		name, err := a.prompt("Save as: %s (ESC to cancel)", nil)
		if errors.Is(err, ErrPromptCancelled) {
			a.statusBar.SetMessage("Save aborted")
			return nil
		}
		if err != nil {
			return err
		}
		eb.rows.Filename = name
		a.detectFileType()
	}

	n, err := eb.rows.Save()
	if err != nil {
		log.Printf("save %s: %v", eb.Filename(), err)
		a.statusBar.SetMessage("Can't save! I/O error: %v", err)
		return nil
	}
	eb.dirty = 0
	a.statusBar.SetMessage("%d bytes written to disk", n)
	return nil
}

// find runs the incremental search prompt. Cancelling puts the cursor and
// scroll position back where they were.
func (a *App) find() error {
	eb := a.buf
	eb.undo.flushCoalesce()
	saved := eb.vp.cursor()
	eb.search.Reset()

	_, err := a.prompt("Search: %s (Use ESC/Arrows/Enter)", func(query string, k terminal.Key) {
		eb.search.Step(eb, query, k)
	})
	if errors.Is(err, ErrPromptCancelled) {
		eb.vp.setCursor(saved)
		return nil
	}
	return err
}

// checkResize picks up a pending SIGWINCH without blocking.
func (a *App) checkResize() {
	if a.screen == nil {
		return
	}
	select {
	case <-a.screen.SigwinchChan():
		if a.screen.Resize() {
			a.buf.vp.Resize(a.screen.Width(), a.screen.Height())
		}
	default:
	}
}

// prompt reads a line of input in the message bar. format receives the
// input so far through %s. The callback, if any, sees every keystroke.
func (a *App) prompt(format string, callback func(string, terminal.Key)) (string, error) {
	var input []rune
	for {
		a.checkResize()
		a.statusBar.SetMessage(format, string(input))
		if err := a.refreshScreen(); err != nil {
			return "", err
		}
		k, err := a.input.ReadKey()
		if err != nil {
			return "", err
		}

		switch k.Type {
		case terminal.KeyNone:
			continue
		case terminal.KeyEnter:
			if len(input) > 0 {
				a.statusBar.ClearMessage()
				if callback != nil {
					callback(string(input), k)
				}
				return string(input), nil
			}
		case terminal.KeyEscape:
			a.statusBar.ClearMessage()
			if callback != nil {
				callback("", k)
			}
			return "", ErrPromptCancelled
		case terminal.KeyBackspace, terminal.KeyDelete:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case terminal.KeyTab:
			input = append(input, '\t')
		case terminal.KeyRune:
			if k.Mod&^terminal.ModShift == 0 {
				input = append(input, k.Rune)
			}
		}
		if callback != nil {
			callback(string(input), k)
		}
	}
}

func (a *App) copySelection() {
	text, ok := a.buf.SelectedText()
	if !ok {
		return
	}
	a.clip.Add(text)
	a.statusBar.SetMessage("Copied %d characters", utf8.RuneCountInString(text))
}

func (a *App) cutSelection() {
	text, ok := a.buf.Cut()
	if !ok {
		return
	}
	a.clip.Add(text)
	a.statusBar.SetMessage("Cut %d characters", utf8.RuneCountInString(text))
}

func (a *App) paste() {
	text, ok := a.clip.Top()
	if !ok {
		return
	}
	a.buf.sel.Clear()
	n := a.buf.Paste(text, a.cfg.Editor.AutoIndent)
	a.statusBar.SetMessage("Pasted %d characters", n)
}

func (a *App) gutterWidth() int {
	if !a.cfg.Editor.ShowLineNumbers {
		return 0
	}
	return a.cfg.Editor.GutterWidth
}

func (a *App) refreshScreen() error {
	eb := a.buf
	gutter := a.gutterWidth()
	eb.vp.Scroll(eb.rows, gutter)

	fileType := eb.rows.FileType
	if fileType == "" {
		fileType = a.cfg.Syntax.DefaultFileType
	}
	frame := a.renderer.RenderFrame(Frame{
		Buf:         eb,
		Gutter:      gutter,
		Welcome:     a.cfg.Welcome(a.Version),
		StatusLeft:  a.statusBar.FormatLeft(eb.Filename(), eb.IsDirty()),
		StatusRight: a.statusBar.FormatRight(fileType, eb.vp.CY, eb.vp.CX),
		Message:     a.statusBar.Message(),
	})
	if _, err := io.WriteString(a.out, frame); err != nil {
		return fmt.Errorf("write screen: %w", err)
	}
	return nil
}
