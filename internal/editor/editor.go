// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/editor.go
// Summary: The editor aggregate: session state, key dispatch, cursor
// movement, saving, and the main read/process/render loop.

package editor

import (
	"fmt"
	"log"
	"time"

	"github.com/Inifomeeo/text-editor/internal/buffer"
	"github.com/Inifomeeo/text-editor/internal/key"
)

// Version appears in the welcome banner shown over an empty document.
const Version = "0.1.0"

// quitConfirmations is how many extra Ctrl-Q presses an unsaved
// document demands before the editor quits.
const quitConfirmations = 3

// statusTimeout bounds how long a status message stays visible.
const statusTimeout = 5 * time.Second

// Terminal is the live terminal session the editor drives. The
// session in internal/term satisfies it; tests substitute a scripted
// fake.
type Terminal interface {
	ReadByte() (b byte, ok bool, err error)
	Write(p []byte) (int, error)
	Size() (rows, cols int, err error)
	ResizePending() bool
}

// Storage loads and persists document bytes.
type Storage interface {
	ReadLines(path string) ([][]byte, error)
	WriteFile(path string, data []byte) (int, error)
}

// Editor holds the full mutable state of a session: document, cursor,
// viewport, transient status, and the capabilities it runs against.
// All mutation happens on the single loop goroutine.
type Editor struct {
	term  Terminal
	store Storage
	doc   *buffer.Document
	dec   *key.Decoder

	// cx, cy index the cursor in raw document space; rx is the
	// derived column in rendered space.
	cx, cy int
	rx     int

	rowOff int
	colOff int

	// screenRows counts the text area only; the status and message
	// bars live below it.
	screenRows int
	screenCols int

	statusMsg     string
	statusMsgTime time.Time

	quitsLeft int
}

// New builds an editor bound to the given terminal and storage and
// takes the initial geometry. Resizes are picked up between
// keystrokes.
func New(t Terminal, st Storage) (*Editor, error) {
	e := &Editor{
		term:      t,
		store:     st,
		doc:       buffer.NewDocument(),
		dec:       key.NewDecoder(t),
		quitsLeft: quitConfirmations,
	}
	if err := e.updateSize(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Editor) updateSize() error {
	rows, cols, err := e.term.Size()
	if err != nil {
		return fmt.Errorf("query window size: %w", err)
	}
	if rows < 3 || cols < 1 {
		return fmt.Errorf("window too small: %dx%d", rows, cols)
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	return nil
}

// Open loads path into the document and remembers it as the save
// target.
func (e *Editor) Open(path string) error {
	lines, err := e.store.ReadLines(path)
	if err != nil {
		return err
	}
	e.doc.Load(lines)
	e.doc.Path = path
	return nil
}

// SetStatusMessage replaces the transient message under the status
// bar. It expires after five seconds.
func (e *Editor) SetStatusMessage(format string, args ...interface{}) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusMsgTime = time.Now()
}

// Run renders, reads one key, dispatches it, and repeats. It returns
// nil on a clean quit and an error once the terminal is unusable.
func (e *Editor) Run() error {
	for {
		if err := e.refreshScreen(); err != nil {
			return err
		}
		k, err := e.dec.ReadKey()
		if err != nil {
			return err
		}
		if k == key.None {
			e.checkResize()
			continue
		}
		quit, err := e.processKey(k)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// checkResize picks up a window size change between keystrokes; the
// next loop pass redraws at the new geometry.
func (e *Editor) checkResize() {
	if !e.term.ResizePending() {
		return
	}
	if err := e.updateSize(); err != nil {
		log.Printf("Editor: resize ignored: %v", err)
	}
}

// processKey applies one key event to the editor state. It reports
// quit=true when the session should end.
func (e *Editor) processKey(k key.Key) (quit bool, err error) {
	switch k {
	case key.Enter:
		e.cx, e.cy = e.doc.InsertNewline(e.cx, e.cy)

	case key.Ctrl('q'):
		if e.doc.Dirty() && e.quitsLeft > 0 {
			e.SetStatusMessage("WARNING!!! File has unsaved changes. "+
				"Press Ctrl-Q %d more times to quit.", e.quitsLeft)
			e.quitsLeft--
			return false, nil
		}
		return true, nil

	case key.Ctrl('s'):
		if err := e.save(); err != nil {
			return false, err
		}

	case key.Home:
		e.cx = 0

	case key.End:
		if e.cy < e.doc.NumRows() {
			e.cx = len(e.doc.Row(e.cy).Chars)
		}

	case key.Ctrl('f'):
		if err := e.find(); err != nil {
			return false, err
		}

	case key.Backspace, key.Ctrl('h'), key.Delete:
		if k == key.Delete {
			e.moveCursor(key.ArrowRight)
		}
		e.cx, e.cy = e.doc.DeleteChar(e.cx, e.cy)

	case key.PageUp, key.PageDown:
		if k == key.PageUp {
			e.cy = e.rowOff
		} else {
			e.cy = e.rowOff + e.screenRows - 1
			if e.cy > e.doc.NumRows() {
				e.cy = e.doc.NumRows()
			}
		}
		move := key.ArrowDown
		if k == key.PageUp {
			move = key.ArrowUp
		}
		for times := e.screenRows; times > 0; times-- {
			e.moveCursor(move)
		}

	case key.ArrowUp, key.ArrowDown, key.ArrowLeft, key.ArrowRight:
		e.moveCursor(k)

	case key.Ctrl('l'), key.Escape:
		// absorbed

	default:
		e.cx, e.cy = e.doc.InsertChar(e.cx, e.cy, byte(k))
	}

	e.quitsLeft = quitConfirmations
	return false, nil
}

// moveCursor applies one arrow key. Left at column 0 wraps to the end
// of the previous row; right at the end of a row wraps to the start of
// the next. Vertical moves snap the column into the landing row.
func (e *Editor) moveCursor(k key.Key) {
	row := e.doc.Row(e.cy)

	switch k {
	case key.ArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.doc.Row(e.cy).Chars)
		}
	case key.ArrowRight:
		if row != nil && e.cx < len(row.Chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.Chars) {
			e.cy++
			e.cx = 0
		}
	case key.ArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case key.ArrowDown:
		if e.cy < e.doc.NumRows() {
			e.cy++
		}
	}

	rowLen := 0
	if row = e.doc.Row(e.cy); row != nil {
		rowLen = len(row.Chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// save writes the document to its path, prompting for one first when
// the document is unnamed. Write failures stay in the session as a
// status message; only prompt read failures propagate.
func (e *Editor) save() error {
	if e.doc.Path == "" {
		name, err := e.prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if name == nil {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		e.doc.Path = string(name)
	}

	data := e.doc.Contents()
	n, err := e.store.WriteFile(e.doc.Path, data)
	if err != nil {
		log.Printf("Editor: save %s failed: %v", e.doc.Path, err)
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}
	e.doc.MarkClean()
	e.SetStatusMessage("%d bytes written to disk", n)
	return nil
}
