// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/screen.go
// Summary: Frame composition: scroll fix-up, visible document rows,
// the status and message bars, flushed to the terminal as one write.

package editor

import (
	"bytes"
	"fmt"
	"time"
)

// scroll recomputes the rendered cursor column and drags the offsets
// so the cursor stays inside the frame. Idempotent while the cursor
// does not move.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < e.doc.NumRows() {
		e.rx = e.doc.Row(e.cy).CxToRx(e.cx)
	}

	if e.cy < e.rowOff {
		e.rowOff = e.cy
	}
	if e.cy >= e.rowOff+e.screenRows {
		e.rowOff = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOff {
		e.colOff = e.rx
	}
	if e.rx >= e.colOff+e.screenCols {
		e.colOff = e.rx - e.screenCols + 1
	}
}

// refreshScreen builds the next frame into one buffer: cursor hidden,
// home, document rows, both bars, cursor repositioned and shown again.
// A single write keeps the update atomic on screen.
func (e *Editor) refreshScreen() error {
	e.scroll()

	var ab bytes.Buffer
	ab.WriteString("\x1b[?25l")
	ab.WriteString("\x1b[H")

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	fmt.Fprintf(&ab, "\x1b[%d;%dH", (e.cy-e.rowOff)+1, (e.rx-e.colOff)+1)
	ab.WriteString("\x1b[?25h")

	_, err := e.term.Write(ab.Bytes())
	return err
}

// drawRows emits the visible text area: rendered row slices where the
// document covers the frame, tilde filler below it, and the welcome
// banner a third of the way down while the document is empty.
func (e *Editor) drawRows(ab *bytes.Buffer) {
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOff
		if fileRow >= e.doc.NumRows() {
			if e.doc.NumRows() == 0 && y == e.screenRows/3 {
				e.drawWelcome(ab)
			} else {
				ab.WriteByte('~')
			}
		} else {
			render := e.doc.Row(fileRow).Render
			length := len(render) - e.colOff
			if length < 0 {
				length = 0
			}
			if length > e.screenCols {
				length = e.screenCols
			}
			if length > 0 {
				ab.Write(render[e.colOff : e.colOff+length])
			}
		}

		ab.WriteString("\x1b[K")
		ab.WriteString("\r\n")
	}
}

func (e *Editor) drawWelcome(ab *bytes.Buffer) {
	welcome := fmt.Sprintf("texedit -- version %s", Version)
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		ab.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		ab.WriteByte(' ')
	}
	ab.WriteString(welcome)
}

// drawStatusBar emits the reverse-video bar: file name, line count,
// and modified marker on the left, cursor line over total on the
// right when it fits.
func (e *Editor) drawStatusBar(ab *bytes.Buffer) {
	ab.WriteString("\x1b[7m")

	name := e.doc.Path
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if e.doc.Dirty() {
		modified = "(modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", name, e.doc.NumRows(), modified)
	rstatus := fmt.Sprintf("%d/%d", e.cy+1, e.doc.NumRows())
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}
	ab.WriteString(status)
	for length := len(status); length < e.screenCols; length++ {
		if e.screenCols-length == len(rstatus) {
			ab.WriteString(rstatus)
			break
		}
		ab.WriteByte(' ')
	}

	ab.WriteString("\x1b[m")
	ab.WriteString("\r\n")
}

// drawMessageBar emits the transient status message while it is fresh.
func (e *Editor) drawMessageBar(ab *bytes.Buffer) {
	ab.WriteString("\x1b[K")
	msg := e.statusMsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if len(msg) > 0 && time.Since(e.statusMsgTime) < statusTimeout {
		ab.WriteString(msg)
	}
}
