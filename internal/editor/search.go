// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/search.go
// Summary: Incremental search over rendered row content, driven by
// the prompt callback.

package editor

import (
	"bytes"

	"github.com/Inifomeeo/text-editor/internal/key"
)

// find runs an incremental search prompt. Every query edit restarts
// the scan from the top; arrow keys step between matches. Cancelling
// puts the cursor and viewport back where they were.
func (e *Editor) find() error {
	savedCx, savedCy := e.cx, e.cy
	savedColOff, savedRowOff := e.colOff, e.rowOff

	lastMatch := -1
	direction := 1

	query, err := e.prompt("Search: %s (Use ESC/Arrows/Enter)", func(q []byte, k key.Key) {
		switch k {
		case key.Enter, key.Escape:
			lastMatch = -1
			direction = 1
			return
		case key.ArrowRight, key.ArrowDown:
			direction = 1
		case key.ArrowLeft, key.ArrowUp:
			direction = -1
		default:
			lastMatch = -1
			direction = 1
		}

		if lastMatch == -1 {
			direction = 1
		}
		current := lastMatch
		for i := 0; i < e.doc.NumRows(); i++ {
			current += direction
			if current == -1 {
				current = e.doc.NumRows() - 1
			} else if current == e.doc.NumRows() {
				current = 0
			}

			row := e.doc.Row(current)
			idx := bytes.Index(row.Render, q)
			if idx < 0 {
				continue
			}
			lastMatch = current
			e.cy = current
			e.cx = row.RxToCx(idx)
			// Past-the-end offset; the next scroll pass clamps it so
			// the match row lands inside the frame.
			e.rowOff = e.doc.NumRows()
			break
		}
	})
	if err != nil {
		return err
	}

	if query == nil {
		e.cx, e.cy = savedCx, savedCy
		e.colOff, e.rowOff = savedColOff, savedRowOff
	}
	return nil
}
