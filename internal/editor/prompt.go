// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/editor/prompt.go
// Summary: Modal single-line input over the status message, shared by
// save-as and incremental search.

package editor

import "github.com/Inifomeeo/text-editor/internal/key"

// promptCallback observes the prompt buffer after every keystroke,
// including the final Enter or Escape.
type promptCallback func(buf []byte, k key.Key)

// prompt collects one line of input modally. The format receives the
// buffer on every redraw. It returns nil when cancelled with Escape.
// The outer loop is suspended while prompt runs; rendering and resize
// handling continue through the same paths.
func (e *Editor) prompt(format string, cb promptCallback) ([]byte, error) {
	buf := make([]byte, 0, 128)
	for {
		e.SetStatusMessage(format, buf)
		if err := e.refreshScreen(); err != nil {
			return nil, err
		}

		k, err := e.dec.ReadKey()
		if err != nil {
			return nil, err
		}
		if k == key.None {
			e.checkResize()
			continue
		}

		switch {
		case k == key.Delete || k == key.Ctrl('h') || k == key.Backspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case k == key.Escape:
			e.SetStatusMessage("")
			if cb != nil {
				cb(buf, k)
			}
			return nil, nil
		case k == key.Enter:
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if cb != nil {
					cb(buf, k)
				}
				return buf, nil
			}
		case key.Printable(k):
			buf = append(buf, byte(k))
		}

		if cb != nil {
			cb(buf, k)
		}
	}
}
