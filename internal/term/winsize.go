// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/term/winsize.go
// Summary: Window size fallback via a cursor position report.

package term

import (
	"fmt"
	"io"
)

// fallbackSize measures the terminal by moving the cursor to the
// bottom-right corner and requesting a cursor position report. Only
// meaningful while the terminal is in raw mode.
func fallbackSize(in io.Reader, out io.Writer) (rows, cols int, err error) {
	if _, err := out.Write([]byte("\x1b[999C\x1b[999B")); err != nil {
		return 0, 0, fmt.Errorf("position cursor: %w", err)
	}
	if _, err := out.Write([]byte("\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("query cursor position: %w", err)
	}

	reply := make([]byte, 0, 32)
	var buf [1]byte
	for len(reply) < 31 {
		n, rerr := in.Read(buf[:])
		if n == 0 || rerr != nil {
			break
		}
		if buf[0] == 'R' {
			break
		}
		reply = append(reply, buf[0])
	}
	return parseCursorReport(reply)
}

// parseCursorReport extracts rows and columns from a reply of the form
// ESC [ rows ; cols, the terminating R already consumed.
func parseCursorReport(reply []byte) (rows, cols int, err error) {
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, fmt.Errorf("malformed cursor report %q", reply)
	}
	if _, serr := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); serr != nil {
		return 0, 0, fmt.Errorf("malformed cursor report %q: %w", reply, serr)
	}
	return rows, cols, nil
}
