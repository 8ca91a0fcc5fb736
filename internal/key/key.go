// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/key/key.go
// Summary: Logical key events delivered to the editor loop.

package key

// Key is one logical key event. Plain bytes decode to their own value,
// a few ASCII controls have named constants, and keys that arrive as
// escape sequences use synthetic values above the byte range.
type Key int

const (
	// None means the read timeout expired before any byte arrived.
	None Key = 0

	Enter     Key = 13
	Escape    Key = 27
	Backspace Key = 127
)

// Synthetic keys decoded from multi-byte escape sequences.
const (
	ArrowLeft Key = iota + 1000
	ArrowRight
	ArrowUp
	ArrowDown
	Delete
	Home
	End
	PageUp
	PageDown
)

// Ctrl returns the key a raw-mode terminal delivers for Ctrl plus the
// given letter.
func Ctrl(c byte) Key { return Key(c & 0x1f) }

// Printable reports whether k is a plain text byte, excluding controls
// and anything outside the 7-bit range.
func Printable(k Key) bool { return k >= 32 && k < 127 }
