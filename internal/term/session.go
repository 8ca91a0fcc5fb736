// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/term/session.go
// Summary: Raw-mode terminal session: timeout-bounded byte reads,
// frame writes, geometry queries, and resize notices.
// Notes: Linux termios. VMIN=0 VTIME=1 gives the 100ms inter-byte
// timeout the key decoder needs to tell a lone ESC from a sequence.

package term

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns the controlling terminal for the life of the editor.
// All terminal reads and writes go through it, and it is the only
// place that touches termios state.
type Session struct {
	in    *os.File
	out   *os.File
	saved *unix.Termios
	winch chan os.Signal
}

// NewSession wraps the given terminal files and subscribes to window
// resize signals.
func NewSession(in, out *os.File) *Session {
	s := &Session{in: in, out: out, winch: make(chan os.Signal, 1)}
	signal.Notify(s.winch, syscall.SIGWINCH)
	return s
}

// EnterRawMode switches the input terminal to non-canonical,
// non-echoing mode with a short read timeout, keeping the previous
// state for Restore.
func (s *Session) EnterRawMode() error {
	fd := int(s.in.Fd())
	prev, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get terminal attributes: %w", err)
	}
	raw := *prev
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, unix.TCSETSF, &raw); err != nil {
		return fmt.Errorf("set raw mode: %w", err)
	}
	s.saved = prev
	return nil
}

// Restore puts the terminal back into the state EnterRawMode saved.
// Safe to call more than once.
func (s *Session) Restore() error {
	if s.saved == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(int(s.in.Fd()), unix.TCSETSF, s.saved); err != nil {
		return fmt.Errorf("restore terminal attributes: %w", err)
	}
	s.saved = nil
	return nil
}

// Close drops the resize subscription and restores the terminal.
func (s *Session) Close() error {
	signal.Stop(s.winch)
	return s.Restore()
}

// ReadByte reads one byte from the terminal. ok is false when the read
// timeout expired with nothing pending.
func (s *Session) ReadByte() (byte, bool, error) {
	var buf [1]byte
	n, err := unix.Read(int(s.in.Fd()), buf[:])
	if err != nil {
		if err == unix.EAGAIN || err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read key: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// Write sends a rendered frame to the terminal.
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// Size returns the terminal geometry as rows and columns. When the
// direct query fails it parks the cursor bottom-right and asks the
// terminal to report the cursor position instead.
func (s *Session) Size() (rows, cols int, err error) {
	w, h, err := term.GetSize(int(s.out.Fd()))
	if err == nil && w > 0 {
		return h, w, nil
	}
	return fallbackSize(s.in, s.out)
}

// ResizePending reports and consumes a window resize notice. Called
// only from the editor loop between keystrokes, never concurrently.
func (s *Session) ResizePending() bool {
	select {
	case <-s.winch:
		return true
	default:
		return false
	}
}
