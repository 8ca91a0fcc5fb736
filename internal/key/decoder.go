// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/key/decoder.go
// Summary: Assembles the raw terminal byte stream into key events.
// Notes: Escape sequences are disambiguated by the source read timeout.

package key

// ByteSource yields single bytes from the terminal. ok is false when
// the short read timeout expired with nothing available; err is
// reserved for unrecoverable read failures.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decoder turns bytes from a ByteSource into Key events, one event per
// ReadKey call.
type Decoder struct {
	src ByteSource
}

func NewDecoder(src ByteSource) *Decoder {
	return &Decoder{src: src}
}

// ReadKey decodes the next key event. A timeout before the first byte
// yields None. A timeout inside an escape sequence yields Escape, the
// same event a lone escape keypress produces.
func (d *Decoder) ReadKey() (Key, error) {
	b, ok, err := d.src.ReadByte()
	if err != nil {
		return None, err
	}
	if !ok {
		return None, nil
	}
	if b != 0x1b {
		return Key(b), nil
	}
	return d.readEscape()
}

// readEscape decodes the remainder of a sequence after a leading ESC.
// Timeouts and unrecognized bytes all collapse to the bare Escape key.
func (d *Decoder) readEscape() (Key, error) {
	seq0, ok, err := d.src.ReadByte()
	if err != nil {
		return None, err
	}
	if !ok {
		return Escape, nil
	}
	seq1, ok, err := d.src.ReadByte()
	if err != nil {
		return None, err
	}
	if !ok {
		return Escape, nil
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok, err := d.src.ReadByte()
			if err != nil {
				return None, err
			}
			if !ok || seq2 != '~' {
				return Escape, nil
			}
			switch seq1 {
			case '1', '7':
				return Home, nil
			case '3':
				return Delete, nil
			case '4', '8':
				return End, nil
			case '5':
				return PageUp, nil
			case '6':
				return PageDown, nil
			}
			return Escape, nil
		}
		switch seq1 {
		case 'A':
			return ArrowUp, nil
		case 'B':
			return ArrowDown, nil
		case 'C':
			return ArrowRight, nil
		case 'D':
			return ArrowLeft, nil
		case 'H':
			return Home, nil
		case 'F':
			return End, nil
		}
		return Escape, nil
	case 'O':
		switch seq1 {
		case 'H':
			return Home, nil
		case 'F':
			return End, nil
		}
		return Escape, nil
	}
	return Escape, nil
}
