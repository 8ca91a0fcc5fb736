// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/buffer/document.go
// Summary: The edited document: ordered rows, dirty bookkeeping, and
// the cursor-level editing operations built on them.

package buffer

// Document owns the ordered rows of the buffer being edited, a dirty
// counter covering every mutation since the last load or save, and the
// backing file path when one is known.
type Document struct {
	rows  []*Row
	dirty int

	// Path is the file this document loads from and saves to. Empty
	// for an unnamed document.
	Path string
}

func NewDocument() *Document {
	return &Document{}
}

// NumRows returns the row count, not including the virtual row past
// the end that the cursor may rest on.
func (d *Document) NumRows() int { return len(d.rows) }

// Row returns row i, or nil when i is out of range.
func (d *Document) Row(i int) *Row {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}

// Dirty reports whether the document has unsaved mutations.
func (d *Document) Dirty() bool { return d.dirty > 0 }

// MarkClean clears the dirty state after a successful save.
func (d *Document) MarkClean() { d.dirty = 0 }

// InsertRow places a new row built from chars at index at, shifting
// later rows down. No-op when at is outside [0, NumRows].
func (d *Document) InsertRow(at int, chars []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = NewRow(chars)
	d.dirty++
}

// DeleteRow removes row at, shifting later rows up. No-op out of range.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty++
}

// InsertChar inserts c at cursor position (x, y) and returns the
// advanced cursor. Typing on the virtual row past the last line
// materializes an empty row first.
func (d *Document) InsertChar(x, y int, c byte) (int, int) {
	if y == len(d.rows) {
		d.InsertRow(len(d.rows), nil)
	}
	d.rows[y].InsertChar(x, c)
	d.dirty++
	return x + 1, y
}

// InsertNewline breaks the line at the cursor. At column 0 an empty
// row is inserted above; otherwise the row splits, the left part
// keeping the original slot. The cursor lands on column 0 of the next
// row.
func (d *Document) InsertNewline(x, y int) (int, int) {
	if x == 0 {
		d.InsertRow(y, nil)
	} else {
		row := d.rows[y]
		d.InsertRow(y+1, row.Chars[x:])
		row.Chars = row.Chars[:x]
		row.updateRender()
	}
	return 0, y + 1
}

// DeleteChar removes the character left of the cursor and returns the
// resulting cursor. At column 0 the row merges onto the end of the
// previous one and the cursor lands at that row's pre-merge length.
// No-op at the document origin or on the virtual row.
func (d *Document) DeleteChar(x, y int) (int, int) {
	if y == len(d.rows) {
		return x, y
	}
	if x == 0 && y == 0 {
		return x, y
	}
	if x > 0 {
		d.rows[y].DelChar(x - 1)
		d.dirty++
		return x - 1, y
	}
	prev := d.rows[y-1]
	newX := len(prev.Chars)
	prev.AppendChars(d.rows[y].Chars)
	d.DeleteRow(y)
	d.dirty++
	return newX, y - 1
}

// Contents serializes every row followed by one line feed, the on-disk
// form of the document.
func (d *Document) Contents() []byte {
	total := 0
	for _, r := range d.rows {
		total += len(r.Chars) + 1
	}
	buf := make([]byte, 0, total)
	for _, r := range d.rows {
		buf = append(buf, r.Chars...)
		buf = append(buf, '\n')
	}
	return buf
}

// Load replaces the document with the given lines, already stripped of
// line endings, and clears the dirty state.
func (d *Document) Load(lines [][]byte) {
	d.rows = make([]*Row, 0, len(lines))
	for _, ln := range lines {
		d.rows = append(d.rows, NewRow(ln))
	}
	d.dirty = 0
}
