// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/buffer/row.go
// Summary: One document row and its tab-expanded render projection.
// Notes: Render is recomputed after every raw mutation; it is never
// read while stale.

package buffer

// TabStop is the fixed tab width of the render projection.
const TabStop = 8

// Row holds one line of text. Chars is the raw content as stored on
// disk. Render is the display form, with every tab expanded to spaces
// reaching the next multiple of TabStop and all other bytes mapped 1:1.
type Row struct {
	Chars  []byte
	Render []byte
}

// NewRow builds a row from a copy of chars.
func NewRow(chars []byte) *Row {
	r := &Row{Chars: append([]byte(nil), chars...)}
	r.updateRender()
	return r
}

// updateRender rebuilds the display projection from the raw content.
func (r *Row) updateRender() {
	tabs := 0
	for _, c := range r.Chars {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(r.Chars)+tabs*(TabStop-1))
	for _, c := range r.Chars {
		if c != '\t' {
			render = append(render, c)
			continue
		}
		render = append(render, ' ')
		for len(render)%TabStop != 0 {
			render = append(render, ' ')
		}
	}
	r.Render = render
}

// InsertChar splices c into the raw content at column at, shifting the
// rest right. An out-of-range column appends instead.
func (r *Row) InsertChar(at int, c byte) {
	if at < 0 || at > len(r.Chars) {
		at = len(r.Chars)
	}
	r.Chars = append(r.Chars, 0)
	copy(r.Chars[at+1:], r.Chars[at:])
	r.Chars[at] = c
	r.updateRender()
}

// DelChar removes the byte at column at. No-op out of range.
func (r *Row) DelChar(at int) {
	if at < 0 || at >= len(r.Chars) {
		return
	}
	copy(r.Chars[at:], r.Chars[at+1:])
	r.Chars = r.Chars[:len(r.Chars)-1]
	r.updateRender()
}

// AppendChars adds s to the end of the raw content.
func (r *Row) AppendChars(s []byte) {
	r.Chars = append(r.Chars, s...)
	r.updateRender()
}

// CxToRx maps a raw column to its rendered column. Tabs before cx add
// the width needed to reach the next tab stop; every other byte adds
// one. Monotonic non-decreasing in cx.
func (r *Row) CxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.Chars); j++ {
		if r.Chars[j] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RxToCx maps a rendered column back to the raw column whose rendered
// span covers it. Columns inside a tab's padding resolve to that tab.
// Past-the-end rendered columns resolve to the raw length.
func (r *Row) RxToCx(rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(r.Chars); cx++ {
		if r.Chars[cx] == '\t' {
			curRx += (TabStop - 1) - (curRx % TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return cx
}
