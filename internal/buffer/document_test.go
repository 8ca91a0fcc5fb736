// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package buffer

import (
	"bytes"
	"testing"
)

// Helper to build a document from string lines.
func newDocWithLines(lines ...string) *Document {
	d := NewDocument()
	raw := make([][]byte, len(lines))
	for i, ln := range lines {
		raw[i] = []byte(ln)
	}
	d.Load(raw)
	return d
}

func docLines(d *Document) []string {
	out := make([]string, 0, d.NumRows())
	for i := 0; i < d.NumRows(); i++ {
		out = append(out, string(d.Row(i).Chars))
	}
	return out
}

func sameLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// === Load / Serialize Tests ===

func TestLoadRoundTrip(t *testing.T) {
	tests := [][]string{
		{"hello", "world"},
		{""},
		{"", "", ""},
		{"tabs\there", "  indented", "trailing space "},
		{"single"},
	}
	for _, lines := range tests {
		d := newDocWithLines(lines...)
		want := []byte{}
		for _, ln := range lines {
			want = append(want, ln...)
			want = append(want, '\n')
		}
		if got := d.Contents(); !bytes.Equal(got, want) {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}

func TestEmptyDocument(t *testing.T) {
	d := NewDocument()
	if d.NumRows() != 0 {
		t.Errorf("Expected 0 rows, got %d", d.NumRows())
	}
	if len(d.Contents()) != 0 {
		t.Errorf("Expected empty contents, got %q", d.Contents())
	}
	if d.Dirty() {
		t.Error("Expected new document to be clean")
	}
}

func TestLoadResetsDirty(t *testing.T) {
	d := newDocWithLines("one")
	d.InsertChar(0, 0, 'x')
	if !d.Dirty() {
		t.Fatal("Expected document dirty after insert")
	}
	d.Load([][]byte{[]byte("fresh")})
	if d.Dirty() {
		t.Error("Expected load to clear the dirty state")
	}
}

// === Row Insert / Delete Tests ===

func TestInsertRowShiftsFollowing(t *testing.T) {
	d := newDocWithLines("a", "c")
	d.InsertRow(1, []byte("b"))
	if !sameLines(docLines(d), []string{"a", "b", "c"}) {
		t.Errorf("Expected [a b c], got %v", docLines(d))
	}
}

func TestInsertRowOutOfRangeIsNoop(t *testing.T) {
	d := newDocWithLines("a")
	d.InsertRow(-1, []byte("x"))
	d.InsertRow(5, []byte("x"))
	if d.NumRows() != 1 {
		t.Errorf("Expected 1 row, got %d", d.NumRows())
	}
}

func TestDeleteRow(t *testing.T) {
	d := newDocWithLines("a", "b", "c")
	d.DeleteRow(1)
	if !sameLines(docLines(d), []string{"a", "c"}) {
		t.Errorf("Expected [a c], got %v", docLines(d))
	}
	d.DeleteRow(7)
	d.DeleteRow(-1)
	if d.NumRows() != 2 {
		t.Errorf("Expected out-of-range deletes to be no-ops, got %d rows", d.NumRows())
	}
}

// === Cursor Edit Tests ===

func TestInsertCharAdvancesCursor(t *testing.T) {
	d := newDocWithLines("hello world", "foo")
	x, y := d.InsertChar(5, 0, 'X')
	if string(d.Row(0).Chars) != "helloX world" {
		t.Errorf("Expected 'helloX world', got %q", d.Row(0).Chars)
	}
	if x != 6 || y != 0 {
		t.Errorf("Expected cursor (6,0), got (%d,%d)", x, y)
	}
}

func TestInsertCharOnVirtualRow(t *testing.T) {
	d := NewDocument()
	x, y := d.InsertChar(0, 0, 'a')
	if d.NumRows() != 1 || string(d.Row(0).Chars) != "a" {
		t.Errorf("Expected a single row 'a', got %v", docLines(d))
	}
	if x != 1 || y != 0 {
		t.Errorf("Expected cursor (1,0), got (%d,%d)", x, y)
	}
	if !d.Dirty() {
		t.Error("Expected document dirty after typing")
	}
}

func TestInsertNewlineAtColumnZero(t *testing.T) {
	d := newDocWithLines("abc")
	x, y := d.InsertNewline(0, 0)
	if !sameLines(docLines(d), []string{"", "abc"}) {
		t.Errorf("Expected ['' abc], got %v", docLines(d))
	}
	if x != 0 || y != 1 {
		t.Errorf("Expected cursor (0,1), got (%d,%d)", x, y)
	}
}

func TestInsertNewlineSplitsRow(t *testing.T) {
	d := newDocWithLines("hello world")
	x, y := d.InsertNewline(5, 0)
	if !sameLines(docLines(d), []string{"hello", " world"}) {
		t.Errorf("Expected [hello ' world'], got %v", docLines(d))
	}
	if x != 0 || y != 1 {
		t.Errorf("Expected cursor (0,1), got (%d,%d)", x, y)
	}
	if len(d.Row(0).Chars) != 5 || len(d.Row(1).Chars) != 6 {
		t.Errorf("Expected split lengths 5 and 6, got %d and %d",
			len(d.Row(0).Chars), len(d.Row(1).Chars))
	}
}

func TestInsertNewlineAtEndOfRow(t *testing.T) {
	d := newDocWithLines("abc")
	x, y := d.InsertNewline(3, 0)
	if !sameLines(docLines(d), []string{"abc", ""}) {
		t.Errorf("Expected [abc ''], got %v", docLines(d))
	}
	if x != 0 || y != 1 {
		t.Errorf("Expected cursor (0,1), got (%d,%d)", x, y)
	}
}

func TestDeleteCharWithinRow(t *testing.T) {
	d := newDocWithLines("abc")
	x, y := d.DeleteChar(2, 0)
	if string(d.Row(0).Chars) != "ac" {
		t.Errorf("Expected 'ac', got %q", d.Row(0).Chars)
	}
	if x != 1 || y != 0 {
		t.Errorf("Expected cursor (1,0), got (%d,%d)", x, y)
	}
}

func TestDeleteCharMergesRows(t *testing.T) {
	d := newDocWithLines("hello", "world")
	x, y := d.DeleteChar(0, 1)
	if !sameLines(docLines(d), []string{"helloworld"}) {
		t.Errorf("Expected [helloworld], got %v", docLines(d))
	}
	if x != 5 || y != 0 {
		t.Errorf("Expected cursor at pre-merge length (5,0), got (%d,%d)", x, y)
	}
}

func TestDeleteCharNoopAtOrigin(t *testing.T) {
	d := newDocWithLines("abc")
	x, y := d.DeleteChar(0, 0)
	if string(d.Row(0).Chars) != "abc" || x != 0 || y != 0 {
		t.Errorf("Expected origin delete to be a no-op, got %q cursor (%d,%d)",
			d.Row(0).Chars, x, y)
	}
}

func TestDeleteCharNoopOnVirtualRow(t *testing.T) {
	d := newDocWithLines("abc")
	x, y := d.DeleteChar(0, 1)
	if d.NumRows() != 1 || x != 0 || y != 1 {
		t.Errorf("Expected virtual-row delete to be a no-op, got %d rows cursor (%d,%d)",
			d.NumRows(), x, y)
	}
}

// === Dirty Tracking Tests ===

func TestDirtyTransitions(t *testing.T) {
	d := newDocWithLines("abc")
	if d.Dirty() {
		t.Fatal("Expected freshly loaded document to be clean")
	}
	d.InsertChar(0, 0, 'x')
	d.InsertNewline(1, 0)
	d.DeleteChar(0, 1)
	if !d.Dirty() {
		t.Fatal("Expected document dirty after edits")
	}
	d.MarkClean()
	if d.Dirty() {
		t.Error("Expected MarkClean to clear the dirty state")
	}
	d.DeleteRow(0)
	if !d.Dirty() {
		t.Error("Expected structural mutation to dirty the document")
	}
}
