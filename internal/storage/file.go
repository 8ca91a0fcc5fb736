// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/storage/file.go
// Summary: Disk access for the editor: line-oriented reads and whole
// file writes.

package storage

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Disk reads and writes document files on the local filesystem.
type Disk struct{}

func NewDisk() *Disk {
	return &Disk{}
}

// ReadLines loads path and returns its lines with trailing LF and CR
// bytes stripped. A final line without a newline is still returned.
func (d *Disk) ReadLines(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	var lines [][]byte
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
}

// WriteFile replaces path with data, creating it if needed, and
// returns the number of bytes written.
func (d *Disk) WriteFile(path string, data []byte) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, err
	}
	n, err := f.Write(data)
	if err != nil {
		f.Close()
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, err
	}
	return n, nil
}
