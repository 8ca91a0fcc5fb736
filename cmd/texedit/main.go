// Copyright © 2026 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texedit/main.go
// Summary: Process entry: argument handling, logging setup, terminal
// session lifecycle, and editor wiring.
// Usage: texedit [file]

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/Inifomeeo/text-editor/internal/editor"
	"github.com/Inifomeeo/text-editor/internal/storage"
	tty "github.com/Inifomeeo/text-editor/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [file]\n", os.Args[0])
		return fmt.Errorf("too many arguments")
	}

	setupLogging()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}

	sess := tty.NewSession(os.Stdin, os.Stdout)
	if err := sess.EnterRawMode(); err != nil {
		return err
	}
	defer sess.Close()

	ed, err := editor.New(sess, storage.NewDisk())
	if err != nil {
		return err
	}
	if len(os.Args) == 2 {
		if err := ed.Open(os.Args[1]); err != nil {
			return err
		}
	}
	ed.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	log.Println("texedit: session started")
	err = ed.Run()

	// Leave a clean screen behind on both exit paths.
	sess.Write([]byte("\x1b[2J\x1b[H"))
	if err != nil {
		log.Printf("texedit: session failed: %v", err)
		return err
	}
	log.Println("texedit: session ended")
	return nil
}

// setupLogging sends diagnostics to the file named by TEXEDIT_LOG.
// The editor owns the terminal, so without it logging is discarded.
func setupLogging() {
	path := os.Getenv("TEXEDIT_LOG")
	if path == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}
