/*
 * midas
 *
 * Copyright 2026 The midas authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/formerly-a-trickster/midas/util"
)

func TestInterpretRunsAndPrintsToOut(t *testing.T) {
	osReadFile = func(name string) ([]byte, error) {
		return []byte("print 1 + 2;"), nil
	}
	defer func() { osReadFile = os.ReadFile }()

	var out bytes.Buffer
	if err := Interpret("foo.midas", &out, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.TrimSpace(out.String()) != "3" {
		t.Errorf("got %q, want %q", out.String(), "3")
	}
}

func TestInterpretReadErrorIsRenderedToOut(t *testing.T) {
	// spec §6: "No other standard streams are used except for
	// diagnostics on standard output" - Interpret must never need a
	// second writer for errors.
	osReadFile = func(name string) ([]byte, error) {
		return nil, errors.New("no such file")
	}
	defer func() { osReadFile = os.ReadFile }()

	var out bytes.Buffer
	err := Interpret("missing.midas", &out, nil)
	if err == nil {
		t.Fatal("expected an I/O error")
	}
	if !errors.Is(err, util.ErrIO) {
		t.Errorf("expected an ErrIO kind, got %v", err)
	}
	if out.Len() == 0 {
		t.Error("expected the diagnostic to be rendered to the single output writer")
	}
}

func TestInterpretParseErrorIsRenderedToOut(t *testing.T) {
	osReadFile = func(name string) ([]byte, error) {
		return []byte("var = 1;"), nil
	}
	defer func() { osReadFile = os.ReadFile }()

	var out bytes.Buffer
	err := Interpret("bad.midas", &out, nil)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if out.Len() == 0 {
		t.Error("expected the parse diagnostic to be rendered to the single output writer")
	}
}

func TestInterpretRuntimeErrorIsRenderedToOut(t *testing.T) {
	osReadFile = func(name string) ([]byte, error) {
		return []byte("print never_declared;"), nil
	}
	defer func() { osReadFile = os.ReadFile }()

	var out bytes.Buffer
	err := Interpret("runtime.midas", &out, nil)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(out.String(), "never_declared") {
		t.Errorf("expected the offending name in the diagnostic, got %q", out.String())
	}
}
