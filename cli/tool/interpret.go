/*
 * midas
 *
 * Copyright 2026 The midas authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package tool implements the midas command line interpreter: reading a
single source file, running it, and rendering any error (spec §6).
*/
package tool

import (
	"io"
	"os"

	"github.com/formerly-a-trickster/midas/interpreter"
	"github.com/formerly-a-trickster/midas/parser"
	"github.com/formerly-a-trickster/midas/util"
)

/*
osReadFile is a local copy of os.ReadFile (used for unit tests).
*/
var osReadFile = os.ReadFile

/*
Interpret reads, parses, and runs the midas program in the file named
path. Print output and diagnostics are both written to out: spec §6
names standard output as the only stream midas uses. It returns the
error, if any, so the caller can choose the process exit code; it
never calls os.Exit itself.
*/
func Interpret(path string, out io.Writer, log util.Logger) error {
	source, err := osReadFile(path)
	if err != nil {
		ioErr := util.NewRuntimeError(util.ErrIO, err.Error(), util.Position{Source: path})
		RenderError(out, ioErr)
		return ioErr
	}

	prog, err := parser.Parse(path, string(source))
	if err != nil {
		RenderError(out, err)
		return err
	}

	ip := interpreter.New(path, out, log)
	if err := ip.Run(prog); err != nil {
		RenderError(out, err)
		return err
	}

	return nil
}
