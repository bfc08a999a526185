/*
 * midas
 *
 * Copyright 2026 The midas authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"fmt"
	"os"

	"github.com/formerly-a-trickster/midas/cli/tool"
	"github.com/formerly-a-trickster/midas/config"
	"github.com/formerly-a-trickster/midas/util"
)

func main() {
	os.Exit(run(os.Args))
}

/*
run implements the single-positional-argument CLI contract of spec §6:
exactly one argument names the source file to execute. Any other number
of arguments, or any error while running it, exits 1; a clean run exits 0.
Unlike the original "midas" interpreter this fixes (see DESIGN.md), a
runtime error here always produces a non-zero exit code.
*/
func run(args []string) int {
	if len(args) != 2 {
		fmt.Fprintf(os.Stdout, "usage: %s <file>\n", config.ProductName)
		return 1
	}

	log, _ := util.NewLogLevelLogger(util.NewWriterLogger(os.Stdout), string(util.Error))

	if err := tool.Interpret(args[1], os.Stdout, log); err != nil {
		return 1
	}

	return 0
}
