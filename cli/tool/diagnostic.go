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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/formerly-a-trickster/midas/util"
)

/*
contextLines is how many lines of source are shown above and below the
offending line, matching the window the original interpreter's
diagnostic renderer used.
*/
const contextLines = 3

/*
RenderError writes a human-readable diagnostic for err to w. When err
carries a source position, the offending line is printed with the
failing span highlighted in red, framed by up to contextLines lines of
surrounding source read back from the named file. Errors without a
usable position (for example an I/O error before any line was read)
fall back to a plain one-line message.
*/
func RenderError(w io.Writer, err error) {
	rerr, ok := err.(*util.RuntimeError)
	if !ok || rerr.Position.Line == 0 {
		fmt.Fprintf(w, "%s: %v\n", color.RedString("error"), err)
		return
	}

	header := fmt.Sprintf(" %s ", rerr.Position.Source)
	fmt.Fprintln(w, color.New(color.Bold).Sprint(strings.Repeat("-", 80-len(header))+header))
	fmt.Fprintf(w, "%s: %s\n\n", color.RedString("error"), rerr.Detail)

	renderSourceWindow(w, rerr.Position)
}

func renderSourceWindow(w io.Writer, pos util.Position) {
	file, err := os.Open(pos.Source)
	if err != nil {
		return
	}
	defer file.Close()

	start, end := pos.Line-contextLines, pos.Line+contextLines

	scanner := bufio.NewScanner(file)
	lineNo := 1

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case lineNo == pos.Line:
			length := pos.Length
			if length < 1 {
				length = 1
			}
			fmt.Fprint(w, color.New(color.Bold).Sprintf("%4d|", lineNo))
			highlightSpan(w, line, pos.Col, length)

		case lineNo >= start && lineNo <= end:
			fmt.Fprintf(w, "%4d|%s\n", lineNo, line)
		}

		lineNo++
		if lineNo > end {
			break
		}
	}
}

/*
highlightSpan writes line with the byte range [col-1, col-1+length) in
red, bold everywhere else, terminated with a newline.
*/
func highlightSpan(w io.Writer, line string, col, length int) {
	before := col - 1
	if before > len(line) {
		before = len(line)
	}
	after := before + length
	if after > len(line) {
		after = len(line)
	}

	bold := color.New(color.Bold)
	bold.Fprint(w, line[:before])
	color.New(color.FgRed).Fprint(w, line[before:after])
	bold.Fprintln(w, line[after:])
}
