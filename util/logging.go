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
Package util contains utility definitions and functions shared by the
midas parser, evaluator, and command-line front end.
*/
package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/krotik/common/datautil"
)

// Logger with loglevel support
// =============================

/*
LogLevel represents a logging level.
*/
type LogLevel string

/*
Log levels.
*/
const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Error LogLevel = "error"
)

/*
Logger is the interface midas components release their log messages to.
*/
type Logger interface {

	/*
		LogError adds a new error log message.
	*/
	LogError(m ...interface{})

	/*
		LogInfo adds a new info log message.
	*/
	LogInfo(m ...interface{})

	/*
		LogDebug adds a new debug log message.
	*/
	LogDebug(m ...interface{})
}

/*
LogLevelLogger is a wrapper around loggers to add log level filtering.
*/
type LogLevelLogger struct {
	logger Logger
	level  LogLevel
}

/*
NewLogLevelLogger wraps a given logger and adds level based filtering.
*/
func NewLogLevelLogger(logger Logger, level string) (*LogLevelLogger, error) {
	llevel := LogLevel(strings.ToLower(level))

	if llevel != Debug && llevel != Info && llevel != Error {
		return nil, fmt.Errorf("invalid log level: %v", llevel)
	}

	return &LogLevelLogger{logger, llevel}, nil
}

/*
Level returns the current log level.
*/
func (ll *LogLevelLogger) Level() LogLevel {
	return ll.level
}

/*
LogError adds a new error log message.
*/
func (ll *LogLevelLogger) LogError(m ...interface{}) {
	ll.logger.LogError(m...)
}

/*
LogInfo adds a new info log message.
*/
func (ll *LogLevelLogger) LogInfo(m ...interface{}) {
	if ll.level == Info || ll.level == Debug {
		ll.logger.LogInfo(m...)
	}
}

/*
LogDebug adds a new debug log message.
*/
func (ll *LogLevelLogger) LogDebug(m ...interface{}) {
	if ll.level == Debug {
		ll.logger.LogDebug(m...)
	}
}

// Logging implementations
// ========================

/*
MemoryLogger collects log messages in a ring buffer in memory. Useful for
embedding midas and for tests which want to assert on emitted messages.
*/
type MemoryLogger struct {
	*datautil.RingBuffer
}

/*
NewMemoryLogger returns a new memory logger instance which keeps at most
size messages.
*/
func NewMemoryLogger(size int) *MemoryLogger {
	return &MemoryLogger{datautil.NewRingBuffer(size)}
}

/*
LogError adds a new error log message.
*/
func (ml *MemoryLogger) LogError(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

/*
LogInfo adds a new info log message.
*/
func (ml *MemoryLogger) LogInfo(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprint(m...))
}

/*
LogDebug adds a new debug log message.
*/
func (ml *MemoryLogger) LogDebug(m ...interface{}) {
	ml.RingBuffer.Add(fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}

/*
Slice returns the contents of the current log as a slice.
*/
func (ml *MemoryLogger) Slice() []string {
	sl := ml.RingBuffer.Slice()
	ret := make([]string, len(sl))
	for i, lm := range sl {
		ret[i] = lm.(string)
	}
	return ret
}

/*
WriterLogger writes log messages to an io.Writer (typically os.Stdout for
the command-line front end).
*/
type WriterLogger struct {
	out io.Writer
}

/*
NewWriterLogger returns a writer-backed logger instance.
*/
func NewWriterLogger(out io.Writer) *WriterLogger {
	return &WriterLogger{out}
}

/*
LogError adds a new error log message.
*/
func (wl *WriterLogger) LogError(m ...interface{}) {
	fmt.Fprintln(wl.out, fmt.Sprintf("error: %v", fmt.Sprint(m...)))
}

/*
LogInfo adds a new info log message.
*/
func (wl *WriterLogger) LogInfo(m ...interface{}) {
	fmt.Fprintln(wl.out, fmt.Sprint(m...))
}

/*
LogDebug adds a new debug log message.
*/
func (wl *WriterLogger) LogDebug(m ...interface{}) {
	fmt.Fprintln(wl.out, fmt.Sprintf("debug: %v", fmt.Sprint(m...)))
}

/*
NullLogger discards all log messages.
*/
type NullLogger struct{}

/*
NewNullLogger returns a null logger instance.
*/
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

/*
LogError discards the message.
*/
func (nl *NullLogger) LogError(m ...interface{}) {}

/*
LogInfo discards the message.
*/
func (nl *NullLogger) LogInfo(m ...interface{}) {}

/*
LogDebug discards the message.
*/
func (nl *NullLogger) LogDebug(m ...interface{}) {}
