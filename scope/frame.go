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
Package scope implements the lexically scoped variable environment midas
programs run in: a chain of Frames, each holding its own declarations and
linking to the frame it was created in (spec §4.3).

Unlike the lexically similar scope package this one is adapted from,
a Frame here holds no dotted-container access and no internal locking:
midas execution is single-threaded (spec's concurrency Non-goal), so a
plain map and a parent pointer are enough.
*/
package scope

import (
	"github.com/formerly-a-trickster/midas/util"
	"github.com/formerly-a-trickster/midas/value"
)

/*
Frame is one lexical scope: a set of locally declared variables plus a
link to the enclosing frame. The global frame has a nil parent.
*/
type Frame struct {
	parent  *Frame
	storage map[string]value.Value
}

/*
NewGlobal creates the top-level frame of a program, with no parent.
*/
func NewGlobal() *Frame {
	return &Frame{storage: make(map[string]value.Value)}
}

/*
NewChild creates a new frame nested inside f. Every block, loop body,
and function call runs in its own child frame (spec §4.3 I1).
*/
func (f *Frame) NewChild() *Frame {
	return &Frame{parent: f, storage: make(map[string]value.Value)}
}

/*
Parent returns the enclosing frame, or nil for the global frame.
*/
func (f *Frame) Parent() *Frame {
	return f.parent
}

/*
Declare introduces a new variable in f itself. Redeclaring a name
already declared in f (not a parent) is an error (spec §4.3 I2); it
shadows same-named variables in enclosing frames without complaint.
*/
func (f *Frame) Declare(name string, v value.Value) error {
	if _, ok := f.storage[name]; ok {
		return util.ErrAlreadyDeclared
	}
	f.storage[name] = v
	return nil
}

/*
Assign updates the nearest enclosing declaration of name, starting at f
and walking out through parents (spec §4.3 I3). It is an error to assign
to a name that was never declared anywhere on the chain.
*/
func (f *Frame) Assign(name string, v value.Value) error {
	owner := f.find(name)
	if owner == nil {
		return util.ErrUndeclared
	}
	owner.storage[name] = v
	return nil
}

/*
Lookup resolves name by walking f and its ancestors outward, returning
the nearest declaration (spec §4.3 I4 lexical shadowing).
*/
func (f *Frame) Lookup(name string) (value.Value, bool) {
	owner := f.find(name)
	if owner == nil {
		return value.Value{}, false
	}
	return owner.storage[name], true
}

/*
find returns the nearest frame on the chain starting at f that declares
name, or nil if none does.
*/
func (f *Frame) find(name string) *Frame {
	for cur := f; cur != nil; cur = cur.parent {
		if _, ok := cur.storage[name]; ok {
			return cur
		}
	}
	return nil
}
