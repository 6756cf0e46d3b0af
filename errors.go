/*
 * errors.go, part of dynq.
 *
 * Copyright 2016 The dynq authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package dynq

import (
	"fmt"
	"strings"
)

//Errors

//Error is the error type returned by dynq functions. The Decorate method allows to add
//information to the error when it is passed up the calling stack, without changing its type.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//NewError returns an Error with the given message. The caller, if given, is
//added as the first decoration.
func NewError(message string, critical bool, caller ...string) Error {
	err := Error{message: message, critical: critical}
	if len(caller) > 0 && caller[0] != "" {
		err.deco = []string{caller[0]}
	}
	return err
}

//Error returns a string with an error message.
func (err Error) Error() string {
	if len(err.deco) == 0 {
		return err.message
	}
	return fmt.Sprintf("%s: %s", strings.Join(err.deco, ": "), err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice. An empty dec just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append([]string{dec}, err.deco...)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//errDecorate decorates err with the caller's name if err is a dynq Error.
//Other errors are wrapped in a non-critical Error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	switch e := err.(type) {
	case Error:
		e.Decorate(caller)
		return e
	case *Error:
		e.Decorate(caller)
		return e
	}
	return NewError(err.Error(), false, caller)
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape           = PanicMsg("dynq: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("dynq: index out of range")
	ErrNoMonodromy     = PanicMsg("dynq: monodromy matrices not set, reset the snapshot first")
	ErrNoElectronic    = PanicMsg("dynq: snapshot has no electronic coordinates/momenta")
	ErrNoTopology      = PanicMsg("dynq: snapshot has no topology")
)
