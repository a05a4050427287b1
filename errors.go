/*
 * errors.go, part of gocage.
 *
 * Copyright 2019 The gocage authors
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

package cage

import "fmt"

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows adding and retrieving info from the
//error as it is passed up the call stack, without changing its type or
//wrapping it in something else. The decoration slice should contain a list
//of the functions in the calling stack, plus, for each function, any
//relevant information, in the format "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type of the cage package. It implements
//Error.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of the error, unless
//dec is empty, and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Calling it with an error produced
//outside this library is a bug, and panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//The errors below are the fatal "malformed input" conditions: they are
//surfaced immediately and never retried.

func errMalformed(format string, args ...interface{}) error {
	return CError{msg: "malformed input: " + fmt.Sprintf(format, args...)}
}

func errUnknownElement(symbol, caller string) error {
	return CError{msg: fmt.Sprintf("unknown element symbol %q", symbol), deco: []string{caller}}
}
