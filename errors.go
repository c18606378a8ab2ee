/*
 * errors.go, part of gofeff.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * gofeff is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package feff

import "fmt"

//ErrKind tells apart the conditions this library reports. Only a few of
//them are worth branching on, the rest share ErrGeneral.
type ErrKind int

const (
	ErrGeneral ErrKind = iota
	//ErrValidation is a malformed value for a typed tag (currently only
	//boolean-class tags can produce it).
	ErrValidation
	//ErrCenterNotFound means the requested absorbing species is not
	//present in the structure.
	ErrCenterNotFound
	//ErrConflict means two tag sets assign different values to the same
	//tag during a merge.
	ErrConflict
	//ErrUnknownTag is a non-critical warning: the tag is not in the list
	//of recognized FEFF tags, but it was stored anyway.
	ErrUnknownTag
	//ErrParser means a section string or file could not be interpreted.
	ErrParser
)

//Error is the interface for errors in this library. The Decorate method allows to add
//and retrieve info from the error, without changing its type or wrapping it around
//something else. Critical distinguishes real failures from warnings that the caller
//is free to ignore (an unknown tag, for instance, is stored and merely reported).
type Error interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//CError is the concrete error type of the library.
type CError struct {
	kind     ErrKind
	msg      string
	deco     []string
	critical bool
}

func (err *CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the error,
//and returns the resulting slice. If dec is empty, it only returns the current slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err *CError) Critical() bool { return err.critical }

//Kind returns the kind of condition the error reports.
func (err *CError) Kind() ErrKind { return err.kind }

func newError(kind ErrKind, critical bool, format string, a ...interface{}) *CError {
	return &CError{kind: kind, msg: fmt.Sprintf(format, a...), critical: critical}
}

//errDecorate asserts that err implements Error and decorates it with the
//caller's name before returning it. Errors from outside the library are
//returned unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

func kindOf(err error) ErrKind {
	if e, ok := err.(*CError); ok {
		return e.kind
	}
	return ErrGeneral
}

//IsValidation returns whether err reports a malformed typed-tag value.
func IsValidation(err error) bool { return kindOf(err) == ErrValidation }

//IsCenterNotFound returns whether err reports an absent absorbing species.
func IsCenterNotFound(err error) bool { return kindOf(err) == ErrCenterNotFound }

//IsConflict returns whether err reports a tag merge conflict.
func IsConflict(err error) bool { return kindOf(err) == ErrConflict }

//IsUnknownTag returns whether err is the non-critical unknown-tag warning.
func IsUnknownTag(err error) bool { return kindOf(err) == ErrUnknownTag }

//IsParser returns whether err reports an unparseable section.
func IsParser(err error) bool { return kindOf(err) == ErrParser }

//PanicMsg is a message used for panics. Even though it does satisfy the error
//interface, for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("gofeff: A coordinate matrix should have 3 columns")
	ErrNilData         = PanicMsg("gofeff: Nil data given")
	ErrIndexOutOfRange = PanicMsg("gofeff: index out of range")
)
