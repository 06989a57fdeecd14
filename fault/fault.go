// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrChromosomeIsEmpty     = InvalidError("chromosome is empty")
	ErrChromosomeIsInvalid   = InvalidError("chromosome does not pass validation")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidPoolSize       = InvalidError("worker pool size cannot be zero")
	ErrInvalidPopulationSize = InvalidError("population size is too small to mate")
	ErrInvalidSearchRatio    = InvalidError("search ratio is outside its valid range")
	ErrInvalidStructPointer  = InvalidError("configuration must be a struct pointer")
	ErrKeyAlreadyExists      = ExistsError("key already exists in list")
	ErrKeyNotFound           = NotFoundError("key is not in list")
	ErrKeyNodeMismatch       = InvalidError("key is bound to a different node")
	ErrMatingFailed          = ProcessError("mating could not produce a valid chromosome")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrPoolIsStopped         = ProcessError("worker pool is stopped")
	ErrShortRecord           = ProcessError("record is too short")
	ErrUnknownJob            = NotFoundError("job id was never added")
	ErrWrongFieldCount       = ProcessError("row has the wrong number of fields")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
