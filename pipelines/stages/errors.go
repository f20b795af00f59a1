// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package stages

import (
	"errors"
	"fmt"
)

// ErrReadSource is returned when a required source file cannot be read.
type ErrReadSource struct {
	Source string // mondata, trainers, ...
	Path   string
	Err    error
}

func (e *ErrReadSource) Error() string {
	return fmt.Sprintf("read %s %s: %v", e.Source, e.Path, e.Err)
}

func (e *ErrReadSource) Unwrap() error {
	return e.Err
}

// ErrWriteFile is returned when file I/O operations fail.
type ErrWriteFile struct {
	Op   string // mkdir, write, render
	Path string
	Err  error
}

func (e *ErrWriteFile) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ErrWriteFile) Unwrap() error {
	return e.Err
}

// ErrDatabase is returned when database operations fail.
type ErrDatabase struct {
	Op  string
	Err error
}

func (e *ErrDatabase) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *ErrDatabase) Unwrap() error {
	return e.Err
}

// Error code constants, used as process exit reasons.
const (
	ErrCodeReadSource = "READ_SOURCE"
	ErrCodeWriteFile  = "WRITE_FILE"
	ErrCodeDatabase   = "DATABASE"
	ErrCodeUnknown    = "UNKNOWN"
)

// ErrorCode returns the error code string for a given error.
func ErrorCode(err error) string {
	var (
		readErr  *ErrReadSource
		writeErr *ErrWriteFile
		dbErr    *ErrDatabase
	)
	switch {
	case errors.As(err, &readErr):
		return ErrCodeReadSource
	case errors.As(err, &writeErr):
		return ErrCodeWriteFile
	case errors.As(err, &dbErr):
		return ErrCodeDatabase
	default:
		return ErrCodeUnknown
	}
}
