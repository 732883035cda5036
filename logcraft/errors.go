// Copyright (c) 2026 BVK Chaitanya

package logcraft

import "fmt"

// FileOpenError is returned when a log file cannot be opened for writing.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("could not open log file %q: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// ClockError is returned when the current time cannot be determined in the
// configured time zone.
type ClockError struct {
	Zone string
	Err  error
}

func (e *ClockError) Error() string {
	if e.Zone == "" {
		return fmt.Sprintf("could not read the clock: %v", e.Err)
	}
	return fmt.Sprintf("could not read the clock in time zone %q: %v", e.Zone, e.Err)
}

func (e *ClockError) Unwrap() error {
	return e.Err
}
