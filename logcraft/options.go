// Copyright (c) 2026 BVK Chaitanya

package logcraft

import (
	"errors"
	"os"
	"time"
)

type Options struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// TimeZone is the IANA name of the location used for timestamps. Local
	// time zone is used when empty.
	TimeZone string

	// FileMode is the log file mode/permissions.
	FileMode os.FileMode

	// OnCreate if non-nil is called by the Registry after a new logger is
	// created and stored. It is not called for lookups that find an existing
	// logger.
	OnCreate func(id string, l *Logger)
}

func (v *Options) setDefaults() {
	if v.Now == nil {
		v.Now = time.Now
	}
	if v.FileMode == 0 {
		v.FileMode = 0644
	}
}

func (v *Options) location() (*time.Location, error) {
	if v.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(v.TimeZone)
	if err != nil {
		return nil, &ClockError{Zone: v.TimeZone, Err: err}
	}
	return loc, nil
}

var (
	errZeroTime  = errors.New("clock returned the zero time")
	errYearRange = errors.New("clock returned a year outside 0000-9999")
)

func (v *Options) currentTime(loc *time.Location) (time.Time, error) {
	now := v.Now()
	if now.IsZero() {
		return time.Time{}, &ClockError{Zone: v.TimeZone, Err: errZeroTime}
	}
	now = now.In(loc)
	// Timestamps are fixed width only for four digit years.
	if y := now.Year(); y < 0 || y > 9999 {
		return time.Time{}, &ClockError{Zone: v.TimeZone, Err: errYearRange}
	}
	return now, nil
}
