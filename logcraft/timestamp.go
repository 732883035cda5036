// Copyright (c) 2026 BVK Chaitanya

package logcraft

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the time.Format layout for timestamps in log file
// names and line prefixes.
const TimestampLayout = "2006-01-02_15-04-05"

const (
	fileNamePrefix = "Log_"
	fileNameSuffix = ".txt"
)

// FormatTimestamp formats t as YYYY-MM-DD_HH-MM-SS. Result is 19 bytes long
// only for years 0 through 9999; loggers reject clock readings outside
// that range with a ClockError.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FileName returns the log file name for a logger created at time t.
func FileName(t time.Time) string {
	return fileNamePrefix + FormatTimestamp(t) + fileNameSuffix
}

// fileNameSeq returns the file name for the seq'th collision at time t.
func fileNameSeq(t time.Time, seq int) string {
	if seq == 0 {
		return FileName(t)
	}
	return fmt.Sprintf("%s%s_%d%s", fileNamePrefix, FormatTimestamp(t), seq, fileNameSuffix)
}

// ParseFileName parses a log file name created by this package and returns
// the creation time (in the given location) and collision sequence number.
func ParseFileName(name string, loc *time.Location) (time.Time, int, error) {
	s, ok := strings.CutPrefix(name, fileNamePrefix)
	if !ok {
		return time.Time{}, 0, fmt.Errorf("file name %q has no %q prefix: %w", name, fileNamePrefix, os.ErrInvalid)
	}
	if s, ok = strings.CutSuffix(s, fileNameSuffix); !ok {
		return time.Time{}, 0, fmt.Errorf("file name %q has no %q suffix: %w", name, fileNameSuffix, os.ErrInvalid)
	}
	if len(s) < len(TimestampLayout) {
		return time.Time{}, 0, fmt.Errorf("file name %q has no timestamp: %w", name, os.ErrInvalid)
	}

	seq := 0
	if rest := s[len(TimestampLayout):]; len(rest) != 0 {
		v, ok := strings.CutPrefix(rest, "_")
		if !ok {
			return time.Time{}, 0, fmt.Errorf("file name %q has invalid suffix: %w", name, os.ErrInvalid)
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return time.Time{}, 0, fmt.Errorf("file name %q has invalid sequence number: %w", name, os.ErrInvalid)
		}
		seq = n
	}

	if loc == nil {
		loc = time.Local
	}
	at, err := time.ParseInLocation(TimestampLayout, s[:len(TimestampLayout)], loc)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("could not parse timestamp in file name %q: %w", name, err)
	}
	return at, seq, nil
}
