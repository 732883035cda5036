// Copyright (c) 2026 BVK Chaitanya

package logcraft

import (
	"fmt"
	"os"
	"strings"
)

// Level is the severity tag written in the prefix of every log line.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (v Level) String() string {
	switch v {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("Level(%d)", int(v))
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return LevelInfo, nil
	case "ERROR":
		return LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q: %w", s, os.ErrInvalid)
}

// Set implements the flag.Value interface.
func (v *Level) Set(s string) error {
	level, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*v = level
	return nil
}

func (v Level) valid() bool {
	return v == LevelInfo || v == LevelError
}
