// Copyright (c) 2026 BVK Chaitanya

package cmdutil

import (
	"flag"
	"os"
	"strings"

	"github.com/bvk/logcraft/logcraft"
)

type LoggerFlags struct {
	dir      string
	id       string
	timeZone string
}

func (f *LoggerFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.dir, "dir", "", "Log files directory (default=./ or LOGCRAFT_DIR value)")
	fset.StringVar(&f.id, "id", "", "Logger identifier (default=Global or LOGCRAFT_ID value)")
	fset.StringVar(&f.timeZone, "tz", "", "Time zone name for timestamps (default=local or LOGCRAFT_TZ value)")
}

// Dir returns the log files directory with a trailing path separator, so
// that it can be used as a logger base path.
func (f *LoggerFlags) Dir() string {
	dir := f.dir
	if len(dir) == 0 {
		dir = os.Getenv("LOGCRAFT_DIR")
	}
	if len(dir) == 0 {
		return logcraft.DefaultBasePath
	}
	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}
	return dir
}

func (f *LoggerFlags) ID() string {
	if len(f.id) != 0 {
		return f.id
	}
	if v := os.Getenv("LOGCRAFT_ID"); len(v) != 0 {
		return v
	}
	return logcraft.GlobalName
}

func (f *LoggerFlags) TimeZone() string {
	if len(f.timeZone) != 0 {
		return f.timeZone
	}
	return os.Getenv("LOGCRAFT_TZ")
}

// Options returns the logger options selected by the flags.
func (f *LoggerFlags) Options() *logcraft.Options {
	return &logcraft.Options{
		TimeZone: f.TimeZone(),
	}
}
