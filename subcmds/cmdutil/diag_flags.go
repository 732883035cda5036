// Copyright (c) 2026 BVK Chaitanya

package cmdutil

import (
	"flag"
	"log/slog"

	"github.com/visvasity/sglog"
)

// DiagFlags selects where the diagnostic messages of the logcraft command
// itself are written.
type DiagFlags struct {
	diagLogDir string
	verbose    bool
}

func (f *DiagFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.diagLogDir, "diag-log-dir", "", "When non-empty, diagnostic messages are also written to log files in this directory")
	fset.BoolVar(&f.verbose, "verbose", false, "When true, debug diagnostic messages are enabled")
}

// Setup configures the default slog logger. Returned function must be called
// before the process exits to flush the diagnostic log files.
func (f *DiagFlags) Setup() func() {
	if len(f.diagLogDir) == 0 {
		if f.verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
		return func() {}
	}

	backend := sglog.NewBackend(&sglog.Options{
		LogDirs: []string{f.diagLogDir},
	})
	if f.verbose {
		backend.SetLevel(slog.LevelDebug)
	}
	slog.SetDefault(slog.New(backend.Handler()))
	return backend.Close
}
