// Copyright (c) 2026 BVK Chaitanya

package logcraft

import "sync"

const (
	// GlobalName is the identifier of the process-wide Global logger.
	GlobalName = "Global"

	// DefaultBasePath is the base path for the Global logger.
	DefaultBasePath = "./"
)

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, which is created on first use
// with default options.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(nil)
	})
	return defaultRegistry
}

// CloseDefault closes all loggers in the process-wide registry.
func CloseDefault() error {
	return Default().Close()
}

// Global returns the Global logger from the process-wide registry, creating
// it in the current directory if necessary.
func Global() (*Logger, error) {
	return Default().GetInstance(GlobalName, DefaultBasePath)
}

// GlobalWithPath is similar to Global, but creates the log file under the
// input base path if the Global logger doesn't exist yet.
func GlobalWithPath(basePath string) (*Logger, error) {
	return Default().GetInstance(GlobalName, basePath)
}

// CheckGlobal returns true if the Global logger exists or can be created.
func CheckGlobal() bool {
	_, err := Global()
	return err == nil
}

// PrintGlobal writes msg to the Global logger with its current level.
func PrintGlobal(msg string) error {
	l, err := Global()
	if err != nil {
		return err
	}
	return l.Log(msg)
}

// PrintGlobalInfo writes msg to the Global logger at LevelInfo.
func PrintGlobalInfo(msg string) error {
	l, err := Global()
	if err != nil {
		return err
	}
	return l.Info(msg)
}

// PrintGlobalError writes msg to the Global logger at LevelError.
func PrintGlobalError(msg string) error {
	l, err := Global()
	if err != nil {
		return err
	}
	return l.Error(msg)
}
