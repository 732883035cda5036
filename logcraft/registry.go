// Copyright (c) 2026 BVK Chaitanya

package logcraft

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bvk/logcraft/syncmap"
)

// Registry holds at most one Logger per identifier.
type Registry struct {
	opts Options

	// mu serializes logger creation and teardown. Lookups for existing
	// loggers do not take the lock.
	mu sync.Mutex

	loggerMap syncmap.Map[string, *Logger]
}

// NewRegistry creates an empty registry. Input options are used for every
// logger created by the registry.
func NewRegistry(opts *Options) *Registry {
	r := new(Registry)
	if opts != nil {
		r.opts = *opts
	}
	return r
}

// GetInstance returns the logger for the input identifier. If there is no
// logger with the identifier, a new logger is created under basePath and
// stored in the registry; basePath is ignored for existing loggers.
//
// When the logger cannot be created registry is left unchanged and the
// construction error is returned, so a later call can try again.
func (r *Registry) GetInstance(id, basePath string) (*Logger, error) {
	if l, ok := r.loggerMap.Load(id); ok {
		return l, nil
	}

	l, created, err := r.loadOrCreate(id, basePath)
	if err != nil {
		return nil, err
	}
	if created && r.opts.OnCreate != nil {
		r.opts.OnCreate(id, l)
	}
	return l, nil
}

func (r *Registry) loadOrCreate(id, basePath string) (*Logger, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggerMap.Load(id); ok {
		return l, false, nil
	}
	l, err := New(basePath, &r.opts)
	if err != nil {
		return nil, false, fmt.Errorf("could not create logger %q: %w", id, err)
	}
	l.owner, l.id = r, id
	r.loggerMap.Store(id, l)
	return l, true, nil
}

// forget removes the entry for id only if it still refers to l.
func (r *Registry) forget(id string, l *Logger) {
	r.loggerMap.CompareAndDelete(id, l)
}

// Lookup returns the logger for the input identifier if it exists. It never
// creates a new logger.
func (r *Registry) Lookup(id string) (*Logger, bool) {
	return r.loggerMap.Load(id)
}

// Names returns the identifiers of all loggers in sorted order.
func (r *Registry) Names() []string {
	names := r.loggerMap.Keys()
	slices.Sort(names)
	return names
}

// Save saves all loggers in the registry and returns the first error, if any.
func (r *Registry) Save() error {
	var errs []error
	r.loggerMap.Range(func(id string, l *Logger) bool {
		if err := l.Save(); err != nil {
			errs = append(errs, fmt.Errorf("could not save logger %q: %w", id, err))
		}
		return true
	})
	return errors.Join(errs...)
}

// Close closes all loggers and removes them from the registry. Registry can
// be used after Close, in which case new loggers (and files) are created.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for _, id := range r.loggerMap.Keys() {
		l, ok := r.loggerMap.LoadAndDelete(id)
		if !ok {
			continue
		}
		if err := l.close(); err != nil {
			errs = append(errs, fmt.Errorf("could not close logger %q: %w", id, err))
		}
	}
	return errors.Join(errs...)
}
