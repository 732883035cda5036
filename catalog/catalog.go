// Copyright (c) 2026 BVK Chaitanya

// Package catalog records the log files created by logcraft registries in a
// key-value database, so that log files of an identifier can be found after
// the process that created them has exited.
package catalog

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/bvk/logcraft/logcraft"
	"github.com/bvkgo/kv"
	"github.com/google/uuid"
)

// Keyspace is the key prefix for all catalog entries.
var Keyspace = "/logcraft/files"

// Entry describes one log file created by a logger.
type Entry struct {
	ID uuid.UUID

	// Name is the registry identifier of the logger.
	Name string

	// Path is the log file path as seen by the creating process.
	Path string

	CreatedAt time.Time

	PID int
}

// NewEntry returns a catalog entry for a logger created under the input
// identifier.
func NewEntry(id string, l *logcraft.Logger) *Entry {
	return &Entry{
		ID:        uuid.New(),
		Name:      id,
		Path:      l.Path(),
		CreatedAt: l.CreatedAt(),
		PID:       os.Getpid(),
	}
}

func nameKeyspace(name string) string {
	return path.Join(Keyspace, hex.EncodeToString([]byte(name)))
}

func entryKey(e *Entry) string {
	return path.Join(nameKeyspace(e.Name), fmt.Sprintf("%020d-%s", e.CreatedAt.UnixNano(), e.ID))
}

// Set saves the entry in the input transaction.
func Set(ctx context.Context, rw kv.ReadWriter, e *Entry) error {
	if len(e.Name) == 0 {
		return fmt.Errorf("catalog entry name cannot be empty: %w", os.ErrInvalid)
	}
	if e.ID == uuid.Nil {
		return fmt.Errorf("catalog entry id cannot be empty: %w", os.ErrInvalid)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(e); err != nil {
		return fmt.Errorf("could not gob-encode catalog entry: %w", err)
	}
	key := entryKey(e)
	if err := rw.Set(ctx, key, &buf); err != nil {
		return fmt.Errorf("could not set catalog entry at %q: %w", key, err)
	}
	return nil
}

// Add is similar to Set, but takes a kv.Database argument.
func Add(ctx context.Context, db kv.Database, e *Entry) error {
	return kv.WithReadWriter(ctx, db, func(ctx context.Context, rw kv.ReadWriter) error {
		return Set(ctx, rw, e)
	})
}

// Scan returns the catalog entries of the input identifier in the creation
// order. Entries of all identifiers are returned when name is empty,
// grouped by the identifier.
func Scan(ctx context.Context, r kv.Reader, name string) ([]*Entry, error) {
	begin := Keyspace
	if len(name) != 0 {
		begin = nameKeyspace(name)
	}
	prefix, end := begin+"/", begin+"0"

	it, err := r.Ascend(ctx, begin, end)
	if err != nil {
		return nil, fmt.Errorf("could not create ascending iterator: %w", err)
	}
	defer kv.Close(it)

	var entries []*Entry
	for k, v, err := it.Fetch(ctx, false); err == nil; k, v, err = it.Fetch(ctx, true) {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		e := new(Entry)
		if err := gob.NewDecoder(v).Decode(e); err != nil {
			return nil, fmt.Errorf("could not gob-decode catalog entry at %q: %w", k, err)
		}
		entries = append(entries, e)
	}
	if _, _, err := it.Fetch(ctx, false); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not complete catalog scan: %w", err)
	}
	return entries, nil
}

// List is similar to Scan, but takes a kv.Database argument.
func List(ctx context.Context, db kv.Database, name string) (entries []*Entry, err error) {
	err = kv.WithReader(ctx, db, func(ctx context.Context, r kv.Reader) error {
		entries, err = Scan(ctx, r, name)
		return err
	})
	return entries, err
}
