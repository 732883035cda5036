// Copyright (c) 2026 BVK Chaitanya

package catalog

import (
	"fmt"
	"os"
	"path"

	"github.com/bvkgo/kv"
	"github.com/bvkgo/kvbadger"
	"github.com/dgraph-io/badger/v4"
)

// Open opens (or creates) the catalog database in the input directory. The
// returned function must be called to close the database.
func Open(dir string) (kv.Database, func() error, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, nil, fmt.Errorf("could not create catalog directory %q: %w", dir, err)
	}
	bopts := badger.DefaultOptions(dir).WithLogger(nil)
	bdb, err := badger.Open(bopts)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open the catalog database: %w", err)
	}
	return kvbadger.New(bdb, isGoodKey), bdb.Close, nil
}

func isGoodKey(k string) bool {
	return path.IsAbs(k) && k == path.Clean(k)
}
