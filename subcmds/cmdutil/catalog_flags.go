// Copyright (c) 2026 BVK Chaitanya

package cmdutil

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/bvk/logcraft/catalog"
	"github.com/bvk/logcraft/ctxutil"
	"github.com/bvkgo/kv"
	"github.com/nightlyone/lockfile"
)

type CatalogFlags struct {
	dir string

	NoCatalog bool

	LockTimeout time.Duration
}

func (f *CatalogFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&f.dir, "catalog-dir", "", "Catalog database directory (default=<dir>/.logcraft or LOGCRAFT_CATALOG_DIR value)")
	fset.BoolVar(&f.NoCatalog, "no-catalog", false, "When true, log files are not recorded in the catalog")
	fset.DurationVar(&f.LockTimeout, "lock-timeout", 10*time.Second, "Max time to wait for other processes using the catalog")
}

// Dir returns the catalog directory for the input log files directory.
func (f *CatalogFlags) Dir(logDir string) string {
	if len(f.dir) != 0 {
		return f.dir
	}
	if v := os.Getenv("LOGCRAFT_CATALOG_DIR"); len(v) != 0 {
		return v
	}
	return filepath.Join(logDir, ".logcraft")
}

// OpenCatalog opens the catalog database with an exclusive lock, so that
// multiple logcraft processes can share the same catalog one after the
// other. Returned function must be called to release the database and the
// lock.
func (f *CatalogFlags) OpenCatalog(ctx context.Context, logDir string) (kv.Database, func(), error) {
	dir, err := filepath.Abs(f.Dir(logDir))
	if err != nil {
		return nil, nil, fmt.Errorf("could not determine catalog directory absolute path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dir), 0700); err != nil {
		return nil, nil, fmt.Errorf("could not create catalog parent directory: %w", err)
	}

	lockPath := dir + ".lock"
	flock, err := lockfile.New(lockPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create lock file %q: %w", lockPath, err)
	}
	if err := flock.TryLock(); err != nil {
		slog.Debug("waiting for the catalog lock", "path", lockPath, "err", err)
		if err := ctxutil.RetryTimeout(ctx, 50*time.Millisecond, f.LockTimeout, flock.TryLock); err != nil {
			return nil, nil, fmt.Errorf("could not get lock on file %q: %w", lockPath, err)
		}
	}

	db, closeDB, err := catalog.Open(dir)
	if err != nil {
		flock.Unlock()
		return nil, nil, err
	}
	closer := func() {
		if err := closeDB(); err != nil {
			slog.Warn("could not close the catalog database (ignored)", "dir", dir, "err", err)
		}
		if err := flock.Unlock(); err != nil {
			slog.Warn("could not unlock the catalog lock file (ignored)", "path", lockPath, "err", err)
		}
	}
	return db, closer, nil
}
