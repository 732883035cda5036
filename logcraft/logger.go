// Copyright (c) 2026 BVK Chaitanya

package logcraft

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"
)

// maxNameCollisions limits the number of sequence suffixes tried when log
// file names from the same second collide.
const maxNameCollisions = 1000

// Logger writes leveled, timestamped lines into a single log file.
type Logger struct {
	mu sync.Mutex

	opts Options
	loc  *time.Location

	basePath string
	fileName string

	createdAt time.Time

	level Level

	file *os.File

	// owner is the registry holding this logger under the id, if any.
	owner *Registry
	id    string
}

// New creates a new log file under basePath and returns a logger that
// writes into it. The file name is derived from the current time and
// basePath is used verbatim as the file name prefix.
//
// Returned error is a *FileOpenError when the file cannot be created or a
// *ClockError when current time cannot be determined.
func New(basePath string, opts *Options) (*Logger, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	o.setDefaults()

	loc, err := o.location()
	if err != nil {
		return nil, err
	}
	now, err := o.currentTime(loc)
	if err != nil {
		return nil, err
	}

	fp, name, err := createFile(basePath, now, o.FileMode)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		opts:      o,
		loc:       loc,
		basePath:  basePath,
		fileName:  name,
		createdAt: now,
		level:     LevelInfo,
		file:      fp,
	}
	return l, nil
}

// createFile creates a fresh log file. When a file with the same timestamp
// already exists, a sequence number is added to the name instead of
// truncating the existing file.
func createFile(basePath string, at time.Time, mode os.FileMode) (*os.File, string, error) {
	for seq := 0; ; seq++ {
		name := fileNameSeq(at, seq)
		fpath := basePath + name
		fp, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
		if err == nil {
			return fp, name, nil
		}
		if !errors.Is(err, fs.ErrExist) || seq >= maxNameCollisions {
			return nil, "", &FileOpenError{Path: fpath, Err: err}
		}
	}
}

// BasePath returns the base path the logger was created with.
func (l *Logger) BasePath() string {
	return l.basePath
}

// FileName returns the log file name, without the base path.
func (l *Logger) FileName() string {
	return l.fileName
}

// Path returns the log file path, which is the base path followed by the
// file name.
func (l *Logger) Path() string {
	return l.basePath + l.fileName
}

// CreatedAt returns the logger construction time used in the file name.
func (l *Logger) CreatedAt() time.Time {
	return l.createdAt
}

// Level returns the current severity level.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.level
}

// SetLevel updates the severity level for subsequent log lines. Invalid
// levels are ignored.
func (l *Logger) SetLevel(level Level) {
	if !level.valid() {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
}

// Prefix returns the line prefix for the current time and severity level.
func (l *Logger) Prefix() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.prefix()
}

func (l *Logger) prefix() (string, error) {
	now, err := l.opts.currentTime(l.loc)
	if err != nil {
		return "", err
	}
	return FormatTimestamp(now) + " [" + l.level.String() + "]: ", nil
}

// Log writes msg as a single line with the current severity level. Message
// is written as given, without any escaping. Each line is written to the
// file with a single write call, so it is not lost when the process exits
// without calling Save.
func (l *Logger) Log(msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.write(msg)
}

// Logf is similar to Log, but formats the message with fmt.Sprintf.
func (l *Logger) Logf(format string, args ...any) error {
	return l.Log(fmt.Sprintf(format, args...))
}

// Print updates the severity level and writes msg with the new level as one
// operation, so that concurrent writers cannot interleave between the two.
func (l *Logger) Print(level Level, msg string) error {
	if !level.valid() {
		return fmt.Errorf("invalid log level %d: %w", level, os.ErrInvalid)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level
	return l.write(msg)
}

// Info writes msg at LevelInfo. Level remains at LevelInfo afterwards.
func (l *Logger) Info(msg string) error {
	return l.Print(LevelInfo, msg)
}

// Infof is similar to Info, but formats the message with fmt.Sprintf.
func (l *Logger) Infof(format string, args ...any) error {
	return l.Print(LevelInfo, fmt.Sprintf(format, args...))
}

// Error writes msg at LevelError. Level remains at LevelError afterwards.
func (l *Logger) Error(msg string) error {
	return l.Print(LevelError, msg)
}

// Errorf is similar to Error, but formats the message with fmt.Sprintf.
func (l *Logger) Errorf(format string, args ...any) error {
	return l.Print(LevelError, fmt.Sprintf(format, args...))
}

func (l *Logger) write(msg string) error {
	if l.file == nil {
		return fmt.Errorf("log file %q is closed: %w", l.Path(), os.ErrClosed)
	}
	prefix, err := l.prefix()
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.Grow(len(prefix) + len(msg) + 1)
	sb.WriteString(prefix)
	sb.WriteString(msg)
	sb.WriteByte('\n')

	if _, err := l.file.WriteString(sb.String()); err != nil {
		return fmt.Errorf("could not write to log file %q: %w", l.Path(), err)
	}
	return nil
}

// Save syncs the log file to the disk. Returns nil on success.
func (l *Logger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return fmt.Errorf("log file %q is closed: %w", l.Path(), os.ErrClosed)
	}
	return l.sync()
}

func (l *Logger) sync() error {
	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("could not sync log file %q: %w", l.Path(), err)
	}
	return nil
}

// Close syncs and closes the log file. Logger cannot be used after it is
// closed. Closing an already closed logger is a no-op.
//
// A logger closed directly is also removed from its registry, so that the
// next GetInstance call with the same identifier creates a new logger.
func (l *Logger) Close() error {
	err := l.close()
	if l.owner != nil {
		l.owner.forget(l.id, l)
	}
	return err
}

func (l *Logger) close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	serr := l.sync()
	cerr := l.file.Close()
	l.file = nil
	if serr != nil {
		return serr
	}
	if cerr != nil {
		return fmt.Errorf("could not close log file %q: %w", l.Path(), cerr)
	}
	return nil
}
