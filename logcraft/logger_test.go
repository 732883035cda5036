// Copyright (c) 2026 BVK Chaitanya

package logcraft

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

var prefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2} \[(INFO|ERROR)\]: $`)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func readLines(t *testing.T, fpath string) []string {
	t.Helper()
	data, err := os.ReadFile(fpath)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	if len(s) == 0 {
		return nil
	}
	if !strings.HasSuffix(s, "\n") {
		t.Fatalf("log file %q doesn't end with a newline: %q", fpath, s)
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestFormatTimestamp(t *testing.T) {
	at := time.Date(2024, time.March, 5, 7, 8, 9, 123456789, time.UTC)
	if s := FormatTimestamp(at); s != "2024-03-05_07-08-09" {
		t.Fatalf("wanted 2024-03-05_07-08-09, got %q", s)
	}
	if s := FormatTimestamp(time.Now()); len(s) != 19 {
		t.Fatalf("wanted 19 byte timestamp, got %q", s)
	}
	if s := FileName(at); s != "Log_2024-03-05_07-08-09.txt" {
		t.Fatalf("wanted Log_2024-03-05_07-08-09.txt, got %q", s)
	}
}

func TestParseFileName(t *testing.T) {
	now := time.Now().Truncate(time.Second)

	for seq := 0; seq < 3; seq++ {
		name := fileNameSeq(now, seq)
		at, n, err := ParseFileName(name, time.Local)
		if err != nil {
			t.Fatal(err)
		}
		if !at.Equal(now) || n != seq {
			t.Fatalf("file name %q parsed back as (%v, %d), wanted (%v, %d)", name, at, n, now, seq)
		}
	}

	bad := []string{
		"",
		"Log_.txt",
		"log_2024-03-05_07-08-09.txt",
		"Log_2024-03-05_07-08-09.log",
		"Log_2024-03-05_07-08-09_.txt",
		"Log_2024-03-05_07-08-09_0.txt",
		"Log_2024-03-05_07-08-09-1.txt",
		"Log_2024-13-05_07-08-09.txt",
	}
	for _, name := range bad {
		if _, _, err := ParseFileName(name, nil); err == nil {
			t.Errorf("file name %q: wanted non-nil error", name)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"info", "INFO", " Info "} {
		if v, err := ParseLevel(s); err != nil || v != LevelInfo {
			t.Fatalf("ParseLevel(%q): wanted INFO, got %v (err=%v)", s, v, err)
		}
	}
	if v, err := ParseLevel("error"); err != nil || v != LevelError {
		t.Fatalf("wanted ERROR, got %v (err=%v)", v, err)
	}
	if _, err := ParseLevel("warn"); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("wanted ErrInvalid, got %v", err)
	}

	var level Level
	if err := level.Set("error"); err != nil || level != LevelError {
		t.Fatalf("wanted ERROR, got %v (err=%v)", level, err)
	}
	if s := Level(7).String(); s != "Level(7)" {
		t.Fatalf("wanted Level(7), got %q", s)
	}
}

func TestNew(t *testing.T) {
	dir := t.TempDir() + "/"

	at := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.Local)
	l, err := New(dir, &Options{Now: fixedClock(at)})
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	if l.FileName() != "Log_2024-03-05_07-08-09.txt" {
		t.Fatalf("unexpected file name %q", l.FileName())
	}
	if l.Path() != dir+l.FileName() {
		t.Fatalf("unexpected file path %q", l.Path())
	}
	if l.Level() != LevelInfo {
		t.Fatalf("wanted default level INFO, got %v", l.Level())
	}
	if _, err := os.Stat(l.Path()); err != nil {
		t.Fatalf("log file is not created: %v", err)
	}
}

func TestNewMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing") + "/"

	_, err := New(dir, nil)
	if err == nil {
		t.Fatalf("wanted non-nil error")
	}
	var ferr *FileOpenError
	if !errors.As(err, &ferr) {
		t.Fatalf("wanted FileOpenError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(ferr.Path, dir) {
		t.Fatalf("error path %q is not under %q", ferr.Path, dir)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("wanted ErrNotExist, got %v", err)
	}
}

func TestNewNameCollision(t *testing.T) {
	dir := t.TempDir() + "/"
	opts := &Options{Now: fixedClock(time.Now())}

	var names []string
	for i := 0; i < 3; i++ {
		l, err := New(dir, opts)
		if err != nil {
			t.Fatal(err)
		}
		defer l.Close()
		names = append(names, l.FileName())
	}

	if names[0] == names[1] || names[1] == names[2] || names[0] == names[2] {
		t.Fatalf("wanted unique file names, got %v", names)
	}
	if !strings.HasSuffix(names[2], "_2.txt") {
		t.Fatalf("wanted second collision suffix, got %q", names[2])
	}
}

func TestClockError(t *testing.T) {
	dir := t.TempDir() + "/"

	var cerr *ClockError
	if _, err := New(dir, &Options{TimeZone: "No/Such_Zone"}); !errors.As(err, &cerr) {
		t.Fatalf("wanted ClockError, got %v", err)
	} else if cerr.Zone != "No/Such_Zone" {
		t.Fatalf("wanted zone in the error, got %q", cerr.Zone)
	}

	zero := func() time.Time { return time.Time{} }
	if _, err := New(dir, &Options{Now: zero}); !errors.As(err, &cerr) {
		t.Fatalf("wanted ClockError, got %v", err)
	}

	far := fixedClock(time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC))
	if _, err := New(dir, &Options{Now: far, TimeZone: "UTC"}); !errors.As(err, &cerr) {
		t.Fatalf("wanted ClockError for a five digit year, got %v", err)
	}

	last := fixedClock(time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC))
	l, err := New(dir, &Options{Now: last, TimeZone: "UTC"})
	if err != nil {
		t.Fatal(err)
	}
	if got := FormatTimestamp(l.CreatedAt()); len(got) != len(TimestampLayout) {
		t.Fatalf("wanted fixed width timestamp, got %q", got)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(l.Path()); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("wanted no log files on clock errors, got %d", len(entries))
	}
}

func TestTimeZone(t *testing.T) {
	dir := t.TempDir() + "/"

	at := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)
	l, err := New(dir, &Options{Now: fixedClock(at), TimeZone: "UTC"})
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	prefix, err := l.Prefix()
	if err != nil {
		t.Fatal(err)
	}
	if prefix != "2024-03-05_07-08-09 [INFO]: " {
		t.Fatalf("unexpected prefix %q", prefix)
	}
}

func TestLogLines(t *testing.T) {
	dir := t.TempDir() + "/"

	l, err := New(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	messages := []string{
		"hello world",
		"",
		"  leading and trailing spaces  ",
		"unicode: héllo, 世界",
		"tab\tseparated",
	}
	for _, m := range messages {
		if err := l.Log(m); err != nil {
			t.Fatal(err)
		}
	}
	if err := l.Save(); err != nil {
		t.Fatal(err)
	}

	lines := readLines(t, l.Path())
	if len(lines) != len(messages) {
		t.Fatalf("wanted %d lines, got %d: %q", len(messages), len(lines), lines)
	}
	for i, line := range lines {
		prefix, msg, ok := strings.Cut(line, "]: ")
		if !ok {
			t.Fatalf("line %q has no prefix", line)
		}
		if !prefixRe.MatchString(prefix + "]: ") {
			t.Fatalf("line %q has invalid prefix", line)
		}
		if msg != messages[i] {
			t.Fatalf("wanted message %q, got %q", messages[i], msg)
		}
	}
}

func TestLogMultilineMessage(t *testing.T) {
	dir := t.TempDir() + "/"

	l, err := New(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	msg := "first\nsecond"
	if err := l.Log(msg); err != nil {
		t.Fatal(err)
	}
	if err := l.Save(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatal(err)
	}
	prefix, rest, ok := strings.Cut(string(data), "]: ")
	if !ok || !prefixRe.MatchString(prefix+"]: ") {
		t.Fatalf("unexpected file content %q", data)
	}
	if rest != msg+"\n" {
		t.Fatalf("wanted %q after the prefix, got %q", msg+"\n", rest)
	}
}

func TestSetLevel(t *testing.T) {
	dir := t.TempDir() + "/"

	l, err := New(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	l.SetLevel(LevelError)
	prefix, err := l.Prefix()
	if err != nil {
		t.Fatal(err)
	}
	if !prefixRe.MatchString(prefix) || !strings.HasSuffix(prefix, " [ERROR]: ") {
		t.Fatalf("unexpected prefix %q", prefix)
	}

	l.SetLevel(Level(42))
	if l.Level() != LevelError {
		t.Fatalf("invalid level must be ignored, got %v", l.Level())
	}

	if err := l.Log("one"); err != nil {
		t.Fatal(err)
	}
	l.SetLevel(LevelInfo)
	if err := l.Logf("two %d", 2); err != nil {
		t.Fatal(err)
	}
	if err := l.Errorf("three %d", 3); err != nil {
		t.Fatal(err)
	}
	if err := l.Log("four"); err != nil {
		t.Fatal(err)
	}
	if err := l.Print(Level(9), "five"); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("wanted ErrInvalid, got %v", err)
	}
	if err := l.Save(); err != nil {
		t.Fatal(err)
	}

	wants := []string{"[ERROR]: one", "[INFO]: two 2", "[ERROR]: three 3", "[ERROR]: four"}
	lines := readLines(t, l.Path())
	if len(lines) != len(wants) {
		t.Fatalf("wanted %d lines, got %q", len(wants), lines)
	}
	for i, want := range wants {
		if !strings.HasSuffix(lines[i], " "+want) {
			t.Fatalf("line %d: wanted suffix %q, got %q", i, want, lines[i])
		}
	}
}

func TestSaveVisibility(t *testing.T) {
	dir := t.TempDir() + "/"

	l, err := New(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	if err := l.Log("saved"); err != nil {
		t.Fatal(err)
	}
	if err := l.Save(); err != nil {
		t.Fatal(err)
	}

	// Independent reader must see the saved lines.
	lines := readLines(t, l.Path())
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "[INFO]: saved") {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestLinesVisibleWithoutSave(t *testing.T) {
	dir := t.TempDir() + "/"

	l, err := New(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	if err := l.Info("server started"); err != nil {
		t.Fatal(err)
	}
	if err := l.Error("disk full"); err != nil {
		t.Fatal(err)
	}

	// Lines must reach the file even if the process exits without Save or
	// Close.
	lines := readLines(t, l.Path())
	if len(lines) != 2 {
		t.Fatalf("wanted two lines without Save, got %q", lines)
	}
	if !strings.HasSuffix(lines[0], "[INFO]: server started") || !strings.HasSuffix(lines[1], "[ERROR]: disk full") {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestClose(t *testing.T) {
	dir := t.TempDir() + "/"

	l, err := New(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Log("before close"); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second close: wanted nil, got %v", err)
	}
	if err := l.Log("after close"); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("wanted ErrClosed, got %v", err)
	}
	if err := l.Save(); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("wanted ErrClosed, got %v", err)
	}

	lines := readLines(t, l.Path())
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "[INFO]: before close") {
		t.Fatalf("unexpected lines after close %q", lines)
	}
}
