// Copyright (c) 2026 BVK Chaitanya

// Package envfile loads KEY=VALUE assignments from a file into the process
// environment. It is used to keep per-user or per-project defaults for the
// command-line flags.
package envfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// Variable is a single assignment from an env file.
type Variable struct {
	Name  string
	Value string
	Line  int
}

// Parse reads variable assignments from the input reader. Empty lines and
// lines starting with # are ignored, an optional "export " prefix is
// accepted and a single pair of surrounding quotes is removed from values.
// No shell escaping or expansion is performed.
func Parse(r io.Reader) ([]Variable, error) {
	var vars []Variable
	scanner := bufio.NewScanner(r)
	for i := 1; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("invalid/unrecognized variable assignment on line %d: %w", i, os.ErrInvalid)
		}
		key = strings.TrimSpace(key)
		if !nameRe.MatchString(key) {
			return nil, fmt.Errorf("invalid environment variable name %q on line %d: %w", key, i, os.ErrInvalid)
		}
		vars = append(vars, Variable{Name: key, Value: unquote(value), Line: i})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read env file: %w", err)
	}
	return vars, nil
}

func unquote(s string) string {
	if len(s) >= 2 {
		if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// Find returns the path to the first env file found in the search path
// selected by the options. Returns os.ErrNotExist if no file is found.
func Find(filename string, opts ...Option) (string, error) {
	fopts, err := newOptions(opts)
	if err != nil {
		return "", err
	}
	return find(filename, fopts)
}

func newOptions(opts []Option) (*options, error) {
	fopts := new(options)
	for _, v := range opts {
		if err := v.apply(fopts); err != nil {
			return nil, err
		}
	}
	return fopts, nil
}

func find(filename string, fopts *options) (string, error) {
	if strings.ContainsRune(filename, os.PathSeparator) {
		return "", fmt.Errorf("file name contains path separator: %w", os.ErrInvalid)
	}

	var dirs []string
	if fopts.searchCurrentDirectory {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dirs = append(dirs, cwd)
		if fopts.scanParentDirectories {
			last, dir := cwd, filepath.Dir(cwd)
			for dir != last {
				dirs = append(dirs, dir)
				last, dir = dir, filepath.Dir(dir)
			}
		}
	}
	if user, err := user.Current(); err == nil && len(user.HomeDir) != 0 {
		dirs = append(dirs, user.HomeDir)
	} else if len(dirs) == 0 {
		return "", fmt.Errorf("could not determine current user's home directory")
	}

	for _, dir := range dirs {
		fpath := filepath.Join(dir, filename)
		if _, err := os.Stat(fpath); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return "", err
			}
			continue
		}
		return fpath, nil
	}
	return "", fmt.Errorf("env file %q is not found: %w", filename, os.ErrNotExist)
}

// UpdateEnv updates current process's environment with the values read from
// the first env file found. The location of the env file search path and
// other behaviors can be changed by the input options. Returns nil when no
// env file is found.
func UpdateEnv(filename string, opts ...Option) error {
	fopts, err := newOptions(opts)
	if err != nil {
		return err
	}
	fpath, err := find(filename, fopts)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	fp, err := os.Open(fpath)
	if err != nil {
		return err
	}
	defer fp.Close()

	vars, err := Parse(fp)
	if err != nil {
		return fmt.Errorf("could not parse env file %q: %w", fpath, err)
	}
	for _, v := range vars {
		key := fopts.variableNamePrefix + v.Name
		if len(os.Getenv(key)) != 0 && !fopts.overwriteIfExists {
			continue
		}
		if err := os.Setenv(key, v.Value); err != nil {
			return fmt.Errorf("could not set variable %q from line %d: %w", key, v.Line, err)
		}
	}
	return nil
}
