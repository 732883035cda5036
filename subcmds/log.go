// Copyright (c) 2026 BVK Chaitanya

package subcmds

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bvk/logcraft/catalog"
	"github.com/bvk/logcraft/logcraft"
	"github.com/bvk/logcraft/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Log struct {
	cmdutil.LoggerFlags
	cmdutil.CatalogFlags
	cmdutil.DiagFlags

	level logcraft.Level
	attrs []slog.Attr

	stdin io.Reader
}

func (c *Log) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("log", flag.ContinueOnError)
	c.LoggerFlags.SetFlags(fset)
	c.CatalogFlags.SetFlags(fset)
	c.DiagFlags.SetFlags(fset)
	fset.Var(&c.level, "level", "Severity level for the messages (info or error)")
	fset.Func("attr", "Attribute in key=value form appended to every message (can be repeated)", c.addAttr)
	return "log", fset, cli.CmdFunc(c.run)
}

func (c *Log) Purpose() string {
	return "Writes messages to a new log file"
}

func (c *Log) Description() string {
	return `

Command "log" creates a new log file named Log_<YYYY-MM-DD_HH-MM-SS>.txt in the
log directory and writes the messages into it, one line per message. All
arguments are joined into a single message. When no arguments are given, every
line read from the standard input is written as a separate message.

Attributes given with -attr flags are appended to every message as key="value"
pairs, in the order they were given.

Path to the new log file is printed on the standard output.

Unless -no-catalog is given, the new log file is recorded in the catalog
database, which can be queried with the "history" command.

`
}

func (c *Log) run(ctx context.Context, args []string) (status error) {
	defer c.DiagFlags.Setup()()

	dir := c.LoggerFlags.Dir()
	opts := c.LoggerFlags.Options()

	var catalogErr error
	if !c.CatalogFlags.NoCatalog {
		db, closer, err := c.CatalogFlags.OpenCatalog(ctx, dir)
		if err != nil {
			return err
		}
		defer closer()

		opts.OnCreate = func(id string, l *logcraft.Logger) {
			if err := catalog.Add(ctx, db, catalog.NewEntry(id, l)); err != nil {
				catalogErr = fmt.Errorf("could not record log file %q in the catalog: %w", l.Path(), err)
			}
		}
	}

	registry := logcraft.NewRegistry(opts)
	defer func() {
		if err := registry.Close(); err != nil && status == nil {
			status = err
		}
	}()

	logger, err := registry.GetInstance(c.LoggerFlags.ID(), dir)
	if err != nil {
		return err
	}
	if catalogErr != nil {
		return catalogErr
	}
	slog.Debug("created new log file", "id", c.LoggerFlags.ID(), "path", logger.Path())

	handler := logcraft.NewHandler(logger).WithAttrs(c.attrs)
	if len(args) != 0 {
		if err := c.write(ctx, handler, strings.Join(args, " ")); err != nil {
			return err
		}
	} else {
		stdin := c.stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		if err := c.copyLines(ctx, handler, stdin); err != nil {
			return err
		}
	}

	if err := logger.Save(); err != nil {
		return err
	}
	fmt.Fprintln(cli.Stdout(ctx), logger.Path())
	return nil
}

func (c *Log) addAttr(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || len(key) == 0 {
		return fmt.Errorf("attribute %q must be in key=value form: %w", s, os.ErrInvalid)
	}
	c.attrs = append(c.attrs, slog.String(key, value))
	return nil
}

// write sends msg through the handler directly instead of a slog.Logger,
// which would drop the write errors.
func (c *Log) write(ctx context.Context, h slog.Handler, msg string) error {
	r := slog.NewRecord(time.Now(), c.level.SlogLevel(), msg, 0)
	return h.Handle(ctx, r)
}

func (c *Log) copyLines(ctx context.Context, h slog.Handler, r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) != 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if err := c.write(ctx, h, line); err != nil {
				return err
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("could not read messages from the input: %w", err)
		}
	}
}
