// Copyright (c) 2026 BVK Chaitanya

package subcmds

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"github.com/bvk/logcraft/ctxutil"
	"github.com/visvasity/cli"
	"golang.org/x/term"
)

const (
	colorRed   = "\x1b[31m"
	colorReset = "\x1b[0m"
)

// recordRe matches the prefix of the first line of a log record. Lines
// without the prefix continue a multi-line message of the previous record.
var recordRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2} \[([A-Z]+)\]: `)

type Cat struct {
	follow bool
	poll   time.Duration
	color  string
}

func (c *Cat) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("cat", flag.ContinueOnError)
	fset.BoolVar(&c.follow, "follow", false, "When true, keeps printing new lines appended to the log file")
	fset.DurationVar(&c.poll, "poll", 500*time.Millisecond, "Polling interval to check for new lines in follow mode")
	fset.StringVar(&c.color, "color", "auto", "Highlights ERROR lines: auto, always or never")
	return "cat", fset, cli.CmdFunc(c.run)
}

func (c *Cat) Purpose() string {
	return "Prints log files, optionally following new lines"
}

func (c *Cat) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("this command takes one or more log file arguments")
	}
	if c.follow && len(args) != 1 {
		return fmt.Errorf("follow mode takes exactly one log file argument")
	}
	if c.poll <= 0 {
		return fmt.Errorf("poll interval must be positive: %w", os.ErrInvalid)
	}

	stdout := cli.Stdout(ctx)
	color, err := c.useColor(stdout)
	if err != nil {
		return err
	}

	if c.follow {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	for _, arg := range args {
		if err := c.print(ctx, stdout, arg, color); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cat) useColor(w io.Writer) (bool, error) {
	switch c.color {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if f, ok := w.(*os.File); ok {
			return term.IsTerminal(int(f.Fd())), nil
		}
		return false, nil
	}
	return false, fmt.Errorf("invalid color flag value %q: %w", c.color, os.ErrInvalid)
}

func (c *Cat) print(ctx context.Context, w io.Writer, fpath string, color bool) error {
	fp, err := os.Open(fpath)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer fp.Close()

	hl := &highlighter{w: w, color: color}
	br := bufio.NewReader(fp)
	var partial string
	for {
		s, err := br.ReadString('\n')
		partial += s
		if err == nil {
			hl.printLine(partial)
			partial = ""
			continue
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not read log file %q: %w", fpath, err)
		}
		if !c.follow {
			if len(partial) != 0 {
				hl.printLine(partial + "\n")
			}
			return nil
		}
		if ctxutil.Sleep(ctx, c.poll) != nil {
			return nil
		}
	}
}

// highlighter colors every line of ERROR records, including the
// continuation lines of multi-line messages.
type highlighter struct {
	w     io.Writer
	color bool

	inError bool
}

func (h *highlighter) printLine(line string) {
	if !h.color {
		fmt.Fprint(h.w, line)
		return
	}
	if m := recordRe.FindStringSubmatch(line); m != nil {
		h.inError = m[1] == "ERROR"
	}
	if !h.inError {
		fmt.Fprint(h.w, line)
		return
	}
	fmt.Fprint(h.w, colorRed+line[:len(line)-1]+colorReset+"\n")
}
