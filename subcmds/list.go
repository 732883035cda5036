// Copyright (c) 2026 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/bvk/logcraft/logcraft"
	"github.com/bvk/logcraft/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type List struct {
	cmdutil.LoggerFlags
}

func (c *List) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("list", flag.ContinueOnError)
	c.LoggerFlags.SetFlags(fset)
	return "list", fset, cli.CmdFunc(c.run)
}

func (c *List) Purpose() string {
	return "Lists log files in the log directory in creation order"
}

type logFile struct {
	name string
	at   time.Time
	seq  int
	size int64
}

func (c *List) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}

	loc := time.Local
	if tz := c.LoggerFlags.TimeZone(); len(tz) != 0 {
		v, err := time.LoadLocation(tz)
		if err != nil {
			return &logcraft.ClockError{Zone: tz, Err: err}
		}
		loc = v
	}

	dir := c.LoggerFlags.Dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read log directory %q: %w", dir, err)
	}

	var files []*logFile
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		at, seq, err := logcraft.ParseFileName(entry.Name(), loc)
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("could not stat log file %q: %w", entry.Name(), err)
		}
		files = append(files, &logFile{name: entry.Name(), at: at, seq: seq, size: info.Size()})
	}
	slices.SortFunc(files, func(a, b *logFile) int {
		if v := a.at.Compare(b.at); v != 0 {
			return v
		}
		return a.seq - b.seq
	})

	tw := tabwriter.NewWriter(cli.Stdout(ctx), 8, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\tCreated\tSize\t\n")
	for _, f := range files {
		fmt.Fprintf(tw, "%s\t%s\t%d\t\n", f.name, f.at.Format(time.RFC3339), f.size)
	}
	return tw.Flush()
}
