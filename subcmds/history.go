// Copyright (c) 2026 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/bvk/logcraft/catalog"
	"github.com/bvk/logcraft/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type History struct {
	cmdutil.LoggerFlags
	cmdutil.CatalogFlags

	all bool
}

func (c *History) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("history", flag.ContinueOnError)
	c.LoggerFlags.SetFlags(fset)
	c.CatalogFlags.SetFlags(fset)
	fset.BoolVar(&c.all, "all", false, "When true, log files of all identifiers are printed")
	return "history", fset, cli.CmdFunc(c.run)
}

func (c *History) Purpose() string {
	return "Prints log files recorded in the catalog for an identifier"
}

func (c *History) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	if c.CatalogFlags.NoCatalog {
		return fmt.Errorf("history command needs the catalog")
	}

	db, closer, err := c.CatalogFlags.OpenCatalog(ctx, c.LoggerFlags.Dir())
	if err != nil {
		return err
	}
	defer closer()

	name := c.LoggerFlags.ID()
	if c.all {
		name = ""
	}
	entries, err := catalog.List(ctx, db, name)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cli.Stdout(ctx), 8, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tName\tCreated\tPID\tPath\t\n")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t\n", e.ID, e.Name, e.CreatedAt.Format(time.RFC3339), e.PID, e.Path)
	}
	return tw.Flush()
}
