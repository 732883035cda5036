// Copyright (c) 2026 BVK Chaitanya

package main

import (
	"context"
	"log"
	"os"

	"github.com/bvk/logcraft/envfile"
	"github.com/bvk/logcraft/subcmds"
	"github.com/visvasity/cli"
)

func main() {
	if err := envfile.UpdateEnv(".logcraft.env", envfile.SearchCurrentDir(true)); err != nil {
		log.Fatal(err)
	}

	cmds := []cli.Command{
		new(subcmds.Log),
		new(subcmds.List),
		new(subcmds.History),
		new(subcmds.Cat),
	}
	if err := cli.Run(context.Background(), cmds, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
