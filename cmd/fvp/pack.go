package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/fvpkit/fvp"
)

func (a *app) packCommand() *cli.Command {
	return &cli.Command{
		Name:  "pack",
		Usage: "build an archive from the files of a directory",
		Flags: []cli.Flag{
			inputFlag("directory to pack"),
			&cli.PathFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "archive to write",
				Required: true,
			},
		},
		Action: a.pack,
	}
}

func (a *app) pack(c *cli.Context) error {
	n, err := fvp.Pack(c.Context, c.Path("input"), c.Path("output"), fvp.PackWithLogger(a.logger))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%d entries packed into %s\n", n, c.Path("output"))
	return nil
}
