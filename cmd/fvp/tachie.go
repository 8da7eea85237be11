package main

import (
	"github.com/urfave/cli/v2"

	"github.com/fvpkit/fvp"
)

func (a *app) tachieCommand() *cli.Command {
	return &cli.Command{
		Name:  "tachie",
		Usage: "composite character portraits (立ち絵) with every facial expression",
		Flags: []cli.Flag{
			inputFlag("archive holding the character images"),
			outputDirFlag(),
			&cli.StringSliceFlag{
				Name:     "character",
				Aliases:  []string{"c"},
				Usage:    "base entry name, e.g. CHR_雪々_喜_着物U (repeatable)",
				Required: true,
			},
			formatFlag(),
			workersFlag(),
			overwriteFlag(),
		},
		Action: a.tachie,
	}
}

func (a *app) tachie(c *cli.Context) error {
	format, err := fvp.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}

	arc, err := fvp.Open(c.Path("input"), fvp.WithLogger(a.logger))
	if err != nil {
		return err
	}
	defer arc.Close()

	var total fvp.Stats
	for _, character := range c.StringSlice("character") {
		stats, err := arc.Tachie(c.Context, c.Path("output"), character,
			fvp.TachieWithFormat(format),
			fvp.TachieWithWorkers(c.Int("workers")),
			fvp.TachieWithOverwrite(c.Bool("overwrite")),
		)
		total.Entries += stats.Entries
		total.Files += stats.Files
		total.Skipped += stats.Skipped
		total.Bytes += stats.Bytes
		if err != nil {
			a.report(total)
			return err
		}
	}
	a.report(total)
	return nil
}
