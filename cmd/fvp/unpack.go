package main

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/urfave/cli/v2"

	"github.com/fvpkit/fvp"
)

func (a *app) unpackCommand() *cli.Command {
	return &cli.Command{
		Name:  "unpack",
		Usage: "decode every image entry to {entry}-{frame}.{format}",
		Flags: []cli.Flag{
			inputFlag("archive to unpack"),
			outputDirFlag(),
			formatFlag(),
			workersFlag(),
			overwriteFlag(),
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "write entries verbatim instead of decoding them",
			},
			&cli.BoolFlag{
				Name:    "keep-going",
				Aliases: []string{"k"},
				Usage:   "continue after failed entries and report all failures",
				EnvVars: []string{"FVP_KEEP_GOING"},
			},
			&cli.StringFlag{
				Name:    "max-memory",
				Usage:   "cap decoded bytes held by workers, e.g. 512MiB (0 = unlimited)",
				Value:   "0",
				EnvVars: []string{"FVP_MAX_MEMORY"},
			},
		},
		Action: a.unpack,
	}
}

func (a *app) unpack(c *cli.Context) error {
	format, err := fvp.ParseFormat(c.String("format"))
	if err != nil {
		return err
	}
	maxMemory, err := units.RAMInBytes(c.String("max-memory"))
	if err != nil {
		return fmt.Errorf("invalid --max-memory: %w", err)
	}

	arc, err := fvp.Open(c.Path("input"), fvp.WithLogger(a.logger))
	if err != nil {
		return err
	}
	defer arc.Close()

	stats, err := arc.Unpack(c.Context, c.Path("output"),
		fvp.UnpackWithFormat(format),
		fvp.UnpackWithRaw(c.Bool("raw")),
		fvp.UnpackWithWorkers(c.Int("workers")),
		fvp.UnpackWithOverwrite(c.Bool("overwrite")),
		fvp.UnpackWithKeepGoing(c.Bool("keep-going")),
		fvp.UnpackWithMaxInFlightBytes(maxMemory),
	)
	a.report(stats)
	return err
}

// report prints a one-line summary of a batch operation.
func (a *app) report(stats fvp.Stats) {
	fmt.Fprintf(a.stdout, "%d files written (%s), %d skipped\n",
		stats.Files, units.HumanSize(float64(stats.Bytes)), stats.Skipped)
	if stats.Skipped > 0 {
		fmt.Fprintln(a.stdout, "existing files were kept; use --overwrite to replace them")
	}
}
