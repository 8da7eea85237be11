// Command fvp lists, unpacks and repacks FVP engine archives.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newApp(os.Stdout, os.Stderr).RunContext(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds state shared by subcommands.
type app struct {
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newApp(stdout, stderr io.Writer) *cli.App {
	a := &app{stdout: stdout, stderr: stderr}
	return &cli.App{
		Name:      "fvp",
		Usage:     "extract images from FVP engine .bin archives",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
				EnvVars: []string{"FVP_VERBOSE"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: text or json",
				Value:   "text",
				EnvVars: []string{"FVP_LOG_FORMAT"},
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			a.listCommand(),
			a.unpackCommand(),
			a.tachieCommand(),
			a.packCommand(),
		},
	}
}

// setup installs the logger selected by the global flags.
func (a *app) setup(c *cli.Context) error {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(c.String("log-format")) {
	case "text":
		a.logger = slog.New(slog.NewTextHandler(a.stderr, opts))
	case "json":
		a.logger = slog.New(slog.NewJSONHandler(a.stderr, opts))
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.String("log-format"))
	}
	return nil
}

// Flags shared by several subcommands.
func inputFlag(usage string) cli.Flag {
	return &cli.PathFlag{
		Name:     "input",
		Aliases:  []string{"i"},
		Usage:    usage,
		Required: true,
		EnvVars:  []string{"FVP_INPUT"},
	}
}

func outputDirFlag() cli.Flag {
	return &cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output directory",
		Value:   "./output",
		EnvVars: []string{"FVP_OUTPUT"},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output image format: png or bmp",
		Value:   "png",
		EnvVars: []string{"FVP_FORMAT"},
	}
}

func workersFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"j"},
		Usage:   "number of parallel workers (0 = number of CPUs, <0 = serial)",
		EnvVars: []string{"FVP_WORKERS"},
	}
}

func overwriteFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "overwrite",
		Usage:   "replace existing output files (by default they are kept and counted as skipped)",
		EnvVars: []string{"FVP_OVERWRITE"},
	}
}
