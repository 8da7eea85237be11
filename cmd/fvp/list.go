package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/docker/go-units"
	"github.com/urfave/cli/v2"

	"github.com/fvpkit/fvp"
)

// binaryAbbrs are the IEC unit suffixes used for --human sizes.
var binaryAbbrs = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

func (a *app) listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list the entries of an archive",
		Flags: []cli.Flag{
			inputFlag("archive to list"),
			&cli.BoolFlag{
				Name:  "human",
				Usage: "print sizes like 1.00 KiB, 234.00 MiB",
			},
			&cli.BoolFlag{
				Name:  "digest",
				Usage: "print the sha256 digest of every entry",
			},
		},
		Action: a.list,
	}
}

func (a *app) list(c *cli.Context) error {
	arc, err := fvp.Open(c.Path("input"), fvp.WithLogger(a.logger))
	if err != nil {
		return err
	}
	defer arc.Close()

	infos := arc.List(fvp.ListWithDigests(c.Bool("digest")))

	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	header := "NAME\tSIZE\tIMAGE"
	if c.Bool("digest") {
		header += "\tDIGEST"
	}
	fmt.Fprintln(tw, header)
	for _, info := range infos {
		row := info.Name + "\t" + formatSize(info.Size, c.Bool("human")) + "\t" + describeImage(info)
		if c.Bool("digest") {
			row += "\t" + info.Digest.String()
		}
		fmt.Fprintln(tw, row)
	}
	return tw.Flush()
}

func formatSize(size int, human bool) string {
	if !human {
		return strconv.Itoa(size)
	}
	return units.CustomSize("%.2f %s", float64(size), 1024, binaryAbbrs)
}

func describeImage(info fvp.EntryInfo) string {
	h := info.Image
	if h == nil {
		return "-"
	}
	return fmt.Sprintf("%s %dx%d x%d", h.Layout, h.Width, h.Height, h.Count)
}
