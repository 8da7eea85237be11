// Package fvp extracts image assets from archives of the FVP visual novel
// engine.
//
// An archive is a .bin container of named entries (see package [bin]).
// Image entries are hzc1 streams holding one or more frames (see package
// [hzc]). Character portraits are assembled from a base image and its
// facial expression frames (see package [tachie]).
//
// # Quick Start
//
// List the entries of an archive:
//
//	arc, err := fvp.Open("graph.bin")
//	if err != nil {
//	    return err
//	}
//	defer arc.Close()
//	for _, info := range arc.List() {
//	    fmt.Println(info.Name, info.Size)
//	}
//
// Decode every image entry to PNG files named {entry}-{frame}.png:
//
//	stats, err := arc.Unpack(ctx, "./output",
//	    fvp.UnpackWithWorkers(8),
//	)
//
// Build the portraits of one character:
//
//	stats, err := arc.Tachie(ctx, "./output", "CHR_雪々_喜_着物U")
//
// # Concurrency
//
// Unpack and Tachie fan out over a bounded worker pool. Each unit (an
// archive entry or an expression frame) is decoded and written
// independently. Output files are written to a temporary file and renamed
// into place, so a failed unit never leaves a file at its final path. By
// default the first failure stops dispatching new units; UnpackWithKeepGoing
// processes every entry and reports all failures.
package fvp
