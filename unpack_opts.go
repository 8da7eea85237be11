package fvp

// Stats summarizes an Unpack or Tachie operation.
type Stats struct {
	// Entries is the number of units completed: archive entries for
	// Unpack, composites for Tachie.
	Entries int

	// Files is the number of files written.
	Files int

	// Skipped is the number of files left untouched because they existed.
	Skipped int

	// Bytes is the total size of the files written.
	Bytes uint64
}

// batchConfig holds the fan-out settings shared by Unpack and Tachie.
type batchConfig struct {
	format      Format
	workers     int
	overwrite   bool
	keepGoing   bool
	maxInFlight int64
	progress    ProgressFunc
}

func (c *batchConfig) getFormat() Format {
	if c.format == "" {
		return FormatPNG
	}
	return c.format
}

// UnpackOption configures Unpack.
type UnpackOption func(*unpackConfig)

type unpackConfig struct {
	batchConfig
	raw bool
}

// UnpackWithFormat sets the output image format (default: PNG).
func UnpackWithFormat(f Format) UnpackOption {
	return func(c *unpackConfig) {
		c.format = f
	}
}

// UnpackWithRaw writes every entry's stored bytes to a file named after the
// entry instead of decoding it.
func UnpackWithRaw(enabled bool) UnpackOption {
	return func(c *unpackConfig) {
		c.raw = enabled
	}
}

// UnpackWithWorkers sets the number of workers for parallel processing.
// Values < 0 force serial processing. Zero uses GOMAXPROCS.
func UnpackWithWorkers(n int) UnpackOption {
	return func(c *unpackConfig) {
		c.workers = n
	}
}

// UnpackWithOverwrite allows overwriting existing files.
// By default, existing files are skipped.
func UnpackWithOverwrite(overwrite bool) UnpackOption {
	return func(c *unpackConfig) {
		c.overwrite = overwrite
	}
}

// UnpackWithKeepGoing processes every entry even after failures and returns
// all errors joined together.
func UnpackWithKeepGoing(enabled bool) UnpackOption {
	return func(c *unpackConfig) {
		c.keepGoing = enabled
	}
}

// UnpackWithMaxInFlightBytes caps the decoded bytes held by running workers.
// A value of 0 disables the byte budget.
func UnpackWithMaxInFlightBytes(limit int64) UnpackOption {
	return func(c *unpackConfig) {
		c.maxInFlight = limit
	}
}

// UnpackWithProgress sets a callback invoked after each entry is written.
func UnpackWithProgress(fn ProgressFunc) UnpackOption {
	return func(c *unpackConfig) {
		c.progress = fn
	}
}

// TachieOption configures Tachie.
type TachieOption func(*tachieConfig)

type tachieConfig struct {
	batchConfig
}

// TachieWithFormat sets the output image format (default: PNG).
func TachieWithFormat(f Format) TachieOption {
	return func(c *tachieConfig) {
		c.format = f
	}
}

// TachieWithWorkers sets the number of workers for parallel processing.
// Values < 0 force serial processing. Zero uses GOMAXPROCS.
func TachieWithWorkers(n int) TachieOption {
	return func(c *tachieConfig) {
		c.workers = n
	}
}

// TachieWithOverwrite allows overwriting existing files.
// By default, existing files are skipped.
func TachieWithOverwrite(overwrite bool) TachieOption {
	return func(c *tachieConfig) {
		c.overwrite = overwrite
	}
}

// TachieWithProgress sets a callback invoked after each composite is written.
func TachieWithProgress(fn ProgressFunc) TachieOption {
	return func(c *tachieConfig) {
		c.progress = fn
	}
}
