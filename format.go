package fvp

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Format is an output image file format.
type Format string

// Supported output formats.
const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// ParseFormat parses a format name such as "png" or "BMP".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatBMP:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want png or bmp)", s)
	}
}

// Ext returns the file name extension, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// Encode writes img to w in format f.
func (f Format) Encode(w io.Writer, img image.Image) error {
	enc, err := f.encoder()
	if err != nil {
		return err
	}
	return enc(w, img)
}

func (f Format) encoder() (imgio.Encoder, error) {
	switch f {
	case FormatPNG, "":
		return imgio.PNGEncoder(), nil
	case FormatBMP:
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", string(f))
	}
}
