package hzc

import "image"

// Frame is one raster tile of an image. Pix holds Width×Height pixels in
// the source layout, row-major without padding.
type Frame struct {
	Layout Layout
	Width  int
	Height int

	// X and Y place the frame on its parent canvas.
	X int
	Y int

	Pix []byte
}

// Stride returns the length of one row of Pix in bytes.
func (f Frame) Stride() (int, error) {
	bpp, err := f.Layout.BytesPerPixel()
	if err != nil {
		return 0, err
	}
	return f.Width * bpp, nil
}

// Bounds returns the frame's rectangle on its parent canvas.
func (f Frame) Bounds() image.Rectangle {
	return image.Rect(f.X, f.Y, f.X+f.Width, f.Y+f.Height)
}

// Clone returns a copy of f that does not share Pix.
func (f Frame) Clone() Frame {
	f.Pix = append([]byte(nil), f.Pix...)
	return f
}

// Standard returns the frame's pixels in standard channel order.
func (f Frame) Standard() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.Layout.Standard(f.Pix)
}

// Image converts the frame to an image for encoding. Gray frames become
// *image.Gray; color frames become *image.NRGBA, opaque for LayoutBGR.
// The image's origin is (0, 0); placement is dropped.
func (f Frame) Image() (image.Image, error) {
	pix, err := f.Standard()
	if err != nil {
		return nil, err
	}
	rect := image.Rect(0, 0, f.Width, f.Height)

	switch f.Layout {
	case LayoutGray:
		return &image.Gray{Pix: pix, Stride: f.Width, Rect: rect}, nil
	case LayoutBGR:
		img := image.NewNRGBA(rect)
		for i, j := 0, 0; i < len(pix); i, j = i+3, j+4 {
			img.Pix[j] = pix[i]
			img.Pix[j+1] = pix[i+1]
			img.Pix[j+2] = pix[i+2]
			img.Pix[j+3] = 0xff
		}
		return img, nil
	default:
		return &image.NRGBA{Pix: pix, Stride: f.Width * 4, Rect: rect}, nil
	}
}

// Validate checks that Pix holds exactly Width×Height pixels of a supported
// layout.
func (f Frame) Validate() error {
	stride, err := f.Stride()
	if err != nil {
		return err
	}
	if f.Width < 0 || f.Height < 0 {
		return &DimensionMismatchError{Field: "size", Expected: 0, Found: min(f.Width, f.Height)}
	}
	if want := stride * f.Height; len(f.Pix) != want {
		return &DimensionMismatchError{Field: "byte length", Expected: want, Found: len(f.Pix)}
	}
	return nil
}
