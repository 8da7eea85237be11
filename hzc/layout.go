package hzc

import "fmt"

// Layout is the pixel layout tag stored in the NVSG header.
type Layout uint16

// Layout tags observed in archives.
const (
	// LayoutBGR stores 3 bytes per pixel in blue, green, red order.
	LayoutBGR Layout = 0

	// LayoutBGRA stores 4 bytes per pixel in blue, green, red, alpha order.
	LayoutBGRA Layout = 1

	// LayoutBGRAVariant is byte-identical to LayoutBGRA. The engine uses a
	// distinct tag for it, possibly for a different alpha interpretation
	// (straight vs premultiplied) that is not known. Both tags are decoded
	// the same way and emitted as straight alpha.
	LayoutBGRAVariant Layout = 2

	// LayoutGray stores 1 byte per pixel.
	LayoutGray Layout = 3

	// LayoutReserved is used by the engine but its pixel format is
	// unknown. Decoding it fails with ErrUnsupportedLayout.
	LayoutReserved Layout = 4
)

// String returns a short name for the layout.
func (l Layout) String() string {
	switch l {
	case LayoutBGR:
		return "bgr"
	case LayoutBGRA:
		return "bgra"
	case LayoutBGRAVariant:
		return "bgra-variant"
	case LayoutGray:
		return "gray"
	case LayoutReserved:
		return "reserved"
	default:
		return "unknown"
	}
}

// BytesPerPixel returns the pixel size of a supported layout.
func (l Layout) BytesPerPixel() (int, error) {
	switch l {
	case LayoutBGR:
		return 3, nil
	case LayoutBGRA, LayoutBGRAVariant:
		return 4, nil
	case LayoutGray:
		return 1, nil
	default:
		return 0, &UnsupportedLayoutError{Layout: l}
	}
}

// Standard returns a copy of src reordered from the source layout to the
// standard channel order: RGB, RGBA or gray.
func (l Layout) Standard(src []byte) ([]byte, error) {
	return l.reorder(src)
}

// FromStandard is the inverse of Standard.
func (l Layout) FromStandard(src []byte) ([]byte, error) {
	// Swapping the first and third channel is its own inverse.
	return l.reorder(src)
}

func (l Layout) reorder(src []byte) ([]byte, error) {
	bpp, err := l.BytesPerPixel()
	if err != nil {
		return nil, err
	}
	if len(src)%bpp != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of %d-byte pixels",
			ErrDimensionMismatch, len(src), bpp)
	}

	dst := make([]byte, len(src))
	if bpp == 1 {
		copy(dst, src)
		return dst, nil
	}
	for i := 0; i < len(src); i += bpp {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		if bpp == 4 {
			dst[i+3] = src[i+3]
		}
	}
	return dst, nil
}
