// Package tachie composites character portraits (立ち絵) from a single-frame
// base image and a multi-frame facial expression image.
//
// Each expression frame is placed at its own (X, Y) in the base frame's
// coordinate space and copied over the base row by row. Pixels are copied
// verbatim; there is no alpha blending.
package tachie

import (
	"errors"
	"fmt"

	"github.com/fvpkit/fvp/hzc"
)

// ExpressionSuffix is appended to a base entry name to find its expression
// entry.
const ExpressionSuffix = "_表情"

var (
	// ErrMultipleBaseFrames is returned when the base image has more than
	// one frame.
	ErrMultipleBaseFrames = errors.New("fvp: base image must have exactly one frame")

	// ErrLayoutMismatch is returned when base and expression layouts differ.
	ErrLayoutMismatch = hzc.ErrLayoutMismatch

	// ErrPlacementOutOfBounds is returned when an expression frame does not
	// fit inside the base frame.
	ErrPlacementOutOfBounds = errors.New("fvp: expression placement out of bounds")
)

// ExpressionName returns the name of the expression entry for base.
func ExpressionName(base string) string {
	return base + ExpressionSuffix
}

// Compose returns one composite per frame of expr, in frame order.
// base must hold exactly one frame.
func Compose(base, expr *hzc.Image) ([]hzc.Frame, error) {
	if err := Check(base, expr); err != nil {
		return nil, err
	}

	out := make([]hzc.Frame, 0, expr.Len())
	for i, f := range expr.All() {
		c, err := ComposeFrame(base.Frame(0), f)
		if err != nil {
			return nil, fmt.Errorf("expression frame %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Check reports whether base and expr can be composited: base must hold
// exactly one frame and both images must share a layout. Placement is
// checked per frame by ComposeFrame.
func Check(base, expr *hzc.Image) error {
	if base.Len() != 1 {
		return fmt.Errorf("%w: found %d", ErrMultipleBaseFrames, base.Len())
	}
	if base.Layout() != expr.Layout() {
		return layoutMismatch(base.Layout(), expr.Layout())
	}
	return nil
}

// ComposeFrame returns a copy of base with expr written over it at
// (expr.X, expr.Y). Neither input is modified and the result shares no
// memory with them.
func ComposeFrame(base, expr hzc.Frame) (hzc.Frame, error) {
	if base.Layout != expr.Layout {
		return hzc.Frame{}, layoutMismatch(base.Layout, expr.Layout)
	}
	if err := base.Validate(); err != nil {
		return hzc.Frame{}, fmt.Errorf("base frame: %w", err)
	}
	if err := expr.Validate(); err != nil {
		return hzc.Frame{}, fmt.Errorf("expression frame: %w", err)
	}
	if expr.X < 0 || expr.Y < 0 ||
		expr.X+expr.Width > base.Width || expr.Y+expr.Height > base.Height {
		return hzc.Frame{}, fmt.Errorf("%w: %dx%d at (%d, %d) on %dx%d base",
			ErrPlacementOutOfBounds, expr.Width, expr.Height, expr.X, expr.Y, base.Width, base.Height)
	}

	bpp, err := base.Layout.BytesPerPixel()
	if err != nil {
		return hzc.Frame{}, err
	}
	out := base.Clone()
	dstStride := base.Width * bpp
	srcStride := expr.Width * bpp
	for row := range expr.Height {
		dst := (expr.Y+row)*dstStride + expr.X*bpp
		src := row * srcStride
		copy(out.Pix[dst:dst+srcStride], expr.Pix[src:src+srcStride])
	}
	return out, nil
}

func layoutMismatch(base, expr hzc.Layout) error {
	return fmt.Errorf("%w: base is %s, expression is %s", ErrLayoutMismatch, base, expr)
}
