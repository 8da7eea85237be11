package hzc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutBytesPerPixel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		layout Layout
		want   int
	}{
		{LayoutBGR, 3},
		{LayoutBGRA, 4},
		{LayoutBGRAVariant, 4},
		{LayoutGray, 1},
	}
	for _, tt := range tests {
		t.Run(tt.layout.String(), func(t *testing.T) {
			t.Parallel()
			got, err := tt.layout.BytesPerPixel()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLayoutUnsupported(t *testing.T) {
	t.Parallel()

	for _, l := range []Layout{LayoutReserved, 5, 99, 0xffff} {
		_, err := l.BytesPerPixel()
		require.ErrorIs(t, err, ErrUnsupportedLayout)

		var layoutErr *UnsupportedLayoutError
		require.ErrorAs(t, err, &layoutErr)
		assert.Equal(t, l, layoutErr.Layout)

		_, err = l.Standard([]byte{1, 2, 3, 4})
		require.ErrorIs(t, err, ErrUnsupportedLayout)
	}
}

func TestLayoutStandard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		layout Layout
		src    []byte
		want   []byte
	}{
		{"bgr", LayoutBGR, []byte{1, 2, 3, 4, 5, 6}, []byte{3, 2, 1, 6, 5, 4}},
		{"bgra", LayoutBGRA, []byte{1, 2, 3, 4, 5, 6, 7, 8}, []byte{3, 2, 1, 4, 7, 6, 5, 8}},
		{"bgra variant", LayoutBGRAVariant, []byte{10, 20, 30, 40}, []byte{30, 20, 10, 40}},
		{"gray", LayoutGray, []byte{9, 8, 7}, []byte{9, 8, 7}},
		{"empty", LayoutBGR, []byte{}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := append([]byte(nil), tt.src...)
			got, err := tt.layout.Standard(src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.src, src, "source must not be modified")

			back, err := tt.layout.FromStandard(got)
			require.NoError(t, err)
			assert.Equal(t, tt.src, back)
		})
	}
}

func TestLayoutBGRAVariantsAgree(t *testing.T) {
	t.Parallel()

	src := []byte{0x10, 0x20, 0x30, 0x80, 0xff, 0x00, 0x7f, 0x00}
	a, err := LayoutBGRA.Standard(src)
	require.NoError(t, err)
	b, err := LayoutBGRAVariant.Standard(src)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLayoutStandardPartialPixel(t *testing.T) {
	t.Parallel()

	_, err := LayoutBGR.Standard([]byte{1, 2, 3, 4})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
