package sizing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOverflow = errors.New("overflow")

func TestRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		off, n     int
		size       int
		wantInside bool
	}{
		{"empty at start", 0, 0, 0, true},
		{"exact fit", 2, 2, 4, true},
		{"one past end", 3, 2, 4, false},
		{"offset past end", 5, 0, 4, false},
		{"negative offset", -1, 1, 4, false},
		{"huge length", 1, math.MaxInt, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantInside, Range(tt.off, tt.n, tt.size))
		})
	}
}

func TestMul(t *testing.T) {
	t.Parallel()

	got, ok := Mul(640, 480, 4)
	require.True(t, ok)
	assert.Equal(t, 640*480*4, got)

	_, ok = Mul(math.MaxInt, 2)
	assert.False(t, ok)

	_, ok = Mul(-1, 2)
	assert.False(t, ok)

	got, ok = Mul(0, math.MaxInt)
	require.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestToUint32(t *testing.T) {
	t.Parallel()

	v, err := ToUint32(42, errOverflow)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	_, err = ToUint32(-1, errOverflow)
	require.ErrorIs(t, err, errOverflow)

	_, err = ToUint32(math.MaxUint32+1, errOverflow)
	require.ErrorIs(t, err, errOverflow)
}

func TestAddUint32(t *testing.T) {
	t.Parallel()

	sum, ok := AddUint32(1, 2)
	require.True(t, ok)
	assert.Equal(t, uint32(3), sum)

	_, ok = AddUint32(math.MaxUint32, 1)
	assert.False(t, ok)
}
