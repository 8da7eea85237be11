package fvp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fvpkit/fvp/bin"
	"github.com/fvpkit/fvp/hzc"
	"github.com/fvpkit/fvp/testutil"
)

// grayImage builds an hzc1 gray image with frames of w×h pixels.
func grayImage(t *testing.T, w, h uint16, frames ...[]byte) []byte {
	t.Helper()
	var payload []byte
	for _, f := range frames {
		require.Len(t, f, int(w)*int(h))
		payload = append(payload, f...)
	}
	return testutil.Hzc{
		Layout:  uint16(hzc.LayoutGray),
		Width:   w,
		Height:  h,
		Count:   uint32(len(frames)),
		Payload: payload,
	}.Bytes(t)
}

// writeArchive writes a container with entries to a temp file.
func writeArchive(t *testing.T, entries ...bin.Entry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arc.bin")
	require.NoError(t, os.WriteFile(path, testutil.Archive(t, entries...), 0o600))
	return path
}

// openArchive opens a container with entries and closes it with the test.
func openArchive(t *testing.T, entries ...bin.Entry) *Archive {
	t.Helper()
	arc, err := Open(writeArchive(t, entries...))
	require.NoError(t, err)
	t.Cleanup(func() { _ = arc.Close() })
	return arc
}
