package fvp

import (
	"github.com/opencontainers/go-digest"

	"github.com/fvpkit/fvp/hzc"
)

// EntryInfo describes one archive entry.
type EntryInfo struct {
	// Name is the decoded entry name.
	Name string

	// Size is the stored size in bytes.
	Size int

	// Digest is the SHA-256 digest of the stored bytes. It is empty unless
	// requested with ListWithDigests.
	Digest digest.Digest

	// Image is the hzc1 header of image entries and nil for other entries.
	Image *hzc.Header
}

// ListOption configures List.
type ListOption func(*listConfig)

type listConfig struct {
	digests bool
}

// ListWithDigests computes a content digest for every entry.
func ListWithDigests(enabled bool) ListOption {
	return func(c *listConfig) {
		c.digests = enabled
	}
}

// List describes the entries in container order.
func (a *Archive) List(opts ...ListOption) []EntryInfo {
	var cfg listConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	infos := make([]EntryInfo, 0, a.Len())
	for _, e := range a.bin.All() {
		info := EntryInfo{
			Name: e.Name(),
			Size: e.Size(),
		}
		if cfg.digests {
			info.Digest = digest.FromBytes(e.Data())
		}
		if h, err := hzc.ReadHeader(e.Data()); err == nil {
			info.Image = &h
		}
		infos = append(infos, info)
	}
	return infos
}
