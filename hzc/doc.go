// Package hzc decodes the FVP engine's hzc1 tiled-image format.
//
// An hzc1 stream is laid out as (little-endian):
//
//	"hzc1"  u32 unpackedSize  u32 headerSize
//	headerSize bytes of NVSG header
//	zlib stream inflating to exactly unpackedSize bytes
//
// The NVSG header carries the pixel layout, the frame size, the placement of
// every frame on its parent canvas and the frame count. The inflated payload
// is split into Count equal contiguous frames, each Width×Height pixels in
// the source layout. [Frame.Standard] reorders a frame into RGB, RGBA or gray
// order for image encoders.
//
// Encoding is not supported.
package hzc
