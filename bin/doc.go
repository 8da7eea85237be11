// Package bin reads and writes FVP .bin containers.
//
// A container is a flat little-endian file with no signature:
//
//	u32 entryCount
//	u32 nameTableByteLength
//	entryCount × { u32 nameOffset, u32 dataOffset, u32 dataSize }
//	name table: entryCount NUL-terminated Shift-JIS names
//	data blocks
//
// Name offsets are relative to the start of the name table; data offsets are
// absolute. A parsed [Archive] is a view over the caller's buffer: entries
// alias it and the buffer must stay alive and unmodified while they are used.
package bin
