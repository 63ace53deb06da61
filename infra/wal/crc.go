package wal

import "hash/crc32"

// CRC32 checksums a frame's header plus payload with the IEEE
// polynomial. The sum is the last four bytes of every record on disk.
func CRC32(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}

// CRC32Valid reports whether sum matches data. Replay rejects any
// frame that fails this check.
func CRC32Valid(data []byte, sum uint32) bool {
	return CRC32(data) == sum
}
