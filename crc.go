package apng

import "hash/crc32"

// crcTable is the reflected 0xEDB88320 table. It is built once and only read
// afterwards, so Checksum is safe for concurrent use.
var crcTable = crc32.MakeTable(crc32.IEEE)

// Checksum returns the PNG CRC-32 of the concatenation of bs.  For a chunk,
// pass the type tag followed by the payload.
func Checksum(bs ...[]byte) uint32 {
	var crc uint32
	for _, b := range bs {
		crc = crc32.Update(crc, crcTable, b)
	}
	return crc
}
