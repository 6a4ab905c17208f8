package snapshot

import "errors"

const (
	// MagicNumber identifies arenakit snapshot streams (ASCII: "ARK1").
	MagicNumber = 0x41524B31
	// Version is the current snapshot format version.
	Version = 1
)

// Compression selects the codec applied to the buffer payload.
type Compression uint8

const (
	// CompressionNone stores the payload verbatim.
	CompressionNone Compression = iota
	// CompressionZstd compresses with zstd at the default level.
	CompressionZstd
	// CompressionLZ4 compresses with an LZ4 block. Payloads that do not
	// compress are stored verbatim, detected at read time by the stored
	// length equaling the raw length.
	CompressionLZ4
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported snapshot version")
	ErrInvalidCompression = errors.New("unknown compression codec")
	ErrChecksumMismatch   = errors.New("snapshot checksum mismatch")
	ErrCorruptHeader      = errors.New("corrupt snapshot header")
)

// header precedes the (possibly compressed) buffer payload. All fields
// are little-endian.
type header struct {
	Magic       uint32
	Version     uint32
	Compression uint8
	Padding     [3]byte
	Capacity    uint64 // storage capacity in bytes
	Used        uint64 // raw payload length (cursor position)
	Checksum    uint32 // CRC-32 (IEEE) of the raw payload
	BlobLen     uint64 // stored payload length after compression
}
