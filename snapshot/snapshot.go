// Package snapshot serializes arena storage state for debugging,
// transfer between processes, or restoring a pre-built arena image.
//
// A snapshot captures the used prefix of the buffer plus the cursor
// position. The last-allocation cache is deliberately not captured: a
// restored arena cannot resize its predecessor's final allocation in
// place, it can only allocate past it.
//
// Integrity is guarded by a CRC-32 of the raw payload; the payload may be
// stored verbatim or compressed with zstd or LZ4.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/hupe1980/arenakit"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Write serializes s to w.
func Write(w io.Writer, s *arenakit.Storage, opts ...Option) error {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	payload := s.Buffer()[:s.Used()]
	blob, err := compress(payload, o.compression)
	if err != nil {
		return err
	}

	h := header{
		Magic:       MagicNumber,
		Version:     Version,
		Compression: uint8(o.compression),
		Capacity:    uint64(s.Size()),
		Used:        uint64(len(payload)),
		Checksum:    crc32.ChecksumIEEE(payload),
		BlobLen:     uint64(len(blob)),
	}
	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}
	if _, err := w.Write(blob); err != nil {
		return fmt.Errorf("write snapshot payload: %w", err)
	}
	return nil
}

// Read deserializes a snapshot from r into a fresh Storage. The returned
// storage has the snapshot's capacity, its buffer pre-populated and its
// cursor set; the last-allocation cache is empty.
func Read(r io.Reader) (*arenakit.Storage, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("read snapshot header: %w", err)
	}
	if h.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if h.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, h.Version)
	}
	if err := validateHeader(&h); err != nil {
		return nil, err
	}

	blob := make([]byte, h.BlobLen)
	if _, err := io.ReadFull(r, blob); err != nil {
		return nil, fmt.Errorf("read snapshot payload: %w", err)
	}

	payload, err := decompress(blob, Compression(h.Compression), int(h.Used))
	if err != nil {
		return nil, err
	}
	if uint64(len(payload)) != h.Used {
		return nil, fmt.Errorf("corrupt snapshot: payload length %d, header says %d", len(payload), h.Used)
	}
	if crc32.ChecksumIEEE(payload) != h.Checksum {
		return nil, ErrChecksumMismatch
	}

	return arenakit.NewStorageFromBytes(payload, int(h.Capacity))
}

// maxCodecOverhead bounds the bytes either codec may add to an
// incompressible payload (frame and block headers, checksum).
const maxCodecOverhead = 64

// validateHeader rejects size fields no writer can produce, before any
// of them drives an allocation. Malformed input must surface as an
// error, never a panic or an attacker-sized buffer.
func validateHeader(h *header) error {
	switch {
	case h.Capacity == 0:
		return fmt.Errorf("%w: zero capacity", ErrCorruptHeader)
	case h.Capacity > math.MaxInt:
		return fmt.Errorf("%w: capacity %d overflows int", ErrCorruptHeader, h.Capacity)
	case h.Used > h.Capacity:
		return fmt.Errorf("%w: used %d exceeds capacity %d", ErrCorruptHeader, h.Used, h.Capacity)
	case h.BlobLen > h.Used+h.Used/255+maxCodecOverhead:
		return fmt.Errorf("%w: blob length %d out of bounds for %d used bytes", ErrCorruptHeader, h.BlobLen, h.Used)
	}
	return nil
}

func compress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("init zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil
	case CompressionLZ4:
		if len(payload) == 0 {
			return nil, nil
		}
		blob := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := lz4.CompressBlock(payload, blob, nil)
		if err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if n == 0 || n >= len(payload) {
			// Incompressible; store verbatim. Read detects this by the
			// blob length matching the raw length.
			return payload, nil
		}
		return blob[:n], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, c)
	}
}

func decompress(blob []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case CompressionNone:
		return blob, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("init zstd decoder: %w", err)
		}
		defer dec.Close()
		payload, err := dec.DecodeAll(blob, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return payload, nil
	case CompressionLZ4:
		if len(blob) == rawLen {
			// Stored verbatim (incompressible at write time).
			return blob, nil
		}
		payload := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(blob, payload)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return payload[:n], nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, c)
	}
}
