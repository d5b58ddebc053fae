// Package compress implements the block compression used by the binary vector encoding.
package compress

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/mvector/internal/conv"
)

// Type defines the compression algorithm used.
type Type uint8

const (
	// None indicates no compression.
	None Type = 0
	// LZ4 indicates LZ4 block compression (fast).
	LZ4 Type = 1
	// ZSTD indicates ZSTD block compression (better ratio).
	ZSTD Type = 2
)

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case ZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Valid reports whether t is a known algorithm.
func (t Type) Valid() bool {
	return t <= ZSTD
}

var (
	// ErrCorrupt is returned when a block cannot be decoded.
	ErrCorrupt = errors.New("compress: corrupt block")
	// ErrUnknownType is returned for an unsupported compression type.
	ErrUnknownType = errors.New("compress: unknown type")
)

// ZSTD encoder/decoder pools for efficiency
var zstdEncoderPool sync.Pool

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

// Block format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// If CompressedSize == 0, the block is stored uncompressed.
const blockHeaderSize = 8

// lz4MaxRatio bounds LZ4 expansion: a match length byte of 255 is the densest
// encoding, so a block never decodes to more than 255 bytes per input byte.
const lz4MaxRatio = 255

// WriteBlock compresses data with t and writes it as a single block.
// Data that does not shrink is stored uncompressed.
func WriteBlock(w io.Writer, data []byte, t Type) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownType, t)
	}

	rawSize, err := conv.IntToUint32(len(data))
	if err != nil {
		return err
	}

	var compressed []byte
	switch t {
	case LZ4:
		compressed, err = compressLZ4(data)
	case ZSTD:
		compressed = compressZSTD(data)
	}
	if err != nil {
		return err
	}

	// If compression doesn't help (ratio > 0.9), store uncompressed
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		compressed = nil
	}

	var header [blockHeaderSize]byte
	binary.LittleEndian.PutUint32(header[0:], rawSize)
	binary.LittleEndian.PutUint32(header[4:], uint32(len(compressed))) //nolint:gosec // len(compressed) < len(data)

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	payload := data
	if compressed != nil {
		payload = compressed
	}
	_, err = w.Write(payload)
	return err
}

// ReadBlock reads one block written by WriteBlock and returns the raw bytes.
// maxSize bounds the uncompressed size the caller is prepared to accept.
func ReadBlock(r io.Reader, t Type, maxSize int) ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}

	var header [blockHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrCorrupt, err)
	}

	rawSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(header[0:]))
	if err != nil {
		return nil, err
	}
	compressedSize, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(header[4:]))
	if err != nil {
		return nil, err
	}
	if rawSize > maxSize || compressedSize > rawSize {
		return nil, fmt.Errorf("%w: sizes %d/%d exceed %d", ErrCorrupt, compressedSize, rawSize, maxSize)
	}

	if compressedSize == 0 {
		return readFull(r, rawSize)
	}

	compressed, err := readFull(r, compressedSize)
	if err != nil {
		return nil, err
	}

	switch t {
	case LZ4:
		if int64(rawSize) > lz4MaxRatio*int64(compressedSize) {
			return nil, fmt.Errorf("%w: lz4 block claims %d bytes from %d", ErrCorrupt, rawSize, compressedSize)
		}
		return decompressLZ4(compressed, rawSize)
	case ZSTD:
		return decompressZSTD(compressed, rawSize)
	default:
		return nil, fmt.Errorf("%w: compressed block with type %s", ErrCorrupt, t)
	}
}

// readFull reads exactly n bytes. The buffer grows with the data that actually
// arrives, so a size claimed by a header costs nothing when the data is missing.
func readFull(r io.Reader, n int) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(n)))
	if err != nil {
		return nil, fmt.Errorf("%w: data: %w", ErrCorrupt, err)
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: data: got %d of %d bytes", ErrCorrupt, len(data), n)
	}
	return data, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}

	return compressed[:n], nil
}

func compressZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

func decompressLZ4(compressed []byte, rawSize int) ([]byte, error) {
	result := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(compressed, result)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if n != rawSize {
		return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
	}
	return result, nil
}

func decompressZSTD(compressed []byte, rawSize int) ([]byte, error) {
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(uint64(max(rawSize, 1))), //nolint:gosec // rawSize >= 0
	)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	decoded, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if len(decoded) != rawSize {
		return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
	}
	return decoded, nil
}
