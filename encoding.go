package mvector

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"reflect"

	"github.com/hupe1980/mvector/codec"
	"github.com/hupe1980/mvector/internal/compress"
	"github.com/hupe1980/mvector/internal/conv"
	"github.com/hupe1980/mvector/resource"
)

// Marshal encodes the elements as a sequence using c, or codec.Default if c
// is nil. An empty vector encodes as an empty sequence.
func (v *Vector[T]) Marshal(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	data := v.Data()
	if data == nil {
		data = []T{}
	}
	return c.Marshal(data)
}

// Unmarshal replaces the elements with the sequence decoded by c, or
// codec.Default if c is nil. On error v is unchanged.
func (v *Vector[T]) Unmarshal(c codec.Codec, data []byte) error {
	if c == nil {
		c = codec.Default
	}
	var values []T
	if err := c.Unmarshal(data, &values); err != nil {
		return err
	}
	return v.assign(values)
}

// MarshalJSON implements json.Marshaler.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	return v.Marshal(codec.GoJSON{})
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	return v.Unmarshal(codec.GoJSON{}, data)
}

// MarshalCBOR implements cbor.Marshaler.
func (v *Vector[T]) MarshalCBOR() ([]byte, error) {
	return v.Marshal(codec.CBOR{})
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (v *Vector[T]) UnmarshalCBOR(data []byte) error {
	return v.Unmarshal(codec.CBOR{}, data)
}

// Compression selects the block compression used by Encode.
type Compression uint8

const (
	// CompressionNone stores elements as-is.
	CompressionNone = Compression(compress.None)
	// CompressionLZ4 favors speed.
	CompressionLZ4 = Compression(compress.LZ4)
	// CompressionZSTD favors ratio.
	CompressionZSTD = Compression(compress.ZSTD)
)

func (c Compression) String() string {
	return compress.Type(c).String()
}

type encodeOptions struct {
	compression Compression
	limiter     *resource.Controller
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

// WithCompression selects the block compression. Blocks that do not shrink
// are stored uncompressed regardless.
func WithCompression(c Compression) EncodeOption {
	return func(o *encodeOptions) {
		o.compression = c
	}
}

// WithWriteLimit throttles the writer to the IO limit of c.
func WithWriteLimit(c *resource.Controller) EncodeOption {
	return func(o *encodeOptions) {
		o.limiter = c
	}
}

// Binary format (little endian):
//
//	[0:4]   magic "MVEC"
//	[4]     format version
//	[5]     element kind (reflect.Kind)
//	[6]     bytes per element
//	[7]     compression
//	[8:16]  element count
//	[16:]   one compressed block holding the elements
const (
	encodingMagic   = "MVEC"
	encodingVersion = 1
	headerSize      = 16
)

// Encode writes v in the binary vector format. int, uint and uintptr
// elements are stored as 64-bit values.
func Encode[T Number](ctx context.Context, w io.Writer, v *Vector[T], opts ...EncodeOption) error {
	var eo encodeOptions
	for _, fn := range opts {
		if fn != nil {
			fn(&eo)
		}
	}

	ct := compress.Type(eo.compression)
	if !ct.Valid() {
		return fmt.Errorf("unknown compression: %d", eo.compression)
	}

	kind := reflect.TypeFor[T]().Kind()
	width := elementWidth(kind)
	n := v.Len()
	if uint64(n) > math.MaxUint32/uint64(width) {
		return fmt.Errorf("vector too large to encode: %d elements", n)
	}
	count, err := conv.IntToUint64(n)
	if err != nil {
		return err
	}

	if eo.limiter != nil {
		w = resource.NewRateLimitedWriter(ctx, w, eo.limiter)
	}

	var header [headerSize]byte
	copy(header[0:4], encodingMagic)
	header[4] = encodingVersion
	header[5] = byte(kind)
	header[6] = byte(width)
	header[7] = byte(ct)
	binary.LittleEndian.PutUint64(header[8:], count)
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	payload := make([]byte, n*width)
	for i, x := range v.Data() {
		putElement(payload[i*width:], kind, width, x)
	}
	return compress.WriteBlock(w, payload, ct)
}

// Decode reads a vector written by Encode. The encoded element kind must
// match T, otherwise an error matching ErrKindMismatch is returned. Malformed
// input yields an error matching ErrCorrupt.
//
// With WithMemoryBudget the encoded payload is charged to the budget while it
// is read, in addition to the buffer of the result.
func Decode[T Number](r io.Reader, opts ...Option) (*Vector[T], error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("%w: header: %w", ErrCorrupt, err)
	}
	if string(header[0:4]) != encodingMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrCorrupt, header[0:4])
	}
	if header[4] != encodingVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorrupt, header[4])
	}

	kind := reflect.TypeFor[T]().Kind()
	if got := reflect.Kind(header[5]); got != kind {
		return nil, fmt.Errorf("%w: encoded %s, want %s", ErrKindMismatch, got, kind)
	}
	width := elementWidth(kind)
	if int(header[6]) != width {
		return nil, fmt.Errorf("%w: element width %d, want %d", ErrCorrupt, header[6], width)
	}
	ct := compress.Type(header[7])
	if !ct.Valid() {
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorrupt, header[7])
	}

	n, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(header[8:]))
	if err != nil || uint64(n) > math.MaxUint32/uint64(width) {
		return nil, fmt.Errorf("%w: element count out of range", ErrCorrupt)
	}

	o := applyOptions(opts)
	size := int64(n) * int64(width)
	if err := o.budget.TryAcquireMemory(size); err != nil {
		v := &Vector[T]{opts: o}
		return nil, v.allocFailed(context.Background(), n, size, err)
	}
	defer o.budget.ReleaseMemory(size)

	payload, err := compress.ReadBlock(r, ct, n*width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if len(payload) != n*width {
		return nil, fmt.Errorf("%w: payload has %d bytes, want %d", ErrCorrupt, len(payload), n*width)
	}

	v, err := newWithOptions[T](n, o)
	if err != nil {
		return nil, err
	}
	for i := range n {
		v.buf[i] = getElement[T](payload[i*width:], kind, width)
	}
	return v, nil
}

func elementWidth(kind reflect.Kind) int {
	switch kind {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	default:
		return 8
	}
}

func isSigned(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

func putElement[T Number](b []byte, kind reflect.Kind, width int, x T) {
	var u uint64
	switch {
	case kind == reflect.Float32:
		u = uint64(math.Float32bits(float32(x)))
	case kind == reflect.Float64:
		u = math.Float64bits(float64(x))
	case isSigned(kind):
		u = uint64(int64(x)) //nolint:gosec // two's complement bit pattern
	default:
		u = uint64(x)
	}

	switch width {
	case 1:
		b[0] = byte(u)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(u))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(u))
	default:
		binary.LittleEndian.PutUint64(b, u)
	}
}

func getElement[T Number](b []byte, kind reflect.Kind, width int) T {
	var u uint64
	switch width {
	case 1:
		u = uint64(b[0])
	case 2:
		u = uint64(binary.LittleEndian.Uint16(b))
	case 4:
		u = uint64(binary.LittleEndian.Uint32(b))
	default:
		u = binary.LittleEndian.Uint64(b)
	}

	switch {
	case kind == reflect.Float32:
		return T(math.Float32frombits(uint32(u)))
	case kind == reflect.Float64:
		return T(math.Float64frombits(u))
	case isSigned(kind):
		shift := 64 - 8*width
		return T(int64(u<<shift) >> shift) //nolint:gosec // sign extension
	default:
		return T(u)
	}
}
