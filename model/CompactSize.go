package model

import (
	"encoding/binary"

	"github.com/bsv-blockchain/txwire/errors"
)

// CompactSize prefixes that select the width of the little-endian payload that follows.
const (
	compactSizeUint16Prefix = 0xfd
	compactSizeUint32Prefix = 0xfe
	compactSizeUint64Prefix = 0xff
)

// CompactSize is the Bitcoin variable length unsigned integer used for counts and lengths.
//
// Bytes always produces the shortest encoding for the value. Decoding is permissive: a value
// carried in a wider branch than necessary is accepted as is.
type CompactSize struct {
	Value uint64
}

func NewCompactSize(value uint64) CompactSize {
	return CompactSize{Value: value}
}

// Size returns the number of bytes Bytes will produce: 1, 3, 5 or 9.
func (c CompactSize) Size() int {
	switch {
	case c.Value < compactSizeUint16Prefix:
		return 1
	case c.Value <= 0xffff:
		return 3
	case c.Value <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

func (c CompactSize) Bytes() []byte {
	return c.appendBytes(make([]byte, 0, c.Size()))
}

func (c CompactSize) appendBytes(b []byte) []byte {
	switch {
	case c.Value < compactSizeUint16Prefix:
		return append(b, byte(c.Value))
	case c.Value <= 0xffff:
		b = append(b, compactSizeUint16Prefix)
		return binary.LittleEndian.AppendUint16(b, uint16(c.Value))
	case c.Value <= 0xffffffff:
		b = append(b, compactSizeUint32Prefix)
		return binary.LittleEndian.AppendUint32(b, uint32(c.Value))
	default:
		b = append(b, compactSizeUint64Prefix)
		return binary.LittleEndian.AppendUint64(b, c.Value)
	}
}

// NewCompactSizeFromBytes decodes a CompactSize from the front of b and returns the number of bytes it used.
func NewCompactSizeFromBytes(b []byte) (CompactSize, int, error) {
	if len(b) == 0 {
		return CompactSize{}, 0, errors.NewInsufficientBytesError(1, 0, "compact size needs at least 1 byte")
	}

	var size int

	switch b[0] {
	case compactSizeUint16Prefix:
		size = 3
	case compactSizeUint32Prefix:
		size = 5
	case compactSizeUint64Prefix:
		size = 9
	default:
		return CompactSize{Value: uint64(b[0])}, 1, nil
	}

	if len(b) < size {
		return CompactSize{}, 0, errors.NewInsufficientBytesError(size, len(b), "compact size with prefix 0x%02x needs %d bytes, got %d", b[0], size, len(b))
	}

	switch size {
	case 3:
		return CompactSize{Value: uint64(binary.LittleEndian.Uint16(b[1:3]))}, size, nil
	case 5:
		return CompactSize{Value: uint64(binary.LittleEndian.Uint32(b[1:5]))}, size, nil
	default:
		return CompactSize{Value: binary.LittleEndian.Uint64(b[1:9])}, size, nil
	}
}
