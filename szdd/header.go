package szdd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// HeaderSize is the length of an SZDD header.
const HeaderSize = 14

// MaxSize is the largest input the format accepts.
const MaxSize = 4 << 30

// Magic numbers as they appear on disk. All header fields are little-endian.
var (
	magicSZDD = [4]byte{'S', 'Z', 'D', 'D'}
	magicLZ   = [4]byte{0x88, 0xf0, 0x27, 0x33}

	// KWAJ is the header of the later compress.exe from MS-DOS 6.22, which
	// uses a different algorithm.
	magicKWAJ  = [4]byte{'K', 'W', 'A', 'J'}
	magicKWAJ2 = [4]byte{0x88, 0xf0, 0x27, 0xd1}
	magicKWAJ3 = [4]byte{0x03, 0x00, 0x12, 0x00}
)

// reservedA is the value of the reserved field: 'A' followed by a zero byte.
const reservedA = 0x0041

// A Header is the fixed preamble of an SZDD file.
type Header struct {
	Reserved uint16

	// Size is the uncompressed length of the payload. It is informational;
	// the decoder stops at the end of the input.
	Size uint32
}

// Append appends the encoded header to dst.
func (h Header) Append(dst []byte) []byte {
	dst = append(dst, magicSZDD[:]...)
	dst = append(dst, magicLZ[:]...)
	dst = binary.LittleEndian.AppendUint16(dst, h.Reserved)
	dst = binary.LittleEndian.AppendUint32(dst, h.Size)
	return dst
}

// ReadHeader reads and validates a header from r. It returns ErrFormat if r
// does not start with a known header, and ErrUnsupportedVersion for the KWAJ
// variant.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return h, ErrFormat
		}
		return h, err
	}

	switch magic {
	case magicSZDD:
		var rest [HeaderSize - 4]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return h, truncated(err)
		}
		if [4]byte(rest[:4]) != magicLZ {
			return h, ErrFormat
		}
		h.Reserved = binary.LittleEndian.Uint16(rest[4:])
		h.Size = binary.LittleEndian.Uint32(rest[6:])
		return h, nil

	case magicKWAJ:
		var rest [4 + 4 + 2]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return h, truncated(err)
		}
		if [4]byte(rest[:4]) != magicKWAJ2 || [4]byte(rest[4:8]) != magicKWAJ3 {
			return h, ErrFormat
		}
		return h, ErrUnsupportedVersion
	}

	return h, ErrFormat
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return fmt.Errorf("szdd: reading header: %w", err)
}
