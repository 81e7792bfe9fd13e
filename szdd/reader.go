package szdd

import (
	"bufio"
	"errors"
	"io"

	"github.com/erikolofsson/mscompress"
)

type byteReader interface {
	io.Reader
	io.ByteReader
}

// A Reader decompresses an SZDD stream. It replays the tokens against a
// window that starts out filled with spaces, exactly as the compressor's
// window did.
type Reader struct {
	// Header is the header read by NewReader.
	Header Header

	r   byteReader
	win mscompress.Window
	cur int // window position of the next output byte

	flags byte // control bits not yet consumed, lowest first
	bits  int  // number of bits left in flags

	copyPos int // source of the match being copied
	copyLen int // bytes of it left to copy

	err error
}

// NewReader reads the header from r and returns a Reader for the payload.
// If r does not implement io.ByteReader it is wrapped in a bufio.Reader.
func NewReader(r io.Reader) (*Reader, error) {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	h, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	z := &Reader{Header: h, r: br, cur: mscompress.StartPos}
	z.win.Reset()
	return z, nil
}

func (z *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if z.copyLen > 0 {
			c := z.win.Byte(z.copyPos)
			z.put(c)
			p[n] = c
			n++
			z.copyPos = (z.copyPos + 1) % mscompress.WindowSize
			z.copyLen--
			continue
		}
		if z.err != nil {
			break
		}

		if z.bits == 0 {
			c, ok := z.readByte()
			if !ok {
				break
			}
			z.flags, z.bits = c, mscompress.FlagBits
		}

		literal := z.flags&1 == 1
		z.flags >>= 1
		z.bits--

		if literal {
			c, ok := z.readByte()
			if !ok {
				break
			}
			z.put(c)
			p[n] = c
			n++
			continue
		}

		lo, ok := z.readByte()
		if !ok {
			break
		}
		hi, ok := z.readByte()
		if !ok {
			break
		}
		z.copyPos = int(lo) | int(hi&0xf0)<<4
		z.copyLen = int(hi&0x0f) + mscompress.MinMatch
	}

	if n > 0 {
		return n, nil
	}
	return 0, z.err
}

// put appends c to the window at the write cursor.
func (z *Reader) put(c byte) {
	z.win.Put(z.cur, c)
	z.cur = (z.cur + 1) % mscompress.WindowSize
}

// readByte returns the next input byte. At the end of the input, even in
// the middle of a block, it records io.EOF: the compressor's last block is
// allowed to be short.
func (z *Reader) readByte() (byte, bool) {
	c, err := z.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.EOF
		}
		z.err = err
		return 0, false
	}
	return c, true
}
