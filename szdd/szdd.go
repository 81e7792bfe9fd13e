// Package szdd reads and writes the SZDD container produced by Microsoft's
// compress.exe and read by expand.exe and the LZExpand API.
//
// An SZDD file is a 14-byte header followed by LZSS blocks: one control
// byte, then eight tokens that are either a literal byte or a two-byte
// reference (12-bit window position, 4-bit length - 3) into a 4 KB window.
// Compression output is byte-for-byte what compress.exe produces.
//
// Compress a file:
//
//	f, err := os.Open(name)
//	...
//	err = szdd.CompressFile(out, f)
//
// Expand a stream:
//
//	n, err := szdd.Expand(out, in)
package szdd

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/erikolofsson/mscompress"
)

// NewWriter returns a Writer that compresses to w. size is recorded in the
// header; it should be the number of bytes that will be written. NewWriter
// fails with ErrTooLarge, before anything is written to w, if size exceeds
// MaxSize.
func NewWriter(w io.Writer, size int64) (*mscompress.Writer, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}
	if size > MaxSize {
		return nil, ErrTooLarge
	}
	return &mscompress.Writer{
		Dest:        w,
		MatchFinder: mscompress.NewBinaryTree(),
		Encoder:     &Encoder{Size: uint32(size)},
		BlockSize:   1 << 16,
	}, nil
}

// Compress reads src to the end and writes it to dst in SZDD format. size is
// recorded in the header.
func Compress(dst io.Writer, src io.Reader, size int64) error {
	w, err := NewWriter(dst, size)
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, src); err != nil {
		return err
	}
	return w.Close()
}

// A File is a source whose size can be found before it is read, such as an
// *os.File.
type File interface {
	io.Reader
	Stat() (fs.FileInfo, error)
}

// CompressFile compresses f to dst, taking the header's size from f.Stat.
func CompressFile(dst io.Writer, f File) error {
	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("szdd: stat: %w", err)
	}
	return Compress(dst, f, fi.Size())
}

// Expand decompresses the SZDD stream src into dst and returns the number
// of bytes written.
func Expand(dst io.Writer, src io.Reader) (int64, error) {
	z, err := NewReader(src)
	if err != nil {
		return 0, err
	}
	return io.Copy(dst, z)
}
