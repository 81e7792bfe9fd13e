package mscompress

import (
	"errors"
	"io"
)

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("mscompress: write to closed Writer")

// A Writer uses MatchFinder and Encoder to write compressed data to Dest.
type Writer struct {
	Dest        io.Writer
	MatchFinder MatchFinder
	Encoder     Encoder

	// BlockSize is the number of bytes to compress at a time.
	// The default is 65536.
	BlockSize int

	inBuf       []byte
	outBuf      []byte
	tokens      []Token
	wroteHeader bool
	err         error
}

func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.BlockSize == 0 {
		w.BlockSize = 1 << 16
	}
	if cap(w.inBuf) < w.BlockSize {
		w.inBuf = make([]byte, 0, w.BlockSize)
	}

	for len(p) > 0 {
		if len(w.inBuf) == w.BlockSize {
			if err := w.flush(false); err != nil {
				return n, err
			}
		}
		c := copy(w.inBuf[len(w.inBuf):w.BlockSize], p)
		w.inBuf = w.inBuf[:len(w.inBuf)+c]
		p = p[c:]
		n += c
	}
	return n, nil
}

// flush compresses the buffered input and writes the result to Dest.
func (w *Writer) flush(lastBlock bool) error {
	w.outBuf = w.outBuf[:0]
	if !w.wroteHeader {
		w.outBuf = w.Encoder.Header(w.outBuf)
		w.wroteHeader = true
	}

	w.tokens = w.MatchFinder.FindMatches(w.tokens[:0], w.inBuf, lastBlock)
	w.outBuf = w.Encoder.Encode(w.outBuf, w.tokens, lastBlock)
	w.inBuf = w.inBuf[:0]

	if len(w.outBuf) == 0 {
		return nil
	}
	if _, err := w.Dest.Write(w.outBuf); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Close compresses any remaining input and writes the end of the stream.
// It does not close Dest.
func (w *Writer) Close() error {
	if w.err == ErrClosed {
		return nil
	}
	if w.err != nil {
		return w.err
	}
	if err := w.flush(true); err != nil {
		return err
	}
	w.err = ErrClosed
	return nil
}

// Reset discards the Writer's state and prepares it to compress a new stream
// to newDest.
func (w *Writer) Reset(newDest io.Writer) {
	w.Dest = newDest
	w.MatchFinder.Reset()
	w.Encoder.Reset()
	w.inBuf = w.inBuf[:0]
	w.wroteHeader = false
	w.err = nil
}
