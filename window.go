package mscompress

// A Window is the sliding dictionary shared by the encoder and the decoder:
// a ring of WindowSize bytes with Lookahead mirror slots appended, so that a
// forward scan of up to Lookahead bytes from any position never wraps.
type Window struct {
	buf [WindowSize + Lookahead]byte
}

// Reset fills the whole window with Filler.
func (w *Window) Reset() {
	for i := range w.buf {
		w.buf[i] = Filler
	}
}

// Put stores b at pos (mod WindowSize), keeping the mirror slots in step.
func (w *Window) Put(pos int, b byte) {
	pos &= windowMask
	w.buf[pos] = b
	if pos < Lookahead {
		w.buf[pos+WindowSize] = b
	}
}

// Byte returns the byte at pos (mod WindowSize).
func (w *Window) Byte(pos int) byte {
	return w.buf[pos&windowMask]
}
