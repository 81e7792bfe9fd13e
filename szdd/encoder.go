package szdd

import "github.com/erikolofsson/mscompress"

// An Encoder implements the mscompress.Encoder interface, packing tokens
// into SZDD blocks: a control byte followed by up to eight tokens. Bit k of
// the control byte, lowest first, is 1 when token k is a literal byte and 0
// when it is a two-byte match reference.
type Encoder struct {
	// Size is the uncompressed length recorded in the header.
	Size uint32

	block [1 + 2*mscompress.FlagBits]byte
	n     int  // bytes used in block
	count uint // tokens in block
}

func (e *Encoder) Reset() {
	e.n = 0
	e.count = 0
}

func (e *Encoder) Header(dst []byte) []byte {
	return Header{Reserved: reservedA, Size: e.Size}.Append(dst)
}

func (e *Encoder) Encode(dst []byte, tokens []mscompress.Token, lastBlock bool) []byte {
	for _, t := range tokens {
		if e.count == 0 {
			e.block[0] = 0
			e.n = 1
		}

		if t.IsLiteral() {
			e.block[0] |= 1 << e.count
			e.block[e.n] = t.Literal
			e.n++
		} else {
			e.block[e.n] = byte(t.Position)
			e.block[e.n+1] = byte(t.Position>>4&0xf0) | byte(t.Length-mscompress.MinMatch)
			e.n += 2
		}

		e.count++
		if e.count == mscompress.FlagBits {
			dst = append(dst, e.block[:e.n]...)
			e.count = 0
		}
	}

	if lastBlock && e.count > 0 {
		dst = append(dst, e.block[:e.n]...)
		e.count = 0
	}
	return dst
}
