package mscompress

import "strconv"

// A TextEncoder is an Encoder that produces a human-readable representation of
// the token stream. Matches are replaced with <Length,Position> symbols.
type TextEncoder struct{}

func (t TextEncoder) Header(dst []byte) []byte {
	return dst
}

func (t TextEncoder) Reset() {}

func (t TextEncoder) Encode(dst []byte, tokens []Token, lastBlock bool) []byte {
	for _, tok := range tokens {
		if tok.IsLiteral() {
			dst = append(dst, tok.Literal)
			continue
		}
		dst = append(dst, '<')
		dst = strconv.AppendInt(dst, int64(tok.Length), 10)
		dst = append(dst, ',')
		dst = strconv.AppendInt(dst, int64(tok.Position), 10)
		dst = append(dst, '>')
	}
	return dst
}
