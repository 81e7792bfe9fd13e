// Package mscompress implements the LZSS stage of the SZDD format written by
// Microsoft's compress.exe and read by expand.exe.
//
// As in most LZ77 compressors there are two parts:
//   - Something that looks for repeated sequences of bytes (a MatchFinder)
//   - An encoder for the container format (an Encoder)
//
// They meet in a stream of Tokens. The szdd package provides the Encoder and
// the matching decoder; BinaryTree is the MatchFinder that reproduces the
// output of compress.exe byte for byte.
package mscompress

// A Token is the basic unit of SZDD compression: either a literal byte or a
// back-reference into the sliding window.
type Token struct {
	Literal byte // the literal byte, when Length is 0

	// Position is the window offset (0..WindowSize-1) the match copies from.
	// It is an absolute slot in the ring buffer, not a distance.
	Position int

	Length int // MinMatch..MaxMatch for a match, 0 for a literal
}

// IsLiteral reports whether t is a literal byte rather than a match.
func (t Token) IsLiteral() bool {
	return t.Length == 0
}

// A MatchFinder performs the LZ77 stage of compression, turning input into
// Tokens.
type MatchFinder interface {
	// FindMatches appends tokens for src to dst and returns dst.
	// Tokens for the last few bytes may be held back until more input
	// arrives; when lastBlock is true, everything left is flushed.
	FindMatches(dst []Token, src []byte, lastBlock bool) []Token

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// a new stream.
	Reset()
}

// An Encoder encodes the tokens in their final format.
type Encoder interface {
	// Header appends the appropriate stream header to dst.
	Header(dst []byte) []byte

	// Encode appends the encoded form of tokens to dst.
	Encode(dst []byte, tokens []Token, lastBlock bool) []byte

	// Reset clears any internal state, preparing the Encoder to be used with
	// a new stream.
	Reset()
}
