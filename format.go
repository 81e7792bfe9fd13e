package mscompress

// SZDD format constants. These are fixed by the format.
const (
	WindowSize = 4096 // N: size of the ring buffer.
	Lookahead  = 16   // F: bytes of lookahead kept ahead of the cursor.
	MinMatch   = 3    // THRESHOLD: shortest match worth encoding.
	MaxMatch   = 18   // MinMatch + 15, the longest length a 4-bit nibble holds.
	Filler     = ' '  // Initial contents of the window.
	FlagBits   = 8    // Tokens per control byte.

	// StartPos is where both the encoder and the decoder place the first
	// byte of the stream in the window.
	StartPos = WindowSize - Lookahead

	windowMask = WindowSize - 1
)
