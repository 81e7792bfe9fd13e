package mscompress

// BinaryTree is an implementation of the MatchFinder interface that finds
// matches with one binary search tree per first byte over a 4 KB window,
// producing exactly the token stream of Microsoft's compress.exe.
//
// The zero value is not ready for use; call Reset first, or use
// NewBinaryTree.
type BinaryTree struct {
	win  Window
	tree matchTree

	filled  int  // bytes stored in the initial lookahead
	started bool // whether the encode loop has begun
	cur     int  // window position of the next token
	run     int  // valid bytes of lookahead at cur
	pending int  // bytes buffered but not yet covered by a token
}

// NewBinaryTree returns a BinaryTree ready for a new stream.
func NewBinaryTree() *BinaryTree {
	b := new(BinaryTree)
	b.Reset()
	return b
}

func (b *BinaryTree) Reset() {
	b.win.Reset()
	b.tree.win = &b.win
	b.tree.reset()
	b.filled = 0
	b.started = false
	b.cur = StartPos
	b.run = 0
	b.pending = 0
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
// The last Lookahead bytes seen are held back until more input arrives or
// lastBlock is set, so the tokens do not depend on how the input is split.
func (b *BinaryTree) FindMatches(dst []Token, src []byte, lastBlock bool) []Token {
	for _, c := range src {
		if b.filled < Lookahead {
			b.win.Put(StartPos+b.filled, c)
			b.filled++
			continue
		}
		dst = b.step(dst, c, false)
	}

	if lastBlock {
		if !b.started {
			b.start()
		}
		for b.pending > 0 {
			dst = b.step(dst, 0, true)
		}
	}
	return dst
}

func (b *BinaryTree) start() {
	b.started = true
	b.run = b.filled
	b.pending = b.filled
}

// step advances the encode loop by one window position. c enters the
// window Lookahead bytes ahead of the cursor unless the input has ended.
func (b *BinaryTree) step(dst []Token, c byte, eof bool) []Token {
	if !b.started {
		b.start()
	}

	// The slot about to be overwritten holds the oldest byte in the window;
	// it has to leave its tree before it takes new contents.
	in := (b.cur + Lookahead) & windowMask
	b.tree.remove(in)
	b.win.Put(in, c)

	length, pos := b.tree.insert(b.cur, b.run)
	if eof {
		b.run--
		b.pending--
	}

	emit := b.pending >= b.run
	b.pending++
	if emit {
		if length >= MinMatch {
			dst = append(dst, Token{Position: pos, Length: length})
			b.pending -= length
		} else {
			dst = append(dst, Token{Literal: b.win.buf[b.cur]})
			b.pending--
		}
	}

	b.cur = (b.cur + 1) & windowMask
	return dst
}
