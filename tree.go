package mscompress

// Node indexes in a matchTree. Positions 0..WindowSize-1 are window slots,
// nilNode is the empty link, and rootNode+c is a pseudo-node whose right
// child is the root of the tree for first byte c.
const (
	nilNode   = WindowSize
	rootNode  = WindowSize + 1
	nodeCount = rootNode + 256
)

type node struct {
	parent, left, right int32
}

// A matchTree keeps one binary search tree per first byte value over the
// positions currently in the window. Nodes are never allocated or freed;
// a slot leaves its tree when its byte slides out of the window and joins
// a tree again when the slot is inserted with new contents.
type matchTree struct {
	win   *Window
	nodes [nodeCount]node
}

func (t *matchTree) reset() {
	for i := range t.nodes {
		t.nodes[i] = node{parent: nilNode, left: nilNode, right: nilNode}
	}
}

// linked reports whether position z is currently a member of a tree.
func (t *matchTree) linked(z int) bool {
	return t.nodes[z].parent != nilNode
}

// relink points p's child link that held old at repl instead.
func (t *matchTree) relink(p, old, repl int32) {
	if t.nodes[p].right == old {
		t.nodes[p].right = repl
	} else {
		t.nodes[p].left = repl
	}
}

// insert adds window position i to the tree for its first byte and returns
// the longest match for the run of bytes at i, comparing at most run bytes.
// A length below MinMatch means nothing usable was found. Among equal
// lengths the first candidate met on the way down wins.
func (t *matchTree) insert(i, run int) (length, pos int) {
	buf := &t.win.buf
	length = MinMatch - 1
	k, l := 1, 1

	t.nodes[i].left = nilNode
	t.nodes[i].right = nilNode

	p := int32(rootNode + int(buf[i]))
	goLeft := false
	for {
		j := t.nodes[p].right
		if goLeft {
			j = t.nodes[p].left
		}
		if j == nilNode {
			break
		}

		// Bytes compare as signed values. This fixes the tree order, and
		// with it which of several equal-length matches is met first.
		n := min(k, l)
		cmp := 0
		for n < run {
			cmp = int(int8(buf[int(j)+n])) - int(int8(buf[i+n]))
			if cmp != 0 {
				break
			}
			n++
		}

		if n > length {
			length, pos = n, int(j)
		}

		switch {
		case cmp < 0:
			p, goLeft, k = j, true, n
		case cmp > 0:
			p, goLeft, l = j, false, n
		default:
			// Same run as j: i takes j's place and j leaves the tree.
			t.replace(j, int32(i))
			return length, pos
		}
	}

	t.nodes[i].parent = p
	if goLeft {
		t.nodes[p].left = int32(i)
	} else {
		t.nodes[p].right = int32(i)
	}
	return length, pos
}

// replace puts i in old's place in its tree and unlinks old.
func (t *matchTree) replace(old, i int32) {
	o := t.nodes[old]
	t.nodes[i] = o
	t.nodes[o.left].parent = i
	t.nodes[o.right].parent = i
	t.relink(o.parent, old, i)
	t.nodes[old].parent = nilNode
}

// remove takes position z out of its tree. It does nothing if z is not in
// a tree.
func (t *matchTree) remove(z int) {
	zn := t.nodes[z]
	if zn.parent == nilNode {
		return
	}

	var j int32
	switch {
	case zn.right == nilNode:
		j = zn.left
	case zn.left == nilNode:
		j = zn.right
	default:
		// Promote the in-order predecessor.
		j = zn.left
		if t.nodes[j].right != nilNode {
			for t.nodes[j].right != nilNode {
				j = t.nodes[j].right
			}
			jp := t.nodes[j].parent
			t.nodes[jp].right = t.nodes[j].left
			t.nodes[t.nodes[j].left].parent = jp
			t.nodes[j].left = zn.left
			t.nodes[zn.left].parent = j
		}
		t.nodes[j].right = zn.right
		t.nodes[zn.right].parent = j
	}

	t.nodes[j].parent = zn.parent
	t.relink(zn.parent, int32(z), j)
	t.nodes[z].parent = nilNode
}
