package dom

// NodeIterator holds the (root, current) cursor for a walker and keeps it
// across calls. Once the walker reports exhaustion the iterator is done for
// good; a lookup error leaves the cursor where it was so the step can be
// retried.
//
// https://dom.spec.whatwg.org/#nodeiterator
type NodeIterator struct {
	root          *Node
	referenceNode *Node
	walker        Walker
	done          bool
}

func NewNodeIterator(root *Node) *NodeIterator {
	return NewNodeIteratorWith(root, NewWalkerDepthFirst())
}

func NewNodeIteratorWith(root *Node, w Walker) *NodeIterator {
	return &NodeIterator{
		root:   root,
		walker: w,
	}
}

// Root returns the subtree root the iterator was created over.
func (it *NodeIterator) Root() *Node { return it.root }

// ReferenceNode returns the last node yielded, or nil before the first step.
func (it *NodeIterator) ReferenceNode() *Node { return it.referenceNode }

// NextNode returns the next node in the walker's order, or (nil, nil) once
// the traversal is exhausted.
func (it *NodeIterator) NextNode() (*Node, error) {
	if it.done {
		return nil, nil
	}

	n, err := it.walker.Next(it.root, it.referenceNode)
	if err != nil {
		return nil, err
	}
	if n == nil {
		it.done = true
		return nil, nil
	}

	it.referenceNode = n
	return n, nil
}
