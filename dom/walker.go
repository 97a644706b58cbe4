package dom

import "github.com/pkg/errors"

// Walker returns the next node after current in a traversal rooted at root.
// The policy set is closed: depth-first document order, direct children only,
// or none. A walker holds no cursor of its own; the caller keeps the
// (root, current) pair and feeds back the node returned by the previous call.
// A nil current starts the traversal, a nil node with a nil error means the
// traversal is exhausted, and a non-nil error means a lookup on the
// underlying accessor failed before a next node could be determined.
type Walker interface {
	Next(root, current *Node) (*Node, error)
}

// WalkerDepthFirst yields every descendant of root in document order:
// parents before children, children before later siblings.
type WalkerDepthFirst struct {
	acc TreeAccessor
}

func NewWalkerDepthFirst() WalkerDepthFirst {
	return WalkerDepthFirst{acc: LinkAccessor{}}
}

func NewWalkerDepthFirstOver(acc TreeAccessor) WalkerDepthFirst {
	return WalkerDepthFirst{acc: acc}
}

func (w WalkerDepthFirst) Next(root, current *Node) (*Node, error) {
	n := current
	if n == nil {
		n = root
	}
	if n == nil {
		return nil, nil
	}

	// depth before breadth
	child, err := w.acc.FirstChild(n)
	if err != nil {
		return nil, errors.Wrap(err, "retrieve first child")
	}
	if child != nil {
		return child, nil
	}

	// root itself is the reference point, never a sibling candidate
	if n == root {
		return nil, nil
	}

	sibling, err := w.acc.NextSibling(n)
	if err != nil {
		return nil, errors.Wrap(err, "retrieve next sibling")
	}
	if sibling != nil {
		return sibling, nil
	}

	// climb out of exhausted subtrees until a sibling exists or root is hit
	parent, err := w.acc.ParentOf(n)
	if err != nil {
		return nil, errors.Wrap(err, "retrieve parent")
	}
	if parent == nil {
		return nil, nil
	}

	for n != root {
		last, err := w.acc.LastChild(parent)
		if err != nil {
			return nil, errors.Wrap(err, "retrieve last child")
		}
		if n != last {
			break
		}

		n = parent
		parent, err = w.acc.ParentOf(n)
		if err != nil {
			return nil, errors.Wrap(err, "retrieve parent")
		}
		if parent == nil {
			return nil, nil
		}
	}
	if n == root {
		return nil, nil
	}

	next, err := w.acc.NextSibling(n)
	if err != nil {
		return nil, errors.Wrap(err, "retrieve next sibling")
	}
	return next, nil
}

// WalkerChildren yields only the direct children of root.
type WalkerChildren struct {
	acc TreeAccessor
}

func NewWalkerChildren() WalkerChildren {
	return WalkerChildren{acc: LinkAccessor{}}
}

func NewWalkerChildrenOver(acc TreeAccessor) WalkerChildren {
	return WalkerChildren{acc: acc}
}

func (w WalkerChildren) Next(root, current *Node) (*Node, error) {
	if root == nil {
		return nil, nil
	}
	if current == nil {
		first, err := w.acc.FirstChild(root)
		if err != nil {
			return nil, errors.Wrap(err, "retrieve first child")
		}
		return first, nil
	}
	// root is never a member of its own child traversal
	if current == root {
		return nil, nil
	}
	next, err := w.acc.NextSibling(current)
	if err != nil {
		return nil, errors.Wrap(err, "retrieve next sibling")
	}
	return next, nil
}

// WalkerNone never yields. It fills the walker slot of collections that are
// empty by construction.
type WalkerNone struct{}

func NewWalkerNone() WalkerNone { return WalkerNone{} }

func (WalkerNone) Next(root, current *Node) (*Node, error) { return nil, nil }
