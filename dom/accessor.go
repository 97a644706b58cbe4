package dom

// TreeAccessor is the node-graph lookup contract traversal runs over. The
// lookups are fallible so that hosts backed by fallible storage can surface a
// "retrieval failed" outcome distinct from "no more nodes"; the link-backed
// accessor below never errors.
type TreeAccessor interface {
	FirstChild(n *Node) (*Node, error)
	LastChild(n *Node) (*Node, error)
	NextSibling(n *Node) (*Node, error)
	ParentOf(n *Node) (*Node, error)
}

// LinkAccessor resolves lookups from the node's own sibling/parent/child
// links. A node detached from its tree resolves to no parent and no siblings,
// which makes a walker treat it as an exhausted root.
type LinkAccessor struct{}

func (LinkAccessor) FirstChild(n *Node) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	return n.FirstChild, nil
}

func (LinkAccessor) LastChild(n *Node) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	return n.LastChild, nil
}

func (LinkAccessor) NextSibling(n *Node) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	return n.NextSibling, nil
}

func (LinkAccessor) ParentOf(n *Node) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	return n.ParentNode, nil
}
