package dom

import "github.com/lightpanda-io/browser-sub009/webidl"

// Document is https://dom.spec.whatwg.org/#interface-document
type Document struct {
	URL           string
	DocumentURI   string
	CompatMode    string
	InputEncoding string
	ContentType   string
	Doctype       *Node
	Mode          string
	Type          string
}

// https://dom.spec.whatwg.org/#documentfragment
type DocumentFragment struct{}

// CreateElement is https://dom.spec.whatwg.org/#dom-document-createelement
func (n *Node) CreateElement(localName webidl.DOMString) *Node {
	return NewDOMElement(n, localName, Htmlns)
}

func (n *Node) CreateTextNode(data webidl.DOMString) *Node {
	return NewTextNode(n, data)
}

func (n *Node) CreateComment(data webidl.DOMString) *Node {
	return NewComment(data, n)
}

func (n *Node) CreateProcessingInstruction(target, data webidl.DOMString) *Node {
	return NewProcessingInstructionNode(n, target, data)
}

// CreateNodeIterator is https://dom.spec.whatwg.org/#dom-document-createnodeiterator
func (n *Node) CreateNodeIterator(root *Node) *NodeIterator {
	return NewNodeIterator(root)
}
