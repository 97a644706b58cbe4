package dom

import (
	"github.com/pkg/errors"

	"github.com/lightpanda-io/browser-sub009/webidl"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
	ScopeMarkerNode
)

// ScopeMarker is a presence-only node; it carries no value fields.
var ScopeMarker = &Node{
	NodeType: ScopeMarkerNode,
	NodeName: "marker",
}

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType                                                        NodeType
	NodeName                                                        webidl.DOMString
	OwnerDocument                                                   *Node
	ParentNode, FirstChild, LastChild, PreviousSibling, NextSibling *Node
	ChildNodes                                                      NodeList

	// Node types
	*Element
	*Attr
	*Text
	*CDATASection
	*ProcessingInstruction
	*Comment
	*Document
	*DocumentType
	*DocumentFragment
}

func NewDocumentNode() *Node {
	return &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{Type: "html"},
	}
}

// NewComment returns a comment node with its Data section filled.
func NewComment(data webidl.DOMString, od *Node) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment: &Comment{
			CharacterData: &CharacterData{
				Data:   data,
				Length: len(data),
			},
		},
	}
}

func NewTextNode(od *Node, text webidl.DOMString) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text: &Text{
			CharacterData: &CharacterData{
				Data:   text,
				Length: len(text),
			},
		},
	}
}

func NewDocTypeNode(name, pub, sys webidl.DOMString) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

func NewProcessingInstructionNode(od *Node, target, data webidl.DOMString) *Node {
	return &Node{
		NodeType:      ProcessingInstructionNode,
		NodeName:      target,
		OwnerDocument: od,
		ProcessingInstruction: &ProcessingInstruction{
			Target: target,
			CharacterData: &CharacterData{
				Data:   data,
				Length: len(data),
			},
		},
	}
}

func NewDOMElement(od *Node, name webidl.DOMString, namespace Namespace, optionals ...webidl.DOMString) *Node {
	var prefix webidl.DOMString
	if len(optionals) >= 1 {
		prefix = optionals[0]
	}
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			NamespaceURI: namespace,
			Prefix:       prefix,
			LocalName:    name,
			Attributes:   NewNamedNodeMap(nil, nil),
		},
	}

	n.Element.Attributes.AssociatedElement = n
	return n
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// https://dom.spec.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) (*Node, error) {
	if on == nil {
		return nil, errors.Wrap(ErrNotFound, "append nil node")
	}
	if on.isInclusiveAncestorOf(n) {
		return nil, errors.Wrap(ErrHierarchyRequest, "append ancestor as child")
	}
	before := mutationSnapshot(n)

	on.detach()
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)

	logMutation("AppendChild", n, before)
	return on, nil
}

// https://dom.spec.whatwg.org/#concept-node-pre-insert
func (n *Node) InsertBefore(on, child *Node) (*Node, error) {
	if child == nil {
		return n.AppendChild(on)
	}
	if on == nil {
		return nil, errors.Wrap(ErrNotFound, "insert nil node")
	}
	if on.isInclusiveAncestorOf(n) {
		return nil, errors.Wrap(ErrHierarchyRequest, "insert ancestor as child")
	}
	if child == on {
		// inserting a node before itself pins it ahead of its next sibling
		child = on.NextSibling
		if child == nil {
			return n.AppendChild(on)
		}
	}
	i := n.ChildNodes.Contains(child)
	if i < 0 {
		return nil, errors.Wrap(ErrNotFound, "reference node is not a child")
	}
	before := mutationSnapshot(n)

	on.detach()
	// Contains is re-run: detaching on may have shifted the reference index
	// when both share this parent.
	i = n.ChildNodes.Contains(child)
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.NextSibling = child
	on.PreviousSibling = child.PreviousSibling
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = on
	} else {
		n.FirstChild = on
	}
	child.PreviousSibling = on

	logMutation("InsertBefore", n, before)
	return on, nil
}

// https://dom.spec.whatwg.org/#concept-node-remove
func (n *Node) RemoveChild(child *Node) (*Node, error) {
	if child == nil || n.ChildNodes.Contains(child) < 0 {
		return nil, errors.Wrap(ErrNotFound, "node to remove is not a child")
	}
	before := mutationSnapshot(n)

	child.detach()

	logMutation("RemoveChild", n, before)
	return child, nil
}

// detach unlinks n from its parent, leaving it with no parent and no
// siblings. Its own subtree stays intact.
func (n *Node) detach() {
	parent := n.ParentNode
	if parent == nil {
		return
	}
	parent.ChildNodes.Remove(parent.ChildNodes.Contains(n))

	if n.PreviousSibling != nil {
		n.PreviousSibling.NextSibling = n.NextSibling
	} else {
		parent.FirstChild = n.NextSibling
	}
	if n.NextSibling != nil {
		n.NextSibling.PreviousSibling = n.PreviousSibling
	} else {
		parent.LastChild = n.PreviousSibling
	}

	n.ParentNode = nil
	n.PreviousSibling = nil
	n.NextSibling = nil
}

func (n *Node) isInclusiveAncestorOf(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

func (n *Node) getRoot() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}
