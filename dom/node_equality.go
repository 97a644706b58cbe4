package dom

// IsEqualNode reports structural equality: two distinct nodes of the same
// kind with identical value fields are equal. Kinds never match across each
// other, and no kind compares descendants.
//
// https://dom.spec.whatwg.org/#concept-node-equals
func (n *Node) IsEqualNode(on *Node) bool {
	if on == nil {
		return false
	}
	if n.NodeType != on.NodeType {
		return false
	}

	switch n.NodeType {
	case DocumentTypeNode:
		return n.DocumentType.Name == on.DocumentType.Name &&
			n.DocumentType.PublicID == on.DocumentType.PublicID &&
			n.DocumentType.SystemID == on.DocumentType.SystemID
	case ElementNode:
		if n.Element.NamespaceURI != on.Element.NamespaceURI ||
			n.Element.Prefix != on.Element.Prefix ||
			n.Element.LocalName != on.Element.LocalName {
			return false
		}
		return equalAttributes(n.Element.Attributes, on.Element.Attributes)
	case AttrNode:
		return n.Attr.Namespace == on.Attr.Namespace &&
			n.Attr.LocalName == on.Attr.LocalName &&
			n.Attr.Value == on.Attr.Value
	case ProcessingInstructionNode:
		return n.ProcessingInstruction.Target == on.ProcessingInstruction.Target &&
			n.ProcessingInstruction.Data == on.ProcessingInstruction.Data
	case TextNode:
		return n.Text.Data == on.Text.Data
	case CDATASectionNode:
		return n.CDATASection.Data == on.CDATASection.Data
	case CommentNode:
		return n.Comment.Data == on.Comment.Data
	default:
		// document, fragment, and marker nodes carry no value fields
		return true
	}
}

func equalAttributes(a, b *NamedNodeMap) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Length() != b.Length() {
		return false
	}

	for k, v := range b.Attrs {
		e, ok := a.Attrs[k]
		if !ok {
			return false
		}
		if v.Namespace != e.Namespace {
			return false
		}
		if v.Name != e.Name {
			return false
		}
		if v.Value != e.Value {
			return false
		}
	}

	return true
}
