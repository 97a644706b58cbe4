package dom

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lightpanda-io/browser-sub009/webidl"
)

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<"
		switch node.Element.NamespaceURI {
		case Svgns:
			e += "svg "
		case Mathmlns:
			e += "math "
		}
		e += string(node.NodeName)
		e += ">"
		if node.Element.Attributes != nil && node.Element.Attributes.Length() != 0 {
			attrs := node.Element.Attributes
			keys := make([]webidl.DOMString, 0, attrs.Length())
			for name := range attrs.Attrs {
				keys = append(keys, name)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
			spaces := "| "
			for i := 1; i < ident; i++ {
				spaces += "  "
			}
			for _, name := range keys {
				attr := attrs.Attrs[name]
				var ns string
				switch attr.Namespace {
				case Xmlnsns:
					ns = "xmlns "
				case Xmlns:
					ns = "xml "
				case Xlinkns:
					ns = "xlink "
				case Svgns:
					ns = "svg "
				case Mathmlns:
					ns = "math "
				}
				e += "\n" + spaces + ns + string(name) + "=\"" + string(attr.Value) + "\""
			}
		}
		return e
	case TextNode:
		return "\"" + string(node.Text.Data) + "\""
	case CDATASectionNode:
		return "<![CDATA[" + string(node.CDATASection.Data) + "]]>"
	case CommentNode:
		return "<!-- " + string(node.Comment.Data) + " -->"
	case DocumentTypeNode:
		d := "<!DOCTYPE " + string(node.DocumentType.Name)
		if len(node.DocumentType.PublicID) != 0 || len(node.DocumentType.SystemID) != 0 {
			d += " \"" + string(node.DocumentType.PublicID) + "\""
			d += " \"" + string(node.DocumentType.SystemID) + "\""
		}
		d += ">"
		return d
	case DocumentNode:
		return "#document"
	case DocumentFragmentNode:
		return "#document-fragment"
	case ProcessingInstructionNode:
		return "<?" + string(node.ProcessingInstruction.Data) + ">"
	case ScopeMarkerNode:
		return "#marker"
	default:
		logrus.WithField("nodeType", node.NodeType).Error("cannot serialize node")
		return ""
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}
