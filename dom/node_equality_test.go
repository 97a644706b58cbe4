package dom

import (
	"testing"
)

type equalityTestcase struct {
	name string
	a, b *Node
	want bool
}

func equalityCases() []equalityTestcase {
	doc := NewDocumentNode()

	elemA := doc.CreateElement("div")
	elemA.Element.SetAttribute("id", "x")
	elemB := doc.CreateElement("div")
	elemB.Element.SetAttribute("id", "x")
	elemC := doc.CreateElement("div")
	elemC.Element.SetAttribute("id", "other")
	elemD := doc.CreateElement("span")

	return []equalityTestcase{
		{"doctype equal fields", NewDocTypeNode("html", "pub", "sys"), NewDocTypeNode("html", "pub", "sys"), true},
		{"doctype name differs", NewDocTypeNode("html", "pub", "sys"), NewDocTypeNode("xml", "pub", "sys"), false},
		{"doctype public id differs", NewDocTypeNode("html", "pub", "sys"), NewDocTypeNode("html", "other", "sys"), false},
		{"doctype system id differs", NewDocTypeNode("html", "pub", "sys"), NewDocTypeNode("html", "pub", "other"), false},
		{"mismatched kinds", NewDocTypeNode("html", "", ""), NewTextNode(doc, "html"), false},
		{"text equal data", NewTextNode(doc, "hi"), NewTextNode(doc, "hi"), true},
		{"text data differs", NewTextNode(doc, "hi"), NewTextNode(doc, "bye"), false},
		{"comment equal data", NewComment("note", doc), NewComment("note", doc), true},
		{"comment data differs", NewComment("note", doc), NewComment("other", doc), false},
		{"text vs comment same data", NewTextNode(doc, "x"), NewComment("x", doc), false},
		{"pi equal fields", NewProcessingInstructionNode(doc, "xml", "v=1"), NewProcessingInstructionNode(doc, "xml", "v=1"), true},
		{"pi target differs", NewProcessingInstructionNode(doc, "xml", "v=1"), NewProcessingInstructionNode(doc, "php", "v=1"), false},
		{"pi data differs", NewProcessingInstructionNode(doc, "xml", "v=1"), NewProcessingInstructionNode(doc, "xml", "v=2"), false},
		{"element equal attrs", elemA, elemB, true},
		{"element attr value differs", elemA, elemC, false},
		{"element name differs", elemA, elemD, false},
		{"marker presence only", ScopeMarker, &Node{NodeType: ScopeMarkerNode, NodeName: "marker"}, true},
		{"document presence only", NewDocumentNode(), NewDocumentNode(), true},
		{"nil other node", NewDocumentNode(), nil, false},
	}
}

func TestIsEqualNode(t *testing.T) {
	for _, tt := range equalityCases() {
		runTestIsEqualNode(tt, t)
	}
}

func runTestIsEqualNode(tt equalityTestcase, t *testing.T) {
	t.Run(tt.name, func(t *testing.T) {
		t.Parallel()
		if got := tt.a.IsEqualNode(tt.b); got != tt.want {
			t.Errorf("Expected IsEqualNode=%v, got %v\n", tt.want, got)
		}
		// equality is symmetric
		if tt.b != nil {
			if got := tt.b.IsEqualNode(tt.a); got != tt.want {
				t.Errorf("Expected symmetric IsEqualNode=%v, got %v\n", tt.want, got)
			}
		}
	})
}

func TestIsEqualNodeReflexive(t *testing.T) {
	t.Parallel()
	doc := NewDocumentNode()
	nodes := []*Node{
		doc,
		doc.CreateElement("div"),
		NewTextNode(doc, "x"),
		NewComment("x", doc),
		NewDocTypeNode("html", "", ""),
		NewProcessingInstructionNode(doc, "xml", "v=1"),
		ScopeMarker,
	}
	for _, n := range nodes {
		if !n.IsEqualNode(n) {
			t.Errorf("Expected %s to equal itself\n", n.NodeName)
		}
	}
}

// Equality counts attributes as a set, independent of insertion order.
func TestIsEqualNodeAttributeOrderIrrelevant(t *testing.T) {
	t.Parallel()
	doc := NewDocumentNode()
	a := doc.CreateElement("div")
	a.Element.SetAttribute("id", "x")
	a.Element.SetAttribute("class", "y")
	b := doc.CreateElement("div")
	b.Element.SetAttribute("class", "y")
	b.Element.SetAttribute("id", "x")

	if !a.IsEqualNode(b) {
		t.Error("Expected elements with the same attribute set to be equal")
	}

	b.Element.SetAttribute("href", "z")
	if a.IsEqualNode(b) {
		t.Error("Expected an extra attribute to break equality")
	}
}

// Children never take part: equality is a per-node value comparison.
func TestIsEqualNodeIgnoresSubtrees(t *testing.T) {
	t.Parallel()
	doc := NewDocumentNode()
	a := doc.CreateElement("div")
	b := doc.CreateElement("div")
	mustAppend(t, a, doc.CreateElement("p"))

	if !a.IsEqualNode(b) {
		t.Error("Expected equality to ignore descendants")
	}
}
