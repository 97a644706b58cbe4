package dom

import (
	"sort"
	"strings"

	"github.com/lightpanda-io/browser-sub009/webidl"
)

// NamedNodeMap is a live, ordered attribute collection. Item resolves an
// index against the current enumeration order at every call, so indexed
// consumers observe removals and insertions as they happen.
//
// https://dom.spec.whatwg.org/#namednodemap
type NamedNodeMap struct {
	Attrs             map[webidl.DOMString]*Attr
	order             []webidl.DOMString
	AssociatedElement *Node
}

func NewNamedNodeMap(attrs map[webidl.DOMString]webidl.DOMString, oe *Node) *NamedNodeMap {
	m := &NamedNodeMap{
		Attrs:             make(map[webidl.DOMString]*Attr, len(attrs)),
		order:             make([]webidl.DOMString, 0, len(attrs)),
		AssociatedElement: oe,
	}
	for k := range attrs {
		m.order = append(m.order, k)
	}
	// map input has no order of its own
	sort.Slice(m.order, func(i, j int) bool { return m.order[i] < m.order[j] })
	for _, k := range m.order {
		a := NewAttr(k, attrs[k])
		a.OwnerElement = oe
		m.Attrs[k] = a
	}
	return m
}

func (n *NamedNodeMap) Length() int {
	return len(n.order)
}

// Item returns the attribute at a zero-based position in the map's current
// enumeration order, or nil past the end.
func (n *NamedNodeMap) Item(index int) *Attr {
	if index < 0 || index >= len(n.order) {
		return nil
	}
	return n.Attrs[n.order[index]]
}

func (n *NamedNodeMap) GetNamedItem(qn webidl.DOMString) *Attr {
	return n.getAttributeByName(qn)
}

func (n *NamedNodeMap) getAttributeByName(qn webidl.DOMString) *Attr {
	if n.ownedByHTMLDocument() {
		qn = webidl.DOMString(strings.ToLower(string(qn)))
	}

	if v, ok := n.Attrs[qn]; ok {
		return v
	}

	return nil
}

func (n *NamedNodeMap) ownedByHTMLDocument() bool {
	oe := n.AssociatedElement
	return oe != nil && oe.Element != nil && oe.Element.NamespaceURI == Htmlns &&
		oe.OwnerDocument != nil && oe.OwnerDocument.NodeType == DocumentNode &&
		oe.OwnerDocument.Document.Type == "html"
}

func (n *NamedNodeMap) getAttributeByNSLocalName(ns Namespace, ln webidl.DOMString) *Attr {
	if v, ok := n.Attrs[ln]; ok {
		if v.Namespace == ns {
			return v
		}
	}

	return nil
}

func (n *NamedNodeMap) GetNamedItemNS(ns Namespace, ln webidl.DOMString) *Attr {
	return n.getAttributeByNSLocalName(ns, ln)
}

// SetNamedItem adds s, or replaces the attribute of the same local name in
// place so its position in the enumeration order is preserved. It returns
// the attribute that was replaced, if any.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	s.OwnerElement = n.AssociatedElement

	old, ok := n.Attrs[s.LocalName]
	if !ok {
		n.Attrs[s.LocalName] = s
		n.order = append(n.order, s.LocalName)
		return nil
	}
	if old == s {
		return s
	}

	n.Attrs[s.LocalName] = s
	return old
}

// RemoveNamedItem removes the attribute with the given local name and closes
// the gap in the enumeration order. It returns the removed attribute, or nil
// when no attribute matched.
func (n *NamedNodeMap) RemoveNamedItem(qn webidl.DOMString) *Attr {
	if n.ownedByHTMLDocument() {
		qn = webidl.DOMString(strings.ToLower(string(qn)))
	}

	old, ok := n.Attrs[qn]
	if !ok {
		return nil
	}
	delete(n.Attrs, qn)
	for i := range n.order {
		if n.order[i] == qn {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	old.OwnerElement = nil
	return old
}
