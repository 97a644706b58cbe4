package dom

import "github.com/lightpanda-io/browser-sub009/webidl"

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xlinkns
	Xmlns
	Xmlnsns
)

// Element is https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI Namespace
	Prefix       webidl.DOMString
	LocalName    webidl.DOMString
	Attributes   *NamedNodeMap
}

func (e *Element) HasAttributes() bool {
	return e.Attributes != nil && e.Attributes.Length() > 0
}

func (e *Element) GetAttributeNames() []webidl.DOMString {
	names := make([]webidl.DOMString, 0, e.Attributes.Length())
	for i := 0; i < e.Attributes.Length(); i++ {
		names = append(names, e.Attributes.Item(i).Name)
	}
	return names
}

func (e *Element) GetAttribute(qualifiedName webidl.DOMString) webidl.DOMString {
	a := e.Attributes.GetNamedItem(qualifiedName)
	if a == nil {
		return ""
	}
	return a.Value
}

func (e *Element) SetAttribute(qualifiedName, value webidl.DOMString) {
	e.Attributes.SetNamedItem(NewAttr(qualifiedName, value))
}

func (e *Element) RemoveAttribute(qualifiedName webidl.DOMString) {
	e.Attributes.RemoveNamedItem(qualifiedName)
}

func (e *Element) HasAttribute(qualifiedName webidl.DOMString) bool {
	return e.Attributes.GetNamedItem(qualifiedName) != nil
}
