package dom

import "github.com/lightpanda-io/browser-sub009/webidl"

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace    Namespace
	Prefix       webidl.DOMString
	LocalName    webidl.DOMString
	Name         webidl.DOMString
	Value        webidl.DOMString
	OwnerElement *Node
	Specified    bool
}

func NewAttr(name, value webidl.DOMString) *Attr {
	return &Attr{
		LocalName: name,
		Name:      name,
		Value:     value,
		Specified: true,
	}
}
