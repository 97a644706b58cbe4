package dom

// https://dom.spec.whatwg.org/#text
type Text struct {
	*CharacterData
}

// https://dom.spec.whatwg.org/#cdatasection
type CDATASection struct {
	*CharacterData
}
