package dom

import "github.com/lightpanda-io/browser-sub009/webidl"

// CharacterData is https://dom.spec.whatwg.org/#characterdata
type CharacterData struct {
	Data   webidl.DOMString
	Length int
}
