package dom

import "github.com/lightpanda-io/browser-sub009/webidl"

// https://dom.spec.whatwg.org/#processinginstruction
type ProcessingInstruction struct {
	Target webidl.DOMString
	*CharacterData
}
