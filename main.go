package main

import (
	"fmt"

	"github.com/lightpanda-io/browser-sub009/dom"
)

func main() {
	doc := dom.NewDocumentNode()
	html := doc.CreateElement("html")
	body := doc.CreateElement("body")
	body.Element.SetAttribute("class", "main")
	doc.AppendChild(html)
	html.AppendChild(body)
	body.AppendChild(doc.CreateTextNode("hello"))

	it := dom.NewNodeIterator(doc)
	for {
		n, err := it.NextNode()
		if err != nil || n == nil {
			break
		}
		fmt.Println(n.NodeName)
	}
}
