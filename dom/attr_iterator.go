package dom

// AttrIterator steps through a live NamedNodeMap by index. Each call to Next
// re-fetches the item at the cursor position from the map as it is right
// now, so attributes removed mid-iteration simply end the walk early and
// attributes inserted behind the cursor are skipped. This is deliberate weak
// consistency, not snapshot isolation.
type AttrIterator struct {
	attrs *NamedNodeMap
	index int
	done  bool
}

func NewAttrIterator(m *NamedNodeMap) *AttrIterator {
	return &AttrIterator{attrs: m}
}

// Next returns the attribute at the cursor and advances, or (nil, false)
// forever once an index fetch comes back empty.
func (it *AttrIterator) Next() (*Attr, bool) {
	if it.done {
		return nil, false
	}

	item := it.attrs.Item(it.index)
	if item == nil {
		it.done = true
		return nil, false
	}

	it.index++
	return item, true
}
