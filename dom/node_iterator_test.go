package dom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/lightpanda-io/browser-sub009/webidl"
)

func drain(t *testing.T, it *NodeIterator) []webidl.DOMString {
	t.Helper()
	var names []webidl.DOMString
	for {
		n, err := it.NextNode()
		if err != nil {
			t.Fatalf("NextNode: %v", err)
		}
		if n == nil {
			return names
		}
		names = append(names, n.NodeName)
	}
}

func TestNodeIteratorDocumentOrder(t *testing.T) {
	t.Parallel()
	root, _, _, _, _ := buildTree(t)

	it := NewNodeIterator(root)
	got := drain(t, it)
	if !equalNames(got, []webidl.DOMString{"a", "b", "c", "d"}) {
		t.Errorf("Expected [a b c d], got %v\n", got)
	}
}

func TestNodeIteratorDoneIsTerminal(t *testing.T) {
	t.Parallel()
	root, _, _, _, _ := buildTree(t)

	it := NewNodeIterator(root)
	drain(t, it)

	// the iterator must not restart from a nil reference node
	for i := 0; i < 3; i++ {
		n, err := it.NextNode()
		if err != nil {
			t.Fatalf("NextNode: %v", err)
		}
		if n != nil {
			t.Errorf("Expected exhausted iterator to stay done, got %s\n", n.NodeName)
		}
	}
}

func TestNodeIteratorChildrenPolicy(t *testing.T) {
	t.Parallel()
	root, _, _, _, _ := buildTree(t)

	it := NewNodeIteratorWith(root, NewWalkerChildren())
	got := drain(t, it)
	if !equalNames(got, []webidl.DOMString{"a", "d"}) {
		t.Errorf("Expected [a d], got %v\n", got)
	}
}

func TestNodeIteratorNonePolicy(t *testing.T) {
	t.Parallel()
	root, _, _, _, _ := buildTree(t)

	it := NewNodeIteratorWith(root, NewWalkerNone())
	if got := drain(t, it); len(got) != 0 {
		t.Errorf("Expected no nodes from the none policy, got %v\n", got)
	}
}

func TestNodeIteratorReferenceNode(t *testing.T) {
	t.Parallel()
	root, a, b, _, _ := buildTree(t)

	it := NewNodeIterator(root)
	require.Nil(t, it.ReferenceNode())
	require.Equal(t, root, it.Root())

	n, err := it.NextNode()
	require.NoError(t, err)
	require.Equal(t, a, n)
	require.Equal(t, a, it.ReferenceNode())

	n, err = it.NextNode()
	require.NoError(t, err)
	require.Equal(t, b, n)
	require.Equal(t, b, it.ReferenceNode())
}

// flakyAccessor fails the first FirstChild lookup on a node, then recovers.
type flakyAccessor struct {
	LinkAccessor
	failOn *Node
	err    error
	fired  bool
}

func (f *flakyAccessor) FirstChild(n *Node) (*Node, error) {
	if n == f.failOn && !f.fired {
		f.fired = true
		return nil, f.err
	}
	return f.LinkAccessor.FirstChild(n)
}

func TestNodeIteratorRetriesAfterLookupFailure(t *testing.T) {
	t.Parallel()
	root, a, _, _, _ := buildTree(t)
	boom := errors.New("lookup failed")
	it := NewNodeIteratorWith(root, NewWalkerDepthFirstOver(&flakyAccessor{failOn: a, err: boom}))

	n, err := it.NextNode()
	require.NoError(t, err)
	require.Equal(t, a, n)

	// the failed step must not advance or terminate the cursor
	n, err = it.NextNode()
	require.ErrorIs(t, err, boom)
	require.Nil(t, n)
	require.Equal(t, a, it.ReferenceNode())

	got := drain(t, it)
	require.Equal(t, []webidl.DOMString{"b", "c", "d"}, got)
}

func TestNodeIteratorSeesRemovalAhead(t *testing.T) {
	t.Parallel()
	root, a, _, c, _ := buildTree(t)

	it := NewNodeIterator(root)
	n, err := it.NextNode()
	require.NoError(t, err)
	require.Equal(t, a, n)

	// b disappears before the cursor reaches it
	if _, err := a.RemoveChild(a.FirstChild); err != nil {
		t.Fatalf("RemoveChild: %v", err)
	}
	n, err = it.NextNode()
	require.NoError(t, err)
	require.Equal(t, c, n)
}
