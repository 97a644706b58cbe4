package dom

import (
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/sirupsen/logrus"
)

// mutationSnapshot serializes the tree a mutation is about to touch, or
// returns "" when debug logging is off so mutations stay cheap.
func mutationSnapshot(n *Node) string {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return ""
	}
	return n.getRoot().String()
}

func logMutation(method string, n *Node, before string) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	after := n.getRoot().String()
	if before == after {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	logrus.WithField("method", method).Debugf("[TREE]: %s", dmp.DiffPrettyText(diffs))
}
