package linebreak

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// tabStops is an ordered set of positioned tab stops, in 1/20000 pt.
type tabStops struct {
	tree *redblacktree.Tree
}

func newTabStops() tabStops {
	return tabStops{tree: redblacktree.NewWithIntComparator()}
}

func (ts tabStops) add(pos int32) {
	ts.tree.Put(int(pos), struct{}{})
}

func (ts tabStops) clear() {
	ts.tree.Clear()
}

func (ts tabStops) size() int {
	return ts.tree.Size()
}

// after returns the first tab stop strictly after pos.
func (ts tabStops) after(pos int32) (int32, bool) {
	node, found := ts.tree.Ceiling(int(pos) + 1)
	if !found {
		return 0, false
	}
	return int32(node.Key.(int)), true
}
