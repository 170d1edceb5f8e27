package aoc2022day07

import (
	"github.com/povarna/advent-of-code/internal/aocerr"
)

// NodeID indexes Tree.nodes. IDs are never reused, the tree only grows.
type NodeID int

const RootID NodeID = 0

type Node struct {
	// sum of the files listed directly in this directory
	localSize uint64
	children  map[string]NodeID
	// memoized localSize + all descendants
	totalSize uint64
	sized     bool
}

func newNode() Node {
	return Node{children: make(map[string]NodeID)}
}

// Tree is an arena of directories plus the current working path.
type Tree struct {
	nodes []Node
	// current path below the root, root itself is implicit
	path []NodeID
}

func NewTree() *Tree {
	return &Tree{
		nodes: []Node{newNode()},
	}
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Cwd returns the current directory.
func (t *Tree) Cwd() NodeID {
	if len(t.path) == 0 {
		return RootID
	}
	return t.path[len(t.path)-1]
}

// Child looks up a direct subdirectory of id by name.
func (t *Tree) Child(id NodeID, name string) (NodeID, bool) {
	child, ok := t.nodes[id].children[name]
	return child, ok
}

func (t *Tree) LocalSize(id NodeID) uint64 {
	return t.nodes[id].localSize
}

func (t *Tree) HandleCommand(cmd Command) {
	switch cmd.Kind {
	case CdRoot:
		t.path = t.path[:0]
	case CdUp:
		if len(t.path) > 0 {
			t.path = t.path[:len(t.path)-1]
		}
	case CdDown:
		cwd := t.Cwd()
		child, ok := t.nodes[cwd].children[cmd.Name]
		if !ok {
			child = NodeID(len(t.nodes))
			t.nodes = append(t.nodes, newNode())
			t.nodes[cwd].children[cmd.Name] = child
			t.invalidate()
		}
		t.path = append(t.path, child)
	case Ls:
		t.nodes[t.Cwd()].localSize = cmd.Size
		t.invalidate()
	}
}

// invalidate drops the memo of the current directory and its ancestors, the
// only nodes whose total depends on it.
func (t *Tree) invalidate() {
	t.nodes[RootID].sized = false
	for _, id := range t.path {
		t.nodes[id].sized = false
	}
}

// TotalSize returns the size of id including every subdirectory.
func (t *Tree) TotalSize(id NodeID) uint64 {
	n := &t.nodes[id]
	if n.sized {
		return n.totalSize
	}

	total := n.localSize
	for _, child := range n.children {
		total += t.TotalSize(child)
	}

	n.totalSize = total
	n.sized = true
	return total
}

// SumSmallDirs recomputes every total bottom-up and returns the sum of the
// totals that are at most limit.
func (t *Tree) SumSmallDirs(limit uint64) uint64 {
	_, sum := t.sumSmallDirs(RootID, limit)
	return sum
}

func (t *Tree) sumSmallDirs(id NodeID, limit uint64) (total uint64, sum uint64) {
	total = t.nodes[id].localSize
	for _, child := range t.nodes[id].children {
		childTotal, childSum := t.sumSmallDirs(child, limit)
		total += childTotal
		sum += childSum
	}

	if total <= limit {
		sum += total
	}

	t.nodes[id].totalSize = total
	t.nodes[id].sized = true
	return total, sum
}

// SmallestToFree returns the size of the smallest directory whose deletion
// leaves at least requiredFree of totalSpace unused.
func (t *Tree) SmallestToFree(totalSpace, requiredFree uint64) (uint64, error) {
	const op = "smallest to free"

	used := t.TotalSize(RootID)
	if used > totalSpace {
		return 0, aocerr.New(aocerr.KindCapacity, op, "used space %d exceeds disk size %d", used, totalSpace)
	}

	free := totalSpace - used
	if free >= requiredFree {
		return 0, aocerr.New(aocerr.KindCapacity, op, "already %d free, need %d", free, requiredFree)
	}

	toFree := requiredFree - free
	if used < toFree {
		return 0, aocerr.New(aocerr.KindCapacity, op, "cannot free %d from %d used", toFree, used)
	}

	return t.findSmallest(RootID, used, toFree), nil
}

// findSmallest skips any subtree whose total does not exceed toFree, its
// descendants are never larger.
func (t *Tree) findSmallest(parent NodeID, currentMin uint64, toFree uint64) uint64 {
	for _, child := range t.nodes[parent].children {
		size := t.TotalSize(child)
		if size <= toFree {
			continue
		}
		if size < currentMin {
			currentMin = size
		}
		currentMin = t.findSmallest(child, currentMin, toFree)
	}
	return currentMin
}
