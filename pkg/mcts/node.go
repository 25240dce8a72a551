package mcts

import "github.com/connectfour-ai/go-connectfour/pkg/game"

// Node is a search-tree node. It is exclusively owned by its parent: no two
// goroutines ever touch the same Node concurrently (see engine.go), so plain
// fields are sufficient — unlike the teacher library's atomic-backed
// NodeBase, which is shared across tree-parallel workers.
type Node struct {
	State        *game.State
	Visits       uint64 // initialized to 1, see newNode
	Reward       float64
	Parent       *Node
	Children     []*Node
	ChildrenMove []int
}

// newNode builds a fresh node rooted at state, with Visits initialized to 1
// per the documented source behavior (spec Open Question 1): this biases the
// UCB1 log(parent.Visits) term for the very first child selection at the
// root. Preserved for behavioral parity rather than "fixed".
func newNode(state *game.State, parent *Node) *Node {
	return &Node{
		State:  state,
		Visits: 1,
		Parent: parent,
	}
}

// AddChild appends a new child to Children and its originating column to
// ChildrenMove in lockstep; the two slices are always the same length.
func (n *Node) AddChild(state *game.State, move int) *Node {
	child := newNode(state, n)
	n.Children = append(n.Children, child)
	n.ChildrenMove = append(n.ChildrenMove, move)
	return child
}

// IsTerminal reports whether this node's position has no further moves.
func (n *Node) IsTerminal() bool {
	return n.State.IsOver()
}

// FullyExplored reports whether every legal column has a child.
func (n *Node) FullyExplored() bool {
	return len(n.Children) == len(n.State.LegalMoves())
}
