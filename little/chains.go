// SPDX-License-Identifier: MIT

// Package little - cycle elimination.
//
// Committed edges form vertex-disjoint directed chains. Every chain is
// stored once as a shortcut head→tail in a two-way index, so joining a new
// edge to its neighbours is two map lookups instead of a scan of the commit
// history. After a merge the only edge that could close the merged chain
// into a premature cycle is tail→head; that cell is forbidden.
//
// Complexity: link is O(1) expected; eliminateCycle is O(n) for the label scan.
package little

import "sort"

// chainIndex maps each chain's head to its tail and back.
type chainIndex struct {
	next map[int]int // head → tail
	prev map[int]int // tail → head
}

func newChainIndex() chainIndex {
	return chainIndex{next: map[int]int{}, prev: map[int]int{}}
}

// clone returns an independent copy.
func (ci chainIndex) clone() chainIndex {
	cp := chainIndex{
		next: make(map[int]int, len(ci.next)),
		prev: make(map[int]int, len(ci.prev)),
	}
	for h, t := range ci.next {
		cp.next[h] = t
		cp.prev[t] = h
	}

	return cp
}

// link merges edge e with the chain ending at e.From and the chain starting
// at e.To (when present), stores the merged chain head→tail and returns the
// closing edge tail→head that must be forbidden.
//
// A merge that would join a chain to its own head (the final edge of a full
// tour) is not performed; link never stores a cycle.
func (ci chainIndex) link(e Edge) Edge {
	var head, tail = e.From, e.To
	for {
		if h, ok := ci.prev[head]; ok && h != tail {
			delete(ci.prev, head)
			delete(ci.next, h)
			head = h
			continue
		}
		if t, ok := ci.next[tail]; ok && t != head {
			delete(ci.next, tail)
			delete(ci.prev, t)
			tail = t
			continue
		}
		break
	}
	ci.next[head] = tail
	ci.prev[tail] = head

	return Edge{From: tail, To: head}
}

// edges lists the chains as head→tail edges ordered by head.
func (ci chainIndex) edges() []Edge {
	out := make([]Edge, 0, len(ci.next))
	for h, t := range ci.next {
		out = append(out, Edge{From: h, To: t})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].From < out[b].From })

	return out
}

// LinkChains is the pure form of cycle elimination: given the current
// shortcut chains (head→tail pairs of vertex-disjoint committed chains) and
// a newly committed edge, it returns the updated chains and the edge whose
// use would close a premature cycle.
//
// The input slice is not modified. The result is ordered by head city.
func LinkChains(chains []Edge, e Edge) ([]Edge, Edge) {
	ci := newChainIndex()
	var c Edge
	for _, c = range chains {
		ci.next[c.From] = c.To
		ci.prev[c.To] = c.From
	}
	forbid := ci.link(e)

	return ci.edges(), forbid
}

// eliminateCycle records committed edge e in the chain index and forbids
// the cell that would close the merged chain, if that cell is still in the
// matrix. Called on a freshly built right child, before reduction.
func (n *Node) eliminateCycle(e Edge) {
	back := n.chains.link(e)
	i, j := n.rowIndex(back.From), n.colIndex(back.To)
	if i < 0 || j < 0 {
		return
	}
	_ = n.m.Forbid(i, j) // indices come from the label scan, always in range
}
