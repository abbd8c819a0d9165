package doctree

// Ancestors returns the chain from the document root down to id, inclusive.
func (d *Document) Ancestors(id NodeID) []NodeID {
	var chain []NodeID
	for n := id; n != NoNode; n = d.nodes[n].parent {
		chain = append(chain, n)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// IsDescendantOf reports whether n is ancestor or lies below it.
func (d *Document) IsDescendantOf(n, ancestor NodeID) bool {
	for ; n != NoNode; n = d.nodes[n].parent {
		if n == ancestor {
			return true
		}
	}
	return false
}

// UniqueAncestors returns the ancestors of cur that were not already open at
// prev, outermost first and ending with cur. When cur is itself an ancestor
// of prev nothing new was entered, and the result is just [cur].
// prev may be NoNode, in which case the whole chain of cur is returned.
func (d *Document) UniqueAncestors(prev, cur NodeID) []NodeID {
	curChain := d.Ancestors(cur)
	if prev == NoNode {
		return curChain
	}
	prevChain := d.Ancestors(prev)
	i := 0
	for i < len(prevChain) && i < len(curChain) && prevChain[i] == curChain[i] {
		i++
	}
	diff := curChain[i:]
	if len(diff) == 0 {
		return []NodeID{cur}
	}
	return diff
}
