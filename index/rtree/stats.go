package rtree

// Stats is a snapshot of the tree's shape.
type Stats struct {
	Size       int // indexed entries
	Leaves     int
	InnerNodes int
	Height     int
	MaxEntries int
}

// Stats returns statistics about the tree.
func (t *Tree) Stats() Stats {
	if t == nil {
		return Stats{}
	}

	s := Stats{
		Size:       t.Len(),
		MaxEntries: t.opts.MaxEntries,
	}
	if t.root == nil {
		return s
	}

	s.Height = t.height
	t.root.count(&s)

	return s
}

func (n *node) count(s *Stats) {
	if n.children == nil {
		s.Leaves++
		return
	}
	s.InnerNodes++
	for _, c := range n.children {
		c.count(s)
	}
}
