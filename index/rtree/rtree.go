// Package rtree provides a bulk-loaded bounding-box tree over event
// locations.
//
// The tree is packed with the Sort-Tile-Recursive (STR) algorithm: entries
// are tiled into leaves in one O(n log n) pass and parent levels are packed
// the same way until a single root remains. There is no incremental insert;
// the store rebuilds the whole tree on every load, so bulk packing gives a
// tighter tree than repeated insertion would.
package rtree

import (
	"iter"
	"math"
	"sort"

	"github.com/paulmach/orb"

	"github.com/brigid-void/OxyMap/index"
)

// Compile-time check to ensure Tree satisfies the spatial index interface.
var _ index.Spatial = (*Tree)(nil)

// Options contains configuration options for the tree.
type Options struct {
	// MaxEntries is the maximum number of entries per leaf and children per
	// inner node. Values below 2 fall back to the default.
	MaxEntries int
}

// DefaultOptions contains the default configuration options for the tree.
var DefaultOptions = Options{
	MaxEntries: 16,
}

type node struct {
	bound    orb.Bound
	entries  []index.Entry // set on leaves
	children []*node       // set on inner nodes
}

// Tree is an immutable STR-packed R-tree. It is safe for concurrent reads.
type Tree struct {
	root   *node
	size   int
	height int
	opts   Options
}

// Build bulk constructs a tree from the given entries in one pass.
// The input slice is not retained or mutated.
func Build(entries []index.Entry, optFns ...func(o *Options)) *Tree {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MaxEntries < 2 {
		opts.MaxEntries = DefaultOptions.MaxEntries
	}

	t := &Tree{size: len(entries), opts: opts}
	if len(entries) == 0 {
		return t
	}

	level := packLeaves(entries, opts.MaxEntries)
	t.height = 1

	for len(level) > 1 {
		level = packNodes(level, opts.MaxEntries)
		t.height++
	}

	t.root = level[0]

	return t
}

// Len returns the number of indexed entries.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Search yields the position of every entry whose bounding box intersects
// box. Subtrees whose bound cannot intersect box are pruned, never visited.
// Degenerate (point) and full-plane boxes need no special handling.
func (t *Tree) Search(box orb.Bound) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if t == nil || t.root == nil {
			return
		}
		t.root.search(box, yield)
	}
}

func (n *node) search(box orb.Bound, yield func(uint32) bool) bool {
	if !n.bound.Intersects(box) {
		return true
	}

	if n.children == nil {
		for _, e := range n.entries {
			if e.Bound.Intersects(box) {
				if !yield(e.Pos) {
					return false
				}
			}
		}
		return true
	}

	for _, c := range n.children {
		if !c.search(box, yield) {
			return false
		}
	}

	return true
}

// packLeaves tiles the entries into leaf nodes: sort by center x, cut into
// ceil(sqrt(leafCount)) vertical slices, sort each slice by center y and
// fill leaves of up to m entries. Ties break on position so identical
// inputs pack identical trees.
func packLeaves(entries []index.Entry, m int) []*node {
	sorted := make([]index.Entry, len(entries))
	copy(sorted, entries)

	sort.Slice(sorted, func(i, j int) bool {
		ci, cj := sorted[i].Bound.Center(), sorted[j].Bound.Center()
		if ci.X() != cj.X() {
			return ci.X() < cj.X()
		}
		return sorted[i].Pos < sorted[j].Pos
	})

	leafCount := (len(sorted) + m - 1) / m
	sliceSize := int(math.Ceil(math.Sqrt(float64(leafCount)))) * m

	leaves := make([]*node, 0, leafCount)

	for start := 0; start < len(sorted); start += sliceSize {
		slice := sorted[start:min(start+sliceSize, len(sorted))]

		sort.Slice(slice, func(i, j int) bool {
			ci, cj := slice[i].Bound.Center(), slice[j].Bound.Center()
			if ci.Y() != cj.Y() {
				return ci.Y() < cj.Y()
			}
			return slice[i].Pos < slice[j].Pos
		})

		for lo := 0; lo < len(slice); lo += m {
			chunk := slice[lo:min(lo+m, len(slice))]

			leaf := &node{
				bound:   chunk[0].Bound,
				entries: append([]index.Entry(nil), chunk...),
			}
			for _, e := range chunk[1:] {
				leaf.bound = leaf.bound.Union(e.Bound)
			}

			leaves = append(leaves, leaf)
		}
	}

	return leaves
}

// packNodes applies the same tiling one level up, grouping child nodes
// under inner nodes of up to m children.
func packNodes(nodes []*node, m int) []*node {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].bound.Center().X() < nodes[j].bound.Center().X()
	})

	parentCount := (len(nodes) + m - 1) / m
	sliceSize := int(math.Ceil(math.Sqrt(float64(parentCount)))) * m

	parents := make([]*node, 0, parentCount)

	for start := 0; start < len(nodes); start += sliceSize {
		slice := nodes[start:min(start+sliceSize, len(nodes))]

		sort.Slice(slice, func(i, j int) bool {
			return slice[i].bound.Center().Y() < slice[j].bound.Center().Y()
		})

		for lo := 0; lo < len(slice); lo += m {
			chunk := slice[lo:min(lo+m, len(slice))]

			parent := &node{
				bound:    chunk[0].bound,
				children: append([]*node(nil), chunk...),
			}
			for _, c := range chunk[1:] {
				parent.bound = parent.bound.Union(c.bound)
			}

			parents = append(parents, parent)
		}
	}

	return parents
}
