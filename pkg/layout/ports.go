package layout

import (
	"cmp"
	"slices"
)

// sortPorts orders each node's sources and destinations by tag and assigns
// zero-based indices. Equal tags keep their extraction order.
func sortPorts(nodes []*Node) {
	for _, n := range nodes {
		slices.SortStableFunc(n.Sources, func(a, b *Source) int { return cmp.Compare(a.Tag, b.Tag) })
		for i, s := range n.Sources {
			s.Index = i
		}
		slices.SortStableFunc(n.Destinations, func(a, b *Destination) int { return cmp.Compare(a.Tag, b.Tag) })
		for i, d := range n.Destinations {
			d.Index = i
		}
	}
}
