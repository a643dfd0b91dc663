package brd

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// NetMembers holds every shape tagged with one net
type NetMembers struct {
	Wires    []geom.Wire    `json:"wires"`
	Vias     []geom.Via     `json:"vias"`
	Polygons []geom.Polygon `json:"polygons"`
}

// Count returns the total number of members
func (m NetMembers) Count() int {
	return len(m.Wires) + len(m.Vias) + len(m.Polygons)
}

// NetIndex groups a board's wires, vias and polygons by net name.
// Shapes with an empty net belong to no net and are not indexed.
type NetIndex struct {
	names   []string
	members map[string]*NetMembers
}

// NewNetIndex builds the index in one pass over the board
func NewNetIndex(b *Board) *NetIndex {
	idx := &NetIndex{
		members: make(map[string]*NetMembers),
	}

	for _, w := range b.Wires {
		if m := idx.entry(w.Net); m != nil {
			m.Wires = append(m.Wires, w)
		}
	}
	for _, v := range b.Vias {
		if m := idx.entry(v.Net); m != nil {
			m.Vias = append(m.Vias, v)
		}
	}
	for _, p := range b.Polygons {
		if m := idx.entry(p.Net); m != nil {
			m.Polygons = append(m.Polygons, p)
		}
	}

	idx.names = make([]string, 0, len(idx.members))
	for name := range idx.members {
		idx.names = append(idx.names, name)
	}
	sort.Strings(idx.names)

	return idx
}

func (idx *NetIndex) entry(net string) *NetMembers {
	if net == "" {
		return nil
	}
	m, ok := idx.members[net]
	if !ok {
		m = &NetMembers{}
		idx.members[net] = m
	}
	return m
}

// Names returns the distinct net names in ascending order
func (idx *NetIndex) Names() []string {
	out := make([]string, len(idx.names))
	copy(out, idx.names)
	return out
}

// Has reports whether any shape carries the net. Matching is exact and
// case-sensitive.
func (idx *NetIndex) Has(name string) bool {
	_, ok := idx.members[name]
	return ok
}

// Members returns the shapes carrying the net, or empty members if none do
func (idx *NetIndex) Members(name string) NetMembers {
	m, ok := idx.members[name]
	if !ok {
		return NetMembers{}
	}
	return NetMembers{
		Wires:    append([]geom.Wire(nil), m.Wires...),
		Vias:     append([]geom.Via(nil), m.Vias...),
		Polygons: append([]geom.Polygon(nil), m.Polygons...),
	}
}

// DistinctNets returns the sorted set of non-empty net names on the board
func DistinctNets(b *Board) []string {
	return b.Nets().Names()
}

// Members returns every wire, via and polygon whose net equals name exactly
func Members(b *Board, name string) NetMembers {
	return b.Nets().Members(name)
}
