package brd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

func TestDistinctNets(t *testing.T) {
	b := parseSample(t)
	assert.Equal(t, []string{"GND", "N$1", "VCC", "gnd"}, DistinctNets(b))
}

func TestMembers(t *testing.T) {
	b := parseSample(t)

	tests := []struct {
		name         string
		net          string
		wantWires    int
		wantVias     int
		wantPolygons int
	}{
		{name: "GND", net: "GND", wantWires: 2, wantVias: 1, wantPolygons: 1},
		{name: "VCC", net: "VCC", wantWires: 1, wantPolygons: 1},
		{name: "skipped wire is not a member", net: "N$1", wantWires: 1},
		{name: "case-sensitive", net: "gnd", wantWires: 1},
		{name: "unknown net", net: "VBUS"},
		{name: "empty net is no net", net: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Members(b, tt.net)
			if len(m.Wires) != tt.wantWires {
				t.Errorf("Members(%q) wires = %d, want %d", tt.net, len(m.Wires), tt.wantWires)
			}
			if len(m.Vias) != tt.wantVias {
				t.Errorf("Members(%q) vias = %d, want %d", tt.net, len(m.Vias), tt.wantVias)
			}
			if len(m.Polygons) != tt.wantPolygons {
				t.Errorf("Members(%q) polygons = %d, want %d", tt.net, len(m.Polygons), tt.wantPolygons)
			}
		})
	}
}

// Every shape carrying a net is returned by Members for that net, and nothing
// else is.
func TestMembersComplete(t *testing.T) {
	b := parseSample(t)

	total := 0
	for _, name := range DistinctNets(b) {
		m := Members(b, name)
		for _, w := range m.Wires {
			assert.Equal(t, name, w.Net)
		}
		for _, v := range m.Vias {
			assert.Equal(t, name, v.Net)
		}
		for _, p := range m.Polygons {
			assert.Equal(t, name, p.Net)
		}
		total += m.Count()
	}

	tagged := 0
	for _, w := range b.Wires {
		if w.Net != "" {
			tagged++
		}
	}
	for _, v := range b.Vias {
		if v.Net != "" {
			tagged++
		}
	}
	for _, p := range b.Polygons {
		if p.Net != "" {
			tagged++
		}
	}
	assert.Equal(t, tagged, total)
}

func TestNetIndex(t *testing.T) {
	b := &Board{
		Wires: []geom.Wire{
			{Net: "B", Kind: geom.WireSignal},
			{Net: "A", Kind: geom.WireSignal},
			{Kind: geom.WirePlain},
		},
		Vias: []geom.Via{{Net: "C"}},
	}

	idx := NewNetIndex(b)
	assert.Equal(t, []string{"A", "B", "C"}, idx.Names())
	assert.True(t, idx.Has("C"))
	assert.False(t, idx.Has(""))
	assert.False(t, idx.Has("a"))

	// Results are copies
	names := idx.Names()
	names[0] = "Z"
	assert.Equal(t, "A", idx.Names()[0])

	m := idx.Members("A")
	require.Len(t, m.Wires, 1)
	m.Wires[0].Net = "mutated"
	assert.Equal(t, "A", idx.Members("A").Wires[0].Net)
}

func TestBoardNetsBuiltAtParse(t *testing.T) {
	b := parseSample(t)
	assert.Same(t, b.Nets(), b.Nets())

	hand := &Board{}
	assert.Empty(t, hand.Nets().Names())
}
