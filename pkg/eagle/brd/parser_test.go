package brd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

const samplePath = "testdata/sample.brd"

// minimalBoard wraps a <board> body in the required containers
func minimalBoard(body string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<eagle version="9.6.2"><drawing><layers>
<layer number="1" name="Top" color="4"/>
<layer number="20" name="Dimension" color="15"/>
</layers><board>` + body + `</board></drawing></eagle>`
}

func parseSample(t *testing.T) *Board {
	t.Helper()
	b, err := ParseFile(samplePath)
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "not XML", input: "(kicad_pcb (version 20211014))"},
		{name: "truncated XML", input: `<eagle><drawing><board>`},
		{name: "wrong root", input: `<kicad><drawing><board/></drawing></kicad>`},
		{name: "missing drawing", input: `<eagle version="9.6.2"></eagle>`},
		{name: "schematic, no board", input: `<eagle><drawing><layers/><schematic/></drawing></eagle>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("ParseString() expected error, got board %+v", b)
			}
			if b != nil {
				t.Errorf("ParseString() returned a partial board with the error")
			}
			if !IsStructuralMismatch(err) {
				t.Errorf("ParseString() error = %v, want structural mismatch", err)
			}

			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("ParseString() error type = %T, want *FormatError", err)
			}
			if fe.Code != StructuralMismatch {
				t.Errorf("FormatError.Code = %v, want %v", fe.Code, StructuralMismatch)
			}
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.brd"))
	require.Error(t, err)
	assert.True(t, IsStructuralMismatch(err))
	assert.True(t, errors.Is(err, os.ErrNotExist), "cause should be preserved: %v", err)
}

func TestParseEmptyBoard(t *testing.T) {
	b, err := ParseString(`<eagle><drawing><board/></drawing></eagle>`)
	require.NoError(t, err)

	assert.Empty(t, b.Layers)
	assert.Empty(t, b.Packages)
	assert.Empty(t, b.Elements)
	assert.Empty(t, b.Wires)
	assert.Equal(t, geom.BoundingBox{Max: geom.Point{X: 100, Y: 100}}, b.Bounds)
	assert.Empty(t, DistinctNets(b))
}

func TestParseSampleCounts(t *testing.T) {
	b := parseSample(t)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"layers", len(b.Layers), 12},
		{"packages", len(b.Packages), 3},
		{"elements", len(b.Elements), 5},
		{"wires", len(b.Wires), 9},
		{"vias", len(b.Vias), 1},
		{"pads", len(b.Pads), 0},
		{"smds", len(b.SMDs), 0},
		{"circles", len(b.Circles), 1},
		{"rectangles", len(b.Rectangles), 1},
		{"polygons", len(b.Polygons), 3},
		{"texts", len(b.Texts), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("len(%s) = %d, want %d", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestParseSampleLayers(t *testing.T) {
	b := parseSample(t)

	top := b.Layer(geom.LayerTop)
	assert.Equal(t, "Top", top.Name)
	assert.Equal(t, 4, top.Color)

	stop := b.Layer(geom.LayerTStop)
	assert.False(t, stop.Visible)
	assert.True(t, stop.Active)

	// Declared without attributes
	l51 := b.Layer(51)
	assert.Equal(t, geom.Layer{Number: 51, Name: "L51", Color: 7, Visible: true, Active: true}, l51)

	// Never declared
	assert.Equal(t, geom.ImplicitLayer(200), b.Layer(200))

	assert.Equal(t, []int{1, 16, 17, 18, 20, 21, 22, 25, 26, 29, 30, 51}, b.LayerNumbers())
}

func TestParseDuplicateLayerOverwrites(t *testing.T) {
	b, err := ParseString(`<eagle><drawing><layers>
<layer number="1" name="Top" color="4"/>
<layer number="1" name="Route1" color="9"/>
</layers><board/></drawing></eagle>`)
	require.NoError(t, err)

	assert.Len(t, b.Layers, 1)
	assert.Equal(t, "Route1", b.Layer(1).Name)
	assert.Equal(t, 9, b.Layer(1).Color)
}

func TestParseSamplePackages(t *testing.T) {
	b := parseSample(t)

	sot := b.Package("SOT23")
	require.NotNil(t, sot)
	assert.Equal(t, "ref-packages", sot.Library)
	// Two wires, three SMDs, one rectangle; package texts are not read
	require.Len(t, sot.Shapes, 6)
	kinds := make([]string, len(sot.Shapes))
	for i, s := range sot.Shapes {
		kinds[i] = geom.KindOf(s)
	}
	assert.Equal(t, []string{"wire", "wire", "smd", "smd", "smd", "rectangle"}, kinds)

	w := sot.Shapes[0].(geom.Wire)
	assert.Equal(t, geom.WirePackage, w.Kind)
	assert.Equal(t, geom.Point{X: -1.4, Y: 0.65}, w.Start)

	hdr := b.Package("1X01")
	require.NotNil(t, hdr)
	require.Len(t, hdr.Shapes, 4)
	pad := hdr.Shapes[1].(geom.Pad)
	assert.Equal(t, geom.LayerPads, pad.Layer)
	assert.Equal(t, "octagon", pad.Shape)
	assert.Equal(t, geom.Size{DX: 1.8, DY: 1.8}, pad.Size)

	poly := hdr.Shapes[3].(geom.Polygon)
	assert.False(t, poly.Fill, "package polygons carry no net")
	assert.Empty(t, poly.Net)

	assert.Nil(t, b.Package("SMD0603"))
}

func TestPackageShapesStayOffBoard(t *testing.T) {
	b := parseSample(t)

	for _, w := range b.Wires {
		assert.NotEqual(t, geom.WirePackage, w.Kind, "package wire leaked to board: %+v", w)
	}
	assert.Empty(t, b.SMDs)
	assert.Empty(t, b.Pads)
}

func TestParseDuplicatePackageOverwrites(t *testing.T) {
	b, err := ParseString(minimalBoard(`<libraries>
<library name="old"><packages><package name="P">
<smd name="1" x="0" y="0" dx="1" dy="1" layer="1"/>
</package></packages></library>
<library name="new"><packages><package name="P">
<smd name="1" x="0" y="0" dx="1" dy="1" layer="1"/>
<smd name="2" x="1" y="0" dx="1" dy="1" layer="1"/>
</package></packages></library>
</libraries>`))
	require.NoError(t, err)

	require.Len(t, b.Packages, 1)
	assert.Equal(t, "new", b.Package("P").Library)
	assert.Len(t, b.Package("P").Shapes, 2)
}

func TestParseSampleElements(t *testing.T) {
	b := parseSample(t)

	u1, ok := b.Element("U1")
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 49, Y: 39}, u1.Position)
	assert.Equal(t, geom.Rotation{Angle: 90, Mirror: true}, u1.Rotation)
	assert.Equal(t, "BC847", u1.Value)

	// Skipped for its malformed x
	_, ok = b.Element("BAD1")
	assert.False(t, ok)
}

// An element whose package is missing from the libraries is kept and simply
// has no shapes.
func TestParseMissingPackageResilience(t *testing.T) {
	b := parseSample(t)

	c7, ok := b.Element("C7")
	require.True(t, ok)
	assert.Equal(t, "SMD0603", c7.Package)
	assert.Empty(t, b.Instances(c7))
	assert.True(t, within(b.Bounds, c7.Position))
}

func TestParseSamplePlain(t *testing.T) {
	b := parseSample(t)

	var plain []geom.Wire
	for _, w := range b.Wires {
		if w.Kind == geom.WirePlain {
			plain = append(plain, w)
		}
	}
	// The fifth plain wire has width="abc" and is skipped
	require.Len(t, plain, 4)
	for _, w := range plain {
		assert.Equal(t, geom.LayerDimension, w.Layer)
		assert.Zero(t, w.Width)
		assert.Empty(t, w.Net)
	}

	text := b.Texts[0]
	assert.Equal(t, "OpenTrace", text.Value)
	assert.Equal(t, 90.0, text.Rotation)
	assert.InDelta(t, 1.778, text.Size, 1e-9)

	assert.Equal(t, geom.Point{X: 25, Y: 20}, b.Circles[0].Center)
	assert.Equal(t, geom.Point{X: 22, Y: 4}, b.Rectangles[0].Corners[2])
}

// EAGLE writes the spin and mirror flags in either order
func TestParseRotationFlagOrder(t *testing.T) {
	b, err := ParseString(minimalBoard(`<plain>
<text x="1" y="1" size="1.27" layer="25" rot="SMR90">BOTTOM1</text>
<text x="2" y="2" size="1.27" layer="25" rot="MSR90">BOTTOM2</text>
</plain>
<elements>
<element name="Q1" library="lib" package="PKG" value="" x="3" y="4" rot="SMR270"/>
</elements>`))
	require.NoError(t, err)

	require.Len(t, b.Texts, 2)
	for _, text := range b.Texts {
		assert.Equal(t, 90.0, text.Rotation, text.Value)
	}

	q1, ok := b.Element("Q1")
	require.True(t, ok)
	assert.Equal(t, geom.Rotation{Angle: 270, Mirror: true, Spin: true}, q1.Rotation)
}

func TestParsePolygonClassification(t *testing.T) {
	b := parseSample(t)

	type flags struct {
		net     string
		layer   int
		fill    bool
		outline bool
	}
	var got []flags
	for _, p := range b.Polygons {
		assert.GreaterOrEqual(t, len(p.Vertices), 3)
		got = append(got, flags{p.Net, p.Layer, p.Fill, p.Outline})
	}

	want := []flags{
		{"", geom.LayerDimension, false, true},    // plain board outline
		{"GND", geom.LayerBottom, true, false},    // copper pour
		{"VCC", geom.LayerDimension, false, true}, // net on the outline layer is still an outline
	}
	assert.Equal(t, want, got)
}

func TestParseSignalNets(t *testing.T) {
	b := parseSample(t)

	for _, w := range b.Wires {
		if w.Kind == geom.WireSignal {
			assert.NotEmpty(t, w.Net, "signal wire without net: %+v", w)
		} else {
			assert.Empty(t, w.Net)
		}
	}

	v := b.Vias[0]
	assert.Equal(t, "GND", v.Net)
	assert.Equal(t, "1-16", v.Extent)
	assert.InDelta(t, 0.4, v.Drill, 1e-9)
	assert.InDelta(t, 0.8, v.Diameter, 1e-9)
}

func TestParseSkipsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)

	_, err = NewParser(WithLogger(logger)).Parse(bytes.NewReader(data))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "skipping element")
	for _, kind := range []string{"kind=layer", "kind=wire", "kind=element", "kind=polygon"} {
		assert.Contains(t, out, kind)
	}
	assert.Contains(t, out, "element references unknown package")
	assert.Contains(t, out, "skipped=5")
}

func TestParseQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})

	_, err := NewParser(WithLogger(logger)).Parse(strings.NewReader(minimalBoard(`<plain>
<wire x1="oops" y1="0" x2="1" y2="1" layer="21"/>
</plain>`)))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestParserIsReusable(t *testing.T) {
	p := NewParser()
	first, err := p.ParseFile(samplePath)
	require.NoError(t, err)
	second, err := p.ParseFile(samplePath)
	require.NoError(t, err)

	assert.Equal(t, first.Bounds, second.Bounds)
	assert.Equal(t, first.Elements, second.Elements)
	assert.NotSame(t, first, second)
}
