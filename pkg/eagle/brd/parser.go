// Package brd parses EAGLE .brd XML documents into an immutable board model:
// layers, library footprints, placements, plain drawing and routed signals,
// plus the derived bounds and net index.
//
// Parsing is resilient. Only a document that is not an EAGLE board at all
// fails; a malformed element is skipped and logged at debug level.
package brd

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// Parser handles parsing of EAGLE board files
type Parser struct {
	logger *log.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithLogger routes skip diagnostics to logger
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a new EAGLE board parser
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile reads and parses an EAGLE board file
func ParseFile(filename string) (*Board, error) {
	return NewParser().ParseFile(filename)
}

// Parse reads and parses an EAGLE board from an io.Reader
func Parse(r io.Reader) (*Board, error) {
	return NewParser().Parse(r)
}

// ParseString parses an EAGLE board held in memory
func ParseString(s string) (*Board, error) {
	return NewParser().Parse(strings.NewReader(s))
}

// ParseFile reads and parses an EAGLE board file
func (p *Parser) ParseFile(filename string) (*Board, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, structural(err, "failed to open file")
	}
	defer file.Close()

	return p.Parse(file)
}

// Parse reads and parses an EAGLE board from an io.Reader. The only error it
// returns is a *FormatError; no partial board is returned with it.
func (p *Parser) Parse(r io.Reader) (*Board, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, structural(err, "not a valid XML document")
	}

	if doc.XMLName.Local != "eagle" {
		return nil, structural(nil, "not an EAGLE file: expected <eagle>, got <%s>", doc.XMLName.Local)
	}
	if doc.Drawing == nil {
		return nil, structural(nil, "missing <drawing> section")
	}
	if doc.Drawing.Board == nil {
		return nil, structural(nil, "missing <board> section; schematics and libraries are not supported")
	}

	st := &parseState{
		logger: p.logger,
		board:  newBoard(),
	}

	// Packages must exist before elements reference them
	st.parseLayers(doc.Drawing.Layers)
	st.parseLibraries(doc.Drawing.Board.Libraries)
	st.parsePlain(doc.Drawing.Board.Plain)
	st.parseElements(doc.Drawing.Board.Elements)
	st.parseSignals(doc.Drawing.Board.Signals)

	b := st.board
	b.nets = NewNetIndex(b)
	b.Bounds = ComputeBounds(b)

	p.logger.Debug("parsed board",
		"layers", len(b.Layers),
		"packages", len(b.Packages),
		"elements", len(b.Elements),
		"wires", len(b.Wires),
		"vias", len(b.Vias),
		"polygons", len(b.Polygons),
		"skipped", st.skipped,
	)

	return b, nil
}

// parseState carries one Parse call's board under construction
type parseState struct {
	logger  *log.Logger
	board   *Board
	skipped int
}

func (st *parseState) skip(kind string, err error, keyvals ...any) {
	st.skipped++
	st.logger.Debug("skipping element", append([]any{"kind", kind, "err", err}, keyvals...)...)
}

func (st *parseState) parseLayers(layers *xmlLayers) {
	if layers == nil {
		return
	}
	for _, x := range layers.Layers {
		layer, err := parseLayer(x)
		if err != nil {
			st.skip("layer", err)
			continue
		}
		// Redeclared numbers overwrite
		st.board.Layers[layer.Number] = layer
	}
}

func (st *parseState) parseLibraries(libs *xmlLibraries) {
	if libs == nil {
		return
	}
	for _, lib := range libs.Libraries {
		if lib.Packages == nil {
			continue
		}
		for _, x := range lib.Packages.Packages {
			pkg := st.parsePackage(lib.Name, x)
			if _, dup := st.board.Packages[pkg.Name]; dup {
				st.logger.Debug("package redefined", "package", pkg.Name, "library", lib.Name)
			}
			st.board.Packages[pkg.Name] = pkg
		}
	}
}

// parsePackage collects a footprint's shapes in package-local coordinates.
// They are kept only on the package, never on the board-level lists.
func (st *parseState) parsePackage(library string, x xmlPackage) *geom.Package {
	pkg := &geom.Package{
		Name:    x.Name,
		Library: library,
	}
	ctx := []any{"package", x.Name}

	for _, xw := range x.Wires {
		w, err := parseWire(xw, geom.WirePackage)
		if err != nil {
			st.skip("wire", err, ctx...)
			continue
		}
		pkg.Shapes = append(pkg.Shapes, w)
	}
	for _, xp := range x.Pads {
		pad, err := parsePad(xp)
		if err != nil {
			st.skip("pad", err, ctx...)
			continue
		}
		pkg.Shapes = append(pkg.Shapes, pad)
	}
	for _, xs := range x.SMDs {
		smd, err := parseSMD(xs)
		if err != nil {
			st.skip("smd", err, ctx...)
			continue
		}
		pkg.Shapes = append(pkg.Shapes, smd)
	}
	for _, xc := range x.Circles {
		c, err := parseCircle(xc)
		if err != nil {
			st.skip("circle", err, ctx...)
			continue
		}
		pkg.Shapes = append(pkg.Shapes, c)
	}
	for _, xr := range x.Rectangles {
		r, err := parseRectangle(xr)
		if err != nil {
			st.skip("rectangle", err, ctx...)
			continue
		}
		pkg.Shapes = append(pkg.Shapes, r)
	}
	// Package polygons carry no net, so they are never filled
	for _, xp := range x.Polygons {
		poly, err := parsePolygon(xp)
		if err != nil {
			st.skip("polygon", err, ctx...)
			continue
		}
		pkg.Shapes = append(pkg.Shapes, classify(poly, ""))
	}

	return pkg
}

func (st *parseState) parsePlain(plain *xmlShapes) {
	if plain == nil {
		return
	}
	b := st.board
	ctx := []any{"section", "plain"}

	for _, xw := range plain.Wires {
		w, err := parseWire(xw, geom.WirePlain)
		if err != nil {
			st.skip("wire", err, ctx...)
			continue
		}
		b.Wires = append(b.Wires, w)
	}
	for _, xp := range plain.Pads {
		pad, err := parsePad(xp)
		if err != nil {
			st.skip("pad", err, ctx...)
			continue
		}
		b.Pads = append(b.Pads, pad)
	}
	for _, xs := range plain.SMDs {
		smd, err := parseSMD(xs)
		if err != nil {
			st.skip("smd", err, ctx...)
			continue
		}
		b.SMDs = append(b.SMDs, smd)
	}
	for _, xc := range plain.Circles {
		c, err := parseCircle(xc)
		if err != nil {
			st.skip("circle", err, ctx...)
			continue
		}
		b.Circles = append(b.Circles, c)
	}
	for _, xr := range plain.Rectangles {
		r, err := parseRectangle(xr)
		if err != nil {
			st.skip("rectangle", err, ctx...)
			continue
		}
		b.Rectangles = append(b.Rectangles, r)
	}
	for _, xp := range plain.Polygons {
		poly, err := parsePolygon(xp)
		if err != nil {
			st.skip("polygon", err, ctx...)
			continue
		}
		b.Polygons = append(b.Polygons, classify(poly, ""))
	}
	for _, xt := range plain.Texts {
		t, err := parseText(xt)
		if err != nil {
			st.skip("text", err, ctx...)
			continue
		}
		b.Texts = append(b.Texts, t)
	}
}

func (st *parseState) parseElements(elements *xmlElements) {
	if elements == nil {
		return
	}
	for _, x := range elements.Elements {
		el, err := parseElement(x)
		if err != nil {
			st.skip("element", err, "name", x.Name)
			continue
		}
		if st.board.Package(el.Package) == nil {
			st.logger.Debug("element references unknown package", "name", el.Name, "package", el.Package)
		}
		st.board.Elements = append(st.board.Elements, el)
	}
}

// signalShapes holds one signal's copper before its net is applied
type signalShapes struct {
	wires    []geom.Wire
	vias     []geom.Via
	polygons []geom.Polygon
}

// withNet returns the staged shapes tagged with net. Polygons are classified
// here since filling depends on the net.
func (s signalShapes) withNet(net string) signalShapes {
	out := signalShapes{
		wires:    make([]geom.Wire, len(s.wires)),
		vias:     make([]geom.Via, len(s.vias)),
		polygons: make([]geom.Polygon, len(s.polygons)),
	}
	for i, w := range s.wires {
		w.Net = net
		out.wires[i] = w
	}
	for i, v := range s.vias {
		v.Net = net
		out.vias[i] = v
	}
	for i, p := range s.polygons {
		out.polygons[i] = classify(p, net)
	}
	return out
}

func (st *parseState) parseSignals(signals *xmlSignals) {
	if signals == nil {
		return
	}
	b := st.board
	for _, sig := range signals.Signals {
		staged := st.stageSignal(sig)
		final := staged.withNet(sig.Name)
		b.Wires = append(b.Wires, final.wires...)
		b.Vias = append(b.Vias, final.vias...)
		b.Polygons = append(b.Polygons, final.polygons...)
	}
}

func (st *parseState) stageSignal(sig xmlSignal) signalShapes {
	var staged signalShapes
	ctx := []any{"signal", sig.Name}

	for _, xw := range sig.Wires {
		w, err := parseWire(xw, geom.WireSignal)
		if err != nil {
			st.skip("wire", err, ctx...)
			continue
		}
		staged.wires = append(staged.wires, w)
	}
	for _, xv := range sig.Vias {
		v, err := parseVia(xv)
		if err != nil {
			st.skip("via", err, ctx...)
			continue
		}
		staged.vias = append(staged.vias, v)
	}
	for _, xp := range sig.Polygons {
		poly, err := parsePolygon(xp)
		if err != nil {
			st.skip("polygon", err, ctx...)
			continue
		}
		staged.polygons = append(staged.polygons, poly)
	}
	return staged
}
