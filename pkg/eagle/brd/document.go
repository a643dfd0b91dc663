package brd

import "encoding/xml"

// The xml* types mirror the subset of the EAGLE schema the parser reads.
// Numeric attributes stay strings so that one malformed value skips only its
// own element instead of failing the whole decode.

type xmlDocument struct {
	XMLName xml.Name
	Drawing *xmlDrawing `xml:"drawing"`
}

type xmlDrawing struct {
	Layers *xmlLayers `xml:"layers"`
	Board  *xmlBoard  `xml:"board"`
}

type xmlLayers struct {
	Layers []xmlLayer `xml:"layer"`
}

type xmlLayer struct {
	Number  string `xml:"number,attr"`
	Name    string `xml:"name,attr"`
	Color   string `xml:"color,attr"`
	Visible string `xml:"visible,attr"`
	Active  string `xml:"active,attr"`
}

type xmlBoard struct {
	Plain     *xmlShapes    `xml:"plain"`
	Libraries *xmlLibraries `xml:"libraries"`
	Elements  *xmlElements  `xml:"elements"`
	Signals   *xmlSignals   `xml:"signals"`
}

// xmlShapes collects the primitives that may appear in <plain>, <package> and
// <signal>. Each container reads only the kinds it supports.
type xmlShapes struct {
	Wires      []xmlWire      `xml:"wire"`
	Vias       []xmlVia       `xml:"via"`
	Pads       []xmlPad       `xml:"pad"`
	SMDs       []xmlSMD       `xml:"smd"`
	Circles    []xmlCircle    `xml:"circle"`
	Rectangles []xmlRectangle `xml:"rectangle"`
	Polygons   []xmlPolygon   `xml:"polygon"`
	Texts      []xmlText      `xml:"text"`
}

type xmlLibraries struct {
	Libraries []xmlLibrary `xml:"library"`
}

type xmlLibrary struct {
	Name     string       `xml:"name,attr"`
	Packages *xmlPackages `xml:"packages"`
}

type xmlPackages struct {
	Packages []xmlPackage `xml:"package"`
}

type xmlPackage struct {
	Name string `xml:"name,attr"`
	xmlShapes
}

type xmlElements struct {
	Elements []xmlElement `xml:"element"`
}

type xmlElement struct {
	Name    string `xml:"name,attr"`
	Value   string `xml:"value,attr"`
	Library string `xml:"library,attr"`
	Package string `xml:"package,attr"`
	X       string `xml:"x,attr"`
	Y       string `xml:"y,attr"`
	Rot     string `xml:"rot,attr"`
}

type xmlSignals struct {
	Signals []xmlSignal `xml:"signal"`
}

type xmlSignal struct {
	Name string `xml:"name,attr"`
	xmlShapes
}

type xmlWire struct {
	X1    string `xml:"x1,attr"`
	Y1    string `xml:"y1,attr"`
	X2    string `xml:"x2,attr"`
	Y2    string `xml:"y2,attr"`
	Width string `xml:"width,attr"`
	Layer string `xml:"layer,attr"`
}

type xmlVia struct {
	X        string `xml:"x,attr"`
	Y        string `xml:"y,attr"`
	Drill    string `xml:"drill,attr"`
	Diameter string `xml:"diameter,attr"`
	Extent   string `xml:"extent,attr"`
}

type xmlPad struct {
	Name     string `xml:"name,attr"`
	X        string `xml:"x,attr"`
	Y        string `xml:"y,attr"`
	Drill    string `xml:"drill,attr"`
	Diameter string `xml:"diameter,attr"`
	Shape    string `xml:"shape,attr"`
	Layer    string `xml:"layer,attr"`
	Rot      string `xml:"rot,attr"`
}

type xmlSMD struct {
	Name      string `xml:"name,attr"`
	X         string `xml:"x,attr"`
	Y         string `xml:"y,attr"`
	DX        string `xml:"dx,attr"`
	DY        string `xml:"dy,attr"`
	Layer     string `xml:"layer,attr"`
	Roundness string `xml:"roundness,attr"`
	Rot       string `xml:"rot,attr"`
}

type xmlCircle struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Radius string `xml:"radius,attr"`
	Width  string `xml:"width,attr"`
	Layer  string `xml:"layer,attr"`
}

type xmlRectangle struct {
	X1    string `xml:"x1,attr"`
	Y1    string `xml:"y1,attr"`
	X2    string `xml:"x2,attr"`
	Y2    string `xml:"y2,attr"`
	Layer string `xml:"layer,attr"`
	Rot   string `xml:"rot,attr"`
}

type xmlPolygon struct {
	Width    string      `xml:"width,attr"`
	Layer    string      `xml:"layer,attr"`
	Vertices []xmlVertex `xml:"vertex"`
}

type xmlVertex struct {
	X string `xml:"x,attr"`
	Y string `xml:"y,attr"`
}

type xmlText struct {
	X     string `xml:"x,attr"`
	Y     string `xml:"y,attr"`
	Size  string `xml:"size,attr"`
	Layer string `xml:"layer,attr"`
	Rot   string `xml:"rot,attr"`
	Value string `xml:",chardata"`
}
