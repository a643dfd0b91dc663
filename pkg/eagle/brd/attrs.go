package brd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// Attribute defaults for absent values
const (
	defaultWireWidth    = 0.1
	defaultCircleWidth  = 0.1
	defaultPolygonWidth = 0.1
	defaultTextSize     = 1.27
	defaultPadShape     = "round"
)

// attrReader parses string attributes of one element and remembers the first
// failure, so a converter can read every field and check once at the end.
type attrReader struct {
	err error
}

func (a *attrReader) float(name, value string, def float64) float64 {
	value = strings.TrimSpace(value)
	if value == "" || a.err != nil {
		return def
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		a.err = fmt.Errorf("invalid %s %q: %w", name, value, err)
		return def
	}
	return f
}

func (a *attrReader) integer(name, value string, def int) int {
	value = strings.TrimSpace(value)
	if value == "" || a.err != nil {
		return def
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		a.err = fmt.Errorf("invalid %s %q: %w", name, value, err)
		return def
	}
	return n
}

func (a *attrReader) point(xName, x, yName, y string) geom.Point {
	return geom.Point{
		X: a.float(xName, x, 0),
		Y: a.float(yName, y, 0),
	}
}

func (a *attrReader) angle(value string) float64 {
	if a.err != nil {
		return 0
	}
	angle, err := shapeAngle(value)
	if err != nil {
		a.err = err
	}
	return angle
}

// yesNo reads an EAGLE boolean; only "yes" is true
func yesNo(value string, def bool) bool {
	if value == "" {
		return def
	}
	return value == "yes"
}
