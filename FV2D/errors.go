package FV2D

import "fmt"

// UnsupportedTopologyError reports an element whose vertex count does not
// select any of the supported shapes.
type UnsupportedTopologyError struct {
	NumVertices int
}

func (e UnsupportedTopologyError) Error() string {
	return fmt.Sprintf("unsupported element topology: %d vertices, supported counts are 3 (triangle) and 4 (quadrilateral)",
		e.NumVertices)
}

// DegenerateGeometryError reports a non-invertible coordinate-map Jacobian,
// which indicates a malformed (zero or negative area) element.
type DegenerateGeometryError struct {
	Element int
	Cause   error
}

func (e DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate geometry in element %d: %s", e.Element, e.Cause)
}

func (e DegenerateGeometryError) Unwrap() error { return e.Cause }
