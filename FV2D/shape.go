package FV2D

// ShapeType tags the reference-element topology of an Element.
type ShapeType uint8

const (
	Triangle ShapeType = iota
	Quadrilateral
)

func (st ShapeType) String() string {
	switch st {
	case Triangle:
		return "Triangle"
	case Quadrilateral:
		return "Quadrilateral"
	}
	return "Unknown"
}

// Shape is the constant table set describing one reference element: its
// sub-element partition and the shape-function values/derivatives sampled
// at the inner-face and outer-face integration points. Shapes are shared,
// stateless and selected once per element by vertex count.
//
// Index convention: every per-face slice is indexed consistently with
// InnerFaceNeighbourVertices.
type Shape struct {
	Type               ShapeType
	Dimension          int
	NumberOfVertices   int
	NumberOfInnerFaces int
	NumberOfFacets     int

	SubelementTransformedVolumes []float64

	// [innerFace][vertex]
	InnerFaceShapeFunctionValues [][]float64
	// [innerFace][vertex][refDimension]
	InnerFaceShapeFunctionDerivatives [][][]float64
	// [innerFace] -> (backward, forward) local vertex pair
	InnerFaceNeighbourVertices [][2]int
	// [subelement][vertex][refDimension]
	SubelementShapeFunctionDerivatives [][][]float64
	// [facet] -> local vertex pair
	FacetVerticesIndices [][2]int
	// [facet][outerFace][vertex]
	OuterFaceShapeFunctionValues [][][]float64
}

var triangleShape = &Shape{
	Type:                         Triangle,
	Dimension:                    2,
	NumberOfVertices:             3,
	NumberOfInnerFaces:           3,
	NumberOfFacets:               3,
	SubelementTransformedVolumes: []float64{1. / 6., 1. / 6., 1. / 6.},
	InnerFaceShapeFunctionValues: [][]float64{
		{5. / 12., 5. / 12., 1. / 6.},
		{1. / 6., 5. / 12., 5. / 12.},
		{5. / 12., 1. / 6., 5. / 12.},
	},
	InnerFaceShapeFunctionDerivatives: [][][]float64{
		{{-1, -1}, {1, 0}, {0, 1}},
		{{-1, -1}, {1, 0}, {0, 1}},
		{{-1, -1}, {1, 0}, {0, 1}},
	},
	InnerFaceNeighbourVertices: [][2]int{{0, 1}, {1, 2}, {2, 0}},
	SubelementShapeFunctionDerivatives: [][][]float64{
		{{-1, -1}, {1, 0}, {0, 1}},
		{{-1, -1}, {1, 0}, {0, 1}},
		{{-1, -1}, {1, 0}, {0, 1}},
	},
	FacetVerticesIndices: [][2]int{{1, 0}, {2, 1}, {0, 2}},
	OuterFaceShapeFunctionValues: [][][]float64{
		{{1. / 4., 3. / 4., 0}, {3. / 4., 1. / 4., 0}},
		{{0, 1. / 4., 3. / 4.}, {0, 3. / 4., 1. / 4.}},
		{{3. / 4., 0, 1. / 4.}, {1. / 4., 0, 3. / 4.}},
	},
}

var quadrilateralShape = &Shape{
	Type:                         Quadrilateral,
	Dimension:                    2,
	NumberOfVertices:             4,
	NumberOfInnerFaces:           4,
	NumberOfFacets:               4,
	SubelementTransformedVolumes: []float64{1. / 4., 1. / 4., 1. / 4., 1. / 4.},
	InnerFaceShapeFunctionValues: [][]float64{
		{3. / 8., 3. / 8., 1. / 8., 1. / 8.},
		{1. / 8., 3. / 8., 3. / 8., 1. / 8.},
		{1. / 8., 1. / 8., 3. / 8., 3. / 8.},
		{3. / 8., 1. / 8., 1. / 8., 3. / 8.},
	},
	InnerFaceShapeFunctionDerivatives: [][][]float64{
		{{-3. / 4., -1. / 2.}, {3. / 4., -1. / 2.}, {1. / 4., 1. / 2.}, {-1. / 4., 1. / 2.}},
		{{-1. / 2., -1. / 4.}, {1. / 2., -3. / 4.}, {1. / 2., 3. / 4.}, {-1. / 2., 1. / 4.}},
		{{-1. / 4., -1. / 2.}, {1. / 4., -1. / 2.}, {3. / 4., 1. / 2.}, {-3. / 4., 1. / 2.}},
		{{-1. / 2., -3. / 4.}, {1. / 2., -1. / 4.}, {1. / 2., 1. / 4.}, {-1. / 2., 3. / 4.}},
	},
	InnerFaceNeighbourVertices: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	SubelementShapeFunctionDerivatives: [][][]float64{
		{{-3. / 4., -3. / 4.}, {3. / 4., -1. / 4.}, {1. / 4., 1. / 4.}, {-1. / 4., 3. / 4.}},
		{{-3. / 4., -1. / 4.}, {3. / 4., -3. / 4.}, {1. / 4., 3. / 4.}, {-1. / 4., 1. / 4.}},
		{{-1. / 4., -1. / 4.}, {1. / 4., -3. / 4.}, {3. / 4., 3. / 4.}, {-3. / 4., 1. / 4.}},
		{{-1. / 4., -3. / 4.}, {1. / 4., -1. / 4.}, {3. / 4., 1. / 4.}, {-3. / 4., 3. / 4.}},
	},
	FacetVerticesIndices: [][2]int{{1, 0}, {2, 1}, {3, 2}, {0, 3}},
	OuterFaceShapeFunctionValues: [][][]float64{
		{{1. / 4., 3. / 4., 0, 0}, {3. / 4., 1. / 4., 0, 0}},
		{{0, 1. / 4., 3. / 4., 0}, {0, 3. / 4., 1. / 4., 0}},
		{{0, 0, 1. / 4., 3. / 4.}, {0, 0, 3. / 4., 1. / 4.}},
		{{3. / 4., 0, 0, 1. / 4.}, {1. / 4., 0, 0, 3. / 4.}},
	},
}

// ShapeForVertexCount selects the reference shape matching an element's
// vertex count: 3 is a triangle, 4 a quadrilateral, anything else fails.
func ShapeForVertexCount(numVertices int) (*Shape, error) {
	switch numVertices {
	case 3:
		return triangleShape, nil
	case 4:
		return quadrilateralShape, nil
	}
	return nil, UnsupportedTopologyError{NumVertices: numVertices}
}

// InnerFaceAreaVector builds the first-order trapezoidal-midpoint face
// vector: elementCentroid - 0.5 v1 - 0.5 v2, with v1, v2 the vertex pair
// adjacent to the face. The construction is the same for both topologies.
func (s *Shape) InnerFaceAreaVector(local int, elementCentroid Point, elementVertices []Point) Point {
	var (
		v1 = elementVertices[s.InnerFaceNeighbourVertices[local][0]]
		v2 = elementVertices[s.InnerFaceNeighbourVertices[local][1]]
	)
	return elementCentroid.Add(v1.Scale(-0.5)).Add(v2.Scale(-0.5))
}
