package FV2D

import (
	"math"

	"github.com/efvlib/goefv/utils"
)

// Vertex is an arena entry owned by the Grid. Handle doubles as the row
// index of the vertex in the global unknown vector. Volume is the control
// volume around the vertex, accumulated from the sub-element volumes of
// every incident element during grid construction.
type Vertex struct {
	Handle int
	Point  Point
	Volume float64
}

// Element holds indices into the grid vertex arena; the index order defines
// the local numbering all shape tables refer to.
type Element struct {
	Handle            int
	VertexHandles     []int
	Shape             *Shape
	SubelementVolumes []float64
	Centroid          Point
	InnerFaces        []InnerFace

	points []Point // resolved vertex coordinates, fixed for a static mesh
}

func newElement(handle int, vertexHandles []int, vertices []Vertex) (e *Element, err error) {
	shape, err := ShapeForVertexCount(len(vertexHandles))
	if err != nil {
		return
	}
	e = &Element{
		Handle:        handle,
		VertexHandles: vertexHandles,
		Shape:         shape,
		points:        make([]Point, len(vertexHandles)),
	}
	for i, vh := range vertexHandles {
		e.points[i] = vertices[vh].Point
	}
	err = e.initGeometry()
	return
}

// VertexPoints exposes the resolved coordinates in local numbering order.
func (e *Element) VertexPoints() []Point { return e.points }

// Jacobian contracts the vertex coordinates with a reference-derivative
// table D ([vertex][refDimension]): J[i][j] = sum_v x_i(v) * D[v][j].
func (e *Element) Jacobian(derivatives [][]float64) (J utils.Matrix) {
	J = utils.NewMatrix(2, 2)
	for v, d := range derivatives {
		p := e.points[v]
		J.AddAt(0, 0, p.X*d[0])
		J.AddAt(0, 1, p.X*d[1])
		J.AddAt(1, 0, p.Y*d[0])
		J.AddAt(1, 1, p.Y*d[1])
	}
	return
}

func (e *Element) TransposedJacobian(derivatives [][]float64) (Jt utils.Matrix) {
	Jt = e.Jacobian(derivatives).Transpose()
	return
}

// initGeometry computes the Jacobian-derived quantities: sub-element
// volumes, centroid and the per-face centroid/area/derivative caches.
// It is the only place geometry is evaluated; the mesh is static, so it
// runs once per element at grid construction.
func (e *Element) initGeometry() (err error) {
	var (
		shape = e.Shape
	)
	e.SubelementVolumes = make([]float64, shape.NumberOfVertices)
	for local, derivatives := range shape.SubelementShapeFunctionDerivatives {
		detJ := e.Jacobian(derivatives).Det()
		if detJ == 0. {
			err = DegenerateGeometryError{Element: e.Handle,
				Cause: errZeroJacobian}
			return
		}
		e.SubelementVolumes[local] = shape.SubelementTransformedVolumes[local] * math.Abs(detJ)
	}

	e.Centroid = Point{}
	for _, p := range e.points {
		e.Centroid = e.Centroid.Add(p)
	}
	e.Centroid = e.Centroid.Scale(1. / float64(len(e.points)))

	e.InnerFaces = make([]InnerFace, shape.NumberOfInnerFaces)
	for local := range e.InnerFaces {
		f := &e.InnerFaces[local]
		f.Element = e.Handle
		f.Local = local
		f.evalCentroid(e)
		f.Area = shape.InnerFaceAreaVector(local, e.Centroid, e.points)
		if err = f.calculateGlobalDerivatives(e); err != nil {
			return
		}
	}
	return
}
