package FV2D

import (
	"errors"

	"github.com/efvlib/goefv/utils"
)

var errZeroJacobian = errors.New("coordinate-map Jacobian is singular")

// InnerFace is one of the faces subdividing an element into control-volume
// slices. It is owned by its element and refers back to it only by handle.
// Centroid, Area and GlobalDerivatives are filled during the owning
// element's geometry initialization.
type InnerFace struct {
	Element int
	Local   int

	Centroid Point
	Area     Point
	// GlobalDerivatives maps nodal values to the spatial gradient at the
	// face integration point; dimensions are 2 x NumberOfVertices.
	GlobalDerivatives utils.Matrix
}

func (f *InnerFace) evalCentroid(e *Element) {
	var (
		weights = e.Shape.InnerFaceShapeFunctionValues[f.Local]
	)
	f.Centroid = Point{}
	for v, p := range e.points {
		f.Centroid = f.Centroid.Add(p.Scale(weights[v]))
	}
}

// calculateGlobalDerivatives evaluates inv(J^T) * D^T at the face
// integration point, with D the reference shape-function derivatives.
func (f *InnerFace) calculateGlobalDerivatives(e *Element) (err error) {
	var (
		derivatives = e.Shape.InnerFaceShapeFunctionDerivatives[f.Local]
		nv          = e.Shape.NumberOfVertices
	)
	D := utils.NewMatrix(nv, 2)
	for v, d := range derivatives {
		D.Set(v, 0, d[0])
		D.Set(v, 1, d[1])
	}
	JtInv, err := e.TransposedJacobian(derivatives).Inverse()
	if err != nil {
		err = DegenerateGeometryError{Element: e.Handle, Cause: err}
		return
	}
	f.GlobalDerivatives = JtInv.Mul(D.Transpose())
	return
}

// VoigtGradientOperator assembles the strain-displacement style block
// operator from the two gradient rows. The scalar heat solver does not use
// it; it is the reusable primitive for vector-field extensions.
func (f *InnerFace) VoigtGradientOperator() (B utils.Matrix) {
	var (
		_, nv = f.GlobalDerivatives.Dims()
	)
	B = utils.NewMatrix(3, 2*nv)
	for j := 0; j < nv; j++ {
		nx := f.GlobalDerivatives.At(0, j)
		ny := f.GlobalDerivatives.At(1, j)
		B.Set(0, j, nx)
		B.Set(1, nv+j, ny)
		B.Set(2, j, ny)
		B.Set(2, nv+j, nx)
	}
	return
}
