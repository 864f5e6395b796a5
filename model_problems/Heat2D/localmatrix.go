package Heat2D

import (
	"github.com/efvlib/goefv/FV2D"
	"github.com/efvlib/goefv/utils"
)

// ComputeLocalMatrix assembles the element's diffusive flux matrix. For
// every inner face the nodal flux is conductivity * grad(N_i) . area,
// taken over the planar components; the face transfers that flux from its
// backward neighbour control volume to its forward one, so every row of
// the result sums to zero.
//
// firstIteration is a caching hint only; the result does not depend on it.
func ComputeLocalMatrix(e *FV2D.Element, conductivity float64, firstIteration bool) (localMatrix utils.Matrix) {
	var (
		nv = e.Shape.NumberOfVertices
	)
	_ = firstIteration
	localMatrix = utils.NewMatrix(nv, nv)
	for i := range e.InnerFaces {
		var (
			f        = &e.InnerFaces[i]
			gd       = f.GlobalDerivatives
			backward = e.Shape.InnerFaceNeighbourVertices[f.Local][0]
			forward  = e.Shape.InnerFaceNeighbourVertices[f.Local][1]
		)
		for iv := 0; iv < nv; iv++ {
			flux := conductivity * (gd.At(0, iv)*f.Area.X + gd.At(1, iv)*f.Area.Y)
			localMatrix.AddAt(backward, iv, -flux)
			localMatrix.AddAt(forward, iv, flux)
		}
	}
	return
}
