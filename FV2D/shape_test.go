package FV2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeSelection(t *testing.T) {
	{
		s, err := ShapeForVertexCount(3)
		require.NoError(t, err)
		assert.Equal(t, Triangle, s.Type)
		assert.Equal(t, 3, s.NumberOfInnerFaces)
		assert.Equal(t, 3, s.NumberOfFacets)
	}
	{
		s, err := ShapeForVertexCount(4)
		require.NoError(t, err)
		assert.Equal(t, Quadrilateral, s.Type)
		assert.Equal(t, 4, s.NumberOfInnerFaces)
		assert.Equal(t, 4, s.NumberOfFacets)
	}
	{
		_, err := ShapeForVertexCount(5)
		require.Error(t, err)
		var topoErr UnsupportedTopologyError
		assert.ErrorAs(t, err, &topoErr)
		assert.Equal(t, 5, topoErr.NumVertices)
	}
}

func TestShapeTables(t *testing.T) {
	for _, s := range []*Shape{triangleShape, quadrilateralShape} {
		// Every per-face table is indexed consistently with the
		// inner-face neighbour pairs.
		assert.Equal(t, s.NumberOfInnerFaces, len(s.InnerFaceNeighbourVertices))
		assert.Equal(t, s.NumberOfInnerFaces, len(s.InnerFaceShapeFunctionValues))
		assert.Equal(t, s.NumberOfInnerFaces, len(s.InnerFaceShapeFunctionDerivatives))
		assert.Equal(t, s.NumberOfVertices, len(s.SubelementTransformedVolumes))
		assert.Equal(t, s.NumberOfFacets, len(s.FacetVerticesIndices))
		assert.Equal(t, s.NumberOfFacets, len(s.OuterFaceShapeFunctionValues))
		for local := 0; local < s.NumberOfInnerFaces; local++ {
			assert.Equal(t, s.NumberOfVertices, len(s.InnerFaceShapeFunctionValues[local]))
			assert.Equal(t, s.NumberOfVertices, len(s.InnerFaceShapeFunctionDerivatives[local]))
			// Shape-function values at each integration point sum to one.
			var sum float64
			for _, w := range s.InnerFaceShapeFunctionValues[local] {
				sum += w
			}
			assert.InDelta(t, 1., sum, 0.0000000001)
			// Derivatives of a partition of unity sum to zero per direction.
			var dXi, dEta float64
			for _, d := range s.InnerFaceShapeFunctionDerivatives[local] {
				dXi += d[0]
				dEta += d[1]
			}
			assert.InDelta(t, 0., dXi, 0.0000000001)
			assert.InDelta(t, 0., dEta, 0.0000000001)
		}
	}
	// Reference sub-volumes sum to the reference element area.
	{
		var sum float64
		for _, v := range triangleShape.SubelementTransformedVolumes {
			sum += v
		}
		assert.InDelta(t, 0.5, sum, 0.0000000001)
	}
	{
		var sum float64
		for _, v := range quadrilateralShape.SubelementTransformedVolumes {
			sum += v
		}
		assert.InDelta(t, 1., sum, 0.0000000001)
	}
}

func TestInnerFaceAreaVector(t *testing.T) {
	var (
		vertices = []Point{
			NewPoint(0, 0, 0),
			NewPoint(1, 0, 0),
			NewPoint(0, 1, 0),
		}
		centroid = NewPoint(1./3., 1./3., 0)
	)
	// centroid - midpoint of the adjacent vertex pair
	a := triangleShape.InnerFaceAreaVector(0, centroid, vertices)
	assert.InDelta(t, 1./3.-0.5, a.X, 0.0000000001)
	assert.InDelta(t, 1./3., a.Y, 0.0000000001)
	assert.Equal(t, 0., a.Z)
}
