package FV2D

// OuterFace is the portion of a boundary facet owned by one of its end
// vertices; it carries half the facet area. Handle is global across the
// grid so boundary-condition value lookups can key on it.
type OuterFace struct {
	Handle   int
	Vertex   int // grid vertex handle
	Centroid Point
	Area     Point
}

// Facet is a boundary edge, split into two outer faces.
type Facet struct {
	Handle     int
	Vertices   [2]int // grid vertex handles, boundary-ordered
	AreaVector Point
	OuterFaces []OuterFace
}

// Boundary is a named facet group, the unit boundary conditions attach to.
// Vertices lists the distinct vertex handles touched by its facets.
type Boundary struct {
	Name     string
	Handle   int
	Vertices []int
	Facets   []Facet
}

// Region is a named element group sharing material properties. Elements
// holds indices into the grid element arena.
type Region struct {
	Name     string
	Handle   int
	Elements []int
}

func buildFacet(handle, outerFaceBase int, vertexHandles [2]int, vertices []Vertex) (f Facet) {
	var (
		p1 = vertices[vertexHandles[0]].Point
		p2 = vertices[vertexHandles[1]].Point
		t  = p2.Sub(p1)
	)
	f = Facet{
		Handle:   handle,
		Vertices: vertexHandles,
		// Tangent rotated a quarter turn; outward for the boundary-ordered
		// vertex pair convention of the facet tables.
		AreaVector: Point{X: t.Y, Y: -t.X},
	}
	f.OuterFaces = []OuterFace{
		{
			Handle:   outerFaceBase,
			Vertex:   vertexHandles[0],
			Centroid: p1.Scale(3. / 4.).Add(p2.Scale(1. / 4.)),
			Area:     f.AreaVector.Scale(0.5),
		},
		{
			Handle:   outerFaceBase + 1,
			Vertex:   vertexHandles[1],
			Centroid: p1.Scale(1. / 4.).Add(p2.Scale(3. / 4.)),
			Area:     f.AreaVector.Scale(0.5),
		},
	}
	return
}
