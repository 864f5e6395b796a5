package FV2D

import "fmt"

// MeshData is the raw connectivity contract a mesh source must satisfy:
// vertex coordinates, ordered per-element vertex index lists (3 or 4
// vertices select the topology), region-to-element grouping and named
// boundary facet lists.
type MeshData struct {
	Vertices   []Point
	Elements   [][]int
	Regions    []RegionData
	Boundaries []BoundaryData
}

type RegionData struct {
	Name     string
	Elements []int
}

type BoundaryData struct {
	Name   string
	Facets [][2]int // vertex index pairs, boundary-ordered
}

// Grid owns the vertex arena plus all elements, regions and boundaries.
// Topology and geometry are fixed after construction.
type Grid struct {
	Vertices   []Vertex
	Elements   []*Element
	Regions    []Region
	Boundaries []Boundary

	NumberOfOuterFaces int
}

// NewGrid builds the element arena from raw connectivity, initializes all
// element geometry and accumulates the per-vertex control volumes.
// An unsupported vertex count or a degenerate element aborts construction.
func NewGrid(md MeshData) (g *Grid, err error) {
	g = &Grid{
		Vertices: make([]Vertex, len(md.Vertices)),
		Elements: make([]*Element, 0, len(md.Elements)),
	}
	for i, p := range md.Vertices {
		g.Vertices[i] = Vertex{Handle: i, Point: p}
	}

	for handle, vertexHandles := range md.Elements {
		for _, vh := range vertexHandles {
			if vh < 0 || vh >= len(g.Vertices) {
				err = fmt.Errorf("element %d references vertex %d, grid has %d vertices",
					handle, vh, len(g.Vertices))
				return
			}
		}
		var e *Element
		if e, err = newElement(handle, vertexHandles, g.Vertices); err != nil {
			return
		}
		g.Elements = append(g.Elements, e)
		for local, vh := range vertexHandles {
			g.Vertices[vh].Volume += e.SubelementVolumes[local]
		}
	}

	g.Regions = make([]Region, len(md.Regions))
	for i, rd := range md.Regions {
		for _, eh := range rd.Elements {
			if eh < 0 || eh >= len(g.Elements) {
				err = fmt.Errorf("region %q references element %d, grid has %d elements",
					rd.Name, eh, len(g.Elements))
				return
			}
		}
		g.Regions[i] = Region{Name: rd.Name, Handle: i, Elements: rd.Elements}
	}

	var facetHandle, outerFaceHandle int
	g.Boundaries = make([]Boundary, len(md.Boundaries))
	for i, bd := range md.Boundaries {
		b := Boundary{Name: bd.Name, Handle: i}
		seen := make(map[int]bool)
		for _, pair := range bd.Facets {
			for _, vh := range pair {
				if vh < 0 || vh >= len(g.Vertices) {
					err = fmt.Errorf("boundary %q references vertex %d, grid has %d vertices",
						bd.Name, vh, len(g.Vertices))
					return
				}
				if !seen[vh] {
					seen[vh] = true
					b.Vertices = append(b.Vertices, vh)
				}
			}
			b.Facets = append(b.Facets, buildFacet(facetHandle, outerFaceHandle, pair, g.Vertices))
			facetHandle++
			outerFaceHandle += 2
		}
		g.Boundaries[i] = b
	}
	g.NumberOfOuterFaces = outerFaceHandle
	return
}

// NumberOfVertices is the dimension of the global unknown vector.
func (g *Grid) NumberOfVertices() int { return len(g.Vertices) }

// BoundaryByName returns nil when no boundary carries the name.
func (g *Grid) BoundaryByName(name string) *Boundary {
	for i := range g.Boundaries {
		if g.Boundaries[i].Name == name {
			return &g.Boundaries[i]
		}
	}
	return nil
}

// RegionByName returns nil when no region carries the name.
func (g *Grid) RegionByName(name string) *Region {
	for i := range g.Regions {
		if g.Regions[i].Name == name {
			return &g.Regions[i]
		}
	}
	return nil
}
