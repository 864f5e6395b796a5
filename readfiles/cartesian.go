package readfiles

import "github.com/efvlib/goefv/FV2D"

// CartesianMesh builds a structured nx cells x ny cells mesh of the
// rectangle [0,lx] x [0,ly], as quadrilaterals or as two triangles per
// cell. Vertices are numbered row-major from the lower-left corner, cell
// connectivity is counter-clockwise. The whole domain forms one region
// named "Body"; the four boundaries are named West, East, South and North
// with facets ordered counter-clockwise around the domain.
func CartesianMesh(nx, ny int, lx, ly float64, quads bool) (md FV2D.MeshData) {
	var (
		dx = lx / float64(nx)
		dy = ly / float64(ny)
	)
	vid := func(i, j int) int { return j*(nx+1) + i }

	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			md.Vertices = append(md.Vertices,
				FV2D.NewPoint(float64(i)*dx, float64(j)*dy, 0))
		}
	}

	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			sw, se := vid(i, j), vid(i+1, j)
			ne, nw := vid(i+1, j+1), vid(i, j+1)
			if quads {
				md.Elements = append(md.Elements, []int{sw, se, ne, nw})
			} else {
				md.Elements = append(md.Elements, []int{sw, se, ne})
				md.Elements = append(md.Elements, []int{sw, ne, nw})
			}
		}
	}

	all := make([]int, len(md.Elements))
	for i := range all {
		all[i] = i
	}
	md.Regions = []FV2D.RegionData{{Name: "Body", Elements: all}}

	var south, east, north, west [][2]int
	for i := 0; i < nx; i++ {
		south = append(south, [2]int{vid(i, 0), vid(i+1, 0)})
		north = append(north, [2]int{vid(nx-i, ny), vid(nx-i-1, ny)})
	}
	for j := 0; j < ny; j++ {
		east = append(east, [2]int{vid(nx, j), vid(nx, j+1)})
		west = append(west, [2]int{vid(0, ny-j), vid(0, ny-j-1)})
	}
	md.Boundaries = []FV2D.BoundaryData{
		{Name: "West", Facets: west},
		{Name: "East", Facets: east},
		{Name: "South", Facets: south},
		{Name: "North", Facets: north},
	}
	return
}
