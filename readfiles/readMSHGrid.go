package readfiles

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/efvlib/goefv/FV2D"
)

// Gmsh element type codes used by the 2-D reader.
const (
	mshLine          = 1
	mshTriangle      = 2
	mshQuadrilateral = 3
)

type physicalName struct {
	dimension int
	name      string
}

// ReadMSH2D reads a Gmsh v2.2 ASCII mesh. 1-D physical groups become named
// boundaries (their line elements become facets), 2-D physical groups
// become named regions of triangles/quadrilaterals.
func ReadMSH2D(filename string, verbose bool) (md FV2D.MeshData, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading Gmsh file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		err = fmt.Errorf("unable to open file %s: %w", filename, err)
		return
	}
	defer file.Close()
	return readMSH2D(bufio.NewScanner(file), verbose)
}

// ParseMSH2D reads the same format from an in-memory document.
func ParseMSH2D(data []byte, verbose bool) (md FV2D.MeshData, err error) {
	return readMSH2D(bufio.NewScanner(strings.NewReader(string(data))), verbose)
}

func readMSH2D(scanner *bufio.Scanner, verbose bool) (md FV2D.MeshData, err error) {
	var (
		physicals   = make(map[int]physicalName)
		nodeIndex   = make(map[int]int) // gmsh node id -> vertex index
		regionElems = make(map[int][]int)
		regionOrder []int
		boundFacets = make(map[int][][2]int)
		boundOrder  []int
	)
	nextSection := func() (name string, ok bool) {
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if strings.HasPrefix(line, "$") && !strings.HasPrefix(line, "$End") {
				return line, true
			}
		}
		return "", false
	}
	readLine := func() (fields []string, e error) {
		if !scanner.Scan() {
			e = fmt.Errorf("unexpected end of mesh file")
			return
		}
		fields = strings.Fields(scanner.Text())
		return
	}

	for {
		section, ok := nextSection()
		if !ok {
			break
		}
		switch section {
		case "$MeshFormat":
			var fields []string
			if fields, err = readLine(); err != nil {
				return
			}
			if len(fields) < 1 || !strings.HasPrefix(fields[0], "2.") {
				err = fmt.Errorf("unsupported Gmsh format version %q, need 2.x ASCII", strings.Join(fields, " "))
				return
			}
		case "$PhysicalNames":
			var fields []string
			if fields, err = readLine(); err != nil {
				return
			}
			var count int
			if count, err = strconv.Atoi(fields[0]); err != nil {
				return
			}
			for i := 0; i < count; i++ {
				if fields, err = readLine(); err != nil {
					return
				}
				if len(fields) < 3 {
					err = fmt.Errorf("malformed physical name record: %v", fields)
					return
				}
				dim, _ := strconv.Atoi(fields[0])
				id, _ := strconv.Atoi(fields[1])
				physicals[id] = physicalName{
					dimension: dim,
					name:      strings.Trim(strings.Join(fields[2:], " "), `"`),
				}
			}
		case "$Nodes":
			var fields []string
			if fields, err = readLine(); err != nil {
				return
			}
			var count int
			if count, err = strconv.Atoi(fields[0]); err != nil {
				return
			}
			for i := 0; i < count; i++ {
				if fields, err = readLine(); err != nil {
					return
				}
				if len(fields) < 4 {
					err = fmt.Errorf("malformed node record: %v", fields)
					return
				}
				id, _ := strconv.Atoi(fields[0])
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				nodeIndex[id] = len(md.Vertices)
				md.Vertices = append(md.Vertices, FV2D.NewPoint(x, y, z))
			}
		case "$Elements":
			var fields []string
			if fields, err = readLine(); err != nil {
				return
			}
			var count int
			if count, err = strconv.Atoi(fields[0]); err != nil {
				return
			}
			for i := 0; i < count; i++ {
				if fields, err = readLine(); err != nil {
					return
				}
				if err = parseElementRecord(fields, nodeIndex, &md,
					regionElems, &regionOrder, boundFacets, &boundOrder); err != nil {
					return
				}
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}

	for _, id := range regionOrder {
		name := physicals[id].name
		if name == "" {
			name = fmt.Sprintf("Region%d", id)
		}
		md.Regions = append(md.Regions, FV2D.RegionData{Name: name, Elements: regionElems[id]})
	}
	for _, id := range boundOrder {
		name := physicals[id].name
		if name == "" {
			name = fmt.Sprintf("Boundary%d", id)
		}
		md.Boundaries = append(md.Boundaries, FV2D.BoundaryData{Name: name, Facets: boundFacets[id]})
	}
	if verbose {
		fmt.Printf("Nv = %d, K = %d\n", len(md.Vertices), len(md.Elements))
		fmt.Printf("Nregions = %d, Nboundaries = %d\n", len(md.Regions), len(md.Boundaries))
	}
	return
}

func parseElementRecord(fields []string, nodeIndex map[int]int, md *FV2D.MeshData,
	regionElems map[int][]int, regionOrder *[]int,
	boundFacets map[int][][2]int, boundOrder *[]int) (err error) {
	if len(fields) < 3 {
		return fmt.Errorf("malformed element record: %v", fields)
	}
	elType, _ := strconv.Atoi(fields[1])
	nTags, _ := strconv.Atoi(fields[2])
	physical := 0
	if nTags > 0 && len(fields) > 3 {
		physical, _ = strconv.Atoi(fields[3])
	}
	nodeFields := fields[3+nTags:]
	nodes := make([]int, len(nodeFields))
	for i, nf := range nodeFields {
		id, _ := strconv.Atoi(nf)
		idx, ok := nodeIndex[id]
		if !ok {
			return fmt.Errorf("element references unknown node id %d", id)
		}
		nodes[i] = idx
	}
	switch elType {
	case mshLine:
		if len(nodes) != 2 {
			return fmt.Errorf("line element with %d nodes", len(nodes))
		}
		if _, ok := boundFacets[physical]; !ok {
			*boundOrder = append(*boundOrder, physical)
		}
		boundFacets[physical] = append(boundFacets[physical], [2]int{nodes[0], nodes[1]})
	case mshTriangle, mshQuadrilateral:
		want := 3
		if elType == mshQuadrilateral {
			want = 4
		}
		if len(nodes) != want {
			return fmt.Errorf("element type %d with %d nodes", elType, len(nodes))
		}
		if _, ok := regionElems[physical]; !ok {
			*regionOrder = append(*regionOrder, physical)
		}
		regionElems[physical] = append(regionElems[physical], len(md.Elements))
		md.Elements = append(md.Elements, nodes)
	default:
		return fmt.Errorf("unsupported Gmsh element type %d", elType)
	}
	return
}
