package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// RegionProperties are the scalar material properties of one mesh region.
type RegionProperties struct {
	Density                float64 `json:"Density"`
	HeatCapacity           float64 `json:"HeatCapacity"`
	Conductivity           float64 `json:"Conductivity"`
	InternalHeatGeneration float64 `json:"InternalHeatGeneration"`
}

// BoundaryConditionSpec prescribes one named boundary: Type is "dirichlet"
// (field value at vertices) or "neumann" (flux through facets).
type BoundaryConditionSpec struct {
	Type  string  `json:"Type"`
	Value float64 `json:"Value"`
}

// ProblemData is the YAML case description consumed by the solver.
type ProblemData struct {
	Title              string                           `json:"Title"`
	Grid               string                           `json:"Grid"`
	Output             string                           `json:"Output"`
	PropertyData       map[string]RegionProperties      `json:"Properties"`
	BoundaryConditions map[string]BoundaryConditionSpec `json:"BoundaryConditions"`
	InitialValue       float64                          `json:"InitialValue"`
	TimeStep           float64                          `json:"TimeStep"`
	FinalTime          float64                          `json:"FinalTime"`
	Tolerance          float64                          `json:"Tolerance"`
	MaxIterations      int                              `json:"MaxIterations"`
}

func (pd *ProblemData) Parse(data []byte) error {
	return yaml.Unmarshal(data, pd)
}

func (pd *ProblemData) Validate() (err error) {
	switch {
	case pd.TimeStep <= 0:
		err = fmt.Errorf("TimeStep must be positive, have %v", pd.TimeStep)
	case pd.FinalTime <= 0:
		err = fmt.Errorf("FinalTime must be positive, have %v", pd.FinalTime)
	case pd.Tolerance <= 0:
		err = fmt.Errorf("Tolerance must be positive, have %v", pd.Tolerance)
	case pd.MaxIterations <= 0:
		err = fmt.Errorf("MaxIterations must be positive, have %v", pd.MaxIterations)
	case len(pd.PropertyData) == 0:
		err = fmt.Errorf("at least one region property set is required")
	}
	if err != nil {
		return
	}
	for name, props := range pd.PropertyData {
		if props.Density <= 0 || props.HeatCapacity <= 0 || props.Conductivity <= 0 {
			err = fmt.Errorf("region %q: Density, HeatCapacity and Conductivity must be positive", name)
			return
		}
	}
	for name, bc := range pd.BoundaryConditions {
		if bc.Type != "dirichlet" && bc.Type != "neumann" {
			err = fmt.Errorf("boundary %q: unknown condition type %q", name, bc.Type)
			return
		}
	}
	return
}

func (pd *ProblemData) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pd.Title)
	fmt.Printf("%8.5f\t\t= TimeStep\n", pd.TimeStep)
	fmt.Printf("%8.5f\t\t= FinalTime\n", pd.FinalTime)
	fmt.Printf("%8.5e\t\t= Tolerance\n", pd.Tolerance)
	fmt.Printf("[%d]\t\t\t= MaxIterations\n", pd.MaxIterations)
	fmt.Printf("%8.5f\t\t= InitialValue\n", pd.InitialValue)
	keys := make([]string, 0, len(pd.PropertyData))
	for k := range pd.PropertyData {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Properties[%s] = %+v\n", key, pd.PropertyData[key])
	}
	keys = keys[:0]
	for k := range pd.BoundaryConditions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %+v\n", key, pd.BoundaryConditions[key])
	}
}
