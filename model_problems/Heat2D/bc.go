package Heat2D

import (
	"fmt"

	"github.com/efvlib/goefv/FV2D"
	"github.com/efvlib/goefv/InputParameters"
)

type BCType uint8

const (
	Dirichlet BCType = iota
	Neumann
)

func (t BCType) String() string {
	if t == Dirichlet {
		return "Dirichlet"
	}
	return "Neumann"
}

// BoundaryCondition binds one grid boundary to a value lookup. Dirichlet
// lookups are keyed by vertex handle, Neumann lookups by outer-face handle.
type BoundaryCondition struct {
	Type     BCType
	Boundary *FV2D.Boundary

	getValue func(handle int) float64
}

func NewConstantBC(bcType BCType, boundary *FV2D.Boundary, value float64) BoundaryCondition {
	return BoundaryCondition{
		Type:     bcType,
		Boundary: boundary,
		getValue: func(int) float64 { return value },
	}
}

// NewFuncBC attaches a handle-indexed lookup instead of a constant.
func NewFuncBC(bcType BCType, boundary *FV2D.Boundary, getValue func(handle int) float64) BoundaryCondition {
	return BoundaryCondition{
		Type:     bcType,
		Boundary: boundary,
		getValue: getValue,
	}
}

func (bc BoundaryCondition) GetValue(handle int) float64 {
	return bc.getValue(handle)
}

// ConditionsFromProblemData resolves the case file's named conditions
// against the grid boundaries. Every grid boundary must be prescribed and
// every prescription must name an existing boundary.
func ConditionsFromProblemData(pd *InputParameters.ProblemData, g *FV2D.Grid) (dirichlet, neumann []BoundaryCondition, err error) {
	for name := range pd.BoundaryConditions {
		if g.BoundaryByName(name) == nil {
			err = fmt.Errorf("boundary condition %q does not match any grid boundary", name)
			return
		}
	}
	for i := range g.Boundaries {
		b := &g.Boundaries[i]
		spec, ok := pd.BoundaryConditions[b.Name]
		if !ok {
			err = fmt.Errorf("grid boundary %q has no boundary condition", b.Name)
			return
		}
		switch spec.Type {
		case "dirichlet":
			dirichlet = append(dirichlet, NewConstantBC(Dirichlet, b, spec.Value))
		case "neumann":
			neumann = append(neumann, NewConstantBC(Neumann, b, spec.Value))
		default:
			err = fmt.Errorf("boundary %q: unknown condition type %q", b.Name, spec.Type)
			return
		}
	}
	return
}
