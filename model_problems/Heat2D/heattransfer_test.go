package Heat2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efvlib/goefv/FV2D"
	"github.com/efvlib/goefv/InputParameters"
	"github.com/efvlib/goefv/readfiles"
)

func plateProblemData() *InputParameters.ProblemData {
	return &InputParameters.ProblemData{
		Title:         "plate",
		InitialValue:  0.,
		TimeStep:      0.1,
		FinalTime:     1.e6,
		Tolerance:     1.e-8,
		MaxIterations: 500,
		PropertyData: map[string]InputParameters.RegionProperties{
			"Body": {Density: 1., HeatCapacity: 1., Conductivity: 1., InternalHeatGeneration: 0.},
		},
		BoundaryConditions: map[string]InputParameters.BoundaryConditionSpec{
			"West":  {Type: "dirichlet", Value: 100.},
			"East":  {Type: "dirichlet", Value: 0.},
			"South": {Type: "neumann", Value: 0.},
			"North": {Type: "neumann", Value: 0.},
		},
	}
}

func cartesianGrid(t *testing.T, nx, ny int, quads bool) *FV2D.Grid {
	t.Helper()
	g, err := FV2D.NewGrid(readfiles.CartesianMesh(nx, ny, 1, 1, quads))
	require.NoError(t, err)
	return g
}

func TestAllDirichletSingleTriangle(t *testing.T) {
	// With every vertex held by a Dirichlet condition the identity rows
	// fully determine the solution at iteration 0; the run terminates on
	// the time limit after one solve with the prescribed value everywhere.
	g, err := FV2D.NewGrid(FV2D.MeshData{
		Vertices: []FV2D.Point{
			FV2D.NewPoint(0, 0, 0), FV2D.NewPoint(1, 0, 0), FV2D.NewPoint(0, 1, 0),
		},
		Elements: [][]int{{0, 1, 2}},
		Regions:  []FV2D.RegionData{{Name: "Body", Elements: []int{0}}},
		Boundaries: []FV2D.BoundaryData{
			{Name: "Wall", Facets: [][2]int{{0, 1}, {1, 2}, {2, 0}}},
		},
	})
	require.NoError(t, err)
	pd := plateProblemData()
	pd.TimeStep = 1.
	pd.FinalTime = 0.5
	pd.BoundaryConditions = map[string]InputParameters.BoundaryConditionSpec{
		"Wall": {Type: "dirichlet", Value: 75.},
	}
	ht, err := NewHeatTransfer2D(g, pd, nil, false)
	require.NoError(t, err)
	outcome, err := ht.Run()
	require.NoError(t, err)
	assert.True(t, outcome.Converged)
	assert.Equal(t, 1, outcome.Iterations)
	for _, temp := range ht.Temperature().DataP {
		assert.InDelta(t, 75., temp, 0.000000001)
	}
}

func TestUniformDirichletStaysConstant(t *testing.T) {
	// Boundary values equal to the initial value leave the field constant:
	// the difference is exactly zero at iteration 1, which converges.
	g := cartesianGrid(t, 2, 2, true)
	pd := plateProblemData()
	pd.InitialValue = 5.
	for name := range pd.BoundaryConditions {
		pd.BoundaryConditions[name] = InputParameters.BoundaryConditionSpec{Type: "dirichlet", Value: 5.}
	}
	ht, err := NewHeatTransfer2D(g, pd, nil, false)
	require.NoError(t, err)
	outcome, err := ht.Run()
	require.NoError(t, err)
	assert.True(t, outcome.Converged)
	assert.Equal(t, 2, outcome.Iterations)
	assert.InDelta(t, 0., outcome.Difference, 0.000000000001)
	for _, temp := range ht.Temperature().DataP {
		assert.InDelta(t, 5., temp, 0.000000001)
	}
}

func TestNonConvergenceIsNormalOutcome(t *testing.T) {
	g := cartesianGrid(t, 3, 3, true)
	pd := plateProblemData()
	pd.MaxIterations = 2
	pd.Tolerance = 1.e-14
	ht, err := NewHeatTransfer2D(g, pd, nil, false)
	require.NoError(t, err)
	outcome, err := ht.Run()
	require.NoError(t, err)
	assert.False(t, outcome.Converged)
	assert.Equal(t, 2, outcome.Iterations)
	assert.Greater(t, outcome.Difference, 0.)
}

func TestNeumannFluxSign(t *testing.T) {
	// A positive Neumann value is an outward flux: it drains the control
	// volumes along the boundary, pulling them below the initial value.
	g := cartesianGrid(t, 2, 2, true)
	pd := plateProblemData()
	pd.InitialValue = 10.
	pd.TimeStep = 0.01
	pd.MaxIterations = 1
	pd.BoundaryConditions = map[string]InputParameters.BoundaryConditionSpec{
		"West":  {Type: "dirichlet", Value: 10.},
		"East":  {Type: "neumann", Value: 50.},
		"South": {Type: "neumann", Value: 0.},
		"North": {Type: "neumann", Value: 0.},
	}
	ht, err := NewHeatTransfer2D(g, pd, nil, false)
	require.NoError(t, err)
	_, err = ht.Run()
	require.NoError(t, err)
	// Vertex 5 is the midpoint of the east boundary.
	assert.Less(t, ht.Temperature().DataP[5], 10.)
	// The Dirichlet edge is pinned.
	assert.InDelta(t, 10., ht.Temperature().DataP[3], 0.000000001)
}

func TestDifferenceDecaysOnPlateBenchmark(t *testing.T) {
	g := cartesianGrid(t, 3, 3, true)
	pd := plateProblemData()
	var diffs []float64
	ht, err := NewHeatTransfer2D(g, pd, nil, false)
	require.NoError(t, err)
	ht.Report = func(pr ProgressReport) {
		if pr.Iteration > 0 {
			diffs = append(diffs, pr.Difference)
		}
	}
	outcome, err := ht.Run()
	require.NoError(t, err)
	assert.True(t, outcome.Converged)
	require.Greater(t, len(diffs), 2)
	for i := 1; i < len(diffs); i++ {
		assert.LessOrEqual(t, diffs[i], 1.5*diffs[i-1]+1.e-12)
	}
	assert.Less(t, diffs[len(diffs)-1], diffs[0])
}

func TestDirichletReapplicationIsIdempotent(t *testing.T) {
	g := cartesianGrid(t, 2, 2, true)
	pd := plateProblemData()
	pd.MaxIterations = 3
	ht, err := NewHeatTransfer2D(g, pd, nil, false)
	require.NoError(t, err)
	_, err = ht.Run()
	require.NoError(t, err)

	// Rebuilding the independent vector from the solved field twice in a
	// row yields identical entries: Dirichlet application overwrites with
	// the same values.
	ht.assembleIndependent()
	first := ht.independent.Copy()
	ht.assembleIndependent()
	assert.Equal(t, first.DataP, ht.independent.DataP)
}

func TestInternalHeatGenerationAccumulates(t *testing.T) {
	// A vertex shared by several elements collects one sub-element
	// contribution per incident element; the total equals its control
	// volume times the source density.
	g := cartesianGrid(t, 2, 2, true)
	pd := plateProblemData()
	props := pd.PropertyData["Body"]
	props.InternalHeatGeneration = 8.
	pd.PropertyData["Body"] = props
	for name := range pd.BoundaryConditions {
		pd.BoundaryConditions[name] = InputParameters.BoundaryConditionSpec{Type: "neumann", Value: 0.}
	}
	ht, err := NewHeatTransfer2D(g, pd, nil, false)
	require.NoError(t, err)
	ht.assembleIndependent()
	// Vertex 4 is interior with control volume 0.25; no Dirichlet rows
	// and a zero initial field leave only the source term.
	assert.InDelta(t, 0.25*8., ht.independent.DataP[4], 0.000000001)
}

func TestMissingRegionProperties(t *testing.T) {
	g := cartesianGrid(t, 2, 2, true)
	pd := plateProblemData()
	pd.PropertyData = map[string]InputParameters.RegionProperties{
		"Shell": {Density: 1., HeatCapacity: 1., Conductivity: 1.},
	}
	_, err := NewHeatTransfer2D(g, pd, nil, false)
	assert.Error(t, err)
}

func TestUnmatchedBoundaryCondition(t *testing.T) {
	g := cartesianGrid(t, 2, 2, true)
	pd := plateProblemData()
	pd.BoundaryConditions["Lid"] = InputParameters.BoundaryConditionSpec{Type: "dirichlet", Value: 0.}
	_, err := NewHeatTransfer2D(g, pd, nil, false)
	assert.Error(t, err)
}
