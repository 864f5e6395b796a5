package Heat2D

import (
	"fmt"

	"github.com/efvlib/goefv/FV2D"
	"github.com/efvlib/goefv/InputParameters"
	"github.com/efvlib/goefv/utils"
)

// SingularSystemError reports a global linear solve that failed to produce
// a unique solution. It is fatal: the run is finalized and aborted.
type SingularSystemError struct {
	Iteration int
	Cause     error
}

func (e SingularSystemError) Error() string {
	return fmt.Sprintf("singular global system at iteration %d: %s", e.Iteration, e.Cause)
}

func (e SingularSystemError) Unwrap() error { return e.Cause }

// ProgressReport is the per-iteration record handed to the reporter; the
// presentation layer decides how to render it.
type ProgressReport struct {
	Iteration   int
	CurrentTime float64
	TimeStep    float64
	Difference  float64
}

// Outcome is the terminal state of a run. Running out of iterations is a
// normal outcome, not an error.
type Outcome struct {
	Converged  bool
	Iterations int
	FinalTime  float64
	Difference float64
}

// HeatTransfer2D advances the transient heat equation with a first-order
// implicit scheme: per iteration it assembles the global system, solves it
// and tests the max-abs temperature change against the tolerance.
//
// The matrix has two clearly separated assembly phases. The structural
// phase (iteration 0 only) scatters the accumulation diagonal, the local
// diffusive flux matrices and the Dirichlet identity rows into a sparse
// DOK, which is then densified once; those entries are time-invariant.
// The transient phase rebuilds only the independent vector each iteration.
type HeatTransfer2D struct {
	Grid        *FV2D.Grid
	ProblemData *InputParameters.ProblemData
	Timer       *Timer
	Saver       Saver
	Report      func(ProgressReport)
	Verbose     bool

	dirichletBoundaries []BoundaryCondition
	neumannBoundaries   []BoundaryCondition

	matrix               utils.Matrix
	independent          utils.Vector
	oldTemperature       utils.Vector
	numericalTemperature utils.Vector

	difference float64
	iteration  int
	converged  bool
}

func NewHeatTransfer2D(grid *FV2D.Grid, pd *InputParameters.ProblemData, saver Saver, verbose bool) (ht *HeatTransfer2D, err error) {
	if err = pd.Validate(); err != nil {
		return
	}
	for i := range grid.Regions {
		if _, ok := pd.PropertyData[grid.Regions[i].Name]; !ok {
			err = fmt.Errorf("grid region %q has no property data", grid.Regions[i].Name)
			return
		}
	}
	if saver == nil {
		saver = NoopSaver{}
	}
	ht = &HeatTransfer2D{
		Grid:        grid,
		ProblemData: pd,
		Timer:       NewTimer(pd.TimeStep),
		Saver:       saver,
		Verbose:     verbose,
	}
	if ht.dirichletBoundaries, ht.neumannBoundaries, err = ConditionsFromProblemData(pd, grid); err != nil {
		ht = nil
		return
	}
	n := grid.NumberOfVertices()
	ht.oldTemperature = utils.NewVectorConst(n, pd.InitialValue)
	ht.numericalTemperature = utils.NewVector(n)
	ht.independent = utils.NewVector(n)
	return
}

// Run executes the iteration loop until convergence or the iteration
// limit, finalizing the saver and timing data either way. Fatal errors
// (degenerate geometry surfaced as a singular system, failed saves) abort
// the run after finalizing.
func (ht *HeatTransfer2D) Run() (outcome Outcome, err error) {
	if ht.Verbose {
		ht.startInfo()
	}
	for !ht.converged && ht.iteration < ht.ProblemData.MaxIterations {
		ht.assemble()
		if err = ht.solve(); err != nil {
			ht.finalize()
			return
		}
		ht.report()

		ht.Timer.IncrementTime()
		if err = ht.Saver.Save(ht.numericalTemperature, ht.Timer.CurrentTime()); err != nil {
			ht.finalize()
			return
		}
		ht.converged = ht.checkConvergence()
		ht.iteration++
	}
	err = ht.finalize()
	outcome = Outcome{
		Converged:  ht.converged,
		Iterations: ht.iteration,
		FinalTime:  ht.Timer.CurrentTime(),
		Difference: ht.difference,
	}
	return
}

// Temperature exposes the current field, one entry per vertex handle.
func (ht *HeatTransfer2D) Temperature() utils.Vector { return ht.oldTemperature }

func (ht *HeatTransfer2D) assemble() {
	ht.Timer.Start("assemble")
	if ht.iteration == 0 {
		ht.assembleStructural()
	}
	ht.assembleIndependent()
	ht.Timer.Stop("assemble")
}

// assembleStructural scatters every time-invariant matrix entry: the
// transient accumulation diagonal, the local diffusive flux matrices and
// the Dirichlet identity rows. Runs exactly once.
func (ht *HeatTransfer2D) assembleStructural() {
	var (
		g   = ht.Grid
		pd  = ht.ProblemData
		dok = utils.NewDOK(g.NumberOfVertices(), g.NumberOfVertices())
	)
	for _, region := range g.Regions {
		var (
			props        = pd.PropertyData[region.Name]
			accumulation = props.Density * props.HeatCapacity / ht.Timer.TimeStep
		)
		for _, eh := range region.Elements {
			var (
				e         = g.Elements[eh]
				localFlux = ComputeLocalMatrix(e, props.Conductivity, ht.iteration == 0)
			)
			for local, vh := range e.VertexHandles {
				dok.AddAt(vh, vh, e.SubelementVolumes[local]*accumulation)
				for q, qh := range e.VertexHandles {
					dok.AddAt(vh, qh, localFlux.At(local, q))
				}
			}
		}
	}
	for _, bc := range ht.dirichletBoundaries {
		for _, vh := range bc.Boundary.Vertices {
			dok.ZeroRow(vh)
			dok.Set(vh, vh, 1.)
		}
	}
	ht.matrix = dok.ToMatrix()
}

// assembleIndependent rebuilds the right-hand side from scratch: heat
// generation, the transient term from the previous field, Neumann fluxes,
// then the Dirichlet values overwriting their rows.
func (ht *HeatTransfer2D) assembleIndependent() {
	var (
		g  = ht.Grid
		pd = ht.ProblemData
	)
	ht.independent.Zero()

	// Internal heat generation, accumulated per sub-element so a vertex
	// shared between elements collects every contribution.
	for _, region := range g.Regions {
		heatGeneration := pd.PropertyData[region.Name].InternalHeatGeneration
		if heatGeneration == 0. {
			continue
		}
		for _, eh := range region.Elements {
			e := g.Elements[eh]
			for local, vh := range e.VertexHandles {
				ht.independent.AddAt(vh, e.SubelementVolumes[local]*heatGeneration)
			}
		}
	}

	// Transient term
	for _, region := range g.Regions {
		var (
			props        = pd.PropertyData[region.Name]
			accumulation = props.Density * props.HeatCapacity / ht.Timer.TimeStep
		)
		for _, eh := range region.Elements {
			e := g.Elements[eh]
			for local, vh := range e.VertexHandles {
				ht.independent.AddAt(vh,
					e.SubelementVolumes[local]*accumulation*ht.oldTemperature.DataP[vh])
			}
		}
	}

	// Neumann boundaries
	for _, bc := range ht.neumannBoundaries {
		for _, facet := range bc.Boundary.Facets {
			for _, outerFace := range facet.OuterFaces {
				ht.independent.AddAt(outerFace.Vertex,
					-1.*bc.GetValue(outerFace.Handle)*outerFace.Area.Norm())
			}
		}
	}

	// Dirichlet boundaries
	for _, bc := range ht.dirichletBoundaries {
		for _, vh := range bc.Boundary.Vertices {
			ht.independent.Set(vh, bc.GetValue(vh))
		}
	}
}

func (ht *HeatTransfer2D) solve() (err error) {
	ht.Timer.Start("solve")
	defer ht.Timer.Stop("solve")
	X, err := ht.matrix.LUSolve(ht.independent)
	if err != nil {
		err = SingularSystemError{Iteration: ht.iteration, Cause: err}
		return
	}
	ht.numericalTemperature = X
	return
}

// checkConvergence measures the max-abs change and promotes the new field.
// Iteration 0 is exempt from the tolerance test, so at least one genuine
// step-to-step comparison happens; the time limit always terminates.
func (ht *HeatTransfer2D) checkConvergence() (converged bool) {
	ht.difference = ht.numericalTemperature.MaxAbsDiff(ht.oldTemperature)
	ht.oldTemperature = ht.numericalTemperature
	if ht.Timer.CurrentTime() > ht.ProblemData.FinalTime {
		converged = true
	} else if ht.iteration > 0 {
		converged = ht.difference < ht.ProblemData.Tolerance
	}
	return
}

func (ht *HeatTransfer2D) report() {
	if ht.Report != nil {
		ht.Report(ProgressReport{
			Iteration:   ht.iteration,
			CurrentTime: ht.Timer.CurrentTime(),
			TimeStep:    ht.Timer.TimeStep,
			Difference:  ht.difference,
		})
	}
	if !ht.Verbose {
		return
	}
	if ht.iteration == 0 {
		fmt.Printf("%9s\t%14s\t%14s\t%14s\n", "Iteration", "CurrentTime", "TimeStep", "Difference")
	} else {
		fmt.Printf("%9d\t%14e\t%14e\t%14e\n",
			ht.iteration, ht.Timer.CurrentTime(), ht.Timer.TimeStep, ht.difference)
	}
}

func (ht *HeatTransfer2D) startInfo() {
	fmt.Printf("Transient heat conduction in 2 Dimensions\n")
	fmt.Printf("Solving %q\n", ht.ProblemData.Title)
	fmt.Printf("Num Vertices = %d, Num Elements K = %d\n",
		ht.Grid.NumberOfVertices(), len(ht.Grid.Elements))
	for _, region := range ht.Grid.Regions {
		props := ht.ProblemData.PropertyData[region.Name]
		fmt.Printf("\t%s: %+v\n", region.Name, props)
	}
	fmt.Printf("TimeStep = %8.5f, FinalTime = %8.5f, Tolerance = %8.5e\n\n",
		ht.ProblemData.TimeStep, ht.ProblemData.FinalTime, ht.ProblemData.Tolerance)
}

func (ht *HeatTransfer2D) finalize() (err error) {
	err = ht.Saver.Finalize()
	if ht.Verbose {
		fmt.Printf("\n")
		ht.Timer.PrintSummary()
	}
	return
}
