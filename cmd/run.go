/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/efvlib/goefv/FV2D"
	"github.com/efvlib/goefv/InputParameters"
	"github.com/efvlib/goefv/model_problems/Heat2D"
	"github.com/efvlib/goefv/readfiles"
)

type RunOptions struct {
	CaseFile   string
	GridFile   string
	OutputFile string
	Verbose    bool
	Profile    bool
}

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Transient heat conduction solver, reads a case file and a grid file and writes the field history",
	Long:  `Transient heat conduction solver, reads a case file and a grid file and writes the field history`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			opts = &RunOptions{}
			err  error
		)
		if opts.CaseFile, err = cmd.Flags().GetString("caseFile"); err != nil {
			panic(err)
		}
		if opts.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			panic(err)
		}
		opts.OutputFile, _ = cmd.Flags().GetString("outputFile")
		opts.Verbose, _ = cmd.Flags().GetBool("verbose")
		opts.Profile, _ = cmd.Flags().GetBool("profile")
		pd := processInput(opts)
		if opts.Profile {
			defer profile.Start().Stop()
		}
		if err = RunHeat2D(opts, pd); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processInput(opts *RunOptions) (pd *InputParameters.ProblemData) {
	var (
		err      error
		willExit bool
	)
	if len(opts.CaseFile) == 0 {
		err := fmt.Errorf("must supply a case file (-I, --caseFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
InitialValue: 0.
TimeStep: 0.1
FinalTime: 10.
Tolerance: 1.e-6
MaxIterations: 1000
Properties:
  Body:
    Density: 1.
    HeatCapacity: 1.
    Conductivity: 1.
    InternalHeatGeneration: 0.
BoundaryConditions:
  West: {Type: dirichlet, Value: 100.}
  East: {Type: dirichlet, Value: 0.}
  South: {Type: neumann, Value: 0.}
  North: {Type: neumann, Value: 0.}
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(opts.CaseFile); err != nil {
		panic(err)
	}
	pd = &InputParameters.ProblemData{}
	if err = pd.Parse(data); err != nil {
		panic(err)
	}
	if len(opts.GridFile) == 0 {
		opts.GridFile = pd.Grid
	}
	if len(opts.GridFile) == 0 {
		fmt.Printf("error: must supply a grid file (-F, --gridFile) in Gmsh v2.2 (.msh) format\n")
		os.Exit(1)
	}
	if len(opts.OutputFile) == 0 {
		opts.OutputFile = pd.Output
	}
	return
}

func RunHeat2D(opts *RunOptions, pd *InputParameters.ProblemData) (err error) {
	var (
		md    FV2D.MeshData
		grid  *FV2D.Grid
		saver Heat2D.Saver
	)
	if md, err = readfiles.ReadMSH2D(opts.GridFile, opts.Verbose); err != nil {
		return
	}
	if grid, err = FV2D.NewGrid(md); err != nil {
		return
	}
	if len(opts.OutputFile) != 0 {
		var cs *Heat2D.CSVSaver
		if cs, err = Heat2D.NewCSVSaver(opts.OutputFile); err != nil {
			return
		}
		saver = cs
	}
	ht, err := Heat2D.NewHeatTransfer2D(grid, pd, saver, opts.Verbose)
	if err != nil {
		return
	}
	outcome, err := ht.Run()
	if err != nil {
		return
	}
	if outcome.Converged {
		fmt.Printf("converged after %d iterations, t = %g, difference = %e\n",
			outcome.Iterations, outcome.FinalTime, outcome.Difference)
	} else {
		fmt.Printf("not converged after %d iterations, t = %g, difference = %e\n",
			outcome.Iterations, outcome.FinalTime, outcome.Difference)
	}
	return
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("caseFile", "I", "", "YAML case file with properties, boundary conditions and time stepping")
	RunCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in Gmsh v2.2 (.msh) format")
	RunCmd.Flags().StringP("outputFile", "o", "", "CSV file receiving one field row per time step")
	RunCmd.Flags().BoolP("verbose", "v", false, "echo the case and per-iteration progress")
	RunCmd.Flags().BoolP("profile", "p", false, "write a CPU profile for the run")
}
