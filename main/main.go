package main

import (
	"flag"
	"fmt"
	"log"
	"path"
	"strings"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/astromodels/fluxgrid"
	"github.com/astromodels/fluxgrid/grid"
	fgio "github.com/astromodels/fluxgrid/io"
	"github.com/astromodels/fluxgrid/math/resample"
)

const defaultShape = 15

func main() {
	var (
		resampleFile  string
		exampleConfig string
	)
	vars := map[string]*string{
		"Resample":      &resampleFile,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&resampleFile, "Resample", "",
		"Configuration file for [Resample] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. 'Resample' is the only accepted argument.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Resample":
		con, err := fgio.ReadResampleConfig(resampleFile)
		if err != nil {
			log.Fatal(err.Error())
		}

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidOutput() {
			log.Fatal("Invalid/non-existent 'Output' value.")
		} else if !con.ValidParams() {
			log.Fatal("Invalid/non-existent 'Params' value.")
		} else if !con.ValidLines() {
			log.Fatal("Invalid/non-existent 'Lines' value.")
		} else if !con.ValidShape() {
			log.Fatal("Invalid 'Shape' value.")
		}

		resampleMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "Resample":
			fmt.Println(fgio.ExampleResampleFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. 'Resample' is the " +
					"only recognized argument.",
			)
		}
	default:
		panic("Impossible")
	}
}

func resampleMain(con *fgio.ResampleConfig) {
	params, paramCols, err := fgio.ParseNameCols(con.Params)
	if err != nil {
		log.Fatal(err.Error())
	}
	lines, lineCols, err := fgio.ParseNameCols(con.Lines)
	if err != nil {
		log.Fatal(err.Error())
	}

	shape := make([]int, len(params))
	if con.Shape == "" {
		for i := range shape {
			shape[i] = defaultShape
		}
	} else {
		shape, err = fgio.ParseIntList(con.Shape)
		if err != nil {
			log.Fatal(err.Error())
		}
		if len(shape) != len(params) {
			log.Fatalf(
				"'Shape' has %d entries, but 'Params' has %d.",
				len(shape), len(params),
			)
		}
	}

	log.Println("Loading input grid table...")
	raw, err := grid.LoadTable(con.Input, params, paramCols, lines, lineCols)
	if err != nil {
		log.Fatal(err.Error())
	}
	bytes := raw.Points() * 8
	log.Printf(
		"Raw flux arrays: %d bytes for 1 line, %d bytes total for all "+
			"%d lines.", bytes, bytes*len(lines), len(lines),
	)

	log.Printf("Interpolating flux grids to shape %v...", shape)
	interpd, err := fluxgrid.Interpolate(raw, shape)
	if err != nil {
		log.Fatal(err.Error())
	}

	flux := make([][]float64, len(interpd.Lines))
	for i, line := range interpd.Lines {
		flux[i] = interpd.Flux[line].Vals
	}
	out := path.Join(con.Output, "interpd_grids.txt")
	err = fgio.WriteGridTable(
		out, interpd.Names, interpd.Values(), interpd.Lines, flux,
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s.", out)

	if con.PlotDir != "" {
		quickLookPlots(con.PlotDir, raw, interpd)
	}
}

// quickLookPlots saves one plot per line: the resampled flux profile
// along the first parameter, through the midpoint of every other
// parameter, with the raw gridpoint fluxes overplotted.
func quickLookPlots(dir string, raw *grid.Raw, interpd *fluxgrid.Interpd) {
	plt.Reset()
	for _, line := range interpd.Lines {
		plt.Figure()

		plt.Plot(raw.Axes[0].Vals(), axisProfile(raw.Flux[line]), "ok")
		plt.Plot(
			interpd.Axes[0].Vals(), axisProfile(interpd.Flux[line]),
			"r", plt.LW(2),
		)

		plt.XLabel(interpd.Names[0])
		plt.YLabel(line)
		plt.SaveFig(path.Join(dir, line+".png"))
	}
	plt.Execute()
}

// axisProfile extracts the values along the first axis with every
// other index fixed at the middle of its dimension.
func axisProfile(arr *resample.Array) []float64 {
	idx := make([]int, arr.NDim())
	for d := range idx {
		idx[d] = arr.Shape[d] / 2
	}

	out := make([]float64, arr.Shape[0])
	for i := range out {
		idx[0] = i
		out[i] = arr.At(idx...)
	}
	return out
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but fluxgrid only accepts "+
				"one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}
