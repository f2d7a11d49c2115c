/*Package io handles fluxgrid's configuration files and output tables.
*/
package io

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/gcfg.v1"
)

const ExampleResampleFile = `[Resample]

#######################
# Required Parameters #
#######################

# The model grid table. A whitespace-separated text file with one row
# per gridpoint. Rows may come in any order and the parameter spacing
# may be uneven, but the rows must cover a full rectangular grid:
# exactly one row for every combination of parameter values.
Input = path/to/grid_table.txt

# Directory which the resampled grid table will be written to.
Output = path/to/output/dir

# The grid parameters as Name:Column pairs, where Column is the
# zero-based table column holding that parameter's values. The order
# given here is the order of the grid dimensions.
Params = logU:0, logP:1

# The emission lines as Name:Column pairs.
Lines = Hbeta:2, OIII5007:3

#######################
# Optional Parameters #
#######################

# The number of points along each dimension of the resampled grid, in
# the same order as Params. Each entry must be at least 2. The default
# is 15 points along every dimension. These values have a major impact
# on the speed and memory use of the resampling.
# Shape = 50, 50

# If set, a quick-look profile plot of each line is saved to this
# directory. Requires python with matplotlib.
# PlotDir = path/to/plot/dir`

type ResampleConfig struct {
	// Required
	Input  string
	Output string
	Params string
	Lines  string

	// Optional
	Shape   string
	PlotDir string
}

type ResampleWrapper struct {
	Resample ResampleConfig
}

func DefaultResampleWrapper() *ResampleWrapper {
	return &ResampleWrapper{}
}

// ReadResampleConfig parses the [Resample] section of a gcfg-style
// config file.
func ReadResampleConfig(fname string) (*ResampleConfig, error) {
	wrap := DefaultResampleWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Resample, nil
}

func (con *ResampleConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *ResampleConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *ResampleConfig) ValidParams() bool {
	_, _, err := ParseNameCols(con.Params)
	return err == nil
}
func (con *ResampleConfig) ValidLines() bool {
	_, _, err := ParseNameCols(con.Lines)
	return err == nil
}
func (con *ResampleConfig) ValidShape() bool {
	if con.Shape == "" {
		return true
	}
	shape, err := ParseIntList(con.Shape)
	if err != nil {
		return false
	}
	for _, n := range shape {
		if n < 2 {
			return false
		}
	}
	return true
}

// ParseNameCols parses a comma-separated list of Name:Column pairs,
// e.g. "logU:0, logP:1".
func ParseNameCols(s string) (names []string, cols []int, err error) {
	if strings.Trim(s, " ") == "" {
		return nil, nil, fmt.Errorf("Empty Name:Column list.")
	}

	for _, tok := range strings.Split(s, ",") {
		parts := strings.Split(strings.Trim(tok, " "), ":")
		if len(parts) != 2 {
			return nil, nil, fmt.Errorf(
				"'%s' is not a Name:Column pair.", strings.Trim(tok, " "),
			)
		}

		name := strings.Trim(parts[0], " ")
		col, err := strconv.Atoi(strings.Trim(parts[1], " "))
		if name == "" || err != nil || col < 0 {
			return nil, nil, fmt.Errorf(
				"'%s' is not a Name:Column pair.", strings.Trim(tok, " "),
			)
		}

		names = append(names, name)
		cols = append(cols, col)
	}
	return names, cols, nil
}

// ParseIntList parses a comma-separated list of integers, e.g.
// "50, 50".
func ParseIntList(s string) ([]int, error) {
	if strings.Trim(s, " ") == "" {
		return nil, fmt.Errorf("Empty integer list.")
	}

	out := []int{}
	for _, tok := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.Trim(tok, " "))
		if err != nil {
			return nil, fmt.Errorf(
				"'%s' is not an integer.", strings.Trim(tok, " "),
			)
		}
		out = append(out, n)
	}
	return out, nil
}
