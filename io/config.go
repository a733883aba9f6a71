package io

import (
	"fmt"
	"math"
	"path/filepath"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/orrery"
)

const (
	ExampleRunFile = `[Run]

#######################
# Required Parameters #
#######################

# Catalog file describing the initial state of every body. One body per line:
#     name mass px py pz vx vy vz radius color
# Blank lines and lines starting with '#' are ignored.
Catalog = path/to/solarsystem.txt

# Trajectory table which will be written to. Each row is
#     step body x y
Output = path/to/trajectories.txt

#######################
# Optional Parameters #
#######################

# Size of each time step in seconds. The default is about one solar day.
# Dt = 86459

# Number of steps to simulate. Default is 365.
# Steps = 365

# Number of steps performed between progress reports. Default is 30.
# Chunk = 30

# Only the first ViewBodies bodies are drawn. All of them are simulated
# regardless. Default is 0, which draws everything.
# ViewBodies = 5

# Size of the drawing canvas in pixels. Default is 600 x 600.
# Width = 600
# Height = 600

# If set, a matplotlib figure of the orbits is saved here. Requires python
# with matplotlib installed.
# PlotFile = orbits.png

# If set, a terminal chart of this body's distance to the first body in the
# catalog is printed after the run.
# PreviewBody = earth

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleCatalogFile = `# name    mass      px        py  pz  vx  vy       vz  radius  color
sun       1.989e30  0         0   0   0   0        0   10      #ffff00
mercury   3.302e23  5.791e10  0   0   0   4.79e4   0   2       #8c8c8c
venus     4.869e24  1.082e11  0   0   0   3.50e4   0   4       #e6c87a
earth     5.974e24  1.496e11  0   0   0   2.98e4   0   4       #0000ff
mars      6.419e23  2.279e11  0   0   0   2.41e4   0   3       #ff0000`
)

// RunConfig describes a single simulation run.
type RunConfig struct {
	// Required
	Catalog, Output string

	// Optional
	Dt float64
	Steps, Chunk int
	ViewBodies int
	Width, Height int
	PlotFile, PreviewBody string
	ProfileFile, LogFile string
}

type RunWrapper struct {
	Run RunConfig
}

// DefaultRunWrapper returns a wrapper holding the values used for any
// optional parameter which isn't set.
func DefaultRunWrapper() *RunWrapper {
	cfg := RunConfig{
		Dt: orrery.DefaultDt, Steps: 365, Chunk: 30,
		Width: 600, Height: 600,
	}
	return &RunWrapper{ cfg }
}

// ReadRunConfig reads the [Run] section of the given file and checks that
// every parameter is valid. Relative paths inside the file are interpreted
// relative to the directory containing it.
func ReadRunConfig(fname string) (*RunConfig, error) {
	wrap := DefaultRunWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}

	con := &wrap.Run
	if err := con.Check(); err != nil {
		return nil, fmt.Errorf("%s: %s", fname, err)
	}

	dir := filepath.Dir(fname)
	con.Catalog = resolve(dir, con.Catalog)
	con.Output = resolve(dir, con.Output)
	con.PlotFile = resolve(dir, con.PlotFile)
	con.ProfileFile = resolve(dir, con.ProfileFile)
	con.LogFile = resolve(dir, con.LogFile)

	return con, nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) { return path }
	return filepath.Join(dir, path)
}

// Check returns a descriptive error for the first invalid parameter.
func (con *RunConfig) Check() error {
	if !con.ValidCatalog() {
		return fmt.Errorf("Invalid/non-existent 'Catalog' value.")
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidDt() {
		return fmt.Errorf("'Dt' must be non-zero and finite, but is %g.", con.Dt)
	} else if !con.ValidSteps() {
		return fmt.Errorf("'Steps' must be non-negative, but is %d.", con.Steps)
	} else if !con.ValidChunk() {
		return fmt.Errorf("'Chunk' must be positive, but is %d.", con.Chunk)
	} else if !con.ValidViewBodies() {
		return fmt.Errorf(
			"'ViewBodies' must be non-negative, but is %d.", con.ViewBodies,
		)
	} else if !con.ValidCanvas() {
		return fmt.Errorf(
			"'Width' and 'Height' must be positive, but are %d and %d.",
			con.Width, con.Height,
		)
	}
	return nil
}

func (con *RunConfig) ValidCatalog() bool { return con.Catalog != "" }

func (con *RunConfig) ValidOutput() bool { return con.Output != "" }

func (con *RunConfig) ValidDt() bool {
	return con.Dt != 0 && !math.IsNaN(con.Dt) && !math.IsInf(con.Dt, 0)
}

func (con *RunConfig) ValidSteps() bool { return con.Steps >= 0 }

func (con *RunConfig) ValidChunk() bool { return con.Chunk > 0 }

func (con *RunConfig) ValidViewBodies() bool { return con.ViewBodies >= 0 }

func (con *RunConfig) ValidCanvas() bool {
	return con.Width > 0 && con.Height > 0
}

// Plot returns true if a figure should be saved.
func (con *RunConfig) Plot() bool { return con.PlotFile != "" }

// Preview returns true if a terminal chart should be printed.
func (con *RunConfig) Preview() bool { return con.PreviewBody != "" }
