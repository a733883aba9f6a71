package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/phil-mansfield/orrery"
	"github.com/phil-mansfield/orrery/catalog"
	"github.com/phil-mansfield/orrery/io"
	"github.com/phil-mansfield/orrery/render"
)

const (
	previewWidth, previewHeight = 60, 10
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// NewFileGroup opens the log and profile files requested by con. Logging is
// redirected to the log file.
func NewFileGroup(con *io.RunConfig) (*FileGroup, error) {
	fg := &FileGroup{}

	if con.LogFile != "" {
		f, err := os.Create(con.LogFile)
		if err != nil { return nil, err }
		fg.log = f
		log.SetOutput(f)
	}

	if con.ProfileFile != "" {
		f, err := os.Create(con.ProfileFile)
		if err != nil {
			fg.Close()
			return nil, err
		}
		fg.prof = f
		if err := pprof.StartCPUProfile(f); err != nil {
			fg.Close()
			return nil, err
		}
	}

	return fg, nil
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil { log.Fatal(err.Error()) }
	}

	if fg.log != nil {
		log.SetOutput(os.Stderr)
		err := fg.log.Close()
		if err != nil { log.Fatal(err.Error()) }
	}
}

func main() {
	var runStr, exampleConfig string
	vars := map[string]*string{
		"Run": &runStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&runStr, "Run", "", "Configuration file for [Run] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. Accepted arguments are 'Run' and " +
			"'Catalog'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Run":
		con, err := io.ReadRunConfig(runStr)
		if err != nil { log.Fatal(err.Error()) }
		if err := runMain(con); err != nil { log.Fatal(err.Error()) }

	case "ExampleConfig":
		switch exampleConfig {
		case "Run":
			fmt.Println(io.ExampleRunFile)
		case "Catalog":
			fmt.Println(io.ExampleCatalogFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Run' and 'Catalog'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but orrery " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func runMain(con *io.RunConfig) error {
	fg, err := NewFileGroup(con)
	if err != nil { return err }
	defer fg.Close()

	cat, err := catalog.ReadFile(con.Catalog)
	if err != nil { return err }
	log.Printf("Read %d bodies from %s", cat.Len(), con.Catalog)

	viewed := cat
	if con.ViewBodies > 0 { viewed = cat.Head(con.ViewBodies) }

	// The view is fixed by the initial positions, as on a canvas.
	var view *render.View
	if con.Plot() {
		view, err = render.NewView(viewed.Particles(), con.Width, con.Height)
		if err != nil { return err }
	}

	trajs, err := simulate(cat.Particles(), con.Dt, con.Steps, con.Chunk)
	if err != nil { return err }

	err = io.WriteTrajectoriesFile(con.Output, cat.Names(), trajs)
	if err != nil { return err }
	log.Printf("Wrote trajectories to %s", con.Output)

	if con.Plot() {
		title := fmt.Sprintf(
			"%d steps of %g s", con.Steps, con.Dt,
		)
		err = render.PlotOrbits(
			con.PlotFile, viewed, trajs[:viewed.Len()], view, title,
		)
		if err != nil { return err }
		log.Printf("Saved figure to %s", con.PlotFile)
	}

	if con.Preview() {
		chart, err := preview(cat, trajs, con.PreviewBody)
		if err != nil { return err }
		fmt.Println(chart)
	}

	return nil
}

// simulate drives the stepper in chunks of the given size, reporting
// progress between chunks.
func simulate(
	ps []orrery.Particle, dt float64, steps, chunk int,
) ([]orrery.Trajectory, error) {
	stepper := orrery.NewStepper(len(ps))
	trajs := make([]orrery.Trajectory, len(ps))
	for i := range trajs {
		trajs[i] = make(orrery.Trajectory, 0, steps)
	}

	for done := 0; done < steps; {
		n := chunk
		if steps-done < n { n = steps - done }

		for k := 0; k < n; k++ {
			if err := stepper.Step(ps, dt, trajs); err != nil {
				return nil, err
			}
		}
		done += n

		log.Printf("Step %d/%d", done, steps)
	}

	return trajs, nil
}

func preview(
	cat *catalog.Catalog, trajs []orrery.Trajectory, name string,
) (string, error) {
	idx := -1
	for i, n := range cat.Names() {
		if n == name {
			idx = i
			break
		}
	}

	if idx == -1 {
		return "", fmt.Errorf("'PreviewBody' %s is not in the catalog.", name)
	} else if len(trajs[idx]) == 0 {
		return "", fmt.Errorf("Cannot preview a run with no steps.")
	}

	rs, err := render.RadiusSeries(trajs[idx], trajs[0])
	if err != nil { return "", err }
	return render.Preview(name, rs, previewWidth, previewHeight), nil
}
