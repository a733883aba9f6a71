package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/orrery"
)

/*
Trajectory tables are plain text. Lines starting with '#' are comments and
every other line is a single sample:

    step body x y

step and body are zero-indexed integers. Rows are sorted by step and then by
body, so the samples of each body are in step order.
*/

const (
	stepCol, bodyCol, xCol, yCol = 0, 1, 2, 3
)

// WriteTrajectories writes trajs as a trajectory table. names labels the
// bodies in the header and may be nil.
func WriteTrajectories(
	wr io.Writer, names []string, trajs []orrery.Trajectory,
) error {
	bw := bufio.NewWriter(wr)

	fmt.Fprintf(bw, "# %d bodies\n", len(trajs))
	for i := range names {
		fmt.Fprintf(bw, "# body %d: %s\n", i, names[i])
	}
	fmt.Fprintln(bw, "# step body x y")

	steps := 0
	for i := range trajs {
		if len(trajs[i]) > steps { steps = len(trajs[i]) }
	}

	for k := 0; k < steps; k++ {
		for i := range trajs {
			if k >= len(trajs[i]) { continue }
			p := trajs[i][k]
			fmt.Fprintf(bw, "%d %d %s %s\n", k, i, formatFloat(p.X), formatFloat(p.Y))
		}
	}

	return bw.Flush()
}

// WriteTrajectoriesFile writes a trajectory table to the given path.
func WriteTrajectoriesFile(
	path string, names []string, trajs []orrery.Trajectory,
) error {
	f, err := os.Create(path)
	if err != nil { return err }
	if err := WriteTrajectories(f, names, trajs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadTrajectories reads the trajectory table at the given path. nBodies is
// the number of bodies in the run, which must be passed in because bodies
// with no samples don't appear in the table.
func ReadTrajectories(path string, nBodies int) ([]orrery.Trajectory, error) {
	cols, err := table.ReadTable(path, []int{stepCol, bodyCol, xCol, yCol}, nil)
	if err != nil { return nil, err }

	steps, bodies, xs, ys := cols[0], cols[1], cols[2], cols[3]
	trajs := make([]orrery.Trajectory, nBodies)
	for i := range trajs { trajs[i] = orrery.Trajectory{} }

	for row := range steps {
		i, k := int(bodies[row]), int(steps[row])
		if i < 0 || i >= nBodies || float64(i) != bodies[row] {
			return nil, fmt.Errorf(
				"%s, row %d: body index %g outside [0, %d)",
				path, row+1, bodies[row], nBodies,
			)
		} else if k != len(trajs[i]) || float64(k) != steps[row] {
			return nil, fmt.Errorf(
				"%s, row %d: found step %g for body %d, expected step %d",
				path, row+1, steps[row], i, len(trajs[i]),
			)
		}
		trajs[i] = append(trajs[i], orrery.Point{X: xs[row], Y: ys[row]})
	}

	return trajs, nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
