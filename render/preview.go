package render

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/phil-mansfield/orrery"
)

// AU is the astronomical unit in m.
const AU = 1.496e11

// RadiusSeries returns the distance, in AU, between the samples of traj and
// center, which must have the same length.
func RadiusSeries(traj, center orrery.Trajectory) ([]float64, error) {
	if len(traj) != len(center) {
		return nil, fmt.Errorf(
			"trajectory has %d samples, but center has %d",
			len(traj), len(center),
		)
	}

	rs := make([]float64, len(traj))
	for i := range traj {
		dx, dy := traj[i].X-center[i].X, traj[i].Y-center[i].Y
		rs[i] = math.Sqrt(dx*dx+dy*dy) / AU
	}
	return rs, nil
}

// Preview returns a terminal chart of the series, which must be non-empty.
func Preview(name string, rs []float64, width, height int) string {
	return asciigraph.Plot(
		rs,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("distance of %s [AU]", name)),
	)
}
