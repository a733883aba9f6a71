package render

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/orrery"
	"github.com/phil-mansfield/orrery/catalog"
)

const defaultColor = "k"

// orbit is the drawable form of one body's run.
type orbit struct {
	name   string
	color  string
	xs, ys []float64
	end    orrery.Point
}

// orbits projects the trajectories of the bodies in cat. trajs[i] belongs
// to cat.Bodies[i]. Trajectories don't contain the position reached by the
// final step, so the end point of each orbit is read from the body instead.
func orbits(
	cat *catalog.Catalog, trajs []orrery.Trajectory, view *View,
) ([]orbit, error) {
	if len(trajs) < cat.Len() {
		return nil, fmt.Errorf(
			"%d trajectories given for %d bodies", len(trajs), cat.Len(),
		)
	}

	out := make([]orbit, cat.Len())
	for i, b := range cat.Bodies {
		o := &out[i]
		o.color = defaultColor
		if d, ok := cat.Display(b); ok {
			o.name = d.Name
			o.color, _ = d.RGB()
		}

		proj := view.ProjectTrajectory(trajs[i])
		o.xs, o.ys = make([]float64, len(proj)), make([]float64, len(proj))
		for k := range proj {
			o.xs[k], o.ys[k] = proj[k].X, proj[k].Y
		}
		o.end = view.Project(b.Position())
	}

	return out, nil
}

// PlotOrbits saves a matplotlib figure showing the path and final position
// of every body in cat. The canvas is drawn with y increasing downwards, as
// in a window.
func PlotOrbits(
	fname string, cat *catalog.Catalog,
	trajs []orrery.Trajectory, view *View, title string,
) error {
	obs, err := orbits(cat, trajs, view)
	if err != nil { return err }

	plt.Reset()
	plt.Figure(plt.FigSize(8, 8))
	for _, o := range obs {
		if len(o.xs) > 0 {
			plt.Plot(o.xs, o.ys, plt.C(o.color), plt.LW(1))
		}
		plt.Plot([]float64{o.end.X}, []float64{o.end.Y}, "o", plt.C(o.color))
	}

	plt.Title(title)
	plt.XLim(0, float64(view.Width))
	plt.YLim(float64(view.Height), 0)
	plt.SaveFig(fname)
	plt.Execute()

	return nil
}
