/*package render draws the output of a run. Nothing here feeds back into
the physics: it only reads positions and display information.
*/
package render

import (
	"errors"
	"math"

	"github.com/phil-mansfield/orrery"
	"github.com/phil-mansfield/orrery/geom"
)

var (
	// ErrEmptyView is returned when a view is requested for a set of
	// bodies which are all at the origin (or when there are no bodies).
	ErrEmptyView = errors.New("render: no body away from the origin")
)

// View maps simulation coordinates (in m) onto a canvas of the given size
// (in pixels). The origin of the simulation is drawn at the center of the
// canvas and the body furthest from it is drawn on the edge of the largest
// circle which fits inside the canvas.
type View struct {
	Width, Height int
	Scale         float64
	Offset        geom.Vec
}

// NewView returns the view of the given bodies on a width x height canvas.
func NewView(ps []orrery.Particle, width, height int) (*View, error) {
	rMax := 0.0
	for _, p := range ps {
		rMax = math.Max(rMax, p.Position().Norm())
	}
	if rMax == 0 { return nil, ErrEmptyView }

	minDim := math.Min(float64(width), float64(height)) / 2
	v := &View{
		Width: width, Height: height,
		Scale: minDim / rMax,
		Offset: geom.Vec{float64(width) / 2, float64(height) / 2, 0},
	}
	return v, nil
}

// Project returns the canvas coordinates of pos.
func (v *View) Project(pos geom.Vec) orrery.Point {
	x := pos.Scale(v.Scale).Add(v.Offset)
	return orrery.Point{X: x[0], Y: x[1]}
}

// ProjectTrajectory returns the canvas coordinates of every sample in traj.
func (v *View) ProjectTrajectory(traj orrery.Trajectory) orrery.Trajectory {
	out := make(orrery.Trajectory, len(traj))
	for i, p := range traj {
		out[i] = v.Project(geom.Vec{p.X, p.Y, 0})
	}
	return out
}
