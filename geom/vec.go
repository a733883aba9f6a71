/*package geom contains the vector algebra used by the integrator.

All operations except Clear return fresh values and leave their arguments
untouched.
*/
package geom

import (
	"fmt"
	"math"
)

// Vec is a three dimensional vector with components x, y, z.
type Vec [3]float64

// NewVec returns the vector (x, y, z).
func NewVec(x, y, z float64) Vec { return Vec{x, y, z} }

func (v Vec) X() float64 { return v[0] }
func (v Vec) Y() float64 { return v[1] }
func (v Vec) Z() float64 { return v[2] }

// Add returns the component-wise sum v + u.
func (v Vec) Add(u Vec) Vec {
	return Vec{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns the component-wise difference v - u.
func (v Vec) Sub(u Vec) Vec {
	return Vec{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Scale returns v with every component multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{v[0] * k, v[1] * k, v[2] * k}
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Clear sets every component of v to zero. This is the only Vec method which
// modifies its receiver.
func (v *Vec) Clear() {
	v[0], v[1], v[2] = 0, 0, 0
}

// Equal reports whether v and u are exactly equal, component by component.
// No tolerance is applied.
func (v Vec) Equal(u Vec) bool {
	return v[0] == u[0] && v[1] == u[1] && v[2] == u[2]
}

// IsFinite returns false if any component is NaN or infinite.
func (v Vec) IsFinite() bool {
	for i := 0; i < 3; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) { return false }
	}
	return true
}

func (v Vec) String() string {
	return fmt.Sprintf("(%.3g,%.3g,%.3g)", v[0], v[1], v[2])
}
