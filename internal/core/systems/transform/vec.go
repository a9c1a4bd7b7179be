package transform

import "math"

// Vec3 is a position or scale in 3D space.
type Vec3 struct{ X, Y, Z float32 }

var (
	Zero = Vec3{}
	One  = Vec3{1, 1, 1}
)

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Distance computes the Euclidean distance between two points.
func Distance(a, b Vec3) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	dz := float64(b.Z - a.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
