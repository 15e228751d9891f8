package math

import (
	"time"

	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
)

const (
	/** @brief A default float comparison tolerance. */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3) MulScalar(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalized returns a unit-length copy of v. A zero vector is
// returned unchanged rather than dividing by zero.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.MulScalar(1.0 / length)
}

// Compare returns true if all components of the two vectors are
// within the given tolerance of each other.
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	return math32.Abs(v.X-other.X) <= tolerance &&
		math32.Abs(v.Y-other.Y) <= tolerance &&
		math32.Abs(v.Z-other.Z) <= tolerance
}

var rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

func RandomInRange(min, max int32) int32 {
	return min + rng.Int31n(max-min+1)
}

func FRandomInRange(min, max float32) float32 {
	return min + rng.Float32()*(max-min)
}
