package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// RotationMatrix returns the 2×2 rotation matrix for an anticlockwise
// rotation by theta radians, in the [[sin, cos], [-cos, sin]] layout
// used by SquareVertices.
func RotationMatrix(theta float64) [2][2]float64 {
	sin, cos := math.Sin(theta), math.Cos(theta)
	return [2][2]float64{{sin, cos}, {-cos, sin}}
}

// matMul returns the product a·b of two 2×2 matrices.
func matMul(a, b [2][2]float64) [2][2]float64 {
	var out [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}
	return out
}

// matVec returns the product m·v of a 2×2 matrix and a 2-vector.
func matVec(m [2][2]float64, v [2]float64) [2]float64 {
	return [2]float64{
		m[0][0]*v[0] + m[0][1]*v[1],
		m[1][0]*v[0] + m[1][1]*v[1],
	}
}

// SquareVertices returns the four vertices of a square centred on ctr
// with the given side length, rotated anticlockwise by thetaDeg
// degrees. Vertex order is lower-left, upper-left, upper-right,
// lower-right.
func SquareVertices(ctr orb.Point, side, thetaDeg float64) [4]orb.Point {
	rot := RotationMatrix(thetaDeg * degToRad)
	half := [2]float64{side / 2, side / 2}

	var vertices [4]orb.Point
	for i := 0; i < 4; i++ {
		// Each vertex is the rotated half-diagonal swept a quarter turn
		// further clockwise than the previous one.
		v := matVec(matMul(rot, RotationMatrix(-0.5*math.Pi*float64(i))), half)
		vertices[i] = orb.Point{ctr.X() + v[0], ctr.Y() + v[1]}
	}
	return vertices
}

// SquareVerticesCalc is SquareVertices by elementary trigonometry
// instead of matrix products. The two agree to floating-point
// round-off.
func SquareVerticesCalc(ctr orb.Point, side, thetaDeg float64) [4]orb.Point {
	theta := thetaDeg * degToRad
	sin, cos := math.Sin(theta), math.Cos(theta)
	x, y := ctr.X(), ctr.Y()

	ll := orb.Point{x + 0.5*side*(sin-cos), y - 0.5*side*(sin+cos)}
	ul := orb.Point{x - 0.5*side*(sin+cos), y - 0.5*side*(sin-cos)}
	ur := orb.Point{x - 0.5*side*(sin-cos), y + 0.5*side*(sin+cos)}
	lr := orb.Point{x + 0.5*side*(sin+cos), y + 0.5*side*(sin-cos)}

	return [4]orb.Point{ll, ul, ur, lr}
}
