package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform represents a 2D affine transformation
// including translation, rotation and reflection.
type Transform struct {
	data [3 * 3]float64 // stack stronk
}

// TransformIdentity returns the identity transform.
func TransformIdentity() Transform {
	return NewTransform([]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

func NewTransform(data []float64) Transform {
	if data == nil {
		data = make([]float64, 9)
	}
	if len(data) != 9 {
		panic("bad length")
	}
	t := Transform{}
	copy(t.data[:], data)
	return t
}

// Translate returns a transform that translates by v.
func Translate(v r2.Vec) Transform {
	return NewTransform([]float64{
		1, 0, v.X,
		0, 1, v.Y,
		0, 0, 1,
	})
}

// Rotate returns a counterclockwise rotation by a (radians) about the origin.
func Rotate(a float64) Transform {
	s, c := math.Sincos(a)
	return NewTransform([]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// MirrorX returns a reflection about the vertical axis (x -> -x).
func MirrorX() Transform {
	return NewTransform([]float64{
		-1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// Mul multiplies 3x3 matrices. The result applies b first, then a.
func (a Transform) Mul(b Transform) Transform {
	m := Transform{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a.At(i, 0)*b.At(0, j)+a.At(i, 1)*b.At(1, j)+a.At(i, 2)*b.At(2, j))
		}
	}
	return m
}

func (t Transform) ApplyPos(b r2.Vec) r2.Vec {
	return r2.Vec{
		X: t.At(0, 0)*b.X + t.At(0, 1)*b.Y + t.At(0, 2),
		Y: t.At(1, 0)*b.X + t.At(1, 1)*b.Y + t.At(1, 2),
	}
}

// ApplySet returns a new set with t applied to every vector. Order is kept.
func (t Transform) ApplySet(s Set) Set {
	out := make(Set, len(s))
	for i := range s {
		out[i] = t.ApplyPos(s[i])
	}
	return out
}
