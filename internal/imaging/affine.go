package imaging

// Matrix is a 3x3 affine transform in row-major order.
type Matrix [9]float64

// Scaling Matrix:
//
//  sx  0   0
//  0   sy  0
//  0   0   1
//
func Scaling(sx, sy float64) Matrix {
	return Matrix{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Apply transforms the point x,y.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	tx := m[0]*x + m[1]*y + m[2]
	ty := m[3]*x + m[4]*y + m[5]
	return tx, ty
}

// ScaleLength transforms a horizontal distance.
func (m Matrix) ScaleLength(v float64) float64 {
	return m[0] * v
}
