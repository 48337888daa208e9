package numgeom

// Jacobian is a 2×2 matrix of partial derivatives, indexed [row][column].
// Row i holds the partials of the i-th function, column j the partials with
// respect to the j-th variable.
type Jacobian [2][2]float64

// Det returns the determinant J00·J11 − J01·J10.
func (j Jacobian) Det() float64 {
	return j[0][0]*j[1][1] - j[0][1]*j[1][0]
}

// solveWithDet solves J·d = (f1, f2) by Cramer's rule, using a determinant
// that the caller has already computed and checked.
func (j Jacobian) solveWithDet(f1, f2, det float64) (dx, dy float64) {
	dx = (j[1][1]*f1 - j[0][1]*f2) / det
	dy = (-j[1][0]*f1 + j[0][0]*f2) / det
	return dx, dy
}

// mat3 is a 3×3 matrix, indexed [row][column]. It only
// supports what the normal equations of the circle fit need.
type mat3 [3][3]float64

// det expands the determinant along the first row.
func (m mat3) det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// withColumn returns a copy of m with column c replaced by v.
func (m mat3) withColumn(c int, v [3]float64) mat3 {
	for r := range 3 {
		m[r][c] = v[r]
	}
	return m
}

// cramer solves m·x = b given det = m.det() != 0.
func (m mat3) cramer(b [3]float64, det float64) [3]float64 {
	var x [3]float64
	for c := range 3 {
		x[c] = m.withColumn(c, b).det() / det
	}
	return x
}
