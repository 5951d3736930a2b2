package extract

import "math"

// qefSingularThreshold zeroes QEF solve directions whose singular value
// falls below this (spec §4.6 QEF parameters: threshold = 0.1).
const qefSingularThreshold = 0.1

// qefEpsilon chops near-zero off-diagonal terms during the symmetric
// eigensolve, mirroring the bidiagonalization EPSILON in spec §4.6.
const qefEpsilon = 1e-5

// qef accumulates the normal equations (A^T A, A^T b) for a QEF without
// ever materializing the up-to-12-row A matrix, which is mathematically
// equivalent to the spec's explicit 12x3 SVD (the singular values of A
// are the square roots of the eigenvalues of A^T A) and considerably
// simpler to implement correctly: a direct Golub-Reinsch bidiagonalization
// of a 12x3 matrix buys nothing over eigendecomposing the 3x3 normal
// matrix once rows are folded in one at a time.
type qef struct {
	ata     [3][3]float64 // symmetric
	atb     [3]float64
	massSum [3]float64
	count   int
}

// add folds in one edge intersection: point p (cell-local) with unit
// outward normal n.
func (q *qef) add(p, n [3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			q.ata[i][j] += n[i] * n[j]
		}
	}
	d := dot3(n, p)
	for i := 0; i < 3; i++ {
		q.atb[i] += n[i] * d
	}
	for i := 0; i < 3; i++ {
		q.massSum[i] += p[i]
	}
	q.count++
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// solve returns the minimizer of sum (n_i . (x - p_i))^2 relative to the
// mass point (the mean of the intersection points), by eigendecomposing
// the 3x3 normal matrix (Jacobi rotations) and truncating directions
// whose singular value is below qefSingularThreshold, then back-solving
// in the rotated basis. This is the 3x3-normal-equations equivalent of
// the spec's 12x3 SVD + singularize + back-substitute pipeline.
func (q *qef) solve() (massPoint [3]float64, x [3]float64) {
	if q.count == 0 {
		return [3]float64{}, [3]float64{}
	}
	for i := 0; i < 3; i++ {
		massPoint[i] = q.massSum[i] / float64(q.count)
	}
	// b relative to the mass point: atb already folds in absolute
	// positions via n.p, so the residual we solve for is A^T A * x = A^T b - A^T A * massPoint.
	rhs := [3]float64{}
	for i := 0; i < 3; i++ {
		var s float64
		for j := 0; j < 3; j++ {
			s += q.ata[i][j] * massPoint[j]
		}
		rhs[i] = q.atb[i] - s
	}

	eigvecs, eigvals := jacobiEigen3(q.ata)
	// Pseudo-inverse with singular-value (sqrt(eigenvalue)) thresholding.
	var y [3]float64
	for i := 0; i < 3; i++ {
		var proj float64
		for j := 0; j < 3; j++ {
			proj += eigvecs[j][i] * rhs[j]
		}
		sv := math.Sqrt(math.Max(eigvals[i], 0))
		if sv < qefSingularThreshold {
			y[i] = 0
		} else {
			y[i] = proj / eigvals[i]
		}
	}
	for i := 0; i < 3; i++ {
		var s float64
		for j := 0; j < 3; j++ {
			s += eigvecs[i][j] * y[j]
		}
		x[i] = s
	}
	return massPoint, x
}

// jacobiEigen3 eigendecomposes a symmetric 3x3 matrix via the cyclic
// Jacobi rotation method, returning eigenvectors (columns of the returned
// matrix) and eigenvalues. Off-diagonal terms below qefEpsilon stop the
// iteration early.
func jacobiEigen3(m [3][3]float64) (vecs [3][3]float64, vals [3]float64) {
	a := m
	v := [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	offDiagSum := func() float64 {
		return math.Abs(a[0][1]) + math.Abs(a[0][2]) + math.Abs(a[1][2])
	}

	for iter := 0; iter < 50 && offDiagSum() > qefEpsilon; iter++ {
		for p := 0; p < 2; p++ {
			for qi := p + 1; qi < 3; qi++ {
				if math.Abs(a[p][qi]) < qefEpsilon {
					continue
				}
				theta := (a[qi][qi] - a[p][p]) / (2 * a[p][qi])
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c

				app, aqq, apq := a[p][p], a[qi][qi], a[p][qi]
				a[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
				a[qi][qi] = s*s*app + 2*s*c*apq + c*c*aqq
				a[p][qi] = 0
				a[qi][p] = 0
				for k := 0; k < 3; k++ {
					if k != p && k != qi {
						akp, akq := a[k][p], a[k][qi]
						a[k][p] = c*akp - s*akq
						a[p][k] = a[k][p]
						a[k][qi] = s*akp + c*akq
						a[qi][k] = a[k][qi]
					}
				}
				for k := 0; k < 3; k++ {
					vkp, vkq := v[k][p], v[k][qi]
					v[k][p] = c*vkp - s*vkq
					v[k][qi] = s*vkp + c*vkq
				}
			}
		}
	}
	return v, [3]float64{a[0][0], a[1][1], a[2][2]}
}
