// Copyright (c) 2026, Geomkernel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"gonum.org/v1/gonum/mat"
)

// MaxIterations is the fixed upper bound on damped Newton steps (spec
// §4.8.3): the loop does not monitor ‖F‖ for early exit beyond the
// optional ‖Δ‖∞ < earlyExitTol check below.
const MaxIterations = 100

// earlyExitTol is the optional early-exit threshold on the infinity norm
// of a Newton step. Results with early exit are required to be within
// 1e-6 of the iteration-100 result; in practice steps below this bound
// are themselves below 1e-6, so cutting the remaining iterations short
// changes nothing observable.
const earlyExitTol = 1e-9

// svdRankTol scales the largest singular value to decide which singular
// values are numerically zero when building the Moore-Penrose
// pseudoinverse; singular values below this fraction of the max are
// treated as rank-deficient directions and dropped from the solve,
// yielding the minimum-norm least-squares step.
const svdRankTol = 1e-12

// Solve runs damped Newton iteration to a root of the assembled system
// and writes the result back into the live object map. It mutates only
// Node.Point; it never touches FixedNode.Point, constraints, or
// ToolState (the Locality contract of spec §4.8.3).
func (s *System) Solve() {
	cols := len(s.x)
	rows := len(s.rows)
	if cols == 0 || rows == 0 {
		return
	}

	x := make([]float64, cols)
	copy(x, s.x)

	jac := mat.NewDense(rows, cols, nil)
	f := mat.NewVecDense(rows, nil)
	rowBuf := make([]float64, cols)

	for iter := 0; iter < MaxIterations; iter++ {
		for i, r := range s.rows {
			for j := range rowBuf {
				rowBuf[j] = 0
			}
			r.Jacobian(x, rowBuf)
			jac.SetRow(i, rowBuf)
			f.SetVec(i, -r.Residual(x))
		}

		delta, ok := pseudoInverseSolve(jac, f)
		if !ok {
			break
		}

		maxAbs := 0.0
		for i, d := range delta {
			x[i] += d
			if a := abs(d); a > maxAbs {
				maxAbs = a
			}
		}
		if maxAbs < earlyExitTol {
			break
		}
	}

	for _, wb := range s.writebacks {
		wb(x)
	}
}

// pseudoInverseSolve returns the minimum-norm least-squares solution of
// J*delta = f via the SVD-based Moore-Penrose pseudoinverse: delta =
// V * Σ⁺ * Uᵀ * f. gonum's SVD natively factors rectangular matrices of
// either shape, so no manual transpose is needed to keep rows >= cols
// (the "Auto-transpose" contract of spec §4.8.3 is satisfied by the
// backend itself).
func pseudoInverseSolve(j *mat.Dense, f *mat.VecDense) ([]float64, bool) {
	var svd mat.SVD
	if !svd.Factorize(j, mat.SVDThin) {
		return nil, false
	}

	values := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	k := len(values)
	maxSV := 0.0
	for _, sv := range values {
		if sv > maxSV {
			maxSV = sv
		}
	}
	threshold := maxSV * svdRankTol

	rows, _ := u.Dims()
	cols, _ := v.Dims()

	utF := make([]float64, k)
	for col := 0; col < k; col++ {
		sum := 0.0
		for row := 0; row < rows; row++ {
			sum += u.At(row, col) * f.AtVec(row)
		}
		if values[col] > threshold {
			utF[col] = sum / values[col]
		} else {
			utF[col] = 0
		}
	}

	delta := make([]float64, cols)
	for row := 0; row < cols; row++ {
		sum := 0.0
		for col := 0; col < k; col++ {
			sum += v.At(row, col) * utF[col]
		}
		delta[row] = sum
	}
	return delta, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
