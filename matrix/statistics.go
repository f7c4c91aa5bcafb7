// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Per-column and per-row means over a matrix, used to report the expected
//     value of a simulated column per period (column = period, row = simulation).
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-path reads the flat buffer directly.

package matrix

import "fmt"

const (
	opColumnMeans = "ColumnMeans"
	opRowMeans    = "RowMeans"
)

func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
//
// Behavior highlights:
//   - NaN/Inf propagate (no masking); sanitize upstream if undesired.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors on the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	var i, j int

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				v, err := X.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// RowMeans returns Σ_j X[i,j] / c for every row i.
// Complexity: Time O(r*c), Space O(r).
func RowMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, r)
	invC := 1.0 / float64(c)
	var i, j int
	for i = 0; i < r; i++ {
		var sum float64
		for j = 0; j < c; j++ {
			v, err := X.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opRowMeans, err)
			}
			sum += v
		}
		means[i] = sum * invC
	}

	return means, nil
}
