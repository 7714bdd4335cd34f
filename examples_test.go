// Copyright ©2016 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spectra_test

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/timokoch/spectra"
	"github.com/timokoch/spectra/op"
)

// ExampleKrylovSchur finds the three largest-magnitude eigenvalues of
// diag(1, 2, ..., 10), a standard eigenproblem whose answer is known
// exactly: the three largest diagonal entries themselves.
func ExampleKrylovSchur() {
	n := 10
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = float64(i + 1)
	}
	a := op.NewDenseMatrixOp(mat.NewDense(n, n, data))

	ks, err := spectra.New(a, 3, 8)
	if err != nil {
		fmt.Println("New:", err)
		return
	}
	if err := ks.Init(); err != nil {
		fmt.Println("Init:", err)
		return
	}

	nconv, err := ks.Compute(spectra.ComputeOptions{Selection: spectra.LargestMagnitude})
	if err != nil {
		fmt.Println("Compute:", err)
		return
	}

	evals := ks.Eigenvalues()
	rounded := make([]int, len(evals))
	for i, v := range evals {
		rounded[i] = int(math.Round(v))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(rounded)))

	fmt.Println("converged:", nconv)
	fmt.Println("eigenvalues:", rounded)

	// Output:
	// converged: 3
	// eigenvalues: [10 9 8]
}
