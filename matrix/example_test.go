package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/simul8/matrix"
)

// ExampleColumnMeans shows the expected value per period of a 3×2 draw
// matrix (rows = simulations, columns = periods).
func ExampleColumnMeans() {
	draws, _ := matrix.NewDenseFrom([][]float64{
		{90, 110},
		{100, 100},
		{110, 90},
	})
	means, _ := matrix.ColumnMeans(draws)
	fmt.Println(means)
	// Output: [100 100]
}
