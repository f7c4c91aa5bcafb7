package formula_test

import (
	"fmt"

	"github.com/katalvlaran/simul8/formula"
	"github.com/katalvlaran/simul8/table"
)

func ExampleQuery_Evaluate() {
	tb, _ := table.NewTable(
		[]string{"year1", "year2"},
		[]string{"demand", "price", "cost"},
		[][]float64{{100, 120}, {9.5, 10}, {6, 6.5}},
	)
	q := formula.MustParse("select demand*(price-cost) as cash from df")

	out, err := q.Evaluate(tb)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(out)
	// Output:
	// period	cash
	// year1	350
	// year2	420
}

func ExampleParse() {
	q, err := formula.Parse("select demand, price, demand*price as sales from df")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(q.Inputs())
	fmt.Println(q.Outputs())

	_, err = formula.Parse("select demand price from df")
	fmt.Println(err)
	// Output:
	// [demand price]
	// [demand price sales]
	// formula: expected FROM, found identifier "price" at offset 14
}
