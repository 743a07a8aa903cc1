package phylo_test

import (
	"fmt"

	"github.com/paleogo/taphos/phylo"
)

// ExampleNew builds the four-tip tree ((A,B),(C,D)) and reads a few ages.
// Ages count backwards from the present: the deepest tip sits at 0 and the
// root at the tree height.
func ExampleNew() {
	tr, err := phylo.New(4, []phylo.Edge{
		{Parent: 4, Child: 5, Length: 1},
		{Parent: 5, Child: 0, Length: 2},
		{Parent: 5, Child: 1, Length: 2},
		{Parent: 4, Child: 6, Length: 1},
		{Parent: 6, Child: 2, Length: 2},
		{Parent: 6, Child: 3, Length: 2},
	}, phylo.WithTipLabels([]string{"A", "B", "C", "D"}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("root:", tr.Root())
	fmt.Println("root age:", tr.Age(tr.Root()))
	fmt.Println("tip A age:", tr.Age(0))
	fmt.Println("ultrametric:", tr.IsUltrametric(1e-9))
	// Output:
	// root: 4
	// root age: 3
	// tip A age: 0
	// ultrametric: true
}

// ExampleTree_KeepTips prunes the tree down to three tips. The spliced-out
// cherry stem is merged into the branch above C, preserving the height.
func ExampleTree_KeepTips() {
	tr, _ := phylo.New(4, []phylo.Edge{
		{Parent: 4, Child: 5, Length: 1},
		{Parent: 5, Child: 0, Length: 2},
		{Parent: 5, Child: 1, Length: 2},
		{Parent: 4, Child: 6, Length: 1},
		{Parent: 6, Child: 2, Length: 2},
		{Parent: 6, Child: 3, Length: 2},
	}, phylo.WithTipLabels([]string{"A", "B", "C", "D"}))

	pruned, err := tr.KeepTips([]int{0, 1, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("tips:", pruned.Labels())
	l, _ := pruned.EdgeLength(2)
	fmt.Println("branch above C:", l)
	// Output:
	// tips: [A B C]
	// branch above C: 3
}
