package msa_test

import (
	"fmt"

	"github.com/katalvlaran/linealign/msa"
	"github.com/katalvlaran/linealign/subst"
)

// ExampleAlignAll folds three readings of the same line into one block.
func ExampleAlignAll() {
	table, err := subst.FromMap(map[string]float64{"aa": 0, "ab": -1, "bb": 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	block, err := msa.AlignAll([]string{"aba", "aa", "ab"}, table,
		msa.WithGapOpen(-1), msa.WithGapSkew(-1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, row := range block {
		fmt.Println(row)
	}
	// Output:
	// aba
	// a⋄a
	// ab⋄
}

// ExampleAlignPair shows a missing table entry surfacing as an error.
func ExampleAlignPair() {
	table := subst.Uniform("ab", 1, -1)
	_, _, err := msa.AlignPair("ab", "ac", table)
	fmt.Println(err)
	// Output:
	// msa: sequence 1: subst: missing substitution entry for 'a' and 'c'
}
