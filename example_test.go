// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd_test

import (
	"fmt"

	"github.com/dalzilio/robdd"
)

// This example shows the basic usage of the package: build a BDD from a
// formula, reduce it to canonical form, and query it.
func Example_basic() {
	p, _ := robdd.NewVar("p")
	q, _ := robdd.NewVar("q")
	r, _ := robdd.NewVar("r")
	qr, _ := robdd.NewAnd(q, r)
	f, _ := robdd.NewOr(p, qr) // p ∨ (q ∧ r)

	b, _ := robdd.Build(f, nil)
	robdd.Reduce(b)

	fmt.Printf("nodes: %d\n", robdd.CountNodes(b))
	fmt.Printf("satisfiable: %v\n", robdd.IsSatisfiable(b))
	// Output:
	// nodes: 5
	// satisfiable: true
}
