// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd defines a concrete type for Reduced Ordered Binary Decision
Diagrams (ROBDD), a canonical graph representation of a Boolean function over
a fixed variable order.

Basics

A BDD is built from an already-parsed propositional formula (see type
Formula) and a Variable Order (see type Order) with function Build. The
result's Root is a Handle into the BDD's Store; two handles denote the same
Boolean function if and only if they are equal, once the BDD has been
reduced to canonical form with function Reduce.

Canonicity

Canonicity is the whole point of the exercise: it lets Equal, and Equivalent
on two BDDs sharing a Store, answer "do these two formulas mean the same
thing" in time proportional to a single integer comparison, instead of a
satisfiability check. It rests on
hash-consing: the Store never allocates two internal nodes with the same
triple (variable, low, high), and Reduce collapses every redundant node and
every pair of isomorphic subgraphs before handing a BDD back to the caller.

Combining two canonical BDDs with a binary Boolean operator (Apply) again
produces a canonical BDD, so callers can chain and/or/not/implies/iff freely
without ever calling Reduce themselves.

Scope

This package is the core: the node store, the reduction algorithm, Apply, and
the formula-to-BDD builder. It does not parse concrete surface syntax, does
not render Graphviz, and has no CLI front-end — callers are expected to build
a Formula AST themselves (or generate one) and hand it to Build.
*/
package robdd
