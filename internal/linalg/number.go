// Package linalg implements fixed-arity vectors and matrices over generic
// numeric element types. All values are small arrays passed by value; no
// operation allocates.
package linalg

import "golang.org/x/exp/constraints"

// Number is the element constraint for vectors and matrices.
type Number interface {
	constraints.Integer | constraints.Float
}

// Float restricts operations that need a square root.
type Float interface {
	constraints.Float
}
