// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// CompareFunc - three way comparison; must define a strict total
// order over T: negative for a < b, zero for equal, positive for
// a > b.  A comparator that is not antisymmetric and transitive
// produces an undefined tree shape; this is not checked at run time.
type CompareFunc[T any] func(a, b T) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root     *Node[T]
	count    int
	compare  CompareFunc[T]
	balancer balancer[T]
}

// New - create an initially empty AVL tree ordered by the natural
// order of T
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc - create an initially empty AVL tree ordered by a supplied
// comparator
func NewFunc[T any](compare CompareFunc[T]) *Tree[T] {
	return &Tree[T]{
		compare:  compare,
		balancer: avlBalancer[T]{},
	}
}

// NewUnbalanced - create an initially empty tree with no rebalancing,
// ordered by the natural order of T
func NewUnbalanced[T cmp.Ordered]() *Tree[T] {
	return NewUnbalancedFunc[T](cmp.Compare[T])
}

// NewUnbalancedFunc - create an initially empty tree with no
// rebalancing, ordered by a supplied comparator
func NewUnbalancedFunc[T any](compare CompareFunc[T]) *Tree[T] {
	return &Tree[T]{
		compare:  compare,
		balancer: nopBalancer[T]{},
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - cached height of the whole tree, zero when empty
func (tree *Tree[T]) Height() int {
	return tree.root.Height()
}
