// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strings"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// String - in-order dump of value, parent value and cached height
//
// debugging aid only, the exact layout carries no stability guarantee
func (tree *Tree[T]) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "avl.Tree[%d]<", tree.count)
	dump(&s, tree.root, tree.root.first())
	s.WriteByte('>')
	return s.String()
}

func dump[T any](s *strings.Builder, tree *Node[T], noComma *Node[T]) {
	if nil == tree {
		return
	}
	dump(s, tree.left, noComma)
	if noComma != tree {
		s.WriteString(", ")
	}
	if nil == tree.up {
		fmt.Fprintf(s, "%v (nil - %d)", tree.value, tree.height)
	} else {
		fmt.Fprintf(s, "%v (%v - %d)", tree.value, tree.up.value, tree.height)
	}
	dump(s, tree.right, noComma)
}

// Print - display an ASCII graphic representation of the tree
// returns the maximum depth of the tree
func (tree *Tree[T]) Print() int {
	return printTree(tree.root, "", root)
}

// internal print
func printTree[T any](tree *Node[T], prefix string, br branch) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(tree.right, prefix+t, right)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != tree.up {
		up = tree.up.value
	}
	fmt.Printf("%v ^%v #%d\n", tree.value, up, tree.height)
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(tree.left, prefix+t, left)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
