// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genetic

import (
	"math/rand"
)

// Gene - the unit of change of the search
type Gene interface {

	// Clone - an independent copy of the gene
	Clone() Gene

	// Mutate - randomise the gene within its acceptable range of
	// values
	Mutate(rng *rand.Rand)
}

// Chromosome - an ordered sequence of genes with a fitness
//
// implementations must keep Base returning the same concrete type as
// the receiver so that offspring can be assembled gene by gene
type Chromosome interface {

	// Base - a new empty chromosome of the same concrete type
	Base() Chromosome

	// Clone - an independent copy of the chromosome
	Clone() Chromosome

	// Len - the number of genes
	Len() int

	// Gene - read one gene
	Gene(index int) Gene

	// Push - append one gene
	Push(gene Gene)

	// IsValid - reject structurally impossible gene combinations;
	// invalid offspring are re-mated
	IsValid() bool

	// Fitness - lower is better, zero is optimal
	Fitness() int64
}
