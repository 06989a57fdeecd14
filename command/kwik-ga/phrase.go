// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/kwik-go/kwik/genetic"
)

// printable ASCII range used for phrase genes
const (
	charMin = 32  // space
	charMax = 126 // tilde
)

// charGene - one character position of the candidate phrase
type charGene struct {
	char   byte
	target byte
}

func (g *charGene) Clone() genetic.Gene {
	copied := *g
	return &copied
}

func (g *charGene) Mutate(rng *rand.Rand) {
	g.char = byte(charMin + rng.Intn(charMax-charMin+1))
}

// distance - how far this character is from its target
func (g *charGene) distance() int64 {
	d := int64(g.char) - int64(g.target)
	if d < 0 {
		return -d
	}
	return d
}

// phraseChromosome - a candidate phrase scored against a fixed target
type phraseChromosome struct {
	genes []genetic.Gene
}

// newPhrase - an all-space candidate for the given target phrase
func newPhrase(target string) *phraseChromosome {
	phrase := &phraseChromosome{
		genes: make([]genetic.Gene, 0, len(target)),
	}
	for i := 0; i < len(target); i += 1 {
		phrase.Push(&charGene{
			char:   charMin,
			target: target[i],
		})
	}
	return phrase
}

func (p *phraseChromosome) Base() genetic.Chromosome {
	return &phraseChromosome{
		genes: make([]genetic.Gene, 0, cap(p.genes)),
	}
}

func (p *phraseChromosome) Clone() genetic.Chromosome {
	clone := p.Base()
	for _, gene := range p.genes {
		clone.Push(gene.Clone())
	}
	return clone
}

func (p *phraseChromosome) Len() int {
	return len(p.genes)
}

func (p *phraseChromosome) Gene(index int) genetic.Gene {
	return p.genes[index]
}

func (p *phraseChromosome) Push(gene genetic.Gene) {
	p.genes = append(p.genes, gene)
}

func (p *phraseChromosome) IsValid() bool {
	for _, gene := range p.genes {
		c := gene.(*charGene).char
		if c < charMin || c > charMax {
			return false
		}
	}
	return true
}

func (p *phraseChromosome) Fitness() int64 {
	fitness := int64(0)
	for _, gene := range p.genes {
		fitness += gene.(*charGene).distance()
	}
	return fitness
}

// text - the candidate phrase as a string
func (p *phraseChromosome) text() string {
	buffer := make([]byte, len(p.genes))
	for i, gene := range p.genes {
		buffer[i] = gene.(*charGene).char
	}
	return string(buffer)
}
