// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genetic_test

import (
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwik-go/kwik/fault"
	"github.com/kwik-go/kwik/genetic"
	"github.com/kwik-go/kwik/workerpool"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "genetic-test")
	if nil != err {
		panic(err)
	}

	logging := logger.Configuration{
		Directory: dir,
		File:      "genetic-test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(err)
	}

	code := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(code)
}

// a gene holding one small integer
type digit struct {
	n int64
}

func (d *digit) Clone() genetic.Gene {
	return &digit{n: d.n}
}

func (d *digit) Mutate(rng *rand.Rand) {
	d.n = rng.Int63n(10)
}

// a chromosome whose fitness is the distance of its digit sum from a
// target
type sumChromosome struct {
	target int64
	genes  []*digit
}

func (c *sumChromosome) Base() genetic.Chromosome {
	return &sumChromosome{target: c.target}
}

func (c *sumChromosome) Clone() genetic.Chromosome {
	clone := &sumChromosome{target: c.target}
	for _, g := range c.genes {
		clone.genes = append(clone.genes, &digit{n: g.n})
	}
	return clone
}

func (c *sumChromosome) Len() int {
	return len(c.genes)
}

func (c *sumChromosome) Gene(index int) genetic.Gene {
	return c.genes[index]
}

func (c *sumChromosome) Push(gene genetic.Gene) {
	c.genes = append(c.genes, gene.(*digit))
}

func (c *sumChromosome) IsValid() bool {
	return true
}

func (c *sumChromosome) Fitness() int64 {
	sum := int64(0)
	for _, g := range c.genes {
		sum += g.n
	}
	if sum > c.target {
		return sum - c.target
	}
	return c.target - sum
}

func newSumChromosome(target int64, size int) *sumChromosome {
	c := &sumChromosome{target: target}
	for i := 0; i < size; i += 1 {
		c.genes = append(c.genes, &digit{})
	}
	return c
}

func TestNewValidation(t *testing.T) {
	_, err := genetic.New(&sumChromosome{target: 5})
	assert.Equal(t, fault.ErrChromosomeIsEmpty, err)

	_, err = genetic.New(invalidChromosome{newSumChromosome(5, 3)})
	assert.Equal(t, fault.ErrChromosomeIsInvalid, err)

	// a lone individual has nothing to mate with
	for _, size := range []int{-1, 0, 1} {
		_, err = genetic.New(newSumChromosome(5, 3), genetic.WithPopulationSize(size))
		assert.Equalf(t, fault.ErrInvalidPopulationSize, err, "population size: %d", size)
	}

	ratioItems := []struct {
		name   string
		option genetic.Option
	}{
		{"negative mutation", genetic.WithMutationProbability(-0.1)},
		{"mutation above one", genetic.WithMutationProbability(1.5)},
		{"negative elite", genetic.WithEliteRatio(-0.1)},
		{"all elite", genetic.WithEliteRatio(1.0)},
		{"zero mating", genetic.WithMatingRatio(0)},
		{"mating above one", genetic.WithMatingRatio(1.5)},
	}
	for _, item := range ratioItems {
		_, err = genetic.New(newSumChromosome(5, 3), item.option)
		assert.Equalf(t, fault.ErrInvalidSearchRatio, err, "ratio case: %s", item.name)
	}
}

// wrapper failing validation
type invalidChromosome struct {
	*sumChromosome
}

func (invalidChromosome) IsValid() bool { return false }

func TestRunFindsOptimum(t *testing.T) {
	g, err := genetic.New(
		newSumChromosome(5, 1),
		genetic.WithSeed(42),
		genetic.WithMaxRuntime(5*time.Second),
	)
	require.NoError(t, err)

	solution, err := g.Run()
	require.NoError(t, err)
	require.NotNil(t, solution)

	assert.Equal(t, int64(0), solution.Chromosome.Fitness())
	assert.Positive(t, solution.Generations)
	assert.Positive(t, solution.Runtime)
}

func TestRunImproves(t *testing.T) {
	initial := newSumChromosome(100, 20)
	require.Equal(t, int64(100), initial.Fitness())

	g, err := genetic.New(
		initial,
		genetic.WithSeed(7),
		genetic.WithMaxRuntime(5*time.Second),
		genetic.WithConvergenceLimit(200),
	)
	require.NoError(t, err)

	solution, err := g.Run()
	require.NoError(t, err)

	assert.Less(t, solution.Chromosome.Fitness(), int64(100))
	assert.Equal(t, 20, solution.Chromosome.Len())
}

func TestRunDeterministicWithSeed(t *testing.T) {
	run := func() (uint64, int64) {
		g, err := genetic.New(
			newSumChromosome(50, 10),
			genetic.WithSeed(1234),
			genetic.WithMaxRuntime(5*time.Second),
			genetic.WithConvergenceLimit(100),
		)
		require.NoError(t, err)

		solution, err := g.Run()
		require.NoError(t, err)
		return solution.Generations, solution.Chromosome.Fitness()
	}

	generations1, fitness1 := run()
	generations2, fitness2 := run()

	assert.Equal(t, generations1, generations2)
	assert.Equal(t, fitness1, fitness2)
}

func TestRunWithWorkers(t *testing.T) {
	pool, err := workerpool.New(4)
	require.NoError(t, err)
	defer pool.Stop()

	g, err := genetic.New(
		newSumChromosome(30, 6),
		genetic.WithSeed(99),
		genetic.WithMaxRuntime(5*time.Second),
		genetic.WithWorkers(pool),
	)
	require.NoError(t, err)

	solution, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, int64(0), solution.Chromosome.Fitness())
}
