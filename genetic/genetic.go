// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genetic

import (
	"math/rand"
	"sort"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/kwik-go/kwik/fault"
	"github.com/kwik-go/kwik/workerpool"
)

// search loop defaults
const (
	defaultPopulationSize      = 100
	defaultConvergenceLimit    = 1000
	defaultMaxRuntime          = 30 * time.Second
	defaultMutationProbability = 0.1
	defaultEliteRatio          = 0.1
	defaultMatingRatio         = 0.5
)

// one population member with its cached score
type individual struct {
	chromosome Chromosome
	fitness    int64
}

// Genetic - type to hold one configured search
type Genetic struct {
	log *logger.L

	initial    Chromosome
	population []individual

	populationSize      int
	convergenceLimit    uint64
	maxRuntime          time.Duration
	mutationProbability float64
	eliteRatio          float64
	matingRatio         float64

	rng  *rand.Rand
	pool *workerpool.Pool
}

// Option - adjust one search parameter
type Option func(*Genetic)

// WithPopulationSize - number of individuals per generation
func WithPopulationSize(size int) Option {
	return func(g *Genetic) { g.populationSize = size }
}

// WithConvergenceLimit - generations without improvement before
// stopping
func WithConvergenceLimit(limit uint64) Option {
	return func(g *Genetic) { g.convergenceLimit = limit }
}

// WithMaxRuntime - hard limit on the whole run
func WithMaxRuntime(d time.Duration) Option {
	return func(g *Genetic) { g.maxRuntime = d }
}

// WithMutationProbability - chance a mated gene mutates instead of
// copying a parent
func WithMutationProbability(p float64) Option {
	return func(g *Genetic) { g.mutationProbability = p }
}

// WithEliteRatio - share of each generation carried over unchanged
func WithEliteRatio(ratio float64) Option {
	return func(g *Genetic) { g.eliteRatio = ratio }
}

// WithMatingRatio - share of the population eligible as parents
func WithMatingRatio(ratio float64) Option {
	return func(g *Genetic) { g.matingRatio = ratio }
}

// WithSeed - deterministic random sequence, for tests
func WithSeed(seed int64) Option {
	return func(g *Genetic) { g.rng = rand.New(rand.NewSource(seed)) }
}

// WithWorkers - fan fitness evaluation out over a pool
func WithWorkers(pool *workerpool.Pool) Option {
	return func(g *Genetic) { g.pool = pool }
}

// New - create a search seeded with copies of an initial chromosome
func New(initial Chromosome, options ...Option) (*Genetic, error) {
	if 0 == initial.Len() {
		return nil, fault.ErrChromosomeIsEmpty
	}
	if !initial.IsValid() {
		return nil, fault.ErrChromosomeIsInvalid
	}

	log := logger.New("genetic")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	g := &Genetic{
		log:                 log,
		initial:             initial,
		populationSize:      defaultPopulationSize,
		convergenceLimit:    defaultConvergenceLimit,
		maxRuntime:          defaultMaxRuntime,
		mutationProbability: defaultMutationProbability,
		eliteRatio:          defaultEliteRatio,
		matingRatio:         defaultMatingRatio,
		rng:                 rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, option := range options {
		option(g)
	}

	// mating needs two distinct parents, so anything below two can
	// never run a generation
	if g.populationSize < 2 {
		return nil, fault.ErrInvalidPopulationSize
	}
	if g.mutationProbability < 0 || g.mutationProbability > 1 {
		return nil, fault.ErrInvalidSearchRatio
	}
	if g.eliteRatio < 0 || g.eliteRatio >= 1 {
		return nil, fault.ErrInvalidSearchRatio
	}
	if g.matingRatio <= 0 || g.matingRatio > 1 {
		return nil, fault.ErrInvalidSearchRatio
	}

	g.population = make([]individual, g.populationSize)
	for i := range g.population {
		g.population[i] = individual{chromosome: initial.Clone()}
	}
	g.scorePopulation(g.population)
	sortByFitness(g.population)

	return g, nil
}

// Run - iterate generations until the fittest chromosome is optimal,
// the population converges or the runtime limit passes
func (g *Genetic) Run() (*Solution, error) {
	start := time.Now()

	if err := g.iterate(start); nil != err {
		return nil, err
	}

	generations := uint64(1)
	convergence := uint64(0)
	lastFitness := g.population[0].fitness

	for 0 != g.population[0].fitness &&
		convergence < g.convergenceLimit &&
		time.Since(start) < g.maxRuntime {

		if err := g.iterate(start); nil != err {
			return nil, err
		}

		if fitness := g.population[0].fitness; fitness == lastFitness {
			convergence += 1
		} else {
			g.log.Debugf("generation %d: fitness %d", generations, fitness)
			lastFitness = fitness
			convergence = 0
		}

		generations += 1
	}

	elapsed := time.Since(start)
	g.log.Infof("finished after %d generations in %s: fitness %d",
		generations, elapsed, g.population[0].fitness)

	solution := &Solution{
		Chromosome:  g.population[0].chromosome.Clone(),
		Generations: generations,
		Runtime:     elapsed,
	}
	return solution, nil
}

// build the next generation: elites first, then offspring of random
// pairs from the mating pool
func (g *Genetic) iterate(start time.Time) error {
	elite := int(float64(g.populationSize) * g.eliteRatio)

	generation := make([]individual, 0, g.populationSize)
	generation = append(generation, g.population[:elite]...)

	offspring := make([]individual, 0, g.populationSize-elite)
	for i := 0; i < g.populationSize-elite; i += 1 {
		index1, index2 := g.matingPair()

		child, err := g.mate(g.population[index1], g.population[index2], start)
		if nil != err {
			return err
		}
		offspring = append(offspring, child)
	}

	g.scorePopulation(offspring)
	generation = append(generation, offspring...)
	sortByFitness(generation)

	g.population = generation
	return nil
}

// two distinct random indexes within the mating pool
func (g *Genetic) matingPair() (int, int) {
	pool := int(float64(g.populationSize) * g.matingRatio)
	if pool < 2 {
		pool = 2
	}

	index1 := g.rng.Intn(pool)
	index2 := g.rng.Intn(pool)
	for index1 == index2 {
		index2 = g.rng.Intn(pool)
	}
	return index1, index2
}

// assemble a child gene by gene, re-mating while the combination is
// invalid; gives up when the run's time budget is exhausted
func (g *Genetic) mate(parent1, parent2 individual, start time.Time) (individual, error) {
	n := parent1.chromosome.Len()

	for {
		child := parent1.chromosome.Base()

		for i := 0; i < n; i += 1 {
			r := g.rng.Float64()

			var gene Gene
			switch {
			case r < (1.0-g.mutationProbability)/2:
				gene = parent1.chromosome.Gene(i).Clone()
			case r < 1.0-g.mutationProbability:
				gene = parent2.chromosome.Gene(i).Clone()
			default:
				gene = parent1.chromosome.Gene(i).Clone()
				gene.Mutate(g.rng)
			}
			child.Push(gene)
		}

		if child.IsValid() {
			return individual{chromosome: child}, nil
		}
		if time.Since(start) > g.maxRuntime {
			return individual{}, fault.ErrMatingFailed
		}
	}
}

// cache the fitness of every individual, over the pool when one is
// configured
func (g *Genetic) scorePopulation(population []individual) {
	if nil == g.pool {
		for i := range population {
			population[i].fitness = population[i].chromosome.Fitness()
		}
		return
	}

	ids := make([]workerpool.JobID, 0, len(population))
	for i := range population {
		i := i
		id, err := g.pool.Add(func() {
			population[i].fitness = population[i].chromosome.Fitness()
		})
		if nil != err {
			// stopped pool: score inline rather than fail the run
			population[i].fitness = population[i].chromosome.Fitness()
			continue
		}
		ids = append(ids, id)
	}
	for _, id := range ids {
		_ = g.pool.WaitJob(id)
	}
}

func sortByFitness(population []individual) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].fitness < population[j].fitness
	})
}
