// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genetic - a generational genetic algorithm search loop
//
// A caller supplies an initial chromosome, a sequence of genes with a
// fitness where lower is better and zero is optimal.  Each generation
// carries the elite unchanged and fills the remainder by mating
// random pairs from the fitter part of the population, cloning genes
// from either parent or mutating one.  The loop stops on an optimal
// chromosome, on a converged population or on the runtime limit.
//
// Fitness evaluation can be fanned out over a workerpool.Pool when
// scoring a chromosome is expensive.
package genetic
