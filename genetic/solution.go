// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 the kwik-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package genetic

import (
	"time"
)

// Solution - the outcome of one search run
type Solution struct {
	Chromosome  Chromosome    // fittest chromosome found
	Generations uint64        // generations evaluated
	Runtime     time.Duration // wall clock time of the run
}
