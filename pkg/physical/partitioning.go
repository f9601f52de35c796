// Copyright 2026 The Quiver Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package physical

import (
	"fmt"
	"strings"
)

// Partitioning describes how a node splits its output across partitions.
// A nil Partitioning means the node does not partition its output, which
// is a distinct state from hash partitioning with zero expressions.
type Partitioning interface {
	fmt.Stringer
	// Count returns the number of output partitions.
	Count() int
	partitioning()
}

// HashPartitioning partitions rows by hashing the given expressions into
// Partitions buckets.
type HashPartitioning struct {
	Exprs      []Expr
	Partitions int
}

func (*HashPartitioning) partitioning() {}

// Count is part of the Partitioning interface.
func (h *HashPartitioning) Count() int { return h.Partitions }

func (h *HashPartitioning) String() string {
	parts := make([]string, len(h.Exprs))
	for i, e := range h.Exprs {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Hash([%s], %d)", strings.Join(parts, ", "), h.Partitions)
}

// RoundRobinPartitioning distributes rows across Partitions buckets in
// arrival order. Shuffle writers never use it; it exists for local
// repartitioning only.
type RoundRobinPartitioning struct {
	Partitions int
}

func (*RoundRobinPartitioning) partitioning() {}

// Count is part of the Partitioning interface.
func (r *RoundRobinPartitioning) Count() int { return r.Partitions }

func (r *RoundRobinPartitioning) String() string {
	return fmt.Sprintf("RoundRobin(%d)", r.Partitions)
}
