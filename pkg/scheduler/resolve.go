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

package scheduler

import (
	"github.com/cockroachdb/errors"
	"github.com/go-kit/log"

	"github.com/quiverdb/quiver/pkg/partition"
	"github.com/quiverdb/quiver/pkg/physical"
)

// ResolveShuffles replaces every unresolved shuffle placeholder in plan
// with a shuffle reader over the completed upstream stage's locations.
// locations maps a stage id to its two-level location structure (outer
// index = output partition). It is an error for a placeholder to
// reference a stage with no recorded locations: the caller must only
// resolve a plan once all of its upstream stages have completed.
//
// The returned plan shares unmodified subtrees with the input.
func ResolveShuffles(
	logger log.Logger,
	plan physical.ExecutionPlan,
	locations map[int][][]partition.Location,
) (physical.ExecutionPlan, error) {
	switch node := plan.(type) {
	case *physical.UnresolvedShuffleExec:
		locs, ok := locations[node.StageID()]
		if !ok {
			return nil, errors.Newf(
				"no partition locations recorded for stage %d", node.StageID())
		}
		if len(locs) != node.OutputPartitionCount() {
			return nil, errors.Newf(
				"stage %d resolved to %d output partitions, placeholder expects %d",
				node.StageID(), len(locs), node.OutputPartitionCount())
		}
		reader, err := physical.NewShuffleReaderExec(node.StageID(), locs, node.Schema())
		if err != nil {
			return nil, err
		}
		_ = logger.Log(
			"msg", "resolved shuffle",
			"stage", node.StageID(),
			"partitions", len(locs),
		)
		return reader, nil

	case *physical.ShuffleWriterExec:
		input, err := ResolveShuffles(logger, node.Input(), locations)
		if err != nil {
			return nil, err
		}
		if input == node.Input() {
			return node, nil
		}
		return physical.NewShuffleWriterExec(
			node.JobID(), node.StageID(), input, node.WorkDir(), node.ShuffleOutputPartitioning())

	default:
		// Remaining node kinds are only rewritten if a descendant was; the
		// engine-native nodes this layer sees are leaves.
		if len(plan.Children()) == 0 {
			return plan, nil
		}
		return nil, errors.Newf("cannot resolve shuffles under node %T", plan)
	}
}
