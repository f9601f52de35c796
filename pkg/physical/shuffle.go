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

	"github.com/cockroachdb/errors"

	"github.com/quiverdb/quiver/pkg/partition"
)

// ShuffleWriterExec writes its input's rows to partitioned shuffle files
// on the local executor, hashing rows into buckets when an output
// partitioning is set.
//
// The work directory is an executor-local concern: it is never
// transmitted with the plan, and the executor runtime fills it in after
// decode via SetWorkDir.
type ShuffleWriterExec struct {
	jobID   string
	stageID int
	input   ExecutionPlan
	workDir string

	// outputPartitioning is nil or hash; the scheduler never builds a
	// shuffle writer with any other kind.
	outputPartitioning Partitioning
}

// NewShuffleWriterExec wraps input in a shuffle writer for the given job
// and stage.
func NewShuffleWriterExec(
	jobID string, stageID int, input ExecutionPlan, workDir string, outputPartitioning Partitioning,
) (*ShuffleWriterExec, error) {
	if input == nil {
		return nil, errors.New("shuffle writer requires an input plan")
	}
	if stageID < 0 {
		return nil, errors.Newf("shuffle writer stage id must be non-negative, got %d", stageID)
	}
	return &ShuffleWriterExec{
		jobID:              jobID,
		stageID:            stageID,
		input:              input,
		workDir:            workDir,
		outputPartitioning: outputPartitioning,
	}, nil
}

// JobID returns the identifier of the distributed query execution this
// writer belongs to.
func (e *ShuffleWriterExec) JobID() string { return e.jobID }

// StageID returns the writer's position in the distributed execution DAG.
func (e *ShuffleWriterExec) StageID() int { return e.stageID }

// Input returns the subtree whose rows this writer shuffles.
func (e *ShuffleWriterExec) Input() ExecutionPlan { return e.input }

// WorkDir returns the executor-local directory shuffle files are written
// under. Empty on a freshly decoded node.
func (e *ShuffleWriterExec) WorkDir() string { return e.workDir }

// SetWorkDir is called by the executor runtime after decode; the work
// directory never travels with the plan.
func (e *ShuffleWriterExec) SetWorkDir(dir string) { e.workDir = dir }

// ShuffleOutputPartitioning returns the true output partitioning of the
// shuffle, nil if the writer produces a single unpartitioned output.
func (e *ShuffleWriterExec) ShuffleOutputPartitioning() Partitioning {
	return e.outputPartitioning
}

// Schema is part of the ExecutionPlan interface.
func (e *ShuffleWriterExec) Schema() *Schema { return e.input.Schema() }

// Children is part of the ExecutionPlan interface.
func (e *ShuffleWriterExec) Children() []ExecutionPlan { return []ExecutionPlan{e.input} }

func (e *ShuffleWriterExec) String() string {
	return fmt.Sprintf("ShuffleWriterExec: job=%s stage=%d partitioning=%v",
		e.jobID, e.stageID, e.outputPartitioning)
}

// ShuffleReaderExec reads the shuffle output of a completed upstream
// stage. It is a leaf: its data comes from remote shuffle files, not
// from a child subtree.
type ShuffleReaderExec struct {
	stageID int
	// partitions[i] lists the remote locations contributing to output
	// partition i; one partition's data may be split across several
	// upstream producers.
	partitions [][]partition.Location
	schema     *Schema
}

// NewShuffleReaderExec builds a reader over the given per-partition
// locations. The schema is required.
func NewShuffleReaderExec(
	stageID int, partitions [][]partition.Location, schema *Schema,
) (*ShuffleReaderExec, error) {
	if schema == nil {
		return nil, errors.New("shuffle reader requires a schema")
	}
	if stageID < 0 {
		return nil, errors.Newf("shuffle reader stage id must be non-negative, got %d", stageID)
	}
	return &ShuffleReaderExec{stageID: stageID, partitions: partitions, schema: schema}, nil
}

// StageID returns the upstream stage this reader pulls from.
func (e *ShuffleReaderExec) StageID() int { return e.stageID }

// Partitions returns the two-level location structure: outer index is
// the output partition, inner slice the contributing remote locations.
func (e *ShuffleReaderExec) Partitions() [][]partition.Location { return e.partitions }

// Schema is part of the ExecutionPlan interface.
func (e *ShuffleReaderExec) Schema() *Schema { return e.schema }

// Children is part of the ExecutionPlan interface.
func (e *ShuffleReaderExec) Children() []ExecutionPlan { return nil }

func (e *ShuffleReaderExec) String() string {
	return fmt.Sprintf("ShuffleReaderExec: stage=%d partitions=%d", e.stageID, len(e.partitions))
}

// UnresolvedShuffleExec is a planning-time placeholder for a shuffle read
// whose upstream locations are not yet assigned. The scheduler replaces
// every unresolved shuffle with a ShuffleReaderExec once location
// assignment completes; a plan still containing one must never be sent
// to an executor.
type UnresolvedShuffleExec struct {
	stageID              int
	schema               *Schema
	outputPartitionCount int
}

// NewUnresolvedShuffleExec returns a placeholder for reading stage
// stageID, which will have outputPartitionCount output partitions once
// resolved.
func NewUnresolvedShuffleExec(stageID int, schema *Schema, outputPartitionCount int) *UnresolvedShuffleExec {
	return &UnresolvedShuffleExec{
		stageID:              stageID,
		schema:               schema,
		outputPartitionCount: outputPartitionCount,
	}
}

// StageID returns the upstream stage the eventual reader will pull from.
func (e *UnresolvedShuffleExec) StageID() int { return e.stageID }

// OutputPartitionCount returns how many output partitions the eventual
// reader will have.
func (e *UnresolvedShuffleExec) OutputPartitionCount() int { return e.outputPartitionCount }

// Schema is part of the ExecutionPlan interface.
func (e *UnresolvedShuffleExec) Schema() *Schema { return e.schema }

// Children is part of the ExecutionPlan interface.
func (e *UnresolvedShuffleExec) Children() []ExecutionPlan { return nil }

func (e *UnresolvedShuffleExec) String() string {
	return fmt.Sprintf("UnresolvedShuffleExec: stage=%d partitions=%d",
		e.stageID, e.outputPartitionCount)
}
