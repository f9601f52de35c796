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

// Package partition holds the metadata types describing where shuffle
// output partitions physically reside in the cluster. They are shared
// by the scheduler, the physical plan nodes that read shuffle data, and
// the wire-serialization layer.
package partition

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// ID identifies a single output partition of a single stage within a
// distributed query execution.
type ID struct {
	JobID       string
	StageID     int
	PartitionID int
}

func (id ID) String() string {
	return fmt.Sprintf("%s/%d/%d", id.JobID, id.StageID, id.PartitionID)
}

// ExecutorMetadata identifies the executor process holding a partition's
// bytes.
type ExecutorMetadata struct {
	ID   string
	Host string
	Port uint16
}

func (m ExecutorMetadata) String() string {
	return fmt.Sprintf("%s@%s:%d", m.ID, m.Host, m.Port)
}

// StatUnknown is the value a Stats field takes when the producing
// executor did not report it.
const StatUnknown = int64(-1)

// Stats carries the size statistics an executor reports for one
// completed shuffle output partition. Fields are StatUnknown when the
// executor did not measure them.
type Stats struct {
	NumRows    int64
	NumBatches int64
	NumBytes   int64
}

// UnknownStats returns a Stats with every field unknown.
func UnknownStats() Stats {
	return Stats{NumRows: StatUnknown, NumBatches: StatUnknown, NumBytes: StatUnknown}
}

func (s Stats) String() string {
	// Any negative value is unreported, not just StatUnknown: a corrupt
	// count must not render as a multi-exbibyte size.
	size := "unknown size"
	if s.NumBytes >= 0 {
		size = humanize.IBytes(uint64(s.NumBytes))
	}
	rows := "unknown rows"
	if s.NumRows >= 0 {
		rows = fmt.Sprintf("%d rows", s.NumRows)
	}
	return fmt.Sprintf("[%s, %s]", rows, size)
}

// Location describes where one shuffle output partition's data resides:
// which executor produced it, which (job, stage, partition) coordinates
// it belongs to, and the path of the shuffle file on that executor.
//
// Locations are produced by the scheduler once an upstream stage's tasks
// complete, and consumed when building shuffle reader nodes for
// downstream stages.
type Location struct {
	Partition ID
	Executor  ExecutorMetadata
	Stats     Stats
	Path      string
}

func (l Location) String() string {
	return fmt.Sprintf("Location{%s on %s at %q %s}", l.Partition, l.Executor, l.Path, l.Stats)
}
