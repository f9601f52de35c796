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

// Package scheduler holds the control-plane types exchanged between the
// scheduler and executor processes, and the plan rewrites the scheduler
// performs as stages complete.
package scheduler

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/quiverdb/quiver/pkg/partition"
)

// Action is one dispatched scheduler/executor control message in its
// internal tagged representation. The wire-level envelope decodes into
// exactly one Action kind.
type Action interface {
	fmt.Stringer
	action()
}

// FetchPartitionAction asks an executor to stream one shuffle
// partition's bytes back to the caller.
type FetchPartitionAction struct {
	Partition partition.ID
	// Path is the shuffle file path on the executor identified by
	// Host/Port.
	Path string
	Host string
	Port uint16
}

func (FetchPartitionAction) action() {}

func (a FetchPartitionAction) String() string {
	return fmt.Sprintf("FetchPartition{%s from %s:%d at %q}", a.Partition, a.Host, a.Port, a.Path)
}

// NewJobID mints the identifier scoping one distributed query execution.
func NewJobID() string {
	return uuid.NewString()
}
