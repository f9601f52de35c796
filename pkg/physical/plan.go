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

// Package physical defines the engine's physical plan model: the
// recursive plan-node tree built by the scheduler, the distributed
// shuffle nodes that cross process boundaries, and the schema,
// expression, and partitioning types the nodes carry.
package physical

import "fmt"

// ExecutionPlan is one node of a physical plan tree. Nodes have zero or
// more ordered children and a fixed output schema.
type ExecutionPlan interface {
	fmt.Stringer
	// Schema returns the node's output schema.
	Schema() *Schema
	// Children returns the node's ordered inputs. Leaves return nil.
	Children() []ExecutionPlan
}

// EmptyExec is a native leaf producing no rows. It stands in for an
// arbitrary engine-native subtree in tests and examples.
type EmptyExec struct {
	schema *Schema
}

// NewEmptyExec returns an EmptyExec with the given output schema.
func NewEmptyExec(schema *Schema) *EmptyExec {
	return &EmptyExec{schema: schema}
}

// Schema is part of the ExecutionPlan interface.
func (e *EmptyExec) Schema() *Schema { return e.schema }

// Children is part of the ExecutionPlan interface.
func (e *EmptyExec) Children() []ExecutionPlan { return nil }

func (e *EmptyExec) String() string {
	return fmt.Sprintf("EmptyExec: schema=%s", e.schema)
}

// IsExecutable reports whether plan can be shipped to an executor: a
// tree still containing unresolved shuffle placeholders must not run.
func IsExecutable(plan ExecutionPlan) bool {
	if _, ok := plan.(*UnresolvedShuffleExec); ok {
		return false
	}
	for _, child := range plan.Children() {
		if !IsExecutable(child) {
			return false
		}
	}
	return true
}
