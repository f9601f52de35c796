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

package serde

import (
	"github.com/quiverdb/quiver/pkg/partition"
	"github.com/quiverdb/quiver/pkg/physical"
	"github.com/quiverdb/quiver/pkg/serde/wirepb"
	"github.com/quiverdb/quiver/pkg/util/protoutil"
)

// ShufflePhysicalCodec encodes and decodes the three distributed plan
// node kinds: shuffle writer, shuffle reader, and the unresolved
// shuffle placeholder. It is a specialist, not a catch-all: any other
// node kind is an error, never silently dropped.
type ShufflePhysicalCodec struct{}

var _ PhysicalExtensionCodec = ShufflePhysicalCodec{}

// TryEncode is part of the PhysicalExtensionCodec interface. Child
// subtrees are never embedded: the surrounding plan serializer owns
// recursion, so a writer's input field stays absent on the wire.
func (ShufflePhysicalCodec) TryEncode(buf []byte, node physical.ExecutionPlan) ([]byte, error) {
	switch exec := node.(type) {
	case *physical.ShuffleWriterExec:
		// shuffleOutputPartitioning() rather than the node's effective
		// output partitioning: the wire carries the true shuffle scheme.
		var outputPartitioning *wirepb.HashPartitioning
		switch p := exec.ShuffleOutputPartitioning().(type) {
		case nil:
		case *physical.HashPartitioning:
			msg, err := HashPartitioningToProto(p)
			if err != nil {
				return nil, err
			}
			outputPartitioning = msg
		default:
			// Shuffle writers only ever use hash or no partitioning; this
			// is a structural invariant of the scheduler, not something
			// the codec can repair.
			return nil, markf(ErrInternal,
				"invalid partitioning for ShuffleWriterExec: %v", p)
		}
		return protoutil.MarshalAppend(buf, &wirepb.PhysicalPlanNode{
			ShuffleWriter: &wirepb.ShuffleWriterExecNode{
				JobID:              exec.JobID(),
				StageID:            uint32(exec.StageID()),
				Input:              nil,
				OutputPartitioning: outputPartitioning,
			},
		}), nil

	case *physical.ShuffleReaderExec:
		partitions := make([]*wirepb.ShuffleReaderPartition, len(exec.Partitions()))
		for i, locations := range exec.Partitions() {
			p := &wirepb.ShuffleReaderPartition{
				Location: make([]*wirepb.PartitionLocation, len(locations)),
			}
			for j, loc := range locations {
				p.Location[j] = LocationToProto(loc)
			}
			partitions[i] = p
		}
		return protoutil.MarshalAppend(buf, &wirepb.PhysicalPlanNode{
			ShuffleReader: &wirepb.ShuffleReaderExecNode{
				StageID:   uint32(exec.StageID()),
				Partition: partitions,
				Schema:    SchemaToProto(exec.Schema()),
			},
		}), nil

	case *physical.UnresolvedShuffleExec:
		return protoutil.MarshalAppend(buf, &wirepb.PhysicalPlanNode{
			UnresolvedShuffle: &wirepb.UnresolvedShuffleExecNode{
				StageID:              uint32(exec.StageID()),
				Schema:               SchemaToProto(exec.Schema()),
				OutputPartitionCount: uint32(exec.OutputPartitionCount()),
			},
		}), nil

	default:
		return nil, markf(ErrInternal, "unsupported plan type: %v", node)
	}
}

// TryDecode is part of the PhysicalExtensionCodec interface. inputs
// holds the node's already-reconstructed children, in order.
func (ShufflePhysicalCodec) TryDecode(
	data []byte, inputs []physical.ExecutionPlan,
) (physical.ExecutionPlan, error) {
	envelope := &wirepb.PhysicalPlanNode{}
	if err := protoutil.Unmarshal(data, envelope); err != nil {
		return nil, markWrap(ErrMalformed, err, "could not deserialize PhysicalPlanNode")
	}

	switch {
	case envelope.ShuffleWriter != nil:
		writer := envelope.ShuffleWriter
		if len(inputs) != 1 {
			return nil, markf(ErrMissingChild,
				"shuffle writer requires exactly one input, got %d", len(inputs))
		}
		input := inputs[0]
		// Hash expressions are schema-relative, so the partitioning is
		// parsed against the resolved input's schema.
		var outputPartitioning physical.Partitioning
		if writer.OutputPartitioning != nil {
			hash, err := HashPartitioningFromProto(writer.OutputPartitioning, input.Schema())
			if err != nil {
				return nil, err
			}
			outputPartitioning = hash
		}
		// The work dir is deliberately left empty: it is an executor-local
		// concern the receiving runtime fills in after decode.
		return physical.NewShuffleWriterExec(
			writer.JobID, int(writer.StageID), input, "", outputPartitioning)

	case envelope.ShuffleReader != nil:
		reader := envelope.ShuffleReader
		if len(inputs) != 0 {
			return nil, markf(ErrMissingChild,
				"shuffle reader is a leaf, got %d inputs", len(inputs))
		}
		schema, err := SchemaFromProto(reader.Schema)
		if err != nil {
			return nil, err
		}
		locations := make([][]partition.Location, len(reader.Partition))
		for i, p := range reader.Partition {
			locations[i] = make([]partition.Location, len(p.Location))
			for j, msg := range p.Location {
				loc, err := LocationFromProto(msg)
				if err != nil {
					return nil, markWrap(ErrInternal, err, "fail to get partition location")
				}
				locations[i][j] = loc
			}
		}
		return physical.NewShuffleReaderExec(int(reader.StageID), locations, schema)

	case envelope.UnresolvedShuffle != nil:
		unresolved := envelope.UnresolvedShuffle
		if len(inputs) != 0 {
			return nil, markf(ErrMissingChild,
				"unresolved shuffle is a leaf, got %d inputs", len(inputs))
		}
		schema, err := SchemaFromProto(unresolved.Schema)
		if err != nil {
			return nil, err
		}
		return physical.NewUnresolvedShuffleExec(
			int(unresolved.StageID), schema, int(unresolved.OutputPartitionCount)), nil

	default:
		return nil, markf(ErrInternal,
			"could not deserialize PhysicalPlanNode because its physical_plan_type is none")
	}
}
