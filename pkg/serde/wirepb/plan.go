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

package wirepb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// ShuffleWriterExecNode is the wire form of a shuffle writer. The input
// subtree is not embedded here: the surrounding plan serializer owns
// child recursion, so the input field is reserved and always absent on
// the wire. The executor-local work directory is likewise never
// transmitted.
//
// Fields: job_id = 1, stage_id = 2, input = 3 (reserved),
// output_partitioning = 4.
type ShuffleWriterExecNode struct {
	JobID   string
	StageID uint32
	// Input is reserved for forward compatibility and must stay nil.
	Input              *PhysicalPlanNode
	OutputPartitioning *HashPartitioning
}

func (m *ShuffleWriterExecNode) Reset()         { *m = ShuffleWriterExecNode{} }
func (m *ShuffleWriterExecNode) ProtoMessage()  {}
func (m *ShuffleWriterExecNode) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *ShuffleWriterExecNode) AppendTo(buf []byte) []byte {
	buf = appendString(buf, 1, m.JobID)
	buf = appendUint(buf, 2, uint64(m.StageID))
	if m.Input != nil {
		buf = appendMessage(buf, 3, m.Input.AppendTo)
	}
	if m.OutputPartitioning != nil {
		buf = appendMessage(buf, 4, m.OutputPartitioning.AppendTo)
	}
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *ShuffleWriterExecNode) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, wt, n := protowire.ConsumeTag(data)
		if n < 0 {
			return parseErr(n)
		}
		data = data[n:]
		switch num {
		case 1:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.JobID = string(v)
			data = data[n:]
		case 2:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.StageID = uint32(v)
			data = data[n:]
		case 3:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.Input = &PhysicalPlanNode{}
			if err := m.Input.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		case 4:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.OutputPartitioning = &HashPartitioning{}
			if err := m.OutputPartitioning.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		default:
			n, err := skipField(data, num, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// ShuffleReaderPartition lists the remote locations contributing to one
// output partition of a shuffle reader.
//
// Fields: location = 1 (repeated).
type ShuffleReaderPartition struct {
	Location []*PartitionLocation
}

func (m *ShuffleReaderPartition) Reset()         { *m = ShuffleReaderPartition{} }
func (m *ShuffleReaderPartition) ProtoMessage()  {}
func (m *ShuffleReaderPartition) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *ShuffleReaderPartition) AppendTo(buf []byte) []byte {
	for _, l := range m.Location {
		buf = appendMessage(buf, 1, l.AppendTo)
	}
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *ShuffleReaderPartition) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, wt, n := protowire.ConsumeTag(data)
		if n < 0 {
			return parseErr(n)
		}
		data = data[n:]
		switch num {
		case 1:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			l := &PartitionLocation{}
			if err := l.Unmarshal(v); err != nil {
				return err
			}
			m.Location = append(m.Location, l)
			data = data[n:]
		default:
			n, err := skipField(data, num, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// ShuffleReaderExecNode is the wire form of a shuffle reader: the stage
// it reads, the two-level location structure, and its output schema.
//
// Fields: stage_id = 1, partition = 2 (repeated), schema = 3.
type ShuffleReaderExecNode struct {
	StageID   uint32
	Partition []*ShuffleReaderPartition
	Schema    *Schema
}

func (m *ShuffleReaderExecNode) Reset()         { *m = ShuffleReaderExecNode{} }
func (m *ShuffleReaderExecNode) ProtoMessage()  {}
func (m *ShuffleReaderExecNode) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *ShuffleReaderExecNode) AppendTo(buf []byte) []byte {
	buf = appendUint(buf, 1, uint64(m.StageID))
	for _, p := range m.Partition {
		buf = appendMessage(buf, 2, p.AppendTo)
	}
	if m.Schema != nil {
		buf = appendMessage(buf, 3, m.Schema.AppendTo)
	}
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *ShuffleReaderExecNode) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, wt, n := protowire.ConsumeTag(data)
		if n < 0 {
			return parseErr(n)
		}
		data = data[n:]
		switch num {
		case 1:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.StageID = uint32(v)
			data = data[n:]
		case 2:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			p := &ShuffleReaderPartition{}
			if err := p.Unmarshal(v); err != nil {
				return err
			}
			m.Partition = append(m.Partition, p)
			data = data[n:]
		case 3:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.Schema = &Schema{}
			if err := m.Schema.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		default:
			n, err := skipField(data, num, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// UnresolvedShuffleExecNode is the wire form of the planning-time
// shuffle placeholder.
//
// Fields: stage_id = 1, schema = 2, output_partition_count = 3.
type UnresolvedShuffleExecNode struct {
	StageID              uint32
	Schema               *Schema
	OutputPartitionCount uint32
}

func (m *UnresolvedShuffleExecNode) Reset()         { *m = UnresolvedShuffleExecNode{} }
func (m *UnresolvedShuffleExecNode) ProtoMessage()  {}
func (m *UnresolvedShuffleExecNode) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *UnresolvedShuffleExecNode) AppendTo(buf []byte) []byte {
	buf = appendUint(buf, 1, uint64(m.StageID))
	if m.Schema != nil {
		buf = appendMessage(buf, 2, m.Schema.AppendTo)
	}
	buf = appendUint(buf, 3, uint64(m.OutputPartitionCount))
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *UnresolvedShuffleExecNode) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, wt, n := protowire.ConsumeTag(data)
		if n < 0 {
			return parseErr(n)
		}
		data = data[n:]
		switch num {
		case 1:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.StageID = uint32(v)
			data = data[n:]
		case 2:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.Schema = &Schema{}
			if err := m.Schema.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		case 3:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.OutputPartitionCount = uint32(v)
			data = data[n:]
		default:
			n, err := skipField(data, num, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}

// PhysicalPlanNode is the one-of envelope over the distributed plan
// node kinds. Exactly one field is set; an envelope with none set is
// malformed.
//
// Fields: shuffle_writer = 1, shuffle_reader = 2, unresolved_shuffle = 3.
type PhysicalPlanNode struct {
	ShuffleWriter     *ShuffleWriterExecNode
	ShuffleReader     *ShuffleReaderExecNode
	UnresolvedShuffle *UnresolvedShuffleExecNode
}

func (m *PhysicalPlanNode) Reset()         { *m = PhysicalPlanNode{} }
func (m *PhysicalPlanNode) ProtoMessage()  {}
func (m *PhysicalPlanNode) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *PhysicalPlanNode) AppendTo(buf []byte) []byte {
	if m.ShuffleWriter != nil {
		buf = appendMessage(buf, 1, m.ShuffleWriter.AppendTo)
	}
	if m.ShuffleReader != nil {
		buf = appendMessage(buf, 2, m.ShuffleReader.AppendTo)
	}
	if m.UnresolvedShuffle != nil {
		buf = appendMessage(buf, 3, m.UnresolvedShuffle.AppendTo)
	}
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *PhysicalPlanNode) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, wt, n := protowire.ConsumeTag(data)
		if n < 0 {
			return parseErr(n)
		}
		data = data[n:]
		switch num {
		case 1:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.ShuffleWriter = &ShuffleWriterExecNode{}
			if err := m.ShuffleWriter.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		case 2:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.ShuffleReader = &ShuffleReaderExecNode{}
			if err := m.ShuffleReader.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		case 3:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.UnresolvedShuffle = &UnresolvedShuffleExecNode{}
			if err := m.UnresolvedShuffle.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		default:
			n, err := skipField(data, num, wt)
			if err != nil {
				return err
			}
			data = data[n:]
		}
	}
	return nil
}
