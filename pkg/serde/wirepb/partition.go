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

// PartitionId identifies one output partition of one stage.
//
// Fields: job_id = 1, stage_id = 2, partition_id = 3.
type PartitionId struct {
	JobID       string
	StageID     uint32
	PartitionID uint32
}

func (m *PartitionId) Reset()         { *m = PartitionId{} }
func (m *PartitionId) ProtoMessage()  {}
func (m *PartitionId) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *PartitionId) AppendTo(buf []byte) []byte {
	buf = appendString(buf, 1, m.JobID)
	buf = appendUint(buf, 2, uint64(m.StageID))
	buf = appendUint(buf, 3, uint64(m.PartitionID))
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *PartitionId) Unmarshal(data []byte) error {
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
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.PartitionID = uint32(v)
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

// ExecutorMetadata identifies the executor holding a partition.
//
// Fields: id = 1, host = 2, port = 3.
type ExecutorMetadata struct {
	ID   string
	Host string
	Port uint32
}

func (m *ExecutorMetadata) Reset()         { *m = ExecutorMetadata{} }
func (m *ExecutorMetadata) ProtoMessage()  {}
func (m *ExecutorMetadata) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *ExecutorMetadata) AppendTo(buf []byte) []byte {
	buf = appendString(buf, 1, m.ID)
	buf = appendString(buf, 2, m.Host)
	buf = appendUint(buf, 3, uint64(m.Port))
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *ExecutorMetadata) Unmarshal(data []byte) error {
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
			m.ID = string(v)
			data = data[n:]
		case 2:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.Host = string(v)
			data = data[n:]
		case 3:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.Port = uint32(v)
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

// PartitionStats carries per-partition size statistics. Values are
// zig-zag encoded because -1 marks an unreported statistic.
//
// Fields: num_rows = 1 (sint64), num_batches = 2 (sint64),
// num_bytes = 3 (sint64).
type PartitionStats struct {
	NumRows    int64
	NumBatches int64
	NumBytes   int64
}

func (m *PartitionStats) Reset()         { *m = PartitionStats{} }
func (m *PartitionStats) ProtoMessage()  {}
func (m *PartitionStats) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *PartitionStats) AppendTo(buf []byte) []byte {
	buf = appendSint(buf, 1, m.NumRows)
	buf = appendSint(buf, 2, m.NumBatches)
	buf = appendSint(buf, 3, m.NumBytes)
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *PartitionStats) Unmarshal(data []byte) error {
	for len(data) > 0 {
		num, wt, n := protowire.ConsumeTag(data)
		if n < 0 {
			return parseErr(n)
		}
		data = data[n:]
		switch num {
		case 1, 2, 3:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			switch num {
			case 1:
				m.NumRows = protowire.DecodeZigZag(v)
			case 2:
				m.NumBatches = protowire.DecodeZigZag(v)
			case 3:
				m.NumBytes = protowire.DecodeZigZag(v)
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

// PartitionLocation describes where one shuffle output partition
// physically resides.
//
// Fields: partition_id = 1, executor_meta = 2, partition_stats = 3,
// path = 4.
type PartitionLocation struct {
	PartitionId    *PartitionId
	ExecutorMeta   *ExecutorMetadata
	PartitionStats *PartitionStats
	Path           string
}

func (m *PartitionLocation) Reset()         { *m = PartitionLocation{} }
func (m *PartitionLocation) ProtoMessage()  {}
func (m *PartitionLocation) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *PartitionLocation) AppendTo(buf []byte) []byte {
	if m.PartitionId != nil {
		buf = appendMessage(buf, 1, m.PartitionId.AppendTo)
	}
	if m.ExecutorMeta != nil {
		buf = appendMessage(buf, 2, m.ExecutorMeta.AppendTo)
	}
	if m.PartitionStats != nil {
		buf = appendMessage(buf, 3, m.PartitionStats.AppendTo)
	}
	buf = appendString(buf, 4, m.Path)
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *PartitionLocation) Unmarshal(data []byte) error {
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
			m.PartitionId = &PartitionId{}
			if err := m.PartitionId.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		case 2:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.ExecutorMeta = &ExecutorMetadata{}
			if err := m.ExecutorMeta.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		case 3:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.PartitionStats = &PartitionStats{}
			if err := m.PartitionStats.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		case 4:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.Path = string(v)
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
