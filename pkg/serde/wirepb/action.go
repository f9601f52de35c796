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

// FetchPartition asks an executor to stream one shuffle partition's
// bytes back to the caller.
//
// Fields: job_id = 1, stage_id = 2, partition_id = 3, path = 4,
// host = 5, port = 6.
type FetchPartition struct {
	JobID       string
	StageID     uint32
	PartitionID uint32
	Path        string
	Host        string
	Port        uint32
}

func (m *FetchPartition) Reset()         { *m = FetchPartition{} }
func (m *FetchPartition) ProtoMessage()  {}
func (m *FetchPartition) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *FetchPartition) AppendTo(buf []byte) []byte {
	buf = appendString(buf, 1, m.JobID)
	buf = appendUint(buf, 2, uint64(m.StageID))
	buf = appendUint(buf, 3, uint64(m.PartitionID))
	buf = appendString(buf, 4, m.Path)
	buf = appendString(buf, 5, m.Host)
	buf = appendUint(buf, 6, uint64(m.Port))
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *FetchPartition) Unmarshal(data []byte) error {
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
		case 4:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.Path = string(v)
			data = data[n:]
		case 5:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.Host = string(v)
			data = data[n:]
		case 6:
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

// Action is the envelope for a dispatched remote procedure action:
// one tag per supported action kind, exactly one set.
//
// Fields: fetch_partition = 1.
type Action struct {
	FetchPartition *FetchPartition
}

func (m *Action) Reset()         { *m = Action{} }
func (m *Action) ProtoMessage()  {}
func (m *Action) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *Action) AppendTo(buf []byte) []byte {
	if m.FetchPartition != nil {
		buf = appendMessage(buf, 1, m.FetchPartition.AppendTo)
	}
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *Action) Unmarshal(data []byte) error {
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
			m.FetchPartition = &FetchPartition{}
			if err := m.FetchPartition.Unmarshal(v); err != nil {
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
