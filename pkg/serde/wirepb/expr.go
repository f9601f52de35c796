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
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// ColumnExprNode is the wire form of a column reference.
//
// Fields: name = 1, index = 2.
type ColumnExprNode struct {
	Name  string
	Index uint32
}

func (m *ColumnExprNode) Reset()         { *m = ColumnExprNode{} }
func (m *ColumnExprNode) ProtoMessage()  {}
func (m *ColumnExprNode) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *ColumnExprNode) AppendTo(buf []byte) []byte {
	buf = appendString(buf, 1, m.Name)
	buf = appendUint(buf, 2, uint64(m.Index))
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *ColumnExprNode) Unmarshal(data []byte) error {
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
			m.Name = string(v)
			data = data[n:]
		case 2:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.Index = uint32(v)
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

// LiteralExprNode is the wire form of a constant datum. Type selects
// which value field is meaningful.
//
// Fields: type = 1, int64_value = 2 (sint64), float64_value = 3
// (fixed64), utf8_value = 4, bool_value = 5.
type LiteralExprNode struct {
	Type         DataType
	Int64Value   int64
	Float64Value float64
	Utf8Value    string
	BoolValue    bool
}

func (m *LiteralExprNode) Reset()         { *m = LiteralExprNode{} }
func (m *LiteralExprNode) ProtoMessage()  {}
func (m *LiteralExprNode) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *LiteralExprNode) AppendTo(buf []byte) []byte {
	buf = appendUint(buf, 1, uint64(m.Type))
	buf = appendSint(buf, 2, m.Int64Value)
	buf = appendFixed64(buf, 3, math.Float64bits(m.Float64Value))
	buf = appendString(buf, 4, m.Utf8Value)
	buf = appendBool(buf, 5, m.BoolValue)
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *LiteralExprNode) Unmarshal(data []byte) error {
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
			m.Type = DataType(v)
			data = data[n:]
		case 2:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.Int64Value = protowire.DecodeZigZag(v)
			data = data[n:]
		case 3:
			v, n, err := consumeFixed64(data, wt, num)
			if err != nil {
				return err
			}
			m.Float64Value = math.Float64frombits(v)
			data = data[n:]
		case 4:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.Utf8Value = string(v)
			data = data[n:]
		case 5:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.BoolValue = v != 0
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

// ExprNode is the one-of envelope over physical expression kinds.
// Exactly one field is set.
//
// Fields: column = 1, literal = 2.
type ExprNode struct {
	Column  *ColumnExprNode
	Literal *LiteralExprNode
}

func (m *ExprNode) Reset()         { *m = ExprNode{} }
func (m *ExprNode) ProtoMessage()  {}
func (m *ExprNode) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *ExprNode) AppendTo(buf []byte) []byte {
	if m.Column != nil {
		buf = appendMessage(buf, 1, m.Column.AppendTo)
	}
	if m.Literal != nil {
		buf = appendMessage(buf, 2, m.Literal.AppendTo)
	}
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *ExprNode) Unmarshal(data []byte) error {
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
			m.Column = &ColumnExprNode{}
			if err := m.Column.Unmarshal(v); err != nil {
				return err
			}
			data = data[n:]
		case 2:
			v, n, err := consumeBytes(data, wt, num)
			if err != nil {
				return err
			}
			m.Literal = &LiteralExprNode{}
			if err := m.Literal.Unmarshal(v); err != nil {
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

// HashPartitioning is the wire form of a hash output partitioning: the
// expressions rows are hashed by and the bucket count.
//
// Fields: hash_expr = 1 (repeated), partition_count = 2.
type HashPartitioning struct {
	HashExpr       []*ExprNode
	PartitionCount uint64
}

func (m *HashPartitioning) Reset()         { *m = HashPartitioning{} }
func (m *HashPartitioning) ProtoMessage()  {}
func (m *HashPartitioning) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *HashPartitioning) AppendTo(buf []byte) []byte {
	for _, e := range m.HashExpr {
		buf = appendMessage(buf, 1, e.AppendTo)
	}
	buf = appendUint(buf, 2, m.PartitionCount)
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *HashPartitioning) Unmarshal(data []byte) error {
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
			e := &ExprNode{}
			if err := e.Unmarshal(v); err != nil {
				return err
			}
			m.HashExpr = append(m.HashExpr, e)
			data = data[n:]
		case 2:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.PartitionCount = v
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
