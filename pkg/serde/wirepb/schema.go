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

// DataType mirrors the engine's column type enumeration on the wire.
type DataType int32

const (
	DataTypeInvalid DataType = iota
	DataTypeBool
	DataTypeInt32
	DataTypeInt64
	DataTypeFloat64
	DataTypeUtf8
	DataTypeBinary
	DataTypeTimestamp
)

// Field is one column of a wire schema.
//
// Fields: name = 1, type = 2, nullable = 3.
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
}

func (m *Field) Reset()         { *m = Field{} }
func (m *Field) ProtoMessage()  {}
func (m *Field) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *Field) AppendTo(buf []byte) []byte {
	buf = appendString(buf, 1, m.Name)
	buf = appendUint(buf, 2, uint64(m.Type))
	buf = appendBool(buf, 3, m.Nullable)
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *Field) Unmarshal(data []byte) error {
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
			m.Type = DataType(v)
			data = data[n:]
		case 3:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.Nullable = v != 0
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

// Schema is the wire form of a plan node's output schema.
//
// Fields: fields = 1 (repeated).
type Schema struct {
	Fields []*Field
}

func (m *Schema) Reset()         { *m = Schema{} }
func (m *Schema) ProtoMessage()  {}
func (m *Schema) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *Schema) AppendTo(buf []byte) []byte {
	for _, f := range m.Fields {
		buf = appendMessage(buf, 1, f.AppendTo)
	}
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *Schema) Unmarshal(data []byte) error {
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
			f := &Field{}
			if err := f.Unmarshal(v); err != nil {
				return err
			}
			m.Fields = append(m.Fields, f)
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
