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
	"strings"

	"github.com/cockroachdb/errors"
)

// DataType enumerates the column types the engine supports. The numeric
// values are part of the wire protocol and must not be reordered.
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

func (t DataType) String() string {
	switch t {
	case DataTypeBool:
		return "bool"
	case DataTypeInt32:
		return "int32"
	case DataTypeInt64:
		return "int64"
	case DataTypeFloat64:
		return "float64"
	case DataTypeUtf8:
		return "utf8"
	case DataTypeBinary:
		return "binary"
	case DataTypeTimestamp:
		return "timestamp"
	default:
		return "invalid"
	}
}

// Field is one named, typed column of a schema.
type Field struct {
	Name     string
	Type     DataType
	Nullable bool
}

// Schema describes the ordered set of columns a plan node produces.
type Schema struct {
	Fields []Field
}

// NewSchema returns a schema over the given fields.
func NewSchema(fields ...Field) *Schema {
	return &Schema{Fields: fields}
}

// Index returns the position of the named field, or -1 if the schema has
// no such field.
func (s *Schema) Index(name string) int {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return i
		}
	}
	return -1
}

// Validate checks the structural invariants every schema crossing the
// wire must satisfy: non-empty, uniquely named fields with known types.
func (s *Schema) Validate() error {
	seen := make(map[string]struct{}, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return errors.Newf("schema field %d has an empty name", i)
		}
		if _, ok := seen[f.Name]; ok {
			return errors.Newf("schema field %q appears more than once", f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Type <= DataTypeInvalid || f.Type > DataTypeTimestamp {
			return errors.Newf("schema field %q has unknown type %d", f.Name, f.Type)
		}
	}
	return nil
}

func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, f := range s.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Type.String())
		if f.Nullable {
			sb.WriteByte('?')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
