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

// CsvOptions is the configuration blob of the delimited-text format.
//
// Fields: delimiter = 1, has_header = 2.
type CsvOptions struct {
	Delimiter uint32
	HasHeader bool
}

func (m *CsvOptions) Reset()         { *m = CsvOptions{} }
func (m *CsvOptions) ProtoMessage()  {}
func (m *CsvOptions) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *CsvOptions) AppendTo(buf []byte) []byte {
	buf = appendUint(buf, 1, uint64(m.Delimiter))
	buf = appendBool(buf, 2, m.HasHeader)
	return buf
}

// Unmarshal implements protoutil.Message.
func (m *CsvOptions) Unmarshal(data []byte) error {
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
			m.Delimiter = uint32(v)
			data = data[n:]
		case 2:
			v, n, err := consumeVarint(data, wt, num)
			if err != nil {
				return err
			}
			m.HasHeader = v != 0
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

// ParquetOptions is the configuration blob of the columnar format.
//
// Fields: compression = 1.
type ParquetOptions struct {
	Compression string
}

func (m *ParquetOptions) Reset()         { *m = ParquetOptions{} }
func (m *ParquetOptions) ProtoMessage()  {}
func (m *ParquetOptions) String() string { return fmt.Sprintf("%+v", *m) }

// AppendTo implements protoutil.Message.
func (m *ParquetOptions) AppendTo(buf []byte) []byte {
	return appendString(buf, 1, m.Compression)
}

// Unmarshal implements protoutil.Message.
func (m *ParquetOptions) Unmarshal(data []byte) error {
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
			m.Compression = string(v)
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

// emptyOptions backs the formats that carry no configuration. Decoding
// still walks the buffer so truncated input is rejected rather than
// ignored.
type emptyOptions struct{}

func (emptyOptions) appendTo(buf []byte) []byte { return buf }

func (emptyOptions) unmarshal(data []byte) error {
	for len(data) > 0 {
		num, wt, n := protowire.ConsumeTag(data)
		if n < 0 {
			return parseErr(n)
		}
		data = data[n:]
		n, err := skipField(data, num, wt)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// JsonOptions is the (empty) configuration blob of the
// structured-record format.
type JsonOptions struct{}

func (m *JsonOptions) Reset()         { *m = JsonOptions{} }
func (m *JsonOptions) ProtoMessage()  {}
func (m *JsonOptions) String() string { return "{}" }

// AppendTo implements protoutil.Message.
func (m *JsonOptions) AppendTo(buf []byte) []byte { return emptyOptions{}.appendTo(buf) }

// Unmarshal implements protoutil.Message.
func (m *JsonOptions) Unmarshal(data []byte) error { return emptyOptions{}.unmarshal(data) }

// ArrowOptions is the (empty) configuration blob of the IPC file format.
type ArrowOptions struct{}

func (m *ArrowOptions) Reset()         { *m = ArrowOptions{} }
func (m *ArrowOptions) ProtoMessage()  {}
func (m *ArrowOptions) String() string { return "{}" }

// AppendTo implements protoutil.Message.
func (m *ArrowOptions) AppendTo(buf []byte) []byte { return emptyOptions{}.appendTo(buf) }

// Unmarshal implements protoutil.Message.
func (m *ArrowOptions) Unmarshal(data []byte) error { return emptyOptions{}.unmarshal(data) }

// AvroOptions is the (empty) configuration blob of the Avro format.
type AvroOptions struct{}

func (m *AvroOptions) Reset()         { *m = AvroOptions{} }
func (m *AvroOptions) ProtoMessage()  {}
func (m *AvroOptions) String() string { return "{}" }

// AppendTo implements protoutil.Message.
func (m *AvroOptions) AppendTo(buf []byte) []byte { return emptyOptions{}.appendTo(buf) }

// Unmarshal implements protoutil.Message.
func (m *AvroOptions) Unmarshal(data []byte) error { return emptyOptions{}.unmarshal(data) }
