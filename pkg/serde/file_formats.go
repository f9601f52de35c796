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
	"github.com/quiverdb/quiver/pkg/physical"
	"github.com/quiverdb/quiver/pkg/serde/wirepb"
	"github.com/quiverdb/quiver/pkg/util/protoutil"
)

// The per-format sub-codecs composed by the logical codec registry.
// Each one owns exactly one physical.FileFormat implementation and
// refuses the rest, so the registry's encode trial locates the owner.

// CsvCodec serializes the delimited-text format configuration.
type CsvCodec struct{}

// Name is part of the FileFormatCodec interface.
func (CsvCodec) Name() string { return "csv" }

// TryEncodeFileFormat is part of the FileFormatCodec interface.
func (CsvCodec) TryEncodeFileFormat(buf []byte, format physical.FileFormat) ([]byte, error) {
	f, ok := format.(*physical.CsvFormat)
	if !ok {
		return nil, markf(ErrUnsupported, "csv codec cannot encode %T", format)
	}
	return protoutil.MarshalAppend(buf, &wirepb.CsvOptions{
		Delimiter: uint32(f.Delimiter),
		HasHeader: f.HasHeader,
	}), nil
}

// TryDecodeFileFormat is part of the FileFormatCodec interface.
func (CsvCodec) TryDecodeFileFormat(data []byte) (physical.FileFormat, error) {
	opts := &wirepb.CsvOptions{}
	if err := protoutil.Unmarshal(data, opts); err != nil {
		return nil, markWrap(ErrMalformed, err, "decoding csv options")
	}
	// The wire field is a varint; a foreign encoder could send a value no
	// byte can hold.
	if opts.Delimiter > 0xff {
		return nil, markf(ErrMalformed, "csv delimiter %d does not fit in a byte", opts.Delimiter)
	}
	return &physical.CsvFormat{Delimiter: byte(opts.Delimiter), HasHeader: opts.HasHeader}, nil
}

// JsonCodec serializes the structured-record format configuration.
type JsonCodec struct{}

// Name is part of the FileFormatCodec interface.
func (JsonCodec) Name() string { return "json" }

// TryEncodeFileFormat is part of the FileFormatCodec interface.
func (JsonCodec) TryEncodeFileFormat(buf []byte, format physical.FileFormat) ([]byte, error) {
	if _, ok := format.(*physical.JsonFormat); !ok {
		return nil, markf(ErrUnsupported, "json codec cannot encode %T", format)
	}
	return protoutil.MarshalAppend(buf, &wirepb.JsonOptions{}), nil
}

// TryDecodeFileFormat is part of the FileFormatCodec interface.
func (JsonCodec) TryDecodeFileFormat(data []byte) (physical.FileFormat, error) {
	if err := protoutil.Unmarshal(data, &wirepb.JsonOptions{}); err != nil {
		return nil, markWrap(ErrMalformed, err, "decoding json options")
	}
	return &physical.JsonFormat{}, nil
}

// ParquetCodec serializes the columnar format configuration.
type ParquetCodec struct{}

// Name is part of the FileFormatCodec interface.
func (ParquetCodec) Name() string { return "parquet" }

// TryEncodeFileFormat is part of the FileFormatCodec interface.
func (ParquetCodec) TryEncodeFileFormat(buf []byte, format physical.FileFormat) ([]byte, error) {
	f, ok := format.(*physical.ParquetFormat)
	if !ok {
		return nil, markf(ErrUnsupported, "parquet codec cannot encode %T", format)
	}
	return protoutil.MarshalAppend(buf, &wirepb.ParquetOptions{Compression: f.Compression}), nil
}

// TryDecodeFileFormat is part of the FileFormatCodec interface.
func (ParquetCodec) TryDecodeFileFormat(data []byte) (physical.FileFormat, error) {
	opts := &wirepb.ParquetOptions{}
	if err := protoutil.Unmarshal(data, opts); err != nil {
		return nil, markWrap(ErrMalformed, err, "decoding parquet options")
	}
	return &physical.ParquetFormat{Compression: opts.Compression}, nil
}

// ArrowCodec serializes the IPC file format configuration.
type ArrowCodec struct{}

// Name is part of the FileFormatCodec interface.
func (ArrowCodec) Name() string { return "arrow" }

// TryEncodeFileFormat is part of the FileFormatCodec interface.
func (ArrowCodec) TryEncodeFileFormat(buf []byte, format physical.FileFormat) ([]byte, error) {
	if _, ok := format.(*physical.ArrowFormat); !ok {
		return nil, markf(ErrUnsupported, "arrow codec cannot encode %T", format)
	}
	return protoutil.MarshalAppend(buf, &wirepb.ArrowOptions{}), nil
}

// TryDecodeFileFormat is part of the FileFormatCodec interface.
func (ArrowCodec) TryDecodeFileFormat(data []byte) (physical.FileFormat, error) {
	if err := protoutil.Unmarshal(data, &wirepb.ArrowOptions{}); err != nil {
		return nil, markWrap(ErrMalformed, err, "decoding arrow options")
	}
	return &physical.ArrowFormat{}, nil
}

// AvroCodec serializes the schema-on-read format configuration.
type AvroCodec struct{}

// Name is part of the FileFormatCodec interface.
func (AvroCodec) Name() string { return "avro" }

// TryEncodeFileFormat is part of the FileFormatCodec interface.
func (AvroCodec) TryEncodeFileFormat(buf []byte, format physical.FileFormat) ([]byte, error) {
	if _, ok := format.(*physical.AvroFormat); !ok {
		return nil, markf(ErrUnsupported, "avro codec cannot encode %T", format)
	}
	return protoutil.MarshalAppend(buf, &wirepb.AvroOptions{}), nil
}

// TryDecodeFileFormat is part of the FileFormatCodec interface.
func (AvroCodec) TryDecodeFileFormat(data []byte) (physical.FileFormat, error) {
	if err := protoutil.Unmarshal(data, &wirepb.AvroOptions{}); err != nil {
		return nil, markWrap(ErrMalformed, err, "decoding avro options")
	}
	return &physical.AvroFormat{}, nil
}
