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

import "fmt"

// FileFormat is the configuration of one data-source file format. Each
// format has its own serialization sub-codec in the logical codec's
// registry.
type FileFormat interface {
	fmt.Stringer
	fileFormat()
}

// CsvFormat reads and writes delimited text files.
type CsvFormat struct {
	Delimiter byte
	HasHeader bool
}

// NewCsvFormat returns the default comma-delimited configuration with a
// header row.
func NewCsvFormat() *CsvFormat {
	return &CsvFormat{Delimiter: ',', HasHeader: true}
}

func (*CsvFormat) fileFormat() {}

func (f *CsvFormat) String() string {
	return fmt.Sprintf("csv(delimiter=%q, header=%t)", f.Delimiter, f.HasHeader)
}

// JsonFormat reads and writes newline-delimited JSON records.
type JsonFormat struct{}

func (*JsonFormat) fileFormat() {}

func (*JsonFormat) String() string { return "json" }

// ParquetFormat reads and writes parquet files.
type ParquetFormat struct {
	// Compression names the codec for written files; empty means the
	// engine default.
	Compression string
}

func (*ParquetFormat) fileFormat() {}

func (f *ParquetFormat) String() string {
	return fmt.Sprintf("parquet(compression=%q)", f.Compression)
}

// ArrowFormat reads and writes Arrow IPC files.
type ArrowFormat struct{}

func (*ArrowFormat) fileFormat() {}

func (*ArrowFormat) String() string { return "arrow" }

// AvroFormat reads Avro object container files.
type AvroFormat struct{}

func (*AvroFormat) fileFormat() {}

func (*AvroFormat) String() string { return "avro" }
