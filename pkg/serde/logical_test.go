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
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/quiverdb/quiver/pkg/physical"
)

func TestFileFormatRoundTrip(t *testing.T) {
	codec := DefaultLogicalCodecRegistry()

	testCases := []struct {
		name     string
		format   physical.FileFormat
		position byte
	}{
		{name: "csv", format: &physical.CsvFormat{Delimiter: '|', HasHeader: true}, position: 0},
		{name: "csv high-bit delimiter", format: &physical.CsvFormat{Delimiter: 0xff}, position: 0},
		{name: "json", format: &physical.JsonFormat{}, position: 1},
		{name: "parquet", format: &physical.ParquetFormat{Compression: "zstd"}, position: 2},
		{name: "arrow", format: &physical.ArrowFormat{}, position: 3},
		{name: "avro", format: &physical.AvroFormat{}, position: 4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			blob, err := codec.TryEncodeFileFormat(nil, tc.format)
			require.NoError(t, err)
			require.NotEmpty(t, blob)
			require.Equal(t, tc.position, blob[0])

			decoded, err := codec.TryDecodeFileFormat(blob)
			require.NoError(t, err)
			require.Equal(t, tc.format, decoded)
		})
	}
}

func TestFileFormatPositionDispatch(t *testing.T) {
	// The position byte, not blob contents, selects the decoder: json,
	// arrow, and avro blobs are all empty messages, so only the byte
	// distinguishes them.
	codec := DefaultLogicalCodecRegistry()

	blob, err := codec.TryEncodeFileFormat(nil, &physical.JsonFormat{})
	require.NoError(t, err)
	require.Equal(t, []byte{1}, blob)

	decoded, err := codec.TryDecodeFileFormat(blob)
	require.NoError(t, err)
	require.IsType(t, &physical.JsonFormat{}, decoded)
}

func TestFileFormatEncodeAppends(t *testing.T) {
	codec := DefaultLogicalCodecRegistry()
	prefix := []byte("header:")
	blob, err := codec.TryEncodeFileFormat(prefix, &physical.ParquetFormat{Compression: "snappy"})
	require.NoError(t, err)
	require.Equal(t, prefix, blob[:len(prefix)])
	require.Equal(t, byte(2), blob[len(prefix)])
}

func TestCsvDelimiterMustFitByte(t *testing.T) {
	// Delimiter is a varint on the wire; a foreign encoder could send a
	// value no byte can hold. Field 1 varint 300.
	_, err := CsvCodec{}.TryDecodeFileFormat([]byte{0x08, 0xac, 0x02})
	require.True(t, errors.Is(err, ErrMalformed))
	require.ErrorContains(t, err, "does not fit in a byte")
}

func TestFileFormatEmptyBlob(t *testing.T) {
	codec := DefaultLogicalCodecRegistry()
	_, err := codec.TryDecodeFileFormat(nil)
	require.True(t, errors.Is(err, ErrMalformed))
	require.ErrorContains(t, err, "more than 0 bytes")
}

func TestFileFormatPositionOutOfRange(t *testing.T) {
	codec := DefaultLogicalCodecRegistry()
	_, err := codec.TryDecodeFileFormat([]byte{9})
	require.True(t, errors.Is(err, ErrUnsupportedCodec))
}

func TestFileFormatEmptyRegistry(t *testing.T) {
	codec, err := NewLogicalCodec(DefaultLogicalCodec{}, nil)
	require.NoError(t, err)
	_, err = codec.TryEncodeFileFormat(nil, &physical.CsvFormat{})
	require.True(t, errors.Is(err, ErrUnsupported))
	require.ErrorContains(t, err, "no file format codec available")
}

func TestFileFormatAllSubCodecsRefuse(t *testing.T) {
	// With only the csv sub-codec registered, a parquet format surfaces
	// the last trial error instead of being silently dropped.
	codec, err := NewLogicalCodec(DefaultLogicalCodec{}, []FileFormatCodec{CsvCodec{}})
	require.NoError(t, err)
	_, err = codec.TryEncodeFileFormat(nil, &physical.ParquetFormat{})
	require.True(t, errors.Is(err, ErrUnsupported))
	require.ErrorContains(t, err, "csv codec cannot encode")
}

func TestNewLogicalCodecRejectsDuplicates(t *testing.T) {
	_, err := NewLogicalCodec(DefaultLogicalCodec{}, []FileFormatCodec{CsvCodec{}, CsvCodec{}})
	require.True(t, errors.Is(err, ErrInternal))
}

func TestLogicalCodecDelegatesExtensions(t *testing.T) {
	codec := DefaultLogicalCodecRegistry()
	_, err := codec.TryEncode(nil, struct{}{})
	require.True(t, errors.Is(err, ErrUnsupported))
	_, err = codec.TryDecode(nil, nil)
	require.True(t, errors.Is(err, ErrUnsupported))
	_, err = codec.TryEncodeTableProvider(nil, struct{}{})
	require.True(t, errors.Is(err, ErrUnsupported))
	_, err = codec.TryDecodeTableProvider(nil, physical.NewSchema())
	require.True(t, errors.Is(err, ErrUnsupported))
}

func TestFingerprint(t *testing.T) {
	standard := DefaultLogicalCodecRegistry()
	require.Equal(t, standard.Fingerprint(), DefaultLogicalCodecRegistry().Fingerprint())

	reordered, err := NewLogicalCodec(DefaultLogicalCodec{}, []FileFormatCodec{
		JsonCodec{}, CsvCodec{}, ParquetCodec{}, ArrowCodec{}, AvroCodec{},
	})
	require.NoError(t, err)
	require.NotEqual(t, standard.Fingerprint(), reordered.Fingerprint())

	subset, err := NewLogicalCodec(DefaultLogicalCodec{}, []FileFormatCodec{CsvCodec{}})
	require.NoError(t, err)
	require.NotEqual(t, standard.Fingerprint(), subset.Fingerprint())
}
