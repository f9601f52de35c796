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

	"github.com/quiverdb/quiver/pkg/partition"
	"github.com/quiverdb/quiver/pkg/physical"
)

func testSchema(t *testing.T) *physical.Schema {
	t.Helper()
	return physical.NewSchema(
		physical.Field{Name: "a", Type: physical.DataTypeInt64},
		physical.Field{Name: "b", Type: physical.DataTypeUtf8, Nullable: true},
	)
}

func testLocation(stage, part int, path string) partition.Location {
	return partition.Location{
		Partition: partition.ID{JobID: "job-1", StageID: stage, PartitionID: part},
		Executor:  partition.ExecutorMetadata{ID: "exec-1", Host: "10.0.0.7", Port: 50051},
		Stats:     partition.Stats{NumRows: 1024, NumBatches: 2, NumBytes: 65536},
		Path:      path,
	}
}

func TestShuffleWriterRoundTrip(t *testing.T) {
	schema := testSchema(t)
	input := physical.NewEmptyExec(schema)
	codec := ShufflePhysicalCodec{}

	colA, err := physical.NewColumn(schema, "a")
	require.NoError(t, err)
	colB, err := physical.NewColumn(schema, "b")
	require.NoError(t, err)

	testCases := []struct {
		name         string
		partitioning physical.Partitioning
	}{
		{name: "no partitioning", partitioning: nil},
		{name: "hash partitioning", partitioning: &physical.HashPartitioning{
			Exprs:      []physical.Expr{colA, colB},
			Partitions: 4,
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			writer, err := physical.NewShuffleWriterExec("job-1", 2, input, "", tc.partitioning)
			require.NoError(t, err)

			buf, err := codec.TryEncode(nil, writer)
			require.NoError(t, err)

			decoded, err := codec.TryDecode(buf, []physical.ExecutionPlan{input})
			require.NoError(t, err)
			require.Equal(t, writer, decoded)
		})
	}
}

func TestShuffleWriterPartitioningFidelity(t *testing.T) {
	schema := testSchema(t)
	input := physical.NewEmptyExec(schema)
	codec := ShufflePhysicalCodec{}

	colA, err := physical.NewColumn(schema, "a")
	require.NoError(t, err)
	hash := &physical.HashPartitioning{
		Exprs:      []physical.Expr{colA, &physical.LiteralExpr{Value: physical.DInt(7)}},
		Partitions: 4,
	}
	writer, err := physical.NewShuffleWriterExec("job-1", 1, input, "", hash)
	require.NoError(t, err)

	buf, err := codec.TryEncode(nil, writer)
	require.NoError(t, err)
	decoded, err := codec.TryDecode(buf, []physical.ExecutionPlan{input})
	require.NoError(t, err)

	got := decoded.(*physical.ShuffleWriterExec).ShuffleOutputPartitioning()
	require.Equal(t, hash, got)

	// A writer with no partitioning must round-trip to no partitioning,
	// not to hash partitioning with zero buckets.
	plain, err := physical.NewShuffleWriterExec("job-1", 1, input, "", nil)
	require.NoError(t, err)
	buf, err = codec.TryEncode(nil, plain)
	require.NoError(t, err)
	decoded, err = codec.TryDecode(buf, []physical.ExecutionPlan{input})
	require.NoError(t, err)
	require.Nil(t, decoded.(*physical.ShuffleWriterExec).ShuffleOutputPartitioning())
}

func TestShuffleWriterWorkDirNotTransmitted(t *testing.T) {
	schema := testSchema(t)
	input := physical.NewEmptyExec(schema)
	codec := ShufflePhysicalCodec{}

	writer, err := physical.NewShuffleWriterExec("job-1", 2, input, "/data/shuffle/job-1", nil)
	require.NoError(t, err)

	buf, err := codec.TryEncode(nil, writer)
	require.NoError(t, err)
	decoded, err := codec.TryDecode(buf, []physical.ExecutionPlan{input})
	require.NoError(t, err)

	// The local path is executor-assigned after decode, never carried.
	got := decoded.(*physical.ShuffleWriterExec)
	require.Empty(t, got.WorkDir())
	got.SetWorkDir("/scratch/job-1")
	require.Equal(t, "/scratch/job-1", got.WorkDir())
}

func TestShuffleWriterRejectsRoundRobin(t *testing.T) {
	schema := testSchema(t)
	input := physical.NewEmptyExec(schema)
	writer, err := physical.NewShuffleWriterExec(
		"job-1", 2, input, "", &physical.RoundRobinPartitioning{Partitions: 3})
	require.NoError(t, err)

	_, err = ShufflePhysicalCodec{}.TryEncode(nil, writer)
	require.True(t, errors.Is(err, ErrInternal))
}

func TestShuffleReaderRoundTrip(t *testing.T) {
	schema := testSchema(t)
	codec := ShufflePhysicalCodec{}

	locations := [][]partition.Location{
		{testLocation(1, 0, "/data/shuffle/1/0")},
		{
			testLocation(1, 1, "/data/shuffle/1/1a"),
			{
				Partition: partition.ID{JobID: "job-1", StageID: 1, PartitionID: 1},
				Executor:  partition.ExecutorMetadata{ID: "exec-2", Host: "10.0.0.8", Port: 50052},
				Stats:     partition.UnknownStats(),
				Path:      "/data/shuffle/1/1b",
			},
		},
	}
	reader, err := physical.NewShuffleReaderExec(1, locations, schema)
	require.NoError(t, err)

	buf, err := codec.TryEncode(nil, reader)
	require.NoError(t, err)
	decoded, err := codec.TryDecode(buf, nil)
	require.NoError(t, err)
	require.Equal(t, reader, decoded)
}

func TestUnresolvedShuffleRoundTrip(t *testing.T) {
	schema := testSchema(t)
	codec := ShufflePhysicalCodec{}

	unresolved := physical.NewUnresolvedShuffleExec(5, schema, 8)
	buf, err := codec.TryEncode(nil, unresolved)
	require.NoError(t, err)
	decoded, err := codec.TryDecode(buf, nil)
	require.NoError(t, err)
	require.Equal(t, unresolved, decoded)
}

func TestShuffleCodecArityEnforcement(t *testing.T) {
	schema := testSchema(t)
	input := physical.NewEmptyExec(schema)
	codec := ShufflePhysicalCodec{}

	writer, err := physical.NewShuffleWriterExec("job-1", 2, input, "", nil)
	require.NoError(t, err)
	writerBytes, err := codec.TryEncode(nil, writer)
	require.NoError(t, err)

	reader, err := physical.NewShuffleReaderExec(1, nil, schema)
	require.NoError(t, err)
	readerBytes, err := codec.TryEncode(nil, reader)
	require.NoError(t, err)

	unresolvedBytes, err := codec.TryEncode(nil, physical.NewUnresolvedShuffleExec(1, schema, 2))
	require.NoError(t, err)

	testCases := []struct {
		name   string
		data   []byte
		inputs []physical.ExecutionPlan
	}{
		{name: "writer with zero children", data: writerBytes, inputs: nil},
		{name: "writer with two children", data: writerBytes,
			inputs: []physical.ExecutionPlan{input, input}},
		{name: "reader with a child", data: readerBytes,
			inputs: []physical.ExecutionPlan{input}},
		{name: "unresolved with a child", data: unresolvedBytes,
			inputs: []physical.ExecutionPlan{input}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.TryDecode(tc.data, tc.inputs)
			require.True(t, errors.Is(err, ErrMissingChild))
		})
	}
}

func TestShuffleCodecRejectsForeignNodes(t *testing.T) {
	_, err := ShufflePhysicalCodec{}.TryEncode(nil, physical.NewEmptyExec(testSchema(t)))
	require.True(t, errors.Is(err, ErrInternal))
	require.ErrorContains(t, err, "unsupported plan type")
}

func TestShuffleCodecDecodeMalformed(t *testing.T) {
	codec := ShufflePhysicalCodec{}

	// An empty buffer parses as an envelope with no variant set.
	_, err := codec.TryDecode(nil, nil)
	require.True(t, errors.Is(err, ErrInternal))
	require.ErrorContains(t, err, "physical_plan_type is none")

	// A truncated length-delimited field does not parse at all.
	_, err = codec.TryDecode([]byte{0x0a, 0x55}, nil)
	require.True(t, errors.Is(err, ErrMalformed))
}

func TestShuffleReaderRequiresSchema(t *testing.T) {
	// An envelope whose reader variant has no schema is rejected, not
	// defaulted.
	envelope := []byte{
		0x12, 0x02, // field 2 (shuffle_reader), length 2
		0x08, 0x03, // stage_id = 3
	}
	_, err := ShufflePhysicalCodec{}.TryDecode(envelope, nil)
	require.True(t, errors.Is(err, ErrSchemaMismatch))
}

func TestShuffleReaderEndToEnd(t *testing.T) {
	// Stage 3, schema {a: int64}, partition 0 has one location and
	// partition 1 has two.
	schema := physical.NewSchema(physical.Field{Name: "a", Type: physical.DataTypeInt64})
	locations := [][]partition.Location{
		{testLocation(3, 0, "/data/3/0")},
		{testLocation(3, 1, "/data/3/1a"), testLocation(3, 1, "/data/3/1b")},
	}
	reader, err := physical.NewShuffleReaderExec(3, locations, schema)
	require.NoError(t, err)

	codec := ShufflePhysicalCodec{}
	buf, err := codec.TryEncode(nil, reader)
	require.NoError(t, err)
	decoded, err := codec.TryDecode(buf, nil)
	require.NoError(t, err)

	got, ok := decoded.(*physical.ShuffleReaderExec)
	require.True(t, ok)
	require.Equal(t, 3, got.StageID())
	require.Equal(t, schema, got.Schema())
	require.Len(t, got.Partitions(), 2)
	require.Len(t, got.Partitions()[0], 1)
	require.Len(t, got.Partitions()[1], 2)
	require.Equal(t, locations, got.Partitions())
}

func TestErrorsCarryOneSentinel(t *testing.T) {
	// Encode-side trial errors stay distinguishable from hard decode
	// failures.
	err := markf(ErrUnsupported, "probe")
	require.True(t, errors.Is(err, ErrUnsupported))
	require.False(t, errors.Is(err, ErrMalformed))
}
