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
	"github.com/quiverdb/quiver/pkg/serde/wirepb"
)

func TestSchemaConverterRoundTrip(t *testing.T) {
	schema := physical.NewSchema(
		physical.Field{Name: "id", Type: physical.DataTypeInt64},
		physical.Field{Name: "name", Type: physical.DataTypeUtf8, Nullable: true},
		physical.Field{Name: "ts", Type: physical.DataTypeTimestamp},
	)
	decoded, err := SchemaFromProto(SchemaToProto(schema))
	require.NoError(t, err)
	require.Equal(t, schema, decoded)
}

func TestSchemaFromProtoRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name string
		msg  *wirepb.Schema
	}{
		{name: "missing", msg: nil},
		{name: "empty field name", msg: &wirepb.Schema{
			Fields: []*wirepb.Field{{Type: wirepb.DataTypeInt64}}}},
		{name: "duplicate field", msg: &wirepb.Schema{Fields: []*wirepb.Field{
			{Name: "a", Type: wirepb.DataTypeInt64},
			{Name: "a", Type: wirepb.DataTypeUtf8}}}},
		{name: "unknown type", msg: &wirepb.Schema{
			Fields: []*wirepb.Field{{Name: "a", Type: wirepb.DataType(99)}}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := SchemaFromProto(tc.msg)
			require.True(t, errors.Is(err, ErrSchemaMismatch))
		})
	}
}

func TestExprConverterRoundTrip(t *testing.T) {
	schema := physical.NewSchema(
		physical.Field{Name: "a", Type: physical.DataTypeInt64},
		physical.Field{Name: "b", Type: physical.DataTypeFloat64},
	)
	exprs := []physical.Expr{
		&physical.ColumnExpr{Name: "b", Index: 1},
		&physical.LiteralExpr{Value: physical.DInt(-42)},
		&physical.LiteralExpr{Value: physical.DFloat(2.5)},
		&physical.LiteralExpr{Value: physical.DString("shuffle")},
		&physical.LiteralExpr{Value: physical.DBool(true)},
	}
	for _, expr := range exprs {
		msg, err := ExprToProto(expr)
		require.NoError(t, err)
		decoded, err := ExprFromProto(msg, schema)
		require.NoError(t, err)
		require.Equal(t, expr, decoded)
	}
}

func TestExprFromProtoSchemaRelative(t *testing.T) {
	schema := physical.NewSchema(physical.Field{Name: "a", Type: physical.DataTypeInt64})

	_, err := ExprFromProto(&wirepb.ExprNode{
		Column: &wirepb.ColumnExprNode{Name: "z", Index: 4},
	}, schema)
	require.True(t, errors.Is(err, ErrSchemaMismatch))

	_, err = ExprFromProto(&wirepb.ExprNode{
		Column: &wirepb.ColumnExprNode{Name: "z", Index: 0},
	}, schema)
	require.True(t, errors.Is(err, ErrSchemaMismatch))

	_, err = ExprFromProto(&wirepb.ExprNode{}, schema)
	require.True(t, errors.Is(err, ErrMalformed))
}

func TestLocationConverterRoundTrip(t *testing.T) {
	loc := testLocation(4, 2, "/data/4/2")
	decoded, err := LocationFromProto(LocationToProto(loc))
	require.NoError(t, err)
	require.Equal(t, loc, decoded)
}

func TestLocationFromProtoRequiresFields(t *testing.T) {
	complete := func() *wirepb.PartitionLocation { return LocationToProto(testLocation(1, 0, "/p")) }

	missingID := complete()
	missingID.PartitionId = nil
	_, err := LocationFromProto(missingID)
	require.True(t, errors.Is(err, ErrMalformed))

	missingExec := complete()
	missingExec.ExecutorMeta = nil
	_, err = LocationFromProto(missingExec)
	require.True(t, errors.Is(err, ErrMalformed))

	missingStats := complete()
	missingStats.PartitionStats = nil
	_, err = LocationFromProto(missingStats)
	require.True(t, errors.Is(err, ErrMalformed))

	badPort := complete()
	badPort.ExecutorMeta.Port = 1 << 20
	_, err = LocationFromProto(badPort)
	require.True(t, errors.Is(err, ErrMalformed))
}

func TestHashPartitioningConverterRoundTrip(t *testing.T) {
	schema := physical.NewSchema(physical.Field{Name: "a", Type: physical.DataTypeInt64})
	col, err := physical.NewColumn(schema, "a")
	require.NoError(t, err)

	hash := &physical.HashPartitioning{Exprs: []physical.Expr{col}, Partitions: 16}
	msg, err := HashPartitioningToProto(hash)
	require.NoError(t, err)
	decoded, err := HashPartitioningFromProto(msg, schema)
	require.NoError(t, err)
	require.Equal(t, hash, decoded)

	// Absent partitioning converts to nil, not to an empty hash.
	decoded, err = HashPartitioningFromProto(nil, schema)
	require.NoError(t, err)
	require.Nil(t, decoded)
}
