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
	"math"

	"github.com/quiverdb/quiver/pkg/partition"
	"github.com/quiverdb/quiver/pkg/physical"
	"github.com/quiverdb/quiver/pkg/scheduler"
	"github.com/quiverdb/quiver/pkg/serde/wirepb"
)

// Wire-to-engine conversions. Conversion failure is always reported,
// never defaulted.

// SchemaFromProto converts a wire schema back to the engine form,
// validating it on the way in.
func SchemaFromProto(msg *wirepb.Schema) (*physical.Schema, error) {
	if msg == nil {
		return nil, markf(ErrSchemaMismatch, "required schema is missing")
	}
	schema := &physical.Schema{Fields: make([]physical.Field, len(msg.Fields))}
	for i, f := range msg.Fields {
		schema.Fields[i] = physical.Field{
			Name:     f.Name,
			Type:     physical.DataType(f.Type),
			Nullable: f.Nullable,
		}
	}
	if err := schema.Validate(); err != nil {
		return nil, markWrap(ErrSchemaMismatch, err, "decoded schema failed validation")
	}
	return schema, nil
}

// ExprFromProto converts a wire expression back to the engine form.
// Expressions are schema-relative: column references are checked
// against the schema they will be evaluated under.
func ExprFromProto(msg *wirepb.ExprNode, schema *physical.Schema) (physical.Expr, error) {
	switch {
	case msg == nil:
		return nil, markf(ErrMalformed, "expression node is empty")
	case msg.Column != nil:
		col := msg.Column
		if int(col.Index) >= len(schema.Fields) {
			return nil, markf(ErrSchemaMismatch,
				"column %q index %d out of range for schema %s", col.Name, col.Index, schema)
		}
		if got := schema.Fields[col.Index].Name; got != col.Name {
			return nil, markf(ErrSchemaMismatch,
				"column index %d resolves to %q, expression names %q", col.Index, got, col.Name)
		}
		return &physical.ColumnExpr{Name: col.Name, Index: int(col.Index)}, nil
	case msg.Literal != nil:
		datum, err := literalFromProto(msg.Literal)
		if err != nil {
			return nil, err
		}
		return &physical.LiteralExpr{Value: datum}, nil
	default:
		return nil, markf(ErrMalformed, "expression node has no variant set")
	}
}

func literalFromProto(msg *wirepb.LiteralExprNode) (physical.Datum, error) {
	switch msg.Type {
	case wirepb.DataTypeInt64:
		return physical.DInt(msg.Int64Value), nil
	case wirepb.DataTypeFloat64:
		return physical.DFloat(msg.Float64Value), nil
	case wirepb.DataTypeUtf8:
		return physical.DString(msg.Utf8Value), nil
	case wirepb.DataTypeBool:
		return physical.DBool(msg.BoolValue), nil
	default:
		return nil, markf(ErrMalformed, "literal has unsupported datum type %d", msg.Type)
	}
}

// HashPartitioningFromProto converts a wire hash partitioning back to
// the engine form, parsing the hash expressions against the schema they
// are relative to. A nil message converts to no partitioning.
func HashPartitioningFromProto(
	msg *wirepb.HashPartitioning, schema *physical.Schema,
) (*physical.HashPartitioning, error) {
	if msg == nil {
		return nil, nil
	}
	exprs := make([]physical.Expr, len(msg.HashExpr))
	for i, node := range msg.HashExpr {
		expr, err := ExprFromProto(node, schema)
		if err != nil {
			return nil, err
		}
		exprs[i] = expr
	}
	if msg.PartitionCount > math.MaxInt32 {
		return nil, markf(ErrMalformed, "partition count %d overflows", msg.PartitionCount)
	}
	return &physical.HashPartitioning{Exprs: exprs, Partitions: int(msg.PartitionCount)}, nil
}

// LocationFromProto converts a wire partition location back to the
// engine form.
func LocationFromProto(msg *wirepb.PartitionLocation) (partition.Location, error) {
	if msg == nil {
		return partition.Location{}, markf(ErrMalformed, "partition location is missing")
	}
	if msg.PartitionId == nil {
		return partition.Location{}, markf(ErrMalformed, "partition location has no partition id")
	}
	if msg.ExecutorMeta == nil {
		return partition.Location{}, markf(ErrMalformed, "partition location has no executor metadata")
	}
	if msg.ExecutorMeta.Port > math.MaxUint16 {
		return partition.Location{}, markf(ErrMalformed,
			"executor port %d out of range", msg.ExecutorMeta.Port)
	}
	if msg.PartitionStats == nil {
		return partition.Location{}, markf(ErrMalformed, "partition location has no statistics")
	}
	return partition.Location{
		Partition: partition.ID{
			JobID:       msg.PartitionId.JobID,
			StageID:     int(msg.PartitionId.StageID),
			PartitionID: int(msg.PartitionId.PartitionID),
		},
		Executor: partition.ExecutorMetadata{
			ID:   msg.ExecutorMeta.ID,
			Host: msg.ExecutorMeta.Host,
			Port: uint16(msg.ExecutorMeta.Port),
		},
		Stats: partition.Stats{
			NumRows:    msg.PartitionStats.NumRows,
			NumBatches: msg.PartitionStats.NumBatches,
			NumBytes:   msg.PartitionStats.NumBytes,
		},
		Path: msg.Path,
	}, nil
}

// ActionFromProto converts a wire action envelope to the internal
// tagged representation.
func ActionFromProto(msg *wirepb.Action) (scheduler.Action, error) {
	switch {
	case msg.FetchPartition != nil:
		f := msg.FetchPartition
		if f.Port > math.MaxUint16 {
			return nil, markf(ErrMalformed, "action port %d out of range", f.Port)
		}
		return scheduler.FetchPartitionAction{
			Partition: partition.ID{
				JobID:       f.JobID,
				StageID:     int(f.StageID),
				PartitionID: int(f.PartitionID),
			},
			Path: f.Path,
			Host: f.Host,
			Port: uint16(f.Port),
		}, nil
	default:
		return nil, markf(ErrInternal, "action envelope has no action kind set")
	}
}
