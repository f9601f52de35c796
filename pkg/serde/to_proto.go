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
	"github.com/quiverdb/quiver/pkg/partition"
	"github.com/quiverdb/quiver/pkg/physical"
	"github.com/quiverdb/quiver/pkg/scheduler"
	"github.com/quiverdb/quiver/pkg/serde/wirepb"
)

// Engine-to-wire conversions. Each is the exact inverse of its
// from_proto counterpart.

// SchemaToProto converts a schema to its wire form.
func SchemaToProto(schema *physical.Schema) *wirepb.Schema {
	msg := &wirepb.Schema{Fields: make([]*wirepb.Field, len(schema.Fields))}
	for i, f := range schema.Fields {
		msg.Fields[i] = &wirepb.Field{
			Name:     f.Name,
			Type:     wirepb.DataType(f.Type),
			Nullable: f.Nullable,
		}
	}
	return msg
}

// ExprToProto converts a physical expression to its wire form.
func ExprToProto(expr physical.Expr) (*wirepb.ExprNode, error) {
	switch e := expr.(type) {
	case *physical.ColumnExpr:
		return &wirepb.ExprNode{
			Column: &wirepb.ColumnExprNode{Name: e.Name, Index: uint32(e.Index)},
		}, nil
	case *physical.LiteralExpr:
		lit, err := literalToProto(e.Value)
		if err != nil {
			return nil, err
		}
		return &wirepb.ExprNode{Literal: lit}, nil
	default:
		return nil, markf(ErrUnsupported, "cannot serialize physical expression %T", expr)
	}
}

func literalToProto(d physical.Datum) (*wirepb.LiteralExprNode, error) {
	switch v := d.(type) {
	case physical.DInt:
		return &wirepb.LiteralExprNode{Type: wirepb.DataTypeInt64, Int64Value: int64(v)}, nil
	case physical.DFloat:
		return &wirepb.LiteralExprNode{Type: wirepb.DataTypeFloat64, Float64Value: float64(v)}, nil
	case physical.DString:
		return &wirepb.LiteralExprNode{Type: wirepb.DataTypeUtf8, Utf8Value: string(v)}, nil
	case physical.DBool:
		return &wirepb.LiteralExprNode{Type: wirepb.DataTypeBool, BoolValue: bool(v)}, nil
	default:
		return nil, markf(ErrUnsupported, "cannot serialize datum %T", d)
	}
}

// HashPartitioningToProto converts a hash partitioning to its wire
// form, serializing each hash expression through the generic expression
// serializer.
func HashPartitioningToProto(p *physical.HashPartitioning) (*wirepb.HashPartitioning, error) {
	msg := &wirepb.HashPartitioning{
		HashExpr:       make([]*wirepb.ExprNode, len(p.Exprs)),
		PartitionCount: uint64(p.Partitions),
	}
	for i, expr := range p.Exprs {
		node, err := ExprToProto(expr)
		if err != nil {
			return nil, err
		}
		msg.HashExpr[i] = node
	}
	return msg, nil
}

// LocationToProto converts a partition location to its wire form.
func LocationToProto(loc partition.Location) *wirepb.PartitionLocation {
	return &wirepb.PartitionLocation{
		PartitionId: &wirepb.PartitionId{
			JobID:       loc.Partition.JobID,
			StageID:     uint32(loc.Partition.StageID),
			PartitionID: uint32(loc.Partition.PartitionID),
		},
		ExecutorMeta: &wirepb.ExecutorMetadata{
			ID:   loc.Executor.ID,
			Host: loc.Executor.Host,
			Port: uint32(loc.Executor.Port),
		},
		PartitionStats: &wirepb.PartitionStats{
			NumRows:    loc.Stats.NumRows,
			NumBatches: loc.Stats.NumBatches,
			NumBytes:   loc.Stats.NumBytes,
		},
		Path: loc.Path,
	}
}

// ActionToProto converts an internal action to its wire envelope.
func ActionToProto(action scheduler.Action) (*wirepb.Action, error) {
	switch a := action.(type) {
	case scheduler.FetchPartitionAction:
		return &wirepb.Action{FetchPartition: &wirepb.FetchPartition{
			JobID:       a.Partition.JobID,
			StageID:     uint32(a.Partition.StageID),
			PartitionID: uint32(a.Partition.PartitionID),
			Path:        a.Path,
			Host:        a.Host,
			Port:        uint32(a.Port),
		}}, nil
	default:
		return nil, markf(ErrInternal, "cannot serialize action %T", action)
	}
}
