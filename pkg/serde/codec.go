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

// Package serde converts physical plan trees and control messages into
// their compact wire representation and back. It is the layer through
// which execution plans cross the scheduler/executor process boundary.
//
// All codecs are stateless with respect to any single call: the same
// instance may be used concurrently from multiple goroutines.
package serde

import (
	"github.com/quiverdb/quiver/pkg/physical"
)

// ExtensionNode is an opaque logical extension plan node. The engine's
// logical plan layer owns the concrete types; this package only routes
// their bytes.
type ExtensionNode interface{}

// TableProvider is an opaque data-source description attached to a
// logical scan node.
type TableProvider interface{}

// PhysicalExtensionCodec encodes and decodes the plan node kinds the
// generic engine codec does not recognize. The surrounding plan
// (de)serializer owns tree traversal: TryDecode receives its children
// already reconstructed, in order, and TryEncode must not embed child
// subtrees in its output.
type PhysicalExtensionCodec interface {
	// TryEncode appends node's wire representation to buf and returns
	// the extended buffer. It fails if the node kind is not one this
	// codec handles.
	TryEncode(buf []byte, node physical.ExecutionPlan) ([]byte, error)

	// TryDecode reconstructs a node from its wire bytes and its
	// already-resolved children. Reconstruction is strictly bottom-up;
	// inputs holds every child, in order.
	TryDecode(data []byte, inputs []physical.ExecutionPlan) (physical.ExecutionPlan, error)
}

// FileFormatCodec serializes one data-source file format's
// configuration blob. Implementations refuse formats they do not own so
// that an ordered composition can locate the owner by trial.
type FileFormatCodec interface {
	// Name identifies this sub-codec in the registry fingerprint. It
	// must be unique within a registry and stable across releases.
	Name() string

	TryEncodeFileFormat(buf []byte, format physical.FileFormat) ([]byte, error)
	TryDecodeFileFormat(data []byte) (physical.FileFormat, error)
}

// LogicalExtensionCodec encodes and decodes logical-plan extension
// nodes and data-source metadata blobs.
type LogicalExtensionCodec interface {
	TryEncode(buf []byte, node ExtensionNode) ([]byte, error)
	TryDecode(data []byte, inputs []ExtensionNode) (ExtensionNode, error)

	TryEncodeTableProvider(buf []byte, provider TableProvider) ([]byte, error)
	TryDecodeTableProvider(data []byte, schema *physical.Schema) (TableProvider, error)

	TryEncodeFileFormat(buf []byte, format physical.FileFormat) ([]byte, error)
	TryDecodeFileFormat(data []byte) (physical.FileFormat, error)
}

// DefaultLogicalCodec is the fallback for logical extension nodes and
// table providers. The engine has no native extension kinds, so it
// refuses everything; registering a real codec replaces it.
type DefaultLogicalCodec struct{}

var _ LogicalExtensionCodec = DefaultLogicalCodec{}

// TryEncode is part of the LogicalExtensionCodec interface.
func (DefaultLogicalCodec) TryEncode(buf []byte, node ExtensionNode) ([]byte, error) {
	return nil, markf(ErrUnsupported, "no extension codec registered for node %T", node)
}

// TryDecode is part of the LogicalExtensionCodec interface.
func (DefaultLogicalCodec) TryDecode(data []byte, inputs []ExtensionNode) (ExtensionNode, error) {
	return nil, markf(ErrUnsupported, "no extension codec registered")
}

// TryEncodeTableProvider is part of the LogicalExtensionCodec interface.
func (DefaultLogicalCodec) TryEncodeTableProvider(buf []byte, provider TableProvider) ([]byte, error) {
	return nil, markf(ErrUnsupported, "no table provider codec registered for %T", provider)
}

// TryDecodeTableProvider is part of the LogicalExtensionCodec interface.
func (DefaultLogicalCodec) TryDecodeTableProvider(data []byte, schema *physical.Schema) (TableProvider, error) {
	return nil, markf(ErrUnsupported, "no table provider codec registered")
}

// TryEncodeFileFormat is part of the LogicalExtensionCodec interface.
func (DefaultLogicalCodec) TryEncodeFileFormat(buf []byte, format physical.FileFormat) ([]byte, error) {
	return nil, markf(ErrUnsupported, "no file format codec registered for %T", format)
}

// TryDecodeFileFormat is part of the LogicalExtensionCodec interface.
func (DefaultLogicalCodec) TryDecodeFileFormat(data []byte) (physical.FileFormat, error) {
	return nil, markf(ErrUnsupported, "no file format codec registered")
}

// Codec is the immutable pair of extension codecs handed to the plan
// (de)serialization machinery. It is constructed once per process or
// connection and shared by reference thereafter.
type Codec struct {
	logical  LogicalExtensionCodec
	physical PhysicalExtensionCodec
}

// NewCodec pairs a logical and a physical extension codec.
func NewCodec(logical LogicalExtensionCodec, physical PhysicalExtensionCodec) *Codec {
	return &Codec{logical: logical, physical: physical}
}

// DefaultCodec returns the codec pair every process uses unless it has
// registered extensions: the composed logical codec over the standard
// file-format registry, and the shuffle physical codec.
func DefaultCodec() *Codec {
	return NewCodec(DefaultLogicalCodecRegistry(), ShufflePhysicalCodec{})
}

// LogicalExtensionCodec returns the bundle's logical codec.
func (c *Codec) LogicalExtensionCodec() LogicalExtensionCodec { return c.logical }

// PhysicalExtensionCodec returns the bundle's physical codec.
func (c *Codec) PhysicalExtensionCodec() PhysicalExtensionCodec { return c.physical }
