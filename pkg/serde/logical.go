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
	"github.com/cespare/xxhash/v2"

	"github.com/quiverdb/quiver/pkg/physical"
)

// maxSubCodecs bounds the registry so that a sub-codec's position
// always fits the single leading byte of an encoded blob.
const maxSubCodecs = 256

// LogicalCodec composes an ordered list of file-format sub-codecs under
// a single LogicalExtensionCodec. Plan-extension and table-provider
// calls delegate unconditionally to the fallback codec.
//
// File-format blobs carry the winning sub-codec's list position as a
// single leading byte: encoding tries each sub-codec in order and
// records which one succeeded, so decoding can dispatch directly
// instead of replaying the trial loop. The list order is therefore part
// of the wire protocol; both ends of a connection must register the
// same sub-codecs in the same order, and any reordering is a breaking
// protocol change.
type LogicalCodec struct {
	fallback         LogicalExtensionCodec
	fileFormatCodecs []FileFormatCodec
}

var _ LogicalExtensionCodec = (*LogicalCodec)(nil)

// NewLogicalCodec composes the given sub-codecs, in order, over the
// fallback extension codec. The list must be fully populated here:
// there is no registration after construction.
func NewLogicalCodec(fallback LogicalExtensionCodec, subCodecs []FileFormatCodec) (*LogicalCodec, error) {
	if len(subCodecs) > maxSubCodecs {
		return nil, markf(ErrInternal,
			"%d file format codecs registered, the position byte can address at most %d",
			len(subCodecs), maxSubCodecs)
	}
	seen := make(map[string]struct{}, len(subCodecs))
	for _, sub := range subCodecs {
		if _, ok := seen[sub.Name()]; ok {
			return nil, markf(ErrInternal, "duplicate file format codec %q", sub.Name())
		}
		seen[sub.Name()] = struct{}{}
	}
	return &LogicalCodec{fallback: fallback, fileFormatCodecs: subCodecs}, nil
}

// DefaultLogicalCodecRegistry returns the standard composition: the
// five native file formats in their protocol order, over the default
// fallback.
func DefaultLogicalCodecRegistry() *LogicalCodec {
	codec, err := NewLogicalCodec(DefaultLogicalCodec{}, []FileFormatCodec{
		CsvCodec{},
		JsonCodec{},
		ParquetCodec{},
		ArrowCodec{},
		AvroCodec{},
	})
	if err != nil {
		// The standard registry is statically well-formed.
		panic(err)
	}
	return codec
}

// Fingerprint hashes the ordered sub-codec names. Two processes can
// compare fingerprints at connection establishment to detect mismatched
// codec registries before any plan bytes flow; a mismatch otherwise
// surfaces only as ErrUnsupportedCodec at decode time.
func (c *LogicalCodec) Fingerprint() uint64 {
	h := xxhash.New()
	for _, sub := range c.fileFormatCodecs {
		_, _ = h.WriteString(sub.Name())
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// TryEncode is part of the LogicalExtensionCodec interface.
func (c *LogicalCodec) TryEncode(buf []byte, node ExtensionNode) ([]byte, error) {
	return c.fallback.TryEncode(buf, node)
}

// TryDecode is part of the LogicalExtensionCodec interface.
func (c *LogicalCodec) TryDecode(data []byte, inputs []ExtensionNode) (ExtensionNode, error) {
	return c.fallback.TryDecode(data, inputs)
}

// TryEncodeTableProvider is part of the LogicalExtensionCodec interface.
func (c *LogicalCodec) TryEncodeTableProvider(buf []byte, provider TableProvider) ([]byte, error) {
	return c.fallback.TryEncodeTableProvider(buf, provider)
}

// TryDecodeTableProvider is part of the LogicalExtensionCodec interface.
func (c *LogicalCodec) TryDecodeTableProvider(data []byte, schema *physical.Schema) (TableProvider, error) {
	return c.fallback.TryDecodeTableProvider(data, schema)
}

// tryAny runs f against each sub-codec in list order and returns the
// first success together with the winning position. If every sub-codec
// refuses, the last concrete error is surfaced; an empty list is its
// own failure.
func (c *LogicalCodec) tryAny(f func(FileFormatCodec) ([]byte, error)) (byte, []byte, error) {
	var lastErr error
	for position, sub := range c.fileFormatCodecs {
		blob, err := f(sub)
		if err != nil {
			lastErr = err
			continue
		}
		return byte(position), blob, nil
	}
	if lastErr == nil {
		lastErr = markf(ErrUnsupported, "no file format codec available: empty registry")
	}
	return 0, nil, lastErr
}

// TryEncodeFileFormat is part of the LogicalExtensionCodec interface.
// The output is the winning sub-codec's position byte followed by its
// blob.
func (c *LogicalCodec) TryEncodeFileFormat(buf []byte, format physical.FileFormat) ([]byte, error) {
	position, blob, err := c.tryAny(func(sub FileFormatCodec) ([]byte, error) {
		return sub.TryEncodeFileFormat(nil, format)
	})
	if err != nil {
		return nil, err
	}
	buf = append(buf, position)
	return append(buf, blob...), nil
}

// TryDecodeFileFormat is part of the LogicalExtensionCodec interface.
// Dispatch is by the leading position byte: exact and O(1), never a
// trial loop.
func (c *LogicalCodec) TryDecodeFileFormat(data []byte) (physical.FileFormat, error) {
	if len(data) == 0 {
		return nil, markf(ErrMalformed, "file format blob should have more than 0 bytes")
	}
	position := int(data[0])
	if position >= len(c.fileFormatCodecs) {
		return nil, markf(ErrUnsupportedCodec,
			"file format codec position %d not registered (registry has %d); "+
				"peer codec registries likely differ", position, len(c.fileFormatCodecs))
	}
	return c.fileFormatCodecs[position].TryDecodeFileFormat(data[1:])
}
