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

// Package wirepb contains the hand-maintained protocol buffer messages
// of the plan wire format. Every message implements protoutil.Message;
// marshalling is append-style over the standard protobuf wire encoding.
//
// Decoding skips unknown fields so that newer peers can add fields
// without breaking older ones. Field numbers are part of the protocol
// and must never be reused or renumbered.
package wirepb

import (
	"github.com/cockroachdb/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// parseErr converts a negative protowire length into an error.
func parseErr(n int) error {
	return errors.WithStack(protowire.ParseError(n))
}

// consumeVarint reads a varint-typed field value.
func consumeVarint(data []byte, wt protowire.Type, num protowire.Number) (uint64, int, error) {
	if wt != protowire.VarintType {
		return 0, 0, errors.Newf("field %d: expected varint wire type, got %d", num, wt)
	}
	v, n := protowire.ConsumeVarint(data)
	if n < 0 {
		return 0, 0, parseErr(n)
	}
	return v, n, nil
}

// consumeFixed64 reads a fixed64-typed field value.
func consumeFixed64(data []byte, wt protowire.Type, num protowire.Number) (uint64, int, error) {
	if wt != protowire.Fixed64Type {
		return 0, 0, errors.Newf("field %d: expected fixed64 wire type, got %d", num, wt)
	}
	v, n := protowire.ConsumeFixed64(data)
	if n < 0 {
		return 0, 0, parseErr(n)
	}
	return v, n, nil
}

// consumeBytes reads a length-delimited field value. The returned slice
// aliases data.
func consumeBytes(data []byte, wt protowire.Type, num protowire.Number) ([]byte, int, error) {
	if wt != protowire.BytesType {
		return nil, 0, errors.Newf("field %d: expected length-delimited wire type, got %d", num, wt)
	}
	v, n := protowire.ConsumeBytes(data)
	if n < 0 {
		return nil, 0, parseErr(n)
	}
	return v, n, nil
}

// skipField consumes an unknown field's value.
func skipField(data []byte, num protowire.Number, wt protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(num, wt, data)
	if n < 0 {
		return 0, parseErr(n)
	}
	return n, nil
}

// appendMessage appends a length-delimited submessage field.
func appendMessage(buf []byte, num protowire.Number, appendBody func([]byte) []byte) []byte {
	buf = protowire.AppendTag(buf, num, protowire.BytesType)
	body := appendBody(nil)
	buf = protowire.AppendVarint(buf, uint64(len(body)))
	return append(buf, body...)
}

// appendString appends a string field, omitting empty values.
func appendString(buf []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return buf
	}
	buf = protowire.AppendTag(buf, num, protowire.BytesType)
	return protowire.AppendString(buf, v)
}

// appendUint appends a varint field, omitting zero values.
func appendUint(buf []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return buf
	}
	buf = protowire.AppendTag(buf, num, protowire.VarintType)
	return protowire.AppendVarint(buf, v)
}

// appendSint appends a zig-zag varint field, omitting zero values.
func appendSint(buf []byte, num protowire.Number, v int64) []byte {
	if v == 0 {
		return buf
	}
	buf = protowire.AppendTag(buf, num, protowire.VarintType)
	return protowire.AppendVarint(buf, protowire.EncodeZigZag(v))
}

// appendBool appends a bool field, omitting false.
func appendBool(buf []byte, num protowire.Number, v bool) []byte {
	if !v {
		return buf
	}
	buf = protowire.AppendTag(buf, num, protowire.VarintType)
	return protowire.AppendVarint(buf, 1)
}

// appendFixed64 appends a fixed64 field, omitting zero values.
func appendFixed64(buf []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return buf
	}
	buf = protowire.AppendTag(buf, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(buf, v)
}
