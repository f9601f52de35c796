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

package protoutil

import (
	"github.com/gogo/protobuf/proto"
)

// Message extends the proto.Message interface with the append-style
// marshalling methods our hand-maintained wire types implement.
type Message interface {
	proto.Message
	AppendTo(buf []byte) []byte
	Unmarshal(data []byte) error
}

// Marshal encodes pb into the wire format. It is used throughout the code
// base to intercept direct calls to the message's own marshalling methods.
func Marshal(pb Message) []byte {
	return pb.AppendTo(nil)
}

// MarshalAppend encodes pb and appends the result to buf, returning the
// extended buffer.
func MarshalAppend(buf []byte, pb Message) []byte {
	return pb.AppendTo(buf)
}

// Unmarshal parses the protocol buffer representation in data and places
// the decoded result in pb.
//
// Unmarshal resets pb before starting to unmarshal, so any existing data
// in pb is always removed.
func Unmarshal(data []byte, pb Message) error {
	pb.Reset()
	return pb.Unmarshal(data)
}
