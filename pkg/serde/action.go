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
	"github.com/quiverdb/quiver/pkg/scheduler"
	"github.com/quiverdb/quiver/pkg/serde/wirepb"
	"github.com/quiverdb/quiver/pkg/util/protoutil"
)

// DecodeAction parses a dispatched remote action envelope and converts
// it into the internal tagged action representation. It is the single
// entry point through which scheduler/executor control messages enter
// typed handling.
func DecodeAction(data []byte) (scheduler.Action, error) {
	msg := &wirepb.Action{}
	if err := protoutil.Unmarshal(data, msg); err != nil {
		return nil, markWrap(ErrInternal, err, "could not decode action envelope")
	}
	return ActionFromProto(msg)
}

// EncodeAction converts an internal action to its wire bytes.
func EncodeAction(action scheduler.Action) ([]byte, error) {
	msg, err := ActionToProto(action)
	if err != nil {
		return nil, err
	}
	return protoutil.Marshal(msg), nil
}
