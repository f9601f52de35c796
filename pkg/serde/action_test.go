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
	"github.com/quiverdb/quiver/pkg/scheduler"
)

func TestActionRoundTrip(t *testing.T) {
	action := scheduler.FetchPartitionAction{
		Partition: partition.ID{JobID: "job-7", StageID: 2, PartitionID: 5},
		Path:      "/data/shuffle/job-7/2/5",
		Host:      "10.0.0.9",
		Port:      50051,
	}

	buf, err := EncodeAction(action)
	require.NoError(t, err)

	decoded, err := DecodeAction(buf)
	require.NoError(t, err)
	require.Equal(t, action, decoded)
}

func TestDecodeActionMalformed(t *testing.T) {
	// Field 1 with a length-delimited header pointing past the buffer.
	_, err := DecodeAction([]byte{0x0a, 0x7f})
	require.True(t, errors.Is(err, ErrInternal))
	require.ErrorContains(t, err, "could not decode action envelope")
}

func TestDecodeActionEmptyEnvelope(t *testing.T) {
	// A well-formed envelope with no action kind set is rejected.
	_, err := DecodeAction(nil)
	require.True(t, errors.Is(err, ErrInternal))
	require.ErrorContains(t, err, "no action kind")
}
