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

import "github.com/cockroachdb/errors"

// The serde error taxonomy. Every error returned by this package is
// marked with exactly one of these references; callers classify with
// errors.Is.
var (
	// ErrUnsupported marks a codec being asked to handle a node or blob
	// kind it does not own. Recoverable: the caller falls through to an
	// alternative codec.
	ErrUnsupported = errors.New("unsupported by this codec")

	// ErrMalformed marks bytes that do not parse as the expected
	// envelope shape.
	ErrMalformed = errors.New("malformed plan bytes")

	// ErrSchemaMismatch marks an embedded schema that is absent where
	// required or fails validation.
	ErrSchemaMismatch = errors.New("schema missing or invalid")

	// ErrMissingChild marks a decoded child count that does not match
	// what the node kind requires.
	ErrMissingChild = errors.New("child count mismatch")

	// ErrUnsupportedCodec marks a decode-time sub-codec index outside
	// the registered list, almost always a codec-registry mismatch
	// between the two ends of a connection.
	ErrUnsupportedCodec = errors.New("codec not registered")

	// ErrInternal marks invariant violations; it always carries the
	// underlying cause.
	ErrInternal = errors.New("internal serde error")
)

// markf builds a new error and marks it with the given reference.
func markf(ref error, format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ref)
}

// markWrap wraps cause with a message and marks it with the given
// reference.
func markWrap(ref error, cause error, msg string) error {
	return errors.Mark(errors.Wrap(cause, msg), ref)
}
