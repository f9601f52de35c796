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

package physical

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchemaValidate(t *testing.T) {
	testCases := []struct {
		name   string
		schema *Schema
		errStr string
	}{
		{
			name: "valid",
			schema: NewSchema(
				Field{Name: "a", Type: DataTypeInt64},
				Field{Name: "b", Type: DataTypeUtf8, Nullable: true},
			),
		},
		{
			name:   "empty name",
			schema: NewSchema(Field{Type: DataTypeInt64}),
			errStr: "empty name",
		},
		{
			name: "duplicate name",
			schema: NewSchema(
				Field{Name: "a", Type: DataTypeInt64},
				Field{Name: "a", Type: DataTypeUtf8},
			),
			errStr: "more than once",
		},
		{
			name:   "invalid type",
			schema: NewSchema(Field{Name: "a", Type: DataTypeInvalid}),
			errStr: "unknown type",
		},
		{
			name:   "type past range",
			schema: NewSchema(Field{Name: "a", Type: DataType(42)}),
			errStr: "unknown type",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.schema.Validate()
			if tc.errStr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.errStr)
		})
	}
}

func TestSchemaIndex(t *testing.T) {
	schema := NewSchema(
		Field{Name: "a", Type: DataTypeInt64},
		Field{Name: "b", Type: DataTypeFloat64},
	)
	require.Equal(t, 0, schema.Index("a"))
	require.Equal(t, 1, schema.Index("b"))
	require.Equal(t, -1, schema.Index("c"))
}

func TestSchemaString(t *testing.T) {
	schema := NewSchema(
		Field{Name: "a", Type: DataTypeInt64},
		Field{Name: "b", Type: DataTypeUtf8, Nullable: true},
	)
	require.Equal(t, "[a: int64, b: utf8?]", schema.String())
}

func TestNewColumn(t *testing.T) {
	schema := NewSchema(
		Field{Name: "a", Type: DataTypeInt64},
		Field{Name: "b", Type: DataTypeFloat64},
	)
	col, err := NewColumn(schema, "b")
	require.NoError(t, err)
	require.Equal(t, &ColumnExpr{Name: "b", Index: 1}, col)
	require.Equal(t, "b@1", col.String())

	_, err = NewColumn(schema, "missing")
	require.ErrorContains(t, err, `column "missing" not found`)
}
