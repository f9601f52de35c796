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
	"fmt"
	"strconv"
)

// Expr is a physical expression evaluated against a node's output rows.
// Expressions reference columns by position and are meaningless without
// the schema they were built against.
type Expr interface {
	fmt.Stringer
	expr()
}

// ColumnExpr references a single column of the input schema.
type ColumnExpr struct {
	Name  string
	Index int
}

// NewColumn builds a column reference for the named field of schema.
func NewColumn(schema *Schema, name string) (*ColumnExpr, error) {
	idx := schema.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found in schema %s", name, schema)
	}
	return &ColumnExpr{Name: name, Index: idx}, nil
}

func (*ColumnExpr) expr() {}

func (c *ColumnExpr) String() string {
	return fmt.Sprintf("%s@%d", c.Name, c.Index)
}

// LiteralExpr wraps a constant datum.
type LiteralExpr struct {
	Value Datum
}

func (*LiteralExpr) expr() {}

func (l *LiteralExpr) String() string {
	return l.Value.String()
}

// Datum is a constant scalar value.
type Datum interface {
	fmt.Stringer
	datum()
}

// DInt is an int64 datum.
type DInt int64

// DFloat is a float64 datum.
type DFloat float64

// DString is a utf8 datum.
type DString string

// DBool is a boolean datum.
type DBool bool

func (DInt) datum()    {}
func (DFloat) datum()  {}
func (DString) datum() {}
func (DBool) datum()   {}

func (d DInt) String() string    { return strconv.FormatInt(int64(d), 10) }
func (d DFloat) String() string  { return strconv.FormatFloat(float64(d), 'g', -1, 64) }
func (d DString) String() string { return strconv.Quote(string(d)) }
func (d DBool) String() string   { return strconv.FormatBool(bool(d)) }
