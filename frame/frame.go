// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package frame holds a minimal tabular block: a fixed set of named columns
// and the rows beneath them, plus row binding to stack blocks of identical
// shape into one.
package frame

import "fmt"

// Frame is a table shaped record collection with named columns in a fixed
// order. Frames under construction are mutated with [Frame.Append]; the
// mapping and binding operations never mutate a frame handed to them.
type Frame struct {
	cols  []string
	index map[string]int // column name to position.
	rows  [][]any
}

// New returns an empty frame with the given column order.
//
// It panics on a duplicated column name, as that is a construction mistake
// rather than a data condition.
func New(cols ...string) *Frame {
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, ok := index[c]; ok {
			panic(fmt.Sprintf("frame: duplicate column %q", c))
		}
		index[c] = i
	}
	return &Frame{cols: cols, index: index}
}

// Append adds one row. It panics when the cell count does not match the
// column count.
func (f *Frame) Append(cells ...any) *Frame {
	if len(cells) != len(f.cols) {
		panic(fmt.Sprintf("frame: appending %d cells to %d columns", len(cells), len(f.cols)))
	}
	f.rows = append(f.rows, cells)
	return f
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.cols))
	copy(out, f.cols)
	return out
}

// NumRows reports the row count.
func (f *Frame) NumRows() int { return len(f.rows) }

// NumCols reports the column count.
func (f *Frame) NumCols() int { return len(f.cols) }

// Row returns a copy of row i.
func (f *Frame) Row(i int) []any {
	out := make([]any, len(f.rows[i]))
	copy(out, f.rows[i])
	return out
}

// Cell returns the value at row i in the named column, and whether the
// column exists.
func (f *Frame) Cell(i int, col string) (any, bool) {
	j, ok := f.index[col]
	if !ok {
		return nil, false
	}
	return f.rows[i][j], true
}

// Clone returns a deep copy of the frame's structure. Cell values are
// copied by assignment.
func (f *Frame) Clone() *Frame {
	out := New(f.Columns()...)
	out.rows = make([][]any, len(f.rows))
	for i, r := range f.rows {
		row := make([]any, len(r))
		copy(row, r)
		out.rows[i] = row
	}
	return out
}

// Equal reports whether two frames have identical columns, order, and cell
// values. Cells compare by interface equality.
func (f *Frame) Equal(g *Frame) bool {
	if f == nil || g == nil {
		return f == g
	}
	if len(f.cols) != len(g.cols) || len(f.rows) != len(g.rows) {
		return false
	}
	for i, c := range f.cols {
		if g.cols[i] != c {
			return false
		}
	}
	for i, r := range f.rows {
		for j, cell := range r {
			if g.rows[i][j] != cell {
				return false
			}
		}
	}
	return true
}

func (f *Frame) String() string {
	return fmt.Sprintf("frame(%v, %d rows)", f.cols, len(f.rows))
}
