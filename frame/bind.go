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

package frame

import (
	"fmt"
	"sort"
	"strings"
)

// SchemaMismatchError reports blocks with inconsistent column sets handed
// to row binding. Block 0 defines the expected set.
type SchemaMismatchError struct {
	Block int // Index of the first divergent block.
	Want  []string
	Got   []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("frame: block %d columns %v differ from %v by %s",
		e.Block, e.Got, e.Want, strings.Join(e.diff(), ", "))
}

// diff lists the columns present in exactly one of the two sets.
func (e *SchemaMismatchError) diff() []string {
	want := make(map[string]bool, len(e.Want))
	for _, c := range e.Want {
		want[c] = true
	}
	var out []string
	for _, c := range e.Got {
		if !want[c] {
			out = append(out, "+"+c)
		}
		delete(want, c)
	}
	for c := range want {
		out = append(out, "-"+c)
	}
	sort.Strings(out)
	return out
}

// MissingIdentifierError reports an identifier tagged row bind over a block
// with no associated name.
type MissingIdentifierError struct {
	Block int
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("frame: block %d has no identifier for the id column", e.Block)
}

// BindRows concatenates the blocks into one frame, stacking rows in block
// order and preserving each block's internal row order.
//
// Every block must share the first block's column name set; column order
// may differ, cells are realigned to the first block's order. A divergent
// set fails with a [SchemaMismatchError]. Zero blocks produce an empty
// frame with no columns. A single block is returned as is.
func BindRows(blocks []*Frame) (*Frame, error) {
	switch len(blocks) {
	case 0:
		return New(), nil
	case 1:
		return blocks[0], nil
	}
	return bind(blocks, "", nil)
}

// BindRowsID concatenates the blocks like [BindRows] and prepends an
// identifier column named idColumn, tagging every row from block i with
// labels[i]. A block without a label (an empty string, or a labels slice
// shorter than the blocks) fails with a [MissingIdentifierError].
//
// Zero blocks produce an empty frame holding just the identifier column.
func BindRowsID(idColumn string, labels []string, blocks []*Frame) (*Frame, error) {
	if len(blocks) == 0 {
		return New(idColumn), nil
	}
	for i := range blocks {
		if i >= len(labels) || labels[i] == "" {
			return nil, &MissingIdentifierError{Block: i}
		}
	}
	return bind(blocks, idColumn, labels)
}

func bind(blocks []*Frame, idColumn string, labels []string) (*Frame, error) {
	first := blocks[0]
	cols := first.Columns()
	outCols := cols
	if idColumn != "" {
		outCols = append([]string{idColumn}, cols...)
	}
	out := New(outCols...)

	for bi, blk := range blocks {
		// Realign this block's cells to the first block's column order.
		perm, ok := alignment(first, blk)
		if !ok {
			return nil, &SchemaMismatchError{Block: bi, Want: cols, Got: blk.Columns()}
		}
		for _, row := range blk.rows {
			cells := make([]any, 0, len(outCols))
			if idColumn != "" {
				cells = append(cells, labels[bi])
			}
			for _, j := range perm {
				cells = append(cells, row[j])
			}
			out.rows = append(out.rows, cells)
		}
	}
	return out, nil
}

// alignment maps the reference frame's column positions onto blk's, or
// reports that the two column sets differ.
func alignment(ref, blk *Frame) ([]int, bool) {
	if len(ref.cols) != len(blk.cols) {
		return nil, false
	}
	perm := make([]int, len(ref.cols))
	for i, c := range ref.cols {
		j, ok := blk.index[c]
		if !ok {
			return nil, false
		}
		perm[i] = j
	}
	return perm, true
}
