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

package apply

import (
	"errors"
	"fmt"
)

// LengthMismatchError reports mapping inputs of differing lengths. The
// mapping function is never invoked when the inputs misalign.
type LengthMismatchError struct {
	// Lengths holds the length of each input sequence, in supplied order.
	Lengths []int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("apply: input sequences have mismatched lengths %v", e.Lengths)
}

// TypeConformanceError reports a result that does not conform to the
// asserted homogeneous type of a typed mapping variant.
type TypeConformanceError struct {
	Pos  int // Position of the first nonconforming result.
	Want Kind
	Got  Kind
}

func (e *TypeConformanceError) Error() string {
	return fmt.Sprintf("apply: result at position %d is %v, want %v", e.Pos, e.Got, e.Want)
}

// ErrEmptySeq is returned by [Reduce] when the input is empty and no
// initial value was supplied with [Init].
var ErrEmptySeq = errors.New("apply: reduce of empty sequence without an initial value")
