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
	"fmt"

	"golang.org/x/exp/constraints"
	"lostluck.dev/apply-go/frame"
)

// Seq is an immutable ordered sequence of [Value] elements.
//
// A Seq may carry a parallel name association, one name per position, used
// by [MapBindRows] to tag the rows each element contributes. An empty string
// means the position is unnamed. The zero Seq is empty and unnamed.
type Seq struct {
	elems []Value
	names []string // nil when wholly unnamed, else len(names) == len(elems).
}

// SeqOf returns a sequence of the given elements.
func SeqOf(elems ...Value) Seq {
	return Seq{elems: elems}
}

// NamedSeqOf returns a sequence with one name per element.
//
// It panics if the two slices differ in length, as that is a construction
// mistake rather than a data condition.
func NamedSeqOf(names []string, elems []Value) Seq {
	if len(names) != len(elems) {
		panic(fmt.Sprintf("apply: NamedSeqOf given %d names for %d elements", len(names), len(elems)))
	}
	return Seq{elems: elems, names: names}
}

// Bools returns a sequence of KindBool values.
func Bools(xs []bool) Seq {
	elems := make([]Value, len(xs))
	for i, x := range xs {
		elems[i] = BoolValue(x)
	}
	return Seq{elems: elems}
}

// Ints returns a sequence of KindInt values from any integer slice.
func Ints[E constraints.Integer](xs []E) Seq {
	elems := make([]Value, len(xs))
	for i, x := range xs {
		elems[i] = IntValue(x)
	}
	return Seq{elems: elems}
}

// Floats returns a sequence of KindFloat values from any float slice.
func Floats[E constraints.Float](xs []E) Seq {
	elems := make([]Value, len(xs))
	for i, x := range xs {
		elems[i] = FloatValue(x)
	}
	return Seq{elems: elems}
}

// Strings returns a sequence of KindString values.
func Strings(xs []string) Seq {
	elems := make([]Value, len(xs))
	for i, x := range xs {
		elems[i] = StringValue(x)
	}
	return Seq{elems: elems}
}

// Tabs returns a sequence of KindTab values.
func Tabs(xs []*frame.Frame) Seq {
	elems := make([]Value, len(xs))
	for i, x := range xs {
		elems[i] = TabValue(x)
	}
	return Seq{elems: elems}
}

// Len reports the number of elements.
func (s Seq) Len() int { return len(s.elems) }

// At returns the element at position i.
func (s Seq) At(i int) Value { return s.elems[i] }

// Name returns the name associated with position i, or "" if unnamed.
func (s Seq) Name(i int) string {
	if s.names == nil {
		return ""
	}
	return s.names[i]
}

// Named reports whether the sequence carries a name association.
func (s Seq) Named() bool { return s.names != nil }

// Names returns a copy of the name association, or nil for an unnamed
// sequence.
func (s Seq) Names() []string {
	if s.names == nil {
		return nil
	}
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Values returns a copy of the elements.
func (s Seq) Values() []Value {
	out := make([]Value, len(s.elems))
	copy(out, s.elems)
	return out
}

// Equal reports whether two sequences have equal elements and names.
func (s Seq) Equal(t Seq) bool {
	if len(s.elems) != len(t.elems) || (s.names == nil) != (t.names == nil) {
		return false
	}
	for i := range s.elems {
		if !s.elems[i].Equal(t.elems[i]) {
			return false
		}
		if s.names != nil && s.names[i] != t.names[i] {
			return false
		}
	}
	return true
}

// Bools extracts the elements as a []bool, or fails with a
// [TypeConformanceError] naming the first position of another kind.
func (s Seq) Bools() ([]bool, error) {
	out := make([]bool, len(s.elems))
	for i, v := range s.elems {
		b, ok := v.asBool()
		if !ok {
			return nil, &TypeConformanceError{Pos: i, Want: KindBool, Got: v.kind}
		}
		out[i] = b
	}
	return out, nil
}

// Ints extracts the elements as a []int64. Float elements conform when they
// are integral and in range; anything else fails with a
// [TypeConformanceError] naming the first offending position.
func (s Seq) Ints() ([]int64, error) {
	out := make([]int64, len(s.elems))
	for i, v := range s.elems {
		n, ok := v.asInt()
		if !ok {
			return nil, &TypeConformanceError{Pos: i, Want: KindInt, Got: v.kind}
		}
		out[i] = n
	}
	return out, nil
}

// Floats extracts the elements as a []float64. Int elements conform when
// exactly representable; anything else fails with a [TypeConformanceError]
// naming the first offending position.
func (s Seq) Floats() ([]float64, error) {
	out := make([]float64, len(s.elems))
	for i, v := range s.elems {
		f, ok := v.asFloat()
		if !ok {
			return nil, &TypeConformanceError{Pos: i, Want: KindFloat, Got: v.kind}
		}
		out[i] = f
	}
	return out, nil
}

// Strings extracts the elements as a []string, or fails with a
// [TypeConformanceError] naming the first position of another kind. No
// formatting coercion is applied; only KindString elements conform.
func (s Seq) Strings() ([]string, error) {
	out := make([]string, len(s.elems))
	for i, v := range s.elems {
		str, ok := v.asString()
		if !ok {
			return nil, &TypeConformanceError{Pos: i, Want: KindString, Got: v.kind}
		}
		out[i] = str
	}
	return out, nil
}

// Tabs extracts the elements as frames, or fails with a
// [TypeConformanceError] naming the first position of another kind.
func (s Seq) Tabs() ([]*frame.Frame, error) {
	out := make([]*frame.Frame, len(s.elems))
	for i, v := range s.elems {
		t, ok := v.asTab()
		if !ok {
			return nil, &TypeConformanceError{Pos: i, Want: KindTab, Got: v.kind}
		}
		out[i] = t
	}
	return out, nil
}
