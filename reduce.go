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

import "lostluck.dev/apply-go/internal/applyopts"

// Reduce folds s left to right into a single value. fn receives the
// accumulator and the current element, in that order, followed by any fixed
// extra arguments.
//
// With [Init] the fold starts from the supplied accumulator and visits every
// element. Without it the first element seeds the accumulator and folding
// starts at the second; reducing an empty sequence without Init fails with
// [ErrEmptySeq].
func Reduce(s Seq, fn Fn, opts ...Options) (Value, error) {
	var opt applyopts.Struct
	opt.Join(opts...)

	var acc Value
	start := 0
	switch {
	case opt.HasInit:
		acc = AnyValue(opt.Init)
	case s.Len() == 0:
		return Value{}, ErrEmptySeq
	default:
		acc = s.At(0)
		start = 1
	}

	extras, err := bindExtras(fn, 2, &opt)
	if err != nil {
		return Value{}, err
	}
	for i := start; i < s.Len(); i++ {
		args := make([]Value, 0, 2+len(extras))
		args = append(args, acc, s.At(i))
		args = append(args, extras...)
		acc, err = fn.Call(args)
		if err != nil {
			return Value{}, err
		}
	}
	return acc, nil
}

// Keep returns the elements for which pred results in true, preserving
// order and names. Predicate results must be bools; anything else fails with
// a [TypeConformanceError] naming the offending position.
func Keep(s Seq, pred Fn, opts ...Options) (Seq, error) {
	return sift(s, pred, true, opts)
}

// Discard returns the elements for which pred results in false, preserving
// order and names. The complement of [Keep].
func Discard(s Seq, pred Fn, opts ...Options) (Seq, error) {
	return sift(s, pred, false, opts)
}

func sift(s Seq, pred Fn, want bool, opts []Options) (Seq, error) {
	// A single mapping pass; the predicate runs exactly once per element,
	// with conformance checked afterwards.
	results, err := Map(s, pred, opts...)
	if err != nil {
		return Seq{}, err
	}
	var elems []Value
	var names []string
	for i := 0; i < results.Len(); i++ {
		keep, ok := results.At(i).asBool()
		if !ok {
			return Seq{}, &TypeConformanceError{Pos: i, Want: KindBool, Got: results.At(i).Kind()}
		}
		if keep != want {
			continue
		}
		elems = append(elems, s.At(i))
		if s.Named() {
			names = append(names, s.Name(i))
		}
	}
	if elems == nil {
		elems = []Value{}
	}
	if !s.Named() {
		return Seq{elems: elems}, nil
	}
	if names == nil {
		names = []string{}
	}
	return Seq{elems: elems, names: names}, nil
}
