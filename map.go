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

	"lostluck.dev/apply-go/internal/applyopts"
)

// Map applies fn once per element of s, in ascending index order, and
// collects the results into a new sequence of the same length. The result
// carries the input's name association, so a mapped sequence can still feed
// an identifier tagged row bind.
//
// Any error from fn aborts the remaining iteration and is returned
// unmodified; accumulated results are discarded.
func Map(s Seq, fn Fn, opts ...Options) (Seq, error) {
	return MapN([]Seq{s}, fn, opts...)
}

// Map2 applies fn across two sequences of identical length, pairing the
// elements at each position. Differing lengths fail with a
// [LengthMismatchError] before fn is invoked at all.
func Map2(a, b Seq, fn Fn, opts ...Options) (Seq, error) {
	return MapN([]Seq{a, b}, fn, opts...)
}

// MapN applies fn across any number of sequences of identical length,
// passing the i-th element of each input, in input order, followed by any
// fixed extra arguments. The result carries the first input's name
// association.
func MapN(inputs []Seq, fn Fn, opts ...Options) (Seq, error) {
	var opt applyopts.Struct
	opt.Join(opts...)

	var out []Value
	err := forEachTuple(inputs, fn, &opt, func(i int, v Value) {
		if out == nil {
			out = make([]Value, 0, inputs[0].Len())
		}
		out = append(out, v)
	})
	if err != nil {
		return Seq{}, err
	}
	if out == nil {
		out = []Value{}
	}
	return Seq{elems: out, names: inputs[0].Names()}, nil
}

// MapBool is Map asserting that every result is a bool, per the conformance
// rules of [Seq.Bools].
func MapBool(s Seq, fn Fn, opts ...Options) ([]bool, error) {
	out, err := Map(s, fn, opts...)
	if err != nil {
		return nil, err
	}
	return out.Bools()
}

// MapInt is Map asserting that every result conforms to int64, per the
// conformance rules of [Seq.Ints].
func MapInt(s Seq, fn Fn, opts ...Options) ([]int64, error) {
	out, err := Map(s, fn, opts...)
	if err != nil {
		return nil, err
	}
	return out.Ints()
}

// MapFloat is Map asserting that every result conforms to float64, per the
// conformance rules of [Seq.Floats].
func MapFloat(s Seq, fn Fn, opts ...Options) ([]float64, error) {
	out, err := Map(s, fn, opts...)
	if err != nil {
		return nil, err
	}
	return out.Floats()
}

// MapString is Map asserting that every result is a string, per the
// conformance rules of [Seq.Strings].
func MapString(s Seq, fn Fn, opts ...Options) ([]string, error) {
	out, err := Map(s, fn, opts...)
	if err != nil {
		return nil, err
	}
	return out.Strings()
}

// forEachTuple drives one mapping pass: validate alignment, resolve the
// fixed extra arguments once, then invoke fn per ascending position.
// observe sees each result in call order; a nil observe discards them,
// which is the walk behavior.
func forEachTuple(inputs []Seq, fn Fn, opt *applyopts.Struct, observe func(i int, v Value)) error {
	n, err := alignedLen(inputs)
	if err != nil {
		return err
	}
	extras, err := bindExtras(fn, len(inputs), opt)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		// A fresh argument slice per call; fn may legitimately retain it.
		args := make([]Value, 0, len(inputs)+len(extras))
		for _, s := range inputs {
			args = append(args, s.At(i))
		}
		args = append(args, extras...)
		v, err := fn.Call(args)
		if err != nil {
			return err
		}
		if observe != nil {
			observe(i, v)
		}
	}
	return nil
}

// alignedLen returns the common length of the inputs, or a
// [LengthMismatchError] listing every input length when they differ.
func alignedLen(inputs []Seq) (int, error) {
	if len(inputs) == 0 {
		return 0, fmt.Errorf("apply: at least one input sequence is required")
	}
	n := inputs[0].Len()
	for _, s := range inputs[1:] {
		if s.Len() != n {
			lengths := make([]int, len(inputs))
			for i, in := range inputs {
				lengths[i] = in.Len()
			}
			return 0, &LengthMismatchError{Lengths: lengths}
		}
	}
	return n, nil
}
