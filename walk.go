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

// Walk applies fn to every element of s purely for its side effects,
// discarding the results, and returns s unchanged so further operations can
// chain on the same data. Invocation semantics are identical to [Map]:
// ascending index order, single goroutine, all or nothing on error.
func Walk(s Seq, fn Fn, opts ...Options) (Seq, error) {
	return WalkN([]Seq{s}, fn, opts...)
}

// Walk2 is [Walk] across two aligned sequences, returning the first.
func Walk2(a, b Seq, fn Fn, opts ...Options) (Seq, error) {
	return WalkN([]Seq{a, b}, fn, opts...)
}

// WalkN is [Walk] across any number of aligned sequences, returning the
// first.
func WalkN(inputs []Seq, fn Fn, opts ...Options) (Seq, error) {
	var opt applyopts.Struct
	opt.Join(opts...)

	if err := forEachTuple(inputs, fn, &opt, nil); err != nil {
		return Seq{}, err
	}
	return inputs[0], nil
}
