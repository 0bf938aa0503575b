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
	"lostluck.dev/apply-go/frame"
	"lostluck.dev/apply-go/internal/applyopts"
)

// MapTab is Map asserting that every result is a frame, per the conformance
// rules of [Seq.Tabs].
func MapTab(s Seq, fn Fn, opts ...Options) ([]*frame.Frame, error) {
	out, err := Map(s, fn, opts...)
	if err != nil {
		return nil, err
	}
	return out.Tabs()
}

// MapBindRows maps s through a frame producing fn and concatenates the
// resulting blocks into one frame with [frame.BindRows], in input order.
//
// With the [ID] option the output gains a leading identifier column and
// each block's rows are tagged with the name associated with the input
// element that produced the block; an unnamed input fails with a
// [frame.MissingIdentifierError].
func MapBindRows(s Seq, fn Fn, opts ...Options) (*frame.Frame, error) {
	var opt applyopts.Struct
	opt.Join(opts...)

	blocks, err := MapTab(s, fn, opts...)
	if err != nil {
		return nil, err
	}
	if opt.IDColumn == "" {
		return frame.BindRows(blocks)
	}
	return frame.BindRowsID(opt.IDColumn, s.Names(), blocks)
}
