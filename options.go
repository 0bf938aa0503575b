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

// Options configure the mapping operations. Each operation takes a variadic
// list of options; extra arguments accumulate in supplied order, while
// single valued properties set in later options override earlier ones.
type Options = applyopts.Options

// Extra supplies fixed arguments passed to the function on every
// invocation, after the aligned input elements, in the given order.
func Extra(vals ...Value) Options {
	extras := make([]any, len(vals))
	for i, v := range vals {
		extras[i] = v
	}
	return &applyopts.Struct{Extras: extras}
}

// ExtraNamed supplies one fixed argument matched against the function's
// declared parameter names when it implements [ParamNamer]. Named matching
// takes precedence over positional order when a name matches unambiguously;
// otherwise the argument falls back to positional order.
func ExtraNamed(name string, v Value) Options {
	return &applyopts.Struct{Named: []applyopts.NamedExtra{{Name: name, Value: v}}}
}

// ID sets the identifier column name for [MapBindRows]. Each block's rows
// are tagged with the name associated with the input element that produced
// the block.
func ID(column string) Options {
	return &applyopts.Struct{IDColumn: column}
}

// Init sets the initial accumulator for [Reduce].
func Init(v Value) Options {
	return &applyopts.Struct{Init: v, HasInit: true}
}
