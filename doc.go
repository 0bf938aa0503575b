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

// Package apply provides a small family of typed mapping utilities: apply a
// function across one or more equal length sequences, collecting the results
// into a generic sequence, a homogeneous typed slice, or a single row bound
// table.
//
// The building blocks are [Seq], an immutable ordered sequence of tagged
// [Value] elements with an optional name per position, and [Fn], the callable
// invoked once per aligned element tuple. [Map], [Map2] and [MapN] collect
// results, the typed variants ([MapBool], [MapInt], [MapFloat], [MapString],
// [MapTab]) additionally assert a homogeneous result type, and [Walk] runs a
// function purely for its side effects, handing back its input for chaining.
// [Reduce] folds a sequence down to a single value, and [MapBindRows]
// combines a table producing map with row binding from the frame package.
//
// Invocation is strictly sequential in ascending index order, on the calling
// goroutine. Callers may rely on that order for side effecting functions.
// None of the operations mutate their inputs, retry, or log; every error is
// returned synchronously and a failed call produces no partial results.
package apply
