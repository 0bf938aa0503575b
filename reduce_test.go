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

package apply_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"lostluck.dev/apply-go"
)

var sum = apply.Binary(func(acc, v apply.Value) (apply.Value, error) {
	return apply.IntValue(acc.Int64() + v.Int64()), nil
})

func TestReduce(t *testing.T) {
	got, err := apply.Reduce(apply.Ints([]int{1, 2, 3, 4}), sum)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if want := int64(10); got.Int64() != want {
		t.Errorf("Reduce got %v, want %v", got.Int64(), want)
	}
}

func TestReduceInit(t *testing.T) {
	got, err := apply.Reduce(apply.Ints([]int{1, 2, 3}), sum, apply.Init(apply.IntValue(100)))
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if want := int64(106); got.Int64() != want {
		t.Errorf("Reduce with init got %v, want %v", got.Int64(), want)
	}
}

func TestReduceEmpty(t *testing.T) {
	_, err := apply.Reduce(apply.Ints([]int{}), sum)
	if !errors.Is(err, apply.ErrEmptySeq) {
		t.Errorf("Reduce on empty input got %v, want ErrEmptySeq", err)
	}

	got, err := apply.Reduce(apply.Ints([]int{}), sum, apply.Init(apply.IntValue(7)))
	if err != nil {
		t.Fatalf("Reduce on empty input with init failed: %v", err)
	}
	if want := int64(7); got.Int64() != want {
		t.Errorf("Reduce on empty input with init got %v, want %v", got.Int64(), want)
	}
}

func TestReduceSingleton(t *testing.T) {
	forbidden := apply.Binary(func(acc, v apply.Value) (apply.Value, error) {
		t.Error("fn invoked for a singleton reduce without init")
		return acc, nil
	})
	got, err := apply.Reduce(apply.Ints([]int{42}), forbidden)
	if err != nil {
		t.Fatalf("Reduce failed: %v", err)
	}
	if want := int64(42); got.Int64() != want {
		t.Errorf("singleton Reduce got %v, want %v", got.Int64(), want)
	}
}

var isEven = apply.Unary(func(v apply.Value) (apply.Value, error) {
	return apply.BoolValue(v.Int64()%2 == 0), nil
})

func TestKeep(t *testing.T) {
	out, err := apply.Keep(apply.Ints([]int{1, 2, 3, 4, 5}), isEven)
	if err != nil {
		t.Fatalf("Keep failed: %v", err)
	}
	kept, err := out.Ints()
	if err != nil {
		t.Fatalf("result extraction failed: %v", err)
	}
	if d := cmp.Diff([]int64{2, 4}, kept); d != "" {
		t.Errorf("Keep diff (-want, +got):\n%v", d)
	}
}

func TestDiscard(t *testing.T) {
	out, err := apply.Discard(apply.Ints([]int{1, 2, 3, 4, 5}), isEven)
	if err != nil {
		t.Fatalf("Discard failed: %v", err)
	}
	dropped, err := out.Ints()
	if err != nil {
		t.Fatalf("result extraction failed: %v", err)
	}
	if d := cmp.Diff([]int64{1, 3, 5}, dropped); d != "" {
		t.Errorf("Discard diff (-want, +got):\n%v", d)
	}
}

func TestKeepNames(t *testing.T) {
	in := apply.NamedSeqOf([]string{"a", "b", "c"},
		[]apply.Value{apply.IntValue(1), apply.IntValue(2), apply.IntValue(3)})
	out, err := apply.Keep(in, isEven)
	if err != nil {
		t.Fatalf("Keep failed: %v", err)
	}
	if d := cmp.Diff([]string{"b"}, out.Names()); d != "" {
		t.Errorf("surviving names diff (-want, +got):\n%v", d)
	}
}

func TestKeepNonBoolPredicate(t *testing.T) {
	out, err := apply.Keep(apply.Ints([]int{1, 2}), times3plus2)
	var conf *apply.TypeConformanceError
	if !errors.As(err, &conf) {
		t.Fatalf("Keep with a non-bool predicate got %v, want TypeConformanceError", err)
	}
	if got, want := out.Len(), 0; got != want {
		t.Errorf("failed Keep leaked %d results, want %v", got, want)
	}
}

func TestKeepPredicateCalledOnce(t *testing.T) {
	calls := 0
	counting := apply.Unary(func(v apply.Value) (apply.Value, error) {
		calls++
		return apply.BoolValue(true), nil
	})
	if _, err := apply.Keep(apply.Ints([]int{1, 2, 3}), counting); err != nil {
		t.Fatalf("Keep failed: %v", err)
	}
	if got, want := calls, 3; got != want {
		t.Errorf("predicate invoked %v times, want %v", got, want)
	}
}
