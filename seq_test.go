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

func TestSeqConstructors(t *testing.T) {
	s := apply.Ints([]int32{1, 2, 3})
	if got, want := s.Len(), 3; got != want {
		t.Fatalf("Len got %v, want %v", got, want)
	}
	if got, want := s.At(1).Int64(), int64(2); got != want {
		t.Errorf("At(1) got %v, want %v", got, want)
	}
	if s.Named() {
		t.Error("Ints produced a named sequence, want unnamed")
	}
	if got := s.Name(0); got != "" {
		t.Errorf("Name(0) on an unnamed sequence got %q, want empty", got)
	}
}

func TestNamedSeqOf(t *testing.T) {
	s := apply.NamedSeqOf([]string{"x", ""}, []apply.Value{apply.IntValue(1), apply.IntValue(2)})
	if !s.Named() {
		t.Fatal("NamedSeqOf produced an unnamed sequence")
	}
	if d := cmp.Diff([]string{"x", ""}, s.Names()); d != "" {
		t.Errorf("Names diff (-want, +got):\n%v", d)
	}

	defer func() {
		if recover() == nil {
			t.Error("NamedSeqOf with mismatched lengths did not panic")
		}
	}()
	apply.NamedSeqOf([]string{"only"}, nil)
}

func TestSeqExtraction(t *testing.T) {
	t.Run("floats", func(t *testing.T) {
		got, err := apply.SeqOf(apply.FloatValue(1.5), apply.IntValue(2)).Floats()
		if err != nil {
			t.Fatalf("Floats failed: %v", err)
		}
		if d := cmp.Diff([]float64{1.5, 2}, got); d != "" {
			t.Errorf("Floats diff (-want, +got):\n%v", d)
		}
	})
	t.Run("firstOffendingPosition", func(t *testing.T) {
		_, err := apply.SeqOf(
			apply.StringValue("ok"),
			apply.IntValue(1),
			apply.BoolValue(true),
		).Strings()
		var conf *apply.TypeConformanceError
		if !errors.As(err, &conf) {
			t.Fatalf("Strings error got %v, want TypeConformanceError", err)
		}
		if got, want := conf.Pos, 1; got != want {
			t.Errorf("Pos got %v, want %v (the first offender, not the last)", got, want)
		}
	})
	t.Run("empty", func(t *testing.T) {
		got, err := apply.SeqOf().Bools()
		if err != nil {
			t.Fatalf("Bools on empty failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Bools on empty got %v, want empty", got)
		}
	})
}

func TestSeqEqual(t *testing.T) {
	a := apply.Ints([]int{1, 2})
	named := apply.NamedSeqOf([]string{"x", "y"}, a.Values())
	tests := []struct {
		name string
		s, u apply.Seq
		want bool
	}{
		{"same", a, apply.Ints([]int{1, 2}), true},
		{"diffLen", a, apply.Ints([]int{1}), false},
		{"diffElem", a, apply.Ints([]int{1, 3}), false},
		{"namedVsUnnamed", a, named, false},
		{"sameNamed", named, apply.NamedSeqOf([]string{"x", "y"}, a.Values()), true},
		{"diffNames", named, apply.NamedSeqOf([]string{"x", "z"}, a.Values()), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.s.Equal(test.u); got != test.want {
				t.Errorf("Equal got %v, want %v", got, test.want)
			}
		})
	}
}

func TestSeqValuesCopies(t *testing.T) {
	s := apply.Ints([]int{1, 2})
	vals := s.Values()
	vals[0] = apply.IntValue(99)
	if got, want := s.At(0).Int64(), int64(1); got != want {
		t.Errorf("mutating the Values copy changed the sequence: got %v, want %v", got, want)
	}
}
