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

package applyopts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestJoin(t *testing.T) {
	var dst Struct
	dst.Join(
		&Struct{Extras: []any{1}},
		&Struct{Named: []NamedExtra{{Name: "x", Value: 2}}},
		&Struct{IDColumn: "first"},
		&Struct{Extras: []any{3}, IDColumn: "second"},
		&Struct{Init: 0, HasInit: true},
	)
	want := Struct{
		Extras:   []any{1, 3},
		Named:    []NamedExtra{{Name: "x", Value: 2}},
		IDColumn: "second",
		Init:     0,
		HasInit:  true,
	}
	if d := cmp.Diff(want, dst); d != "" {
		t.Errorf("Join diff (-want, +got):\n%v", d)
	}
}

func TestJoinEmpty(t *testing.T) {
	var dst Struct
	dst.Join()
	if d := cmp.Diff(Struct{}, dst); d != "" {
		t.Errorf("Join of nothing diff (-want, +got):\n%v", d)
	}
}
