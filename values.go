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
	"math"

	"golang.org/x/exp/constraints"
	"lostluck.dev/apply-go/frame"
)

// Kind is the discriminant of a [Value].
//
// The tagged representation keeps the untyped result path free of reflection:
// a mapping call that asserts no result type accumulates Values of any kind,
// while the typed variants check each result's Kind against the assertion.
type Kind int

const (
	// KindOpaque holds an arbitrary caller value with no further meaning
	// to this package.
	KindOpaque Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	// KindTab holds a [frame.Frame], the element type consumed by row binding.
	KindTab
)

func (k Kind) String() string {
	switch k {
	case KindOpaque:
		return "opaque"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindTab:
		return "tab"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged variant holding one element of a [Seq], or one result of
// a mapping call. The zero Value is an opaque nil.
type Value struct {
	kind Kind

	num  uint64 // bool, int and float payloads.
	str  string
	tab  *frame.Frame
	some any
}

// BoolValue returns a Value of KindBool.
func BoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// IntValue returns a Value of KindInt for any integer type.
func IntValue[E constraints.Integer](v E) Value {
	return Value{kind: KindInt, num: uint64(int64(v))}
}

// FloatValue returns a Value of KindFloat for any float type.
func FloatValue[E constraints.Float](v E) Value {
	return Value{kind: KindFloat, num: math.Float64bits(float64(v))}
}

// StringValue returns a Value of KindString.
func StringValue(v string) Value {
	return Value{kind: KindString, str: v}
}

// TabValue returns a Value of KindTab wrapping the given frame.
func TabValue(f *frame.Frame) Value {
	return Value{kind: KindTab, tab: f}
}

// AnyValue returns a Value for the supplied value, promoting the basic Go
// kinds to their tagged equivalents. Values of any other type are opaque.
func AnyValue(v any) Value {
	switch v := v.(type) {
	case Value:
		return v
	case bool:
		return BoolValue(v)
	case int:
		return IntValue(v)
	case int8:
		return IntValue(v)
	case int16:
		return IntValue(v)
	case int32:
		return IntValue(v)
	case int64:
		return IntValue(v)
	case uint:
		return IntValue(v)
	case uint8:
		return IntValue(v)
	case uint16:
		return IntValue(v)
	case uint32:
		return IntValue(v)
	case uint64:
		return IntValue(v)
	case float32:
		return FloatValue(v)
	case float64:
		return FloatValue(v)
	case string:
		return StringValue(v)
	case *frame.Frame:
		return TabValue(v)
	default:
		return Value{kind: KindOpaque, some: v}
	}
}

// Kind reports the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the value as a bool. It panics for other kinds.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic(fmt.Sprintf("apply: Bool called on %v value", v.kind))
	}
	return v.num == 1
}

// Int64 returns the value as an int64. It panics for other kinds.
func (v Value) Int64() int64 {
	if v.kind != KindInt {
		panic(fmt.Sprintf("apply: Int64 called on %v value", v.kind))
	}
	return int64(v.num)
}

// Float64 returns the value as a float64. It panics for other kinds.
func (v Value) Float64() float64 {
	if v.kind != KindFloat {
		panic(fmt.Sprintf("apply: Float64 called on %v value", v.kind))
	}
	return math.Float64frombits(v.num)
}

// Tab returns the value as a frame. It panics for other kinds.
func (v Value) Tab() *frame.Frame {
	if v.kind != KindTab {
		panic(fmt.Sprintf("apply: Tab called on %v value", v.kind))
	}
	return v.tab
}

// Any returns the underlying value for any kind.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.num == 1
	case KindInt:
		return int64(v.num)
	case KindFloat:
		return math.Float64frombits(v.num)
	case KindString:
		return v.str
	case KindTab:
		return v.tab
	default:
		return v.some
	}
}

// String formats the value like fmt.Sprint, for any kind.
func (v Value) String() string {
	if v.kind == KindString {
		return v.str
	}
	return fmt.Sprint(v.Any())
}

// Equal reports whether two values have the same kind and payload. Tab
// values compare by frame content, opaque values by interface equality.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == w.str
	case KindTab:
		return v.tab.Equal(w.tab)
	case KindOpaque:
		return v.some == w.some
	default:
		return v.num == w.num
	}
}

// asBool reports the value as a bool if it conforms to KindBool.
func (v Value) asBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.num == 1, true
}

// asInt reports the value as an int64 if it conforms to KindInt.
// Floats conform when they are integral and within the int64 range.
func (v Value) asInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return int64(v.num), true
	case KindFloat:
		f := math.Float64frombits(v.num)
		if f != math.Trunc(f) || math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

// asFloat reports the value as a float64 if it conforms to KindFloat.
// Ints conform when they are exactly representable as a float64.
func (v Value) asFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return math.Float64frombits(v.num), true
	case KindInt:
		n := int64(v.num)
		f := float64(n)
		// The round trip check needs f back in int64 range first.
		if f >= math.MaxInt64 || int64(f) != n {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// asString reports the value as a string if it conforms to KindString.
func (v Value) asString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// asTab reports the value as a frame if it conforms to KindTab.
func (v Value) asTab() (*frame.Frame, bool) {
	if v.kind != KindTab {
		return nil, false
	}
	return v.tab, true
}
