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

// Fn is the callable invoked once per aligned element tuple by the mapping
// operations. The arguments are the aligned elements in input order,
// followed by any fixed extra arguments bound with [Extra] or [ExtraNamed].
//
// Plain funcs adapt through [Func], [Unary] or [Binary]. Struct callables
// work too, and may carry their fixed configuration as fields instead of
// bound extras, in which case no options are needed at all.
type Fn interface {
	Call(args []Value) (Value, error)
}

// ParamNamer is optionally implemented by an [Fn] to expose its declared
// parameter names, aligned inputs first. When present, named extra arguments
// bind to the matching declared position; unmatched names fall back to
// positional order after the positional extras.
type ParamNamer interface {
	Params() []string
}

// Func adapts a variadic func to [Fn].
type Func func(args ...Value) (Value, error)

// Call implements Fn.
func (fn Func) Call(args []Value) (Value, error) { return fn(args...) }

// Unary adapts a one argument func to [Fn]. Calls with any other argument
// count fail.
func Unary(f func(Value) (Value, error)) Fn {
	return Func(func(args ...Value) (Value, error) {
		if len(args) != 1 {
			return Value{}, fmt.Errorf("apply: unary function called with %d arguments", len(args))
		}
		return f(args[0])
	})
}

// Binary adapts a two argument func to [Fn]. Calls with any other argument
// count fail.
func Binary(f func(a, b Value) (Value, error)) Fn {
	return Func(func(args ...Value) (Value, error) {
		if len(args) != 2 {
			return Value{}, fmt.Errorf("apply: binary function called with %d arguments", len(args))
		}
		return f(args[0], args[1])
	})
}

// Partial returns a callable with fixed arguments bound onto fn, a simple
// function factory. Each call appends the bound arguments after the call's
// own arguments, under the same named matching rules as the mapping
// operations.
func Partial(fn Fn, opts ...Options) Fn {
	var opt applyopts.Struct
	opt.Join(opts...)
	return &partialFn{fn: fn, opt: opt}
}

type partialFn struct {
	fn  Fn
	opt applyopts.Struct
}

func (p *partialFn) Call(args []Value) (Value, error) {
	extras, err := bindExtras(p.fn, len(args), &p.opt)
	if err != nil {
		return Value{}, err
	}
	full := make([]Value, 0, len(args)+len(extras))
	full = append(full, args...)
	full = append(full, extras...)
	return p.fn.Call(full)
}

// Params passes the wrapped callable's names through so a partial of a
// named callable still matches by name.
func (p *partialFn) Params() []string {
	if pn, ok := p.fn.(ParamNamer); ok {
		return pn.Params()
	}
	return nil
}

// bindExtras resolves the fixed extra arguments for fn once per mapping
// call, producing the argument suffix appended after the nin aligned
// inputs of every invocation.
//
// With declared parameter names, each named extra binds to its matching
// declared slot; positional extras and unmatched named extras then fill the
// remaining slots in supplied order. Without names everything is positional,
// named extras last, in supplied order.
func bindExtras(fn Fn, nin int, opt *applyopts.Struct) ([]Value, error) {
	if len(opt.Extras) == 0 && len(opt.Named) == 0 {
		return nil, nil
	}
	queue := make([]Value, 0, len(opt.Extras)+len(opt.Named))
	for _, e := range opt.Extras {
		queue = append(queue, AnyValue(e))
	}

	var params []string
	if pn, ok := fn.(ParamNamer); ok {
		params = pn.Params()
	}
	if len(params) <= nin || len(opt.Named) == 0 {
		// No declared names for extras; everything binds positionally.
		for _, ne := range opt.Named {
			queue = append(queue, AnyValue(ne.Value))
		}
		return queue, nil
	}

	declared := params[nin:]
	slots := make([]Value, len(declared))
	filled := make([]bool, len(declared))
	for _, ne := range opt.Named {
		at := -1
		for j, name := range declared {
			if name != ne.Name {
				continue
			}
			if at >= 0 {
				// Duplicate declaration, the match is ambiguous.
				at = -1
				break
			}
			at = j
		}
		if at < 0 || filled[at] {
			queue = append(queue, AnyValue(ne.Value))
			continue
		}
		slots[at] = AnyValue(ne.Value)
		filled[at] = true
	}

	// Positional extras and fallen back named extras fill the gaps in order.
	qi := 0
	last := -1
	for j := range slots {
		if filled[j] {
			last = j
			continue
		}
		if qi < len(queue) {
			slots[j] = queue[qi]
			filled[j] = true
			qi++
			last = j
		}
	}
	for j := 0; j <= last; j++ {
		if !filled[j] {
			return nil, fmt.Errorf("apply: no argument bound for parameter %q", declared[j])
		}
	}
	out := slots[:last+1]
	// Surplus extras beyond the declared parameters keep their order; the
	// callable decides whether to accept them.
	out = append(out, queue[qi:]...)
	return out, nil
}
