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

// Package applyopts holds the option set shared across apply packages.
package applyopts

import "lostluck.dev/apply-go/internal"

// Options is the common options type shared across apply packages.
type Options interface {
	// ApplyOptions is exported so related packages can implement Options.
	ApplyOptions(internal.NotForPublicUse)
}

// NamedExtra is one named fixed argument. The value is stored as any to
// keep this package free of the public Value type; the root package owns
// the conversion.
type NamedExtra struct {
	Name  string
	Value any
}

// Struct is the combination of all options in struct form.
// This is efficient to pass down the call stack and to query.
type Struct struct {
	Extras   []any        // Positional fixed arguments, in supplied order.
	Named    []NamedExtra // Named fixed arguments, in supplied order.
	IDColumn string       // Identifier column name for row binding.
	Init     any          // Initial accumulator for folds, when set.
	HasInit  bool
}

func (dst *Struct) ApplyOptions(internal.NotForPublicUse) {}

func (dst *Struct) Join(srcs ...Options) {
	for _, src := range srcs {
		switch src := src.(type) {
		case *Struct:
			dst.Extras = append(dst.Extras, src.Extras...)
			dst.Named = append(dst.Named, src.Named...)
			if src.IDColumn != "" {
				dst.IDColumn = src.IDColumn
			}
			if src.HasInit {
				dst.Init = src.Init
				dst.HasInit = true
			}
		}
	}
}
