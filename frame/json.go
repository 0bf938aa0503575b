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

package frame

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// WriteJSON writes the frame to w as a JSON array of objects, one per row,
// keyed by column name in the frame's column order. Cell values marshal
// with their natural JSON representation.
func (f *Frame) WriteJSON(w io.Writer) error {
	enc := jsontext.NewEncoder(w)
	if err := enc.WriteToken(jsontext.ArrayStart); err != nil {
		return err
	}
	for _, row := range f.rows {
		if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
			return err
		}
		for j, col := range f.cols {
			if err := enc.WriteToken(jsontext.String(col)); err != nil {
				return err
			}
			if err := json.MarshalEncode(enc, row[j]); err != nil {
				return err
			}
		}
		if err := enc.WriteToken(jsontext.ObjectEnd); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.ArrayEnd)
}
