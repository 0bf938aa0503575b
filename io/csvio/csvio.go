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

// Package csvio reads and writes frames as delimited text, either from a
// plain reader or through a portable blob bucket URL.
//
// Cells read as strings; converting columns to numeric values is a mapping
// concern left to the caller.
package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"lostluck.dev/apply-go/frame"
)

type config struct {
	comma    rune
	noHeader bool
	enc      encoding.Encoding
}

// ReadOption configures Read and ReadBucket.
type ReadOption func(*config)

// Comma sets the field delimiter. The default is ','.
func Comma(r rune) ReadOption {
	return func(c *config) { c.comma = r }
}

// NoHeader treats the first record as data; columns are named col1..colN.
func NoHeader() ReadOption {
	return func(c *config) { c.noHeader = true }
}

// Encoding re-decodes the input from the given character encoding before
// parsing, for sources that are not UTF-8 (for example charmap.ISO8859_1).
func Encoding(e encoding.Encoding) ReadOption {
	return func(c *config) { c.enc = e }
}

// Read parses delimited text into a frame. The first record names the
// columns unless [NoHeader] is set. Every record must have the same number
// of fields. An empty input produces an empty frame with no columns.
func Read(r io.Reader, opts ...ReadOption) (*frame.Frame, error) {
	cfg := config{comma: ','}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.enc != nil {
		r = transform.NewReader(r, cfg.enc.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = cfg.comma
	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "csvio: parsing delimited input")
	}
	if len(records) == 0 {
		return frame.New(), nil
	}

	var cols []string
	if cfg.noHeader {
		cols = make([]string, len(records[0]))
		for i := range cols {
			cols[i] = fmt.Sprintf("col%d", i+1)
		}
	} else {
		cols = records[0]
		records = records[1:]
	}
	f := frame.New(cols...)
	for _, rec := range records {
		cells := make([]any, len(rec))
		for i, field := range rec {
			cells[i] = field
		}
		f.Append(cells...)
	}
	return f, nil
}

// ReadBucket reads the object at key from the bucket identified by a
// portable URL (file://, s3://, and so on, per the registered gocloud
// drivers) and parses it like [Read].
func ReadBucket(ctx context.Context, bucketURL, key string, opts ...ReadOption) (*frame.Frame, error) {
	b, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "csvio: opening bucket %v", bucketURL)
	}
	defer b.Close()
	rc, err := b.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "csvio: opening %v in %v", key, bucketURL)
	}
	defer rc.Close()
	return Read(rc, opts...)
}

// Write renders the frame as delimited text: a header record of the column
// names, then one record per row. Cells format like fmt.Sprint.
func Write(w io.Writer, f *frame.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Columns()); err != nil {
		return errors.Wrap(err, "csvio: writing header")
	}
	for i := 0; i < f.NumRows(); i++ {
		row := f.Row(i)
		rec := make([]string, len(row))
		for j, cell := range row {
			if s, ok := cell.(string); ok {
				rec[j] = s
			} else {
				rec[j] = fmt.Sprint(cell)
			}
		}
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "csvio: writing row %d", i)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "csvio: flushing output")
}
