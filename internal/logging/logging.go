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

// Package logging provides the slog handler used by the command line
// tools. One record per line, key=value pairs, group keys dotted.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jba/slog/withsupport"
)

// Handler is a line oriented text slog.Handler.
type Handler struct {
	opts slog.HandlerOptions
	goa  *withsupport.GroupOrAttrs

	mu  *sync.Mutex
	out io.Writer
}

var _ slog.Handler = (*Handler)(nil)

// New returns a Handler writing to out. A nil opts uses defaults.
func New(out io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{out: out, mu: &sync.Mutex{}}
	if opts != nil {
		h.opts = *opts
	}
	if h.opts.Level == nil {
		h.opts.Level = slog.LevelInfo
	}
	return h
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.goa = h.goa.WithGroup(name)
	return &h2
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	h2.goa = h.goa.WithAttrs(attrs)
	return &h2
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, 1024)
	if !r.Time.IsZero() {
		buf = h.appendAttr(buf, nil, slog.Time(slog.TimeKey, r.Time))
	}
	buf = h.appendAttr(buf, nil, slog.Any(slog.LevelKey, r.Level))
	buf = h.appendAttr(buf, nil, slog.String(slog.MessageKey, r.Message))
	groups := h.goa.Apply(func(gs []string, a slog.Attr) {
		buf = h.appendAttr(buf, gs, a)
	})
	r.Attrs(func(a slog.Attr) bool {
		buf = h.appendAttr(buf, groups, a)
		return true
	})
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(buf)
	return err
}

func (h *Handler) appendAttr(buf []byte, groups []string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		if len(attrs) == 0 {
			return buf
		}
		// An empty group key inlines the members.
		if a.Key != "" {
			groups = append(groups[:len(groups):len(groups)], a.Key)
		}
		for _, ga := range attrs {
			buf = h.appendAttr(buf, groups, ga)
		}
		return buf
	}

	if len(buf) > 0 {
		buf = append(buf, ' ')
	}
	for _, g := range groups {
		buf = append(buf, g...)
		buf = append(buf, '.')
	}
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	return appendValue(buf, a.Value)
}

func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindString:
		return appendString(buf, v.String())
	case slog.KindTime:
		return append(buf, v.Time().Format(time.RFC3339Nano)...)
	default:
		return appendString(buf, fmt.Sprint(v.Any()))
	}
}

// appendString quotes only when the raw form would break the line format.
func appendString(buf []byte, s string) []byte {
	if s == "" || strings.ContainsAny(s, " =\"\n") {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}
