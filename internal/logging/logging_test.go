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

package logging

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"testing/slogtest"
	"time"
)

func TestSlogtest(t *testing.T) {
	var buf bytes.Buffer
	err := slogtest.TestHandler(New(&buf, nil), func() []map[string]any {
		var ms []map[string]any
		for _, line := range strings.Split(buf.String(), "\n") {
			if line == "" {
				continue
			}
			ms = append(ms, parseLine(t, line))
		}
		return ms
	})
	if err != nil {
		t.Fatal(err)
	}
}

// parseLine rebuilds the record map from one emitted line.
func parseLine(t *testing.T, line string) map[string]any {
	t.Helper()
	m := map[string]any{}
	for _, tok := range tokenize(t, strings.TrimSuffix(line, "\n")) {
		key, val, ok := strings.Cut(tok, "=")
		if !ok {
			t.Fatalf("token %q has no key", tok)
		}
		if strings.HasPrefix(val, `"`) {
			uq, err := strconv.Unquote(val)
			if err != nil {
				t.Fatalf("bad quoting in token %q: %v", tok, err)
			}
			val = uq
		}
		put(m, strings.Split(key, "."), convert(key, val))
	}
	return m
}

// tokenize splits on spaces, keeping quoted values intact.
func tokenize(t *testing.T, line string) []string {
	t.Helper()
	var toks []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && inQuote && i+1 < len(line):
			cur.WriteByte(c)
			i++
			cur.WriteByte(line[i])
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == ' ' && !inQuote:
			if cur.Len() > 0 {
				toks = append(toks, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteByte(c)
		}
	}
	if cur.Len() > 0 {
		toks = append(toks, cur.String())
	}
	return toks
}

// put stores val under a dotted key path, creating nested group maps.
func put(m map[string]any, path []string, val any) {
	for _, g := range path[:len(path)-1] {
		sub, ok := m[g].(map[string]any)
		if !ok {
			sub = map[string]any{}
			m[g] = sub
		}
		m = sub
	}
	m[path[len(path)-1]] = val
}

func convert(key, val string) any {
	switch key {
	case slog.TimeKey:
		if ts, err := time.Parse(time.RFC3339Nano, val); err == nil {
			return ts
		}
	case slog.LevelKey:
		var l slog.Level
		if err := l.UnmarshalText([]byte(val)); err == nil {
			return l
		}
	}
	return val
}

func TestHandlerIndependence(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(New(&buf, nil))

	scoped := base.With("run", "r1")
	scoped.Info("msg1")
	if got := buf.String(); !strings.Contains(got, "run=r1") {
		t.Errorf("scoped logger missing attr, got %q", got)
	}

	// The base logger must not inherit the scoped attrs.
	buf.Reset()
	base.Info("msg2")
	if got := buf.String(); strings.Contains(got, "run=r1") {
		t.Errorf("base logger aliasing scoped attrs, got %q", got)
	}
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(New(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	l.Info("quiet")
	if got := buf.String(); got != "" {
		t.Errorf("info emitted below the configured level: %q", got)
	}
	l.Warn("loud")
	if got := buf.String(); !strings.Contains(got, "msg=loud") {
		t.Errorf("warn not emitted at the configured level: %q", got)
	}
}
