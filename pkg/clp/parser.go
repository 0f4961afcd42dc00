// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package clp

import "strings"

// Option configures the Parser.
type Option func(*Parser)

// Parser extracts property values from raw CLP output blocks.
type Parser struct {
	kvDelimiter string
	quoteChars  string
}

// WithKVDelimiter sets the key-value delimiter used when matching properties.
// Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithQuoteChars sets the characters treated as value quotes.
// Default is `"'`.
func WithQuoteChars(chars string) Option {
	return func(p *Parser) {
		p.quoteChars = chars
	}
}

// NewParser creates a new CLP output parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		kvDelimiter: "=",
		quoteChars:  `"'`,
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Field scans the output block top to bottom and returns the value of the
// first line whose trimmed form starts with "<key><delimiter>". The reported
// boolean is false when no line matches. Only the first occurrence of the
// delimiter is significant; the rest of the line is the value verbatim, so
// values containing spaces, punctuation, or further delimiter characters
// survive intact.
func (p *Parser) Field(block, key string) (string, bool) {
	prefix := key + p.kvDelimiter

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		return p.trimValue(line[len(prefix):]), true
	}

	return "", false
}

// trimValue strips surrounding whitespace and a single layer of matching
// quote characters. Unbalanced quotes are left alone.
func (p *Parser) trimValue(v string) string {
	v = strings.TrimSpace(v)

	if len(v) >= 2 {
		first := v[0]
		last := v[len(v)-1]
		if first == last && strings.IndexByte(p.quoteChars, first) >= 0 {
			v = v[1 : len(v)-1]
		}
	}

	return v
}
