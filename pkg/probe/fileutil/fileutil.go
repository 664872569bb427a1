// Copyright (c) 2026, the hailodash authors. All rights reserved.
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

package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser reads small kernel interface files (/proc, /sys) with a size
// bound and splits them into lines or key-value pairs.
type Parser struct {
	maxSize     int
	kvDelimiter string
}

// WithMaxSize sets the maximum size (in bytes) of a file to be parsed.
// Default is 1MB; /proc and sysfs attribute files are far smaller.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithKVDelimiter sets the key-value delimiter used by GetMap.
// Default is ":" (the /proc/meminfo convention).
func WithKVDelimiter(delim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = delim
	}
}

// NewParser creates a new file parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		maxSize:     1 << 20,
		kvDelimiter: ":",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReadTrimmed reads the file at path and returns its content with
// surrounding whitespace and trailing NUL bytes removed. Device-tree
// files are NUL-terminated, which is why the NUL trim matters.
func (p *Parser) ReadTrimmed(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}
	if len(b) > p.maxSize {
		return "", fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}

	return strings.TrimSpace(strings.TrimRight(string(b), "\x00")), nil
}

// GetLines reads the file at path and returns its non-empty lines.
func (p *Parser) GetLines(path string) ([]string, error) {
	content, err := p.ReadTrimmed(path)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(content, "\n")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		result = append(result, clean)
	}
	return result, nil
}

// GetMap reads the file at path and parses each line into a key-value
// pair split on the configured delimiter. Lines without the delimiter
// are skipped.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(lines))
	for _, line := range lines {
		kv := strings.SplitN(line, p.kvDelimiter, 2)
		if len(kv) != 2 {
			continue
		}
		result[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return result, nil
}
