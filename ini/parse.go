// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yourbase/iniconfig/omap"
)

// A Section maps keys to optional values in insertion order. A nil
// value marks a valueless key (a bare key with no delimiter), which is
// distinct from a key with an empty string value.
type Section = omap.Map[*string]

// A Tree maps section names to sections in insertion order. It is the
// parsed form of an INI document.
type Tree = omap.Map[*Section]

// NewTree returns a new empty tree.
func NewTree() *Tree {
	return omap.New[*Section]()
}

// A ParseError describes a structural violation in INI input. Line is
// 0-based; Col is a byte offset within the line, or -1 when no column
// applies.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Col >= 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads INI text from r and returns the resulting tree. Nil
// options are treated identically to DefaultOptions(). Parsing stops at
// the first structural violation, reported as a *ParseError.
//
// See the package documentation for the recognized syntax.
func Parse(r io.Reader, opts *Options) (*Tree, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	tree := NewTree()
	section := o.fold(o.DefaultSection)
	// The parser tracks the most recent key so that continuation lines
	// in multiline mode know where to append.
	var currKey string
	haveKey := false
	pendingBlanks := 0

	s := bufio.NewScanner(r)
	for lineno := 0; s.Scan(); lineno++ {
		raw := s.Text()
		lt := strings.TrimLeftFunc(raw, unicode.IsSpace)
		if lt != "" {
			if r0, _ := utf8.DecodeRuneInString(lt); containsRune(o.CommentSymbols, r0) {
				// Whole-line comment. In multiline mode it separates
				// continuations the same way a blank line does.
				if o.Multiline {
					pendingBlanks++
				}
				continue
			}
		}
		line := truncateInline(raw, o.inlineSymbols())
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if o.Multiline {
				pendingBlanks++
			}
			continue
		}
		leading := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
		switch {
		case trimmed[0] == '[':
			end := strings.LastIndexByte(trimmed, ']')
			if end < 0 {
				return nil, &ParseError{Line: lineno, Col: leading, Msg: "opening bracket without matching closing bracket"}
			}
			section = o.fold(strings.TrimSpace(trimmed[1:end]))
			if !tree.Has(section) {
				tree.Set(section, omap.New[*string]())
			}
			haveKey = false
			pendingBlanks = 0
		case o.Multiline && leadingWhitespace(raw):
			if !haveKey {
				return nil, &ParseError{Line: lineno, Col: -1, Msg: "continuation line without a preceding key"}
			}
			sect, _ := tree.Get(section)
			v, _ := sect.Get(currKey)
			if v == nil {
				joined := strings.Repeat("\n", pendingBlanks) + trimmed
				sect.Set(currKey, &joined)
			} else {
				joined := *v + strings.Repeat("\n", pendingBlanks) + "\n" + trimmed
				sect.Set(currKey, &joined)
			}
			pendingBlanks = 0
		default:
			key := trimmed
			var value *string
			if i := indexAnyRune(trimmed, o.Delimiters); i >= 0 {
				key = strings.TrimSpace(trimmed[:i])
				if key == "" {
					return nil, &ParseError{Line: lineno, Col: leading + i, Msg: "empty key"}
				}
				_, width := utf8.DecodeRuneInString(trimmed[i:])
				v := strings.TrimSpace(trimmed[i+width:])
				value = &v
			}
			key = o.fold(key)
			sect, ok := tree.Get(section)
			if !ok {
				sect = omap.New[*string]()
				tree.Set(section, sect)
			}
			sect.Set(key, value)
			currKey = key
			haveKey = true
			pendingBlanks = 0
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}
	return tree, nil
}

// truncateInline cuts line at the first occurrence of an inline-comment
// symbol.
func truncateInline(line string, symbols []rune) string {
	if i := indexAnyRune(line, symbols); i >= 0 {
		return line[:i]
	}
	return line
}

// indexAnyRune returns the byte index of the first occurrence in s of
// any rune from set, or -1.
func indexAnyRune(s string, set []rune) int {
	if len(set) == 0 {
		return -1
	}
	return strings.IndexFunc(s, func(r rune) bool { return containsRune(set, r) })
}

func leadingWhitespace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && unicode.IsSpace(r)
}
