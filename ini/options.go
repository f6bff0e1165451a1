// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "strings"

// Options describe the grammar accepted by Parse and the conventions
// used by the accessor methods on Config. Use DefaultOptions as a base
// and change individual fields as needed.
type Options struct {
	// DefaultSection is the name of the section that holds properties
	// appearing before the first section header. It is subject to the
	// same case folding as any other section name.
	DefaultSection string

	// CommentSymbols are the characters that start a whole-line
	// comment when one of them is the first non-whitespace character
	// of a line.
	CommentSymbols []rune

	// InlineCommentSymbols are the characters that truncate the
	// remainder of a non-comment line. A nil slice falls back to
	// CommentSymbols; a non-nil empty slice disables inline comments.
	InlineCommentSymbols []rune

	// Delimiters separate keys from values. The first occurrence of
	// any delimiter on a line splits it; serialization uses the first
	// delimiter in the slice.
	Delimiters []rune

	// BoolValues maps each boolean to the spellings recognized by
	// Config.GetBoolCoerce, matched case-insensitively.
	BoolValues map[bool][]string

	// CaseSensitive disables the lower-casing of section names and
	// keys.
	CaseSensitive bool

	// Multiline enables indentation-based value continuation lines.
	Multiline bool
}

// DefaultOptions returns the options used when none are given: default
// section "default", comments ';' and '#', delimiters '=' and ':',
// case-insensitive, multiline disabled.
func DefaultOptions() Options {
	return Options{
		DefaultSection: "default",
		CommentSymbols: []rune{';', '#'},
		Delimiters:     []rune{'=', ':'},
		BoolValues: map[bool][]string{
			true:  {"true", "yes", "t", "y", "on", "1"},
			false: {"false", "no", "f", "n", "off", "0"},
		},
	}
}

// fold normalizes a section name or key per the case-folding policy.
func (o *Options) fold(s string) string {
	if o.CaseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// inlineSymbols returns the effective inline-comment symbol set.
func (o *Options) inlineSymbols() []rune {
	if o.InlineCommentSymbols != nil {
		return o.InlineCommentSymbols
	}
	return o.CommentSymbols
}

// writeDelimiter returns the delimiter used when serializing.
func (o *Options) writeDelimiter() rune {
	if len(o.Delimiters) == 0 {
		return '='
	}
	return o.Delimiters[0]
}

func containsRune(set []rune, r rune) bool {
	for _, s := range set {
		if s == r {
			return true
		}
	}
	return false
}

// WriteOptions control the formatting produced by the serializer.
type WriteOptions struct {
	// SpaceAroundDelimiters writes "key = value" instead of
	// "key=value". The space after the delimiter is dropped when the
	// value is empty.
	SpaceAroundDelimiters bool

	// MultilineIndent is the number of spaces prefixed to continuation
	// lines of a multiline value.
	MultilineIndent int

	// SectionGap is the number of blank lines emitted between
	// sections.
	SectionGap int
}

// DefaultWriteOptions returns the compact formatting used by
// Config.WriteFile and Config.String: no spaces around delimiters, four
// spaces of continuation indent, no blank lines between sections.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{MultilineIndent: 4}
}
