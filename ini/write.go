// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Write serializes tree to w. Nil opts or wo are treated identically to
// DefaultOptions() and DefaultWriteOptions(). The section named by the
// options' DefaultSection is written first, without a header; remaining
// sections follow in tree order.
func Write(w io.Writer, tree *Tree, opts *Options, wo *WriteOptions) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	f := DefaultWriteOptions()
	if wo != nil {
		f = *wo
	}
	_, err := w.Write(marshalTree(tree, &o, &f))
	return err
}

func marshalTree(tree *Tree, o *Options, wo *WriteOptions) []byte {
	if tree == nil {
		return nil
	}
	var buf []byte
	defaultName := o.fold(o.DefaultSection)
	if sect, ok := tree.Get(defaultName); ok {
		buf = appendProperties(buf, sect, o, wo)
	}
	for _, name := range tree.Keys() {
		if name == defaultName {
			continue
		}
		if len(buf) > 0 {
			for i := 0; i < wo.SectionGap; i++ {
				buf = append(buf, lineEnding...)
			}
		}
		buf = append(buf, '[')
		buf = append(buf, name...)
		buf = append(buf, ']')
		buf = append(buf, lineEnding...)
		sect, _ := tree.Get(name)
		buf = appendProperties(buf, sect, o, wo)
	}
	return buf
}

func appendProperties(buf []byte, sect *Section, o *Options, wo *WriteOptions) []byte {
	for _, key := range sect.Keys() {
		v, _ := sect.Get(key)
		buf = append(buf, key...)
		if v == nil {
			// Valueless key: no delimiter at all.
			buf = append(buf, lineEnding...)
			continue
		}
		if wo.SpaceAroundDelimiters {
			buf = append(buf, ' ')
			buf = utf8.AppendRune(buf, o.writeDelimiter())
			if *v != "" {
				buf = append(buf, ' ')
			}
		} else {
			buf = utf8.AppendRune(buf, o.writeDelimiter())
		}
		buf = appendValue(buf, *v, o, wo)
		buf = append(buf, lineEnding...)
	}
	return buf
}

func appendValue(buf []byte, v string, o *Options, wo *WriteOptions) []byte {
	if !o.Multiline || !strings.Contains(v, "\n") {
		return append(buf, v...)
	}
	lines := strings.Split(v, "\n")
	buf = append(buf, lines[0]...)
	indent := strings.Repeat(" ", wo.MultilineIndent)
	for _, line := range lines[1:] {
		buf = append(buf, lineEnding...)
		if line == "" {
			// Blank interior lines stay unindented.
			continue
		}
		buf = append(buf, indent...)
		buf = append(buf, line...)
	}
	return buf
}
