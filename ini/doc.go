// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and serializer for INI-syntax
configuration files, together with a typed accessor API over the parsed
data. See https://en.wikipedia.org/wiki/INI_file.

# Syntax

An INI file is Unicode text encoded in UTF-8, processed line by line.
A property is a key and an optional value separated by the first
occurrence of a delimiter character ('=' or ':' unless configured
otherwise):

	key = value
	key: value

A line with no delimiter records a valueless key. This is distinct from
a key with an empty value (written "key="): a valueless key exists in
the tree but Get reports it as absent.

Properties may be grouped into sections. A section is started by
writing its name in square brackets on its own line:

	[section]
	key1 = value1
	key2 = value2

A line is a section header only when '[' is its first non-whitespace
character; the last ']' on the line closes the name, so values are free
to contain brackets. An opening bracket without a closing bracket is a
parse error. Properties before the first header belong to the default
section, named "default" unless configured otherwise. A section
persists in the tree once its header has been seen, even if it never
receives properties.

If the first non-whitespace character of a line is a comment symbol
(';' or '#' unless configured otherwise), the whole line is ignored.
An inline-comment symbol appearing later in a line truncates the rest
of the line.

Section names and keys are lower-cased unless case-sensitive mode is
selected, and whitespace around section names, keys, and values is
always trimmed. When the same section or key appears more than once,
the last occurrence wins.

With Options.Multiline enabled, a line that begins with whitespace and
is not a section header continues the previous property's value. The
continuation is joined with a newline, and blank lines between
continuations are preserved inside the value:

	haiku: line one
	    line two

	    line four

# Concurrency

A Config is single-owner: none of its methods are safe for concurrent
use without external locking supplied by the caller.
*/
package ini
