// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yourbase/iniconfig/omap"
)

// A Config owns a parsed tree together with the options used to parse
// it and to normalize accessor arguments. It is not safe for concurrent
// use; callers that share a Config across goroutines must supply their
// own locking.
type Config struct {
	opts Options
	tree *Tree
}

// New returns an empty case-insensitive configuration with default
// options.
func New() *Config {
	return NewWithOptions(DefaultOptions())
}

// NewCaseSensitive returns an empty configuration that preserves the
// case of section names and keys.
func NewCaseSensitive() *Config {
	opts := DefaultOptions()
	opts.CaseSensitive = true
	return NewWithOptions(opts)
}

// NewWithOptions returns an empty configuration using the given
// options. Callers should derive opts from DefaultOptions.
func NewWithOptions(opts Options) *Config {
	return &Config{opts: opts, tree: NewTree()}
}

// Options returns a copy of the configuration's options.
func (c *Config) Options() Options {
	return c.opts
}

// SetOptions replaces the configuration's options. Like all option
// setters, it affects future parses and accessor calls only: content
// that has already been parsed is not reinterpreted.
func (c *Config) SetOptions(opts Options) {
	c.opts = opts
}

// SetDefaultSection changes the name of the section that collects
// properties appearing before the first section header.
func (c *Config) SetDefaultSection(name string) {
	c.opts.DefaultSection = name
}

// SetCommentSymbols replaces the characters that start a whole-line
// comment.
func (c *Config) SetCommentSymbols(symbols []rune) {
	c.opts.CommentSymbols = symbols
}

// SetInlineCommentSymbols replaces the characters that start an inline
// comment. Passing nil restores the fallback to the whole-line comment
// symbols; passing an empty non-nil slice disables inline comments.
func (c *Config) SetInlineCommentSymbols(symbols []rune) {
	c.opts.InlineCommentSymbols = symbols
}

// SetDelimiters replaces the characters that separate keys from
// values.
func (c *Config) SetDelimiters(delimiters []rune) {
	c.opts.Delimiters = delimiters
}

// SetBoolValues replaces the spellings recognized by GetBoolCoerce.
func (c *Config) SetBoolValues(values map[bool][]string) {
	c.opts.BoolValues = values
}

// SetMultiline enables or disables indentation-based value
// continuation.
func (c *Config) SetMultiline(multiline bool) {
	c.opts.Multiline = multiline
}

// Load reads the file at path and replaces the configuration's tree
// with its parsed contents. If reading or parsing fails, the previous
// tree is left untouched.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load ini: %w", err)
	}
	tree, err := Parse(bytes.NewReader(data), &c.opts)
	if err != nil {
		return fmt.Errorf("load ini %s: %w", path, err)
	}
	c.tree = tree
	return nil
}

// Read parses INI text from r and replaces the configuration's tree.
// The previous tree is left untouched on error.
func (c *Config) Read(r io.Reader) error {
	tree, err := Parse(r, &c.opts)
	if err != nil {
		return err
	}
	c.tree = tree
	return nil
}

// ReadString parses INI text and replaces the configuration's tree.
// The previous tree is left untouched on error.
func (c *Config) ReadString(text string) error {
	return c.Read(strings.NewReader(text))
}

// LoadAndAppend reads the file at path and merges its contents into the
// configuration: incoming keys overwrite existing keys of the same
// normalized name, while sections and keys absent from the file are
// preserved.
func (c *Config) LoadAndAppend(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load ini: %w", err)
	}
	if err := c.Append(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("load ini %s: %w", path, err)
	}
	return nil
}

// Append parses INI text from r and merges it into the configuration.
// See LoadAndAppend for the merge semantics.
func (c *Config) Append(r io.Reader) error {
	tree, err := Parse(r, &c.opts)
	if err != nil {
		return err
	}
	for _, name := range tree.Keys() {
		src, _ := tree.Get(name)
		dst, ok := c.tree.Get(name)
		if !ok {
			dst = omap.New[*string]()
			c.tree.Set(name, dst)
		}
		for _, key := range src.Keys() {
			v, _ := src.Get(key)
			dst.Set(key, v)
		}
	}
	return nil
}

// AppendString parses INI text and merges it into the configuration.
// See LoadAndAppend for the merge semantics.
func (c *Config) AppendString(text string) error {
	return c.Append(strings.NewReader(text))
}

// WriteFile serializes the configuration in compact form to the file at
// path, creating it if necessary and truncating it otherwise.
func (c *Config) WriteFile(path string) error {
	wo := DefaultWriteOptions()
	return c.PrettyWriteFile(path, wo)
}

// PrettyWriteFile serializes the configuration to the file at path
// using the given formatting.
func (c *Config) PrettyWriteFile(path string, wo WriteOptions) error {
	if err := os.WriteFile(path, marshalTree(c.tree, &c.opts, &wo), 0o666); err != nil {
		return fmt.Errorf("write ini: %w", err)
	}
	return nil
}

// String returns the configuration serialized in compact form.
func (c *Config) String() string {
	wo := DefaultWriteOptions()
	return string(marshalTree(c.tree, &c.opts, &wo))
}

// Pretty returns the configuration serialized with the given
// formatting.
func (c *Config) Pretty(wo WriteOptions) string {
	return string(marshalTree(c.tree, &c.opts, &wo))
}

// MarshalText serializes the configuration in compact form.
func (c *Config) MarshalText() ([]byte, error) {
	wo := DefaultWriteOptions()
	return marshalTree(c.tree, &c.opts, &wo), nil
}

// UnmarshalText parses the INI data with the configuration's current
// options, replacing any existing tree.
func (c *Config) UnmarshalText(data []byte) error {
	return c.Read(bytes.NewReader(data))
}

// Get returns the value stored for key in the named section. Both
// arguments are normalized per the case-folding policy. The second
// result is false when the section or key is absent and also when the
// key is valueless; use Tree to tell those cases apart.
func (c *Config) Get(section, key string) (string, bool) {
	sect, ok := c.tree.Get(c.opts.fold(section))
	if !ok {
		return "", false
	}
	v, ok := sect.Get(c.opts.fold(key))
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// GetInt64 parses the value stored for key in the named section as a
// signed 64-bit integer. It returns ok=false with a nil error when the
// section or key is absent or the key is valueless, and a non-nil error
// when a value is present but does not parse.
func (c *Config) GetInt64(section, key string) (int64, bool, error) {
	v, ok := c.Get(section, key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("ini: section %q, key %q: %w", section, key, err)
	}
	return n, true, nil
}

// GetUint64 parses the value stored for key in the named section as an
// unsigned 64-bit integer. Absence is reported the same way as for
// GetInt64.
func (c *Config) GetUint64(section, key string) (uint64, bool, error) {
	v, ok := c.Get(section, key)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("ini: section %q, key %q: %w", section, key, err)
	}
	return n, true, nil
}

// GetFloat64 parses the value stored for key in the named section as a
// 64-bit float. Absence is reported the same way as for GetInt64.
func (c *Config) GetFloat64(section, key string) (float64, bool, error) {
	v, ok := c.Get(section, key)
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("ini: section %q, key %q: %w", section, key, err)
	}
	return f, true, nil
}

// GetBool parses the value stored for key in the named section as a
// boolean. Only the literal spellings "true" and "false" are accepted,
// case-insensitively. Absence is reported the same way as for GetInt64.
func (c *Config) GetBool(section, key string) (bool, bool, error) {
	v, ok := c.Get(section, key)
	if !ok {
		return false, false, nil
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true, true, nil
	case strings.EqualFold(v, "false"):
		return false, true, nil
	}
	return false, false, fmt.Errorf("ini: section %q, key %q: invalid boolean %q", section, key, v)
}

// GetBoolCoerce parses the value stored for key in the named section as
// a boolean, accepting any of the spellings configured in
// Options.BoolValues, case-insensitively. Absence is reported the same
// way as for GetInt64.
func (c *Config) GetBoolCoerce(section, key string) (bool, bool, error) {
	v, ok := c.Get(section, key)
	if !ok {
		return false, false, nil
	}
	for _, b := range [2]bool{true, false} {
		for _, spelling := range c.opts.BoolValues[b] {
			if strings.EqualFold(v, spelling) {
				return b, true, nil
			}
		}
	}
	return false, false, fmt.Errorf("ini: section %q, key %q: cannot coerce %q to bool", section, key, v)
}

// Set stores value under key in the named section, creating the section
// if necessary. A nil value records a valueless key. Set returns the
// previous value and whether the key already existed.
func (c *Config) Set(section, key string, value *string) (prev *string, existed bool) {
	name := c.opts.fold(section)
	sect, ok := c.tree.Get(name)
	if !ok {
		sect = omap.New[*string]()
		c.tree.Set(name, sect)
	}
	var v *string
	if value != nil {
		s := *value
		v = &s
	}
	return sect.Set(c.opts.fold(key), v)
}

// SetString stores a string value under key in the named section. It is
// shorthand for Set with a non-nil value.
func (c *Config) SetString(section, key, value string) (prev *string, existed bool) {
	return c.Set(section, key, &value)
}

// RemoveKey deletes key from the named section. It returns the removed
// value and whether the key was present.
func (c *Config) RemoveKey(section, key string) (*string, bool) {
	sect, ok := c.tree.Get(c.opts.fold(section))
	if !ok {
		return nil, false
	}
	return sect.Delete(c.opts.fold(key))
}

// RemoveSection deletes the named section. It returns the removed
// section and whether it was present.
func (c *Config) RemoveSection(section string) (*Section, bool) {
	return c.tree.Delete(c.opts.fold(section))
}

// Sections returns the names of all sections in tree order.
func (c *Config) Sections() []string {
	return c.tree.Keys()
}

// Clear removes every section from the configuration.
func (c *Config) Clear() {
	c.tree.Clear()
}

// Map returns a deep-copy snapshot of the tree as plain Go maps, with
// no defined iteration order. Mutating the snapshot does not affect the
// configuration.
func (c *Config) Map() map[string]map[string]*string {
	snapshot := make(map[string]map[string]*string, c.tree.Len())
	for _, name := range c.tree.Keys() {
		sect, _ := c.tree.Get(name)
		inner := make(map[string]*string, sect.Len())
		for _, key := range sect.Keys() {
			v, _ := sect.Get(key)
			if v != nil {
				s := *v
				inner[key] = &s
			} else {
				inner[key] = nil
			}
		}
		snapshot[name] = inner
	}
	return snapshot
}

// Tree returns the live tree for direct inspection or bulk mutation.
// Mutation through the tree bypasses case folding; keys written with
// unnormalized names will not be visible to the accessor methods.
func (c *Config) Tree() *Tree {
	return c.tree
}
