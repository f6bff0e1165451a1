// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"zombiezen.com/go/log"
)

// LoadContext is like Load, but waits for the file read in a way that
// respects ctx. Parsing itself always runs to completion once the read
// has finished; a canceled context leaves the previous tree untouched.
func (c *Config) LoadContext(ctx context.Context, path string) error {
	data, err := readFile(ctx, path)
	if err != nil {
		return fmt.Errorf("load ini: %w", err)
	}
	log.Debugf(ctx, "Read %d bytes from %s", len(data), path)
	tree, err := Parse(bytes.NewReader(data), &c.opts)
	if err != nil {
		return fmt.Errorf("load ini %s: %w", path, err)
	}
	c.tree = tree
	return nil
}

// LoadAndAppendContext is like LoadAndAppend, but waits for the file
// read in a way that respects ctx.
func (c *Config) LoadAndAppendContext(ctx context.Context, path string) error {
	data, err := readFile(ctx, path)
	if err != nil {
		return fmt.Errorf("load ini: %w", err)
	}
	log.Debugf(ctx, "Read %d bytes from %s", len(data), path)
	if err := c.Append(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("load ini %s: %w", path, err)
	}
	return nil
}

// WriteFileContext is like WriteFile, but waits for the file write in a
// way that respects ctx.
func (c *Config) WriteFileContext(ctx context.Context, path string) error {
	return c.PrettyWriteFileContext(ctx, path, DefaultWriteOptions())
}

// PrettyWriteFileContext is like PrettyWriteFile, but waits for the
// file write in a way that respects ctx.
func (c *Config) PrettyWriteFileContext(ctx context.Context, path string, wo WriteOptions) error {
	data := marshalTree(c.tree, &c.opts, &wo)
	if err := writeFile(ctx, path, data); err != nil {
		return fmt.Errorf("write ini: %w", err)
	}
	log.Debugf(ctx, "Wrote %d bytes to %s", len(data), path)
	return nil
}

// readFile reads the file at path, returning early with ctx.Err() if
// the context is done first. The read itself is not interrupted.
func readFile(ctx context.Context, path string) ([]byte, error) {
	type result struct {
		data []byte
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		data, err := os.ReadFile(path)
		ch <- result{data, err}
	}()
	select {
	case r := <-ch:
		return r.data, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("read %s: %w", path, ctx.Err())
	}
}

// writeFile writes data to the file at path, returning early with
// ctx.Err() if the context is done first. The write itself is not
// interrupted.
func writeFile(ctx context.Context, path string, data []byte) error {
	ch := make(chan error, 1)
	go func() {
		ch <- os.WriteFile(path, data, 0o666)
	}()
	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return fmt.Errorf("write %s: %w", path, ctx.Err())
	}
}
