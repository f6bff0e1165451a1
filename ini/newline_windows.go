// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package ini

const lineEnding = "\r\n"
