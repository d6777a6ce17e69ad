// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for parsing and validating
// CUE (and JSON, which CUE accepts directly) documents: input size
// limits and user-friendly error formatting with JSON-path prefixes.
package cueutil
