// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for dnxpath.
//
// This package implements the Cobra command hierarchy for the dnxpath CLI,
// wiring the runtime locator, configuration, and output styling together.
package cmd
