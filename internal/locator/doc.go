// SPDX-License-Identifier: MPL-2.0

// Package locator resolves which installed DNX/KRE runtime applies to a
// project directory and locates its tool binaries.
//
// This package intentionally combines the whole resolution pipeline:
//   - Root resolution: walking up to the nearest directory with global.json
//   - Version reading: extracting sdk.version (with its source position)
//   - Home enumeration: building the ordered runtime-home candidate list
//   - Expansion: turning a version-or-alias into candidate install dirs
//   - Selection: picking the first candidate that exists on disk
//
// These stages are tightly coupled because selection depends directly on
// enumeration and expansion ordering, which is a contract of this package
// (first enumerated wins), not an implementation detail.
//
// File organization:
//   - roots.go: project root resolution (global.json upward walk)
//   - version.go: sdk.version extraction from global.json
//   - homes.go: runtime-home enumeration from environment variables
//   - epochs.go: the three historical naming conventions
//   - expand.go: alias-redirect and direct-version candidate construction
//   - locator.go: the Locator itself (selection + tool binary lookup)
//   - diagnostic.go: diagnostic types and the Reporter sink
package locator
