// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform naming convention helpers.
package platform

import "runtime"

// Windows is the GOOS value for Windows.
const Windows = "windows"

// IsWindows reports whether the host is Windows.
func IsWindows() bool {
	return runtime.GOOS == Windows
}

// MonoNaming reports whether runtime installation folders on this host
// follow the Mono naming convention. Everything that is not Windows
// uses the Mono-style folder names.
func MonoNaming() bool {
	return !IsWindows()
}
