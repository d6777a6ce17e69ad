// SPDX-License-Identifier: MPL-2.0

package locator

type (
	// Epoch describes one historical naming convention for runtime
	// installations. Each epoch defines where installations live under a
	// runtime home and how installation folder names are formatted on
	// each platform.
	Epoch struct {
		// Name identifies the epoch ("dnx", "k", "kre").
		Name string
		// HomeDir is the dot-directory under the user home that serves as
		// the default runtime home for this epoch (e.g., ".dnx").
		HomeDir string
		// PackagesDir is the subdirectory of a runtime home that holds
		// installed runtimes (e.g., "runtimes", "packages").
		PackagesDir string
		// MonoFormat is the installation folder name template used on
		// Mono-style platforms; it takes the version as its only verb.
		MonoFormat string
		// NativeFormat is the installation folder name template used on
		// Windows; it takes the version as its only verb.
		NativeFormat string
	}
)

// epochs lists the supported naming conventions, newest first. The order
// is a resolution contract: candidates are probed newer to older and the
// first hit wins, so this table must never be reordered.
var epochs = []Epoch{
	{
		Name:         "dnx",
		HomeDir:      ".dnx",
		PackagesDir:  "runtimes",
		MonoFormat:   "dnx-mono.%s",
		NativeFormat: "dnx-clr-win-x86.%s",
	},
	{
		Name:         "k",
		HomeDir:      ".k",
		PackagesDir:  "packages",
		MonoFormat:   "kre-mono.%s",
		NativeFormat: "kre-clr-win-x86.%s",
	},
	{
		Name:         "kre",
		HomeDir:      ".kre",
		PackagesDir:  "packages",
		MonoFormat:   "KRE-svr50-x86.%s",
		NativeFormat: "KRE-svr50-x86.%s",
	},
}

// Epochs returns the naming conventions in probe order (newest first).
// Callers receive a copy so the package-level table stays immutable.
func Epochs() []Epoch {
	out := make([]Epoch, len(epochs))
	copy(out, epochs)
	return out
}
