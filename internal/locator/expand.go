// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// aliasDirName is the runtime-home subdirectory that holds alias-redirect
// files.
const aliasDirName = "alias"

// aliasExtensions lists alias-redirect file extensions in probe order.
// The first file that exists wins.
var aliasExtensions = []string{".alias", ".txt"}

// expandCandidate turns a version-or-alias into one candidate
// installation directory for the given runtime home and epoch.
//
// Alias-redirect files under <home>/alias/ are consulted first; a hit
// redirects to the folder named by the file's trimmed contents. Otherwise
// the value is formatted with the epoch's platform template. An empty
// home yields an empty candidate. No existence check is performed on the
// result; that is the selector's job.
func expandCandidate(versionOrAlias, home string, ep Epoch, monoNaming bool) (string, error) {
	if home == "" {
		return "", nil
	}

	for _, ext := range aliasExtensions {
		aliasFile := filepath.Join(home, aliasDirName, versionOrAlias+ext)
		if !fileExists(aliasFile) {
			continue
		}
		contents, err := os.ReadFile(aliasFile)
		if err != nil {
			return "", fmt.Errorf("read alias file %s: %w", aliasFile, err)
		}
		return filepath.Join(home, ep.PackagesDir, strings.TrimSpace(string(contents))), nil
	}

	format := ep.NativeFormat
	if monoNaming {
		format = ep.MonoFormat
	}
	return filepath.Join(home, ep.PackagesDir, fmt.Sprintf(format, versionOrAlias)), nil
}
