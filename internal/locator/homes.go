// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"os"
	"path/filepath"
)

const (
	// EnvDnxHome is the newest explicit runtime-home override variable.
	EnvDnxHome = "DNX_HOME"
	// EnvKreHome is the older explicit runtime-home override variable.
	EnvKreHome = "KRE_HOME"
	// EnvHome is the primary user-home variable.
	EnvHome = "HOME"
	// EnvUserProfile is the Windows fallback for the user home.
	EnvUserProfile = "USERPROFILE"
)

// RuntimeHomes returns every candidate runtime home in priority order:
// the two explicit override variables first, then the per-epoch
// dot-directories under the user home (newest epoch first).
//
// This is pure string construction: no filesystem checks happen here, and
// unset variables yield empty entries that are retained so the slice shape
// and ordering stay stable. The expander skips empty homes, which also
// covers the case where both HOME and USERPROFILE are unset (the three
// derived entries are then empty and only the override variables remain
// in play).
func RuntimeHomes() []string {
	homes := make([]string, 0, 2+len(epochs))
	homes = append(homes, os.Getenv(EnvDnxHome), os.Getenv(EnvKreHome))

	userHome := os.Getenv(EnvHome)
	if userHome == "" {
		userHome = os.Getenv(EnvUserProfile)
	}
	for _, ep := range epochs {
		if userHome == "" {
			homes = append(homes, "")
			continue
		}
		homes = append(homes, filepath.Join(userHome, ep.HomeDir))
	}
	return homes
}
