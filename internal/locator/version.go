// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"dnxpath/pkg/cueutil"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// markerVersionPath is the nested lookup inside the marker file that
// names the requested runtime version or alias.
const markerVersionPath = "sdk.version"

// ErrMalformedMarker is the sentinel error wrapped by MalformedMarkerError.
var ErrMalformedMarker = errors.New("malformed marker file")

type (
	// VersionSpec is the runtime version or alias requested by a project.
	// Set distinguishes "no preference" from a requested value, so an
	// empty Value is never used as an absence signal.
	VersionSpec struct {
		// Value is the requested version or alias.
		Value string
		// Origin is the source position of the value inside the marker
		// file. It is nil when the value did not come from a file and is
		// used only for diagnostics, never for resolution.
		Origin *Position
		// Set reports whether a version preference was actually found.
		Set bool
	}

	// MalformedMarkerError is returned when the marker file exists but
	// cannot be parsed, or its version entry has the wrong shape. It
	// wraps ErrMalformedMarker for errors.Is() compatibility.
	MalformedMarkerError struct {
		// Path is the marker file that failed to parse.
		Path string
		// Err is the underlying parse or decode error.
		Err error
	}
)

// Error returns the error message for MalformedMarkerError.
func (e *MalformedMarkerError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *MalformedMarkerError) Unwrap() error {
	return ErrMalformedMarker
}

// OrDefault returns the requested value, or fallback when no preference
// was found.
func (v VersionSpec) OrDefault(fallback string) string {
	if v.Set {
		return v.Value
	}
	return fallback
}

// ReadVersionSpec reads the marker file at root and extracts the value at
// sdk.version together with its source position.
//
// A missing marker file or a marker without the sdk.version entry yields
// an unset VersionSpec and no error ("no preference"). A marker that is
// present but malformed is a hard failure: the resulting
// MalformedMarkerError propagates to the caller unrecovered.
func ReadVersionSpec(root string) (VersionSpec, error) {
	path := filepath.Join(root, MarkerFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return VersionSpec{}, nil
		}
		return VersionSpec{}, fmt.Errorf("read marker file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, path); err != nil {
		return VersionSpec{}, &MalformedMarkerError{Path: path, Err: err}
	}

	// global.json is plain JSON, which the CUE compiler accepts directly;
	// compiling it keeps token positions for the diagnostics below.
	ctx := cuecontext.New()
	doc := ctx.CompileBytes(data, cue.Filename(path))
	if doc.Err() != nil {
		return VersionSpec{}, &MalformedMarkerError{Path: path, Err: cueutil.FormatError(doc.Err(), path)}
	}

	entry := doc.LookupPath(cue.ParsePath(markerVersionPath))
	if !entry.Exists() {
		return VersionSpec{}, nil
	}
	value, err := entry.String()
	if err != nil {
		return VersionSpec{}, &MalformedMarkerError{Path: path, Err: cueutil.FormatError(err, path)}
	}

	pos := entry.Pos()
	return VersionSpec{
		Value: value,
		Origin: &Position{
			File:   pos.Filename(),
			Line:   pos.Line(),
			Column: pos.Column(),
		},
		Set: true,
	}, nil
}
