// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"path/filepath"
	"testing"

	"dnxpath/internal/testutil"
)

func TestResolveRootDirectory_MarkerAtStart(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, MarkerFileName), "{}", 0o644)

	if got := ResolveRootDirectory(dir); got != dir {
		t.Errorf("ResolveRootDirectory(%q) = %q, want %q", dir, got, dir)
	}
}

func TestResolveRootDirectory_MarkerInAncestor(t *testing.T) {
	root := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(root, MarkerFileName), "{}", 0o644)

	nested := filepath.Join(root, "src", "app")
	testutil.MustMkdirAll(t, nested, 0o755)

	if got := ResolveRootDirectory(nested); got != root {
		t.Errorf("ResolveRootDirectory(%q) = %q, want %q", nested, got, root)
	}
}

func TestResolveRootDirectory_NearestAncestorWins(t *testing.T) {
	outer := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(outer, MarkerFileName), "{}", 0o644)

	inner := filepath.Join(outer, "sub")
	testutil.MustMkdirAll(t, inner, 0o755)
	testutil.MustWriteFile(t, filepath.Join(inner, MarkerFileName), "{}", 0o644)

	start := filepath.Join(inner, "deep")
	testutil.MustMkdirAll(t, start, 0o755)

	if got := ResolveRootDirectory(start); got != inner {
		t.Errorf("ResolveRootDirectory(%q) = %q, want nearest marker dir %q", start, got, inner)
	}
}

func TestResolveRootDirectory_NoMarkerReturnsStart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	testutil.MustMkdirAll(t, dir, 0o755)

	if got := ResolveRootDirectory(dir); got != dir {
		t.Errorf("ResolveRootDirectory(%q) = %q, want the start directory back", dir, got)
	}
}
