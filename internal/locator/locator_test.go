// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"dnxpath/internal/testutil"
)

// captureReporter records every diagnostic it receives.
type captureReporter struct {
	diagnostics []Diagnostic
}

func (r *captureReporter) Report(d Diagnostic) {
	r.diagnostics = append(r.diagnostics, d)
}

// writeMarker writes a global.json requesting the given version and
// returns the project directory.
func writeMarker(t *testing.T, version string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, MarkerFileName),
		"{\n  \"sdk\": {\n    \"version\": \""+version+"\"\n  }\n}\n", 0o644)
	return dir
}

func TestResolve_PrefersDnxHomeOverDefaults(t *testing.T) {
	dnxHome := t.TempDir()
	userHome := t.TempDir()
	setRuntimeEnv(t, dnxHome, "", userHome, "")

	// Matching installations in both the override home and a default home;
	// the override must win.
	want := filepath.Join(dnxHome, "runtimes", "dnx-mono.1.0.0-rc1")
	testutil.MustMkdirAll(t, want, 0o755)
	testutil.MustMkdirAll(t, filepath.Join(userHome, ".kre", "packages", "KRE-svr50-x86.1.0.0-rc1"), 0o755)

	project := writeMarker(t, "1.0.0-rc1")

	res, err := New(WithMonoNaming(true)).Resolve(project)
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if res.RuntimePath != want {
		t.Errorf("RuntimePath = %q, want DNX_HOME candidate %q", res.RuntimePath, want)
	}
	if len(res.Searched) != 0 {
		t.Errorf("Searched = %v, want empty (first candidate hit)", res.Searched)
	}
}

func TestResolve_EpochFallbackWithinHome(t *testing.T) {
	dnxHome := t.TempDir()
	setRuntimeEnv(t, dnxHome, "", "", "")

	// Only an old-epoch installation exists under the home.
	want := filepath.Join(dnxHome, "packages", "KRE-svr50-x86.1.0.0-rc1")
	testutil.MustMkdirAll(t, want, 0o755)

	project := writeMarker(t, "1.0.0-rc1")

	res, err := New(WithMonoNaming(true)).Resolve(project)
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if res.RuntimePath != want {
		t.Errorf("RuntimePath = %q, want old-epoch fallback %q", res.RuntimePath, want)
	}

	// The two newer epochs were probed (and missed) first.
	wantSearched := []string{
		filepath.Join(dnxHome, "runtimes", "dnx-mono.1.0.0-rc1"),
		filepath.Join(dnxHome, "packages", "kre-mono.1.0.0-rc1"),
	}
	if len(res.Searched) != len(wantSearched) {
		t.Fatalf("Searched = %v, want %v", res.Searched, wantSearched)
	}
	for i := range wantSearched {
		if res.Searched[i] != wantSearched[i] {
			t.Errorf("Searched[%d] = %q, want %q", i, res.Searched[i], wantSearched[i])
		}
	}
}

func TestResolve_AliasRedirect(t *testing.T) {
	dnxHome := t.TempDir()
	setRuntimeEnv(t, dnxHome, "", "", "")

	testutil.MustMkdirAll(t, filepath.Join(dnxHome, "alias"), 0o755)
	testutil.MustWriteFile(t, filepath.Join(dnxHome, "alias", "default.alias"), "1.0.0-rc1\n", 0o644)
	want := filepath.Join(dnxHome, "runtimes", "1.0.0-rc1")
	testutil.MustMkdirAll(t, want, 0o755)

	// No marker file: the default alias drives the lookup.
	project := t.TempDir()

	res, err := New(WithMonoNaming(true)).Resolve(project)
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if res.Version.Set {
		t.Error("Version.Set = true without a marker file, want false")
	}
	if res.MarkerPath != "" {
		t.Errorf("MarkerPath = %q, want empty without a marker file", res.MarkerPath)
	}
	if res.RuntimePath != want {
		t.Errorf("RuntimePath = %q, want alias-redirected %q", res.RuntimePath, want)
	}
}

func TestResolve_NotFoundEmitsSingleDiagnostic(t *testing.T) {
	dnxHome := filepath.Join(t.TempDir(), "rt1")
	kreHome := filepath.Join(t.TempDir(), "rt2")
	setRuntimeEnv(t, dnxHome, kreHome, "", "")

	project := writeMarker(t, "1.0.0-rc1")
	marker := filepath.Join(project, MarkerFileName)

	reporter := &captureReporter{}
	res, err := New(WithMonoNaming(true), WithReporter(reporter)).Resolve(project)
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil (NotFound is soft)", err)
	}

	if res.RuntimePath != "" {
		t.Errorf("RuntimePath = %q, want empty", res.RuntimePath)
	}
	if res.Tools != (ToolPaths{}) {
		t.Errorf("Tools = %+v, want all empty", res.Tools)
	}
	// Two non-empty homes, three epochs each.
	if len(res.Searched) != 6 {
		t.Fatalf("Searched has %d entries, want 6: %v", len(res.Searched), res.Searched)
	}

	if len(reporter.diagnostics) != 1 {
		t.Fatalf("reporter received %d diagnostics, want exactly 1", len(reporter.diagnostics))
	}
	d := reporter.diagnostics[0]
	if d.Severity != SeverityError {
		t.Errorf("Severity = %q, want %q", d.Severity, SeverityError)
	}
	if d.Code != "runtime_not_found" {
		t.Errorf("Code = %q, want %q", d.Code, "runtime_not_found")
	}
	if !strings.Contains(d.Message, "1.0.0-rc1") {
		t.Errorf("Message %q does not mention the requested version", d.Message)
	}
	// The message lists every searched path, in probe order.
	lines := strings.Split(d.Message, "\n")
	if len(lines) != 1+len(res.Searched) {
		t.Fatalf("Message has %d lines, want header plus %d paths", len(lines), len(res.Searched))
	}
	for i, path := range res.Searched {
		if lines[i+1] != path {
			t.Errorf("Message line %d = %q, want %q", i+1, lines[i+1], path)
		}
	}
	if d.Position == nil {
		t.Fatal("Position = nil, want the marker-file source position")
	}
	if d.Position.File != marker {
		t.Errorf("Position.File = %q, want %q", d.Position.File, marker)
	}
}

func TestResolve_NotFoundWithoutMarkerHasNoPosition(t *testing.T) {
	setRuntimeEnv(t, filepath.Join(t.TempDir(), "rt1"), "", "", "")

	reporter := &captureReporter{}
	res, err := New(WithMonoNaming(true), WithReporter(reporter)).Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if res.RuntimePath != "" {
		t.Errorf("RuntimePath = %q, want empty", res.RuntimePath)
	}
	if len(reporter.diagnostics) != 1 {
		t.Fatalf("reporter received %d diagnostics, want 1", len(reporter.diagnostics))
	}
	if reporter.diagnostics[0].Position != nil {
		t.Errorf("Position = %+v, want nil when the version came from the default alias", reporter.diagnostics[0].Position)
	}
}

func TestResolve_SuccessEmitsNoDiagnostics(t *testing.T) {
	dnxHome := t.TempDir()
	setRuntimeEnv(t, dnxHome, "", "", "")
	testutil.MustMkdirAll(t, filepath.Join(dnxHome, "runtimes", "dnx-mono.1.0.0-rc1"), 0o755)

	reporter := &captureReporter{}
	_, err := New(WithMonoNaming(true), WithReporter(reporter)).Resolve(writeMarker(t, "1.0.0-rc1"))
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}
	if len(reporter.diagnostics) != 0 {
		t.Errorf("reporter received %d diagnostics on success, want 0", len(reporter.diagnostics))
	}
}

func TestResolve_MalformedMarkerIsHardError(t *testing.T) {
	setRuntimeEnv(t, t.TempDir(), "", "", "")

	project := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(project, MarkerFileName), `{"sdk": {`, 0o644)

	reporter := &captureReporter{}
	_, err := New(WithReporter(reporter)).Resolve(project)
	if err == nil {
		t.Fatal("Resolve() error = nil, want malformed marker error")
	}
	if !errors.Is(err, ErrMalformedMarker) {
		t.Errorf("errors.Is(err, ErrMalformedMarker) = false for %v", err)
	}
	if len(reporter.diagnostics) != 0 {
		t.Errorf("reporter received %d diagnostics, want 0 (parse failures propagate as errors)", len(reporter.diagnostics))
	}
}

func TestResolve_ToolPaths(t *testing.T) {
	dnxHome := t.TempDir()
	setRuntimeEnv(t, dnxHome, "", "", "")

	runtimeDir := filepath.Join(dnxHome, "runtimes", "dnx-mono.1.0.0-rc1")
	binDir := filepath.Join(runtimeDir, "bin")
	testutil.MustMkdirAll(t, binDir, 0o755)
	testutil.MustWriteFile(t, filepath.Join(binDir, "dnx"), "", 0o755)
	testutil.MustWriteFile(t, filepath.Join(binDir, "dnu.cmd"), "", 0o755)
	testutil.MustWriteFile(t, filepath.Join(binDir, "k"), "", 0o755)

	res, err := New(WithMonoNaming(true)).Resolve(writeMarker(t, "1.0.0-rc1"))
	if err != nil {
		t.Fatalf("Resolve() error = %v, want nil", err)
	}

	tests := []struct {
		tool Tool
		want string
	}{
		{ToolDnx, filepath.Join(binDir, "dnx")},
		{ToolDnu, filepath.Join(binDir, "dnu.cmd")},
		{ToolK, filepath.Join(binDir, "k")},
		{ToolKlr, ""},
		{ToolKpm, ""},
	}
	for _, tt := range tests {
		if got := res.Tools.Path(tt.tool); got != tt.want {
			t.Errorf("Tools.Path(%s) = %q, want %q", tt.tool, got, tt.want)
		}
	}
}

func TestFindToolBinary_FirstCandidateWins(t *testing.T) {
	runtimeDir := t.TempDir()
	binDir := filepath.Join(runtimeDir, "bin")
	testutil.MustMkdirAll(t, binDir, 0o755)
	testutil.MustWriteFile(t, filepath.Join(binDir, "dnx"), "", 0o755)
	testutil.MustWriteFile(t, filepath.Join(binDir, "dnx.exe"), "", 0o755)

	if got, want := FindToolBinary(runtimeDir, ToolDnx), filepath.Join(binDir, "dnx"); got != want {
		t.Errorf("FindToolBinary() = %q, want first candidate %q", got, want)
	}
}

func TestFindToolBinary_FallbackCandidate(t *testing.T) {
	runtimeDir := t.TempDir()
	binDir := filepath.Join(runtimeDir, "bin")
	testutil.MustMkdirAll(t, binDir, 0o755)
	testutil.MustWriteFile(t, filepath.Join(binDir, "dnx.exe"), "", 0o755)

	if got, want := FindToolBinary(runtimeDir, ToolDnx), filepath.Join(binDir, "dnx.exe"); got != want {
		t.Errorf("FindToolBinary() = %q, want fallback candidate %q", got, want)
	}
}

func TestFindToolBinary_Absent(t *testing.T) {
	if got := FindToolBinary("", ToolDnx); got != "" {
		t.Errorf("FindToolBinary(\"\") = %q, want empty for absent runtime", got)
	}
	if got := FindToolBinary(t.TempDir(), ToolDnx); got != "" {
		t.Errorf("FindToolBinary() = %q, want empty when no candidate exists", got)
	}
}

func TestParseTool(t *testing.T) {
	for _, name := range []string{"dnx", "dnu", "klr", "kpm", "k"} {
		t.Run(name, func(t *testing.T) {
			tool, err := ParseTool(name)
			if err != nil {
				t.Fatalf("ParseTool(%q) error = %v, want nil", name, err)
			}
			if string(tool) != name {
				t.Errorf("ParseTool(%q) = %q", name, tool)
			}
		})
	}

	_, err := ParseTool("dotnet")
	if err == nil {
		t.Fatal("ParseTool(\"dotnet\") error = nil, want unknown tool error")
	}
	if !errors.Is(err, ErrUnknownTool) {
		t.Errorf("errors.Is(err, ErrUnknownTool) = false for %v", err)
	}
}

func TestCandidates_OrderAndShape(t *testing.T) {
	dnxHome := t.TempDir()
	userHome := t.TempDir()
	setRuntimeEnv(t, dnxHome, "", userHome, "")

	candidates, err := New(WithMonoNaming(true)).Candidates(writeMarker(t, "1.0.0-rc1"))
	if err != nil {
		t.Fatalf("Candidates() error = %v, want nil", err)
	}

	// Four non-empty homes (DNX_HOME + three user-home conventions),
	// three epochs each; KRE_HOME is unset and skipped.
	if len(candidates) != 12 {
		t.Fatalf("Candidates() returned %d entries, want 12: %v", len(candidates), candidates)
	}

	wantFirst := []string{
		filepath.Join(dnxHome, "runtimes", "dnx-mono.1.0.0-rc1"),
		filepath.Join(dnxHome, "packages", "kre-mono.1.0.0-rc1"),
		filepath.Join(dnxHome, "packages", "KRE-svr50-x86.1.0.0-rc1"),
	}
	for i, want := range wantFirst {
		if candidates[i] != want {
			t.Errorf("Candidates()[%d] = %q, want %q", i, candidates[i], want)
		}
	}
}
