// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"dnxpath/internal/platform"
)

const (
	// DefaultAlias is used when neither the marker file nor configuration
	// expresses a version preference.
	DefaultAlias = "default"

	// binDirName is the runtime subdirectory that holds tool binaries.
	binDirName = "bin"

	// ToolDnx is the runtime host binary (dnx epoch).
	ToolDnx Tool = "dnx"
	// ToolDnu is the package manager binary (dnx epoch).
	ToolDnu Tool = "dnu"
	// ToolKlr is the runtime host binary (k/kre epochs).
	ToolKlr Tool = "klr"
	// ToolKpm is the package manager binary (k/kre epochs).
	ToolKpm Tool = "kpm"
	// ToolK is the command runner binary (k/kre epochs).
	ToolK Tool = "k"
)

// ErrUnknownTool is the sentinel error wrapped by UnknownToolError.
var ErrUnknownTool = errors.New("unknown tool")

// toolCandidates maps each logical tool to its candidate binary names,
// probed in order under <runtime>/bin. The extensionless name comes
// first so Mono-style installations win over Windows launchers.
var toolCandidates = map[Tool][]string{
	ToolDnx: {"dnx", "dnx.exe"},
	ToolDnu: {"dnu", "dnu.cmd"},
	ToolKlr: {"klr", "klr.exe"},
	ToolKpm: {"kpm", "kpm.cmd"},
	ToolK:   {"k", "k.cmd"},
}

type (
	// Tool identifies a logical runtime tool binary.
	Tool string

	// UnknownToolError is returned when a Tool value is not recognized.
	// It wraps ErrUnknownTool for errors.Is() compatibility.
	UnknownToolError struct {
		Value string
	}

	// Locator performs one-shot, synchronous runtime resolution. Each
	// call to Resolve is a pure function of the starting path, the
	// environment variables, and the filesystem contents at call time;
	// the configured Reporter is the only side channel.
	Locator struct {
		reporter     Reporter
		logger       *slog.Logger
		defaultAlias string
		monoNaming   bool
	}

	// Option configures a Locator.
	Option func(*Locator)

	// ToolPaths holds the absolute path of every logical tool binary
	// inside a resolved runtime. An empty entry means the binary (or the
	// runtime itself) does not exist.
	ToolPaths struct {
		Dnx string
		Dnu string
		Klr string
		Kpm string
		K   string
	}

	// Result is the outcome of one resolution. An empty RuntimePath is a
	// valid terminal outcome, not an error: the search-exhausted
	// condition is reported through the Reporter instead.
	Result struct {
		// Root is the resolved project root directory.
		Root string
		// MarkerPath is the marker file at Root, empty when absent.
		MarkerPath string
		// Version is the requested version or alias, if any.
		Version VersionSpec
		// RuntimePath is the first candidate installation directory that
		// exists on disk, empty when none does.
		RuntimePath string
		// Searched lists every candidate path probed without a hit, in
		// the exact order they were attempted.
		Searched []string
		// Tools holds the resolved tool binary paths.
		Tools ToolPaths
	}
)

// Error returns the error message for UnknownToolError.
func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool %q (valid: dnx, dnu, klr, kpm, k)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *UnknownToolError) Unwrap() error {
	return ErrUnknownTool
}

// ParseTool converts a user-supplied name into a Tool.
func ParseTool(name string) (Tool, error) {
	tool := Tool(name)
	if _, ok := toolCandidates[tool]; !ok {
		return "", &UnknownToolError{Value: name}
	}
	return tool, nil
}

// WithReporter sets the diagnostic sink. Default is NopReporter.
func WithReporter(r Reporter) Option {
	return func(l *Locator) { l.reporter = r }
}

// WithLogger sets the debug logger. Default discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Locator) { l.logger = logger }
}

// WithDefaultAlias overrides the alias used when no version preference
// is found. Default is DefaultAlias.
func WithDefaultAlias(alias string) Option {
	return func(l *Locator) { l.defaultAlias = alias }
}

// WithMonoNaming forces or disables Mono-style installation folder
// names. Default follows the host platform.
func WithMonoNaming(mono bool) Option {
	return func(l *Locator) { l.monoNaming = mono }
}

// New creates a Locator. Without options it reports nothing, logs
// nothing, and follows the host platform's naming convention.
func New(opts ...Option) *Locator {
	l := &Locator{
		reporter:     NopReporter{},
		logger:       slog.New(slog.DiscardHandler),
		defaultAlias: DefaultAlias,
		monoNaming:   platform.MonoNaming(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve runs the full pipeline for startDir: root resolution, version
// reading, and the home × epoch candidate search, then locates the tool
// binaries of the selected runtime.
//
// Candidates are probed homes-outer, epochs-inner, in the fixed priority
// order; the first existing directory wins and no scoring is performed.
// When no candidate exists, exactly one error diagnostic listing every
// searched path is emitted through the Reporter and the Result carries
// an empty RuntimePath. A malformed marker file is the only hard error.
func (l *Locator) Resolve(startDir string) (*Result, error) {
	root := ResolveRootDirectory(startDir)

	version, err := ReadVersionSpec(root)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Root:    root,
		Version: version,
	}
	if marker := filepath.Join(root, MarkerFileName); fileExists(marker) {
		res.MarkerPath = marker
	}

	versionOrAlias := version.OrDefault(l.defaultAlias)
	l.logger.Debug("resolving runtime", "root", root, "version", versionOrAlias)

search:
	for _, home := range RuntimeHomes() {
		if home == "" {
			continue
		}
		for _, ep := range Epochs() {
			candidate, err := expandCandidate(versionOrAlias, home, ep, l.monoNaming)
			if err != nil {
				return nil, err
			}
			l.logger.Debug("probing candidate", "epoch", ep.Name, "path", candidate)
			if dirExists(candidate) {
				res.RuntimePath = candidate
				break search
			}
			res.Searched = append(res.Searched, candidate)
		}
	}

	if res.RuntimePath == "" {
		l.reporter.Report(Diagnostic{
			Severity: SeverityError,
			Code:     "runtime_not_found",
			Message: fmt.Sprintf("The specified runtime path '%s' does not exist. Searched locations:\n%s",
				versionOrAlias, strings.Join(res.Searched, "\n")),
			Position: version.Origin,
		})
		return res, nil
	}

	l.logger.Debug("selected runtime", "path", res.RuntimePath)
	res.Tools = ToolPaths{
		Dnx: FindToolBinary(res.RuntimePath, ToolDnx),
		Dnu: FindToolBinary(res.RuntimePath, ToolDnu),
		Klr: FindToolBinary(res.RuntimePath, ToolKlr),
		Kpm: FindToolBinary(res.RuntimePath, ToolKpm),
		K:   FindToolBinary(res.RuntimePath, ToolK),
	}
	return res, nil
}

// Candidates returns every candidate installation directory for
// startDir in the exact order Resolve would probe them, without any
// existence checks. This mirrors the searched-paths list of a failed
// resolution and exists as a diagnostic aid.
func (l *Locator) Candidates(startDir string) ([]string, error) {
	root := ResolveRootDirectory(startDir)

	version, err := ReadVersionSpec(root)
	if err != nil {
		return nil, err
	}
	versionOrAlias := version.OrDefault(l.defaultAlias)

	var candidates []string
	for _, home := range RuntimeHomes() {
		if home == "" {
			continue
		}
		for _, ep := range Epochs() {
			candidate, err := expandCandidate(versionOrAlias, home, ep, l.monoNaming)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, candidate)
		}
	}
	return candidates, nil
}

// FindToolBinary returns the absolute path of the first candidate
// filename for tool that exists as a file under <runtimePath>/bin.
// It returns "" when runtimePath is empty, the tool is unknown, or no
// candidate exists.
func FindToolBinary(runtimePath string, tool Tool) string {
	if runtimePath == "" {
		return ""
	}
	for _, name := range toolCandidates[tool] {
		path := filepath.Join(runtimePath, binDirName, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// Path returns the tool path for the given logical tool, empty when
// absent or unknown.
func (p ToolPaths) Path(tool Tool) string {
	switch tool {
	case ToolDnx:
		return p.Dnx
	case ToolDnu:
		return p.Dnu
	case ToolKlr:
		return p.Klr
	case ToolKpm:
		return p.Kpm
	case ToolK:
		return p.K
	default:
		return ""
	}
}
