// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"dnxpath/internal/issue"
	"dnxpath/internal/locator"

	"github.com/spf13/cobra"
)

var (
	resolveJSON   bool
	resolveStrict bool

	resolveCmd = &cobra.Command{
		Use:   "resolve [dir]",
		Short: "Resolve the runtime and tool paths for a project directory",
		Long: `Resolve the runtime installation that applies to a project directory.

The directory defaults to the current working directory. The resolved
project root, marker file, requested version, runtime installation and
tool binary paths are printed; when no installation matches, every
searched path is listed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args)
		},
	}
)

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
	resolveCmd.Flags().BoolVar(&resolveStrict, "strict", false, "exit non-zero when no runtime is found")
}

type (
	// positionOutput mirrors locator.Position for JSON output.
	positionOutput struct {
		File   string `json:"file"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
	}

	// toolsOutput holds the tool paths for JSON output.
	toolsOutput struct {
		Dnx string `json:"dnx,omitempty"`
		Dnu string `json:"dnu,omitempty"`
		Klr string `json:"klr,omitempty"`
		Kpm string `json:"kpm,omitempty"`
		K   string `json:"k,omitempty"`
	}

	// resolveOutput is the JSON shape of a resolution result.
	resolveOutput struct {
		Root          string          `json:"root"`
		MarkerPath    string          `json:"marker_path,omitempty"`
		Version       string          `json:"version,omitempty"`
		VersionOrigin *positionOutput `json:"version_origin,omitempty"`
		RuntimePath   string          `json:"runtime_path,omitempty"`
		Searched      []string        `json:"searched,omitempty"`
		Tools         toolsOutput     `json:"tools"`
	}
)

// startDirFromArgs returns the optional positional directory argument,
// defaulting to the current working directory.
func startDirFromArgs(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}

// newLocator builds a Locator wired to the loaded configuration, the CLI
// logger, and the given diagnostic reporter.
func newLocator(reporter locator.Reporter) *locator.Locator {
	return locator.New(
		locator.WithDefaultAlias(loadedCfg.DefaultAlias),
		locator.WithLogger(slog.Default()),
		locator.WithReporter(reporter),
	)
}

// stderrReporter renders diagnostics to stderr, including the marker-file
// source position when present.
func stderrReporter(d locator.Diagnostic) {
	prefix := ErrorStyle.Render("Error: ")
	if d.Severity == locator.SeverityWarning {
		prefix = WarningStyle.Render("Warning: ")
	}
	msg := d.Message
	if d.Position != nil {
		msg = fmt.Sprintf("%s\n  at %s:%d:%d", msg, d.Position.File, d.Position.Line, d.Position.Column)
	}
	fmt.Fprintln(os.Stderr, prefix+msg)
}

func runResolve(args []string) error {
	startDir, err := startDirFromArgs(args)
	if err != nil {
		return err
	}

	reporter := locator.ReporterFunc(stderrReporter)
	if resolveJSON {
		// Diagnostics would corrupt the JSON stream; the searched list
		// carries the same information.
		reporter = func(locator.Diagnostic) {}
	}

	res, err := newLocator(reporter).Resolve(startDir)
	if err != nil {
		return decorateResolveError(err)
	}

	if resolveJSON {
		if err := printResolveJSON(res); err != nil {
			return err
		}
	} else {
		printResolveText(res)
	}

	if resolveStrict && res.RuntimePath == "" {
		return &ExitError{Code: 1, Err: errors.New("no matching runtime found")}
	}
	return nil
}

// decorateResolveError maps locator errors to user-facing guidance.
func decorateResolveError(err error) error {
	if errors.Is(err, locator.ErrMalformedMarker) {
		if rendered, renderErr := issue.Get(issue.MarkerParseErrorId).Render(""); renderErr == nil {
			fmt.Fprintln(os.Stderr, rendered)
		}
		return issue.WrapWithOperation(err, "parse global.json")
	}
	return err
}

func printResolveJSON(res *locator.Result) error {
	out := resolveOutput{
		Root:        res.Root,
		MarkerPath:  res.MarkerPath,
		RuntimePath: res.RuntimePath,
		Searched:    res.Searched,
		Tools: toolsOutput{
			Dnx: res.Tools.Dnx,
			Dnu: res.Tools.Dnu,
			Klr: res.Tools.Klr,
			Kpm: res.Tools.Kpm,
			K:   res.Tools.K,
		},
	}
	if res.Version.Set {
		out.Version = res.Version.Value
		if res.Version.Origin != nil {
			out.VersionOrigin = &positionOutput{
				File:   res.Version.Origin.File,
				Line:   res.Version.Origin.Line,
				Column: res.Version.Origin.Column,
			}
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printResolveText(res *locator.Result) {
	fmt.Println(SubtitleStyle.Render("Project root: ") + PathStyle.Render(res.Root))

	marker := "(none)"
	if res.MarkerPath != "" {
		marker = res.MarkerPath
	}
	fmt.Println(SubtitleStyle.Render("Marker file:  ") + marker)

	version := fmt.Sprintf("%s (no preference, using default alias)", loadedCfg.DefaultAlias)
	if res.Version.Set {
		version = res.Version.Value
		if res.Version.Origin != nil {
			version += fmt.Sprintf(" (from %s:%d:%d)",
				res.Version.Origin.File, res.Version.Origin.Line, res.Version.Origin.Column)
		}
	}
	fmt.Println(SubtitleStyle.Render("Version:      ") + version)

	if res.RuntimePath == "" {
		fmt.Println(SubtitleStyle.Render("Runtime:      ") + ErrorStyle.Render("(not found)"))
		if rendered, err := issue.Get(issue.RuntimeNotFoundId).Render(""); err == nil {
			fmt.Println(rendered)
		}
		return
	}

	fmt.Println(SubtitleStyle.Render("Runtime:      ") + SuccessStyle.Render(res.RuntimePath))
	fmt.Println(SubtitleStyle.Render("Tools:"))
	for _, tool := range []locator.Tool{locator.ToolDnx, locator.ToolDnu, locator.ToolKlr, locator.ToolKpm, locator.ToolK} {
		path := res.Tools.Path(tool)
		if path == "" {
			path = "(not found)"
		}
		fmt.Printf("  %-5s %s\n", PathStyle.Render(string(tool)), path)
	}
}
