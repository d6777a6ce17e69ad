// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"dnxpath/internal/issue"
	"dnxpath/internal/locator"

	"github.com/spf13/cobra"
)

var whichCmd = &cobra.Command{
	Use:   "which <tool> [dir]",
	Short: "Print the absolute path of one runtime tool binary",
	Long: `Print the absolute path of a single logical tool binary (dnx, dnu,
klr, kpm, or k) for the runtime that applies to the given project
directory (default: current working directory).

Exits with status 1 when the runtime or the binary cannot be found.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWhich(args)
	},
}

func runWhich(args []string) error {
	tool, err := locator.ParseTool(args[0])
	if err != nil {
		if errors.Is(err, locator.ErrUnknownTool) {
			if rendered, renderErr := issue.Get(issue.UnknownToolId).Render(""); renderErr == nil {
				fmt.Fprintln(os.Stderr, rendered)
			}
		}
		return err
	}

	startDir, err := startDirFromArgs(args[1:])
	if err != nil {
		return err
	}

	res, err := newLocator(locator.ReporterFunc(stderrReporter)).Resolve(startDir)
	if err != nil {
		return decorateResolveError(err)
	}

	path := res.Tools.Path(tool)
	if path == "" {
		return &ExitError{Code: 1, Err: fmt.Errorf("tool %s not found", tool)}
	}

	fmt.Println(path)
	return nil
}
