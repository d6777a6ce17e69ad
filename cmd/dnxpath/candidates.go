// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dnxpath/internal/locator"

	"github.com/spf13/cobra"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates [dir]",
	Short: "List every candidate installation path in probe order",
	Long: `List every candidate installation directory the locator would probe
for the given project directory (default: current working directory),
in the exact priority order. No existence checks are performed; this
mirrors the searched-paths list of a failed resolution.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCandidates(args)
	},
}

func runCandidates(args []string) error {
	startDir, err := startDirFromArgs(args)
	if err != nil {
		return err
	}

	candidates, err := newLocator(locator.NopReporter{}).Candidates(startDir)
	if err != nil {
		return decorateResolveError(err)
	}

	for _, candidate := range candidates {
		fmt.Println(candidate)
	}
	return nil
}
