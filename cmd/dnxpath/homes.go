// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dnxpath/internal/locator"

	"github.com/spf13/cobra"
)

var homesCmd = &cobra.Command{
	Use:   "homes",
	Short: "List runtime homes in priority order",
	Long: `List every candidate runtime home in the order the locator probes
them: the DNX_HOME and KRE_HOME override variables first, then the
per-epoch dot-directories under the user home. Unset entries are shown
as such; they are skipped during resolution.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHomes()
	},
}

func runHomes() error {
	labels := []string{"$" + locator.EnvDnxHome, "$" + locator.EnvKreHome}
	for _, ep := range locator.Epochs() {
		labels = append(labels, "~/"+ep.HomeDir)
	}

	for i, home := range locator.RuntimeHomes() {
		value := home
		if value == "" {
			value = SubtitleStyle.Render("(unset)")
		}
		fmt.Printf("%d. %-12s %s\n", i+1, PathStyle.Render(labels[i]), value)
	}
	return nil
}
