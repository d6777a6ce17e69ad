// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"dnxpath/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `dnxpath config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dnxpath configuration",
	Long: `Manage dnxpath configuration.

Configuration is stored in:
  - Linux: ~/.config/dnxpath/config.cue
  - macOS: ~/Library/Application Support/dnxpath/config.cue
  - Windows: %APPDATA%\dnxpath\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})
}

func showConfig() error {
	fmt.Println(TitleStyle.Render("dnxpath configuration"))
	fmt.Println(SubtitleStyle.Render("default_alias:   ") + loadedCfg.DefaultAlias)
	fmt.Println(SubtitleStyle.Render("ui.color_scheme: ") + loadedCfg.UI.ColorScheme.String())
	fmt.Println(SubtitleStyle.Render("ui.verbose:      ") + fmt.Sprintf("%v", loadedCfg.UI.Verbose))
	return nil
}

func initConfigFile() error {
	path, err := config.WriteDefault()
	if err != nil {
		return err
	}
	fmt.Println(SuccessStyle.Render("Created ") + PathStyle.Render(path))
	return nil
}

func showConfigPath() error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
