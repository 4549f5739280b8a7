package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent user settings",
	Long: `Manage persistent user settings stored in ~/.evpnscan/settings.json.

Examples:
  evpnscan settings set roster nodes.yml
  evpnscan settings set parallel 16
  evpnscan settings show
  evpnscan settings clear`,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting (roster, parallel)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "roster":
			userSettings.SetRoster(args[1])
		case "parallel":
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return fmt.Errorf("parallel must be a positive integer, got %q", args[1])
			}
			userSettings.SetParallel(n)
		default:
			return fmt.Errorf("unknown setting %q (valid: roster, parallel)", args[0])
		}
		return userSettings.Save()
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		roster := userSettings.DefaultRoster
		if roster == "" {
			roster = "(not set)"
		}
		fmt.Printf("roster:   %s\n", roster)
		fmt.Printf("parallel: %d\n", userSettings.GetParallel())
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset all settings to defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		userSettings.Clear()
		return userSettings.Save()
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsClearCmd)
}
