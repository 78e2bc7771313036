package fittrack

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fittrack local configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		cfg, err := app.LoadConfig(path)
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := app.SaveConfig(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s in %s\n", args[0], path)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show current configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		values := cfg.Values()
		if len(args) == 1 {
			v, ok := values[args[0]]
			if !ok {
				return fmt.Errorf("unknown config key %q", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
		for _, k := range app.ConfigKeys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, values[k])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)
}
