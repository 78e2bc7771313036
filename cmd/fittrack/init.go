package fittrack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/saadjs/fittrack-cli/internal/app"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize local fittrack database and config",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := resolveDBPath(cfg)
		if err != nil {
			return err
		}
		sqldb, err := openDB(path)
		if err != nil {
			return err
		}
		if err := sqldb.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized fittrack database at %s\n", path)

		cfgPath, err := resolveConfigPath()
		if err != nil {
			return err
		}
		created, err := writeConfigIfMissing(cfgPath)
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", cfgPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func writeConfigIfMissing(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config %s: %w", path, err)
	}
	if err := app.SaveConfig(path, app.DefaultConfig()); err != nil {
		return false, err
	}
	return true, nil
}
