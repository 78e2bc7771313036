package fittrack

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/saadjs/fittrack-cli/internal/app"
	"github.com/saadjs/fittrack-cli/internal/db"
	"github.com/saadjs/fittrack-cli/internal/formula"
	"github.com/saadjs/fittrack-cli/internal/logging"
	"github.com/saadjs/fittrack-cli/internal/service"
	"github.com/saadjs/fittrack-cli/internal/store"
)

// clock is swapped in tests.
var clock = time.Now

// session is what a command sees: the loaded config and the restored stores.
type session struct {
	cfg    app.Config
	db     *sql.DB
	stores *store.Stores
	now    time.Time
}

// withState opens the database, restores the stores from the last snapshot,
// runs fn and writes a new snapshot if any store changed.
func withState(cmd *cobra.Command, fn func(*session) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	closeLog := logging.Setup(logging.SetupParams{
		LogFileName: cfg.LogFile,
		LogToStderr: cfg.LogToStderr,
		LogLevel:    cfg.LogLevel,
		Stderr:      cmd.ErrOrStderr(),
	})
	defer func() { err = multierr.Append(err, closeLog()) }()

	path, err := resolveDBPath(cfg)
	if err != nil {
		return err
	}
	sqldb, err := openDB(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, sqldb.Close()) }()

	snap, err := db.LoadSnapshot(sqldb)
	if err != nil {
		return err
	}
	st := store.New()
	st.Restore(snap)

	dirty := false
	st.Subscribe(func() { dirty = true })

	if err := fn(&session{cfg: cfg, db: sqldb, stores: st, now: clock()}); err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	return db.SaveSnapshot(sqldb, st.Snapshot())
}

func openDB(path string) (*sql.DB, error) {
	if err := app.EnsureDir(path); err != nil {
		return nil, err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		return nil, multierr.Append(err, sqldb.Close())
	}
	return sqldb, nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return app.DefaultConfigPath()
}

func loadConfig() (app.Config, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return app.Config{}, err
	}
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func resolveDBPath(cfg app.Config) (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return app.DefaultDBPath()
}

func parseDaysArg(value string) ([]int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	var days []int
	for _, part := range strings.Split(value, ",") {
		d, err := parseWeekday(part)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// parseWeekday accepts 0-6 (Sunday first) or a day name such as "mon".
func parseWeekday(value string) (int, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if n, err := strconv.Atoi(value); err == nil {
		return n, nil
	}
	for i, name := range []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"} {
		if len(value) >= 3 && strings.HasPrefix(name, value) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid day %q (use 0-6 or a day name)", value)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func stringFlag(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func intFlag(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func floatFlag(cmd *cobra.Command, name string, value float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func boolFlag(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// decodeFile reads a json or yaml document, picking the format from the
// file extension.
func decodeFile(path string, dst any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("--file is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return service.Decode(data, service.FormatFromPath(path), dst)
}

// dayOrNow parses YYYY-MM-DD in now's location; empty means now.
func dayOrNow(date string, now time.Time) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return now, nil
	}
	t, err := time.ParseInLocation(formula.DateLayout, date, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", date)
	}
	return t, nil
}
