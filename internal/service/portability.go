package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/saadjs/fittrack-cli/internal/model"
	"github.com/saadjs/fittrack-cli/internal/store"
)

const exportVersion = 1

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("invalid format %q (use json or yaml)", value)
}

// FormatFromPath guesses the format from a file extension, defaulting to
// JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type ImportMode string

const (
	ImportModeReplace ImportMode = "replace"
	ImportModeMerge   ImportMode = "merge"
)

func ParseImportMode(value string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(value))) {
	case ImportModeReplace:
		return ImportModeReplace, nil
	case ImportModeMerge, "":
		return ImportModeMerge, nil
	}
	return "", fmt.Errorf("invalid import mode %q (use merge or replace)", value)
}

type ExportData struct {
	Version    int            `json:"version" yaml:"version"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	State      model.Snapshot `json:"state" yaml:"state"`
}

type ImportReport struct {
	Inserted int  `json:"inserted" yaml:"inserted"`
	Skipped  int  `json:"skipped" yaml:"skipped"`
	Replaced bool `json:"replaced" yaml:"replaced"`
}

func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

// Decode reads one document. Unknown JSON fields are rejected so typos in
// hand-written plan files surface.
func Decode(data []byte, format Format, dst any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(dst); err != nil {
			return fmt.Errorf("decode yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(dst); err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
	}
	return nil
}

func Export(st *store.Stores, w io.Writer, format Format, now time.Time) error {
	data := ExportData{Version: exportVersion, ExportedAt: now.UTC(), State: st.Snapshot()}
	return Encode(w, format, data)
}

// Import loads an export. Replace swaps in the exported state wholesale,
// except that onboarding stays complete once completed. Merge keeps existing
// records, appends records with unseen ids (sleep and progress by unseen
// date), and takes the exported profile and plans only where none are set.
func Import(st *store.Stores, data []byte, format Format, mode ImportMode) (ImportReport, error) {
	var in ExportData
	if err := Decode(data, format, &in); err != nil {
		return ImportReport{}, err
	}
	if in.Version != exportVersion {
		return ImportReport{}, fmt.Errorf("unsupported export version %d", in.Version)
	}

	if mode == ImportModeReplace {
		st.Restore(in.State)
		return ImportReport{Inserted: countRecords(in.State), Replaced: true}, nil
	}

	current := st.Snapshot()
	report := ImportReport{}
	next := current
	if next.Profile == nil && in.State.Profile != nil {
		next.Profile = in.State.Profile
		next.IsOnboarded = next.IsOnboarded || in.State.IsOnboarded
		report.Inserted++
	}
	if next.WorkoutPlan == nil && in.State.WorkoutPlan != nil {
		next.WorkoutPlan = in.State.WorkoutPlan
		report.Inserted++
	}
	if next.MealPlan == nil && in.State.MealPlan != nil {
		next.MealPlan = in.State.MealPlan
		report.Inserted++
	}
	next.WorkoutLogs = mergeByKey(next.WorkoutLogs, in.State.WorkoutLogs, func(l model.WorkoutLog) string { return l.ID }, &report)
	next.MealLogs = mergeByKey(next.MealLogs, in.State.MealLogs, func(l model.MealLog) string { return l.ID }, &report)
	next.WaterLogs = mergeByKey(next.WaterLogs, in.State.WaterLogs, func(l model.WaterLog) string { return l.ID }, &report)
	next.SleepLogs = mergeByKey(next.SleepLogs, in.State.SleepLogs, func(l model.SleepLog) string { return l.Date }, &report)
	next.ProgressEntries = mergeByKey(next.ProgressEntries, in.State.ProgressEntries, func(p model.Progress) string { return p.Date }, &report)
	next.Reminders = mergeByKey(next.Reminders, in.State.Reminders, func(r model.Reminder) string { return r.ID }, &report)

	if report.Inserted > 0 {
		st.Restore(next)
	}
	log.WithFields(log.Fields{"inserted": report.Inserted, "skipped": report.Skipped}).Debug("import merged")
	return report, nil
}

func mergeByKey[T any](current, incoming []T, key func(T) string, report *ImportReport) []T {
	seen := make(map[string]bool, len(current))
	for _, item := range current {
		seen[key(item)] = true
	}
	out := current
	for _, item := range incoming {
		k := key(item)
		if seen[k] {
			report.Skipped++
			continue
		}
		seen[k] = true
		out = append(out, item)
		report.Inserted++
	}
	return out
}

func countRecords(s model.Snapshot) int {
	n := len(s.WorkoutLogs) + len(s.MealLogs) + len(s.WaterLogs) + len(s.SleepLogs) + len(s.ProgressEntries) + len(s.Reminders)
	if s.Profile != nil {
		n++
	}
	if s.WorkoutPlan != nil {
		n++
	}
	if s.MealPlan != nil {
		n++
	}
	return n
}
