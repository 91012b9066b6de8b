package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osmike/batchkit/internal/domain"
	errs "github.com/osmike/batchkit/internal/error"
)

// Store finalizes and persists the run report.
//
// It appends a closing line with the run duration and overall outcome, then,
// when a log directory is configured:
//   - writes the report to <LogDir>/<begin stamp>.log.success|.failure,
//   - refreshes the current.success|.failure copy and removes the stale
//     counterpart,
//   - removes the ongoing marker,
//   - purges persisted reports older than PurgeAfter days.
//
// A monitor can be stored once; a second Store call is rejected.
//
// Parameters:
//   - ctx: Context for the storage backend calls.
//
// Returns:
//   - The path of the persisted report, or empty when no log directory is set.
//   - An error wrapping ErrMonitorStored on double store, or ErrStoreReport
//     when persistence fails.
func (m *Monitor) Store(ctx context.Context) (string, error) {
	if m.stored {
		return "", errs.New(errs.ErrMonitorStored, m.runID)
	}
	m.stored = true

	outcome := "failure"
	if m.success {
		outcome = "success"
	}
	m.lines = append(m.lines, m.stamp(fmt.Sprintf("Duration: %s - %s", formatDuration(m.now().Sub(m.begin)), outcome)))

	if m.cfg.LogDir == "" {
		return "", nil
	}

	ext := domain.LOG_EXT_FAILURE
	current := domain.CURRENT_FAILURE_FILE
	stale := domain.CURRENT_SUCCESS_FILE
	if m.success {
		ext = domain.LOG_EXT_SUCCESS
		current = domain.CURRENT_SUCCESS_FILE
		stale = domain.CURRENT_FAILURE_FILE
	}

	report := []byte(m.Report())
	path := join(m.cfg.LogDir, m.stampFmt.Render(m.begin)+ext)

	if err := m.store.WriteFile(ctx, path, report); err != nil {
		return "", errs.New(errs.ErrStoreReport, err.Error())
	}
	if err := m.store.WriteFile(ctx, join(m.cfg.LogDir, current), report); err != nil {
		return "", errs.New(errs.ErrStoreReport, err.Error())
	}
	if err := m.store.Delete(ctx, join(m.cfg.LogDir, stale)); err != nil {
		return "", errs.New(errs.ErrStoreReport, err.Error())
	}
	if err := m.store.Delete(ctx, join(m.cfg.LogDir, domain.ONGOING_FILE)); err != nil {
		return "", errs.New(errs.ErrStoreReport, err.Error())
	}

	if err := m.purge(ctx); err != nil {
		return "", err
	}

	m.logger.Info().
		Str("run_id", m.runID).
		Str("path", path).
		Bool("success", m.success).
		Msg("stored run report")

	return path, nil
}

// purge removes persisted reports older than PurgeAfter days. Only *.log.*
// files are touched; markers and unrelated files survive.
func (m *Monitor) purge(ctx context.Context) error {
	if m.cfg.PurgeAfter == 0 {
		return nil
	}

	infos, err := m.store.List(ctx, m.cfg.LogDir)
	if err != nil {
		return errs.New(errs.ErrPurge, err.Error())
	}

	cutoff := m.now().AddDate(0, 0, -m.cfg.PurgeAfter)
	removed := 0
	for _, fi := range infos {
		if fi.IsDir || !isReportFile(fi.Path) || !fi.ModTime.Before(cutoff) {
			continue
		}
		if err := m.store.Delete(ctx, fi.Path); err != nil {
			return errs.New(errs.ErrPurge, fmt.Sprintf("removing %s: %v", fi.Path, err))
		}
		removed++
	}

	if removed > 0 {
		m.logger.Debug().Int("removed", removed).Str("dir", m.cfg.LogDir).Msg("purged old run reports")
	}
	return nil
}

func isReportFile(path string) bool {
	return strings.HasSuffix(path, domain.LOG_EXT_SUCCESS) || strings.HasSuffix(path, domain.LOG_EXT_FAILURE)
}

// formatDuration renders a duration as HH:MM:SS.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
