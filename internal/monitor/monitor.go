// Package monitor implements the job-run monitor: a driver-side bookkeeping
// object that accumulates a human-readable report across a batch run, tracks
// the run's success state, validates KPIs against thresholds and persists the
// report alongside earlier runs.
//
// A Monitor belongs to the single driver goroutine of a job run. It is not
// intended for concurrent use from parallel workers; aggregate results on the
// driver first, then record them.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osmike/batchkit/internal/dates"
	"github.com/osmike/batchkit/internal/domain"
	errs "github.com/osmike/batchkit/internal/error"
	"github.com/osmike/batchkit/internal/fsys"
	"github.com/osmike/batchkit/internal/log"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Monitor accumulates the report of one batch job run.
//
// The success flag starts true and latches to false on the first recorded
// failure, error or failed KPI test; later successes never clear it. While a
// run is in flight, every update rewrites an "ongoing" marker file in the log
// directory so that a crashed run leaves a truthful partial report behind.
type Monitor struct {
	cfg   domain.Monitor
	store fsys.FS

	runID string
	begin time.Time

	dateFmt  dates.Format
	timeFmt  dates.Format
	stampFmt dates.Format

	lines   []string
	success bool
	stored  bool

	// now is the clock used for line stamps; replaced in tests.
	now func() time.Time

	logger zerolog.Logger
}

// New initializes a monitor for a single job run and, when a log directory is
// configured, writes the initial ongoing marker.
//
// Parameters:
//   - cfg: Monitor configuration. Empty DateFormat/TimeFormat fall back to the
//     module defaults ("yyyyMMdd", "HH:mm").
//   - store: Storage backend for persisted reports. Defaults to the local
//     filesystem if nil.
//
// Returns:
//   - A monitor with the report header (title, contacts, run ID, begin stamp)
//     already recorded.
//   - An error wrapping ErrBadConfig or ErrBadPattern on invalid configuration.
func New(cfg domain.Monitor, store fsys.FS) (*Monitor, error) {
	if cfg.PurgeAfter < 0 {
		return nil, errs.New(errs.ErrBadConfig, fmt.Sprintf("purge_after_days must not be negative, got %d", cfg.PurgeAfter))
	}
	if cfg.Title == "" {
		cfg.Title = "Batch run"
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = domain.DEFAULT_DATE_FORMAT
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = domain.DEFAULT_TIME_FORMAT
	}

	dateFmt, err := dates.ParsePattern(cfg.DateFormat)
	if err != nil {
		return nil, err
	}
	timeFmt, err := dates.ParsePattern(cfg.TimeFormat)
	if err != nil {
		return nil, err
	}
	stampFmt, err := dates.ParsePattern(domain.DEFAULT_STAMP_FORMAT)
	if err != nil {
		return nil, err
	}

	if store == nil {
		store = fsys.NewLocal()
	}

	m := &Monitor{
		cfg:      cfg,
		store:    store,
		runID:    uuid.NewString(),
		dateFmt:  dateFmt,
		timeFmt:  timeFmt,
		stampFmt: stampFmt,
		success:  true,
		now:      time.Now,
		logger:   log.WithComponent("monitor"),
	}
	m.begin = m.now()

	m.lines = append(m.lines, "\t"+cfg.Title)
	if len(cfg.Contacts) > 0 {
		m.lines = append(m.lines, "Point of contact: "+strings.Join(cfg.Contacts, ", "))
	}
	m.lines = append(m.lines, "Run "+m.runID+" of "+m.dateFmt.Render(m.begin))
	m.lines = append(m.lines, m.stamp("Begin"))

	m.refreshOngoing()
	return m, nil
}

// RunID returns the unique identifier of this run.
func (m *Monitor) RunID() string {
	return m.runID
}

// Success reports whether the run is still considered successful.
func (m *Monitor) Success() bool {
	return m.success
}

// Report returns the report accumulated so far, one line per recorded update,
// terminated by a newline.
func (m *Monitor) Report() string {
	return strings.Join(m.lines, "\n") + "\n"
}

// Update appends a time-stamped description to the report without touching the
// success flag.
func (m *Monitor) Update(desc string) {
	m.append(m.stamp(desc))
}

// UpdateWithSuccess appends a time-stamped description marked as successful.
// The run's success flag is left unchanged: one successful stage never
// outweighs an earlier failure.
func (m *Monitor) UpdateWithSuccess(desc string) {
	m.append(m.stamp(desc) + ": success")
}

// UpdateWithFailure appends a time-stamped description marked as failed and
// latches the run's success flag to false.
func (m *Monitor) UpdateWithFailure(desc string) {
	m.success = false
	m.append(m.stamp(desc) + ": failure")
}

// UpdateWithError records a caught error as text and latches the run's success
// flag to false. The error is recorded, never rethrown: the monitor is a
// bookkeeping object, not a control-flow mechanism.
func (m *Monitor) UpdateWithError(desc string, err error) {
	m.success = false
	line := m.stamp(desc) + ": failure"
	if err != nil {
		line += "\n\terror: " + err.Error()
	}
	m.append(line)
}

// append adds a report line and refreshes the ongoing marker.
func (m *Monitor) append(line string) {
	m.lines = append(m.lines, line)
	m.refreshOngoing()
}

// stamp prefixes a description with the current time, e.g. "[10:23] Begin".
func (m *Monitor) stamp(desc string) string {
	return "[" + m.timeFmt.Render(m.now()) + "] " + desc
}

// refreshOngoing rewrites the ongoing marker file with the current report.
// Marker write failures are logged, not returned: report bookkeeping must not
// fail the job run it describes.
func (m *Monitor) refreshOngoing() {
	if m.cfg.LogDir == "" {
		return
	}
	path := join(m.cfg.LogDir, domain.ONGOING_FILE)
	if err := m.store.WriteFile(noCancel, path, []byte(m.Report())); err != nil {
		m.logger.Warn().Err(err).Str("path", path).Msg("failed to refresh ongoing marker")
	}
}

// join builds storage paths with forward slashes on every backend.
func join(dir, name string) string {
	return strings.TrimSuffix(dir, "/") + "/" + name
}

// noCancel backs marker writes: persistence of the run log must not be cut
// short by the job's own context teardown.
var noCancel = context.Background()
