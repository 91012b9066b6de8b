package domain

import "time"

// Monitor encapsulates the configuration settings required to initialize a new
// job-run monitor.
//
// Parameters:
//   - Title: Human-readable name of the monitored job, printed as the report header.
//   - Contacts: People or mailing lists responsible for the job, printed below the title.
//   - LogDir: Directory (or object-store prefix) where reports are persisted.
//     If empty, the monitor accumulates the report in memory only.
//   - PurgeAfter: Number of days persisted reports are kept before being purged
//     on Store. Zero disables purging.
//   - DateFormat: Pattern for day-granularity dates. Default is "yyyyMMdd" if empty.
//   - TimeFormat: Pattern used to stamp report lines. Default is "HH:mm" if empty.
type Monitor struct {
	Title      string   `yaml:"title"`
	Contacts   []string `yaml:"contacts"`
	LogDir     string   `yaml:"log_dir"`
	PurgeAfter int      `yaml:"purge_after_days"`
	DateFormat string   `yaml:"date_format"`
	TimeFormat string   `yaml:"time_format"`
}

// KPITest is a named assertion comparing a computed numeric value against a
// threshold. A failing test latches the owning monitor's run as failed.
type KPITest struct {
	// Name identifies the KPI in the report (e.g. "duplicates.ratio").
	Name string

	// Value is the computed metric under test.
	Value float64

	// Must defines how Value is compared against Threshold.
	Must ThresholdOp

	// Threshold is the gating boundary applied with the Must operator.
	Threshold float64
}

// Passed reports whether the KPI value satisfies its threshold.
//
// Returns:
//   - true if the comparison defined by Must holds; false otherwise,
//     including when Must holds an unknown operator.
func (k KPITest) Passed() bool {
	switch k.Must {
	case SuperiorThan:
		return k.Value > k.Threshold
	case InferiorThan:
		return k.Value < k.Threshold
	case EqualTo:
		return k.Value == k.Threshold
	default:
		return false
	}
}

// FileInfo is a lightweight, backend-agnostic description of a stored file.
// It is returned by FS.List implementations for both local directories and
// object-store prefixes.
type FileInfo struct {
	// Path is the full path (or object key) of the entry.
	Path string

	// Size is the entry size in bytes.
	Size int64

	// ModTime is the last modification timestamp reported by the backend.
	ModTime time.Time

	// IsDir indicates a local directory entry. Object stores never set it.
	IsDir bool
}
