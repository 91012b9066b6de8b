// Package batchkit is a collection of independent helper utilities for batch
// data-processing jobs: a filesystem wrapper, a parallel-collection helper, a
// date-arithmetic helper and a job-run monitor/logger.
//
// None of these implement a scheduler or a protocol; each is a thin
// convenience layer the driver of a batch job calls directly.
//
// Features:
//   - One FS surface over the local filesystem (atomic, durable writes) and
//     S3-compatible object stores.
//   - Bounded, order-preserving parallel Map/ForEach/Filter over slices.
//   - Date formatting and arithmetic with Java-style patterns ("yyyyMMdd").
//   - A run monitor accumulating a plain-text report, gating success on KPI
//     thresholds and persisting logs next to earlier runs.
//
// Example usage:
//
//	cfg, _ := batchkit.LoadMonitorConfig("monitor.yaml")
//	mon, _ := batchkit.NewMonitor(cfg, nil)
//
//	days, _ := batchkit.DefaultFormat().Range("20170320", "20170327")
//	counts, err := batchkit.Map(ctx, days, 4, countRowsForDay)
//	if err != nil {
//		mon.UpdateWithError("counting rows", err)
//	} else {
//		mon.UpdateWithSuccess("counting rows")
//		mon.UpdateWithKPIs("volume check", batchkit.KPITest{
//			Name:      "rows.total",
//			Value:     total(counts),
//			Must:      batchkit.SuperiorThan,
//			Threshold: 1_000_000,
//		})
//	}
//
//	_, _ = mon.Store(ctx)
package batchkit

import (
	"context"

	"github.com/osmike/batchkit/internal/dates"
	"github.com/osmike/batchkit/internal/domain"
	"github.com/osmike/batchkit/internal/fsys"
	"github.com/osmike/batchkit/internal/monitor"
	"github.com/osmike/batchkit/internal/par"
)

// Monitor is the job-run monitor: report accumulation, success-state tracking,
// KPI validation and report persistence for one batch run.
//
// It is a single-threaded, driver-only object. Do not share it with parallel
// workers; aggregate on the driver, then record.
type Monitor = monitor.Monitor

// MonitorConfig encapsulates the settings required to initialize a Monitor.
//
// Parameters:
//   - Title: Report header line.
//   - Contacts: People responsible for the job.
//   - LogDir: Directory (or object-store prefix) where reports are persisted.
//     Empty keeps the report in memory only.
//   - PurgeAfter: Days persisted reports are kept. Zero disables purging.
//   - DateFormat, TimeFormat: Java-style patterns; defaults "yyyyMMdd", "HH:mm".
type MonitorConfig = domain.Monitor

// KPITest is a named assertion comparing a computed numeric value against a
// threshold, used by the monitor to gate job success.
type KPITest = domain.KPITest

// ThresholdOp defines how a KPI value is compared against its threshold.
type ThresholdOp = domain.ThresholdOp

// Threshold operators for KPI tests.
const (
	SuperiorThan = domain.SuperiorThan
	InferiorThan = domain.InferiorThan
	EqualTo      = domain.EqualTo
)

// FS is the backend-agnostic filesystem surface shared by the local and S3
// implementations.
type FS = fsys.FS

// FileInfo is a lightweight, backend-agnostic description of a stored file.
type FileInfo = domain.FileInfo

// S3Config holds the settings for connecting to an S3-compatible object store.
type S3Config = fsys.S3Config

// Format is a validated date format created from a Java-style pattern.
type Format = dates.Format

// NewMonitor initializes a monitor for a single job run.
//
// Parameters:
//   - cfg: Monitor configuration.
//   - store: Storage backend for persisted reports; nil selects the local
//     filesystem.
//
// Returns:
//   - A monitor with the report header already recorded.
//   - An error describing the invalid configuration otherwise.
func NewMonitor(cfg MonitorConfig, store FS) (*Monitor, error) {
	return monitor.New(cfg, store)
}

// LoadMonitorConfig reads a MonitorConfig from a YAML file and applies
// BATCHKIT_MONITOR_* environment overrides.
func LoadMonitorConfig(path string) (MonitorConfig, error) {
	return monitor.LoadConfig(path)
}

// NewLocalFS returns an FS backed by the local filesystem with atomic, durable
// writes.
func NewLocalFS() FS {
	return fsys.NewLocal()
}

// NewS3FS returns an FS backed by an S3-compatible object store, bound to a
// single bucket.
func NewS3FS(cfg S3Config) FS {
	return fsys.NewS3(cfg)
}

// ReadLines reads the file at path and splits it into lines.
func ReadLines(ctx context.Context, fs FS, path string) ([]string, error) {
	return fsys.ReadLines(ctx, fs, path)
}

// WriteLines writes lines to path, one per line with a trailing newline.
func WriteLines(ctx context.Context, fs FS, path string, lines []string) error {
	return fsys.WriteLines(ctx, fs, path, lines)
}

// ParsePattern validates a Java-style date pattern ("yyyyMMdd",
// "yyyy-MM-dd HH:mm:ss") and returns the corresponding Format.
func ParsePattern(pattern string) (Format, error) {
	return dates.ParsePattern(pattern)
}

// DefaultFormat returns the Format for the module-wide default day pattern
// "yyyyMMdd".
func DefaultFormat() Format {
	return dates.Default()
}

// Reformat converts a date string from one pattern to another, e.g.
// Reformat("20170327", "yyyyMMdd", "yyMMdd") yields "170327".
func Reformat(s, from, to string) (string, error) {
	return dates.Reformat(s, from, to)
}

// Map applies fn to every element of in using up to workers goroutines and
// returns the results in input order. The first error cancels outstanding work.
func Map[T, R any](ctx context.Context, in []T, workers int, fn func(context.Context, T) (R, error)) ([]R, error) {
	return par.Map(ctx, in, workers, fn)
}

// ForEach applies fn to every element of in using up to workers goroutines.
func ForEach[T any](ctx context.Context, in []T, workers int, fn func(context.Context, T) error) error {
	return par.ForEach(ctx, in, workers, fn)
}

// Filter returns the elements of in satisfying pred, preserving input order.
func Filter[T any](ctx context.Context, in []T, workers int, pred func(context.Context, T) (bool, error)) ([]T, error) {
	return par.Filter(ctx, in, workers, pred)
}

// GroupBy collects the elements of in into a map keyed by keyFn.
func GroupBy[T any, K comparable](in []T, keyFn func(T) K) map[K][]T {
	return par.GroupBy(in, keyFn)
}

// Chunks splits in into consecutive batches of at most size elements.
func Chunks[T any](in []T, size int) [][]T {
	return par.Chunks(in, size)
}

// Partition maps a string key onto one of n partitions using stable hashing.
func Partition(key string, n int) int {
	return par.Partition(key, n)
}
