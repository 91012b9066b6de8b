package domain

// ThresholdOp defines how a KPI value is compared against its threshold.
//
// It is used by KPI tests to decide whether a computed metric gates the
// job run as successful. Possible values include:
// - SuperiorThan: The value must be strictly greater than the threshold.
// - InferiorThan: The value must be strictly lower than the threshold.
// - EqualTo:      The value must be equal to the threshold.
type ThresholdOp string

const (
	// SuperiorThan requires the KPI value to be strictly greater than the threshold.
	// Typical for coverage or quality ratios ("at least 95% of rows deduplicated").
	SuperiorThan ThresholdOp = "superior than"

	// InferiorThan requires the KPI value to be strictly lower than the threshold.
	// Typical for error rates or latency budgets.
	InferiorThan ThresholdOp = "inferior than"

	// EqualTo requires the KPI value to be exactly equal to the threshold.
	// Typical for row-count reconciliation between two stages.
	EqualTo ThresholdOp = "equal to"
)

const (
	// DEFAULT_DATE_FORMAT is the default day-granularity pattern used across the
	// date helper and the monitor when no explicit pattern is provided.
	DEFAULT_DATE_FORMAT = "yyyyMMdd"
	// DEFAULT_TIME_FORMAT is the pattern used to stamp individual report lines.
	DEFAULT_TIME_FORMAT = "HH:mm"
	// DEFAULT_STAMP_FORMAT is the pattern used to name persisted report files.
	// One report file per job run, collision-free at second granularity.
	DEFAULT_STAMP_FORMAT = "yyyyMMdd_HHmmss"
)

const (
	// ONGOING_FILE is the marker file refreshed on every report update while a
	// run is in flight. Its presence means a run is ongoing or has crashed.
	ONGOING_FILE = "current.ongoing"
	// CURRENT_SUCCESS_FILE holds a copy of the latest successful report.
	CURRENT_SUCCESS_FILE = "current.success"
	// CURRENT_FAILURE_FILE holds a copy of the latest failed report.
	CURRENT_FAILURE_FILE = "current.failure"
	// LOG_EXT_SUCCESS is the extension of persisted reports for successful runs.
	LOG_EXT_SUCCESS = ".log.success"
	// LOG_EXT_FAILURE is the extension of persisted reports for failed runs.
	LOG_EXT_FAILURE = ".log.failure"
)
