package monitor

import (
	"fmt"

	"github.com/osmike/batchkit/internal/domain"
	errs "github.com/osmike/batchkit/internal/error"
)

// UpdateWithKPIs validates each KPI test against its threshold, appends the
// outcome to the report and latches the run's success flag to false if any
// test fails.
//
// A typical report fragment:
//
//	[10:23] Deduplication
//	    KPI duplicates.ratio: 0.50 (must be inferior than 1.00) - success
//	    KPI rows.kept: 94.48 (must be superior than 95.00) - failure
//
// Parameters:
//   - desc: Description of the validated stage.
//   - tests: KPI assertions to evaluate.
//
// Returns:
//   - true if every test passed; false otherwise.
//   - An error wrapping ErrUnknownThreshold if a test carries an unknown
//     operator. The test is recorded as failed either way.
func (m *Monitor) UpdateWithKPIs(desc string, tests ...domain.KPITest) (bool, error) {
	lines := []string{m.stamp(desc)}

	var err error
	passed := true
	for _, test := range tests {
		if !validOp(test.Must) {
			err = errs.New(errs.ErrUnknownThreshold, string(test.Must))
		}
		ok := test.Passed()
		passed = passed && ok
		lines = append(lines, renderKPI(test, ok))
	}

	if !passed {
		m.success = false
	}
	m.lines = append(m.lines, lines...)
	m.refreshOngoing()

	return passed, err
}

// renderKPI formats a single KPI outcome as one report line.
func renderKPI(test domain.KPITest, passed bool) string {
	outcome := "failure"
	if passed {
		outcome = "success"
	}
	return fmt.Sprintf("\tKPI %s: %.2f (must be %s %.2f) - %s",
		test.Name, test.Value, test.Must, test.Threshold, outcome)
}

func validOp(op domain.ThresholdOp) bool {
	switch op {
	case domain.SuperiorThan, domain.InferiorThan, domain.EqualTo:
		return true
	default:
		return false
	}
}
