package monitor

import (
	"testing"

	"github.com/osmike/batchkit/internal/domain"
	errs "github.com/osmike/batchkit/internal/error"

	"github.com/stretchr/testify/assert"
)

func TestUpdateWithKPIs_AllPass(t *testing.T) {
	m := newTestMonitor(t, domain.Monitor{})

	passed, err := m.UpdateWithKPIs("thresholds",
		domain.KPITest{Name: "rows.kept", Value: 99.5, Must: domain.SuperiorThan, Threshold: 95},
		domain.KPITest{Name: "duplicates.ratio", Value: 0.5, Must: domain.InferiorThan, Threshold: 1},
	)

	assert.NoError(t, err)
	assert.True(t, passed)
	assert.True(t, m.Success())
	assert.Contains(t, m.Report(), "\tKPI rows.kept: 99.50 (must be superior than 95.00) - success")
	assert.Contains(t, m.Report(), "\tKPI duplicates.ratio: 0.50 (must be inferior than 1.00) - success")
}

func TestUpdateWithKPIs_FailureLatches(t *testing.T) {
	m := newTestMonitor(t, domain.Monitor{})

	passed, err := m.UpdateWithKPIs("thresholds",
		domain.KPITest{Name: "rows.kept", Value: 94.48, Must: domain.SuperiorThan, Threshold: 95},
	)

	assert.NoError(t, err)
	assert.False(t, passed)
	assert.False(t, m.Success())
	assert.Contains(t, m.Report(), "\tKPI rows.kept: 94.48 (must be superior than 95.00) - failure")
}

func TestUpdateWithKPIs_EqualTo(t *testing.T) {
	m := newTestMonitor(t, domain.Monitor{})

	passed, err := m.UpdateWithKPIs("reconciliation",
		domain.KPITest{Name: "rows.out", Value: 1000, Must: domain.EqualTo, Threshold: 1000},
	)

	assert.NoError(t, err)
	assert.True(t, passed)
}

func TestUpdateWithKPIs_UnknownOperator(t *testing.T) {
	m := newTestMonitor(t, domain.Monitor{})

	passed, err := m.UpdateWithKPIs("thresholds",
		domain.KPITest{Name: "rows.kept", Value: 99, Must: "at least", Threshold: 95},
	)

	assert.ErrorIs(t, err, errs.ErrUnknownThreshold)
	assert.False(t, passed)
	assert.False(t, m.Success())
}

func TestUpdateWithKPIs_NoTests(t *testing.T) {
	m := newTestMonitor(t, domain.Monitor{})

	passed, err := m.UpdateWithKPIs("nothing to check")
	assert.NoError(t, err)
	assert.True(t, passed)
	assert.Contains(t, m.Report(), "] nothing to check")
}
