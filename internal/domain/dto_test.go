package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKPITest_Passed_SuperiorThan(t *testing.T) {
	assert.True(t, KPITest{Value: 96, Must: SuperiorThan, Threshold: 95}.Passed())
	assert.False(t, KPITest{Value: 95, Must: SuperiorThan, Threshold: 95}.Passed())
	assert.False(t, KPITest{Value: 94.48, Must: SuperiorThan, Threshold: 95}.Passed())
}

func TestKPITest_Passed_InferiorThan(t *testing.T) {
	assert.True(t, KPITest{Value: 0.5, Must: InferiorThan, Threshold: 1}.Passed())
	assert.False(t, KPITest{Value: 1, Must: InferiorThan, Threshold: 1}.Passed())
}

func TestKPITest_Passed_EqualTo(t *testing.T) {
	assert.True(t, KPITest{Value: 1000, Must: EqualTo, Threshold: 1000}.Passed())
	assert.False(t, KPITest{Value: 999, Must: EqualTo, Threshold: 1000}.Passed())
}

func TestKPITest_Passed_UnknownOp(t *testing.T) {
	assert.False(t, KPITest{Value: 1, Must: "roughly", Threshold: 1}.Passed())
}
