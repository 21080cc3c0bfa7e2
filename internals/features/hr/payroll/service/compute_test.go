// file: internals/features/hr/payroll/service/compute_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestCompute_LeaveDeductionProrated(t *testing.T) {
	res := Compute(ComputeInput{
		Basic:       22000,
		PresentDays: 20,
		TotalDays:   22,
	})
	// per hari = 22000/22 = 1000; absen 2 hari = 2000
	assert.Equal(t, int64(2000), res.LeaveDeduction)
	assert.Equal(t, int64(22000), res.Gross)
	assert.Equal(t, int64(20000), res.Net)
}

func TestCompute_TotalDaysZeroNoDeduction(t *testing.T) {
	res := Compute(ComputeInput{
		Basic:       22000,
		PresentDays: 0,
		TotalDays:   0,
	})
	assert.Equal(t, int64(0), res.LeaveDeduction)
	assert.Equal(t, int64(22000), res.Net)
}

func TestCompute_GrossIncludesCustomAdditions(t *testing.T) {
	res := Compute(ComputeInput{
		Basic:      10000,
		HRA:        2000,
		Allowances: 1500,
		Bonus:      500,
		CustomAdditions: []PayComponent{
			{Label: "Transport", Amount: 300},
			{Label: "Makan", Amount: 200},
		},
		PresentDays: 22,
		TotalDays:   22,
	})
	assert.Equal(t, int64(14500), res.Gross)
	assert.Equal(t, int64(0), res.LeaveDeduction)
	assert.Equal(t, int64(14500), res.Net)
}

func TestCompute_NetSubtractsAllDeductions(t *testing.T) {
	res := Compute(ComputeInput{
		Basic:           20000,
		Tax:             1000,
		PF:              800,
		Insurance:       500,
		OtherDeductions: 200,
		CustomDeductions: []PayComponent{
			{Label: "Kasbon", Amount: 1000},
		},
		PresentDays: 18,
		TotalDays:   20,
	})
	assert.Equal(t, int64(20000), res.Gross)
	assert.Equal(t, int64(2000), res.LeaveDeduction) // 20000/20 * 2
	assert.Equal(t, int64(14500), res.Net)
}

func TestCompute_NegativeNetNotClamped(t *testing.T) {
	res := Compute(ComputeInput{
		Basic:       1000,
		Tax:         5000,
		PresentDays: 10,
		TotalDays:   10,
	})
	assert.Equal(t, int64(-4000), res.Net)
}

func TestCompute_Deterministic(t *testing.T) {
	in := ComputeInput{
		Basic:       17500,
		HRA:         2500,
		Tax:         900,
		PresentDays: 21,
		TotalDays:   23,
	}
	first := Compute(in)
	second := Compute(in)
	assert.Equal(t, first, second)
}

func TestDecodeComponents(t *testing.T) {
	cs, err := DecodeComponents(datatypes.JSON([]byte(`[{"label":"Transport","amount":300}]`)))
	require.NoError(t, err)
	require.Len(t, cs, 1)
	assert.Equal(t, "Transport", cs[0].Label)
	assert.Equal(t, int64(300), cs[0].Amount)
	assert.Equal(t, int64(300), SumComponents(cs))
}

func TestDecodeComponents_EmptyAndNil(t *testing.T) {
	cs, err := DecodeComponents(nil)
	require.NoError(t, err)
	assert.Empty(t, cs)

	cs, err = DecodeComponents(datatypes.JSON([]byte(`[]`)))
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestDecodeComponents_Malformed(t *testing.T) {
	_, err := DecodeComponents(datatypes.JSON([]byte(`{"label":`)))
	require.Error(t, err)
}

func TestPeriodEnd(t *testing.T) {
	assert.Equal(t, "2026-02-28", periodEnd(2, 2026).Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", periodEnd(2, 2024).Format("2006-01-02"))
	assert.Equal(t, "2026-12-31", periodEnd(12, 2026).Format("2006-01-02"))
}
