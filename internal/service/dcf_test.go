package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

func baseDCFInput() domain.DCFInput {
	return domain.DCFInput{
		CurrentRevenue:  100,
		GrowthRates:     [5]float64{0.10, 0.08, 0.06, 0.05, 0.04},
		OperatingMargin: 0.20,
		TaxRate:         0.25,
		CapexPercent:    0.05,
		NWCPercent:      0.02,
		DiscountRate:    0.10,
		TerminalGrowth:  0.02,
	}
}

func TestDCFService_Run_PerpetuityIdentity(t *testing.T) {
	svc := NewDCFService()

	// Zero growth and zero terminal growth: each year FCF is
	// 100*0.2*0.5 - 100*0.05 = 5, and NPV of a flat 5/yr perpetuity
	// discounted at 10% is exactly 50.
	input := domain.DCFInput{
		CurrentRevenue:  100,
		GrowthRates:     [5]float64{0, 0, 0, 0, 0},
		OperatingMargin: 0.20,
		TaxRate:         0.50,
		CapexPercent:    0.05,
		NWCPercent:      0.10,
		DiscountRate:    0.10,
		TerminalGrowth:  0,
	}

	result, err := svc.Run(input)

	require.NoError(t, err)
	assert.InDelta(t, 50.0, result.Base, 1e-9)
	for _, year := range result.Yearly {
		assert.InDelta(t, 5.0, year.FCF, 1e-9)
	}
}

func TestDCFService_Run_ScenarioOrdering(t *testing.T) {
	svc := NewDCFService()

	result, err := svc.Run(baseDCFInput())

	require.NoError(t, err)
	assert.Greater(t, result.Bull, result.Base)
	assert.Less(t, result.Bear, result.Base)
}

func TestDCFService_Run_FiveYearProjection(t *testing.T) {
	svc := NewDCFService()
	input := baseDCFInput()

	result, err := svc.Run(input)

	require.NoError(t, err)
	require.Len(t, result.Yearly, 5)
	for i, year := range result.Yearly {
		assert.Equal(t, i+1, year.Year)
	}
	// Year 1 revenue grows off the current base.
	assert.InDelta(t, 110.0, result.Yearly[0].Revenue, 1e-9)
	assert.InDelta(t, 22.0, result.Yearly[0].EBIT, 1e-9)
	assert.Equal(t, input, result.AssumptionsUsed)
}

func TestDCFService_Run_InvalidRates(t *testing.T) {
	svc := NewDCFService()

	input := baseDCFInput()
	input.TerminalGrowth = input.DiscountRate

	result, err := svc.Run(input)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidDCFRates)
}

func TestDCFService_Run_TerminalAboveDiscountRejected(t *testing.T) {
	svc := NewDCFService()

	input := baseDCFInput()
	input.DiscountRate = 0.03
	input.TerminalGrowth = 0.05

	_, err := svc.Run(input)
	assert.ErrorIs(t, err, domain.ErrInvalidDCFRates)
}
