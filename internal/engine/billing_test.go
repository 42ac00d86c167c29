package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel-pms-backend/internal/model"
)

func TestComputeBilling(t *testing.T) {
	testCases := []struct {
		name              string
		totalAmount       float64
		depositPaid       float64
		additionalCharges float64
		discount          float64
		wantSubtotal      float64
		wantBalance       float64
	}{
		{
			name:        "two nights at 80 with extras",
			totalAmount: 160, depositPaid: 50,
			additionalCharges: 20, discount: 10,
			wantSubtotal: 170, wantBalance: 120,
		},
		{
			name:        "overpaid deposit yields refund",
			totalAmount: 160, depositPaid: 200,
			additionalCharges: 20, discount: 10,
			wantSubtotal: 170, wantBalance: -30,
		},
		{
			name:        "settled exactly",
			totalAmount: 100, depositPaid: 100,
			wantSubtotal: 100, wantBalance: 0,
		},
		{
			name:        "discount exceeding charges is not clamped",
			totalAmount: 50, depositPaid: 0,
			discount:     80,
			wantSubtotal: -30, wantBalance: -30,
		},
		{
			name:         "all zero",
			wantSubtotal: 0, wantBalance: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := model.Reservation{TotalAmount: tc.totalAmount, DepositPaid: tc.depositPaid}

			got := ComputeBilling(r, tc.additionalCharges, tc.discount)
			assert.Equal(t, tc.wantSubtotal, got.Subtotal)
			assert.Equal(t, tc.wantBalance, got.OutstandingBalance)

			// Pure function: identical inputs, identical output.
			assert.Equal(t, got, ComputeBilling(r, tc.additionalCharges, tc.discount))

			// Balance sign law holds exactly.
			assert.Equal(t,
				tc.totalAmount+tc.additionalCharges-tc.discount-tc.depositPaid,
				got.OutstandingBalance)
		})
	}
}

func TestDeriveTotalAmount(t *testing.T) {
	assert.Equal(t, 160.0, DeriveTotalAmount(day("2024-01-10"), day("2024-01-12"), 80))
	assert.Equal(t, 80.0, DeriveTotalAmount(day("2024-01-10"), day("2024-01-11"), 80))
	assert.Equal(t, 0.0, DeriveTotalAmount(day("2024-01-12"), day("2024-01-10"), 80))

	// Mid-day departures bill a full night.
	assert.Equal(t, 240.0, DeriveTotalAmount(day("2024-01-10"), day("2024-01-12").Add(6*time.Hour), 80))
}
