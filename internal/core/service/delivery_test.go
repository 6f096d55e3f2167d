package service_test

import (
	"testing"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryEstimate(t *testing.T) {
	svc := service.NewDeliveryService()

	tests := []struct {
		zone    string
		fee     int
		minDays int
		maxDays int
	}{
		{domain.ZoneSameCity, 1000, 1, 2},
		{domain.ZoneSameRegion, 2500, 2, 4},
		{domain.ZoneCrossRegion, 5000, 3, 7},
	}

	for _, tc := range tests {
		t.Run(tc.zone, func(t *testing.T) {
			est, err := svc.Estimate(tc.zone)
			require.NoError(t, err)
			assert.Equal(t, tc.fee, est.Fee)
			assert.Equal(t, tc.minDays, est.MinDays)
			assert.Equal(t, tc.maxDays, est.MaxDays)
		})
	}

	t.Run("UnknownZone", func(t *testing.T) {
		_, err := svc.Estimate("orbital")
		require.Error(t, err)
		assert.ErrorIs(t, err, service.ErrUnknownZone)
	})
}
