package service

import (
	"errors"
	"fmt"

	"github.com/cammarket/storefront/internal/core/domain"
	"github.com/cammarket/storefront/internal/core/port"
)

var ErrUnknownZone = errors.New("unknown delivery zone")

var _ port.DeliveryEstimator = (*DeliveryService)(nil)

// DeliveryService is the standalone zone cost estimator. Its tiers are
// hardcoded display values and deliberately never feed checkout, which
// always charges the flat fee.
type DeliveryService struct{}

func NewDeliveryService() DeliveryService {
	return DeliveryService{}
}

var zoneTiers = map[string]domain.DeliveryEstimate{
	domain.ZoneSameCity:    {Zone: domain.ZoneSameCity, Fee: 1000, MinDays: 1, MaxDays: 2},
	domain.ZoneSameRegion:  {Zone: domain.ZoneSameRegion, Fee: 2500, MinDays: 2, MaxDays: 4},
	domain.ZoneCrossRegion: {Zone: domain.ZoneCrossRegion, Fee: 5000, MinDays: 3, MaxDays: 7},
}

func (DeliveryService) Estimate(zone string) (domain.DeliveryEstimate, error) {
	const op = "DeliveryService.Estimate"

	est, ok := zoneTiers[zone]
	if !ok {
		return domain.DeliveryEstimate{}, fmt.Errorf(
			"%s: %w: %q", op, ErrUnknownZone, zone,
		)
	}
	return est, nil
}
