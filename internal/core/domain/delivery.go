package domain

// Delivery zones for the standalone cost estimator. The estimator is a
// display widget with hardcoded tiers; checkout always charges the flat
// DeliveryFee and never consults these.
const (
	ZoneSameCity    = "same-city"
	ZoneSameRegion  = "same-region"
	ZoneCrossRegion = "cross-region"
)

type DeliveryEstimate struct {
	Zone    string
	Fee     int // FCFA
	MinDays int
	MaxDays int
}
