package utils

import "fmt"

// Delivery tiers and their flat shipping charges
const (
	DeliveryTierMetropolitan = "metropolitan"
	DeliveryTierInterior     = "interior"
	DeliveryTierRemote       = "remote"
)

// StandardShippingCharge is the metropolitan flat rate used by default
const StandardShippingCharge = 15.00

var deliveryCharges = map[string]float64{
	DeliveryTierMetropolitan: StandardShippingCharge,
	DeliveryTierInterior:     25.00,
	DeliveryTierRemote:       35.00,
}

var deliveryWindows = map[string]string{
	DeliveryTierMetropolitan: "48h úteis",
	DeliveryTierInterior:     "3-5 dias úteis",
	DeliveryTierRemote:       "5-10 dias úteis",
}

// GetDeliveryCharge returns the flat shipping charge for a delivery tier.
// An empty tier falls back to the metropolitan rate.
func GetDeliveryCharge(tier string) (float64, error) {
	if tier == "" {
		return StandardShippingCharge, nil
	}
	charge, ok := deliveryCharges[tier]
	if !ok {
		return 0, fmt.Errorf("unknown delivery tier: %s", tier)
	}
	return charge, nil
}

// GetDeliveryWindow returns the human readable delivery window for a tier
func GetDeliveryWindow(tier string) string {
	if window, ok := deliveryWindows[tier]; ok {
		return window
	}
	return deliveryWindows[DeliveryTierMetropolitan]
}

// IsValidDeliveryTier reports whether the tier is one of the known tiers
func IsValidDeliveryTier(tier string) bool {
	_, ok := deliveryCharges[tier]
	return ok
}
