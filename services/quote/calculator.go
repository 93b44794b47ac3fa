// Package quote computes booking prices from a rate catalog. All arithmetic
// is in integer cents; the frequency multiplier is applied in basis points
// with a single half-up rounding at the end.
package quote

import (
	"gbclean/models"
)

// Selection is the priced subset of a booking request.
type Selection struct {
	Sqft           string
	Frequency      string
	ServiceType    string
	Bedrooms       int
	Bathrooms      float64
	Extras         []string
	PartialEnabled bool
	PartialOptions []string
}

// ComputeTotalCents prices a selection against the catalog. It is pure and
// deterministic: the server calls it again at intake rather than trusting a
// client-computed figure.
//
// Order: tier base + service type + per-room adds + extras − partial
// discounts, then the frequency multiplier over the whole subtotal, rounded
// half-up, clamped at zero.
func ComputeTotalCents(sel Selection, catalog *models.RateCatalog) (int64, error) {
	tier, ok := catalog.SqftTier(sel.Sqft)
	if !ok {
		return 0, &InvalidOptionError{Field: "sqft", Key: sel.Sqft}
	}

	plan, ok := catalog.FrequencyPlan(sel.Frequency)
	if !ok {
		return 0, &InvalidOptionError{Field: "frequency", Key: sel.Frequency}
	}

	// Empty service type means a standard clean.
	serviceKey := sel.ServiceType
	if serviceKey == "" {
		serviceKey = "standard"
	}
	service, ok := catalog.ServiceType(serviceKey)
	if !ok {
		return 0, &InvalidOptionError{Field: "serviceType", Key: sel.ServiceType}
	}

	if sel.Bedrooms < 0 {
		return 0, &InvalidValueError{Field: "bedrooms", Reason: "must not be negative"}
	}
	bathHalves, err := bathroomHalfUnits(sel.Bathrooms)
	if err != nil {
		return 0, err
	}

	roomAdd := int64(sel.Bedrooms)*catalog.PerRoomAddCents + halfUp(bathHalves*catalog.PerRoomAddCents, 2)

	var addOnSum int64
	for _, key := range sel.Extras {
		addOn, ok := catalog.AddOn(key)
		if !ok {
			return 0, &InvalidOptionError{Field: "extras", Key: key}
		}
		addOnSum += addOn.AddCents
	}

	var partialSubtract int64
	if sel.PartialEnabled {
		for _, key := range sel.PartialOptions {
			opt, ok := catalog.PartialOption(key)
			if !ok {
				return 0, &InvalidOptionError{Field: "partialCleaning", Key: key}
			}
			partialSubtract += opt.SubtractCents
		}
	}

	subtotal := tier.BasePriceCents + service.AddCents + roomAdd + addOnSum - partialSubtract
	adjusted := halfUp(subtotal*plan.MultiplierBps, models.BpsScale)
	if adjusted < 0 {
		return 0, nil
	}
	return adjusted, nil
}

// bathroomHalfUnits converts a bathroom count to half-bathroom units,
// rejecting negatives and fractions other than .0/.5.
func bathroomHalfUnits(bathrooms float64) (int64, error) {
	if bathrooms < 0 {
		return 0, &InvalidValueError{Field: "bathrooms", Reason: "must not be negative"}
	}
	doubled := bathrooms * 2
	halves := int64(doubled)
	if float64(halves) != doubled {
		return 0, &InvalidValueError{Field: "bathrooms", Reason: "must be a multiple of 0.5"}
	}
	return halves, nil
}

// halfUp divides n by scale rounding half away from zero.
func halfUp(n, scale int64) int64 {
	if n >= 0 {
		return (n + scale/2) / scale
	}
	return -((-n + scale/2) / scale)
}
