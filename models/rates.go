package models

// BpsScale is the fixed-point scale for frequency multipliers:
// a multiplier of 1.00 is 10000 basis points.
const BpsScale int64 = 10000

// SqftTier is a discrete square-footage bracket with its bi-weekly base price.
type SqftTier struct {
	Key            string `json:"key"`
	BasePriceCents int64  `json:"basePriceCents"`
}

// FrequencyPlan scales the combined subtotal. The multiplier is held in basis
// points so pricing stays in integer arithmetic end to end.
type FrequencyPlan struct {
	Key           string `json:"key"`
	MultiplierBps int64  `json:"multiplierBps"`
}

// ServiceType is a single-choice additive charge (standard, deep, move in/out).
type ServiceType struct {
	Key      string `json:"key"`
	AddCents int64  `json:"addCents"`
}

// AddOn is an optional extra with a flat additive charge.
type AddOn struct {
	Key      string `json:"key"`
	AddCents int64  `json:"addCents"`
}

// PartialOption is a room excluded from scope, with the discount it earns.
// Only priced when partial-cleaning mode is enabled on the request.
type PartialOption struct {
	Key           string `json:"key"`
	SubtractCents int64  `json:"subtractCents"`
}

// RateCatalog is the immutable pricing reference data. It is built once by
// config.LoadRateCatalog at startup and never mutated afterwards, so
// unsynchronized concurrent reads are safe.
type RateCatalog struct {
	SqftTiers       []SqftTier      `json:"sqftTiers"`
	FrequencyPlans  []FrequencyPlan `json:"frequencyPlans"`
	ServiceTypes    []ServiceType   `json:"serviceTypes"`
	PerRoomAddCents int64           `json:"perRoomAddCents"`
	AddOns          []AddOn         `json:"addOns"`
	PartialOptions  []PartialOption `json:"partialOptions"`
}

// SqftTier looks up a square-footage tier by key.
func (rc *RateCatalog) SqftTier(key string) (SqftTier, bool) {
	for _, t := range rc.SqftTiers {
		if t.Key == key {
			return t, true
		}
	}
	return SqftTier{}, false
}

// FrequencyPlan looks up a frequency plan by key.
func (rc *RateCatalog) FrequencyPlan(key string) (FrequencyPlan, bool) {
	for _, p := range rc.FrequencyPlans {
		if p.Key == key {
			return p, true
		}
	}
	return FrequencyPlan{}, false
}

// ServiceType looks up a service type by key.
func (rc *RateCatalog) ServiceType(key string) (ServiceType, bool) {
	for _, s := range rc.ServiceTypes {
		if s.Key == key {
			return s, true
		}
	}
	return ServiceType{}, false
}

// AddOn looks up an extra by key.
func (rc *RateCatalog) AddOn(key string) (AddOn, bool) {
	for _, a := range rc.AddOns {
		if a.Key == key {
			return a, true
		}
	}
	return AddOn{}, false
}

// PartialOption looks up a partial-cleaning discount by key.
func (rc *RateCatalog) PartialOption(key string) (PartialOption, bool) {
	for _, p := range rc.PartialOptions {
		if p.Key == key {
			return p, true
		}
	}
	return PartialOption{}, false
}
