package config

import (
	"log"
	"math"

	"gbclean/models"

	"github.com/spf13/viper"
)

// Rate table values are the bi-weekly base rates the business quotes from.
// A RATES_FILE yaml replaces the whole table; there is no per-field merging.

type rateFileTier struct {
	Key            string `mapstructure:"key"`
	BasePriceCents int64  `mapstructure:"basePriceCents"`
}

type rateFilePlan struct {
	Key        string  `mapstructure:"key"`
	Multiplier float64 `mapstructure:"multiplier"`
}

type rateFileCharge struct {
	Key   string `mapstructure:"key"`
	Cents int64  `mapstructure:"cents"`
}

type rateFile struct {
	SqftTiers       []rateFileTier   `mapstructure:"sqftTiers"`
	FrequencyPlans  []rateFilePlan   `mapstructure:"frequencyPlans"`
	ServiceTypes    []rateFileCharge `mapstructure:"serviceTypes"`
	PerRoomAddCents int64            `mapstructure:"perRoomAddCents"`
	AddOns          []rateFileCharge `mapstructure:"addOns"`
	PartialOptions  []rateFileCharge `mapstructure:"partialOptions"`
}

// DefaultRateCatalog returns the built-in rate table.
func DefaultRateCatalog() *models.RateCatalog {
	return &models.RateCatalog{
		SqftTiers: []models.SqftTier{
			{Key: "1-999", BasePriceCents: 9265},
			{Key: "1000-1499", BasePriceCents: 10965},
			{Key: "1500-1999", BasePriceCents: 12665},
			{Key: "2000-2499", BasePriceCents: 14365},
			{Key: "2500-2999", BasePriceCents: 16065},
			{Key: "3000-3499", BasePriceCents: 17765},
			{Key: "3500-3999", BasePriceCents: 19465},
			{Key: "4000-4499", BasePriceCents: 21165},
			{Key: "4500-4999", BasePriceCents: 22865},
			{Key: "5000-5499", BasePriceCents: 26265},
		},
		FrequencyPlans: []models.FrequencyPlan{
			{Key: "one_time", MultiplierBps: 11500},
			{Key: "weekly", MultiplierBps: 8500},
			{Key: "biweekly", MultiplierBps: 10000},
			{Key: "every_4_weeks", MultiplierBps: 11500},
		},
		ServiceTypes: []models.ServiceType{
			{Key: "standard", AddCents: 0},
			{Key: "deep", AddCents: 4000},
			{Key: "move", AddCents: 4000},
		},
		PerRoomAddCents: 930,
		AddOns: []models.AddOn{
			{Key: "inside_cabinets", AddCents: 2500},
			{Key: "interior_windows", AddCents: 2500},
			{Key: "blinds", AddCents: 2500},
			{Key: "inside_fridge", AddCents: 2500},
			{Key: "inside_oven", AddCents: 2500},
			{Key: "green_cleaning", AddCents: 2500},
			{Key: "organization", AddCents: 2500},
			{Key: "laundry", AddCents: 2500},
			{Key: "dishes", AddCents: 2500},
		},
		PartialOptions: []models.PartialOption{
			{Key: "pc_bedroom", SubtractCents: 820},
			{Key: "pc_full_bath", SubtractCents: 820},
			{Key: "pc_half_bath", SubtractCents: 500},
			{Key: "pc_kitchen", SubtractCents: 820},
			{Key: "pc_living", SubtractCents: 820},
			{Key: "pc_basement", SubtractCents: 1500},
		},
	}
}

// LoadRateCatalog returns the active rate catalog: the RATES_FILE override when
// configured, otherwise the built-in defaults.
func LoadRateCatalog() *models.RateCatalog {
	path := AppConfig.RatesFile
	if path == "" {
		return DefaultRateCatalog()
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("Failed to read rates file %s: %v", path, err)
	}

	var rf rateFile
	if err := v.Unmarshal(&rf); err != nil {
		log.Fatalf("Failed to parse rates file %s: %v", path, err)
	}

	catalog := &models.RateCatalog{PerRoomAddCents: rf.PerRoomAddCents}
	for _, t := range rf.SqftTiers {
		catalog.SqftTiers = append(catalog.SqftTiers, models.SqftTier{Key: t.Key, BasePriceCents: t.BasePriceCents})
	}
	for _, p := range rf.FrequencyPlans {
		bps := int64(math.Round(p.Multiplier * float64(models.BpsScale)))
		catalog.FrequencyPlans = append(catalog.FrequencyPlans, models.FrequencyPlan{Key: p.Key, MultiplierBps: bps})
	}
	for _, s := range rf.ServiceTypes {
		catalog.ServiceTypes = append(catalog.ServiceTypes, models.ServiceType{Key: s.Key, AddCents: s.Cents})
	}
	for _, a := range rf.AddOns {
		catalog.AddOns = append(catalog.AddOns, models.AddOn{Key: a.Key, AddCents: a.Cents})
	}
	for _, p := range rf.PartialOptions {
		catalog.PartialOptions = append(catalog.PartialOptions, models.PartialOption{Key: p.Key, SubtractCents: p.Cents})
	}

	log.Printf("Loaded rate catalog override from %s", path)
	return catalog
}
