package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRateCatalog(t *testing.T) {
	catalog := DefaultRateCatalog()

	tier, ok := catalog.SqftTier("1-999")
	require.True(t, ok)
	assert.Equal(t, int64(9265), tier.BasePriceCents)

	plan, ok := catalog.FrequencyPlan("biweekly")
	require.True(t, ok)
	assert.Equal(t, int64(10000), plan.MultiplierBps, "bi-weekly is the canonical base rate")

	weekly, ok := catalog.FrequencyPlan("weekly")
	require.True(t, ok)
	assert.Equal(t, int64(8500), weekly.MultiplierBps)

	assert.Equal(t, int64(930), catalog.PerRoomAddCents)

	_, ok = catalog.AddOn("inside_oven")
	assert.True(t, ok)
	_, ok = catalog.PartialOption("pc_basement")
	assert.True(t, ok)
}

func TestLoadRateCatalogOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rates.yaml")
	content := `
sqftTiers:
  - key: "1-999"
    basePriceCents: 10000
frequencyPlans:
  - key: weekly
    multiplier: 0.85
  - key: biweekly
    multiplier: 1.0
serviceTypes:
  - key: standard
    cents: 0
perRoomAddCents: 1000
addOns:
  - key: inside_oven
    cents: 3000
partialOptions:
  - key: pc_kitchen
    cents: 900
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	prev := AppConfig.RatesFile
	AppConfig.RatesFile = path
	defer func() { AppConfig.RatesFile = prev }()

	catalog := LoadRateCatalog()

	tier, ok := catalog.SqftTier("1-999")
	require.True(t, ok)
	assert.Equal(t, int64(10000), tier.BasePriceCents)

	// Float multipliers from the file become integer basis points.
	weekly, ok := catalog.FrequencyPlan("weekly")
	require.True(t, ok)
	assert.Equal(t, int64(8500), weekly.MultiplierBps)

	assert.Equal(t, int64(1000), catalog.PerRoomAddCents)

	addOn, ok := catalog.AddOn("inside_oven")
	require.True(t, ok)
	assert.Equal(t, int64(3000), addOn.AddCents)
}

func TestLoadRateCatalogDefaultsWithoutFile(t *testing.T) {
	prev := AppConfig.RatesFile
	AppConfig.RatesFile = ""
	defer func() { AppConfig.RatesFile = prev }()

	assert.Equal(t, DefaultRateCatalog(), LoadRateCatalog())
}
