package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

type testRow struct {
	id       string
	name     string
	counters domain.Counters
}

var campaignFolder = Folder[testRow, *domain.Campaign]{
	Key:      func(r testRow) string { return r.id },
	Counters: func(r testRow) domain.Counters { return r.counters },
	Seed: func(r testRow) *domain.Campaign {
		return &domain.Campaign{ID: r.id, Name: r.name}
	},
}

func TestAggregate_FoldsRowsByID(t *testing.T) {
	rows := []testRow{
		{id: "555", name: "Campanha Verão", counters: domain.Counters{Impressions: 100, Clicks: 10, CostMicros: 5_000_000, Conversions: 2, ConversionsValue: 40}},
		{id: "777", name: "Outra", counters: domain.Counters{Impressions: 10, Clicks: 1, CostMicros: 1_000_000}},
		{id: "555", name: "Nome alterado depois", counters: domain.Counters{Impressions: 50, Clicks: 5, CostMicros: 2_000_000, Conversions: 1, ConversionsValue: 10}},
	}

	result := Aggregate(rows, campaignFolder)

	require.Len(t, result, 2)
	assert.Equal(t, "555", result[0].ID)
	assert.Equal(t, "777", result[1].ID)

	c := result[0]
	assert.Equal(t, "Campanha Verão", c.Name, "atributos da primeira linha não devem ser sobrescritos")
	assert.Equal(t, int64(150), c.Impressions)
	assert.Equal(t, int64(15), c.Clicks)
	assert.Equal(t, 7.0, c.Cost)
	assert.Equal(t, 3.0, c.Conversions)
	assert.InDelta(t, 0.1, c.CTR, 1e-9)
	assert.InDelta(t, 0.2, c.ConversionRate, 1e-9)
	assert.InDelta(t, 0.467, c.CPC, 1e-3)
	assert.InDelta(t, 2.333, c.CPA, 1e-3)
	assert.InDelta(t, 7.143, c.ROAS, 1e-3)
}

func TestAggregate_DropsRowsWithoutCostAndClicks(t *testing.T) {
	rows := []testRow{
		{id: "1", name: "Só impressões", counters: domain.Counters{Impressions: 900, Conversions: 3, ConversionsValue: 20}},
		{id: "2", name: "Com clique", counters: domain.Counters{Impressions: 10, Clicks: 1}},
	}

	result := Aggregate(rows, campaignFolder)

	require.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)
}

func TestAggregate_EmptyInput(t *testing.T) {
	result := Aggregate(nil, campaignFolder)
	assert.Empty(t, result)
}

func TestAggregate_DoubledRowsDoubleCountersAndKeepRatios(t *testing.T) {
	rows := []testRow{
		{id: "A", counters: domain.Counters{Impressions: 200, Clicks: 20, CostMicros: 4_500_000, Conversions: 4, ConversionsValue: 64}},
		{id: "B", counters: domain.Counters{Impressions: 80, Clicks: 0, CostMicros: 250_000, Conversions: 0, ConversionsValue: 0}},
		{id: "A", counters: domain.Counters{Impressions: 40, Clicks: 8, CostMicros: 1_500_000, Conversions: 2, ConversionsValue: 16}},
	}

	once := ByID(Aggregate(rows, campaignFolder), func(c *domain.Campaign) string { return c.ID })
	twice := ByID(Aggregate(append(append([]testRow{}, rows...), rows...), campaignFolder), func(c *domain.Campaign) string { return c.ID })

	require.Len(t, twice, len(once))
	for id, single := range once {
		double := twice[id]
		require.NotNil(t, double)

		assert.Equal(t, 2*single.Impressions, double.Impressions)
		assert.Equal(t, 2*single.Clicks, double.Clicks)
		assert.Equal(t, 2*single.Cost, double.Cost)
		assert.Equal(t, 2*single.Conversions, double.Conversions)
		assert.Equal(t, 2*single.ConversionsValue, double.ConversionsValue)

		assert.Equal(t, single.CTR, double.CTR)
		assert.Equal(t, single.ConversionRate, double.ConversionRate)
		assert.Equal(t, single.CPC, double.CPC)
		assert.Equal(t, single.CPA, double.CPA)
		assert.Equal(t, single.ROAS, double.ROAS)
	}
}
