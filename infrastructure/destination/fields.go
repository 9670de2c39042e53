package destination

import (
	"time"

	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

func metricFields(f Fields, m domain.Metrics, lastUpdated time.Time) Fields {
	f["Impressions"] = m.Impressions
	f["Clicks"] = m.Clicks
	f["CTR"] = m.CTR
	f["Cost"] = m.Cost
	f["CPC"] = m.CPC
	f["Conversions"] = m.Conversions
	f["Conversion Rate"] = m.ConversionRate
	f["CPA"] = m.CPA
	f["ROAS"] = m.ROAS
	f["Performance Score"] = m.PerformanceScore
	f["Last Updated"] = lastUpdated.UTC().Format(time.RFC3339)
	return f
}

func CampaignFields(c *domain.Campaign) Fields {
	return metricFields(Fields{
		"Campaign ID":   c.ID,
		"Campaign Name": c.Name,
		"Status":        c.Status,
		"Channel Type":  c.ChannelType,
	}, c.Metrics, c.LastUpdated)
}

func AdGroupFields(ag *domain.AdGroup) Fields {
	return metricFields(Fields{
		"Ad Group ID":   ag.ID,
		"Ad Group Name": ag.Name,
		"Status":        ag.Status,
		"Campaign ID":   ag.CampaignID,
		"Campaign Name": ag.CampaignName,
	}, ag.Metrics, ag.LastUpdated)
}

// KeywordFields omite Quality Score quando a API não o informa, deixando a célula vazia
func KeywordFields(k *domain.Keyword) Fields {
	f := metricFields(Fields{
		"Keyword ID":    k.ID,
		"Keyword Text":  k.Text,
		"Match Type":    k.MatchType,
		"Status":        k.Status,
		"Ad Group ID":   k.AdGroupID,
		"Ad Group Name": k.AdGroupName,
		"Campaign ID":   k.CampaignID,
		"Campaign Name": k.CampaignName,
	}, k.Metrics, k.LastUpdated)

	if k.QualityScore != nil {
		f["Quality Score"] = *k.QualityScore
	}
	return f
}

func AdFields(a *domain.Ad) Fields {
	return metricFields(Fields{
		"Ad ID":         a.ID,
		"Headlines":     a.Headlines,
		"Descriptions":  a.Descriptions,
		"Path1":         a.Path1,
		"Path2":         a.Path2,
		"Final URLs":    a.FinalURLs,
		"Ad Group ID":   a.AdGroupID,
		"Ad Group Name": a.AdGroupName,
		"Campaign ID":   a.CampaignID,
		"Campaign Name": a.CampaignName,
	}, a.Metrics, a.LastUpdated)
}

// Map converte uma coleção de entidades nos registros da sua tabela
func Map[E any](entities []E, toFields func(E) Fields) []Fields {
	out := make([]Fields, 0, len(entities))
	for _, e := range entities {
		out = append(out, toFields(e))
	}
	return out
}
