package adsclient

import (
	"fmt"

	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

const campaignQuery = `
SELECT
  campaign.id,
  campaign.name,
  campaign.status,
  campaign.advertising_channel_type,
  campaign.start_date,
  campaign.end_date,
  segments.date,
  metrics.impressions,
  metrics.clicks,
  metrics.cost_micros,
  metrics.conversions,
  metrics.conversions_value
FROM campaign
WHERE segments.date BETWEEN '%s' AND '%s'`

const adGroupQuery = `
SELECT
  ad_group.id,
  ad_group.name,
  ad_group.status,
  ad_group.campaign,
  segments.date,
  metrics.impressions,
  metrics.clicks,
  metrics.cost_micros,
  metrics.conversions,
  metrics.conversions_value
FROM ad_group
WHERE segments.date BETWEEN '%s' AND '%s'`

const keywordQuery = `
SELECT
  ad_group_criterion.criterion_id,
  ad_group_criterion.keyword.text,
  ad_group_criterion.keyword.match_type,
  ad_group_criterion.status,
  ad_group_criterion.ad_group,
  ad_group_criterion.quality_info.quality_score,
  segments.date,
  metrics.impressions,
  metrics.clicks,
  metrics.cost_micros,
  metrics.conversions,
  metrics.conversions_value
FROM keyword_view
WHERE segments.date BETWEEN '%s' AND '%s'`

const adQuery = `
SELECT
  ad_group_ad.ad.id,
  ad_group_ad.ad.type,
  ad_group_ad.status,
  ad_group_ad.ad.final_urls,
  ad_group_ad.ad.responsive_search_ad.headlines,
  ad_group_ad.ad.responsive_search_ad.descriptions,
  ad_group_ad.ad.responsive_search_ad.path1,
  ad_group_ad.ad.responsive_search_ad.path2,
  ad_group_ad.ad_group,
  segments.date,
  metrics.impressions,
  metrics.clicks,
  metrics.cost_micros,
  metrics.conversions,
  metrics.conversions_value
FROM ad_group_ad
WHERE segments.date BETWEEN '%s' AND '%s'`

// BuildQuery monta a consulta GAQL do tipo para o intervalo inclusivo
func BuildQuery(kind domain.EntityKind, dateRange domain.DateRange) (string, error) {
	var template string

	switch kind {
	case domain.EntityKindCampaign:
		template = campaignQuery
	case domain.EntityKindAdGroup:
		template = adGroupQuery
	case domain.EntityKindKeyword:
		template = keywordQuery
	case domain.EntityKindAd:
		template = adQuery
	default:
		return "", fmt.Errorf("adsclient: tipo de entidade desconhecido %q", kind)
	}

	return fmt.Sprintf(template, dateRange.StartString(), dateRange.EndString()), nil
}
