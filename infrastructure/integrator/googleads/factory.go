package googleads

import (
	"strings"
	"time"

	adsdomain "github.com/vfg2006/ads-metrics-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/usecases/aggregating"
)

const (
	textSeparator = " | "
	urlSeparator  = ", "
)

func countersOf(row adsdomain.Row) domain.Counters {
	return domain.Counters{
		Impressions:      int64(row.Metrics.Impressions),
		Clicks:           int64(row.Metrics.Clicks),
		CostMicros:       int64(row.Metrics.CostMicros),
		Conversions:      row.Metrics.Conversions,
		ConversionsValue: row.Metrics.ConversionsValue,
	}
}

func CampaignFolder(fetchedAt time.Time) aggregating.Folder[adsdomain.Row, *domain.Campaign] {
	return aggregating.Folder[adsdomain.Row, *domain.Campaign]{
		Key:      func(row adsdomain.Row) string { return row.Campaign.ID.String() },
		Counters: countersOf,
		Seed: func(row adsdomain.Row) *domain.Campaign {
			c := row.Campaign
			return &domain.Campaign{
				ID:          c.ID.String(),
				Name:        c.Name,
				Status:      c.Status,
				ChannelType: c.AdvertisingChannelType,
				StartDate:   c.StartDate,
				EndDate:     c.EndDate,
				LastUpdated: fetchedAt,
			}
		},
	}
}

func AdGroupFolder(fetchedAt time.Time) aggregating.Folder[adsdomain.Row, *domain.AdGroup] {
	return aggregating.Folder[adsdomain.Row, *domain.AdGroup]{
		Key:      func(row adsdomain.Row) string { return row.AdGroup.ID.String() },
		Counters: countersOf,
		Seed: func(row adsdomain.Row) *domain.AdGroup {
			ag := row.AdGroup
			return &domain.AdGroup{
				ID:          ag.ID.String(),
				Name:        ag.Name,
				Status:      ag.Status,
				CampaignID:  adsdomain.ResourceID(ag.Campaign),
				LastUpdated: fetchedAt,
			}
		},
	}
}

func KeywordFolder(fetchedAt time.Time) aggregating.Folder[adsdomain.Row, *domain.Keyword] {
	return aggregating.Folder[adsdomain.Row, *domain.Keyword]{
		Key:      func(row adsdomain.Row) string { return row.AdGroupCriterion.CriterionID.String() },
		Counters: countersOf,
		Seed: func(row adsdomain.Row) *domain.Keyword {
			criterion := row.AdGroupCriterion
			keyword := &domain.Keyword{
				ID:          criterion.CriterionID.String(),
				Status:      criterion.Status,
				AdGroupID:   adsdomain.ResourceID(criterion.AdGroup),
				LastUpdated: fetchedAt,
			}
			if criterion.Keyword != nil {
				keyword.Text = criterion.Keyword.Text
				keyword.MatchType = criterion.Keyword.MatchType
			}
			if criterion.QualityInfo != nil {
				score := criterion.QualityInfo.QualityScore
				keyword.QualityScore = &score
			}
			return keyword
		},
	}
}

func AdFolder(fetchedAt time.Time) aggregating.Folder[adsdomain.Row, *domain.Ad] {
	return aggregating.Folder[adsdomain.Row, *domain.Ad]{
		Key:      func(row adsdomain.Row) string { return row.AdGroupAd.Ad.ID.String() },
		Counters: countersOf,
		Seed: func(row adsdomain.Row) *domain.Ad {
			groupAd := row.AdGroupAd
			ad := &domain.Ad{
				ID:          groupAd.Ad.ID.String(),
				Type:        groupAd.Ad.Type,
				Status:      groupAd.Status,
				FinalURLs:   strings.Join(groupAd.Ad.FinalURLs, urlSeparator),
				AdGroupID:   adsdomain.ResourceID(groupAd.AdGroup),
				LastUpdated: fetchedAt,
			}
			if rsa := groupAd.Ad.ResponsiveSearchAd; rsa != nil {
				ad.Headlines = adsdomain.JoinTexts(rsa.Headlines, textSeparator)
				ad.Descriptions = adsdomain.JoinTexts(rsa.Descriptions, textSeparator)
				ad.Path1 = rsa.Path1
				ad.Path2 = rsa.Path2
			}
			return ad
		},
	}
}

// rowsWith mantém apenas as linhas que trazem o recurso consultado
func rowsWith(rows []adsdomain.Row, has func(adsdomain.Row) bool) []adsdomain.Row {
	out := make([]adsdomain.Row, 0, len(rows))
	for _, row := range rows {
		if has(row) {
			out = append(out, row)
		}
	}
	return out
}
