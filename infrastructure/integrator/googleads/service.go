package googleads

import (
	"context"
	"time"

	"github.com/vfg2006/ads-metrics-sync/infrastructure/integrator/googleads/adsclient"
	adsdomain "github.com/vfg2006/ads-metrics-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/usecases/aggregating"
	"github.com/vfg2006/ads-metrics-sync/pkg/log"
)

// GoogleAdsIntegrator busca as linhas diárias de cada tipo e devolve uma
// entidade agregada por identificador.
type GoogleAdsIntegrator struct {
	Client adsclient.Client
	now    func() time.Time
}

func New(client adsclient.Client) *GoogleAdsIntegrator {
	return &GoogleAdsIntegrator{
		Client: client,
		now:    time.Now,
	}
}

func (s *GoogleAdsIntegrator) FetchCampaigns(ctx context.Context, dateRange domain.DateRange) ([]*domain.Campaign, error) {
	rows, err := s.search(ctx, domain.EntityKindCampaign, dateRange)
	if err != nil {
		return nil, err
	}

	rows = rowsWith(rows, func(r adsdomain.Row) bool { return r.Campaign != nil })
	campaigns := aggregating.Aggregate(rows, CampaignFolder(s.now()))

	s.logAggregated(ctx, domain.EntityKindCampaign, len(rows), len(campaigns))
	return campaigns, nil
}

func (s *GoogleAdsIntegrator) FetchAdGroups(ctx context.Context, dateRange domain.DateRange) ([]*domain.AdGroup, error) {
	rows, err := s.search(ctx, domain.EntityKindAdGroup, dateRange)
	if err != nil {
		return nil, err
	}

	rows = rowsWith(rows, func(r adsdomain.Row) bool { return r.AdGroup != nil })
	adGroups := aggregating.Aggregate(rows, AdGroupFolder(s.now()))

	s.logAggregated(ctx, domain.EntityKindAdGroup, len(rows), len(adGroups))
	return adGroups, nil
}

func (s *GoogleAdsIntegrator) FetchKeywords(ctx context.Context, dateRange domain.DateRange) ([]*domain.Keyword, error) {
	rows, err := s.search(ctx, domain.EntityKindKeyword, dateRange)
	if err != nil {
		return nil, err
	}

	rows = rowsWith(rows, func(r adsdomain.Row) bool { return r.AdGroupCriterion != nil })
	keywords := aggregating.Aggregate(rows, KeywordFolder(s.now()))

	s.logAggregated(ctx, domain.EntityKindKeyword, len(rows), len(keywords))
	return keywords, nil
}

func (s *GoogleAdsIntegrator) FetchAds(ctx context.Context, dateRange domain.DateRange) ([]*domain.Ad, error) {
	rows, err := s.search(ctx, domain.EntityKindAd, dateRange)
	if err != nil {
		return nil, err
	}

	rows = rowsWith(rows, func(r adsdomain.Row) bool { return r.AdGroupAd != nil })
	ads := aggregating.Aggregate(rows, AdFolder(s.now()))

	s.logAggregated(ctx, domain.EntityKindAd, len(rows), len(ads))
	return ads, nil
}

func (s *GoogleAdsIntegrator) search(ctx context.Context, kind domain.EntityKind, dateRange domain.DateRange) ([]adsdomain.Row, error) {
	rows, err := s.Client.Search(ctx, kind, dateRange)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"kind":  kind,
			"error": err.Error(),
		}).Error("Falha ao consultar o Google Ads")
		return nil, err
	}

	return rows, nil
}

func (s *GoogleAdsIntegrator) logAggregated(ctx context.Context, kind domain.EntityKind, rows, entities int) {
	log.ForContext(ctx).WithFields(log.Fields{
		"kind":          kind,
		"sync_rows":     rows,
		"sync_entities": entities,
	}).Info("Linhas agregadas por entidade")
}
