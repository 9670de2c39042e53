package adsclient

import (
	"context"
	"net/http"

	adsdomain "github.com/vfg2006/ads-metrics-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

type Client interface {
	Search(ctx context.Context, kind domain.EntityKind, dateRange domain.DateRange) ([]adsdomain.Row, error)
	SearchStream(ctx context.Context, query string) ([]adsdomain.Row, error)
}

// AccessTokenSource fornece um access token válido para uma única consulta
type AccessTokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

type GoogleAdsClient struct {
	Cfg        config.GoogleAds
	Tokens     AccessTokenSource
	HTTPClient *http.Client
}

func NewClient(cfg config.GoogleAds, tokens AccessTokenSource, httpClient *http.Client) *GoogleAdsClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &GoogleAdsClient{
		Cfg:        cfg,
		Tokens:     tokens,
		HTTPClient: httpClient,
	}
}

// Search monta a consulta do tipo para o intervalo e executa via searchStream
func (c *GoogleAdsClient) Search(ctx context.Context, kind domain.EntityKind, dateRange domain.DateRange) ([]adsdomain.Row, error) {
	query, err := BuildQuery(kind, dateRange)
	if err != nil {
		return nil, err
	}

	return c.SearchStream(ctx, query)
}
