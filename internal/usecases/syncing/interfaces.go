package syncing

import (
	"context"

	"github.com/vfg2006/ads-metrics-sync/infrastructure/destination"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Puller é o ponto de entrada de uma execução de sincronização
type Puller interface {
	// PullWithDateRange sincroniza o intervalo informado (YYYY-MM-DD)
	PullWithDateRange(ctx context.Context, startDate, endDate, recordID string) (*domain.SyncResult, error)
	// PullAllData sincroniza o intervalo lido do registro de controle
	PullAllData(ctx context.Context, recordID string) (*domain.SyncResult, error)
}

// AdsFetcher busca e agrega cada tipo de entidade
type AdsFetcher interface {
	FetchCampaigns(ctx context.Context, dateRange domain.DateRange) ([]*domain.Campaign, error)
	FetchAdGroups(ctx context.Context, dateRange domain.DateRange) ([]*domain.AdGroup, error)
	FetchKeywords(ctx context.Context, dateRange domain.DateRange) ([]*domain.Keyword, error)
	FetchAds(ctx context.Context, dateRange domain.DateRange) ([]*domain.Ad, error)
}

// RecordWriter limpa e recria as tabelas de destino
type RecordWriter interface {
	ClearAll(ctx context.Context, table string) (int, error)
	CreateMany(ctx context.Context, table string, records []destination.Fields) ([]destination.Record, error)
}

// ControlPanel é a superfície de status e a origem do intervalo de datas
type ControlPanel interface {
	ReadDateRange(ctx context.Context, recordID string) (domain.DateRange, error)
	UpdateStatus(ctx context.Context, recordID string, update domain.StatusUpdate) error
}
