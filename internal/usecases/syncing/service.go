package syncing

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vfg2006/ads-metrics-sync/infrastructure/destination"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/usecases/linking"
	"github.com/vfg2006/ads-metrics-sync/pkg/log"
	"github.com/vfg2006/ads-metrics-sync/pkg/utils"
)

// WriterFactory cria o escritor de uma execução. Cada execução recebe o seu
// próprio limitador de requisições.
type WriterFactory func() RecordWriter

// Service conduz uma execução: Pulling, limpeza, busca, vinculação, escrita e
// Success ou Error. Execuções concorrentes sobre o mesmo destino não são protegidas.
type Service struct {
	fetcher    AdsFetcher
	newWriter  WriterFactory
	control    ControlPanel
	customerID string
	now        func() time.Time
}

func NewService(fetcher AdsFetcher, newWriter WriterFactory, control ControlPanel, customerID string) *Service {
	return &Service{
		fetcher:    fetcher,
		newWriter:  newWriter,
		control:    control,
		customerID: customerID,
		now:        time.Now,
	}
}

func (s *Service) PullWithDateRange(ctx context.Context, startDate, endDate, recordID string) (*domain.SyncResult, error) {
	ctx = s.startRun(ctx)

	dateRange, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, s.fail(ctx, recordID, err)
	}

	s.updateStatus(ctx, recordID, domain.SyncStatusPulling, fmt.Sprintf("Pulling %s to %s...", dateRange.StartString(), dateRange.EndString()), 0)

	return s.run(ctx, recordID, dateRange)
}

func (s *Service) PullAllData(ctx context.Context, recordID string) (*domain.SyncResult, error) {
	ctx = s.startRun(ctx)

	s.updateStatus(ctx, recordID, domain.SyncStatusPulling, "Starting data pull...", 0)

	dateRange, err := s.control.ReadDateRange(ctx, recordID)
	if err != nil {
		return nil, s.fail(ctx, recordID, err)
	}

	return s.run(ctx, recordID, dateRange)
}

func (s *Service) run(ctx context.Context, recordID string, dateRange domain.DateRange) (*domain.SyncResult, error) {
	logger := log.ForContext(ctx)
	logger.WithField("sync_date_range", dateRange.String()).Info("Iniciando sincronização")

	if s.customerID == "" {
		return nil, s.fail(ctx, recordID, domain.NewValidationError("customer_id", "GOOGLE_ADS_CUSTOMER_ID not set in environment"))
	}

	writer := s.newWriter()

	s.clearTables(ctx, writer)

	fetched, err := s.fetchAll(ctx, dateRange)
	if err != nil {
		return nil, s.fail(ctx, recordID, err)
	}

	linked := linking.Link(fetched.Campaigns, fetched.AdGroups, fetched.Keywords, fetched.Ads)

	breakdown, err := s.writeAll(ctx, writer, linked)
	if err != nil {
		return nil, s.fail(ctx, recordID, err)
	}

	total := breakdown.Total()
	s.updateStatus(ctx, recordID, domain.SyncStatusSuccess, fmt.Sprintf("Successfully pulled %d records", total), total)

	logger.WithFields(log.Fields{
		"records":        total,
		"sync_campaigns": breakdown.Campaigns,
		"sync_ad_groups": breakdown.AdGroups,
		"sync_keywords":  breakdown.Keywords,
		"sync_ads":       breakdown.Ads,
	}).Info("Sincronização concluída")

	return &domain.SyncResult{
		Success:      true,
		RunID:        log.GetRunID(ctx),
		TotalRecords: total,
		Breakdown:    breakdown,
		StartDate:    dateRange.StartString(),
		EndDate:      dateRange.EndString(),
	}, nil
}

// clearTables tenta limpar cada tabela de forma independente; falhas são apenas registradas
func (s *Service) clearTables(ctx context.Context, writer RecordWriter) {
	for _, kind := range domain.EntityKinds {
		table := kind.Table()
		if _, err := writer.ClearAll(ctx, table); err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"table": table,
				"error": err.Error(),
			}).Error("Erro ao limpar tabela, seguindo com a sincronização")
		}
	}
}

// fetchAll busca os quatro tipos em paralelo e devolve a primeira falha
func (s *Service) fetchAll(ctx context.Context, dateRange domain.DateRange) (linking.Linked, error) {
	var (
		out linking.Linked
		g   errgroup.Group
	)

	g.Go(func() error {
		var err error
		out.Campaigns, err = s.fetcher.FetchCampaigns(ctx, dateRange)
		return err
	})
	g.Go(func() error {
		var err error
		out.AdGroups, err = s.fetcher.FetchAdGroups(ctx, dateRange)
		return err
	})
	g.Go(func() error {
		var err error
		out.Keywords, err = s.fetcher.FetchKeywords(ctx, dateRange)
		return err
	})
	g.Go(func() error {
		var err error
		out.Ads, err = s.fetcher.FetchAds(ctx, dateRange)
		return err
	})

	if err := g.Wait(); err != nil {
		return linking.Linked{}, err
	}

	return out, nil
}

// writeAll grava os quatro tipos em paralelo. A falha de um tipo não interrompe os
// demais e nada do que já foi gravado é desfeito.
func (s *Service) writeAll(ctx context.Context, writer RecordWriter, linked linking.Linked) (domain.Breakdown, error) {
	var (
		breakdown domain.Breakdown
		g         errgroup.Group
	)

	g.Go(func() error {
		created, err := writer.CreateMany(ctx, domain.CampaignsTable, destination.Map(linked.Campaigns, destination.CampaignFields))
		breakdown.Campaigns = len(created)
		return err
	})
	g.Go(func() error {
		created, err := writer.CreateMany(ctx, domain.AdGroupsTable, destination.Map(linked.AdGroups, destination.AdGroupFields))
		breakdown.AdGroups = len(created)
		return err
	})
	g.Go(func() error {
		created, err := writer.CreateMany(ctx, domain.KeywordsTable, destination.Map(linked.Keywords, destination.KeywordFields))
		breakdown.Keywords = len(created)
		return err
	})
	g.Go(func() error {
		created, err := writer.CreateMany(ctx, domain.AdsTable, destination.Map(linked.Ads, destination.AdFields))
		breakdown.Ads = len(created)
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Breakdown{}, err
	}

	return breakdown, nil
}

// startRun desvincula a execução do cancelamento de quem a chamou: uma vez iniciada,
// ela segue até o fim e sempre grava o status final.
func (s *Service) startRun(ctx context.Context) context.Context {
	ctx = context.WithoutCancel(ctx)

	runID, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Não foi possível gerar o id da execução")
		return ctx
	}

	return log.WithRunID(ctx, runID)
}

// fail grava o status Error e devolve o mesmo erro recebido
func (s *Service) fail(ctx context.Context, recordID string, err error) error {
	log.ForContext(ctx).WithField("error", err.Error()).Error("Erro durante a sincronização")

	s.updateStatus(ctx, recordID, domain.SyncStatusError, "Error: "+err.Error(), 0)

	return err
}

// updateStatus nunca propaga falhas da superfície de status
func (s *Service) updateStatus(ctx context.Context, recordID string, status domain.SyncStatus, message string, records int) {
	err := s.control.UpdateStatus(ctx, recordID, domain.StatusUpdate{
		Status:         status,
		Message:        message,
		RecordsUpdated: records,
		At:             s.now(),
	})
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"sync_status": status,
			"error":       err.Error(),
		}).Warn("Falha ao atualizar o status da execução")
	}
}
