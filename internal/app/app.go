// Package app monta as dependências de uma execução de sincronização a partir da configuração.
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-metrics-sync/infrastructure/database/postgres"
	"github.com/vfg2006/ads-metrics-sync/infrastructure/destination"
	"github.com/vfg2006/ads-metrics-sync/infrastructure/destination/airtable"
	pgstore "github.com/vfg2006/ads-metrics-sync/infrastructure/destination/postgres"
	"github.com/vfg2006/ads-metrics-sync/infrastructure/integrator/googleads"
	"github.com/vfg2006/ads-metrics-sync/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/usecases/syncing"
	"github.com/vfg2006/ads-metrics-sync/pkg/ratelimit"
)

type App struct {
	Puller *syncing.Service

	conn postgres.Conn
}

// New conecta o destino configurado e o cliente do Google Ads ao orquestrador
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	store, err := a.store(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tokens := adsclient.NewTokenProvider(cfg.GoogleAds, nil)
	adsClient := adsclient.NewClient(cfg.GoogleAds, tokens, nil)
	integrator := googleads.New(adsClient)

	newWriter := func() syncing.RecordWriter {
		return destination.NewBatchWriter(store, ratelimit.NewWindow(cfg.Airtable.RateLimit, ratelimit.DefaultWindow))
	}

	a.Puller = syncing.NewService(integrator, newWriter, destination.NewControlPanel(store), cfg.GoogleAds.CustomerID)

	return a, nil
}

func (a *App) store(ctx context.Context, cfg *config.Config) (destination.Store, error) {
	switch cfg.Destination.Driver {
	case config.DestinationPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		a.conn = conn

		store := pgstore.NewStore(conn)
		if err := store.EnsureSchema(ctx); err != nil {
			conn.Close()
			return nil, fmt.Errorf("erro ao criar tabela de destino: %w", err)
		}

		logrus.Info("Destino configurado: PostgreSQL")
		return store, nil

	default:
		logrus.WithField("base_id", cfg.Airtable.BaseID).Info("Destino configurado: Airtable")
		return airtable.NewClient(cfg.Airtable, nil), nil
	}
}

// Close libera a conexão com o banco quando o destino é PostgreSQL
func (a *App) Close() {
	if a.conn == nil {
		return
	}

	if err := a.conn.Close(); err != nil {
		logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
	}
}
