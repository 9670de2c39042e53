package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-metrics-sync/internal/api"
	"github.com/vfg2006/ads-metrics-sync/internal/api/handler"
	"github.com/vfg2006/ads-metrics-sync/internal/app"
	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/scheduler"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer application.Close()

	masterDatePullSync := scheduler.NewMasterDatePullSyncService(application.Puller, cfg)
	if err := masterDatePullSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do Google Ads")
	}

	server, err := api.New(cfg, application.Puller, handler.CronJobServices{
		MasterDatePullSync: masterDatePullSync,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
