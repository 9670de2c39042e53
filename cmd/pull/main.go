// Comando pull executa uma única sincronização e imprime o resultado.
//
//	pull -from 2024-06-01 -to 2024-06-30
//	pull -record recXXXXXXXXXXXXXX
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-metrics-sync/internal/app"
	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/pkg/utils"
)

func main() {
	from := flag.String("from", "", "data inicial (YYYY-MM-DD); sem -from/-to as datas vêm do registro de controle")
	to := flag.String("to", "", "data final (YYYY-MM-DD)")
	record := flag.String("record", "", "id do registro de controle na tabela Set Date")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if err := run(*from, *to, *record); err != nil {
		logrus.WithError(err).Error("Sincronização falhou")
		os.Exit(1)
	}
}

func run(from, to, record string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	var result *domain.SyncResult
	if from != "" || to != "" {
		result, err = application.Puller.PullWithDateRange(ctx, from, to, record)
	} else {
		result, err = application.Puller.PullAllData(ctx, record)
	}
	if err != nil {
		return err
	}

	fmt.Println(utils.PrettyJson(result))
	return nil
}
