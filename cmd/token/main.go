// Comando token emite o JWT de operador exigido pelas rotas /v1/cron.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/pkg/middleware"
)

func main() {
	subject := flag.String("subject", "operator", "identificação de quem usará o token")
	ttl := flag.Duration("ttl", 24*time.Hour, "validade do token")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := middleware.IssueToken(cfg.Auth.Secret, *subject, domain.RoleAdmin, *ttl)
	if err != nil {
		logrus.WithError(err).Error("Erro ao assinar o token")
		os.Exit(1)
	}

	fmt.Println(token)
}
