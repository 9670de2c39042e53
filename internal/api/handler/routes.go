package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/ads-metrics-sync/internal/api/handler/router"
	"github.com/vfg2006/ads-metrics-sync/internal/usecases/syncing"
	"github.com/vfg2006/ads-metrics-sync/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(puller syncing.Puller, sharedSecret string) []router.Route {
	return []router.Route{
		{
			Path:    "/api/pull-data",
			Method:  http.MethodGet,
			Handler: PullData(puller, sharedSecret),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
