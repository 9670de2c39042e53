package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/ads-metrics-sync/pkg/apiErrors"
	"github.com/vfg2006/ads-metrics-sync/pkg/log"
)

const (
	CronJobTypeMasterDatePull = "master-date-pull"
)

// CronJob é uma tarefa agendada que também pode ser disparada manualmente
type CronJob interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() map[string]any
}

// CronJobServices contém as tarefas disponíveis por tipo
type CronJobServices struct {
	MasterDatePullSync CronJob
}

func (s CronJobServices) byType(cronType string) (CronJob, bool) {
	switch cronType {
	case CronJobTypeMasterDatePull:
		return s.MasterDatePullSync, s.MasterDatePullSync != nil
	default:
		return nil, false
	}
}

// RunCronJob dispara manualmente uma tarefa agendada
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: "+CronJobTypeMasterDatePull, nil)
			return
		}

		if !job.TriggerManualSync(r.Context()) {
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Sincronização já em andamento", nil)
			return
		}

		log.ForContext(r.Context()).WithField("kind", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das tarefas agendadas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.MasterDatePullSync != nil {
			status[CronJobTypeMasterDatePull] = services.MasterDatePullSync.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
