package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/usecases/syncing"
	"github.com/vfg2006/ads-metrics-sync/pkg/apiErrors"
	"github.com/vfg2006/ads-metrics-sync/pkg/log"
)

// PullData executa uma sincronização síncrona para o intervalo da query string.
// Quando sharedSecret não está vazio, o parâmetro token precisa coincidir.
func PullData(puller syncing.Puller, sharedSecret string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		start := query.Get("start")
		end := query.Get("end")
		recordID := query.Get("recordId")

		if sharedSecret != "" && subtle.ConstantTimeCompare([]byte(query.Get("token")), []byte(sharedSecret)) != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidSharedSecret, "Unauthorized", nil)
			return
		}

		if start == "" || end == "" || start == domain.MissingDateValue || end == domain.MissingDateValue {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Please set both Master Start Date and Master End Date in your Airtable record", nil)
			return
		}

		if !domain.IsValidDateString(start) || !domain.IsValidDateString(end) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid date format. Please ensure dates are in YYYY-MM-DD format", nil)
			return
		}

		logger.WithFields(log.Fields{
			"sync_start":     start,
			"sync_end":       end,
			"sync_record_id": recordID,
		}).Info("Iniciando sincronização pela API")

		result, err := puller.PullWithDateRange(r.Context(), start, end, recordID)
		if err != nil {
			logger.WithField("error", err.Error()).Error("Erro na sincronização pela API")
			apiErrors.WriteFromError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Warn("Erro ao escrever a resposta")
		}
	}
}
