package adsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	adsdomain "github.com/vfg2006/ads-metrics-sync/infrastructure/integrator/googleads/domain"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type searchRequest struct {
	Query string `json:"query"`
}

// SearchStream executa a consulta na conta configurada e concatena os
// resultados de todos os blocos da resposta.
func (c *GoogleAdsClient) SearchStream(ctx context.Context, query string) ([]adsdomain.Row, error) {
	if c.Cfg.CustomerID == "" {
		return nil, domain.NewValidationError("customer_id", "GOOGLE_ADS_CUSTOMER_ID is not configured")
	}

	accessToken, err := c.Tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(searchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("adsclient: erro ao serializar consulta: %w", err)
	}

	if timeout := c.Cfg.RequestTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	endpoint := fmt.Sprintf("%s/%s/customers/%s/googleAds:searchStream", c.Cfg.BaseURL, c.Cfg.Version, c.Cfg.CustomerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("adsclient: erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("developer-token", c.Cfg.DeveloperToken)
	req.Header.Set("Content-Type", "application/json")
	if c.Cfg.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", c.Cfg.LoginCustomerID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adsclient: erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)

		logger := log.ForContext(ctx).WithField("status_code", resp.StatusCode)
		var apiErr adsdomain.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil {
			logger = logger.WithField("sync_error_class", apiErr.Classification())
		}
		logger.Error("Google Ads recusou a consulta")

		return nil, &domain.UpstreamQueryError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return decodeSearchStream(resp.Body)
}

// decodeSearchStream percorre o array de blocos sem carregar a resposta inteira
func decodeSearchStream(r io.Reader) ([]adsdomain.Row, error) {
	rows := make([]adsdomain.Row, 0)

	iter := jsoniter.Parse(json, r, 32*1024)

	switch iter.WhatIsNext() {
	case jsoniter.ArrayValue:
	case jsoniter.NilValue:
		return rows, nil
	case jsoniter.InvalidValue:
		if iter.Error == nil || iter.Error == io.EOF {
			return rows, nil
		}
		return nil, fmt.Errorf("adsclient: resposta inválida: %w", iter.Error)
	default:
		return nil, fmt.Errorf("adsclient: resposta inesperada, esperado um array de resultados")
	}

	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		var chunk adsdomain.SearchStreamChunk
		it.ReadVal(&chunk)
		if it.Error != nil {
			return false
		}
		rows = append(rows, chunk.Results...)
		return true
	})

	if iter.Error != nil {
		return nil, fmt.Errorf("adsclient: erro ao decodificar resposta: %w", iter.Error)
	}

	return rows, nil
}
