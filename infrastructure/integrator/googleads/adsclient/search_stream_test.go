package adsclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/ads-metrics-sync/infrastructure/integrator/googleads/adsclient/mocks"
	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

const campaignStream = `[
  {"results":[
    {"campaign":{"resourceName":"customers/1234567890/campaigns/111","id":"111","name":"Brand","status":"ENABLED","advertisingChannelType":"SEARCH","startDate":"2024-01-01","endDate":"2037-12-30"},
     "metrics":{"impressions":"100","clicks":"10","costMicros":"5000000","conversions":2,"conversionsValue":50},
     "segments":{"date":"2024-06-01"}}
  ],"fieldMask":"campaign.id","requestId":"abc"},
  {"results":[
    {"campaign":{"id":"111","name":"Brand"},
     "metrics":{"impressions":"200","clicks":"20","costMicros":"10000000","conversions":1.5,"conversionsValue":25.5},
     "segments":{"date":"2024-06-02"}}
  ]}
]`

func newTestClient(t *testing.T, serverURL string, tokens AccessTokenSource) *GoogleAdsClient {
	t.Helper()

	return NewClient(config.GoogleAds{
		BaseURL:               serverURL,
		Version:               "v21",
		DeveloperToken:        "dev-token",
		LoginCustomerID:       "9998887777",
		CustomerID:            "1234567890",
		RequestTimeoutSeconds: 5,
	}, tokens, nil)
}

func TestGoogleAdsClient_Search(t *testing.T) {
	dateRange := domain.DateRange{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Deve enviar a consulta com os cabeçalhos e concatenar os blocos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mocks.NewMockAccessTokenSource(ctrl)
		tokens.EXPECT().AccessToken(gomock.Any()).Return("ya29.token", nil).Times(1)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v21/customers/1234567890/googleAds:searchStream", r.URL.Path)
			assert.Equal(t, "Bearer ya29.token", r.Header.Get("Authorization"))
			assert.Equal(t, "dev-token", r.Header.Get("developer-token"))
			assert.Equal(t, "9998887777", r.Header.Get("login-customer-id"))

			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)
			assert.Contains(t, string(body), "FROM campaign")
			assert.Contains(t, string(body), "BETWEEN '2024-06-01' AND '2024-06-30'")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(campaignStream))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, tokens)

		rows, err := client.Search(context.Background(), domain.EntityKindCampaign, dateRange)
		require.NoError(t, err)
		require.Len(t, rows, 2)

		first := rows[0]
		require.NotNil(t, first.Campaign)
		assert.Equal(t, "111", first.Campaign.ID.String())
		assert.Equal(t, "SEARCH", first.Campaign.AdvertisingChannelType)
		assert.Equal(t, int64(100), int64(first.Metrics.Impressions))
		assert.Equal(t, int64(5000000), int64(first.Metrics.CostMicros))
		assert.Equal(t, "2024-06-01", first.Segments.Date)

		assert.Equal(t, 25.5, rows[1].Metrics.ConversionsValue)
	})

	t.Run("Deve devolver status e corpo sem alteração quando a API recusar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mocks.NewMockAccessTokenSource(ctrl)
		tokens.EXPECT().AccessToken(gomock.Any()).Return("ya29.token", nil)

		errorBody := `{"error":{"code":429,"message":"Too many requests","status":"RESOURCE_EXHAUSTED"}}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(errorBody))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, tokens)

		rows, err := client.Search(context.Background(), domain.EntityKindAd, dateRange)
		assert.Nil(t, rows)

		var upstreamErr *domain.UpstreamQueryError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
		assert.Equal(t, errorBody, upstreamErr.Body)
		assert.Equal(t, "Google Ads API Error (429): "+errorBody, err.Error())
	})

	t.Run("Deve propagar a falha de autenticação sem consultar a API", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mocks.NewMockAccessTokenSource(ctrl)
		tokens.EXPECT().AccessToken(gomock.Any()).Return("", &domain.AuthError{StatusCode: 401, Body: "unauthorized"})

		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client := newTestClient(t, server.URL, tokens)

		_, err := client.Search(context.Background(), domain.EntityKindKeyword, dateRange)
		assert.True(t, domain.IsAuthError(err))
		assert.False(t, called)
	})

	t.Run("Deve falhar com ValidationError quando o customer id não estiver configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := mocks.NewMockAccessTokenSource(ctrl)

		client := NewClient(config.GoogleAds{BaseURL: "http://127.0.0.1:0", Version: "v21"}, tokens, nil)

		_, err := client.Search(context.Background(), domain.EntityKindCampaign, dateRange)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestDecodeSearchStream(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantRows int
		wantErr  bool
	}{
		{name: "Array vazio", body: `[]`, wantRows: 0},
		{name: "Corpo vazio", body: ``, wantRows: 0},
		{name: "Bloco sem resultados", body: `[{"fieldMask":"campaign.id"}]`, wantRows: 0},
		{name: "Dois blocos", body: campaignStream, wantRows: 2},
		{name: "Objeto em vez de array", body: `{"results":[]}`, wantErr: true},
		{name: "Array truncado", body: `[{"results":[{"metrics":{"clicks":"1"}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := decodeSearchStream(strings.NewReader(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
		})
	}
}

func TestBuildQuery(t *testing.T) {
	dateRange := domain.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		kind domain.EntityKind
		from string
	}{
		{kind: domain.EntityKindCampaign, from: "FROM campaign\n"},
		{kind: domain.EntityKindAdGroup, from: "FROM ad_group\n"},
		{kind: domain.EntityKindKeyword, from: "FROM keyword_view\n"},
		{kind: domain.EntityKindAd, from: "FROM ad_group_ad\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			query, err := BuildQuery(tt.kind, dateRange)
			require.NoError(t, err)
			assert.Contains(t, query, tt.from)
			assert.Contains(t, query, "segments.date")
			assert.Contains(t, query, "metrics.cost_micros")
			assert.Contains(t, query, "WHERE segments.date BETWEEN '2024-01-01' AND '2024-01-31'")
		})
	}

	_, err := BuildQuery(domain.EntityKind("video"), dateRange)
	assert.Error(t, err)
}
