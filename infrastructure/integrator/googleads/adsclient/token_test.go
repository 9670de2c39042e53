package adsclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
)

func TestTokenProvider_AccessToken(t *testing.T) {
	t.Run("Deve trocar o refresh token por um access token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "refresh-123", r.PostForm.Get("refresh_token"))
			assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
			assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"ya29.token","token_type":"Bearer","expires_in":3599}`))
		}))
		defer server.Close()

		provider := NewTokenProvider(config.GoogleAds{
			TokenURL:     server.URL,
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RefreshToken: "refresh-123",
		}, server.Client())

		token, err := provider.AccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ya29.token", token)
	})

	t.Run("Deve fazer uma troca nova a cada chamada", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"ya29.token","token_type":"Bearer","expires_in":3599}`))
		}))
		defer server.Close()

		provider := NewTokenProvider(config.GoogleAds{
			TokenURL:     server.URL,
			RefreshToken: "refresh-123",
		}, server.Client())

		_, err := provider.AccessToken(context.Background())
		require.NoError(t, err)
		_, err = provider.AccessToken(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, calls)
	})

	t.Run("Deve retornar AuthError com status e corpo quando a troca falhar", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Token has been expired or revoked."}`))
		}))
		defer server.Close()

		provider := NewTokenProvider(config.GoogleAds{
			TokenURL:     server.URL,
			RefreshToken: "revoked",
		}, server.Client())

		token, err := provider.AccessToken(context.Background())
		assert.Empty(t, token)
		require.Error(t, err)

		var authErr *domain.AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, http.StatusBadRequest, authErr.StatusCode)
		assert.Contains(t, authErr.Body, "invalid_grant")
	})

	t.Run("Deve falhar sem chamar o endpoint quando não houver refresh token", func(t *testing.T) {
		provider := NewTokenProvider(config.GoogleAds{TokenURL: "http://127.0.0.1:0"}, nil)

		_, err := provider.AccessToken(context.Background())
		assert.True(t, domain.IsAuthError(err))
	})
}
