package adsclient

import (
	"context"
	"errors"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/vfg2006/ads-metrics-sync/internal/config"
	"github.com/vfg2006/ads-metrics-sync/internal/domain"
	"github.com/vfg2006/ads-metrics-sync/pkg/log"
)

// TokenProvider troca o refresh token de longa duração por um access token.
// Nenhum token é guardado entre chamadas: cada consulta faz a sua troca.
type TokenProvider struct {
	oauth        *oauth2.Config
	refreshToken string
	httpClient   *http.Client
}

func NewTokenProvider(cfg config.GoogleAds, httpClient *http.Client) *TokenProvider {
	return &TokenProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		refreshToken: cfg.RefreshToken,
		httpClient:   httpClient,
	}
}

func (p *TokenProvider) AccessToken(ctx context.Context) (string, error) {
	if p.refreshToken == "" {
		return "", &domain.AuthError{Err: errors.New("refresh token is not configured")}
	}

	if p.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}

	token, err := p.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: p.refreshToken}).Token()
	if err != nil {
		authErr := &domain.AuthError{Err: err}

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			if retrieveErr.Response != nil {
				authErr.StatusCode = retrieveErr.Response.StatusCode
			}
			authErr.Body = string(retrieveErr.Body)
		}

		log.ForContext(ctx).WithFields(log.Fields{
			"status_code": authErr.StatusCode,
			"error":       err.Error(),
		}).Error("Falha ao trocar o refresh token do Google Ads")

		return "", authErr
	}

	if token.AccessToken == "" {
		return "", &domain.AuthError{Err: errors.New("token endpoint returned an empty access token")}
	}

	return token.AccessToken, nil
}
